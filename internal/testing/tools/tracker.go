// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tools provides helpers for testing code that owns releasable
// elements.
package tools

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Tracker hands out Tracked elements and records every release, so tests
// can check that each element was released exactly once and that none
// leaked.
type Tracker struct {
	live int64

	mu       sync.Mutex
	released map[int]int
}

func NewTracker() *Tracker {
	return &Tracker{released: make(map[int]int)}
}

// New returns a live element identified by id.
func (t *Tracker) New(id int) *Tracked {
	atomic.AddInt64(&t.live, 1)
	return &Tracked{ID: id, t: t}
}

// NewPanicking returns an element whose Release is recorded and then panics.
func (t *Tracker) NewPanicking(id int) *Tracked {
	v := t.New(id)
	v.panicOnRelease = true
	return v
}

// Live returns the number of elements not yet released.
func (t *Tracker) Live() int { return int(atomic.LoadInt64(&t.live)) }

// Releases returns how many times the element id was released.
func (t *Tracker) Releases(id int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.released[id]
}

// ReleasedIDs returns the ids released at least once, in ascending order.
func (t *Tracker) ReleasedIDs() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]int, 0, len(t.released))
	for id := range t.released {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// AssertLive reports double releases and checks that exactly n elements
// are still live.
func (t *Tracker) AssertLive(tt TestingT, n int) {
	tt.Helper()
	t.mu.Lock()
	for id, c := range t.released {
		if c > 1 {
			tt.Errorf("element %d released %d times", id, c)
		}
	}
	t.mu.Unlock()

	if got := t.Live(); got != n {
		tt.Errorf("invalid number of live elements exp=%d, got=%d", n, got)
	}
}

// Tracked is an element whose releases are recorded by its Tracker.
type Tracked struct {
	ID int

	t              *Tracker
	panicOnRelease bool
}

func (v *Tracked) Release() {
	v.t.mu.Lock()
	v.t.released[v.ID]++
	first := v.t.released[v.ID] == 1
	v.t.mu.Unlock()
	if first {
		atomic.AddInt64(&v.t.live, -1)
	}
	if v.panicOnRelease {
		panic(fmt.Sprintf("release of element %d failed", v.ID))
	}
}

func (v *Tracked) String() string { return fmt.Sprintf("#%d", v.ID) }
