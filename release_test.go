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

package arraybuilder_test

import (
	"errors"
	"testing"

	"github.com/fixedarray/arraybuilder"
	"github.com/fixedarray/arraybuilder/internal/testing/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackedBuilder = arraybuilder.Builder[*tools.Tracked, [4]*tools.Tracked]

func TestBuilderReleaseUnfinished(t *testing.T) {
	tr := tools.NewTracker()
	defer tr.AssertLive(t, 0)

	var b trackedBuilder
	b.Push(tr.New(0)).Push(tr.New(1))
	assert.Equal(t, 2, tr.Live())

	b.Release()
	assert.Zero(t, b.Len())
	assert.Equal(t, []int{0, 1}, tr.ReleasedIDs())

	// a second release has nothing left to drop
	b.Release()
	assert.Equal(t, 1, tr.Releases(0))
	assert.Equal(t, 1, tr.Releases(1))
}

func TestBuilderReleaseOverflow(t *testing.T) {
	tr := tools.NewTracker()
	defer tr.AssertLive(t, 0)

	var b trackedBuilder
	for i := 0; i < 7; i++ {
		b.Push(tr.New(i))
	}
	assert.Equal(t, []int{4, 5, 6}, tr.ReleasedIDs(), "overflow elements must be released on push")
	assert.Equal(t, 4, tr.Live())

	arr, err := b.BuildExact()
	require.NoError(t, err)
	for i, v := range arr {
		assert.Equal(t, i, v.ID)
	}
	// finalizing hands ownership to the array, nothing is released
	assert.Equal(t, 4, tr.Live())

	b.Release()
	assert.Equal(t, 4, tr.Live())

	for _, v := range arr {
		v.Release()
	}
}

func TestBuilderBuildPadTransfersOwnership(t *testing.T) {
	tr := tools.NewTracker()
	defer tr.AssertLive(t, 0)

	var b trackedBuilder
	b.Push(tr.New(0))
	next := 100
	arr := b.BuildPad(func() *tools.Tracked {
		next++
		return tr.New(next)
	})
	assert.Equal(t, 4, tr.Live())
	assert.Empty(t, tr.ReleasedIDs())
	assert.Equal(t, []int{0, 101, 102, 103}, []int{arr[0].ID, arr[1].ID, arr[2].ID, arr[3].ID})

	for _, v := range arr {
		v.Release()
	}
}

func TestBuilderWrongCountOwnsElements(t *testing.T) {
	tr := tools.NewTracker()
	defer tr.AssertLive(t, 0)

	var b trackedBuilder
	b.Push(tr.New(0)).Push(tr.New(1)).Push(tr.New(2))
	_, err := b.BuildExact()

	var wc *arraybuilder.WrongCountError[*tools.Tracked, [4]*tools.Tracked]
	require.True(t, errors.As(err, &wc))

	// the original builder no longer owns anything
	b.Release()
	assert.Equal(t, 3, tr.Live())

	wc.Builder.Release()
	assert.Equal(t, []int{0, 1, 2}, tr.ReleasedIDs())
}

func TestBuilderReleaseContinuesAfterPanic(t *testing.T) {
	tr := tools.NewTracker()
	defer tr.AssertLive(t, 0)

	var b trackedBuilder
	b.Push(tr.New(0)).Push(tr.NewPanicking(1)).Push(tr.NewPanicking(2))

	assert.PanicsWithValue(t, "release of element 1 failed", b.Release)
	assert.Zero(t, b.Len())
	assert.Equal(t, []int{0, 1, 2}, tr.ReleasedIDs())
}

func TestBuilderReleaseNonReleasers(t *testing.T) {
	var b arraybuilder.Builder[string, [3]string]
	b.Push("a").Push("b")
	assert.NotPanics(t, b.Release)
	assert.Zero(t, b.Len())
	assert.Equal(t, "[(unset) (unset) (unset)]", b.String())
}
