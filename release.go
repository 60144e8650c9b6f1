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

package arraybuilder

import (
	"reflect"

	"github.com/fixedarray/arraybuilder/internal/debug"
)

// Releaser is implemented by elements that hold a resource which must be
// returned when the element is dropped, such as reference counted arrow
// arrays and buffers.
type Releaser interface {
	Release()
}

var releaserType = reflect.TypeFor[Releaser]()

// mayRelease reports whether a value of type T can implement Releaser.
// Values are only converted to an interface when it does, so builders of
// plain types never box their elements.
func mayRelease[T any]() bool {
	t := reflect.TypeFor[T]()
	return t.Kind() == reflect.Interface || t.Implements(releaserType)
}

func release[T any](v T) {
	if r, ok := any(v).(Releaser); ok {
		r.Release()
	}
}

// releaseAll zeroes every slot of s and releases its previous value. A panic
// from one element does not prevent the others from being released; the
// first one is re-raised at the end.
func releaseAll[T any](s []T) {
	var (
		first    interface{}
		panicked bool
		releases = mayRelease[T]()
	)
	for i := range s {
		v := s[i]
		var zero T
		s[i] = zero
		if !releases {
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil && !panicked {
					first, panicked = r, true
				}
			}()
			release(v)
		}()
	}
	debug.Log("released builder contents")
	if panicked {
		panic(first)
	}
}
