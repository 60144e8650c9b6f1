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
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/fixedarray/arraybuilder/internal/debug"
)

// Builder fills an array of type A, which must be [N]T, one element at a
// time. The array is stored inline, so a Builder declared as a local
// variable does not allocate.
//
// The zero value is an empty builder ready to use.
type Builder[T any, A any] struct {
	_ [0]func() // not comparable

	buf A
	n   int
}

// New returns a pointer to an empty builder. It panics if A is not an array
// type whose elements are of type T.
//
// Declare a Builder value instead of calling New to keep it off the heap.
func New[T any, A any]() *Builder[T, A] {
	capacityOf[T, A]()
	return &Builder[T, A]{}
}

// capacityOf returns N for A = [N]T.
func capacityOf[T any, A any]() int {
	at := reflect.TypeFor[A]()
	if at.Kind() != reflect.Array || at.Elem() != reflect.TypeFor[T]() {
		panic(fmt.Sprintf("arraybuilder: destination type %v is not an array of %v", at, reflect.TypeFor[T]()))
	}
	return at.Len()
}

// slots returns all N slots of the buffer. Only the first b.n are filled;
// the rest hold the zero value of T and must not be handed out.
func (b *Builder[T, A]) slots() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&b.buf)), capacityOf[T, A]())
}

// Len returns the number of elements pushed so far.
func (b *Builder[T, A]) Len() int { return b.n }

// Cap returns N, the length of the destination array.
func (b *Builder[T, A]) Cap() int { return capacityOf[T, A]() }

// Remaining returns the number of free slots.
func (b *Builder[T, A]) Remaining() int { return b.Cap() - b.n }

// Full reports whether N elements have been pushed.
func (b *Builder[T, A]) Full() bool { return b.n == b.Cap() }

// Value returns the i-th pushed element. It panics unless 0 <= i < Len().
func (b *Builder[T, A]) Value(i int) T {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("arraybuilder: index %d out of range [0:%d]", i, b.n))
	}
	return b.slots()[i]
}

// Push stores v in the next free slot and returns b for chaining.
//
// If the builder is already full, v is released (if it implements Releaser)
// and the builder is left unchanged.
func (b *Builder[T, A]) Push(v T) *Builder[T, A] {
	s := b.slots()
	debug.Assert(b.n >= 0 && b.n <= len(s), "fill count out of range")
	if b.n == len(s) {
		debug.Log("builder full, dropping element")
		if mayRelease[T]() {
			release(v)
		}
		return b
	}
	s[b.n] = v
	b.n++
	return b
}

// PushValues pushes each of vs in order. Values that do not fit are released.
func (b *Builder[T, A]) PushValues(vs ...T) *Builder[T, A] {
	for _, v := range vs {
		b.Push(v)
	}
	return b
}

// BuildExact returns the finished array if exactly N elements were pushed
// and resets the builder.
//
// Otherwise the contents of b are moved, unchanged, into the Builder field of
// the returned *WrongCountError and b is left empty. The caller can inspect
// the recovered builder, finalize it with a padding policy, or Release it.
//
// The error, and the copy of the buffer it holds, is allocated on the heap.
// This is the only path of Builder that allocates.
func (b *Builder[T, A]) BuildExact() (A, error) {
	if n := b.Cap(); b.n != n {
		err := &WrongCountError[T, A]{Expected: n, Actual: b.n, Builder: *b}
		*b = Builder[T, A]{}
		var zero A
		return zero, err
	}
	return b.take(), nil
}

// BuildPad fills each of the Remaining() trailing slots with the result of
// one call to padWith, in slot order, then returns the array and resets the
// builder. padWith is not called when the builder is full, and may be nil
// in that case.
func (b *Builder[T, A]) BuildPad(padWith func() T) A {
	s := b.slots()
	// b.n is advanced after each write so that a panicking padWith leaves
	// the builder owning exactly the slots written so far.
	for b.n < len(s) {
		s[b.n] = padWith()
		b.n++
	}
	return b.take()
}

// BuildPadTruncate behaves exactly like BuildPad. Elements pushed past N
// were already dropped by Push, so there is never anything to truncate; the
// name marks call sites that accept both short and over-long input.
func (b *Builder[T, A]) BuildPadTruncate(padWith func() T) A {
	return b.BuildPad(padWith)
}

// BuildPadValue is BuildPad with every missing slot set to a copy of v.
func (b *Builder[T, A]) BuildPadValue(v T) A {
	s := b.slots()
	for b.n < len(s) {
		s[b.n] = v
		b.n++
	}
	return b.take()
}

// take moves the full buffer out and leaves b empty.
func (b *Builder[T, A]) take() A {
	debug.Assert(b.n == b.Cap(), "take on a builder that is not full")
	out := b.buf
	var zero A
	b.buf = zero
	b.n = 0
	return out
}

// Release drops every pushed element, releasing those that implement
// Releaser, and resets the builder to empty. Slots that were never filled
// are not touched.
//
// Every element is released even if an earlier Release panics; the first
// panic is re-raised once all elements have been handled.
func (b *Builder[T, A]) Release() {
	filled := b.slots()[:b.n]
	b.n = 0
	releaseAll(filled)
}

// String formats the pushed elements, marking free slots as (unset).
func (b *Builder[T, A]) String() string {
	o := new(strings.Builder)
	o.WriteString("[")
	for i, v := range b.slots() {
		if i > 0 {
			o.WriteString(" ")
		}
		if i < b.n {
			fmt.Fprintf(o, "%v", v)
		} else {
			o.WriteString(UnsetValueStr)
		}
	}
	o.WriteString("]")
	return o.String()
}

// UnsetValueStr is how String renders a slot that has not been filled.
const UnsetValueStr = "(unset)"
