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
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

// ErrWrongCount is matched by every *WrongCountError.
var ErrWrongCount = errors.New("arraybuilder: wrong number of elements")

// WrongCountError is returned by BuildExact when the number of pushed
// elements differs from the array length. Since Push never stores more than
// N elements, Actual is always less than Expected.
type WrongCountError[T any, A any] struct {
	Expected int
	Actual   int

	// Builder holds the elements pushed before BuildExact was called, in
	// push order. The error owns them: finalize or Release the builder.
	Builder Builder[T, A]
}

func (e *WrongCountError[T, A]) Error() string {
	return fmt.Sprintf("arraybuilder: wrong number of elements, expected %d, got %d", e.Expected, e.Actual)
}

func (e *WrongCountError[T, A]) Is(target error) bool { return target == ErrWrongCount }

// Format prints the recovered builder contents with %+v.
func (e *WrongCountError[T, A]) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *WrongCountError[T, A]) FormatError(p xerrors.Printer) error {
	p.Print(e.Error())
	if p.Detail() {
		p.Printf("builder: %v", e.Builder.String())
	}
	return nil
}
