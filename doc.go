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

/*
Package arraybuilder provides Builder, a fixed-capacity builder that fills a
statically sized array one element at a time without allocating.

# Basics

A Builder is parameterized by its element type T and its destination array
type A, which must be [N]T. The capacity N is part of the type:

	var b arraybuilder.Builder[string, [3]string]
	b.Push("a").Push("b")

Push never fails. Once N elements have been pushed, further elements are
dropped and the builder is left unchanged. Whether the number of pushed
elements matches N is only decided when the array is finalized:

	BuildExact        requires exactly N pushes and otherwise returns a
	                  *WrongCountError carrying the untouched builder.
	BuildPad          fills the missing trailing slots with a producer.
	BuildPadTruncate  same as BuildPad; the name documents that overflow
	                  has already been discarded by Push.

# Ownership

The builder owns the elements in its filled prefix. Finalizing moves them
into the returned array and leaves the builder empty. Elements that implement
Releaser are released when the builder drops them, either because they were
pushed into a full builder or because the builder itself was released before
being finalized. Slots past the fill count are never read or released.

A Builder must not be used from multiple goroutines without external
synchronization.
*/
package arraybuilder
