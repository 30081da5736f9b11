/*
   Copyright 2026 The fmtree Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package fixedtree

import (
	"errors"
	"fmt"
)

var (
	// ErrTreeFull is returned when an insertion would exceed the tree's
	// fixed leaf capacity.
	ErrTreeFull = errors.New("tree is full")

	// ErrIndexOutOfBounds is the target every IndexError matches against.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidDepth is returned when a tree is constructed with a
	// negative number of levels.
	ErrInvalidDepth = errors.New("levels must be non-negative")

	// ErrNilCombiner is returned when a tree is constructed without a
	// combine function.
	ErrNilCombiner = errors.New("combine function is required")
)

// IndexError reports an index outside the valid range of an operation. It
// carries the offending index for diagnosability and unwraps to
// ErrIndexOutOfBounds.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds for length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}
