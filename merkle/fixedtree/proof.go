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
	"github.com/fmtree/fmtree/log"
)

// Proof is the authentication path for one leaf: the sibling value at every
// level together with the leaf's left/right position at that level.
//
// A verifier recombines the proven element with PathElements in order, using
// PathIndex to decide the argument order at each step: 0 means the running
// value is the left child (the sibling goes right), 1 means it is the right
// child. The final value must equal the tree's root. Verification itself is
// the verifier's job, not this package's.
type Proof[T any] struct {
	PathElements []T   `json:"pathElements"`
	PathIndex    []int `json:"pathIndex"`
}

// Proof generates the authentication path for the leaf at index. The index
// must address a stored element, so the valid range is [0, Len()); anything
// else is rejected with an IndexError.
func (t *Tree[T]) Proof(index int) (*Proof[T], error) {
	if index < 0 || index >= len(t.layers[0]) {
		return nil, &IndexError{Index: index, Len: len(t.layers[0])}
	}

	log.Debugf("Generating authentication path for index %d", index)

	p := &Proof[T]{
		PathElements: make([]T, t.levels),
		PathIndex:    make([]int, t.levels),
	}

	idx := index
	for level := 0; level < t.levels; level++ {
		p.PathIndex[level] = idx % 2

		sibling := idx ^ 1
		if sibling < len(t.layers[level]) {
			p.PathElements[level] = t.layers[level][sibling]
		} else {
			p.PathElements[level] = t.zeros[level]
		}
		idx >>= 1
	}

	proofTotal.Inc()
	return p, nil
}
