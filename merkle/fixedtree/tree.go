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

// Package fixedtree implements a fixed-depth, incrementally-updatable binary
// merkle tree. It maintains a commitment over a dense sequence of elements
// and generates the authentication path needed to verify any of them against
// the root.
//
// The tree is agnostic to its element type: it folds pairs of children
// through an injected combiner, which must be a pure function of its two
// arguments for the commitment to be meaningful. Positions with no real
// element yet are padded with a per-level chain of zero-subtree values
// derived from the caller's zero element.
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must serialize access externally.
package fixedtree

import (
	"github.com/fmtree/fmtree/log"
)

// CombineFunc folds two child values into their parent's value. The children
// are fed in positional (left, right) order, never sorted, so non-commutative
// combiners such as hashes of concatenation behave as expected.
type CombineFunc[T any] func(left, right T) T

// EqualFunc reports whether two elements are equal. It carries the element
// type's own equality semantics into operations that need to compare leaves.
type EqualFunc[T any] func(a, b T) bool

// Tree is a fixed-depth binary merkle tree over elements of type T.
//
// Layer 0 holds the leaf elements in insertion order; layer k holds the
// combined value of each pair of nodes at layer k-1; the single node at
// layer levels is the root. The depth is immutable after construction.
type Tree[T any] struct {
	levels   int
	capacity int
	zero     T
	combine  CombineFunc[T]

	// zeros[i] commits an empty subtree of height i. Fixed for the
	// tree's lifetime.
	zeros []T

	layers [][]T
}

// New builds a tree of the given depth whose leaf layer equals initial, read
// left to right, and whose every internal layer is consistent with it. The
// initial elements are copied, so later mutation of the caller's slice does
// not affect the tree.
//
// The capacity is 2^(levels+1) leaf slots. Unlike the permissive behaviour
// of some implementations, New rejects an initial slice that exceeds it with
// ErrTreeFull instead of building an inconsistent tree.
func New[T any](levels int, initial []T, combine CombineFunc[T], zero T) (*Tree[T], error) {
	if levels < 0 {
		return nil, ErrInvalidDepth
	}
	if combine == nil {
		return nil, ErrNilCombiner
	}

	t := &Tree[T]{
		levels:   levels,
		capacity: 1 << uint(levels+1),
		zero:     zero,
		combine:  combine,
		zeros:    make([]T, levels+1),
		layers:   make([][]T, levels+1),
	}

	if len(initial) > t.capacity {
		return nil, ErrTreeFull
	}

	t.zeros[0] = zero
	for i := 1; i <= levels; i++ {
		t.zeros[i] = combine(t.zeros[i-1], t.zeros[i-1])
	}

	t.layers[0] = make([]T, len(initial))
	copy(t.layers[0], initial)
	t.rebuild()

	log.Debugf("Built tree with %d levels and %d initial elements", levels, len(initial))

	return t, nil
}

// rebuild recomputes every internal layer from the current leaves.
func (t *Tree[T]) rebuild() {
	for level := 1; level <= t.levels; level++ {
		prev := t.layers[level-1]
		width := (len(prev) + 1) / 2

		layer := make([]T, width)
		for i := 0; i < width; i++ {
			right := t.zeros[level-1]
			if 2*i+1 < len(prev) {
				right = prev[2*i+1]
			}
			layer[i] = t.combine(prev[2*i], right)
		}
		t.layers[level] = layer
	}
}

// Root returns the current commitment over all stored elements. An empty
// tree commits to the zero-subtree value at full depth.
func (t *Tree[T]) Root() T {
	if len(t.layers[t.levels]) == 0 {
		return t.zeros[t.levels]
	}
	return t.layers[t.levels][0]
}

// Len returns the number of elements stored so far.
func (t *Tree[T]) Len() int {
	return len(t.layers[0])
}

// Capacity returns the maximum number of leaf slots.
func (t *Tree[T]) Capacity() int {
	return t.capacity
}

// Levels returns the fixed depth of the tree.
func (t *Tree[T]) Levels() int {
	return t.levels
}

// Leaves returns a copy of the stored elements in insertion order.
func (t *Tree[T]) Leaves() []T {
	leaves := make([]T, len(t.layers[0]))
	copy(leaves, t.layers[0])
	return leaves
}

// Zero returns the zero-subtree value at the given level.
func (t *Tree[T]) Zero(level int) (T, error) {
	if level < 0 || level > t.levels {
		var empty T
		return empty, &IndexError{Index: level, Len: t.levels + 1}
	}
	return t.zeros[level], nil
}

// Insert appends one element at the next free leaf index, recomputing only
// that leaf's authentication path. It returns ErrTreeFull when every leaf
// slot is taken.
func (t *Tree[T]) Insert(elem T) error {
	if len(t.layers[0]) >= t.capacity {
		return ErrTreeFull
	}

	insertTotal.Inc()
	return t.Update(len(t.layers[0]), elem)
}

// BulkInsert appends a batch of elements and then rebuilds every internal
// layer from scratch. The final state equals inserting the elements one by
// one, in order, but a single O(n) rebuild replaces n path updates.
//
// The capacity check happens before any mutation: when the batch does not
// fit, ErrTreeFull is returned and no element is appended.
func (t *Tree[T]) BulkInsert(elems []T) error {
	if len(t.layers[0])+len(elems) > t.capacity {
		return ErrTreeFull
	}

	log.Debugf("Bulk inserting %d elements at index %d", len(elems), len(t.layers[0]))

	t.layers[0] = append(t.layers[0], elems...)
	t.rebuild()

	insertTotal.Add(float64(len(elems)))
	return nil
}

// Update overwrites the leaf at index, or appends when index equals the
// current length, and recomputes the single path from that leaf to the root.
// Indexes outside [0, Len()] or beyond capacity are rejected with an
// IndexError carrying the offending index.
func (t *Tree[T]) Update(index int, elem T) error {
	if index < 0 || index > len(t.layers[0]) || index >= t.capacity {
		return &IndexError{Index: index, Len: len(t.layers[0])}
	}

	if index == len(t.layers[0]) {
		t.layers[0] = append(t.layers[0], elem)
	} else {
		t.layers[0][index] = elem
	}

	idx := index
	for level := 1; level <= t.levels; level++ {
		idx >>= 1
		prev := t.layers[level-1]

		right := t.zeros[level-1]
		if 2*idx+1 < len(prev) {
			right = prev[2*idx+1]
		}
		parent := t.combine(prev[2*idx], right)

		if idx < len(t.layers[level]) {
			t.layers[level][idx] = parent
		} else {
			t.layers[level] = append(t.layers[level], parent)
		}
	}

	updateTotal.Inc()
	return nil
}

// IndexOf scans the leaves for the first element equal to elem under eq and
// returns its index, or -1 when no leaf matches.
func (t *Tree[T]) IndexOf(elem T, eq EqualFunc[T]) int {
	for i, leaf := range t.layers[0] {
		if eq(leaf, elem) {
			return i
		}
	}
	return -1
}
