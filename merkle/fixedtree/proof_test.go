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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmtree/fmtree/crypto/hashing"
)

// recombine folds an element with its authentication path the way a
// verifier would, using the path index to order the combine arguments.
func recombine[T any](elem T, proof *Proof[T], combine CombineFunc[T]) T {
	current := elem
	for level, sibling := range proof.PathElements {
		if proof.PathIndex[level] == 0 {
			current = combine(current, sibling)
		} else {
			current = combine(sibling, current)
		}
	}
	return current
}

func TestProof(t *testing.T) {

	tree := newSumTree(t, 2, []int{5, 3})

	proof, err := tree.Proof(0)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 0}, proof.PathElements)
	assert.Equal(t, []int{0, 0}, proof.PathIndex)
	assert.Equal(t, tree.Root(), recombine(5, proof, sum))
}

func TestProofPathIndex(t *testing.T) {

	tree := newSumTree(t, 2, []int{5, 3, 7, 1})

	testCases := []struct {
		index                int
		expectedPathElements []int
		expectedPathIndex    []int
	}{
		{0, []int{3, 8}, []int{0, 0}},
		{1, []int{5, 8}, []int{1, 0}},
		{2, []int{1, 8}, []int{0, 1}},
		{3, []int{7, 8}, []int{1, 1}},
	}

	for i, c := range testCases {
		proof, err := tree.Proof(c.index)
		require.NoErrorf(t, err, "unexpected proof error in test case %d", i)
		assert.Equalf(t, c.expectedPathElements, proof.PathElements, "path elements mismatch in test case %d", i)
		assert.Equalf(t, c.expectedPathIndex, proof.PathIndex, "path index mismatch in test case %d", i)
	}
}

func TestProofPadsMissingSiblingsWithZeros(t *testing.T) {

	tree := newXorTree(t, 2, nil)
	event := hashing.Digest{0x5}
	require.NoError(t, tree.Insert(event))

	proof, err := tree.Proof(0)
	require.NoError(t, err)

	// A lone leaf has no real sibling at any level.
	for level, sibling := range proof.PathElements {
		zero, zerr := tree.Zero(level)
		require.NoError(t, zerr)
		assert.Equalf(t, zero, sibling, "expected zero-subtree sibling at level %d", level)
	}
	assert.Equal(t, tree.Root(), recombine(event, proof, hashing.Combine(hashing.NewXorHasher())))
}

func TestProofOutOfBounds(t *testing.T) {

	tree := newSumTree(t, 2, []int{5, 3})

	testCases := []struct {
		index int
	}{
		{-1},
		{2}, // length is a valid update index but not a provable one
		{7},
	}

	for i, c := range testCases {
		_, err := tree.Proof(c.index)
		require.Errorf(t, err, "expected out of bounds error in test case %d", i)
		require.ErrorIs(t, err, ErrIndexOutOfBounds)

		var indexErr *IndexError
		require.ErrorAs(t, err, &indexErr)
		assert.Equalf(t, c.index, indexErr.Index, "the error must carry the offending index in test case %d", i)
	}
}

func TestProofValidityForEveryIndex(t *testing.T) {

	hasher := hashing.NewSha256Hasher()
	combine := hashing.Combine(hasher)

	tree, err := New(3, nil, combine, hashing.ZeroDigest(hasher))
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		event := hasher.Do([]byte(fmt.Sprintf("event %d", i)))
		require.NoError(t, tree.Insert(event))

		// Proofs for every stored leaf must recombine to the new root.
		for index := 0; index <= i; index++ {
			proof, perr := tree.Proof(index)
			require.NoError(t, perr)

			leaf := tree.Leaves()[index]
			require.Truef(t, hashing.EqualDigest(tree.Root(), recombine(leaf, proof, combine)),
				"proof for index %d does not recombine to the root after %d inserts", index, i+1)
		}
	}
}

func TestProofAfterUpdate(t *testing.T) {

	hasher := hashing.NewBlake2bHasher()
	combine := hashing.Combine(hasher)

	tree, err := New(2, []hashing.Digest{
		hasher.Do([]byte("a")),
		hasher.Do([]byte("b")),
		hasher.Do([]byte("c")),
	}, combine, hashing.ZeroDigest(hasher))
	require.NoError(t, err)

	updated := hasher.Do([]byte("d"))
	require.NoError(t, tree.Update(1, updated))

	proof, err := tree.Proof(1)
	require.NoError(t, err)
	require.True(t, hashing.EqualDigest(tree.Root(), recombine(updated, proof, combine)))
}
