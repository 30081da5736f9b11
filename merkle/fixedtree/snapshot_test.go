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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmtree/fmtree/crypto/hashing"
)

func TestSnapshotRestore(t *testing.T) {

	tree := newSumTree(t, 2, []int{5, 3, 7})

	restored, err := FromSnapshot(tree.Snapshot(), sum)
	require.NoError(t, err)

	assert.Equal(t, tree.Root(), restored.Root())
	assert.Equal(t, tree.Leaves(), restored.Leaves())
	assert.Equal(t, tree.Capacity(), restored.Capacity())

	// The restored tree is independently mutable.
	require.NoError(t, restored.Insert(1))
	assert.NotEqual(t, tree.Root(), restored.Root())
}

func TestSnapshotEncodeDecode(t *testing.T) {

	hasher := hashing.NewSha256Hasher()
	combine := hashing.Combine(hasher)

	tree, err := New(3, []hashing.Digest{
		hasher.Do([]byte("a")),
		hasher.Do([]byte("b")),
		hasher.Do([]byte("c")),
	}, combine, hashing.ZeroDigest(hasher))
	require.NoError(t, err)

	encoded, err := tree.Snapshot().Encode()
	require.NoError(t, err)

	var decoded Snapshot[hashing.Digest]
	require.NoError(t, decoded.Decode(encoded))

	restored, err := FromSnapshot(&decoded, combine)
	require.NoError(t, err)
	require.True(t, hashing.EqualDigest(tree.Root(), restored.Root()),
		"a snapshot round-trip must preserve the root")

	// Proofs generated from the restored tree still verify.
	proof, err := restored.Proof(1)
	require.NoError(t, err)
	require.True(t, hashing.EqualDigest(restored.Root(),
		recombine(restored.Leaves()[1], proof, combine)))
}

func TestSnapshotOfEmptyTree(t *testing.T) {

	tree := newXorTree(t, 2, nil)

	restored, err := FromSnapshot(tree.Snapshot(), hashing.Combine(hashing.NewXorHasher()))
	require.NoError(t, err)
	assert.Equal(t, tree.Root(), restored.Root())
	assert.Equal(t, 0, restored.Len())
}
