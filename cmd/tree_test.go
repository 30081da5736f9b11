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

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmtree/fmtree/crypto/hashing"
	"github.com/fmtree/fmtree/merkle/fixedtree"
)

func TestReadLeaves(t *testing.T) {

	input := filepath.Join(t.TempDir(), "events")
	require.NoError(t, os.WriteFile(input, []byte("one\ntwo\n\nthree\n"), 0644))

	hasher := hashing.NewSha256Hasher()
	leaves, err := readLeaves(input, hasher)
	require.NoError(t, err)

	// Empty lines are skipped, order is preserved.
	require.Len(t, leaves, 3)
	assert.Equal(t, hasher.Do([]byte("one")), leaves[0])
	assert.Equal(t, hasher.Do([]byte("three")), leaves[2])
}

func TestReadLeavesMissingFile(t *testing.T) {

	_, err := readLeaves(filepath.Join(t.TempDir(), "nope"), hashing.NewSha256Hasher())
	require.Error(t, err)
}

func TestNewHasher(t *testing.T) {

	testCases := []struct {
		name    string
		invalid bool
	}{
		{name: "sha256"},
		{name: "blake2b"},
		{name: "pearson"},
		{name: "xor"},
		{name: "md5", invalid: true},
	}

	for _, c := range testCases {
		hasher, err := newHasher(c.name)
		if c.invalid {
			require.Errorf(t, err, "expected an error for %q", c.name)
			continue
		}
		require.NoErrorf(t, err, "unexpected error for %q", c.name)
		require.NotNil(t, hasher)
	}
}

func TestRenderProof(t *testing.T) {

	hasher := hashing.NewXorHasher()
	tree, err := fixedtree.New(2, []hashing.Digest{{0x5}, {0x3}}, hashing.Combine(hasher), hashing.ZeroDigest(hasher))
	require.NoError(t, err)

	proof, err := tree.Proof(0)
	require.NoError(t, err)

	out := renderProof(0, tree.Root(), proof)
	assert.Equal(t, 0, out.Index)
	assert.Equal(t, fmt.Sprintf("%x", tree.Root()), out.Root)
	assert.Equal(t, []string{"03", "00"}, out.PathElements)
	assert.Equal(t, []int{0, 0}, out.PathIndex)
}
