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

package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasherSizes(t *testing.T) {

	testCases := []struct {
		hasher       Hasher
		expectedSize int
	}{
		{NewSha256Hasher(), 32},
		{NewBlake2bHasher(), 32},
		{NewXorHasher(), 1},
		{NewPearsonHasher(), 1},
	}

	for _, c := range testCases {
		digest := c.hasher.Do([]byte("a test event"))
		require.Equalf(t, c.expectedSize, len(digest), "digest length mismatch for %T", c.hasher)
		require.Equalf(t, c.expectedSize, len(ZeroDigest(c.hasher)), "zero digest length mismatch for %T", c.hasher)
	}
}

func TestHasherDeterminism(t *testing.T) {

	hashers := []Hasher{
		NewSha256Hasher(),
		NewBlake2bHasher(),
		NewXorHasher(),
		NewPearsonHasher(),
	}

	for _, h := range hashers {
		d1 := h.Do([]byte("left"), []byte("right"))
		d2 := h.Do([]byte("left"), []byte("right"))
		require.Truef(t, EqualDigest(d1, d2), "hasher %T must be deterministic", h)
	}
}

func TestCombineIsPositional(t *testing.T) {

	combine := Combine(NewSha256Hasher())

	left := Digest("a")
	right := Digest("b")

	assert.False(t, EqualDigest(combine(left, right), combine(right, left)),
		"combining must preserve the (left, right) argument order")
}

func TestXorHasher(t *testing.T) {

	hasher := NewXorHasher()

	testCases := []struct {
		data           [][]byte
		expectedDigest Digest
	}{
		{[][]byte{{0x00}}, Digest{0x00}},
		{[][]byte{{0x01}, {0x01}}, Digest{0x00}},
		{[][]byte{{0x02}, {0x01}}, Digest{0x03}},
	}

	for i, c := range testCases {
		assert.Equalf(t, c.expectedDigest, hasher.Do(c.data...), "digest mismatch in test case %d", i)
	}
}
