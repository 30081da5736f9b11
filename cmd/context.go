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

	"github.com/fmtree/fmtree/crypto/hashing"
	"github.com/fmtree/fmtree/merkle/fixedtree"
)

type cmdContext struct {
	logLevel string
}

// treeContext carries the tree built by the tree command's pre-run into its
// subcommands.
type treeContext struct {
	depth  int
	hash   string
	input  string
	hasher hashing.Hasher
	tree   *fixedtree.Tree[hashing.Digest]
}

func newHasher(name string) (hashing.Hasher, error) {
	switch name {
	case "sha256":
		return hashing.NewSha256Hasher(), nil
	case "blake2b":
		return hashing.NewBlake2bHasher(), nil
	case "pearson":
		return hashing.NewPearsonHasher(), nil
	case "xor":
		return hashing.NewXorHasher(), nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", name)
	}
}
