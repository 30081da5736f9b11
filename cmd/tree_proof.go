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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmtree/fmtree/crypto/hashing"
	"github.com/fmtree/fmtree/merkle/fixedtree"
)

// proofOutput is the printable form of an authentication path: digests are
// rendered as hex instead of raw bytes.
type proofOutput struct {
	Index        int      `json:"index"`
	Root         string   `json:"root"`
	PathElements []string `json:"pathElements"`
	PathIndex    []int    `json:"pathIndex"`
}

func renderProof(index int, root hashing.Digest, proof *fixedtree.Proof[hashing.Digest]) *proofOutput {
	out := &proofOutput{
		Index:        index,
		Root:         fmt.Sprintf("%x", root),
		PathElements: make([]string, 0, len(proof.PathElements)),
		PathIndex:    proof.PathIndex,
	}
	for _, sibling := range proof.PathElements {
		out.PathElements = append(out.PathElements, fmt.Sprintf("%x", sibling))
	}
	return out
}

func printProof(index int, root hashing.Digest, proof *fixedtree.Proof[hashing.Digest]) error {
	encoded, err := json.MarshalIndent(renderProof(index, root, proof), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func newTreeProofCommand(treeCtx *treeContext) *cobra.Command {

	var index int

	cmd := &cobra.Command{
		Use:   "proof",
		Short: "Generate the authentication path for one leaf",
		Long: `Generate the sibling values and left/right flags needed to recompute
the root from the leaf at the given index`,
		RunE: func(cmd *cobra.Command, args []string) error {
			proof, err := treeCtx.tree.Proof(index)
			if err != nil {
				return err
			}
			return printProof(index, treeCtx.tree.Root(), proof)
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "Leaf index to prove")

	return cmd
}
