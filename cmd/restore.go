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

	"github.com/spf13/cobra"

	"github.com/fmtree/fmtree/crypto/hashing"
	"github.com/fmtree/fmtree/log"
	"github.com/fmtree/fmtree/merkle/fixedtree"
)

func newRestoreCommand(ctx *cmdContext) *cobra.Command {

	var in, hash string
	var index int

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Rebuild a tree from an exported snapshot",
		Long: `Rebuild a tree from a snapshot written by the snapshot command, print
its root and optionally prove one of its leaves. The hash algorithm is not
part of the snapshot and must match the one used to build it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetLogger("FmtreeRestore", ctx.logLevel)

			encoded, err := os.ReadFile(in)
			if err != nil {
				return err
			}

			var snapshot fixedtree.Snapshot[hashing.Digest]
			if err := snapshot.Decode(encoded); err != nil {
				return err
			}

			hasher, err := newHasher(hash)
			if err != nil {
				return err
			}

			tree, err := fixedtree.FromSnapshot(&snapshot, hashing.Combine(hasher))
			if err != nil {
				return err
			}
			log.Infof("Restored tree with %d leaves", tree.Len())

			fmt.Printf("%x\n", tree.Root())

			if index >= 0 {
				proof, err := tree.Proof(index)
				if err != nil {
					return err
				}
				return printProof(index, tree.Root(), proof)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in, "in", "", "Snapshot file to restore from")
	f.StringVar(&hash, "hash", "sha256", "Hash algorithm the snapshot was built with")
	f.IntVar(&index, "index", -1, "Leaf index to prove after restoring, -1 to skip")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
