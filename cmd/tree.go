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
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"
	v "github.com/spf13/viper"

	"github.com/fmtree/fmtree/crypto/hashing"
	"github.com/fmtree/fmtree/log"
	"github.com/fmtree/fmtree/merkle/fixedtree"
)

func newTreeCommand(ctx *cmdContext) *cobra.Command {

	treeCtx := &treeContext{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Build a merkle tree from input lines",
		Long: `Build a fixed-depth merkle tree whose leaves are the hashes of the
input lines, in order, and run a subcommand against it`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetLogger("FmtreeTree", ctx.logLevel)

			treeCtx.depth = v.GetInt("tree.depth")
			treeCtx.hash = v.GetString("tree.hash")
			treeCtx.input = v.GetString("tree.input")

			hasher, err := newHasher(treeCtx.hash)
			if err != nil {
				return err
			}
			treeCtx.hasher = hasher

			leaves, err := readLeaves(treeCtx.input, hasher)
			if err != nil {
				return err
			}
			log.Infof("Read %d leaves from %s", len(leaves), treeCtx.input)

			tree, err := fixedtree.New(treeCtx.depth, leaves, hashing.Combine(hasher), hashing.ZeroDigest(hasher))
			if err != nil {
				return err
			}
			treeCtx.tree = tree
			return nil
		},
		TraverseChildren: true,
	}

	f := cmd.PersistentFlags()
	f.IntVarP(&treeCtx.depth, "depth", "d", 10, "Number of tree levels between a leaf and the root")
	f.StringVar(&treeCtx.hash, "hash", "sha256", "Hash algorithm for leaves and combining: sha256, blake2b, pearson or xor")
	f.StringVarP(&treeCtx.input, "input", "i", "-", "File with one element per line, or - for stdin")

	// Lookups
	_ = v.BindPFlag("tree.depth", f.Lookup("depth"))
	_ = v.BindPFlag("tree.hash", f.Lookup("hash"))
	_ = v.BindPFlag("tree.input", f.Lookup("input"))

	cmd.AddCommand(newTreeRootCommand(treeCtx))
	cmd.AddCommand(newTreeProofCommand(treeCtx))
	cmd.AddCommand(newTreeSnapshotCommand(treeCtx))

	return cmd
}

// readLeaves hashes every non-empty input line into a leaf digest,
// preserving order.
func readLeaves(input string, hasher hashing.Hasher) ([]hashing.Digest, error) {

	var reader io.Reader
	if input == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	var leaves []hashing.Digest
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		leaves = append(leaves, hasher.Do([]byte(line)))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return leaves, nil
}
