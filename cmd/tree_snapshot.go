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

	"github.com/fmtree/fmtree/log"
)

func newTreeSnapshotCommand(treeCtx *treeContext) *cobra.Command {

	var out string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export the tree state",
		Long: `Serialize the tree's depth, zero element and leaves so the tree can be
rebuilt later with the restore command`,
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := treeCtx.tree.Snapshot().Encode()
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, encoded, 0644); err != nil {
				return err
			}

			log.Infof("Wrote %d bytes to %s", len(encoded), out)
			fmt.Printf("Exported %d leaves with root %x\n", treeCtx.tree.Len(), treeCtx.tree.Root())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination file for the snapshot")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
