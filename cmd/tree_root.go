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

	"github.com/spf13/cobra"
)

func newTreeRootCommand(treeCtx *treeContext) *cobra.Command {

	return &cobra.Command{
		Use:   "root",
		Short: "Print the root commitment",
		Long:  `Print the hex-encoded root hash committing every input element`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%x\n", treeCtx.tree.Root())
		},
	}
}
