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

// Package cmd implements the command line commands of the fmtree binary.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	v "github.com/spf13/viper"
)

var Root *cobra.Command = &cobra.Command{
	Use:   "fmtree",
	Short: "Fixed-depth merkle tree toolbox",
	Long: `Fmtree maintains a fixed-depth merkle commitment over a sequence of
elements and generates the authentication paths needed to verify them
against the root. This command hashes its input lines into leaves and
exposes the root, proof and snapshot operations over the resulting tree.`,
	// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
	SilenceUsage: true,
}

var ctx *cmdContext = &cmdContext{}

var releaseVersion, releaseCommit, releaseDate = "dev", "none", "unknown"

// SetReleaseInfo stores the release values injected at build time.
func SetReleaseInfo(version, commit, date string) {
	releaseVersion = version
	releaseCommit = commit
	releaseDate = date
}

func init() {

	f := Root.PersistentFlags()
	f.StringVarP(&ctx.logLevel, "log", "l", "error", "Choose between log levels: silent, error, info and debug")
	_ = v.BindPFlag("log", f.Lookup("log"))

	v.SetEnvPrefix("FMTREE")
	v.AutomaticEnv()

	Root.AddCommand(newTreeCommand(ctx))
	Root.AddCommand(newRestoreCommand(ctx))
	Root.AddCommand(newVersionCommand())
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fmtree version %s (commit %s, built %s)\n", releaseVersion, releaseCommit, releaseDate)
		},
	}
}
