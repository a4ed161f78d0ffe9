// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/linsolve"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of linsolve",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "linsolve version %s\n", linsolve.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
