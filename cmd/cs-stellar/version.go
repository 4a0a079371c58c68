package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmicstudio/cs-stellar/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cs-stellar version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
