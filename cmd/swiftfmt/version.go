package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionLine() string {
	return fmt.Sprintf("swiftfmt %s (%s) %s", version, commit, date)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionLine())
	},
}
