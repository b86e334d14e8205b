package main

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/swiftfmt/internal/runner"
)

var lintFormat string

var lintCmd = &cobra.Command{
	Use:   "lint [flags] [file...]",
	Short: "Report rule findings without rewriting",
	Long: `Run every enabled rule and report what it would change. Exits 1 when
anything is reported. With no files, reads from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, &runner.Options{
			Files:  args,
			Lint:   true,
			Format: lintFormat,
		})
	},
}

func init() {
	lintCmd.Flags().StringVar(&lintFormat, "format", "text", "output format (text|json)")
}
