package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/swiftfmt/internal/runner"
)

var formatOpts runner.Options

var formatCmd = &cobra.Command{
	Use:   "format [flags] [file...]",
	Short: "Format Swift files",
	Long: `Format Swift files in place. With no files, reads from stdin and writes
the result to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if formatOpts.Check && formatOpts.Diff {
			return errors.New("format: --check cannot be used with --diff")
		}
		opts := formatOpts
		opts.Files = args
		return run(cmd, &opts)
	},
}

func init() {
	f := formatCmd.Flags()
	f.BoolVarP(&formatOpts.Write, "write", "w", false, "write result to file (default for file arguments)")
	f.BoolVar(&formatOpts.Check, "check", false, "exit 1 if any file is not formatted")
	f.BoolVar(&formatOpts.Diff, "diff", false, "print unified diff of changes")
}
