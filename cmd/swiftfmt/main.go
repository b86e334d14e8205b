// Package main is the entry point for swiftfmt.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"

	"github.com/donaldgifford/swiftfmt/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Persistent flags.
var (
	configPath string
	quiet      bool
	verbosity  int
	colorMode  string
	jobs       int
	useCache   bool
)

var rootCmd = &cobra.Command{
	Use:   "swiftfmt",
	Short: "Format and lint Swift source files",
	Long: `swiftfmt rewrites Swift sources according to a set of style rules and
reports the findings of those rules without rewriting.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// exitError carries a runner exit code through cobra.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func main() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionLine() + "\n")

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to config file")
	pf.BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	pf.CountVarP(&verbosity, "verbose", "v", "print files as they are processed; repeat for debug logs")
	pf.StringVar(&colorMode, "color", "auto", "colorize output (auto|always|never)")
	pf.IntVar(&jobs, "jobs", 0, "number of files processed in parallel (0 = one per CPU)")
	pf.BoolVar(&useCache, "cache", false, "reuse results of previous runs for unchanged files")

	err := rootCmd.Execute()
	if err == nil {
		return
	}
	var exit exitError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}
	fmt.Fprintf(os.Stderr, "swiftfmt: %v\n", err)
	os.Exit(runner.ExitError)
}

// setup applies the persistent flags shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	switch colorMode {
	case "auto":
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color %q (want auto, always or never)", colorMode)
	}

	level := verbosity
	if quiet {
		level = -2
	}
	commonlog.Configure(level, nil)
	return nil
}

// run executes the runner and turns a non-zero exit code into an error.
func run(cmd *cobra.Command, opts *runner.Options) error {
	opts.ConfigPath = configPath
	opts.Quiet = quiet
	opts.Verbose = verbosity > 0
	opts.Jobs = jobs
	opts.Cache = useCache
	opts.Version = version
	opts.Stdin = cmd.InOrStdin()
	opts.Stdout = cmd.OutOrStdout()
	opts.Stderr = cmd.ErrOrStderr()

	if code := runner.Run(cmd.Context(), opts); code != runner.ExitOK {
		return exitError{code: code}
	}
	return nil
}
