// Package runner orchestrates the parse -> rules -> output pipeline.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/swiftfmt/internal/cache"
	"github.com/donaldgifford/swiftfmt/internal/config"
	"github.com/donaldgifford/swiftfmt/internal/diag"
	"github.com/donaldgifford/swiftfmt/internal/formatter"
	"github.com/donaldgifford/swiftfmt/internal/parser"
	"github.com/donaldgifford/swiftfmt/internal/rules"
	"github.com/donaldgifford/swiftfmt/pkg/diff"
)

// Exit codes.
const (
	ExitOK = 0
	// ExitFindings means a file needs formatting or lint reported findings.
	ExitFindings = 1
	ExitError    = 2
)

// stdinName is the file name reported for standard input.
const stdinName = "<stdin>"

var log = commonlog.GetLogger("swiftfmt.runner")

// Options configures the runner behavior.
type Options struct {
	Files []string

	// Lint reports diagnostics instead of formatting.
	Lint bool
	// Format selects the lint output: "text" (default) or "json".
	Format string

	Check bool
	Diff  bool
	// Write is implied for file arguments; stdin output always goes to Stdout.
	Write bool

	ConfigPath string
	// Jobs overrides the configured parallelism when positive.
	Jobs int
	// Cache enables the result cache even when the config leaves it off.
	Cache bool
	// Version is mixed into cache keys.
	Version string

	Quiet   bool
	Verbose bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// outcome is the result of processing one input.
type outcome struct {
	name   string
	input  string
	output string
	diags  []diag.Diagnostic
	err    error
}

type pipeline struct {
	opts     *Options
	cfg      *config.Config
	driver   *formatter.Driver
	mode     formatter.Mode
	cache    *cache.Cache
	salt     string
	jobs     int
	severity *diag.Severity
}

// Run executes the pipeline over opts.Files, or standard input when no files
// are given, and returns an exit code.
func Run(ctx context.Context, opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	p, err := newPipeline(opts)
	if err != nil {
		writeErr(opts.Stderr, "swiftfmt: %v\n", err)
		return ExitError
	}

	var results []outcome
	if len(opts.Files) == 0 {
		src, err := io.ReadAll(opts.Stdin)
		if err != nil {
			writeErr(opts.Stderr, "swiftfmt: reading stdin: %v\n", err)
			return ExitError
		}
		results = []outcome{p.process(stdinName, string(src))}
	} else {
		results, err = p.processFiles(ctx, opts.Files)
		if err != nil {
			writeErr(opts.Stderr, "swiftfmt: %v\n", err)
			return ExitError
		}
	}

	if opts.Lint {
		return p.reportLint(results)
	}
	return p.reportFormat(results)
}

func newPipeline(opts *Options) (*pipeline, error) {
	switch opts.Format {
	case "":
		opts.Format = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("unknown output format %q", opts.Format)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	selected, err := rules.Select(cfg.Rules)
	if err != nil {
		return nil, err
	}

	p := &pipeline{
		opts:   opts,
		cfg:    cfg,
		driver: formatter.NewDriver(selected, &cfg.Formatter),
		mode:   formatter.ModeFormat,
		jobs:   cfg.Jobs,
	}
	if opts.Lint {
		p.mode = formatter.ModeLint
	}
	if opts.Jobs > 0 {
		p.jobs = opts.Jobs
	}
	if p.jobs <= 0 {
		p.jobs = runtime.GOMAXPROCS(0)
	}

	if cfg.Lint.Severity != "" {
		sev, err := diag.ParseSeverity(cfg.Lint.Severity)
		if err != nil {
			return nil, err
		}
		p.severity = &sev
	}

	if opts.Cache || cfg.Cache.Enabled {
		c, err := cache.Open(cfg.Cache.Dir)
		if err != nil {
			log.Warningf("cache disabled: %s", err)
		} else {
			p.cache = c
			// Cache entries hold the formatted text as well as the findings.
			p.mode = formatter.ModeFormat
		}
	}

	names := make([]string, 0, len(selected))
	for _, r := range selected {
		names = append(names, r.Name())
	}
	p.salt = fmt.Sprintf("%s|%s|%+v", opts.Version, strings.Join(names, ","), cfg.Formatter)

	log.Debug("pipeline ready", "rules", strings.Join(names, ","), "mode", p.mode.String(), "jobs", p.jobs)
	return p, nil
}

// processFiles runs every file through the pipeline with bounded
// parallelism. Results keep the order of files.
func (p *pipeline) processFiles(ctx context.Context, files []string) ([]outcome, error) {
	results := make([]outcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(p.jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			src, err := os.ReadFile(path)
			if err != nil {
				results[i] = outcome{name: path, err: err}
				return nil
			}
			// Each index is written by exactly one goroutine.
			results[i] = p.process(path, string(src))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// process parses one input and runs the selected rules over it.
func (p *pipeline) process(name, src string) outcome {
	key := cache.Key([]byte(src), p.salt)
	if e, ok, err := p.cache.Get(key); err != nil {
		log.Warningf("%s: %s", name, err)
	} else if ok {
		return outcome{name: name, input: src, output: e.Output, diags: fromFindings(name, e.Findings)}
	}

	tree, err := parser.Parse(src)
	if err != nil {
		return outcome{name: name, input: src, err: fmt.Errorf("%s: %w", name, err)}
	}

	res := p.driver.Run(name, tree, p.mode)
	res.Diagnostics.Sort()
	out := outcome{name: name, input: src, diags: res.Diagnostics.Items()}
	if res.File != nil {
		out.output = formatter.Write(res.File)
	}
	log.Debug("processed", "file", name, "diagnostics", len(out.diags))

	if p.cache != nil {
		e := &cache.Entry{Output: out.output, Findings: toFindings(out.diags)}
		if err := p.cache.Put(key, e); err != nil {
			log.Warningf("%s: %s", name, err)
		}
	}
	return out
}

func toFindings(diags []diag.Diagnostic) []cache.Finding {
	out := make([]cache.Finding, 0, len(diags))
	for _, d := range diags {
		out = append(out, cache.Finding{
			Rule:     d.Rule,
			Severity: uint8(d.Severity),
			Text:     d.Text,
			Line:     d.Line,
			Column:   d.Column,
		})
	}
	return out
}

func fromFindings(name string, fs []cache.Finding) []diag.Diagnostic {
	c := diag.NewCollector(name)
	for _, f := range fs {
		c.Add(f.Rule,
			diag.Message{Severity: diag.Severity(f.Severity), Text: f.Text},
			diag.Location{Line: f.Line, Column: f.Column})
	}
	return c.Items()
}

// visible applies the lint exclude list and severity override.
func (p *pipeline) visible(diags []diag.Diagnostic) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, d := range diags {
		if slices.Contains(p.cfg.Lint.Exclude, d.Rule) {
			continue
		}
		if p.severity != nil {
			d.Severity = *p.severity
		}
		out = append(out, d)
	}
	return out
}

func (p *pipeline) reportLint(results []outcome) int {
	exitCode := ExitOK
	var all []diag.Diagnostic
	files := 0

	for _, r := range results {
		p.trace(r)
		if r.err != nil {
			writeErr(p.opts.Stderr, "swiftfmt: %v\n", r.err)
			exitCode = ExitError
			continue
		}
		diags := p.visible(r.diags)
		if len(diags) == 0 {
			continue
		}
		files++
		exitCode = max(exitCode, ExitFindings)
		all = append(all, diags...)
		if p.opts.Format == "json" {
			continue
		}
		if err := diag.WriteText(p.opts.Stdout, r.input, diags); err != nil {
			writeErr(p.opts.Stderr, "swiftfmt: %v\n", err)
			return ExitError
		}
	}

	if p.opts.Format == "json" {
		if err := diag.WriteJSON(p.opts.Stdout, all); err != nil {
			writeErr(p.opts.Stderr, "swiftfmt: %v\n", err)
			return ExitError
		}
	} else if len(all) > 0 && !p.opts.Quiet {
		writeErr(p.opts.Stderr, "%d %s in %d %s\n",
			len(all), plural(len(all), "finding"), files, plural(files, "file"))
	}
	return exitCode
}

func (p *pipeline) reportFormat(results []outcome) int {
	exitCode := ExitOK
	for _, r := range results {
		code := p.reportFormatted(r)
		if code > exitCode {
			exitCode = code
		}
	}
	return exitCode
}

func (p *pipeline) reportFormatted(r outcome) int {
	p.trace(r)
	if r.err != nil {
		writeErr(p.opts.Stderr, "swiftfmt: %v\n", r.err)
		return ExitError
	}

	if p.opts.Check {
		if r.input != r.output {
			if !p.opts.Quiet {
				writeErr(p.opts.Stderr, "%s\n", r.name)
			}
			return ExitFindings
		}
		return ExitOK
	}

	if p.opts.Diff {
		d := diff.Unified(r.name, r.input, r.output)
		if d != "" {
			writeOut(p.opts.Stdout, diff.Colorize(d))
			return ExitFindings
		}
		return ExitOK
	}

	if r.name == stdinName {
		writeOut(p.opts.Stdout, r.output)
		return ExitOK
	}

	// Write mode (default for file args).
	if r.input == r.output {
		return ExitOK
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(r.name); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(r.name, []byte(r.output), perm); err != nil {
		writeErr(p.opts.Stderr, "swiftfmt: writing %s: %v\n", r.name, err)
		return ExitError
	}
	log.Infof("formatted %s", r.name)
	return ExitOK
}

// trace prints the input name in verbose mode. Reporting is sequential, so
// names appear in input order.
func (p *pipeline) trace(r outcome) {
	if p.opts.Verbose {
		writeErr(p.opts.Stderr, "%s\n", r.name)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// writeOut writes to stdout.
func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
