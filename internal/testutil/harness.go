package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/swiftfmt/internal/config"
	"github.com/donaldgifford/swiftfmt/internal/diag"
	"github.com/donaldgifford/swiftfmt/internal/formatter"
	"github.com/donaldgifford/swiftfmt/internal/parser"
	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// TestFile is the file name diagnostics produced by the harness carry.
const TestFile = "test.swift"

// Option customizes AssertFormatting.
type Option func(*options)

type options struct {
	cfg *config.FormatterConfig
}

// WithConfig runs the rule with cfg instead of the default formatter config.
func WithConfig(cfg *config.FormatterConfig) Option {
	return func(o *options) { o.cfg = cfg }
}

// Findings is the queue of diagnostics a rule emitted during
// AssertFormatting. Assertions consume matching entries in emission order.
type Findings struct {
	t     testing.TB
	items []diag.Diagnostic
}

// AssertFormatting parses input, runs rule over it in format mode and
// asserts the serialized result equals expected. It also asserts that the
// input tree is left untouched, that every comment survives in order, and
// that a second pass over the output changes nothing and reports nothing.
func AssertFormatting(t testing.TB, rule formatter.FormatRule, input, expected string, opts ...Option) *Findings {
	t.Helper()

	o := &options{cfg: &config.DefaultConfig().Formatter}
	for _, opt := range opts {
		opt(o)
	}

	tree, err := parser.Parse(input)
	require.NoError(t, err, "parsing input")

	driver := formatter.NewDriver([]formatter.FormatRule{rule}, o.cfg)
	res := driver.Run(TestFile, tree, formatter.ModeFormat)
	got := formatter.Write(res.File)

	assert.Equal(t, expected, got, "formatted output of %s", rule.Name())
	assert.Equal(t, input, formatter.Write(tree), "%s modified its input tree", rule.Name())
	assert.Equal(t, comments(tree), comments(res.File), "%s dropped or reordered comments", rule.Name())

	again, err := parser.Parse(got)
	require.NoError(t, err, "parsing formatted output")
	second := driver.Run(TestFile, again, formatter.ModeFormat)
	assert.Equal(t, got, formatter.Write(second.File), "%s is not idempotent", rule.Name())
	assert.Empty(t, second.Diagnostics.Items(), "%s diagnosed its own output", rule.Name())

	return &Findings{t: t, items: append([]diag.Diagnostic(nil), res.Diagnostics.Items()...)}
}

// comments returns the text of every comment piece in n, in source order.
func comments(n syntax.Node) []string {
	var out []string
	for _, tok := range syntax.Tokens(n) {
		for _, p := range tok.Leading.Comments() {
			out = append(out, p.Text)
		}
		for _, p := range tok.Trailing.Comments() {
			out = append(out, p.Text)
		}
	}
	return out
}

// AssertDiagnosed consumes the first remaining diagnostic carrying msg and
// fails if there is none.
func (f *Findings) AssertDiagnosed(msg diag.Message) diag.Diagnostic {
	f.t.Helper()
	for i, d := range f.items {
		if d.Message == msg {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return d
		}
	}
	f.t.Errorf("expected diagnostic %q; remaining: %v", msg, f.items)
	return diag.Diagnostic{}
}

// AssertDiagnosedAt is AssertDiagnosed that also checks the position.
func (f *Findings) AssertDiagnosedAt(msg diag.Message, line, column int) {
	f.t.Helper()
	for i, d := range f.items {
		if d.Message == msg && d.Line == line && d.Column == column {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return
		}
	}
	f.t.Errorf("expected diagnostic %q at %d:%d; remaining: %v", msg, line, column, f.items)
}

// AssertNotDiagnosed fails if any remaining diagnostic carries msg.
func (f *Findings) AssertNotDiagnosed(msg diag.Message) {
	f.t.Helper()
	for _, d := range f.items {
		if d.Message == msg {
			f.t.Errorf("unexpected diagnostic %s", d)
			return
		}
	}
}

// AssertNoneLeft fails if any diagnostic has not been consumed.
func (f *Findings) AssertNoneLeft() {
	f.t.Helper()
	if len(f.items) > 0 {
		f.t.Errorf("unexpected diagnostics: %v", f.items)
	}
}
