package formatter

import (
	"github.com/donaldgifford/swiftfmt/internal/config"
	"github.com/donaldgifford/swiftfmt/internal/diag"
	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// FormatRule rewrites syntax nodes. The driver calls Format for every node
// whose kind is listed by Kinds, innermost nodes first, and rules run in
// configured order.
type FormatRule interface {
	// Name returns the config key for this rule (e.g., "group_numeric_literals").
	Name() string

	// Kinds lists the node kinds the rule visits.
	Kinds() []syntax.Kind

	// Format receives a node and returns its replacement, or n itself when
	// nothing applies. Rules must not mutate n; changed nodes are copies.
	// The replacement must fit the slot n occupies in its parent.
	Format(ctx *Context, n syntax.Node) syntax.Node
}

// Context is handed to a rule for one invocation.
type Context struct {
	// File is the name diagnostics are reported against.
	File string

	// Config holds the formatter settings rules may read.
	Config *config.FormatterConfig

	rule  string
	diags *diag.Collector
}

// Rule returns the name of the rule being invoked.
func (c *Context) Rule() string { return c.rule }

// Diagnose records msg at the first token of n.
func (c *Context) Diagnose(msg diag.Message, n syntax.Node) {
	loc := diag.Location{File: c.File}
	if t := syntax.FirstToken(n); t != nil {
		loc.Line = t.Pos.Line
		loc.Column = t.Pos.Column
	}
	c.diags.Add(c.rule, msg, loc)
}
