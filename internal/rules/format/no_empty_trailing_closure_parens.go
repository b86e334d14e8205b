package format

import (
	"github.com/donaldgifford/swiftfmt/internal/diag"
	"github.com/donaldgifford/swiftfmt/internal/formatter"
	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// NoEmptyTrailingClosureParentheses removes the empty argument list of a
// call whose only argument is a trailing closure: `f() { }` becomes
// `f { }`.
type NoEmptyTrailingClosureParentheses struct{}

// RemoveEmptyTrailingParentheses is reported on the call.
func RemoveEmptyTrailingParentheses(name string) diag.Message {
	return diag.Warning("remove '()' after %s", name)
}

// Name returns the config key for this rule.
func (r *NoEmptyTrailingClosureParentheses) Name() string {
	return "no_empty_trailing_closure_parentheses"
}

// Kinds returns the node kinds the rule visits.
func (r *NoEmptyTrailingClosureParentheses) Kinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindCallExpr}
}

// Format rewrites one call expression.
func (r *NoEmptyTrailingClosureParentheses) Format(ctx *formatter.Context, n syntax.Node) syntax.Node {
	call := n.(*syntax.CallExpr)
	if call.TrailingClosure == nil || call.LeftParen == nil || len(call.Args) > 0 {
		return n
	}
	last := syntax.LastToken(call.Callee)
	if last == nil {
		return n
	}
	// Everything between the callee and the closure is replaced by a
	// single space.
	if !last.Trailing.IsFormattingOnly() || !syntax.AllFormattingOnly(call.LeftParen, call.RightParen) {
		return n
	}

	ctx.Diagnose(RemoveEmptyTrailingParentheses(last.Text), call)

	syntax.Discard(last.Trailing)
	syntax.Discard(call.LeftParen.Leading)
	syntax.Discard(call.LeftParen.Trailing)
	syntax.Discard(call.RightParen.Leading)
	syntax.Discard(call.RightParen.Trailing)

	c := *call
	c.Callee = syntax.ReplaceToken(call.Callee, last, last.WithTrailingTrivia(syntax.SpacesTrivia(1)))
	c.LeftParen = nil
	c.RightParen = nil
	return &c
}
