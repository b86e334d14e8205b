package format

import (
	"github.com/donaldgifford/swiftfmt/internal/diag"
	"github.com/donaldgifford/swiftfmt/internal/formatter"
	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// ReturnVoidInsteadOfEmptyTuple spells an empty return type `Void` in
// function types: `(Int) -> ()` becomes `(Int) -> Void`. Function
// declarations are left alone.
type ReturnVoidInsteadOfEmptyTuple struct{}

// ReturnVoid is reported on the empty tuple.
var ReturnVoid = diag.Warning("replace '()' with 'Void'")

// Name returns the config key for this rule.
func (r *ReturnVoidInsteadOfEmptyTuple) Name() string {
	return "return_void_instead_of_empty_tuple"
}

// Kinds returns the node kinds the rule visits.
func (r *ReturnVoidInsteadOfEmptyTuple) Kinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindFunctionType}
}

// Format rewrites one function type.
func (r *ReturnVoidInsteadOfEmptyTuple) Format(ctx *formatter.Context, n syntax.Node) syntax.Node {
	fn := n.(*syntax.FunctionType)
	ret, ok := fn.ReturnType.(*syntax.TupleType)
	if !ok || len(ret.Elements) > 0 {
		return n
	}
	if !ret.LeftParen.Trailing.IsFormattingOnly() || !ret.RightParen.Leading.IsFormattingOnly() {
		return n
	}

	ctx.Diagnose(ReturnVoid, ret)

	syntax.Discard(ret.LeftParen.Trailing)
	syntax.Discard(ret.RightParen.Leading)
	void := syntax.NewIdentifier("Void").
		WithLeadingTrivia(ret.LeftParen.Leading).
		WithTrailingTrivia(ret.RightParen.Trailing)

	c := *fn
	c.ReturnType = &syntax.SimpleType{Name: void}
	return &c
}
