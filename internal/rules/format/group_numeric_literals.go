package format

import (
	"strings"

	"github.com/donaldgifford/swiftfmt/internal/diag"
	"github.com/donaldgifford/swiftfmt/internal/formatter"
	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// GroupNumericLiterals separates long integer literals into groups with
// '_': decimal by thousands, hexadecimal by four digits and binary by
// eight, counting from the right. Literals that already contain '_' are
// assumed to be grouped on purpose. Octal literals are left alone.
type GroupNumericLiterals struct{}

// GroupNumericLiteral is reported on each literal that gets grouped.
func GroupNumericLiteral(stride int) diag.Message {
	return diag.Warning("group numeric literal using '_' every %d digits", stride)
}

// Name returns the config key for this rule.
func (r *GroupNumericLiterals) Name() string {
	return "group_numeric_literals"
}

// Kinds returns the node kinds the rule visits.
func (r *GroupNumericLiterals) Kinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindIntegerLiteralExpr}
}

// Format rewrites one integer literal.
func (r *GroupNumericLiterals) Format(ctx *formatter.Context, n syntax.Node) syntax.Node {
	lit := n.(*syntax.IntegerLiteralExpr)
	text := lit.Literal.Text
	if strings.Contains(text, "_") {
		return n
	}

	prefix, digits := "", text
	g := ctx.Config.NumericGrouping.Decimal
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			g = ctx.Config.NumericGrouping.Hexadecimal
		case 'b', 'B':
			g = ctx.Config.NumericGrouping.Binary
		case 'o', 'O':
			return n
		}
		if !isDecimal(text[1]) {
			prefix, digits = text[:2], text[2:]
		}
	}

	if g.Stride <= 0 || len(digits) < g.MinDigits || len(digits) <= g.Stride {
		return n
	}

	ctx.Diagnose(GroupNumericLiteral(g.Stride), lit)
	return &syntax.IntegerLiteralExpr{Literal: lit.Literal.WithText(prefix + group(digits, g.Stride))}
}

func isDecimal(b byte) bool { return b >= '0' && b <= '9' }

// group inserts '_' every stride digits, counting from the right.
func group(digits string, stride int) string {
	var b strings.Builder
	first := len(digits) % stride
	if first == 0 {
		first = stride
	}
	b.WriteString(digits[:first])
	for i := first; i < len(digits); i += stride {
		b.WriteByte('_')
		b.WriteString(digits[i : i+stride])
	}
	return b.String()
}
