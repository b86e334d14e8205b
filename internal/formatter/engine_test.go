package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/swiftfmt/internal/diag"
	"github.com/donaldgifford/swiftfmt/internal/parser"
	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// renameRule renames identifiers spelled from to to and records the kinds
// of every node it sees.
type renameRule struct {
	name     string
	from, to string
	seen     *[]string
}

func (r *renameRule) Name() string         { return r.name }
func (r *renameRule) Kinds() []syntax.Kind { return []syntax.Kind{syntax.KindIdentifierExpr} }

func (r *renameRule) Format(ctx *Context, n syntax.Node) syntax.Node {
	id := n.(*syntax.IdentifierExpr)
	if r.seen != nil {
		*r.seen = append(*r.seen, r.name+":"+id.Name.Text)
	}
	if id.Name.Text != r.from {
		return n
	}
	ctx.Diagnose(diag.Warning("rename %s to %s", r.from, r.to), n)
	c := *id
	c.Name = id.Name.WithText(r.to)
	return &c
}

// voidRule turns an empty tuple type into `Void`, changing the node kind.
type voidRule struct{}

func (voidRule) Name() string         { return "void" }
func (voidRule) Kinds() []syntax.Kind { return []syntax.Kind{syntax.KindTupleType} }

func (voidRule) Format(_ *Context, n syntax.Node) syntax.Node {
	tt := n.(*syntax.TupleType)
	if len(tt.Elements) != 0 {
		return n
	}
	name := syntax.NewIdentifier("Void").
		WithLeadingTrivia(tt.LeftParen.Leading).
		WithTrailingTrivia(tt.RightParen.Trailing)
	return &syntax.SimpleType{Name: name}
}

// upperRule sees the result of voidRule because it visits the new kind.
type upperRule struct{ calls *int }

func (upperRule) Name() string { return "upper" }
func (upperRule) Kinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindSimpleType, syntax.KindTupleType}
}

func (u upperRule) Format(_ *Context, n syntax.Node) syntax.Node {
	*u.calls++
	st, ok := n.(*syntax.SimpleType)
	if !ok || st.Name.Text != "Void" {
		return n
	}
	c := *st
	c.Name = st.Name.WithText("VOID")
	return &c
}

// badRule returns a statement where a type is expected.
type badRule struct{}

func (badRule) Name() string         { return "bad" }
func (badRule) Kinds() []syntax.Kind { return []syntax.Kind{syntax.KindSimpleType} }
func (badRule) Format(_ *Context, n syntax.Node) syntax.Node {
	return &syntax.ReturnStmt{ReturnKeyword: syntax.NewKeyword("return")}
}

func parse(t *testing.T, src string) *syntax.SourceFile {
	t.Helper()
	tree, err := parser.Parse(src)
	require.NoError(t, err)
	return tree
}

func TestDriverFormat(t *testing.T) {
	tree := parse(t, "foo(bar)\nbaz\n")
	d := NewDriver([]FormatRule{&renameRule{name: "r", from: "bar", to: "qux"}}, nil)

	res := d.Run("a.swift", tree, ModeFormat)
	require.NotNil(t, res.File)
	assert.Equal(t, "foo(qux)\nbaz\n", Write(res.File))
	assert.Equal(t, "foo(bar)\nbaz\n", Write(tree), "input tree must not change")

	require.Equal(t, 1, res.Diagnostics.Len())
	got := res.Diagnostics.Items()[0]
	assert.Equal(t, "r", got.Rule)
	assert.Equal(t, diag.Location{File: "a.swift", Line: 1, Column: 5}, got.Location)

	// The untouched statement is shared with the input.
	assert.Same(t, tree.Stmts[1], res.File.Stmts[1])
}

func TestDriverLint(t *testing.T) {
	tree := parse(t, "bar\n")
	d := NewDriver([]FormatRule{&renameRule{name: "r", from: "bar", to: "qux"}}, nil)

	res := d.Run("a.swift", tree, ModeLint)
	assert.Nil(t, res.File)
	assert.Equal(t, 1, res.Diagnostics.Count(diag.Warning("rename bar to qux")))
}

func TestDriverNoOpIsIdentity(t *testing.T) {
	tree := parse(t, "extension Foo {\n  func f(x: Int) -> () {}\n}\n")
	d := NewDriver([]FormatRule{&renameRule{name: "r", from: "nothing", to: "x"}}, nil)

	res := d.Run("a.swift", tree, ModeFormat)
	assert.Same(t, tree, res.File)
	assert.Zero(t, res.Diagnostics.Len())
}

func TestDriverOrderAndThreading(t *testing.T) {
	var seen []string
	rules := []FormatRule{
		&renameRule{name: "first", from: "a", to: "b", seen: &seen},
		&renameRule{name: "second", from: "b", to: "c", seen: &seen},
	}
	res := NewDriver(rules, nil).Run("a.swift", parse(t, "f(a)\n"), ModeFormat)

	assert.Equal(t, "f(c)\n", Write(res.File))
	// Innermost first: the argument is visited before the callee's call.
	assert.Equal(t, []string{"first:f", "second:f", "first:a", "second:b"}, seen)
	assert.Equal(t, 2, res.Diagnostics.Len())
}

func TestDriverKindChange(t *testing.T) {
	calls := 0
	rules := []FormatRule{voidRule{}, upperRule{calls: &calls}}
	res := NewDriver(rules, nil).Run("a.swift", parse(t, "typealias H = (Int) -> ()\n"), ModeFormat)

	assert.Equal(t, "typealias H = (Int) -> VOID\n", Write(res.File))
	// Int once, the (Int) tuple once, and the rewritten Void once.
	assert.Equal(t, 3, calls)
}

func TestDriverSlotMismatchPanics(t *testing.T) {
	tree := parse(t, "typealias H = Int\n")
	d := NewDriver([]FormatRule{badRule{}}, nil)
	assert.Panics(t, func() { d.Run("a.swift", tree, ModeFormat) })
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "lint", ModeLint.String())
	assert.Equal(t, "format", ModeFormat.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
