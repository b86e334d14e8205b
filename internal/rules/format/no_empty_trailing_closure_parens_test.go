package format

import (
	"testing"

	"github.com/donaldgifford/swiftfmt/internal/testutil"
)

func TestNoEmptyTrailingClosureParentheses(t *testing.T) {
	input := `func f() {
  a() { }
  b(1) { }
  c { }
  d.e() { print(x) }
  g()
  h()   { }
}
`
	expected := `func f() {
  a { }
  b(1) { }
  c { }
  d.e { print(x) }
  g()
  h { }
}
`
	f := testutil.AssertFormatting(t, &NoEmptyTrailingClosureParentheses{}, input, expected)
	f.AssertDiagnosedAt(RemoveEmptyTrailingParentheses("a"), 2, 3)
	f.AssertDiagnosedAt(RemoveEmptyTrailingParentheses("e"), 5, 3)
	f.AssertDiagnosedAt(RemoveEmptyTrailingParentheses("h"), 7, 3)
	f.AssertNotDiagnosed(RemoveEmptyTrailingParentheses("b"))
	f.AssertNotDiagnosed(RemoveEmptyTrailingParentheses("c"))
	f.AssertNoneLeft()
}

func TestNestedTrailingClosures(t *testing.T) {
	input := "outer() { inner() { work() } }\n"
	expected := "outer { inner { work() } }\n"

	f := testutil.AssertFormatting(t, &NoEmptyTrailingClosureParentheses{}, input, expected)
	// Innermost first.
	d := f.AssertDiagnosed(RemoveEmptyTrailingParentheses("inner"))
	if d.Column != 11 {
		t.Errorf("inner diagnostic column: got %d, want 11", d.Column)
	}
	f.AssertDiagnosed(RemoveEmptyTrailingParentheses("outer"))
	f.AssertNoneLeft()
}

func TestTrailingClosureInInitializer(t *testing.T) {
	input := "let x = make() { 1 } // trailing\n"
	expected := "let x = make { 1 } // trailing\n"

	f := testutil.AssertFormatting(t, &NoEmptyTrailingClosureParentheses{}, input, expected)
	f.AssertDiagnosed(RemoveEmptyTrailingParentheses("make"))
}

func TestTrailingClosureCommentsAreNoOp(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"inside parens", "a(/* c */) { }\n"},
		{"after parens", "a() /* c */ { }\n"},
		{"before parens", "a /* c */ () { }\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testutil.AssertFormatting(t, &NoEmptyTrailingClosureParentheses{}, tt.input, tt.input)
			f.AssertNoneLeft()
		})
	}
}
