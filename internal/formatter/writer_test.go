package formatter

import (
	"testing"

	"github.com/donaldgifford/swiftfmt/internal/parser"
	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

func TestWriteRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "line comment",
			input: "// This is a comment\n",
		},
		{
			name:  "doc comment",
			input: "/// Docs\nfunc f() {}\n",
		},
		{
			name:  "block comment between tokens",
			input: "let x /* inline */ = 1\n",
		},
		{
			name:  "blank lines",
			input: "import A\n\n\nimport B\n",
		},
		{
			name: "extension with members",
			input: "public extension Foo {\n" +
				"\tfunc bar() {}\n" +
				"\n" +
				"\t// trailing\n" +
				"}\n",
		},
		{
			name:  "trailing closure",
			input: "queue.async() { work() } // go\n",
		},
		{
			name:  "function type",
			input: "typealias Handler = (Int, String) -> ()\n",
		},
		{
			name:  "carriage returns",
			input: "let a = 1\r\nlet b = 2\r\n",
		},
		{
			name:  "no final newline",
			input: "let a = 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parser.Parse(tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			got := Write(tree)
			if got != tt.input {
				t.Errorf("round-trip failed:\nwant: %q\ngot:  %q", tt.input, got)
			}
		})
	}
}

func TestWriteSubtree(t *testing.T) {
	tree, err := parser.Parse("  let x = foo(1) // c\n")
	if err != nil {
		t.Fatal(err)
	}
	v := tree.Stmts[0].(*syntax.VariableDecl)

	if got := Write(v.Initializer); got != "foo(1) // c" {
		t.Errorf("Write(initializer) = %q", got)
	}
	if got := Write(v); got != "  let x = foo(1) // c" {
		t.Errorf("Write(decl) = %q", got)
	}
}
