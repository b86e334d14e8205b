// Package formatter provides the rule driver, the serializer, and the rule
// interface.
package formatter

import (
	"strings"

	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// Write serializes a tree back into source text. Every token contributes
// its leading trivia, its text and its trailing trivia, so a tree fresh
// from the parser reproduces its input exactly.
func Write(n syntax.Node) string {
	var b strings.Builder
	for _, t := range syntax.Tokens(n) {
		writeToken(&b, t)
	}
	return b.String()
}

func writeToken(b *strings.Builder, t *syntax.Token) {
	for _, p := range t.Leading {
		b.WriteString(p.Text)
	}
	b.WriteString(t.Text)
	for _, p := range t.Trailing {
		b.WriteString(p.Text)
	}
}
