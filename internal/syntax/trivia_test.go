package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriviaFormattingOnly(t *testing.T) {
	tests := []struct {
		name string
		tr   Trivia
		want bool
	}{
		{"empty", nil, true},
		{"spaces", SpacesTrivia(2), true},
		{"newline and indent", Concat(NewlinesTrivia(1), SpacesTrivia(4)), true},
		{"line comment", Trivia{{Kind: LineComment, Text: "// x"}}, false},
		{"doc block", Trivia{{Kind: DocBlockComment, Text: "/** x */"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tr.IsFormattingOnly())
		})
	}
}

func TestConcatDoesNotAlias(t *testing.T) {
	a := make(Trivia, 1, 4)
	a[0] = Piece{Kind: Spaces, Text: " "}
	b := NewlinesTrivia(1)

	got := Concat(a, b)
	got[0].Text = "  "

	assert.Equal(t, " ", a[0].Text)
	assert.Equal(t, " \n", Concat(a, b).String())
	assert.Nil(t, Concat(nil, nil))
}

func TestDiscardPanicsOnComment(t *testing.T) {
	assert.NotPanics(t, func() { Discard(SpacesTrivia(1)) })
	assert.Panics(t, func() {
		Discard(Trivia{{Kind: BlockComment, Text: "/* keep */"}})
	})
}

func TestTriviaHelpers(t *testing.T) {
	tr := Trivia{
		{Kind: Newlines, Text: "\n"},
		{Kind: LineComment, Text: "// a"},
		{Kind: Newlines, Text: "\n"},
		{Kind: Spaces, Text: "  "},
	}
	assert.True(t, tr.HasNewline())
	assert.False(t, SpacesTrivia(3).HasNewline())
	assert.Equal(t, []Piece{{Kind: LineComment, Text: "// a"}}, tr.Comments())
	assert.Equal(t, "\n// a\n  ", tr.String())
	assert.Nil(t, SpacesTrivia(0))
}
