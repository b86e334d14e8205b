package syntax

import (
	"fmt"
	"strings"
)

// PieceKind classifies one trivia atom.
type PieceKind uint8

const (
	// Spaces is a run of ' ' characters.
	Spaces PieceKind = iota
	// Tabs is a run of '\t' characters.
	Tabs
	// Newlines is a run of '\n' characters.
	Newlines
	// CarriageReturns is a run of '\r' characters.
	CarriageReturns
	// LineComment is "// ..." up to, not including, the newline.
	LineComment
	// BlockComment is "/* ... */", possibly nested.
	BlockComment
	// DocLineComment is "/// ...".
	DocLineComment
	// DocBlockComment is "/** ... */".
	DocBlockComment
)

var pieceKindNames = [...]string{
	Spaces:          "spaces",
	Tabs:            "tabs",
	Newlines:        "newlines",
	CarriageReturns: "carriageReturns",
	LineComment:     "lineComment",
	BlockComment:    "blockComment",
	DocLineComment:  "docLineComment",
	DocBlockComment: "docBlockComment",
}

func (k PieceKind) String() string {
	if int(k) < len(pieceKindNames) {
		return pieceKindNames[k]
	}
	return fmt.Sprintf("PieceKind(%d)", k)
}

// Piece is a single trivia atom. Text is the exact source text.
type Piece struct {
	Kind PieceKind
	Text string
}

// IsComment reports whether the piece carries comment content.
func (p Piece) IsComment() bool {
	switch p.Kind {
	case LineComment, BlockComment, DocLineComment, DocBlockComment:
		return true
	default:
		return false
	}
}

// Trivia is an ordered run of pieces attached to one side of a token.
type Trivia []Piece

// SpacesTrivia returns trivia holding n spaces, or nil when n <= 0.
func SpacesTrivia(n int) Trivia {
	if n <= 0 {
		return nil
	}
	return Trivia{{Kind: Spaces, Text: strings.Repeat(" ", n)}}
}

// NewlinesTrivia returns trivia holding n newlines, or nil when n <= 0.
func NewlinesTrivia(n int) Trivia {
	if n <= 0 {
		return nil
	}
	return Trivia{{Kind: Newlines, Text: strings.Repeat("\n", n)}}
}

// String returns the source text of the trivia.
func (t Trivia) String() string {
	var b strings.Builder
	for _, p := range t {
		b.WriteString(p.Text)
	}
	return b.String()
}

// IsFormattingOnly reports whether t holds no comment pieces.
func (t Trivia) IsFormattingOnly() bool {
	for _, p := range t {
		if p.IsComment() {
			return false
		}
	}
	return true
}

// HasNewline reports whether t contains a line break.
func (t Trivia) HasNewline() bool {
	for _, p := range t {
		if p.Kind == Newlines || p.Kind == CarriageReturns {
			return true
		}
	}
	return false
}

// Comments returns the comment pieces of t in order.
func (t Trivia) Comments() []Piece {
	var out []Piece
	for _, p := range t {
		if p.IsComment() {
			out = append(out, p)
		}
	}
	return out
}

// Concat joins trivia runs into a freshly allocated run. Inputs are never
// aliased by the result.
func Concat(runs ...Trivia) Trivia {
	n := 0
	for _, r := range runs {
		n += len(r)
	}
	if n == 0 {
		return nil
	}
	out := make(Trivia, 0, n)
	for _, r := range runs {
		out = append(out, r...)
	}
	return out
}

// Discard drops trivia that a rule's contract allows to disappear. Only
// formatting trivia may be discarded; comment content reaching this point is
// a rule defect.
func Discard(t Trivia) {
	if !t.IsFormattingOnly() {
		panic(fmt.Sprintf("syntax: discarding comment trivia %q", t.String()))
	}
}
