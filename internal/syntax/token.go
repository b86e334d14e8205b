package syntax

import (
	"fmt"
	"strings"
)

// TokenType classifies a token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenIdentifier
	TokenKeyword
	TokenInteger
	TokenFloat
	TokenString
	TokenOperator
	TokenArrow
	TokenLeftParen
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenLeftBracket
	TokenRightBracket
	TokenComma
	TokenColon
	TokenSemicolon
	TokenDot
)

var tokenTypeNames = [...]string{
	TokenEOF:          "eof",
	TokenIdentifier:   "identifier",
	TokenKeyword:      "keyword",
	TokenInteger:      "integer",
	TokenFloat:        "float",
	TokenString:       "string",
	TokenOperator:     "operator",
	TokenArrow:        "->",
	TokenLeftParen:    "(",
	TokenRightParen:   ")",
	TokenLeftBrace:    "{",
	TokenRightBrace:   "}",
	TokenLeftBracket:  "[",
	TokenRightBracket: "]",
	TokenComma:        ",",
	TokenColon:        ":",
	TokenSemicolon:    ";",
	TokenDot:          ".",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Position is a location in the source unit. Line and Column are 1-indexed;
// the zero Position marks a synthesized token.
type Position struct {
	Offset int
	Line   int
	Column int
}

// IsValid reports whether p refers to real source.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is the terminal node kind.
type Token struct {
	Type     TokenType
	Text     string
	Leading  Trivia
	Trailing Trivia
	Pos      Position
}

// NewToken returns a synthesized token without trivia.
func NewToken(typ TokenType, text string) *Token {
	return &Token{Type: typ, Text: text}
}

// NewKeyword returns a synthesized keyword token.
func NewKeyword(text string) *Token { return NewToken(TokenKeyword, text) }

// NewIdentifier returns a synthesized identifier token.
func NewIdentifier(text string) *Token { return NewToken(TokenIdentifier, text) }

// Kind implements Node.
func (*Token) Kind() Kind { return KindToken }
func (*Token) node()      {}

// Is reports whether t has the given type and, if text is non-empty, text.
func (t *Token) Is(typ TokenType, text string) bool {
	if t == nil || t.Type != typ {
		return false
	}
	return text == "" || t.Text == text
}

// WithText returns a copy of t with its text replaced.
func (t *Token) WithText(text string) *Token {
	c := *t
	c.Text = text
	return &c
}

// WithType returns a copy of t with its type replaced.
func (t *Token) WithType(typ TokenType) *Token {
	c := *t
	c.Type = typ
	return &c
}

// WithLeadingTrivia returns a copy of t with its leading trivia replaced.
func (t *Token) WithLeadingTrivia(tr Trivia) *Token {
	c := *t
	c.Leading = tr
	return &c
}

// WithTrailingTrivia returns a copy of t with its trailing trivia replaced.
func (t *Token) WithTrailingTrivia(tr Trivia) *Token {
	c := *t
	c.Trailing = tr
	return &c
}

// String returns the token's full source text including trivia.
func (t *Token) String() string {
	var b strings.Builder
	b.WriteString(t.Leading.String())
	b.WriteString(t.Text)
	b.WriteString(t.Trailing.String())
	return b.String()
}
