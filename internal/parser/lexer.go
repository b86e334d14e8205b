package parser

import (
	"strings"

	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// keywords are lexed as TokenKeyword. Contextual modifiers such as `open`,
// `final` or `mutating` stay identifiers and are recognized by the parser.
var keywords = map[string]bool{
	"class":       true,
	"enum":        true,
	"extension":   true,
	"false":       true,
	"fileprivate": true,
	"func":        true,
	"import":      true,
	"internal":    true,
	"let":         true,
	"nil":         true,
	"private":     true,
	"protocol":    true,
	"public":      true,
	"return":      true,
	"static":      true,
	"struct":      true,
	"true":        true,
	"typealias":   true,
	"var":         true,
}

// punctuation maps single-character tokens to their type.
var punctuation = map[byte]syntax.TokenType{
	'(': syntax.TokenLeftParen,
	')': syntax.TokenRightParen,
	'{': syntax.TokenLeftBrace,
	'}': syntax.TokenRightBrace,
	'[': syntax.TokenLeftBracket,
	']': syntax.TokenRightBracket,
	',': syntax.TokenComma,
	':': syntax.TokenColon,
	';': syntax.TokenSemicolon,
}

const operatorChars = "+-*/%<>=!&|^~?"

// lexer splits source into tokens. Trivia up to (not including) the next
// newline trails the previous token; everything else leads the next one.
type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func lex(src string) ([]*syntax.Token, error) {
	lx := &lexer{src: src, line: 1, col: 1}

	var tokens []*syntax.Token
	leading, err := lx.trivia(true)
	if err != nil {
		return nil, err
	}
	for {
		if lx.eof() {
			tokens = append(tokens, &syntax.Token{Type: syntax.TokenEOF, Leading: leading, Pos: lx.position()})
			return tokens, nil
		}

		tok, err := lx.token()
		if err != nil {
			return nil, err
		}
		tok.Leading = leading
		if tok.Trailing, err = lx.trivia(false); err != nil {
			return nil, err
		}
		if leading, err = lx.trivia(true); err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

func (lx *lexer) eof() bool { return lx.pos >= len(lx.src) }

func (lx *lexer) peek(off int) byte {
	if lx.pos+off >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+off]
}

func (lx *lexer) position() syntax.Position {
	return syntax.Position{Offset: lx.pos, Line: lx.line, Column: lx.col}
}

// advance consumes n bytes, tracking line and column.
func (lx *lexer) advance(n int) {
	for range n {
		if lx.src[lx.pos] == '\n' {
			lx.line++
			lx.col = 1
		} else {
			lx.col++
		}
		lx.pos++
	}
}

func (lx *lexer) errorf(pos syntax.Position, format string, args ...any) error {
	return newError(pos, format, args...)
}

// run consumes bytes while pred holds and returns them.
func (lx *lexer) run(pred func(byte) bool) string {
	start := lx.pos
	for !lx.eof() && pred(lx.src[lx.pos]) {
		lx.advance(1)
	}
	return lx.src[start:lx.pos]
}

// trivia scans whitespace and comments. Newlines are consumed only when
// multiline is set.
func (lx *lexer) trivia(multiline bool) (syntax.Trivia, error) {
	var out syntax.Trivia
	for !lx.eof() {
		c := lx.peek(0)
		switch {
		case c == ' ':
			out = append(out, syntax.Piece{Kind: syntax.Spaces, Text: lx.run(isByte(' '))})
		case c == '\t':
			out = append(out, syntax.Piece{Kind: syntax.Tabs, Text: lx.run(isByte('\t'))})
		case c == '\n' && multiline:
			out = append(out, syntax.Piece{Kind: syntax.Newlines, Text: lx.run(isByte('\n'))})
		case c == '\r' && multiline:
			out = append(out, syntax.Piece{Kind: syntax.CarriageReturns, Text: lx.run(isByte('\r'))})
		case c == '/' && lx.peek(1) == '/':
			kind := syntax.LineComment
			if lx.peek(2) == '/' {
				kind = syntax.DocLineComment
			}
			text := lx.run(func(b byte) bool { return b != '\n' && b != '\r' })
			out = append(out, syntax.Piece{Kind: kind, Text: text})
		case c == '/' && lx.peek(1) == '*':
			p, err := lx.blockComment()
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		default:
			return out, nil
		}
	}
	return out, nil
}

func (lx *lexer) blockComment() (syntax.Piece, error) {
	start := lx.pos
	pos := lx.position()
	kind := syntax.BlockComment
	if lx.peek(2) == '*' && lx.peek(3) != '/' {
		kind = syntax.DocBlockComment
	}
	lx.advance(2)
	depth := 1
	for depth > 0 {
		if lx.eof() {
			return syntax.Piece{}, lx.errorf(pos, "unterminated block comment")
		}
		switch {
		case lx.peek(0) == '/' && lx.peek(1) == '*':
			depth++
			lx.advance(2)
		case lx.peek(0) == '*' && lx.peek(1) == '/':
			depth--
			lx.advance(2)
		default:
			lx.advance(1)
		}
	}
	return syntax.Piece{Kind: kind, Text: lx.src[start:lx.pos]}, nil
}

func (lx *lexer) token() (*syntax.Token, error) {
	pos := lx.position()
	c := lx.peek(0)

	switch {
	case isIdentStart(c):
		text := lx.run(isIdentPart)
		typ := syntax.TokenIdentifier
		if keywords[text] {
			typ = syntax.TokenKeyword
		}
		return &syntax.Token{Type: typ, Text: text, Pos: pos}, nil

	case isDigit(c):
		return lx.number(pos), nil

	case c == '"':
		return lx.str(pos)

	case c == '.':
		if lx.peek(1) == '.' {
			text := lx.run(func(b byte) bool { return b == '.' || b == '<' })
			return &syntax.Token{Type: syntax.TokenOperator, Text: text, Pos: pos}, nil
		}
		lx.advance(1)
		return &syntax.Token{Type: syntax.TokenDot, Text: ".", Pos: pos}, nil

	case strings.IndexByte(operatorChars, c) >= 0:
		return lx.operator(pos), nil
	}

	if typ, ok := punctuation[c]; ok {
		lx.advance(1)
		return &syntax.Token{Type: typ, Text: string(c), Pos: pos}, nil
	}
	return nil, lx.errorf(pos, "unexpected character %q", c)
}

func (lx *lexer) operator(pos syntax.Position) *syntax.Token {
	start := lx.pos
	for !lx.eof() && strings.IndexByte(operatorChars, lx.peek(0)) >= 0 {
		// A comment opener ends the operator.
		if lx.peek(0) == '/' && (lx.peek(1) == '/' || lx.peek(1) == '*') && lx.pos > start {
			break
		}
		lx.advance(1)
	}
	text := lx.src[start:lx.pos]
	if text == "->" {
		return &syntax.Token{Type: syntax.TokenArrow, Text: text, Pos: pos}
	}
	return &syntax.Token{Type: syntax.TokenOperator, Text: text, Pos: pos}
}

func (lx *lexer) number(pos syntax.Position) *syntax.Token {
	start := lx.pos
	if lx.peek(0) == '0' {
		var digit func(byte) bool
		switch lx.peek(1) {
		case 'x', 'X':
			digit = isHexDigit
		case 'o', 'O':
			digit = isOctalDigit
		case 'b', 'B':
			digit = isBinaryDigit
		}
		if digit != nil {
			lx.advance(2)
			lx.run(func(b byte) bool { return digit(b) || b == '_' })
			return &syntax.Token{Type: syntax.TokenInteger, Text: lx.src[start:lx.pos], Pos: pos}
		}
	}

	lx.run(func(b byte) bool { return isDigit(b) || b == '_' })
	typ := syntax.TokenInteger
	if lx.peek(0) == '.' && isDigit(lx.peek(1)) {
		typ = syntax.TokenFloat
		lx.advance(1)
		lx.run(func(b byte) bool { return isDigit(b) || b == '_' })
	}
	if e := lx.peek(0); e == 'e' || e == 'E' {
		off := 1
		if s := lx.peek(1); s == '+' || s == '-' {
			off = 2
		}
		if isDigit(lx.peek(off)) {
			typ = syntax.TokenFloat
			lx.advance(off)
			lx.run(isDigit)
		}
	}
	return &syntax.Token{Type: typ, Text: lx.src[start:lx.pos], Pos: pos}
}

func (lx *lexer) str(pos syntax.Position) (*syntax.Token, error) {
	if strings.HasPrefix(lx.src[lx.pos:], `"""`) {
		return nil, lx.errorf(pos, "multi-line string literals are not supported")
	}
	start := lx.pos
	lx.advance(1)
	for {
		if lx.eof() || lx.peek(0) == '\n' {
			return nil, lx.errorf(pos, "unterminated string literal")
		}
		switch lx.peek(0) {
		case '\\':
			if lx.peek(1) == '\n' || lx.pos+1 >= len(lx.src) {
				return nil, lx.errorf(pos, "unterminated string literal")
			}
			lx.advance(2)
		case '"':
			lx.advance(1)
			return &syntax.Token{Type: syntax.TokenString, Text: lx.src[start:lx.pos], Pos: pos}, nil
		default:
			lx.advance(1)
		}
	}
}

func isByte(want byte) func(byte) bool {
	return func(b byte) bool { return b == want }
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentPart(b byte) bool { return isIdentStart(b) || isDigit(b) }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }

func isBinaryDigit(b byte) bool { return b == '0' || b == '1' }
