package parser

import (
	"fmt"

	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// Error is a syntax error at a source position.
type Error struct {
	Pos syntax.Position
	Msg string
}

func newError(pos syntax.Position, format string, args ...any) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}
