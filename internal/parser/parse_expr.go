package parser

import (
	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// postfixMarks are operators that bind to the preceding type.
var postfixMarks = map[string]bool{"?": true, "!": true}

func (p *state) parseExpr() (syntax.Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	// Operators are kept left-nested; a line break before an operator ends
	// the expression.
	for p.atSameLine(syntax.TokenOperator) {
		op := p.next()
		right, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		left = &syntax.BinaryExpr{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func (p *state) parsePrefix() (syntax.Expr, error) {
	if p.at(syntax.TokenOperator) {
		op := p.next()
		operand, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		return &syntax.PrefixOperatorExpr{Operator: op, Operand: operand}, nil
	}
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(x)
}

func (p *state) parsePrimary() (syntax.Expr, error) {
	t := p.peek()
	switch t.Type {
	case syntax.TokenIdentifier:
		return &syntax.IdentifierExpr{Name: p.next()}, nil
	case syntax.TokenKeyword:
		switch t.Text {
		case "true", "false", "nil":
			return &syntax.IdentifierExpr{Name: p.next()}, nil
		}
	case syntax.TokenInteger:
		return &syntax.IntegerLiteralExpr{Literal: p.next()}, nil
	case syntax.TokenFloat:
		return &syntax.FloatLiteralExpr{Literal: p.next()}, nil
	case syntax.TokenString:
		return &syntax.StringLiteralExpr{Literal: p.next()}, nil
	case syntax.TokenDot:
		dot := p.next()
		name, err := p.expect(syntax.TokenIdentifier, "member name")
		if err != nil {
			return nil, err
		}
		return &syntax.MemberAccessExpr{Dot: dot, Name: name}, nil
	case syntax.TokenLeftParen:
		lp := p.next()
		args, rp, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		return &syntax.TupleExpr{LeftParen: lp, Elements: args, RightParen: rp}, nil
	case syntax.TokenLeftBrace:
		return p.parseClosure()
	}
	return nil, p.unexpected("expression")
}

func (p *state) parsePostfix(x syntax.Expr) (syntax.Expr, error) {
	for {
		switch {
		case p.at(syntax.TokenDot):
			dot := p.next()
			name := p.accept(syntax.TokenIdentifier)
			if name == nil {
				var err error
				if name, err = p.expect(syntax.TokenInteger, "member name"); err != nil {
					return nil, err
				}
			}
			x = &syntax.MemberAccessExpr{Base: x, Dot: dot, Name: name}

		case p.atSameLine(syntax.TokenLeftParen):
			lp := p.next()
			args, rp, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			x = &syntax.CallExpr{Callee: x, LeftParen: lp, Args: args, RightParen: rp}

		case p.atSameLine(syntax.TokenLeftBrace) && acceptsTrailingClosure(x):
			closure, err := p.parseClosure()
			if err != nil {
				return nil, err
			}
			if call, ok := x.(*syntax.CallExpr); ok {
				c := *call
				c.TrailingClosure = closure
				x = &c
			} else {
				x = &syntax.CallExpr{Callee: x, TrailingClosure: closure}
			}

		default:
			return x, nil
		}
	}
}

// acceptsTrailingClosure reports whether a `{` following x on the same line
// is a trailing closure argument.
func acceptsTrailingClosure(x syntax.Expr) bool {
	switch x := x.(type) {
	case *syntax.IdentifierExpr:
		return x.Name.Type == syntax.TokenIdentifier
	case *syntax.MemberAccessExpr:
		return true
	case *syntax.CallExpr:
		return x.TrailingClosure == nil
	}
	return false
}

// parseArguments parses a call or tuple argument list after its `(`.
func (p *state) parseArguments() ([]*syntax.Argument, *syntax.Token, error) {
	var args []*syntax.Argument
	for !p.at(syntax.TokenRightParen) {
		arg := &syntax.Argument{}
		if (p.at(syntax.TokenIdentifier) || p.at(syntax.TokenKeyword)) && p.peekAt(1).Type == syntax.TokenColon {
			arg.Label = p.next()
			arg.Colon = p.next()
		}
		v, err := p.parseExpr()
		if err != nil {
			return nil, nil, err
		}
		arg.Value = v
		arg.Comma = p.accept(syntax.TokenComma)
		args = append(args, arg)
		if arg.Comma == nil {
			break
		}
	}
	rp, err := p.expect(syntax.TokenRightParen, "')'")
	if err != nil {
		return nil, nil, err
	}
	return args, rp, nil
}

func (p *state) parseClosure() (*syntax.ClosureExpr, error) {
	lb := p.next()
	stmts, rb, err := p.parseStmtsUntilBrace()
	if err != nil {
		return nil, err
	}
	return &syntax.ClosureExpr{LeftBrace: lb, Stmts: stmts, RightBrace: rb}, nil
}

func (p *state) parseType() (syntax.Type, error) {
	var typ syntax.Type
	switch {
	case p.at(syntax.TokenLeftParen):
		tuple, err := p.parseTupleType()
		if err != nil {
			return nil, err
		}
		if arrow := p.accept(syntax.TokenArrow); arrow != nil {
			ret, err := p.parseType()
			if err != nil {
				return nil, err
			}
			return &syntax.FunctionType{Params: tuple, Arrow: arrow, ReturnType: ret}, nil
		}
		typ = tuple

	case p.at(syntax.TokenLeftBracket):
		lb := p.next()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		rb, err := p.expect(syntax.TokenRightBracket, "']'")
		if err != nil {
			return nil, err
		}
		typ = &syntax.ArrayType{LeftBracket: lb, Element: elem, RightBracket: rb}

	case p.at(syntax.TokenIdentifier):
		typ = &syntax.SimpleType{Name: p.next()}
		for p.at(syntax.TokenDot) && p.peekAt(1).Type == syntax.TokenIdentifier {
			typ = &syntax.MemberType{Base: typ, Dot: p.next(), Name: p.next()}
		}

	default:
		return nil, p.unexpected("type")
	}

	for p.at(syntax.TokenOperator) && postfixMarks[p.peek().Text] && p.attached() {
		typ = &syntax.OptionalType{Wrapped: typ, Mark: p.next()}
	}
	return typ, nil
}

// attached reports whether no trivia separates the next token from the
// previous one.
func (p *state) attached() bool {
	return p.pos > 0 && len(p.tokens[p.pos-1].Trailing) == 0 && len(p.peek().Leading) == 0
}

func (p *state) parseTupleType() (*syntax.TupleType, error) {
	tuple := &syntax.TupleType{LeftParen: p.next()}
	for !p.at(syntax.TokenRightParen) {
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		entry := &syntax.TupleTypeElement{Type: elem, Comma: p.accept(syntax.TokenComma)}
		tuple.Elements = append(tuple.Elements, entry)
		if entry.Comma == nil {
			break
		}
	}
	rp, err := p.expect(syntax.TokenRightParen, "')'")
	if err != nil {
		return nil, err
	}
	tuple.RightParen = rp
	return tuple, nil
}
