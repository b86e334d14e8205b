package syntax

import "fmt"

// isNil reports whether n is a nil interface or a typed nil pointer.
func isNil[T Node](n T) bool {
	var zero T
	return any(n) == any(zero)
}

func appendNode[T Node](out []Node, n T) []Node {
	if isNil(n) {
		return out
	}
	return append(out, n)
}

func appendNodes[T Node](out []Node, ns []T) []Node {
	for _, n := range ns {
		out = appendNode(out, n)
	}
	return out
}

// Children returns the non-nil direct children of n in source order.
func Children(n Node) []Node {
	var out []Node
	switch n := n.(type) {
	case *Token:
		return nil
	case *SourceFile:
		out = appendNodes(out, n.Stmts)
		out = appendNode(out, n.EOF)
	case *CodeBlock:
		out = appendNode(out, n.LeftBrace)
		out = appendNodes(out, n.Stmts)
		out = appendNode(out, n.RightBrace)
	case *MemberBlock:
		out = appendNode(out, n.LeftBrace)
		out = appendNodes(out, n.Members)
		out = appendNode(out, n.RightBrace)
	case *ExtensionDecl:
		out = appendNodes(out, n.Mods)
		out = appendNode(out, n.ExtensionKeyword)
		out = appendNode(out, n.ExtendedType)
		out = appendNode(out, n.Inheritance)
		out = appendNode(out, n.Members)
	case *TypeDecl:
		out = appendNodes(out, n.Mods)
		out = appendNode(out, n.TypeKeyword)
		out = appendNode(out, n.Name)
		out = appendNode(out, n.Inheritance)
		out = appendNode(out, n.Members)
	case *FunctionDecl:
		out = appendNodes(out, n.Mods)
		out = appendNode(out, n.FuncKeyword)
		out = appendNode(out, n.Name)
		out = appendNode(out, n.Signature)
		out = appendNode(out, n.Body)
	case *FunctionSignature:
		out = appendNode(out, n.LeftParen)
		out = appendNodes(out, n.Params)
		out = appendNode(out, n.RightParen)
		out = appendNode(out, n.Arrow)
		out = appendNode(out, n.ReturnType)
	case *Parameter:
		out = appendNode(out, n.FirstName)
		out = appendNode(out, n.SecondName)
		out = appendNode(out, n.Colon)
		out = appendNode(out, n.Type)
		out = appendNode(out, n.Comma)
	case *VariableDecl:
		out = appendNodes(out, n.Mods)
		out = appendNode(out, n.BindingKeyword)
		out = appendNode(out, n.Name)
		out = appendNode(out, n.Colon)
		out = appendNode(out, n.TypeAnnotation)
		out = appendNode(out, n.Equal)
		out = appendNode(out, n.Initializer)
		out = appendNode(out, n.Accessor)
	case *TypealiasDecl:
		out = appendNodes(out, n.Mods)
		out = appendNode(out, n.TypealiasKeyword)
		out = appendNode(out, n.Name)
		out = appendNode(out, n.Equal)
		out = appendNode(out, n.Value)
	case *ImportDecl:
		out = appendNodes(out, n.Mods)
		out = appendNode(out, n.ImportKeyword)
		out = appendNodes(out, n.Path)
	case *InheritanceClause:
		out = appendNode(out, n.Colon)
		out = appendNodes(out, n.Types)
	case *InheritedType:
		out = appendNode(out, n.Type)
		out = appendNode(out, n.Comma)
	case *Modifier:
		out = appendNode(out, n.Name)
		out = appendNode(out, n.LeftParen)
		out = appendNode(out, n.Detail)
		out = appendNode(out, n.RightParen)
	case *ExprStmt:
		out = appendNode(out, n.X)
	case *ReturnStmt:
		out = appendNode(out, n.ReturnKeyword)
		out = appendNode(out, n.Value)
	case *IdentifierExpr:
		out = appendNode(out, n.Name)
	case *IntegerLiteralExpr:
		out = appendNode(out, n.Literal)
	case *FloatLiteralExpr:
		out = appendNode(out, n.Literal)
	case *StringLiteralExpr:
		out = appendNode(out, n.Literal)
	case *MemberAccessExpr:
		out = appendNode(out, n.Base)
		out = appendNode(out, n.Dot)
		out = appendNode(out, n.Name)
	case *PrefixOperatorExpr:
		out = appendNode(out, n.Operator)
		out = appendNode(out, n.Operand)
	case *BinaryExpr:
		out = appendNode(out, n.Left)
		out = appendNode(out, n.Operator)
		out = appendNode(out, n.Right)
	case *TupleExpr:
		out = appendNode(out, n.LeftParen)
		out = appendNodes(out, n.Elements)
		out = appendNode(out, n.RightParen)
	case *CallExpr:
		out = appendNode(out, n.Callee)
		out = appendNode(out, n.LeftParen)
		out = appendNodes(out, n.Args)
		out = appendNode(out, n.RightParen)
		out = appendNode(out, n.TrailingClosure)
	case *Argument:
		out = appendNode(out, n.Label)
		out = appendNode(out, n.Colon)
		out = appendNode(out, n.Value)
		out = appendNode(out, n.Comma)
	case *ClosureExpr:
		out = appendNode(out, n.LeftBrace)
		out = appendNodes(out, n.Stmts)
		out = appendNode(out, n.RightBrace)
	case *SimpleType:
		out = appendNode(out, n.Name)
	case *MemberType:
		out = appendNode(out, n.Base)
		out = appendNode(out, n.Dot)
		out = appendNode(out, n.Name)
	case *OptionalType:
		out = appendNode(out, n.Wrapped)
		out = appendNode(out, n.Mark)
	case *ArrayType:
		out = appendNode(out, n.LeftBracket)
		out = appendNode(out, n.Element)
		out = appendNode(out, n.RightBracket)
	case *TupleType:
		out = appendNode(out, n.LeftParen)
		out = appendNodes(out, n.Elements)
		out = appendNode(out, n.RightParen)
	case *TupleTypeElement:
		out = appendNode(out, n.Type)
		out = appendNode(out, n.Comma)
	case *FunctionType:
		out = appendNode(out, n.Params)
		out = appendNode(out, n.Arrow)
		out = appendNode(out, n.ReturnType)
	default:
		panic(fmt.Sprintf("syntax: unhandled node %T", n))
	}
	return out
}

// Inspect traverses n depth-first in source order, calling f for every node.
// Children of a node are skipped when f returns false.
func Inspect(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// Tokens returns all tokens under n in source order.
func Tokens(n Node) []*Token {
	var out []*Token
	Inspect(n, func(c Node) bool {
		if t, ok := c.(*Token); ok {
			out = append(out, t)
			return false
		}
		return true
	})
	return out
}

// FirstToken returns the first token under n, or nil if n has none.
func FirstToken(n Node) *Token {
	if t, ok := n.(*Token); ok {
		return t
	}
	for _, c := range Children(n) {
		if t := FirstToken(c); t != nil {
			return t
		}
	}
	return nil
}

// LastToken returns the last token under n, or nil if n has none.
func LastToken(n Node) *Token {
	if t, ok := n.(*Token); ok {
		return t
	}
	children := Children(n)
	for i := len(children) - 1; i >= 0; i-- {
		if t := LastToken(children[i]); t != nil {
			return t
		}
	}
	return nil
}

// Text returns the source text of n without the leading trivia of its first
// token and the trailing trivia of its last token.
func Text(n Node) string {
	toks := Tokens(n)
	var b []byte
	for i, t := range toks {
		if i > 0 {
			b = append(b, t.Leading.String()...)
		}
		b = append(b, t.Text...)
		if i < len(toks)-1 {
			b = append(b, t.Trailing.String()...)
		}
	}
	return string(b)
}
