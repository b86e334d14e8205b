package syntax

import "fmt"

// Visitor is applied to every node after its children have been rewritten.
// It returns the node to use in place of its argument; returning the argument
// itself means "unchanged".
type Visitor func(Node) Node

type rewriter struct {
	visit   Visitor
	changed bool
}

// field rewrites a single child slot, asserting that the replacement still
// fits the slot's type.
func field[T Node](r *rewriter, n T) T {
	if isNil(n) {
		return n
	}
	out := Rewrite(n, r.visit)
	t, ok := out.(T)
	if !ok {
		panic(fmt.Sprintf("syntax: rewrite of %s produced %T, which does not fit its parent slot", n.Kind(), out))
	}
	if any(t) != any(n) {
		r.changed = true
	}
	return t
}

// list rewrites a child slice, copying it only when an element changes.
func list[T Node](r *rewriter, ns []T) []T {
	var out []T
	for i, n := range ns {
		sub := rewriter{visit: r.visit}
		t := field(&sub, n)
		if sub.changed && out == nil {
			out = make([]T, len(ns))
			copy(out, ns)
		}
		if out != nil {
			out[i] = t
		}
	}
	if out == nil {
		return ns
	}
	r.changed = true
	return out
}

// Rewrite rebuilds n bottom-up: children are rewritten first, ancestors are
// copied only when a descendant changed, and visit runs on each node once.
// Unchanged subtrees are returned pointer-identical.
func Rewrite(n Node, visit Visitor) Node {
	r := &rewriter{visit: visit}
	var out Node = n

	switch n := n.(type) {
	case *Token:
	case *SourceFile:
		c := *n
		c.Stmts = list(r, n.Stmts)
		c.EOF = field(r, n.EOF)
		if r.changed {
			out = &c
		}
	case *CodeBlock:
		c := *n
		c.LeftBrace = field(r, n.LeftBrace)
		c.Stmts = list(r, n.Stmts)
		c.RightBrace = field(r, n.RightBrace)
		if r.changed {
			out = &c
		}
	case *MemberBlock:
		c := *n
		c.LeftBrace = field(r, n.LeftBrace)
		c.Members = list(r, n.Members)
		c.RightBrace = field(r, n.RightBrace)
		if r.changed {
			out = &c
		}
	case *ExtensionDecl:
		c := *n
		c.Mods = list(r, n.Mods)
		c.ExtensionKeyword = field(r, n.ExtensionKeyword)
		c.ExtendedType = field(r, n.ExtendedType)
		c.Inheritance = field(r, n.Inheritance)
		c.Members = field(r, n.Members)
		if r.changed {
			out = &c
		}
	case *TypeDecl:
		c := *n
		c.Mods = list(r, n.Mods)
		c.TypeKeyword = field(r, n.TypeKeyword)
		c.Name = field(r, n.Name)
		c.Inheritance = field(r, n.Inheritance)
		c.Members = field(r, n.Members)
		if r.changed {
			out = &c
		}
	case *FunctionDecl:
		c := *n
		c.Mods = list(r, n.Mods)
		c.FuncKeyword = field(r, n.FuncKeyword)
		c.Name = field(r, n.Name)
		c.Signature = field(r, n.Signature)
		c.Body = field(r, n.Body)
		if r.changed {
			out = &c
		}
	case *FunctionSignature:
		c := *n
		c.LeftParen = field(r, n.LeftParen)
		c.Params = list(r, n.Params)
		c.RightParen = field(r, n.RightParen)
		c.Arrow = field(r, n.Arrow)
		c.ReturnType = field(r, n.ReturnType)
		if r.changed {
			out = &c
		}
	case *Parameter:
		c := *n
		c.FirstName = field(r, n.FirstName)
		c.SecondName = field(r, n.SecondName)
		c.Colon = field(r, n.Colon)
		c.Type = field(r, n.Type)
		c.Comma = field(r, n.Comma)
		if r.changed {
			out = &c
		}
	case *VariableDecl:
		c := *n
		c.Mods = list(r, n.Mods)
		c.BindingKeyword = field(r, n.BindingKeyword)
		c.Name = field(r, n.Name)
		c.Colon = field(r, n.Colon)
		c.TypeAnnotation = field(r, n.TypeAnnotation)
		c.Equal = field(r, n.Equal)
		c.Initializer = field(r, n.Initializer)
		c.Accessor = field(r, n.Accessor)
		if r.changed {
			out = &c
		}
	case *TypealiasDecl:
		c := *n
		c.Mods = list(r, n.Mods)
		c.TypealiasKeyword = field(r, n.TypealiasKeyword)
		c.Name = field(r, n.Name)
		c.Equal = field(r, n.Equal)
		c.Value = field(r, n.Value)
		if r.changed {
			out = &c
		}
	case *ImportDecl:
		c := *n
		c.Mods = list(r, n.Mods)
		c.ImportKeyword = field(r, n.ImportKeyword)
		c.Path = list(r, n.Path)
		if r.changed {
			out = &c
		}
	case *InheritanceClause:
		c := *n
		c.Colon = field(r, n.Colon)
		c.Types = list(r, n.Types)
		if r.changed {
			out = &c
		}
	case *InheritedType:
		c := *n
		c.Type = field(r, n.Type)
		c.Comma = field(r, n.Comma)
		if r.changed {
			out = &c
		}
	case *Modifier:
		c := *n
		c.Name = field(r, n.Name)
		c.LeftParen = field(r, n.LeftParen)
		c.Detail = field(r, n.Detail)
		c.RightParen = field(r, n.RightParen)
		if r.changed {
			out = &c
		}
	case *ExprStmt:
		c := *n
		c.X = field(r, n.X)
		if r.changed {
			out = &c
		}
	case *ReturnStmt:
		c := *n
		c.ReturnKeyword = field(r, n.ReturnKeyword)
		c.Value = field(r, n.Value)
		if r.changed {
			out = &c
		}
	case *IdentifierExpr:
		c := *n
		c.Name = field(r, n.Name)
		if r.changed {
			out = &c
		}
	case *IntegerLiteralExpr:
		c := *n
		c.Literal = field(r, n.Literal)
		if r.changed {
			out = &c
		}
	case *FloatLiteralExpr:
		c := *n
		c.Literal = field(r, n.Literal)
		if r.changed {
			out = &c
		}
	case *StringLiteralExpr:
		c := *n
		c.Literal = field(r, n.Literal)
		if r.changed {
			out = &c
		}
	case *MemberAccessExpr:
		c := *n
		c.Base = field(r, n.Base)
		c.Dot = field(r, n.Dot)
		c.Name = field(r, n.Name)
		if r.changed {
			out = &c
		}
	case *PrefixOperatorExpr:
		c := *n
		c.Operator = field(r, n.Operator)
		c.Operand = field(r, n.Operand)
		if r.changed {
			out = &c
		}
	case *BinaryExpr:
		c := *n
		c.Left = field(r, n.Left)
		c.Operator = field(r, n.Operator)
		c.Right = field(r, n.Right)
		if r.changed {
			out = &c
		}
	case *TupleExpr:
		c := *n
		c.LeftParen = field(r, n.LeftParen)
		c.Elements = list(r, n.Elements)
		c.RightParen = field(r, n.RightParen)
		if r.changed {
			out = &c
		}
	case *CallExpr:
		c := *n
		c.Callee = field(r, n.Callee)
		c.LeftParen = field(r, n.LeftParen)
		c.Args = list(r, n.Args)
		c.RightParen = field(r, n.RightParen)
		c.TrailingClosure = field(r, n.TrailingClosure)
		if r.changed {
			out = &c
		}
	case *Argument:
		c := *n
		c.Label = field(r, n.Label)
		c.Colon = field(r, n.Colon)
		c.Value = field(r, n.Value)
		c.Comma = field(r, n.Comma)
		if r.changed {
			out = &c
		}
	case *ClosureExpr:
		c := *n
		c.LeftBrace = field(r, n.LeftBrace)
		c.Stmts = list(r, n.Stmts)
		c.RightBrace = field(r, n.RightBrace)
		if r.changed {
			out = &c
		}
	case *SimpleType:
		c := *n
		c.Name = field(r, n.Name)
		if r.changed {
			out = &c
		}
	case *MemberType:
		c := *n
		c.Base = field(r, n.Base)
		c.Dot = field(r, n.Dot)
		c.Name = field(r, n.Name)
		if r.changed {
			out = &c
		}
	case *OptionalType:
		c := *n
		c.Wrapped = field(r, n.Wrapped)
		c.Mark = field(r, n.Mark)
		if r.changed {
			out = &c
		}
	case *ArrayType:
		c := *n
		c.LeftBracket = field(r, n.LeftBracket)
		c.Element = field(r, n.Element)
		c.RightBracket = field(r, n.RightBracket)
		if r.changed {
			out = &c
		}
	case *TupleType:
		c := *n
		c.LeftParen = field(r, n.LeftParen)
		c.Elements = list(r, n.Elements)
		c.RightParen = field(r, n.RightParen)
		if r.changed {
			out = &c
		}
	case *TupleTypeElement:
		c := *n
		c.Type = field(r, n.Type)
		c.Comma = field(r, n.Comma)
		if r.changed {
			out = &c
		}
	case *FunctionType:
		c := *n
		c.Params = field(r, n.Params)
		c.Arrow = field(r, n.Arrow)
		c.ReturnType = field(r, n.ReturnType)
		if r.changed {
			out = &c
		}
	default:
		panic(fmt.Sprintf("syntax: unhandled node %T", n))
	}

	return visit(out)
}

// ReplaceToken returns n with the token old swapped for repl. Tokens are
// matched by identity; n is returned unchanged when old is not under it.
func ReplaceToken[T Node](n T, old, repl *Token) T {
	out := Rewrite(n, func(c Node) Node {
		if t, ok := c.(*Token); ok && t == old {
			return repl
		}
		return c
	})
	return out.(T)
}
