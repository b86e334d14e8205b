// Package syntax defines the immutable syntax tree consumed and produced by
// formatting rules: a closed set of node variants, tokens with leading and
// trailing trivia, and the helpers rules use to edit them without losing
// formatting.
package syntax

// Node is implemented only by the variants in this package.
type Node interface {
	Kind() Kind
	node()
}

// Expr is an expression node.
type Expr interface {
	Node
	expr()
}

// Type is a type node.
type Type interface {
	Node
	typ()
}

// Stmt is a statement node. Every declaration is also a statement.
type Stmt interface {
	Node
	stmt()
}

// Decl is a declaration. All declaration variants expose their modifiers and
// introducing keyword, so modifier edits never need per-kind branching.
type Decl interface {
	Stmt
	Modifiers() ModifierList
	WithModifiers(ModifierList) Decl
	Keyword() *Token
	WithKeyword(*Token) Decl
}

// SourceFile is the root of one source unit.
type SourceFile struct {
	Stmts []Stmt
	EOF   *Token
}

// CodeBlock is a braced statement list (function bodies, accessors).
type CodeBlock struct {
	LeftBrace  *Token
	Stmts      []Stmt
	RightBrace *Token
}

// MemberBlock is the braced member list of a type or extension.
type MemberBlock struct {
	LeftBrace  *Token
	Members    []Decl
	RightBrace *Token
}

// ExtensionDecl is `extension T: P { ... }`.
type ExtensionDecl struct {
	Mods             ModifierList
	ExtensionKeyword *Token
	ExtendedType     Type
	Inheritance      *InheritanceClause
	Members          *MemberBlock
}

// TypeDecl is a struct, class, enum or protocol declaration.
type TypeDecl struct {
	Mods        ModifierList
	TypeKeyword *Token
	Name        *Token
	Inheritance *InheritanceClause
	Members     *MemberBlock
}

// FunctionDecl is `func name(params) -> T { ... }`. Body is nil for
// requirements. Initializers, deinitializers and subscripts share the shape:
// FuncKeyword holds `init`, `deinit` or `subscript`, Name is nil (or the
// failable mark of `init?`), and a deinit has no Signature.
type FunctionDecl struct {
	Mods        ModifierList
	FuncKeyword *Token
	Name        *Token
	Signature   *FunctionSignature
	Body        *CodeBlock
}

// FunctionSignature is the parameter clause and optional return type of a
// function declaration.
type FunctionSignature struct {
	LeftParen  *Token
	Params     []*Parameter
	RightParen *Token
	Arrow      *Token
	ReturnType Type
}

// Parameter is `first second: T,`.
type Parameter struct {
	FirstName  *Token
	SecondName *Token
	Colon      *Token
	Type       Type
	Comma      *Token
}

// VariableDecl is `let|var name: T = value` or a computed `var name: T { ... }`.
type VariableDecl struct {
	Mods           ModifierList
	BindingKeyword *Token
	Name           *Token
	Colon          *Token
	TypeAnnotation Type
	Equal          *Token
	Initializer    Expr
	Accessor       *CodeBlock
}

// TypealiasDecl is `typealias Name = T`.
type TypealiasDecl struct {
	Mods             ModifierList
	TypealiasKeyword *Token
	Name             *Token
	Equal            *Token
	Value            Type
}

// ImportDecl is `import A.B`. Path holds identifiers and dots in order.
type ImportDecl struct {
	Mods          ModifierList
	ImportKeyword *Token
	Path          []*Token
}

// InheritanceClause is `: A, B`.
type InheritanceClause struct {
	Colon *Token
	Types []*InheritedType
}

// InheritedType is one entry of an inheritance clause.
type InheritedType struct {
	Type  Type
	Comma *Token
}

// Modifier is a qualifier keyword such as `public` or `private(set)`.
type Modifier struct {
	Name       *Token
	LeftParen  *Token
	Detail     *Token
	RightParen *Token
}

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	X Expr
}

// ReturnStmt is `return value`.
type ReturnStmt struct {
	ReturnKeyword *Token
	Value         Expr
}

// IdentifierExpr is a bare name, including `true`, `false`, `nil` and `self`.
type IdentifierExpr struct {
	Name *Token
}

// IntegerLiteralExpr is an integer literal in any radix.
type IntegerLiteralExpr struct {
	Literal *Token
}

// FloatLiteralExpr is a floating point literal.
type FloatLiteralExpr struct {
	Literal *Token
}

// StringLiteralExpr is a single-line string literal.
type StringLiteralExpr struct {
	Literal *Token
}

// MemberAccessExpr is `base.name`. Base is nil for implicit member
// expressions such as `.red`.
type MemberAccessExpr struct {
	Base Expr
	Dot  *Token
	Name *Token
}

// PrefixOperatorExpr is `-x`, `!x`.
type PrefixOperatorExpr struct {
	Operator *Token
	Operand  Expr
}

// BinaryExpr is `left op right`. Operators are kept flat and left-nested;
// precedence is irrelevant to formatting.
type BinaryExpr struct {
	Left     Expr
	Operator *Token
	Right    Expr
}

// TupleExpr is a parenthesized expression list.
type TupleExpr struct {
	LeftParen  *Token
	Elements   []*Argument
	RightParen *Token
}

// CallExpr is `callee(args) { closure }`. LeftParen and RightParen are both
// nil when the call only has a trailing closure.
type CallExpr struct {
	Callee          Expr
	LeftParen       *Token
	Args            []*Argument
	RightParen      *Token
	TrailingClosure *ClosureExpr
}

// Argument is `label: value,` inside a call or tuple.
type Argument struct {
	Label *Token
	Colon *Token
	Value Expr
	Comma *Token
}

// ClosureExpr is `{ statements }`.
type ClosureExpr struct {
	LeftBrace  *Token
	Stmts      []Stmt
	RightBrace *Token
}

// SimpleType is a named type such as `Int` or `Void`.
type SimpleType struct {
	Name *Token
}

// MemberType is `Base.Name`.
type MemberType struct {
	Base Type
	Dot  *Token
	Name *Token
}

// OptionalType is `T?` or `T!`.
type OptionalType struct {
	Wrapped Type
	Mark    *Token
}

// ArrayType is `[T]`.
type ArrayType struct {
	LeftBracket  *Token
	Element      Type
	RightBracket *Token
}

// TupleType is `(A, B)`; `()` is the empty tuple.
type TupleType struct {
	LeftParen  *Token
	Elements   []*TupleTypeElement
	RightParen *Token
}

// TupleTypeElement is one entry of a tuple type.
type TupleTypeElement struct {
	Type  Type
	Comma *Token
}

// FunctionType is `(A, B) -> R`.
type FunctionType struct {
	Params     *TupleType
	Arrow      *Token
	ReturnType Type
}

func (*SourceFile) Kind() Kind         { return KindSourceFile }
func (*CodeBlock) Kind() Kind          { return KindCodeBlock }
func (*MemberBlock) Kind() Kind        { return KindMemberBlock }
func (*ExtensionDecl) Kind() Kind      { return KindExtensionDecl }
func (*TypeDecl) Kind() Kind           { return KindTypeDecl }
func (*FunctionDecl) Kind() Kind       { return KindFunctionDecl }
func (*FunctionSignature) Kind() Kind  { return KindFunctionSignature }
func (*Parameter) Kind() Kind          { return KindParameter }
func (*VariableDecl) Kind() Kind       { return KindVariableDecl }
func (*TypealiasDecl) Kind() Kind      { return KindTypealiasDecl }
func (*ImportDecl) Kind() Kind         { return KindImportDecl }
func (*InheritanceClause) Kind() Kind  { return KindInheritanceClause }
func (*InheritedType) Kind() Kind      { return KindInheritedType }
func (*Modifier) Kind() Kind           { return KindModifier }
func (*ExprStmt) Kind() Kind           { return KindExprStmt }
func (*ReturnStmt) Kind() Kind         { return KindReturnStmt }
func (*IdentifierExpr) Kind() Kind     { return KindIdentifierExpr }
func (*IntegerLiteralExpr) Kind() Kind { return KindIntegerLiteralExpr }
func (*FloatLiteralExpr) Kind() Kind   { return KindFloatLiteralExpr }
func (*StringLiteralExpr) Kind() Kind  { return KindStringLiteralExpr }
func (*MemberAccessExpr) Kind() Kind   { return KindMemberAccessExpr }
func (*PrefixOperatorExpr) Kind() Kind { return KindPrefixOperatorExpr }
func (*BinaryExpr) Kind() Kind         { return KindBinaryExpr }
func (*TupleExpr) Kind() Kind          { return KindTupleExpr }
func (*CallExpr) Kind() Kind           { return KindCallExpr }
func (*Argument) Kind() Kind           { return KindArgument }
func (*ClosureExpr) Kind() Kind        { return KindClosureExpr }
func (*SimpleType) Kind() Kind         { return KindSimpleType }
func (*MemberType) Kind() Kind         { return KindMemberType }
func (*OptionalType) Kind() Kind       { return KindOptionalType }
func (*ArrayType) Kind() Kind          { return KindArrayType }
func (*TupleType) Kind() Kind          { return KindTupleType }
func (*TupleTypeElement) Kind() Kind   { return KindTupleTypeElement }
func (*FunctionType) Kind() Kind       { return KindFunctionType }

func (*SourceFile) node()         {}
func (*CodeBlock) node()          {}
func (*MemberBlock) node()        {}
func (*ExtensionDecl) node()      {}
func (*TypeDecl) node()           {}
func (*FunctionDecl) node()       {}
func (*FunctionSignature) node()  {}
func (*Parameter) node()          {}
func (*VariableDecl) node()       {}
func (*TypealiasDecl) node()      {}
func (*ImportDecl) node()         {}
func (*InheritanceClause) node()  {}
func (*InheritedType) node()      {}
func (*Modifier) node()           {}
func (*ExprStmt) node()           {}
func (*ReturnStmt) node()         {}
func (*IdentifierExpr) node()     {}
func (*IntegerLiteralExpr) node() {}
func (*FloatLiteralExpr) node()   {}
func (*StringLiteralExpr) node()  {}
func (*MemberAccessExpr) node()   {}
func (*PrefixOperatorExpr) node() {}
func (*BinaryExpr) node()         {}
func (*TupleExpr) node()          {}
func (*CallExpr) node()           {}
func (*Argument) node()           {}
func (*ClosureExpr) node()        {}
func (*SimpleType) node()         {}
func (*MemberType) node()         {}
func (*OptionalType) node()       {}
func (*ArrayType) node()          {}
func (*TupleType) node()          {}
func (*TupleTypeElement) node()   {}
func (*FunctionType) node()       {}

func (*ExtensionDecl) stmt() {}
func (*TypeDecl) stmt()      {}
func (*FunctionDecl) stmt()  {}
func (*VariableDecl) stmt()  {}
func (*TypealiasDecl) stmt() {}
func (*ImportDecl) stmt()    {}
func (*ExprStmt) stmt()      {}
func (*ReturnStmt) stmt()    {}

func (*IdentifierExpr) expr()     {}
func (*IntegerLiteralExpr) expr() {}
func (*FloatLiteralExpr) expr()   {}
func (*StringLiteralExpr) expr()  {}
func (*MemberAccessExpr) expr()   {}
func (*PrefixOperatorExpr) expr() {}
func (*BinaryExpr) expr()         {}
func (*TupleExpr) expr()          {}
func (*CallExpr) expr()           {}
func (*ClosureExpr) expr()        {}

func (*SimpleType) typ()   {}
func (*MemberType) typ()   {}
func (*OptionalType) typ() {}
func (*ArrayType) typ()    {}
func (*TupleType) typ()    {}
func (*FunctionType) typ() {}
