package syntax

import "fmt"

// Kind tags a syntax node variant.
type Kind uint8

const (
	KindToken Kind = iota
	KindSourceFile
	KindCodeBlock
	KindMemberBlock
	KindExtensionDecl
	KindTypeDecl
	KindFunctionDecl
	KindFunctionSignature
	KindParameter
	KindVariableDecl
	KindTypealiasDecl
	KindImportDecl
	KindInheritanceClause
	KindInheritedType
	KindModifier
	KindExprStmt
	KindReturnStmt
	KindIdentifierExpr
	KindIntegerLiteralExpr
	KindFloatLiteralExpr
	KindStringLiteralExpr
	KindMemberAccessExpr
	KindPrefixOperatorExpr
	KindBinaryExpr
	KindTupleExpr
	KindCallExpr
	KindArgument
	KindClosureExpr
	KindSimpleType
	KindMemberType
	KindOptionalType
	KindArrayType
	KindTupleType
	KindTupleTypeElement
	KindFunctionType

	kindCount
)

var kindNames = [...]string{
	KindToken:              "Token",
	KindSourceFile:         "SourceFile",
	KindCodeBlock:          "CodeBlock",
	KindMemberBlock:        "MemberBlock",
	KindExtensionDecl:      "ExtensionDecl",
	KindTypeDecl:           "TypeDecl",
	KindFunctionDecl:       "FunctionDecl",
	KindFunctionSignature:  "FunctionSignature",
	KindParameter:          "Parameter",
	KindVariableDecl:       "VariableDecl",
	KindTypealiasDecl:      "TypealiasDecl",
	KindImportDecl:         "ImportDecl",
	KindInheritanceClause:  "InheritanceClause",
	KindInheritedType:      "InheritedType",
	KindModifier:           "Modifier",
	KindExprStmt:           "ExprStmt",
	KindReturnStmt:         "ReturnStmt",
	KindIdentifierExpr:     "IdentifierExpr",
	KindIntegerLiteralExpr: "IntegerLiteralExpr",
	KindFloatLiteralExpr:   "FloatLiteralExpr",
	KindStringLiteralExpr:  "StringLiteralExpr",
	KindMemberAccessExpr:   "MemberAccessExpr",
	KindPrefixOperatorExpr: "PrefixOperatorExpr",
	KindBinaryExpr:         "BinaryExpr",
	KindTupleExpr:          "TupleExpr",
	KindCallExpr:           "CallExpr",
	KindArgument:           "Argument",
	KindClosureExpr:        "ClosureExpr",
	KindSimpleType:         "SimpleType",
	KindMemberType:         "MemberType",
	KindOptionalType:       "OptionalType",
	KindArrayType:          "ArrayType",
	KindTupleType:          "TupleType",
	KindTupleTypeElement:   "TupleTypeElement",
	KindFunctionType:       "FunctionType",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// AllKinds returns every node kind in declaration order.
func AllKinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := range kindCount {
		out = append(out, k)
	}
	return out
}
