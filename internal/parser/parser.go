// Package parser turns source text into a trivia-complete syntax tree for the
// supported subset of the language: imports, typealiases, extensions,
// struct/class/enum/protocol declarations with members, functions,
// initializers, subscripts, variables, and the expressions and types they
// contain.
package parser

import (
	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// modifierNames are the qualifiers accepted in front of a declaration.
var modifierNames = map[string]bool{
	"public":      true,
	"private":     true,
	"fileprivate": true,
	"internal":    true,
	"open":        true,
	"static":      true,
	"final":       true,
	"override":    true,
	"mutating":    true,
	"nonmutating": true,
	"lazy":        true,
	"weak":        true,
	"unowned":     true,
	"convenience": true,
	"required":    true,
	"dynamic":     true,
	"indirect":    true,
}

// declKeywords introduce a declaration.
var declKeywords = map[string]bool{
	"extension": true,
	"struct":    true,
	"class":     true,
	"enum":      true,
	"protocol":  true,
	"func":      true,
	"var":       true,
	"let":       true,
	"typealias": true,
	"import":    true,
}

// memberDecls are contextual identifiers that introduce an initializer,
// deinitializer or subscript inside a member block or at top level.
var memberDecls = map[string]bool{
	"init":      true,
	"deinit":    true,
	"subscript": true,
}

// Parse converts source text into a syntax tree. Serializing the result
// reproduces src exactly.
func Parse(src string) (*syntax.SourceFile, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &state{tokens: tokens}
	return p.parseFile()
}

// state tracks the parser's position in the token stream.
type state struct {
	tokens []*syntax.Token
	pos    int
}

func (p *state) peek() *syntax.Token { return p.peekAt(0) }

func (p *state) peekAt(off int) *syntax.Token {
	if i := p.pos + off; i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *state) next() *syntax.Token {
	t := p.peek()
	if t.Type != syntax.TokenEOF {
		p.pos++
	}
	return t
}

func (p *state) at(typ syntax.TokenType) bool { return p.peek().Type == typ }

func (p *state) atText(typ syntax.TokenType, text string) bool { return p.peek().Is(typ, text) }

// atSameLine reports whether the next token has type typ and no line break
// separates it from the previous token.
func (p *state) atSameLine(typ syntax.TokenType) bool {
	return p.at(typ) && !p.peek().Leading.HasNewline()
}

func (p *state) accept(typ syntax.TokenType) *syntax.Token {
	if p.at(typ) {
		return p.next()
	}
	return nil
}

func (p *state) expect(typ syntax.TokenType, what string) (*syntax.Token, error) {
	if !p.at(typ) {
		return nil, p.unexpected(what)
	}
	return p.next(), nil
}

func (p *state) expectText(typ syntax.TokenType, text string) (*syntax.Token, error) {
	if !p.atText(typ, text) {
		return nil, p.unexpected("'" + text + "'")
	}
	return p.next(), nil
}

func (p *state) unexpected(want string) error {
	t := p.peek()
	if t.Type == syntax.TokenEOF {
		return newError(t.Pos, "expected %s, found end of file", want)
	}
	return newError(t.Pos, "expected %s, found %q", want, t.Text)
}

func (p *state) parseFile() (*syntax.SourceFile, error) {
	var stmts []syntax.Stmt
	for !p.at(syntax.TokenEOF) {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return &syntax.SourceFile{Stmts: stmts, EOF: p.next()}, nil
}

func (p *state) parseStmt() (syntax.Stmt, error) {
	if p.atDecl() {
		return p.parseDecl()
	}
	if p.atText(syntax.TokenKeyword, "return") {
		return p.parseReturn()
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &syntax.ExprStmt{X: x}, nil
}

func (p *state) parseReturn() (*syntax.ReturnStmt, error) {
	ret := &syntax.ReturnStmt{ReturnKeyword: p.next()}
	if p.at(syntax.TokenRightBrace) || p.at(syntax.TokenEOF) || p.peek().Leading.HasNewline() {
		return ret, nil
	}
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	ret.Value = v
	return ret, nil
}

// atDecl reports whether a declaration starts at the current token.
func (p *state) atDecl() bool {
	return p.isDeclStart(0)
}

func (p *state) isDeclStart(off int) bool {
	t := p.peekAt(off)
	if t.Type == syntax.TokenKeyword && declKeywords[t.Text] {
		return true
	}
	if p.isMemberDeclAt(off) {
		return true
	}
	return p.isModifierAt(off)
}

// isMemberDeclAt reports whether an init, deinit or subscript declaration
// starts at off. The names stay identifiers so `self.init(...)` is still an
// expression.
func (p *state) isMemberDeclAt(off int) bool {
	t := p.peekAt(off)
	if t.Type != syntax.TokenIdentifier || !memberDecls[t.Text] {
		return false
	}
	next := p.peekAt(off + 1)
	switch t.Text {
	case "init":
		if next.Type == syntax.TokenOperator && (next.Text == "?" || next.Text == "!") {
			next = p.peekAt(off + 2)
		}
		return next.Type == syntax.TokenLeftParen
	case "deinit":
		return next.Type == syntax.TokenLeftBrace
	}
	return next.Type == syntax.TokenLeftParen
}

// isModifierAt reports whether the token at off is a modifier: a modifier
// name, optionally followed by `(detail)`, in front of a declaration.
func (p *state) isModifierAt(off int) bool {
	t := p.peekAt(off)
	if (t.Type != syntax.TokenKeyword && t.Type != syntax.TokenIdentifier) || !modifierNames[t.Text] {
		return false
	}
	next := off + 1
	if p.hasModifierDetail(off) {
		next += 3
	}
	return p.isDeclStart(next)
}

func (p *state) hasModifierDetail(off int) bool {
	return p.peekAt(off+1).Type == syntax.TokenLeftParen &&
		p.peekAt(off+2).Type == syntax.TokenIdentifier &&
		p.peekAt(off+3).Type == syntax.TokenRightParen
}

func (p *state) parseModifiers() syntax.ModifierList {
	var mods syntax.ModifierList
	for p.isModifierAt(0) {
		m := &syntax.Modifier{}
		detail := p.hasModifierDetail(0)
		m.Name = p.next()
		if detail {
			m.LeftParen = p.next()
			m.Detail = p.next()
			m.RightParen = p.next()
		}
		mods = append(mods, m)
	}
	return mods
}

func (p *state) parseDecl() (syntax.Decl, error) {
	mods := p.parseModifiers()
	if p.isMemberDeclAt(0) {
		return p.parseMemberFunction(mods)
	}
	t := p.peek()
	if t.Type != syntax.TokenKeyword {
		return nil, p.unexpected("declaration")
	}
	switch t.Text {
	case "extension":
		return p.parseExtension(mods)
	case "struct", "class", "enum", "protocol":
		return p.parseTypeDecl(mods)
	case "func":
		return p.parseFunction(mods)
	case "var", "let":
		return p.parseVariable(mods)
	case "typealias":
		return p.parseTypealias(mods)
	case "import":
		return p.parseImport(mods)
	}
	return nil, p.unexpected("declaration")
}

func (p *state) parseExtension(mods syntax.ModifierList) (*syntax.ExtensionDecl, error) {
	d := &syntax.ExtensionDecl{Mods: mods, ExtensionKeyword: p.next()}
	var err error
	if d.ExtendedType, err = p.parseType(); err != nil {
		return nil, err
	}
	if d.Inheritance, err = p.parseInheritance(); err != nil {
		return nil, err
	}
	if d.Members, err = p.parseMemberBlock(); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *state) parseTypeDecl(mods syntax.ModifierList) (*syntax.TypeDecl, error) {
	d := &syntax.TypeDecl{Mods: mods, TypeKeyword: p.next()}
	var err error
	if d.Name, err = p.expect(syntax.TokenIdentifier, "type name"); err != nil {
		return nil, err
	}
	if d.Inheritance, err = p.parseInheritance(); err != nil {
		return nil, err
	}
	if d.Members, err = p.parseMemberBlock(); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *state) parseInheritance() (*syntax.InheritanceClause, error) {
	colon := p.accept(syntax.TokenColon)
	if colon == nil {
		return nil, nil
	}
	clause := &syntax.InheritanceClause{Colon: colon}
	for {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		entry := &syntax.InheritedType{Type: typ, Comma: p.accept(syntax.TokenComma)}
		clause.Types = append(clause.Types, entry)
		if entry.Comma == nil {
			return clause, nil
		}
	}
}

func (p *state) parseMemberBlock() (*syntax.MemberBlock, error) {
	lb, err := p.expect(syntax.TokenLeftBrace, "'{'")
	if err != nil {
		return nil, err
	}
	block := &syntax.MemberBlock{LeftBrace: lb}
	for !p.at(syntax.TokenRightBrace) {
		if !p.atDecl() {
			return nil, p.unexpected("member declaration")
		}
		d, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		block.Members = append(block.Members, d)
	}
	block.RightBrace = p.next()
	return block, nil
}

func (p *state) parseCodeBlock() (*syntax.CodeBlock, error) {
	lb, err := p.expect(syntax.TokenLeftBrace, "'{'")
	if err != nil {
		return nil, err
	}
	stmts, rb, err := p.parseStmtsUntilBrace()
	if err != nil {
		return nil, err
	}
	return &syntax.CodeBlock{LeftBrace: lb, Stmts: stmts, RightBrace: rb}, nil
}

func (p *state) parseStmtsUntilBrace() ([]syntax.Stmt, *syntax.Token, error) {
	var stmts []syntax.Stmt
	for !p.at(syntax.TokenRightBrace) {
		if p.at(syntax.TokenEOF) {
			return nil, nil, p.unexpected("'}'")
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, p.next(), nil
}

func (p *state) parseFunction(mods syntax.ModifierList) (*syntax.FunctionDecl, error) {
	d := &syntax.FunctionDecl{Mods: mods, FuncKeyword: p.next()}
	var err error
	if p.at(syntax.TokenOperator) {
		d.Name = p.next()
	} else if d.Name, err = p.expect(syntax.TokenIdentifier, "function name"); err != nil {
		return nil, err
	}
	if d.Signature, err = p.parseSignature(); err != nil {
		return nil, err
	}
	if p.at(syntax.TokenLeftBrace) {
		if d.Body, err = p.parseCodeBlock(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// parseMemberFunction parses `init(...)`, `init?(...)`, `deinit { ... }` and
// `subscript(...) -> T { ... }` as function declarations. The introducer is
// held in FuncKeyword; Name is nil or the failable `?`/`!` mark.
func (p *state) parseMemberFunction(mods syntax.ModifierList) (*syntax.FunctionDecl, error) {
	d := &syntax.FunctionDecl{Mods: mods, FuncKeyword: p.next()}
	var err error
	switch d.FuncKeyword.Text {
	case "deinit":
		if d.Body, err = p.parseCodeBlock(); err != nil {
			return nil, err
		}
		return d, nil
	case "init":
		if p.at(syntax.TokenOperator) {
			d.Name = p.next()
		}
	}
	if d.Signature, err = p.parseSignature(); err != nil {
		return nil, err
	}
	if d.FuncKeyword.Text == "subscript" && d.Signature.Arrow == nil {
		return nil, p.unexpected("'->'")
	}
	if p.at(syntax.TokenLeftBrace) {
		if d.Body, err = p.parseCodeBlock(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (p *state) parseSignature() (*syntax.FunctionSignature, error) {
	lp, err := p.expect(syntax.TokenLeftParen, "'('")
	if err != nil {
		return nil, err
	}
	sig := &syntax.FunctionSignature{LeftParen: lp}
	for !p.at(syntax.TokenRightParen) {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		sig.Params = append(sig.Params, param)
		if param.Comma == nil {
			break
		}
	}
	if sig.RightParen, err = p.expect(syntax.TokenRightParen, "')'"); err != nil {
		return nil, err
	}
	if arrow := p.accept(syntax.TokenArrow); arrow != nil {
		sig.Arrow = arrow
		if sig.ReturnType, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	return sig, nil
}

func (p *state) parseParameter() (*syntax.Parameter, error) {
	first, err := p.expect(syntax.TokenIdentifier, "parameter name")
	if err != nil {
		return nil, err
	}
	param := &syntax.Parameter{FirstName: first, SecondName: p.accept(syntax.TokenIdentifier)}
	if param.Colon, err = p.expect(syntax.TokenColon, "':'"); err != nil {
		return nil, err
	}
	if param.Type, err = p.parseType(); err != nil {
		return nil, err
	}
	param.Comma = p.accept(syntax.TokenComma)
	return param, nil
}

func (p *state) parseVariable(mods syntax.ModifierList) (*syntax.VariableDecl, error) {
	d := &syntax.VariableDecl{Mods: mods, BindingKeyword: p.next()}
	var err error
	if d.Name, err = p.expect(syntax.TokenIdentifier, "variable name"); err != nil {
		return nil, err
	}
	if colon := p.accept(syntax.TokenColon); colon != nil {
		d.Colon = colon
		if d.TypeAnnotation, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if p.atText(syntax.TokenOperator, "=") {
		d.Equal = p.next()
		if d.Initializer, err = p.parseExpr(); err != nil {
			return nil, err
		}
		return d, nil
	}
	if d.TypeAnnotation != nil && p.at(syntax.TokenLeftBrace) {
		if d.Accessor, err = p.parseCodeBlock(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (p *state) parseTypealias(mods syntax.ModifierList) (*syntax.TypealiasDecl, error) {
	d := &syntax.TypealiasDecl{Mods: mods, TypealiasKeyword: p.next()}
	var err error
	if d.Name, err = p.expect(syntax.TokenIdentifier, "typealias name"); err != nil {
		return nil, err
	}
	if d.Equal, err = p.expectText(syntax.TokenOperator, "="); err != nil {
		return nil, err
	}
	if d.Value, err = p.parseType(); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *state) parseImport(mods syntax.ModifierList) (*syntax.ImportDecl, error) {
	d := &syntax.ImportDecl{Mods: mods, ImportKeyword: p.next()}
	for {
		name, err := p.expect(syntax.TokenIdentifier, "module name")
		if err != nil {
			return nil, err
		}
		d.Path = append(d.Path, name)
		if !p.atSameLine(syntax.TokenDot) {
			return d, nil
		}
		d.Path = append(d.Path, p.next())
	}
}
