package syntax

func (d *ExtensionDecl) Modifiers() ModifierList { return d.Mods }
func (d *TypeDecl) Modifiers() ModifierList      { return d.Mods }
func (d *FunctionDecl) Modifiers() ModifierList  { return d.Mods }
func (d *VariableDecl) Modifiers() ModifierList  { return d.Mods }
func (d *TypealiasDecl) Modifiers() ModifierList { return d.Mods }
func (d *ImportDecl) Modifiers() ModifierList    { return d.Mods }

func (d *ExtensionDecl) Keyword() *Token { return d.ExtensionKeyword }
func (d *TypeDecl) Keyword() *Token      { return d.TypeKeyword }
func (d *FunctionDecl) Keyword() *Token  { return d.FuncKeyword }
func (d *VariableDecl) Keyword() *Token  { return d.BindingKeyword }
func (d *TypealiasDecl) Keyword() *Token { return d.TypealiasKeyword }
func (d *ImportDecl) Keyword() *Token    { return d.ImportKeyword }

func (d *ExtensionDecl) WithModifiers(m ModifierList) Decl {
	c := *d
	c.Mods = m
	return &c
}

func (d *TypeDecl) WithModifiers(m ModifierList) Decl {
	c := *d
	c.Mods = m
	return &c
}

func (d *FunctionDecl) WithModifiers(m ModifierList) Decl {
	c := *d
	c.Mods = m
	return &c
}

func (d *VariableDecl) WithModifiers(m ModifierList) Decl {
	c := *d
	c.Mods = m
	return &c
}

func (d *TypealiasDecl) WithModifiers(m ModifierList) Decl {
	c := *d
	c.Mods = m
	return &c
}

func (d *ImportDecl) WithModifiers(m ModifierList) Decl {
	c := *d
	c.Mods = m
	return &c
}

func (d *ExtensionDecl) WithKeyword(t *Token) Decl {
	c := *d
	c.ExtensionKeyword = t
	return &c
}

func (d *TypeDecl) WithKeyword(t *Token) Decl {
	c := *d
	c.TypeKeyword = t
	return &c
}

func (d *FunctionDecl) WithKeyword(t *Token) Decl {
	c := *d
	c.FuncKeyword = t
	return &c
}

func (d *VariableDecl) WithKeyword(t *Token) Decl {
	c := *d
	c.BindingKeyword = t
	return &c
}

func (d *TypealiasDecl) WithKeyword(t *Token) Decl {
	c := *d
	c.TypealiasKeyword = t
	return &c
}

func (d *ImportDecl) WithKeyword(t *Token) Decl {
	c := *d
	c.ImportKeyword = t
	return &c
}

// WithMembers returns a copy of d with its member block replaced.
func (d *ExtensionDecl) WithMembers(m *MemberBlock) *ExtensionDecl {
	c := *d
	c.Members = m
	return &c
}
