package syntax

// accessLevels are the modifier names in the access-level category.
var accessLevels = map[string]bool{
	"open":        true,
	"public":      true,
	"internal":    true,
	"fileprivate": true,
	"private":     true,
}

// IsAccessLevelName reports whether name is an access-level keyword.
func IsAccessLevelName(name string) bool { return accessLevels[name] }

// NewModifier returns a synthesized modifier followed by one space.
func NewModifier(name string) *Modifier {
	return &Modifier{
		Name: &Token{Type: TokenKeyword, Text: name, Trailing: SpacesTrivia(1)},
	}
}

// Text returns the modifier's keyword text.
func (m *Modifier) Text() string { return m.Name.Text }

// IsAccessLevel reports whether m is a plain access-level modifier. Setter
// access such as `private(set)` is a separate category.
func (m *Modifier) IsAccessLevel() bool {
	return m.Detail == nil && accessLevels[m.Name.Text]
}

// WithName returns a copy of m with its name token replaced.
func (m *Modifier) WithName(t *Token) *Modifier {
	c := *m
	c.Name = t
	return &c
}

// lastToken returns the final token of m.
func (m *Modifier) lastToken() *Token {
	if m.RightParen != nil {
		return m.RightParen
	}
	return m.Name
}

// ModifierList is the ordered modifier sequence of a declaration.
type ModifierList []*Modifier

// AccessLevel returns the list's access-level modifier, if any.
func (l ModifierList) AccessLevel() (*Modifier, bool) {
	for _, m := range l {
		if m.IsAccessLevel() {
			return m, true
		}
	}
	return nil, false
}

// Index returns the position of the first modifier named name, or -1.
func (l ModifierList) Index(name string) int {
	for i, m := range l {
		if m.Name.Text == name {
			return i
		}
	}
	return -1
}

// Has reports whether a modifier named name is present.
func (l ModifierList) Has(name string) bool { return l.Index(name) >= 0 }

// Remove returns a new list without the first modifier named name, along
// with the removed modifier. When a later modifier exists, the removed
// modifier's leading trivia is moved onto it and the returned modifier no
// longer carries it; otherwise the returned modifier keeps its leading trivia
// for the caller to relocate.
func (l ModifierList) Remove(name string) (ModifierList, *Modifier, bool) {
	i := l.Index(name)
	if i < 0 {
		return l, nil, false
	}
	removed := l[i]
	out := make(ModifierList, 0, len(l)-1)
	out = append(out, l[:i]...)
	if i+1 < len(l) {
		next := l[i+1]
		stripped, nextName := MoveLeadingTrivia(removed.Name, next.Name)
		removed = removed.WithName(stripped)
		out = append(out, next.WithName(nextName))
		out = append(out, l[i+2:]...)
	}
	return out, removed, true
}

// firstDeclToken returns the token that starts d.
func firstDeclToken(d Decl) *Token {
	if mods := d.Modifiers(); len(mods) > 0 {
		return mods[0].Name
	}
	return d.Keyword()
}

// RemoveModifier deletes the first modifier named name from d. Leading trivia
// of the removed modifier is carried to the following modifier or, when it
// was the last one, to d's keyword. Its trailing trivia is dropped; when that
// trivia holds a comment the declaration is returned unchanged and ok is
// false.
func RemoveModifier(d Decl, name string) (out Decl, removed *Modifier, ok bool) {
	mods := d.Modifiers()
	i := mods.Index(name)
	if i < 0 {
		return d, nil, false
	}
	if !mods[i].lastToken().Trailing.IsFormattingOnly() {
		return d, nil, false
	}
	if mods[i].LeftParen != nil && !modifierDetailIsFormattingOnly(mods[i]) {
		return d, nil, false
	}

	rest, removed, _ := mods.Remove(name)
	out = d.WithModifiers(rest)
	if i == len(mods)-1 {
		stripped, kw := MoveLeadingTrivia(removed.Name, d.Keyword())
		removed = removed.WithName(stripped)
		out = out.WithKeyword(kw)
	}
	Discard(removed.lastToken().Trailing)
	return out, removed, true
}

func modifierDetailIsFormattingOnly(m *Modifier) bool {
	for _, t := range []*Token{m.Name, m.LeftParen, m.Detail} {
		if !t.Trailing.IsFormattingOnly() {
			return false
		}
	}
	for _, t := range []*Token{m.LeftParen, m.Detail, m.RightParen} {
		if !t.Leading.IsFormattingOnly() {
			return false
		}
	}
	return true
}

// AddModifier inserts m at the front of d's modifiers. The leading trivia of
// d's first token (its indentation and any attached comments) moves onto the
// inserted modifier so that it stays at the start of the declaration.
func AddModifier(d Decl, m *Modifier) Decl {
	first := firstDeclToken(d)
	stripped, name := MoveLeadingTrivia(first, m.Name.WithLeadingTrivia(nil))
	if len(name.Trailing) == 0 {
		name = name.WithTrailingTrivia(SpacesTrivia(1))
	}
	m = m.WithName(name)

	mods := d.Modifiers()
	if len(mods) == 0 {
		return d.WithModifiers(ModifierList{m}).WithKeyword(stripped)
	}
	out := make(ModifierList, 0, len(mods)+1)
	out = append(out, m, mods[0].WithName(stripped))
	out = append(out, mods[1:]...)
	return d.WithModifiers(out)
}
