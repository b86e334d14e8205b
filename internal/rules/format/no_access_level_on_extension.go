// Package format contains the individual Swift formatting rules.
package format

import (
	"github.com/donaldgifford/swiftfmt/internal/diag"
	"github.com/donaldgifford/swiftfmt/internal/formatter"
	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// NoAccessLevelOnExtensionDeclaration moves the access level of an
// extension onto its members. An explicit `internal` is redundant and is
// simply dropped. Members that already state an access level keep it.
// `open extension` is left alone.
type NoAccessLevelOnExtensionDeclaration struct{}

// MoveAccessKeyword is reported when an extension's access level is pushed
// down to its members.
func MoveAccessKeyword(keyword string) diag.Message {
	return diag.Warning("specify %s access level for each member inside the extension", keyword)
}

// RemoveRedundantAccessKeyword is reported for `internal extension`.
func RemoveRedundantAccessKeyword(name string) diag.Message {
	return diag.Warning("remove redundant 'internal' access keyword from %s", name)
}

// Name returns the config key for this rule.
func (r *NoAccessLevelOnExtensionDeclaration) Name() string {
	return "no_access_level_on_extension_declaration"
}

// Kinds returns the node kinds the rule visits.
func (r *NoAccessLevelOnExtensionDeclaration) Kinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindExtensionDecl}
}

// Format rewrites one extension declaration.
func (r *NoAccessLevelOnExtensionDeclaration) Format(ctx *formatter.Context, n syntax.Node) syntax.Node {
	ext := n.(*syntax.ExtensionDecl)
	access, ok := ext.Mods.AccessLevel()
	if !ok {
		return n
	}

	keyword := access.Text()
	switch keyword {
	case "public", "private", "fileprivate", "internal":
	default:
		return n
	}

	out, _, ok := syntax.RemoveModifier(ext, keyword)
	if !ok {
		// The modifier is followed by a comment that would be lost.
		return n
	}

	if keyword == "internal" {
		ctx.Diagnose(RemoveRedundantAccessKeyword(syntax.Text(ext.ExtendedType)), access)
		return out
	}

	ctx.Diagnose(MoveAccessKeyword(keyword), access)

	// Members of a private extension are visible to the whole file.
	if keyword == "private" {
		keyword = "fileprivate"
	}
	stripped := out.(*syntax.ExtensionDecl)
	return stripped.WithMembers(addMemberAccess(stripped.Members, keyword))
}

// addMemberAccess gives every member of block without an access level a
// keyword modifier.
func addMemberAccess(block *syntax.MemberBlock, keyword string) *syntax.MemberBlock {
	var members []syntax.Decl
	for i, m := range block.Members {
		if _, has := m.Modifiers().AccessLevel(); has {
			continue
		}
		if members == nil {
			members = make([]syntax.Decl, len(block.Members))
			copy(members, block.Members)
		}
		members[i] = syntax.AddModifier(m, syntax.NewModifier(keyword))
	}
	if members == nil {
		return block
	}
	c := *block
	c.Members = members
	return &c
}
