package rules

import (
	"github.com/donaldgifford/swiftfmt/internal/rules/format"
)

func init() {
	// Declaration-level rules first, then expressions and types.
	RegisterFormatRule(&format.NoAccessLevelOnExtensionDeclaration{})
	RegisterFormatRule(&format.NoEmptyTrailingClosureParentheses{})
	RegisterFormatRule(&format.ReturnVoidInsteadOfEmptyTuple{})
	RegisterFormatRule(&format.GroupNumericLiterals{})
}
