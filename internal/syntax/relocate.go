package syntax

// MoveLeadingTrivia relocates from's leading trivia to the front of to's
// leading trivia. It is used when from is deleted and to is the token that
// follows it. Both tokens are returned as copies; no piece is dropped.
func MoveLeadingTrivia(from, to *Token) (src, dst *Token) {
	dst = to.WithLeadingTrivia(Concat(from.Leading, to.Leading))
	src = from.WithLeadingTrivia(nil)
	return src, dst
}

// MoveTrailingTrivia relocates from's trailing trivia to the end of to's
// trailing trivia. It is used when from is deleted and to is the token that
// precedes it.
func MoveTrailingTrivia(from, to *Token) (src, dst *Token) {
	dst = to.WithTrailingTrivia(Concat(to.Trailing, from.Trailing))
	src = from.WithTrailingTrivia(nil)
	return src, dst
}

// AllFormattingOnly reports whether every trivia run of every token is free
// of comments. Rules use it as a precondition before deleting tokens.
func AllFormattingOnly(tokens ...*Token) bool {
	for _, t := range tokens {
		if t == nil {
			continue
		}
		if !t.Leading.IsFormattingOnly() || !t.Trailing.IsFormattingOnly() {
			return false
		}
	}
	return true
}
