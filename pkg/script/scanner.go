package script

import (
	"github.com/arthur-debert/scrpatch/pkg/errors"
)

// FindMatchingClose returns the index of the '}' that closes the '{' at
// open. Braces inside string literals and comments are ignored. Reaching the
// end of the text first is a structural error.
func FindMatchingClose(text string, open int) (int, error) {
	if open < 0 || open >= len(text) || text[open] != '{' {
		return -1, errors.Newf(errors.ErrInvalidInput, "offset %d is not an opening brace", open).
			WithDetail("offset", open)
	}

	depth := 0
	closeAt := -1
	scan(text, open, func(t Token) bool {
		switch t.Kind {
		case LBrace:
			depth++
		case RBrace:
			depth--
			if depth == 0 {
				closeAt = t.Start
				return false
			}
		}
		return true
	})

	if closeAt < 0 {
		return -1, errors.New(errors.ErrStructuralCorruption, "unbalanced braces").
			WithDetail("offset", open).
			WithDetail("depth", depth)
	}
	return closeAt, nil
}

// BraceDelta returns the net change in brace depth across s, ignoring
// braces in strings and comments.
func BraceDelta(s string) int {
	delta := 0
	scan(s, 0, func(t Token) bool {
		switch t.Kind {
		case LBrace:
			delta++
		case RBrace:
			delta--
		}
		return true
	})
	return delta
}
