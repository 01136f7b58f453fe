package normalize

import (
	"strings"
	"unicode/utf8"
)

// dropped reports runes that never reach a defect key or a stored record:
// C0 controls other than tab, newline and carriage return, DEL, C1 controls,
// and the replacement rune that stands in for invalid UTF-8
func dropped(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return false
	case r < 0x20, r >= 0x7f && r <= 0x9f:
		return true
	default:
		return r == utf8.RuneError
	}
}

// Sanitize removes dropped runes and invalid bytes, clean input is returned as is
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, dropped) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if dropped(r) {
			return -1
		}
		return r
	}, s)
}
