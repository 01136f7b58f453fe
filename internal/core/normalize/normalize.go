// Package normalize canonicalizes free-text defect labels produced by the classifier
// Pipeline order
// 1 drop control runes and invalid UTF-8
// 2 Unicode NFC so composed and decomposed accents compare equal
// 3 lower case
// 4 trim edges
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh transformer chains, cases.Caser is stateful
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			cases.Lower(language.Und),
		)
	},
}

// Key returns the merge key for a defect label
// "Furo", " furo " and "FURO" share the key "furo"
func Key(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ks, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ks = strings.ToLower(s)
	}
	return strings.TrimSpace(ks)
}

// Display renders a key with its first rune upper cased and the rest untouched
func Display(key string) string {
	if key == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(key)
	return string(unicode.ToUpper(r)) + key[size:]
}

// Label is Display(Key(s))
func Label(s string) string { return Display(Key(s)) }
