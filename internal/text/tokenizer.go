package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// filtered is the set of ASCII punctuation discarded during tokenization.
// Apostrophes are deliberately absent so contractions survive as one token.
const filtered = "!\"#$%&()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenize splits document text into lowercase word tokens: the text is
// lowercased, accents are stripped, punctuation and control characters are
// replaced with spaces, and the result is split on whitespace.
func Tokenize(s string) []string {
	s = strings.ToLower(s)
	s = stripAccents(s)
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(filtered, r) || unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Fields(s)
}

// stripAccents removes combining diacritical marks after NFD normalization.
func stripAccents(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
