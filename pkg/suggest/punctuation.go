package suggest

import "strings"

// Punctuation is the fixed set of characters removed from training text.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// StripPunctuation removes every punctuation character from text.
// Characters are dropped, not replaced, so "a,b" becomes "ab".
func StripPunctuation(text string) string {
	if !strings.ContainsAny(text, Punctuation) {
		return text
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(Punctuation, r) {
			return -1
		}
		return r
	}, text)
}
