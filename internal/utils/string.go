package utils

import (
	"fmt"
	"strings"
)

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	str := fmt.Sprintf("%d", n)
	if n < 1000 && n > -1000 {
		return str
	}

	sign := ""
	if n < 0 {
		sign, str = "-", str[1:]
	}

	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return sign + b.String()
}

// FoldPrefix lowercases prefix when fold is set. The completer matches
// prefixes literally, so hosts that want case-insensitive lookups fold here.
func FoldPrefix(prefix string, fold bool) string {
	if !fold {
		return prefix
	}
	return strings.ToLower(prefix)
}

// FormatProbability renders a probability in [0,1] as a percentage
func FormatProbability(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}
