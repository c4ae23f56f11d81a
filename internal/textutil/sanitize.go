package textutil

import (
	"unicode"
	"unicode/utf8"
)

// IsWordStem reports whether name is non-empty and made only of letters,
// digits, and underscores, so it can be used as a file name stem as-is.
func IsWordStem(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// RuneCount counts characters the way users do, not bytes.
func RuneCount(value string) int {
	return utf8.RuneCountInString(value)
}
