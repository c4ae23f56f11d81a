package textutil

import (
	"strings"
	"unicode"
)

// Wrap greedily breaks text into lines of at most width runes. Runs of
// whitespace collapse to a single space. Hyphenated words may break after a
// hyphen between letters ("state-of-the-art" wraps as "state-of-" and
// "the-art"), words longer than width are split across lines, and blank
// input yields no lines.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var line []rune
	flush := func() {
		if len(line) > 0 {
			lines = append(lines, string(line))
			line = line[:0]
		}
	}
	for _, field := range strings.Fields(text) {
		for i, chunk := range splitWord([]rune(field)) {
			for len(chunk) > 0 {
				sep := 0
				if i == 0 && len(line) > 0 {
					sep = 1
				}
				if len(line)+sep+len(chunk) <= width {
					if sep == 1 {
						line = append(line, ' ')
					}
					line = append(line, chunk...)
					break
				}
				if len(chunk) > width {
					if space := width - len(line) - sep; space > 0 {
						if sep == 1 {
							line = append(line, ' ')
						}
						line = append(line, chunk[:space]...)
						chunk = chunk[space:]
					}
				}
				flush()
			}
		}
	}
	flush()
	return lines
}

// splitWord cuts a whitespace-free word into the pieces a line may break
// between: after a single hyphen joining letters, and around a "--" dash
// that sits between words.
func splitWord(word []rune) [][]rune {
	var chunks [][]rune
	start := 0
	for i := 0; i < len(word); {
		if word[i] != '-' {
			i++
			continue
		}
		end := i
		for end < len(word) && word[end] == '-' {
			end++
		}
		switch {
		case end-i >= 2:
			if i > 0 && isWordPunct(word[i-1]) && end < len(word) && isWordRune(word[end]) {
				if i > start {
					chunks = append(chunks, word[start:i])
				}
				chunks = append(chunks, word[i:end])
				start = end
			}
		case i > start && hyphenBreaks(word, i):
			chunks = append(chunks, word[start:i+1])
			start = i + 1
		}
		i = end
	}
	if start < len(word) {
		chunks = append(chunks, word[start:])
	}
	return chunks
}

// hyphenBreaks reports whether the single hyphen at i follows two letters (or
// letter-hyphen-letter) and precedes two letters, optionally hyphen-joined.
func hyphenBreaks(word []rune, i int) bool {
	at := func(j int) rune {
		if j < 0 || j >= len(word) {
			return 0
		}
		return word[j]
	}
	before := isLetter(at(i-1)) && (isLetter(at(i-2)) || at(i-2) == '-' && isLetter(at(i-3)))
	after := isLetter(at(i+1)) && (isLetter(at(i+2)) || at(i+2) == '-' && isLetter(at(i+3)))
	return before && after
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r)
}

func isWordRune(r rune) bool {
	return isLetter(r) || unicode.IsDigit(r)
}

func isWordPunct(r rune) bool {
	return isWordRune(r) || strings.ContainsRune(`!"'&.,?`, r)
}
