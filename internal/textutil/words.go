package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsWord reports whether word occurs in text delimited by non-word runes
// (anything other than a letter or digit) or the text edges. Matching is exact;
// callers normalize case beforehand. A name such as "AL" is therefore not found
// inside "ALREADY", while "DR. SMITH" is found in "DR. SMITH ENTERS.".
func ContainsWord(text, word string) bool {
	if word == "" || len(word) > len(text) {
		return false
	}
	offset := 0
	for {
		idx := strings.Index(text[offset:], word)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(word)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
		if offset >= len(text) {
			return false
		}
	}
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return !isWordRune(r)
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[idx:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
