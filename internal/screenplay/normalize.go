package screenplay

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var dashReplacer = strings.NewReplacer(
	"\u00a0", " ",
	"\u2013", "-",
	"\u2014", "-",
)

// NormalizeLine canonicalizes one raw line: NFKC unicode normalization,
// non-breaking spaces to spaces, en/em dashes to ASCII hyphens, whitespace runs
// collapsed to one space, and the ends trimmed. The result is empty for blank
// lines. NormalizeLine is idempotent.
func NormalizeLine(raw string) string {
	s := norm.NFKC.String(raw)
	s = dashReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeLines splits text into lines and returns the non-empty normalized
// ones in order.
func NormalizeLines(text string) []string {
	raw := strings.FieldsFunc(text, isLineBreak)
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if normalized := NormalizeLine(line); normalized != "" {
			lines = append(lines, normalized)
		}
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u001c', '\u001d', '\u001e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
