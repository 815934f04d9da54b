package screenplay

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// headingPattern recognizes an optional scene number ("12A."), an interior or
// exterior marker, a free-text location, an optional time-of-day suffix, and an
// optional trailing scene number. Lettered markers are listed longest first.
var headingPattern = regexp.MustCompile(
	`(?i)^\s*(\d+[A-Z]*)?\.?\s*` +
		`(INT/EXT|EXT/INT|I/E|INT|EXT)\.?\s+` +
		`(.+?)` +
		`(?:\s*[-.]\s*(DAY|NIGHT|EVENING|MORNING|DAWN|DUSK))?` +
		`(\s*\d+[A-Z]*)?\s*$`,
)

const (
	headingLocationGroup = 3
	headingTimeGroup     = 4
	maxCueRunes          = 41
	maxCueTokens         = 3
)

// DefaultBlacklist lists screen-direction terms that look like cues but never
// name a character.
var DefaultBlacklist = []string{
	"CUT TO",
	"FADE IN",
	"FADE OUT",
	"THE END",
	"DISSOLVE TO",
	"MATCH CUT",
	"SMASH CUT",
	"BACK TO SCENE",
	"SUPER",
	"TITLE",
	"HARD CUT TO",
}

// LineKind is the classification of a normalized line.
type LineKind int

const (
	// KindAction covers action, dialogue, and anything unrecognized.
	KindAction LineKind = iota
	// KindHeading opens a new scene.
	KindHeading
	// KindCue names a character about to speak or act.
	KindCue
)

func (k LineKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindCue:
		return "cue"
	default:
		return "action"
	}
}

// Heading holds the fields extracted from a heading line.
type Heading struct {
	Text      string
	Location  string
	TimeOfDay TimeOfDay
}

// Classification is the result of classifying one line.
type Classification struct {
	Kind    LineKind
	Heading Heading
	Name    string
}

// Classifier applies the heading and character-cue tests.
type Classifier struct {
	blacklist map[string]struct{}
}

// NewClassifier builds a classifier using DefaultBlacklist plus any extra
// terms (compared upper-cased, surrounding whitespace and colons ignored).
func NewClassifier(extraBlacklist ...string) *Classifier {
	c := &Classifier{blacklist: make(map[string]struct{}, len(DefaultBlacklist)+len(extraBlacklist))}
	for _, term := range DefaultBlacklist {
		c.blacklist[term] = struct{}{}
	}
	for _, term := range extraBlacklist {
		term = strings.ToUpper(NormalizeLine(strings.TrimRight(strings.TrimSpace(term), ":.")))
		if term != "" {
			c.blacklist[term] = struct{}{}
		}
	}
	return c
}

// Classify tests line as a heading first and, only while a scene is open, as a
// character cue. Everything else is action text.
func (c *Classifier) Classify(line string, sceneOpen bool) Classification {
	if heading, ok := ParseHeading(line); ok {
		return Classification{Kind: KindHeading, Heading: heading}
	}
	if sceneOpen {
		if name, ok := c.CueName(line); ok {
			return Classification{Kind: KindCue, Name: name}
		}
	}
	return Classification{Kind: KindAction}
}

// ParseHeading matches line against the heading pattern. Location and time of
// day fall back to UNKNOWN when they cannot be extracted.
func ParseHeading(line string) (Heading, bool) {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return Heading{}, false
	}
	location := strings.ToUpper(strings.TrimSpace(m[headingLocationGroup]))
	if location == "" {
		location = UnknownLocation
	}
	tod := TimeUnknown
	if m[headingTimeGroup] != "" {
		tod = ParseTimeOfDay(m[headingTimeGroup])
	}
	return Heading{
		Text:      line,
		Location:  location,
		TimeOfDay: tod,
	}, true
}

// IsHeading reports whether line is a scene heading.
func IsHeading(line string) bool {
	return headingPattern.MatchString(line)
}

// CueName returns the character name when line is a character cue: an
// uppercase line of one to three tokens built from letters, digits, spaces,
// periods, hyphens, apostrophes, and parentheses that is neither a blacklisted
// screen direction nor a phrase ending in "TO". Trailing colons are ignored, and
// trailing periods are ignored when comparing against the blacklist.
func (c *Classifier) CueName(line string) (string, bool) {
	name := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line), ":"))
	if name == "" || utf8.RuneCountInString(name) > maxCueRunes {
		return "", false
	}
	first, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsUpper(first) {
		return "", false
	}
	for _, r := range name {
		if !isCueRune(r) {
			return "", false
		}
	}
	tokens := strings.Fields(name)
	if len(tokens) == 0 || len(tokens) > maxCueTokens {
		return "", false
	}
	name = strings.ToUpper(strings.Join(tokens, " "))
	if _, blocked := c.blacklist[strings.TrimRight(name, ".")]; blocked {
		return "", false
	}
	if strings.TrimRight(strings.ToUpper(tokens[len(tokens)-1]), ".") == "TO" {
		return "", false
	}
	return name, true
}

func isCueRune(r rune) bool {
	switch {
	case unicode.IsUpper(r):
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '.', '-', '\'', '(', ')':
		return true
	}
	return false
}
