package props

import (
	"sort"
	"strings"

	"reelplan/internal/screenplay"
	"reelplan/internal/textutil"
)

// DefaultLexicon lists props commonly called out in action lines.
var DefaultLexicon = []string{
	"axe", "bag", "ball", "bat", "beer", "bicycle", "binoculars", "book", "bottle",
	"box", "briefcase", "camera", "candle", "car", "cigarette", "clock", "coffee",
	"computer", "crowbar", "cup", "diary", "door", "flashlight", "flowers", "gift",
	"glass", "gun", "guitar", "hammer", "handcuffs", "hat", "helmet", "key",
	"knife", "ladder", "lamp", "laptop", "letter", "lighter", "map", "mask",
	"microphone", "mirror", "money", "motorcycle", "newspaper", "notebook",
	"phone", "photo", "photograph", "piano", "pistol", "radio", "ring", "rifle",
	"rope", "shotgun", "suitcase", "sword", "tablet", "taxi", "telephone",
	"television", "ticket", "torch", "truck", "umbrella", "van", "wallet",
	"watch", "whiskey", "wine",
}

// SceneProps lists the props found in one scene.
type SceneProps struct {
	SceneNumber int      `json:"scene_number" yaml:"scene_number"`
	Heading     string   `json:"heading" yaml:"heading"`
	Props       []string `json:"props" yaml:"props"`
}

// Tagger matches a fixed lexicon against scene action text.
type Tagger struct {
	terms []string
}

// NewTagger builds a tagger over DefaultLexicon plus extra terms. Terms are
// case-insensitive and deduplicated.
func NewTagger(extra ...string) *Tagger {
	seen := make(map[string]struct{}, len(DefaultLexicon)+len(extra))
	terms := make([]string, 0, len(DefaultLexicon)+len(extra))
	for _, term := range append(append([]string(nil), DefaultLexicon...), extra...) {
		term = strings.ToLower(strings.Join(strings.Fields(term), " "))
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return &Tagger{terms: terms}
}

// Terms returns the lexicon in sorted order.
func (t *Tagger) Terms() []string {
	return append([]string(nil), t.terms...)
}

// Tag returns the sorted lexicon terms mentioned in text. The result is never
// nil.
func (t *Tagger) Tag(text string) []string {
	upper := strings.ToUpper(text)
	found := []string{}
	for _, term := range t.terms {
		word := strings.ToUpper(term)
		if textutil.ContainsWord(upper, word) || matchesPlural(upper, word) {
			found = append(found, term)
		}
	}
	return found
}

// TagScenes tags every scene from its action lines. Scenes whose actions were
// already discarded get an empty list.
func (t *Tagger) TagScenes(scenes []screenplay.Scene) []SceneProps {
	out := make([]SceneProps, 0, len(scenes))
	for i := range scenes {
		out = append(out, SceneProps{
			SceneNumber: scenes[i].Number,
			Heading:     scenes[i].Heading,
			Props:       t.Tag(scenes[i].ActionText()),
		})
	}
	return out
}

// Index maps each prop to the scene numbers that need it.
func Index(tagged []SceneProps) map[string][]int {
	index := make(map[string][]int)
	for _, sp := range tagged {
		for _, prop := range sp.Props {
			index[prop] = append(index[prop], sp.SceneNumber)
		}
	}
	return index
}

func matchesPlural(text, word string) bool {
	plural := pluralize(word)
	return plural != "" && textutil.ContainsWord(text, plural)
}

// pluralize returns "" for sibilant endings: "WATCHES" and "BOXES" read as
// verbs in action lines far more often than as props.
func pluralize(word string) string {
	switch {
	case strings.HasSuffix(word, "S"), strings.HasSuffix(word, "X"), strings.HasSuffix(word, "Z"),
		strings.HasSuffix(word, "CH"), strings.HasSuffix(word, "SH"):
		return ""
	case strings.HasSuffix(word, "Y") && len(word) > 1 && !strings.ContainsRune("AEIOU", rune(word[len(word)-2])):
		return word[:len(word)-1] + "IES"
	case strings.HasSuffix(word, "FE"):
		return word[:len(word)-2] + "VES"
	default:
		return word + "S"
	}
}
