// Package cast reports who appears where in a parsed screenplay and flags
// character names that are probably the same person spelled two ways.
package cast

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"reelplan/internal/screenplay"
)

// SpellingThreshold is the Jaro-Winkler similarity at or above which two names
// are reported as likely duplicates.
const SpellingThreshold = 0.92

// phoneticFloor keeps sound-alike matches from pairing unrelated short names.
const phoneticFloor = 0.75

// Reason explains why two names were paired.
type Reason string

const (
	ReasonExtension Reason = "extension"
	ReasonSpelling  Reason = "spelling"
	ReasonPhonetic  Reason = "phonetic"
)

// Character is one cast member's appearance summary.
type Character struct {
	Name       string `json:"name" yaml:"name"`
	SceneCount int    `json:"scene_count" yaml:"scene_count"`
	FirstScene int    `json:"first_scene" yaml:"first_scene"`
	Scenes     []int  `json:"scenes" yaml:"scenes"`
}

// Duplicate pairs two names that likely refer to one character.
type Duplicate struct {
	A          string  `json:"a" yaml:"a"`
	B          string  `json:"b" yaml:"b"`
	Similarity float64 `json:"similarity" yaml:"similarity"`
	Reason     Reason  `json:"reason" yaml:"reason"`
}

// Report is the cast breakdown of a screenplay.
type Report struct {
	Characters []Character `json:"characters" yaml:"characters"`
	Duplicates []Duplicate `json:"duplicates" yaml:"duplicates"`
}

// Build summarizes scenes. Characters are ordered by scene count, most first,
// with ties in order of first appearance.
func Build(scenes []screenplay.Scene) Report {
	index := make(map[string]int)
	characters := []Character{}
	for _, scene := range scenes {
		for _, name := range scene.Characters {
			i, ok := index[name]
			if !ok {
				i = len(characters)
				index[name] = i
				characters = append(characters, Character{Name: name, FirstScene: scene.Number})
			}
			characters[i].SceneCount++
			characters[i].Scenes = append(characters[i].Scenes, scene.Number)
		}
	}

	names := make([]string, len(characters))
	for i, c := range characters {
		names[i] = c.Name
	}
	sort.SliceStable(characters, func(i, j int) bool {
		return characters[i].SceneCount > characters[j].SceneCount
	})
	return Report{Characters: characters, Duplicates: FindDuplicates(names)}
}

// FindDuplicates compares every pair of names and returns the likely
// duplicates in input order.
func FindDuplicates(names []string) []Duplicate {
	dups := []Duplicate{}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if d, ok := Compare(names[i], names[j]); ok {
				dups = append(dups, d)
			}
		}
	}
	return dups
}

// Compare decides whether a and b likely name the same character.
func Compare(a, b string) (Duplicate, bool) {
	baseA, baseB := BaseName(a), BaseName(b)
	if baseA == "" || baseB == "" || a == b {
		return Duplicate{}, false
	}
	if baseA == baseB {
		return Duplicate{A: a, B: b, Similarity: 1, Reason: ReasonExtension}, true
	}
	score := matchr.JaroWinkler(baseA, baseB, false)
	if score >= SpellingThreshold {
		return Duplicate{A: a, B: b, Similarity: score, Reason: ReasonSpelling}, true
	}
	if score >= phoneticFloor && soundsAlike(baseA, baseB) {
		return Duplicate{A: a, B: b, Similarity: score, Reason: ReasonPhonetic}, true
	}
	return Duplicate{}, false
}

// BaseName strips parenthetical extensions such as "(V.O.)" or "(CONT'D)"
// and collapses whitespace.
func BaseName(name string) string {
	if idx := strings.IndexByte(name, '('); idx >= 0 {
		name = name[:idx]
	}
	return strings.Join(strings.Fields(name), " ")
}

func soundsAlike(a, b string) bool {
	codesA := metaphoneCodes(a)
	for code := range metaphoneCodes(b) {
		if _, ok := codesA[code]; ok {
			return true
		}
	}
	return false
}

func metaphoneCodes(name string) map[string]struct{} {
	codes := make(map[string]struct{}, 2)
	primary, secondary := matchr.DoubleMetaphone(strings.ReplaceAll(name, " ", ""))
	if primary != "" {
		codes[primary] = struct{}{}
	}
	if secondary != "" {
		codes[secondary] = struct{}{}
	}
	return codes
}
