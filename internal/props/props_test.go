package props_test

import (
	"reflect"
	"testing"

	"reelplan/internal/props"
	"reelplan/internal/screenplay"
)

func TestTagMatchesWholeWords(t *testing.T) {
	tagger := props.NewTagger()
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"singular", "She grabs the KNIFE from the counter.", []string{"knife"}},
		{"plural", "Two knives and three bottles on the table.", []string{"bottle", "knife"}},
		{"inside other word", "He scares the cartographer with a carpet.", []string{}},
		{"y plural", "A stack of diaries.", []string{"diary"}},
		{"multiple", "He loads the GUN, pockets the keys, and checks his watch.", []string{"gun", "key", "watch"}},
		{"sibilant verbs", "Mary watches. He boxes up the wallet and glances at the clock.", []string{"clock", "wallet"}},
		{"nothing", "They stare at each other.", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tagger.Tag(tc.text); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tag(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestTagSkipsSibilantPlurals(t *testing.T) {
	tagger := props.NewTagger("match", "torch")
	if got := tagger.Tag("She strikes the match. He matches her pace and torches nothing."); !reflect.DeepEqual(got, []string{"match"}) {
		t.Fatalf("Tag = %v, want [match]", got)
	}
	if got := tagger.Tag("He matches her pace."); len(got) != 0 {
		t.Fatalf("Tag = %v, want no props", got)
	}
}

func TestNewTaggerAddsExtraTerms(t *testing.T) {
	tagger := props.NewTagger("Steadicam", "  smoke   machine ", "KNIFE")
	got := tagger.Tag("Operator sets up the STEADICAM next to the smoke machine.")
	if want := []string{"smoke machine", "steadicam"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	count := 0
	for _, term := range tagger.Terms() {
		if term == "knife" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected deduplicated lexicon, knife appears %d times", count)
	}
}

func TestTagScenesUsesActionBuffers(t *testing.T) {
	text := "1. INT. BAR - NIGHT\nMAX pours whiskey into a glass.\nMAX\nCheers.\n2. EXT. ROAD - NIGHT\nA truck speeds past.\n"
	result := screenplay.NewParser().Parse(text)
	tagged := props.NewTagger().TagScenes(result.Scenes)
	if len(tagged) != 2 {
		t.Fatalf("expected 2 tagged scenes, got %d", len(tagged))
	}
	if want := []string{"glass", "whiskey"}; !reflect.DeepEqual(tagged[0].Props, want) {
		t.Fatalf("scene 1 props = %v, want %v", tagged[0].Props, want)
	}
	if want := []string{"truck"}; !reflect.DeepEqual(tagged[1].Props, want) {
		t.Fatalf("scene 2 props = %v, want %v", tagged[1].Props, want)
	}

	index := props.Index(tagged)
	if !reflect.DeepEqual(index["truck"], []int{2}) {
		t.Fatalf("index = %v", index)
	}

	screenplay.DiscardActions(result.Scenes)
	for _, sp := range props.NewTagger().TagScenes(result.Scenes) {
		if len(sp.Props) != 0 {
			t.Fatalf("expected no props after discard, got %v", sp.Props)
		}
	}
}
