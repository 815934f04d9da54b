package screenplay_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"reelplan/internal/screenplay"
)

const sampleScript = `LAST MILE

FADE IN:

1. INT. HOUSE – DAY

Alice pours coffee. Bob reads.

ALICE
You're late.

BOB:
Traffic.

CUT TO:

2. EXT. PARK — DAY

Leaves scatter. CAROL jogs past.

CAROL
Morning!

2A. EXT. PARK - DAY

Carol stops. Alice waves from the bench.

3. INT. WAREHOUSE - NIGHT

Empty. Rain on the roof.
`

func TestParseSampleScript(t *testing.T) {
	res := screenplay.NewParser().Parse(sampleScript)
	scenes := res.Scenes
	if len(scenes) != 4 {
		t.Fatalf("expected 4 scenes, got %d", len(scenes))
	}

	wantHeadings := []string{
		"1. INT. HOUSE - DAY",
		"2. EXT. PARK - DAY",
		"2A. EXT. PARK - DAY",
		"3. INT. WAREHOUSE - NIGHT",
	}
	for i, scene := range scenes {
		if scene.Number != i+1 {
			t.Errorf("scene %d numbered %d", i, scene.Number)
		}
		if scene.Heading != wantHeadings[i] {
			t.Errorf("scene %d heading = %q, want %q", i, scene.Heading, wantHeadings[i])
		}
	}

	wantCasts := [][]string{
		{"ALICE", "BOB"},
		{"CAROL"},
		{"ALICE", "CAROL"},
		{},
	}
	for i, scene := range scenes {
		if !reflect.DeepEqual(scene.Characters, wantCasts[i]) {
			t.Errorf("scene %d cast = %v, want %v", i+1, scene.Characters, wantCasts[i])
		}
	}
	if res.Silent != 2 {
		t.Errorf("expected 2 silent characters, got %d", res.Silent)
	}
	if scenes[3].Location != "WAREHOUSE" || scenes[3].TimeOfDay != screenplay.TimeNight {
		t.Errorf("unexpected warehouse scene: %+v", scenes[3])
	}
}

func TestParseCharactersHaveNoDuplicates(t *testing.T) {
	text := strings.Repeat("INT. ROOM - DAY\nALICE\nHi.\nALICE\nAlice again, ALICE.\nBOB\n", 5)
	for _, scene := range screenplay.Parse(text) {
		seen := map[string]bool{}
		for _, name := range scene.Characters {
			key := strings.ToUpper(name)
			if seen[key] {
				t.Fatalf("scene %d has duplicate %q: %v", scene.Number, name, scene.Characters)
			}
			seen[key] = true
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\n\t", "no headings here\nALICE\n"} {
		scenes := screenplay.Parse(text)
		if scenes == nil || len(scenes) != 0 {
			t.Fatalf("Parse(%q) = %#v, want empty list", text, scenes)
		}
	}
}

func TestSceneJSONOmitsActions(t *testing.T) {
	scenes := screenplay.Parse("INT. HOUSE - DAY\nA quiet room.\n")
	data, err := json.Marshal(scenes)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)
	want := `[{"scene_number":1,"heading":"INT. HOUSE - DAY","location":"HOUSE","time_of_day":"DAY","characters":[]}]`
	if got != want {
		t.Fatalf("json = %s, want %s", got, want)
	}
}

func TestDiscardActions(t *testing.T) {
	scenes := screenplay.Parse("INT. HOUSE - DAY\nA quiet room.\n")
	screenplay.DiscardActions(scenes)
	if scenes[0].Actions != nil {
		t.Fatalf("expected actions discarded, got %v", scenes[0].Actions)
	}
}
