package screenplay_test

import (
	"reflect"
	"testing"

	"reelplan/internal/screenplay"
)

func feedAll(seg *screenplay.Segmenter, lines ...string) []screenplay.Scene {
	for _, line := range lines {
		seg.Feed(line)
	}
	return seg.Finish()
}

func TestSegmenterDiscardsPreambleAndFlushesLastScene(t *testing.T) {
	seg := screenplay.NewSegmenter(nil)
	scenes := feedAll(seg,
		"LAST MILE",
		"Written by Someone",
		"FADE IN:",
		"1. INT. HOUSE - DAY",
		"ALICE",
		"Morning.",
		"BOB",
		"Hi.",
		"ALICE",
		"Again.",
		"2. EXT. PARK - DAY",
		"Leaves blow across the path.",
	)

	if len(scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(scenes))
	}
	first := scenes[0]
	if first.Number != 1 || first.Heading != "1. INT. HOUSE - DAY" || first.Location != "HOUSE" || first.TimeOfDay != screenplay.TimeDay {
		t.Fatalf("unexpected first scene: %+v", first)
	}
	if !reflect.DeepEqual(first.Characters, []string{"ALICE", "BOB"}) {
		t.Fatalf("unexpected cast: %v", first.Characters)
	}
	if !reflect.DeepEqual(first.Actions, []string{"Morning.", "Hi.", "Again."}) {
		t.Fatalf("unexpected actions: %v", first.Actions)
	}
	second := scenes[1]
	if second.Number != 2 || len(second.Characters) != 0 || len(second.Actions) != 1 {
		t.Fatalf("unexpected second scene: %+v", second)
	}

	stats := seg.Stats()
	want := screenplay.LineStats{Lines: 12, Headings: 2, Cues: 3, Actions: 4, Discarded: 3}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestSegmenterBlacklistedDirectionStaysInScene(t *testing.T) {
	scenes := feedAll(screenplay.NewSegmenter(nil),
		"INT. HOUSE - DAY",
		"ALICE",
		"CUT TO:",
		"EXT. STREET - NIGHT",
	)
	if len(scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(scenes))
	}
	if !reflect.DeepEqual(scenes[0].Characters, []string{"ALICE"}) {
		t.Fatalf("CUT TO: leaked into cast: %v", scenes[0].Characters)
	}
	if !reflect.DeepEqual(scenes[0].Actions, []string{"CUT TO:"}) {
		t.Fatalf("expected CUT TO: as action text, got %v", scenes[0].Actions)
	}
}

func TestSegmenterNumbersAreSequential(t *testing.T) {
	scenes := feedAll(screenplay.NewSegmenter(nil),
		"5. INT. A - DAY",
		"2A. INT. B - DAY",
		"INT. C - NIGHT",
		"99. EXT. D - DUSK",
	)
	for i, scene := range scenes {
		if scene.Number != i+1 {
			t.Fatalf("scene %d has number %d", i, scene.Number)
		}
	}
	if scenes[1].Heading != "2A. INT. B - DAY" {
		t.Fatalf("heading not preserved verbatim: %q", scenes[1].Heading)
	}
}

func TestSegmenterWithoutHeadings(t *testing.T) {
	seg := screenplay.NewSegmenter(nil)
	scenes := feedAll(seg, "ALICE", "Some text.", "BOB")
	if scenes == nil || len(scenes) != 0 {
		t.Fatalf("expected empty non-nil scenes, got %#v", scenes)
	}
	if seg.Stats().Discarded != 3 {
		t.Fatalf("expected 3 discarded lines, got %+v", seg.Stats())
	}
}
