package schedule_test

import (
	"testing"

	"reelplan/internal/schedule"
	"reelplan/internal/screenplay"
)

func scene(num int, heading, location string, tod screenplay.TimeOfDay, cast ...string) screenplay.Scene {
	if cast == nil {
		cast = []string{}
	}
	return screenplay.Scene{Number: num, Heading: heading, Location: location, TimeOfDay: tod, Characters: cast}
}

func TestSceneRoot(t *testing.T) {
	tests := map[string]string{
		"2A. INT. HOUSE - DAY":  "2",
		"12. EXT. PARK - NIGHT": "12",
		"INT. HOUSE - DAY":      "0",
		"007. INT. VAULT":       "7",
		"000 INT. VOID":         "0",
		"":                      "0",
	}
	for heading, want := range tests {
		if got := schedule.SceneRoot(heading); got != want {
			t.Errorf("SceneRoot(%q) = %q, want %q", heading, got, want)
		}
	}
}

func TestGroupScenesOrdering(t *testing.T) {
	scenes := []screenplay.Scene{
		scene(1, "10. INT. HOUSE - DAY", "HOUSE", screenplay.TimeDay),
		scene(2, "2. EXT. PARK - DAY", "PARK", screenplay.TimeDay),
		scene(3, "INT. HALL - NIGHT", "HALL", screenplay.TimeNight),
		scene(4, "2B. EXT. PARK - DAY", "PARK", screenplay.TimeDay),
		scene(5, "2A. EXT. ALLEY - DAY", "ALLEY", screenplay.TimeDay),
		scene(6, "2. EXT. PARK - NIGHT", "PARK", screenplay.TimeNight),
		scene(7, "9. INT. HOUSE - DAY", "HOUSE", screenplay.TimeDay),
	}
	groups := schedule.GroupScenes(scenes)

	wantKeys := []schedule.GroupKey{
		{Root: "0", Location: "HALL", TimeOfDay: screenplay.TimeNight},
		{Root: "2", Location: "ALLEY", TimeOfDay: screenplay.TimeDay},
		{Root: "2", Location: "PARK", TimeOfDay: screenplay.TimeDay},
		{Root: "2", Location: "PARK", TimeOfDay: screenplay.TimeNight},
		{Root: "9", Location: "HOUSE", TimeOfDay: screenplay.TimeDay},
		{Root: "10", Location: "HOUSE", TimeOfDay: screenplay.TimeDay},
	}
	if len(groups) != len(wantKeys) {
		t.Fatalf("expected %d groups, got %d", len(wantKeys), len(groups))
	}
	for i, g := range groups {
		if g.Key != wantKeys[i] {
			t.Errorf("group %d key = %+v, want %+v", i, g.Key, wantKeys[i])
		}
	}

	park := groups[2].Scenes
	if len(park) != 2 || park[0].Number != 2 || park[1].Number != 4 {
		t.Fatalf("expected park day group to keep parse order [2 4], got %+v", park)
	}
}

func TestFlattenIncludesEverySceneOnce(t *testing.T) {
	var scenes []screenplay.Scene
	headings := []string{"3. INT. A - DAY", "1. INT. B - NIGHT", "3A. INT. A - DAY", "INT. C - DAY", "1B. INT. B - NIGHT", "20. EXT. D - DUSK"}
	for i, h := range headings {
		parsed, _ := screenplay.ParseHeading(h)
		scenes = append(scenes, scene(i+1, h, parsed.Location, parsed.TimeOfDay))
	}

	flat := schedule.Flatten(schedule.GroupScenes(scenes))
	if len(flat) != len(scenes) {
		t.Fatalf("flattened %d scenes, want %d", len(flat), len(scenes))
	}
	seen := map[int]int{}
	for _, s := range flat {
		seen[s.Number]++
	}
	for _, s := range scenes {
		if seen[s.Number] != 1 {
			t.Fatalf("scene %d appears %d times", s.Number, seen[s.Number])
		}
	}
	wantOrder := []int{4, 2, 5, 1, 3, 6}
	for i, s := range flat {
		if s.Number != wantOrder[i] {
			t.Fatalf("position %d holds scene %d, want %d", i, s.Number, wantOrder[i])
		}
	}
}

func TestGroupScenesEmpty(t *testing.T) {
	if groups := schedule.GroupScenes(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %v", groups)
	}
	if flat := schedule.Flatten(nil); flat == nil || len(flat) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", flat)
	}
}
