package callsheet_test

import (
	"reflect"
	"testing"

	"reelplan/internal/callsheet"
	"reelplan/internal/schedule"
	"reelplan/internal/screenplay"
)

func entry(day int, start, heading, location string, hours int, cast ...string) schedule.Entry {
	return schedule.Entry{
		Day:               day,
		StartTime:         start,
		SceneHeading:      heading,
		Location:          location,
		TimeOfDay:         screenplay.TimeDay,
		Characters:        cast,
		EstimatedDuration: hours,
	}
}

func TestGenerateGroupsByDay(t *testing.T) {
	entries := []schedule.Entry{
		entry(1, "08:00", "1. INT. JOHN'S KITCHEN - DAY", "JOHN'S KITCHEN", 1, "JOHN", "MARY"),
		entry(1, "09:00", "1A. INT. JOHN'S KITCHEN - DAY", "JOHN'S KITCHEN", 2, "MARY", "JOHN", "PETE"),
		entry(1, "11:00", "4. EXT. PARK - DAY", "PARK", 1, "PETE"),
		entry(2, "08:00", "7. INT. OFFICE - NIGHT", "OFFICE", 1),
	}
	sheets := callsheet.Generate(entries)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(sheets))
	}

	day1 := sheets[0]
	if day1.Day != 1 || day1.FirstCall != "08:00" || day1.EstimatedWrap != "12:00" {
		t.Fatalf("unexpected day 1 times: %+v", day1)
	}
	if want := []string{"JOHN", "MARY", "PETE"}; !reflect.DeepEqual(day1.Actors, want) {
		t.Fatalf("actors = %v, want %v", day1.Actors, want)
	}
	if want := []string{"John's Kitchen", "Park"}; !reflect.DeepEqual(day1.Locations, want) {
		t.Fatalf("locations = %v, want %v", day1.Locations, want)
	}
	if len(day1.Scenes) != 3 || day1.Scenes[2] != "4. EXT. PARK - DAY" {
		t.Fatalf("scenes = %v", day1.Scenes)
	}
	if day1.SceneHours != 4 {
		t.Fatalf("scene hours = %d", day1.SceneHours)
	}

	day2 := sheets[1]
	if day2.Actors == nil || len(day2.Actors) != 0 {
		t.Fatalf("expected empty non-nil actors, got %#v", day2.Actors)
	}
	if day2.EstimatedWrap != "09:00" {
		t.Fatalf("day 2 wrap = %q", day2.EstimatedWrap)
	}
}

func TestGenerateFromAllocatedSchedule(t *testing.T) {
	var scenes []screenplay.Scene
	for i := 1; i <= 12; i++ {
		scenes = append(scenes, screenplay.Scene{
			Number:     i,
			Heading:    "INT. SET - DAY",
			Location:   "SET",
			TimeOfDay:  screenplay.TimeDay,
			Characters: []string{"ALICE"},
		})
	}
	entries := schedule.Build(scenes, schedule.DefaultOptions())
	sheets := callsheet.Generate(entries)
	if len(sheets) != schedule.DayCount(entries) {
		t.Fatalf("sheets = %d, days = %d", len(sheets), schedule.DayCount(entries))
	}
	total := 0
	for _, sheet := range sheets {
		total += len(sheet.Scenes)
		if sheet.FirstCall != "08:00" {
			t.Fatalf("day %d first call %q", sheet.Day, sheet.FirstCall)
		}
	}
	if total != len(scenes) {
		t.Fatalf("sheets cover %d scenes, want %d", total, len(scenes))
	}
}

func TestGenerateEmpty(t *testing.T) {
	if sheets := callsheet.Generate(nil); sheets == nil || len(sheets) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", sheets)
	}
}

func TestDisplayLocation(t *testing.T) {
	tests := map[string]string{
		"HOUSE":                    "House",
		" CITY STREET ":            "City Street",
		"JOHN'S KITCHEN":           "John's Kitchen",
		screenplay.UnknownLocation: "Unknown",
	}
	for in, want := range tests {
		if got := callsheet.DisplayLocation(in); got != want {
			t.Fatalf("DisplayLocation(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateWrapPastMidnight(t *testing.T) {
	var scenes []screenplay.Scene
	for i := 1; i <= 5; i++ {
		scenes = append(scenes, screenplay.Scene{
			Number:     i,
			Heading:    "EXT. ROOFTOP - NIGHT",
			Location:   "ROOFTOP",
			TimeOfDay:  screenplay.TimeNight,
			Characters: []string{"ALICE"},
		})
	}
	opts := schedule.DefaultOptions()
	opts.WorkdayStart = schedule.MustParseClock("20:00")
	entries := schedule.Build(scenes, opts)
	if last := entries[len(entries)-1].StartTime; last != "24:00" {
		t.Fatalf("last start = %q, want 24:00", last)
	}

	sheets := callsheet.Generate(entries)
	if len(sheets) != 1 {
		t.Fatalf("expected 1 sheet, got %d", len(sheets))
	}
	if sheets[0].FirstCall != "20:00" || sheets[0].EstimatedWrap != "25:00" {
		t.Fatalf("first call %q wrap %q, want 20:00 and 25:00", sheets[0].FirstCall, sheets[0].EstimatedWrap)
	}
}
