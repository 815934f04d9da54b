// Package callsheet aggregates a shooting schedule into per-day call sheets.
package callsheet

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"reelplan/internal/schedule"
)

// Sheet summarizes one shooting day.
type Sheet struct {
	Day       int    `json:"day" yaml:"day"`
	FirstCall string `json:"first_call" yaml:"first_call"`
	// EstimatedWrap is the start time of the last scene plus its duration.
	EstimatedWrap string   `json:"estimated_wrap" yaml:"estimated_wrap"`
	Actors        []string `json:"actors" yaml:"actors"`
	Scenes        []string `json:"scenes" yaml:"scenes"`
	Locations     []string `json:"locations" yaml:"locations"`
	SceneHours    int      `json:"scene_hours" yaml:"scene_hours"`
}

var titleCaser = cases.Title(language.English)

// DisplayLocation renders an upper-case location for humans, e.g.
// "JOHN'S KITCHEN" becomes "John's Kitchen".
func DisplayLocation(location string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(location)))
}

// Generate builds one sheet per day, ordered by day. Actors and locations are
// unique and keep first-appearance order; scenes keep schedule order.
func Generate(entries []schedule.Entry) []Sheet {
	byDay := make(map[int]*Sheet)
	seenActor := make(map[int]map[string]struct{})
	seenLocation := make(map[int]map[string]struct{})
	lastEnd := make(map[int]schedule.Clock)

	for _, entry := range entries {
		sheet, ok := byDay[entry.Day]
		if !ok {
			sheet = &Sheet{
				Day:       entry.Day,
				FirstCall: entry.StartTime,
				Actors:    []string{},
				Scenes:    []string{},
				Locations: []string{},
			}
			byDay[entry.Day] = sheet
			seenActor[entry.Day] = make(map[string]struct{})
			seenLocation[entry.Day] = make(map[string]struct{})
		}
		for _, actor := range entry.Characters {
			if _, dup := seenActor[entry.Day][actor]; dup {
				continue
			}
			seenActor[entry.Day][actor] = struct{}{}
			sheet.Actors = append(sheet.Actors, actor)
		}
		location := DisplayLocation(entry.Location)
		if _, dup := seenLocation[entry.Day][location]; !dup && location != "" {
			seenLocation[entry.Day][location] = struct{}{}
			sheet.Locations = append(sheet.Locations, location)
		}
		sheet.Scenes = append(sheet.Scenes, entry.SceneHeading)
		sheet.SceneHours += entry.EstimatedDuration

		if start, err := schedule.ParseScheduleClock(entry.StartTime); err == nil {
			if start < clockOr(sheet.FirstCall, start) {
				sheet.FirstCall = entry.StartTime
			}
			if end := start.Add(entry.Duration()); end > lastEnd[entry.Day] {
				lastEnd[entry.Day] = end
			}
		}
	}

	sheets := make([]Sheet, 0, len(byDay))
	for day, sheet := range byDay {
		if end, ok := lastEnd[day]; ok {
			sheet.EstimatedWrap = end.String()
		}
		sheets = append(sheets, *sheet)
	}
	sort.Slice(sheets, func(i, j int) bool { return sheets[i].Day < sheets[j].Day })
	return sheets
}

func clockOr(value string, fallback schedule.Clock) schedule.Clock {
	c, err := schedule.ParseScheduleClock(value)
	if err != nil {
		return fallback
	}
	return c
}
