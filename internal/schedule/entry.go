package schedule

import (
	"time"

	"reelplan/internal/screenplay"
)

// Entry is one scene placed on the shooting calendar.
type Entry struct {
	Day          int                  `json:"day" yaml:"day"`
	StartTime    string               `json:"start_time" yaml:"start_time"`
	SceneHeading string               `json:"scene_heading" yaml:"scene_heading"`
	Location     string               `json:"location" yaml:"location"`
	TimeOfDay    screenplay.TimeOfDay `json:"time_of_day" yaml:"time_of_day"`
	Characters   []string             `json:"characters" yaml:"characters"`
	// EstimatedDuration is in whole hours.
	EstimatedDuration int `json:"estimated_duration" yaml:"estimated_duration"`
}

// Duration returns the estimated duration as a time.Duration.
func (e Entry) Duration() time.Duration {
	return time.Duration(e.EstimatedDuration) * time.Hour
}

// DayCount returns the number of distinct shooting days in entries.
func DayCount(entries []Entry) int {
	if len(entries) == 0 {
		return 0
	}
	return entries[len(entries)-1].Day
}
