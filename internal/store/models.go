package store

import (
	"time"

	"reelplan/internal/callsheet"
	"reelplan/internal/props"
	"reelplan/internal/schedule"
	"reelplan/internal/screenplay"
)

// Run is one saved pipeline execution.
type Run struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	// Source is the input path, or "-" for stdin.
	Source       string `json:"source" yaml:"source"`
	SourceSHA256 string `json:"source_sha256" yaml:"source_sha256"`
	SceneCount   int    `json:"scene_count" yaml:"scene_count"`
	DayCount     int    `json:"day_count" yaml:"day_count"`
	SilentAdded  int    `json:"silent_added" yaml:"silent_added"`

	Artifacts Artifacts `json:"artifacts" yaml:"artifacts"`
}

// Artifacts are the pipeline outputs stored with a run.
type Artifacts struct {
	Scenes     []screenplay.Scene   `json:"scenes" yaml:"scenes"`
	Schedule   []schedule.Entry     `json:"schedule" yaml:"schedule"`
	CallSheets []callsheet.Sheet    `json:"call_sheets" yaml:"call_sheets"`
	Props      []props.SceneProps   `json:"scene_props,omitempty" yaml:"scene_props,omitempty"`
	Stats      screenplay.LineStats `json:"line_stats" yaml:"line_stats"`
}

// Summary is the listing view of a run without its artifacts.
type Summary struct {
	ID           string    `json:"id" yaml:"id"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	Source       string    `json:"source" yaml:"source"`
	SourceSHA256 string    `json:"source_sha256" yaml:"source_sha256"`
	SceneCount   int       `json:"scene_count" yaml:"scene_count"`
	DayCount     int       `json:"day_count" yaml:"day_count"`
	SilentAdded  int       `json:"silent_added" yaml:"silent_added"`
}

// Summary returns the listing view of r.
func (r *Run) Summary() Summary {
	return Summary{
		ID:           r.ID,
		CreatedAt:    r.CreatedAt,
		Source:       r.Source,
		SourceSHA256: r.SourceSHA256,
		SceneCount:   r.SceneCount,
		DayCount:     r.DayCount,
		SilentAdded:  r.SilentAdded,
	}
}
