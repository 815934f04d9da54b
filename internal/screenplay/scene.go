package screenplay

import "strings"

// TimeOfDay is the lighting condition named by a scene heading.
type TimeOfDay string

// Recognized time-of-day values.
const (
	TimeDay     TimeOfDay = "DAY"
	TimeNight   TimeOfDay = "NIGHT"
	TimeEvening TimeOfDay = "EVENING"
	TimeMorning TimeOfDay = "MORNING"
	TimeDawn    TimeOfDay = "DAWN"
	TimeDusk    TimeOfDay = "DUSK"
	TimeUnknown TimeOfDay = "UNKNOWN"
)

// ParseTimeOfDay maps a case-insensitive label onto the enumerated set,
// returning TimeUnknown for anything unrecognized.
func ParseTimeOfDay(value string) TimeOfDay {
	switch tod := TimeOfDay(strings.ToUpper(strings.TrimSpace(value))); tod {
	case TimeDay, TimeNight, TimeEvening, TimeMorning, TimeDawn, TimeDusk:
		return tod
	default:
		return TimeUnknown
	}
}

// UnknownLocation is stored when a heading yields no usable location.
const UnknownLocation = "UNKNOWN"

// Scene is one contiguous unit of the screenplay between two headings.
type Scene struct {
	Number     int       `json:"scene_number" yaml:"scene_number"`
	Heading    string    `json:"heading" yaml:"heading"`
	Location   string    `json:"location" yaml:"location"`
	TimeOfDay  TimeOfDay `json:"time_of_day" yaml:"time_of_day"`
	Characters []string  `json:"characters" yaml:"characters"`

	// Actions holds the raw action and dialogue lines until enrichment is done.
	Actions []string `json:"-" yaml:"-"`
}

// HasCharacter reports whether name is already part of the scene's cast.
func (s *Scene) HasCharacter(name string) bool {
	for _, existing := range s.Characters {
		if existing == name {
			return true
		}
	}
	return false
}

// AddCharacter appends name unless it is already present. It reports whether
// the cast changed.
func (s *Scene) AddCharacter(name string) bool {
	if name == "" || s.HasCharacter(name) {
		return false
	}
	s.Characters = append(s.Characters, name)
	return true
}

// ActionText returns the scene's action lines joined and upper-cased.
func (s *Scene) ActionText() string {
	return strings.ToUpper(strings.Join(s.Actions, "\n"))
}

// DiscardActions drops the action buffers of every scene.
func DiscardActions(scenes []Scene) {
	for i := range scenes {
		scenes[i].Actions = nil
	}
}
