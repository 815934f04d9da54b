package schedule

import (
	"fmt"
	"time"

	"reelplan/internal/screenplay"
)

// LunchPolicy selects when the lunch break is taken.
type LunchPolicy string

const (
	// LunchExact takes lunch only when the running clock lands exactly on the
	// lunch time. A scene straddling that time skips lunch for the day.
	LunchExact LunchPolicy = "exact"
	// LunchOnce takes lunch the first time the clock reaches or passes the
	// lunch time on a day.
	LunchOnce LunchPolicy = "once"
)

// ParseLunchPolicy validates a policy name.
func ParseLunchPolicy(value string) (LunchPolicy, error) {
	switch p := LunchPolicy(value); p {
	case LunchExact, LunchOnce:
		return p, nil
	case "":
		return LunchExact, nil
	default:
		return "", fmt.Errorf("lunch policy %q: expected %q or %q", value, LunchExact, LunchOnce)
	}
}

// Options configures the allocator.
type Options struct {
	WorkdayStart       Clock
	MaxHoursPerDay     int
	LunchAt            Clock
	LunchDuration      time.Duration
	LunchPolicy        LunchPolicy
	LargeCastThreshold int
	LargeCastHours     int
	BaseHours          int
}

// DefaultOptions returns the standard 08:00 start, 10-hour cap, and one-hour
// lunch at exactly 13:00, with two-hour scenes for casts above two.
func DefaultOptions() Options {
	return Options{
		WorkdayStart:       MustParseClock("08:00"),
		MaxHoursPerDay:     10,
		LunchAt:            MustParseClock("13:00"),
		LunchDuration:      time.Hour,
		LunchPolicy:        LunchExact,
		LargeCastThreshold: 2,
		LargeCastHours:     2,
		BaseHours:          1,
	}
}

// EstimateHours returns the shooting estimate for a scene: LargeCastHours when
// the cast exceeds LargeCastThreshold, BaseHours otherwise.
func (o Options) EstimateHours(scene screenplay.Scene) int {
	if len(scene.Characters) > o.LargeCastThreshold {
		return o.LargeCastHours
	}
	return o.BaseHours
}

type allocator struct {
	opts       Options
	day        int
	clock      Clock
	usedToday  time.Duration
	lunchTaken bool
}

// Allocate places scenes, in the given order, onto shooting days. Callers
// normally pass the output of Flatten(GroupScenes(...)). The result is never
// nil.
func Allocate(scenes []screenplay.Scene, opts Options) []Entry {
	a := &allocator{opts: opts, day: 1, clock: opts.WorkdayStart}
	entries := make([]Entry, 0, len(scenes))
	for _, scene := range scenes {
		entries = append(entries, a.place(scene))
	}
	return entries
}

// Build groups, sorts, and allocates scenes in one call.
func Build(scenes []screenplay.Scene, opts Options) []Entry {
	return Allocate(Flatten(GroupScenes(scenes)), opts)
}

func (a *allocator) place(scene screenplay.Scene) Entry {
	hours := a.opts.EstimateHours(scene)
	duration := time.Duration(hours) * time.Hour

	if a.lunchDue() {
		a.clock = a.clock.Add(a.opts.LunchDuration)
		a.usedToday += a.opts.LunchDuration
		a.lunchTaken = true
	}

	// An empty day always accepts the scene, even one longer than the cap.
	if a.usedToday > 0 && a.usedToday+duration > a.dailyCap() {
		a.day++
		a.clock = a.opts.WorkdayStart
		a.usedToday = 0
		a.lunchTaken = false
	}

	entry := Entry{
		Day:               a.day,
		StartTime:         a.clock.String(),
		SceneHeading:      scene.Heading,
		Location:          scene.Location,
		TimeOfDay:         scene.TimeOfDay,
		Characters:        append([]string{}, scene.Characters...),
		EstimatedDuration: hours,
	}

	a.clock = a.clock.Add(duration)
	a.usedToday += duration
	return entry
}

func (a *allocator) lunchDue() bool {
	switch a.opts.LunchPolicy {
	case LunchOnce:
		return !a.lunchTaken && a.clock >= a.opts.LunchAt
	default:
		return a.clock == a.opts.LunchAt
	}
}

func (a *allocator) dailyCap() time.Duration {
	return time.Duration(a.opts.MaxHoursPerDay) * time.Hour
}
