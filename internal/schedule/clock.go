package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time of day measured in minutes after midnight.
type Clock int

// ParseClock parses an "HH:MM" string (24-hour).
func ParseClock(value string) (Clock, error) {
	return parseClock(value, 23)
}

// ParseScheduleClock parses a start time produced by Clock.String. Hours past
// 23 are accepted because a shooting day may run over midnight.
func ParseScheduleClock(value string) (Clock, error) {
	return parseClock(value, -1)
}

func parseClock(value string, maxHour int) (Clock, error) {
	value = strings.TrimSpace(value)
	hh, mm, ok := strings.Cut(value, ":")
	if !ok {
		return 0, fmt.Errorf("clock %q: expected HH:MM", value)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || (maxHour >= 0 && hours > maxHour) {
		return 0, fmt.Errorf("clock %q: invalid hour", value)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock %q: invalid minute", value)
	}
	return Clock(hours*60 + minutes), nil
}

// MustParseClock is ParseClock for constants; it panics on malformed input.
func MustParseClock(value string) Clock {
	c, err := ParseClock(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Add returns the clock advanced by d, truncated to whole minutes.
func (c Clock) Add(d time.Duration) Clock {
	return c + Clock(d/time.Minute)
}

// String formats the clock as zero-padded "HH:MM". Hours past midnight keep
// counting (a shoot running over shows "24:30") so times stay monotonic.
func (c Clock) String() string {
	if c < 0 {
		c = 0
	}
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
