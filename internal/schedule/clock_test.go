package schedule

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{"08:00", 480, false},
		{"13:00", 780, false},
		{" 7:30 ", 450, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"8", 0, true},
		{"08:5", 0, true},
		{"aa:00", 0, true},
		{"08:60", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClockAddAndString(t *testing.T) {
	c := MustParseClock("08:00")
	if got := c.Add(90 * time.Minute).String(); got != "09:30" {
		t.Fatalf("Add(90m) = %s, want 09:30", got)
	}
	if got := MustParseClock("23:00").Add(2 * time.Hour).String(); got != "25:00" {
		t.Fatalf("expected clock to keep counting past midnight, got %s", got)
	}
}

func TestParseScheduleClockAcceptsOvertime(t *testing.T) {
	got, err := ParseScheduleClock("25:30")
	if err != nil {
		t.Fatalf("ParseScheduleClock: %v", err)
	}
	if got != 25*60+30 || got.String() != "25:30" {
		t.Fatalf("ParseScheduleClock(25:30) = %d (%s)", got, got)
	}
	if _, err := ParseScheduleClock("25:75"); err == nil {
		t.Fatal("expected invalid minute to fail")
	}
	if _, err := ParseClock("25:30"); err == nil {
		t.Fatal("ParseClock should still reject hours past 23")
	}
}
