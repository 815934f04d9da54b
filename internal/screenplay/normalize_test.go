package screenplay_test

import (
	"reflect"
	"testing"

	"reelplan/internal/screenplay"
)

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "INT. HOUSE - DAY", "INT. HOUSE - DAY"},
		{"surrounding space", "   ALICE  \t", "ALICE"},
		{"collapse runs", "INT.   HOUSE\t\t-  DAY", "INT. HOUSE - DAY"},
		{"non-breaking space", "INT.\u00a0HOUSE", "INT. HOUSE"},
		{"en dash", "INT. HOUSE \u2013 NIGHT", "INT. HOUSE - NIGHT"},
		{"em dash", "EXT. PARK\u2014DAY", "EXT. PARK-DAY"},
		{"decomposed accent", "JOSE\u0301", "JOS\u00c9"},
		{"fullwidth compatibility", "\uff29\uff2e\uff34. ROOM", "INT. ROOM"},
		{"blank", " \t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := screenplay.NormalizeLine(tt.in); got != tt.want {
				t.Fatalf("NormalizeLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeLineIdempotent(t *testing.T) {
	inputs := []string{
		"12A. INT. WAREHOUSE \u2014 NIGHT",
		"  O'BRIEN (V.O.):  ",
		"Jose\u0301 walks\u00a0in.",
		"",
	}
	for _, in := range inputs {
		once := screenplay.NormalizeLine(in)
		if twice := screenplay.NormalizeLine(once); twice != once {
			t.Fatalf("normalizing %q twice changed it: %q -> %q", in, once, twice)
		}
	}
}

func TestNormalizeLinesDropsBlankLines(t *testing.T) {
	text := "INT. HOUSE - DAY\r\n\r\n   \nALICE\n\nHello.\r"
	got := screenplay.NormalizeLines(text)
	want := []string{"INT. HOUSE - DAY", "ALICE", "Hello."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeLines() = %q, want %q", got, want)
	}
	if got := screenplay.NormalizeLines(""); len(got) != 0 {
		t.Fatalf("expected no lines for empty text, got %q", got)
	}
}
