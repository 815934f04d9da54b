package logs_test

import (
	"strings"
	"testing"

	"reelplan/internal/logs"
)

const sampleLines = `{"ts":"2026-03-01T09:00:00Z","level":"info","msg":"run started","component":"pipeline","run_id":"abc-123","source":"script.txt"}
{"ts":"2026-03-01T09:00:01Z","level":"debug","msg":"stage completed","component":"pipeline","stage":"parse","run_id":"abc-123"}
not json
{"ts":"2026-03-01T09:00:02Z","level":"warn","msg":"possible duplicate character names","run_id":"def-456","pairs":2}`

func TestParseEntry(t *testing.T) {
	entry, ok := logs.ParseEntry(strings.Split(sampleLines, "\n")[0])
	if !ok {
		t.Fatal("expected JSON line to parse")
	}
	if entry.Level != "info" || entry.Message != "run started" || entry.RunID != "abc-123" || entry.Component != "pipeline" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if entry.Fields["source"] != "script.txt" {
		t.Fatalf("fields = %v", entry.Fields)
	}
	if entry.Time.IsZero() {
		t.Fatal("expected timestamp to parse")
	}

	if _, ok := logs.ParseEntry("not json"); ok {
		t.Fatal("expected plain text to be rejected")
	}
}

func TestFilterApply(t *testing.T) {
	lines := strings.Split(sampleLines, "\n")

	tests := []struct {
		name   string
		filter logs.Filter
		want   []string
	}{
		{"all", logs.Filter{}, []string{"run started", "stage completed", "possible duplicate character names"}},
		{"run prefix", logs.Filter{RunID: "abc"}, []string{"run started", "stage completed"}},
		{"min level", logs.Filter{MinLevel: "info"}, []string{"run started", "possible duplicate character names"}},
		{"both", logs.Filter{RunID: "def", MinLevel: "error"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(lines)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(got), len(tt.want))
			}
			for i, entry := range got {
				if entry.Message != tt.want[i] {
					t.Fatalf("entry %d = %q, want %q", i, entry.Message, tt.want[i])
				}
			}
		})
	}
}

func TestFormat(t *testing.T) {
	entry, _ := logs.ParseEntry(`{"level":"debug","msg":"stage completed","component":"pipeline","stage":"parse","duration":"1ms","b":"2","a":"1"}`)
	got := logs.Format(entry)
	want := "DEBUG [pipeline] parse: stage completed a=1 b=2 duration=1ms"
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}
