package logs

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry is one decoded JSON log line.
type Entry struct {
	Time      time.Time
	Level     string
	Message   string
	Component string
	Stage     string
	RunID     string
	// Fields holds every other attribute, rendered as text.
	Fields map[string]string
}

var levelRank = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}

// ParseEntry decodes a JSON log line. It reports false for lines that are not
// JSON objects.
func ParseEntry(line string) (Entry, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(line)), &raw); err != nil {
		return Entry{}, false
	}
	entry := Entry{Fields: make(map[string]string)}
	for key, value := range raw {
		text := valueText(value)
		switch key {
		case "ts":
			if ts, err := time.Parse(time.RFC3339, text); err == nil {
				entry.Time = ts
			}
		case "level":
			entry.Level = strings.ToLower(text)
		case "msg":
			entry.Message = text
		case "component":
			entry.Component = text
		case "stage":
			entry.Stage = text
		case "run_id":
			entry.RunID = text
		default:
			entry.Fields[key] = text
		}
	}
	return entry, true
}

func valueText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case float64, bool:
		return fmt.Sprint(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

// Filter narrows entries. Zero values match everything.
type Filter struct {
	// RunID matches entries whose run id starts with this prefix.
	RunID    string
	MinLevel string
}

// Match reports whether entry passes the filter.
func (f Filter) Match(entry Entry) bool {
	if prefix := strings.TrimSpace(f.RunID); prefix != "" && !strings.HasPrefix(entry.RunID, prefix) {
		return false
	}
	if floor, ok := levelRank[strings.ToLower(strings.TrimSpace(f.MinLevel))]; ok {
		if rank, known := levelRank[entry.Level]; known && rank < floor {
			return false
		}
	}
	return true
}

// Apply parses lines and returns the entries that pass the filter, skipping
// lines that are not JSON.
func (f Filter) Apply(lines []string) []Entry {
	out := make([]Entry, 0, len(lines))
	for _, line := range lines {
		entry, ok := ParseEntry(line)
		if ok && f.Match(entry) {
			out = append(out, entry)
		}
	}
	return out
}

// Format renders entry as a single console line.
func Format(entry Entry) string {
	var b strings.Builder
	if !entry.Time.IsZero() {
		b.WriteString(entry.Time.Local().Format(time.DateTime))
		b.WriteByte(' ')
	}
	b.WriteString(strings.ToUpper(entry.Level))
	if entry.Component != "" {
		fmt.Fprintf(&b, " [%s]", entry.Component)
	}
	if entry.Stage != "" {
		fmt.Fprintf(&b, " %s:", entry.Stage)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Fields))
	for key := range entry.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, " %s=%s", key, entry.Fields[key])
	}
	return b.String()
}
