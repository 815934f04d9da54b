package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleScript is a short screenplay with two locations, a silent character,
// and a repeated scene root, enough to exercise every pipeline stage.
const SampleScript = `FADE IN:

1 INT. KITCHEN - DAY

MARY pours coffee next to the old radio.

MARY
Morning.

JOHN
Is there any left?

2 EXT. GARDEN - NIGHT

John waits by the gate with a flashlight. Mary watches.

JOHN
Come on.

1A INT. KITCHEN - DAY

MARY
Who left the knife out?

CUT TO:
`

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteScript writes lines joined by newlines into a temp file and returns
// its path.
func WriteScript(t testing.TB, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "script.txt")
	WriteFile(t, path, strings.Join(lines, "\n")+"\n")
	return path
}
