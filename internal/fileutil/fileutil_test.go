package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "nested", "out.json")

	if err := WriteFileAtomic(dst, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(dst, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Fatalf("content mismatch: got %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(filepath.Dir(dst))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicMode(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteFileAtomic(dst, []byte("data"), 0o600); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %o, want 600", info.Mode().Perm())
	}
}

func TestReadSourceFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(src, []byte("INT. ROOM - DAY"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadSource(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "INT. ROOM - DAY" {
		t.Fatalf("got %q", got)
	}
}

func TestReadSourceStdin(t *testing.T) {
	got, err := ReadSource(StdinPath, strings.NewReader("from stdin"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "from stdin" {
		t.Fatalf("got %q", got)
	}
}

func TestReadSource_MissingFile(t *testing.T) {
	if _, err := ReadSource(filepath.Join(t.TempDir(), "missing.txt"), nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSHA256Hex(t *testing.T) {
	const want = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := SHA256Hex(nil); got != want {
		t.Fatalf("SHA256Hex(nil) = %s, want %s", got, want)
	}
}
