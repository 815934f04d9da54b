package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"reelplan/internal/callsheet"
	"reelplan/internal/fileutil"
	"reelplan/internal/props"
	"reelplan/internal/schedule"
	"reelplan/internal/screenplay"
	"reelplan/internal/services"
)

// Format selects the on-disk encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Artifact base names, without extension.
const (
	ParsedScript     = "parsed_script"
	ShootingSchedule = "shooting_schedule"
	CallSheets       = "call_sheets"
	SceneProps       = "scene_props"
)

// LockFileName is created in the output directory while a write is running.
const LockFileName = ".reelplan.lock"

// ErrLocked reports that another process holds the output directory lock.
var ErrLocked = errors.New("output directory is locked by another process")

// ParseFormat maps "json", "yaml", or "yml" onto a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (expected json or yaml)", value)
	}
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// Bundle is the set of artifacts produced by one run.
type Bundle struct {
	Scenes     []screenplay.Scene
	Schedule   []schedule.Entry
	CallSheets []callsheet.Sheet
	// Props is optional; scene_props is skipped when nil.
	Props []props.SceneProps
}

// Writer writes bundles into a directory.
type Writer struct {
	dir    string
	format Format
}

// NewWriter returns a writer targeting dir.
func NewWriter(dir string, format Format) *Writer {
	if format == "" {
		format = FormatJSON
	}
	return &Writer{dir: dir, format: format}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write encodes every artifact in bundle and returns the written paths in
// write order. It fails with ErrLocked instead of waiting when the directory
// is already locked.
func (w *Writer) Write(ctx context.Context, bundle Bundle) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrTransient, "export", "create output dir", w.dir, err)
	}

	lock := flock.New(filepath.Join(w.dir, LockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "export", "acquire lock", w.dir, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrValidation, "export", "acquire lock", w.dir, ErrLocked)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	artifacts := []struct {
		name  string
		value any
	}{
		{ParsedScript, nonNil(bundle.Scenes)},
		{ShootingSchedule, nonNil(bundle.Schedule)},
		{CallSheets, nonNil(bundle.CallSheets)},
	}
	if bundle.Props != nil {
		artifacts = append(artifacts, struct {
			name  string
			value any
		}{SceneProps, bundle.Props})
	}

	written := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		data, err := Encode(w.format, artifact.value)
		if err != nil {
			return written, fmt.Errorf("encode %s: %w", artifact.name, err)
		}
		path := filepath.Join(w.dir, artifact.name+w.format.Extension())
		if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
			return written, services.Wrap(services.ErrTransient, "export", "write", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// Encode serializes v as indented JSON or YAML with a trailing newline.
func Encode(format Format, v any) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// nonNil keeps empty artifacts encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
