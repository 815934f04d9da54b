package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"reelplan/internal/services"
)

// ErrAmbiguousID is returned by Resolve when a prefix matches several runs.
var ErrAmbiguousID = errors.New("ambiguous run id")

const summaryColumns = "id, created_at, source, source_sha256, scene_count, day_count, silent_added"

type scanner interface {
	Scan(dest ...any) error
}

// Save inserts run. A blank ID is replaced with a new UUID and a zero
// CreatedAt with the current time; both are written back to run.
func (s *Store) Save(ctx context.Context, run *Run) error {
	if run == nil {
		return errors.New("save run: nil run")
	}
	if strings.TrimSpace(run.ID) == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(run.Artifacts)
	if err != nil {
		return fmt.Errorf("marshal artifacts: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, created_at, source, source_sha256,
            scene_count, day_count, silent_added, payload_json
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.Source,
		run.SourceSHA256,
		run.SceneCount,
		run.DayCount,
		run.SilentAdded,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Get fetches a run by its full ID. It returns nil, nil when none exists.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+summaryColumns+", payload_json FROM runs WHERE id = ?", id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// Latest returns the most recently created run, or nil, nil when the store
// is empty.
func (s *Store) Latest(ctx context.Context) (*Run, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+summaryColumns+", payload_json FROM runs ORDER BY created_at DESC, id DESC LIMIT 1")
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}
	return run, nil
}

// List returns run summaries, newest first. A limit of zero or less returns
// every run.
func (s *Store) List(ctx context.Context, limit int) ([]Summary, error) {
	query := "SELECT " + summaryColumns + " FROM runs ORDER BY created_at DESC, id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// Resolve expands an ID prefix to a full run ID. An empty prefix or the word
// "latest" selects the newest run.
func (s *Store) Resolve(ctx context.Context, prefix string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" || prefix == "latest" {
		run, err := s.Latest(ctx)
		if err != nil {
			return "", err
		}
		if run == nil {
			return "", services.Wrap(services.ErrNotFound, "store", "resolve", "No runs have been saved", nil)
		}
		return run.ID, nil
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id FROM runs WHERE id LIKE ? ESCAPE '\\' ORDER BY id LIMIT 2", escapeLike(prefix)+"%")
	if err != nil {
		return "", fmt.Errorf("resolve run: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan run id: %w", err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("resolve run: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", services.Wrap(services.ErrNotFound, "store", "resolve", fmt.Sprintf("No run matches %q", prefix), nil)
	case 1:
		return matches[0], nil
	default:
		return "", services.Wrap(services.ErrValidation, "store", "resolve", fmt.Sprintf("Run id %q matches more than one run", prefix), ErrAmbiguousID)
	}
}

// Delete removes a run. It reports whether a row was deleted.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete run %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

func scanSummary(row scanner) (Summary, error) {
	var (
		summary   Summary
		createdAt string
	)
	if err := row.Scan(
		&summary.ID,
		&createdAt,
		&summary.Source,
		&summary.SourceSHA256,
		&summary.SceneCount,
		&summary.DayCount,
		&summary.SilentAdded,
	); err != nil {
		return Summary{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Summary{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	summary.CreatedAt = ts
	return summary, nil
}

func scanRun(row scanner) (*Run, error) {
	var (
		run       Run
		createdAt string
		payload   string
	)
	if err := row.Scan(
		&run.ID,
		&createdAt,
		&run.Source,
		&run.SourceSHA256,
		&run.SceneCount,
		&run.DayCount,
		&run.SilentAdded,
		&payload,
	); err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	run.CreatedAt = ts
	if err := json.Unmarshal([]byte(payload), &run.Artifacts); err != nil {
		return nil, fmt.Errorf("decode artifacts: %w", err)
	}
	return &run, nil
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
