package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"subsync/internal/config"
)

// timeLayout keeps stored timestamps fixed-width so the TEXT columns sort
// lexicographically in time order (RFC3339Nano trims trailing zeros and
// would not).
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(cfg *config.Config) (*Store, error) {
	dbPath := cfg.Paths.HistoryDB
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// StartRun inserts a run row with the given identifier.
func (s *Store) StartRun(ctx context.Context, id, folder string, offsetMS int64) (*Run, error) {
	started := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, folder, offset_ms, started_at) VALUES (?, ?, ?, ?)`,
		id, folder, offsetMS, started.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return &Run{ID: id, Folder: folder, OffsetMS: offsetMS, StartedAt: started}, nil
}

// FinishRun stamps the completion time and final counters on a run.
func (s *Store) FinishRun(ctx context.Context, run *Run) error {
	run.FinishedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, processed = ?, matched = ?, fallback = ?, failed = ? WHERE id = ?`,
		run.FinishedAt.Format(timeLayout),
		run.Processed, run.Matched, run.Fallback, run.Failed,
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// RecordFile appends one subtitle outcome to a run.
func (s *Store) RecordFile(ctx context.Context, rec FileRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO run_files (run_id, subtitle, output, video, status, detail)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Subtitle,
		nullableString(rec.Output), nullableString(rec.Video),
		string(rec.Status), nullableString(rec.Detail),
	)
	if err != nil {
		return fmt.Errorf("record file: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, folder, offset_ms, started_at, finished_at, processed, matched, fallback, failed
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FindRuns returns runs whose ID starts with prefix, newest first.
func (s *Store) FindRuns(ctx context.Context, prefix string) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, folder, offset_ms, started_at, finished_at, processed, matched, fallback, failed
		 FROM runs WHERE id LIKE ? ORDER BY started_at DESC`, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("find runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FilesForRun returns the per-subtitle records of one run in insertion order.
func (s *Store) FilesForRun(ctx context.Context, runID string) ([]FileRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, subtitle, output, video, status, detail
		 FROM run_files WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run files: %w", err)
	}
	defer rows.Close()

	var records []FileRecord
	for rows.Next() {
		var (
			rec            FileRecord
			output, video  sql.NullString
			status, detail sql.NullString
		)
		if err := rows.Scan(&rec.RunID, &rec.Subtitle, &output, &video, &status, &detail); err != nil {
			return nil, fmt.Errorf("scan run file: %w", err)
		}
		rec.Output = output.String
		rec.Video = video.String
		rec.Status = FileStatus(status.String)
		rec.Detail = detail.String
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanRun(rows *sql.Rows) (Run, error) {
	var (
		run      Run
		started  string
		finished sql.NullString
	)
	if err := rows.Scan(&run.ID, &run.Folder, &run.OffsetMS, &started, &finished,
		&run.Processed, &run.Matched, &run.Fallback, &run.Failed); err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	if ts, err := time.Parse(time.RFC3339Nano, started); err == nil {
		run.StartedAt = ts
	}
	if finished.Valid {
		if ts, err := time.Parse(time.RFC3339Nano, finished.String); err == nil {
			run.FinishedAt = ts
		}
	}
	return run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
