package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"cplcheck/internal/logging"
	"cplcheck/internal/report"
)

const (
	databaseName = "history.db"
	lockName     = "history.lock"

	lockRetryDelay = 25 * time.Millisecond
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("ledger is closed")

// Entry is one recorded validation run.
type Entry struct {
	RunID         string    `json:"run_id"`
	RecordedAt    time.Time `json:"recorded_at"`
	Path          string    `json:"path"`
	Valid         bool      `json:"valid"`
	CompositionID string    `json:"composition_id,omitempty"`
	EditRate      string    `json:"edit_rate,omitempty"`
	TrackCount    int       `json:"track_count"`
	ErrorCode     string    `json:"error_code,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// Store persists validation runs in SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open creates dir when needed, opens the history database inside it and
// applies pending migrations.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("ledger directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create ledger directory: %w", err)
	}

	dbPath := filepath.Join(dir, databaseName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: flock.New(filepath.Join(dir, lockName))}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Record stores rep under the run id carried by ctx (see logging.WithRunID),
// or a fresh one. The write happens while holding the ledger lock; Record
// waits for the lock until ctx is done.
func (s *Store) Record(ctx context.Context, rep report.Report) (Entry, error) {
	if s == nil || s.db == nil {
		return Entry{}, ErrClosed
	}

	runID, ok := logging.RunIDFromContext(ctx)
	if !ok {
		runID = uuid.NewString()
	}
	entry := Entry{
		RunID:         runID,
		RecordedAt:    time.Now().UTC(),
		Path:          rep.Path,
		Valid:         rep.Valid,
		CompositionID: rep.CompositionID,
		EditRate:      rep.EditRate,
		TrackCount:    len(rep.Tracks),
		ErrorCode:     rep.ErrorCode,
		Error:         rep.Error,
	}

	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return Entry{}, fmt.Errorf("acquire ledger lock: %w", err)
	}
	if !locked {
		return Entry{}, fmt.Errorf("acquire ledger lock: %s is held by another process", s.lock.Path())
	}
	defer func() {
		_ = s.lock.Unlock()
	}()

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            run_id, recorded_at, path, valid, composition_id, edit_rate,
            track_count, error_code, error_message
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		entry.RecordedAt.Format(time.RFC3339Nano),
		entry.Path,
		boolToInt(entry.Valid),
		nullableString(entry.CompositionID),
		nullableString(entry.EditRate),
		entry.TrackCount,
		nullableString(entry.ErrorCode),
		nullableString(entry.Error),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert run: %w", err)
	}
	return entry, nil
}

// List returns up to limit runs, newest first. A limit of zero or less
// returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	query := `SELECT ` + entryColumns + ` FROM runs ORDER BY id DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Count returns the number of recorded runs.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, ErrClosed
	}
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM runs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return count, nil
}

const entryColumns = "run_id, recorded_at, path, valid, composition_id, edit_rate, track_count, error_code, error_message"

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		runID         string
		recordedRaw   string
		path          string
		valid         int
		compositionID sql.NullString
		editRate      sql.NullString
		trackCount    int
		errorCode     sql.NullString
		errorMessage  sql.NullString
	)
	if err := scanner.Scan(
		&runID,
		&recordedRaw,
		&path,
		&valid,
		&compositionID,
		&editRate,
		&trackCount,
		&errorCode,
		&errorMessage,
	); err != nil {
		return Entry{}, fmt.Errorf("scan run: %w", err)
	}

	entry := Entry{
		RunID:         runID,
		Path:          path,
		Valid:         valid != 0,
		CompositionID: compositionID.String,
		EditRate:      editRate.String,
		TrackCount:    trackCount,
		ErrorCode:     errorCode.String,
		Error:         errorMessage.String,
	}
	if recorded, err := time.Parse(time.RFC3339Nano, recordedRaw); err == nil {
		entry.RecordedAt = recorded
	}
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
