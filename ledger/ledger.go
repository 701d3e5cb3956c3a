// Package ledger keeps the history of deck builds in a SQLite file, so a
// run can tell whether its content differs from the previous one.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"respring/apperr"
	"respring/dbpool"
)

// timeLayout is fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNoBuilds is returned by Last on an empty ledger.
var ErrNoBuilds = errors.New("no builds recorded")

// Build is one recorded run.
type Build struct {
	RunID       string
	Fingerprint string
	Output      string
	Backend     string
	Slides      int
	Bytes       int64
	Verified    bool
	CreatedAt   time.Time
}

// Ledger is an open build history.
type Ledger struct {
	db   *sql.DB
	logf func(string)
	now  func() time.Time
}

// Open opens or creates the ledger at path and applies pending
// migrations.
func Open(ctx context.Context, path string, logf func(string)) (*Ledger, error) {
	if logf == nil {
		logf = func(string) {}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperr.WrapError("Ledger", "Open", fmt.Errorf("failed to create ledger directory: %w", err))
		}
	}
	db, err := dbpool.New(dbpool.Logger(logf)).OpenWritable(ctx, path)
	if err != nil {
		return nil, apperr.WrapError("Ledger", "Open", err)
	}
	if err := createMigrationsTable(ctx, db); err != nil {
		db.Close()
		return nil, apperr.WrapError("Ledger", "Open", fmt.Errorf("failed to create migrations table: %w", err))
	}
	if err := runMigrations(ctx, db, logf); err != nil {
		db.Close()
		return nil, apperr.WrapError("Ledger", "Open", fmt.Errorf("failed to run migrations: %w", err))
	}
	return &Ledger{db: db, logf: logf, now: time.Now}, nil
}

// Close releases the database file.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record stores b. A zero CreatedAt is stamped with the current time.
func (l *Ledger) Record(ctx context.Context, b Build) error {
	if b.RunID == "" || b.Fingerprint == "" {
		return apperr.WrapError("Ledger", "Record", errors.New("run ID and fingerprint are required"))
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = l.now()
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO builds (run_id, fingerprint, output, backend, slides, bytes, verified, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.RunID, b.Fingerprint, b.Output, b.Backend, b.Slides, b.Bytes, b.Verified, b.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return apperr.WrapError("Ledger", "Record", err)
	}
	l.logf(fmt.Sprintf("[ledger] recorded run %s (%s)", b.RunID, short(b.Fingerprint)))
	return nil
}

// MarkVerified flags a recorded run as read back successfully.
func (l *Ledger) MarkVerified(ctx context.Context, runID string) error {
	res, err := l.db.ExecContext(ctx, "UPDATE builds SET verified = TRUE WHERE run_id = ?", runID)
	if err != nil {
		return apperr.WrapError("Ledger", "MarkVerified", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.WrapError("Ledger", "MarkVerified", fmt.Errorf("run %s not found", runID))
	}
	return nil
}

// Last returns the most recent build, or ErrNoBuilds.
func (l *Ledger) Last(ctx context.Context) (Build, error) {
	builds, err := l.List(ctx, 1)
	if err != nil {
		return Build{}, err
	}
	if len(builds) == 0 {
		return Build{}, ErrNoBuilds
	}
	return builds[0], nil
}

// List returns up to limit builds, newest first. A limit of zero or less
// returns all of them.
func (l *Ledger) List(ctx context.Context, limit int) ([]Build, error) {
	query := `SELECT run_id, fingerprint, output, backend, slides, bytes, verified, created_at
		FROM builds ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.WrapError("Ledger", "List", err)
	}
	defer rows.Close()

	var out []Build
	for rows.Next() {
		var b Build
		var created string
		if err := rows.Scan(&b.RunID, &b.Fingerprint, &b.Output, &b.Backend, &b.Slides, &b.Bytes, &b.Verified, &created); err != nil {
			return nil, apperr.WrapError("Ledger", "List", err)
		}
		if b.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, apperr.WrapError("Ledger", "List", fmt.Errorf("run %s: bad timestamp %q: %w", b.RunID, created, err))
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.WrapError("Ledger", "List", err)
	}
	return out, nil
}

func short(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
