// Package dbpool opens SQLite databases with retry and single-connection
// pool settings, so file locks are released as soon as a handle closes.
//
// All code that needs a *sql.DB should go through Manager instead of
// calling sql.Open directly.
package dbpool

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// AccessMode controls whether the connection is read-only or read-write.
type AccessMode int

const (
	ModeReadWrite AccessMode = iota
	ModeReadOnly
)

// OpenOptions configures how a database connection is opened.
type OpenOptions struct {
	// Path is the database file.
	Path string
	// Mode controls read-only vs read-write access.
	Mode AccessMode
	// MaxRetries overrides the default retry count (0 = use default).
	MaxRetries int
	// RetryBaseMs overrides the base retry interval in milliseconds (0 = use default).
	RetryBaseMs int
}

// Logger is a simple logging function signature.
type Logger func(string)

// Manager is the central connection opener.
type Manager struct {
	logger Logger
}

// New creates a Manager. A nil logger is silent.
func New(logger Logger) *Manager {
	if logger == nil {
		logger = func(string) {}
	}
	return &Manager{logger: logger}
}

// Open opens path with retry for SQLITE_BUSY and lock contention. It
// gives up early when ctx is done.
func (m *Manager) Open(ctx context.Context, opts OpenOptions) (*sql.DB, error) {
	maxRetries, baseMs := retryParams(opts)
	dsn := DSN(opts.Path, opts.Mode)

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("dbpool: open %q: %w", opts.Path, ctx.Err())
			case <-time.After(time.Duration(baseMs*i) * time.Millisecond):
			}
		}

		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			lastErr = err
			m.logger(fmt.Sprintf("[dbpool] SQLite open attempt %d/%d failed: %v", i+1, maxRetries, err))
			continue
		}

		configurePool(db)

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			lastErr = err
			m.logger(fmt.Sprintf("[dbpool] SQLite ping attempt %d/%d failed: %v", i+1, maxRetries, err))
			continue
		}

		return db, nil
	}

	return nil, fmt.Errorf("dbpool: failed to open SQLite %q after %d retries: %w", opts.Path, maxRetries, lastErr)
}

// OpenWritable is a convenience wrapper for read-write access.
func (m *Manager) OpenWritable(ctx context.Context, path string) (*sql.DB, error) {
	return m.Open(ctx, OpenOptions{Path: path, Mode: ModeReadWrite})
}

// OpenReadOnly is a convenience wrapper for read-only access.
func (m *Manager) OpenReadOnly(ctx context.Context, path string) (*sql.DB, error) {
	return m.Open(ctx, OpenOptions{Path: path, Mode: ModeReadOnly})
}

// DSN builds the modernc.org/sqlite connection string: WAL journal and a
// five second busy timeout, read-only when asked.
func DSN(path string, mode AccessMode) string {
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	if mode == ModeReadOnly {
		dsn += "&mode=ro"
	}
	return dsn
}

// configurePool keeps one connection and no idle ones so the file is
// unlocked on Close.
func configurePool(db *sql.DB) {
	db.SetMaxIdleConns(0)
	db.SetMaxOpenConns(1)
}

// retryParams returns (maxRetries, baseMs) from opts or defaults.
func retryParams(opts OpenOptions) (int, int) {
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 8
	}
	baseMs := opts.RetryBaseMs
	if baseMs <= 0 {
		baseMs = 400
	}
	return maxRetries, baseMs
}
