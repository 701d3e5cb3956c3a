package dbpool

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.db")
	var logged []string
	m := New(func(s string) { logged = append(logged, s) })

	db, err := m.OpenWritable(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenWritable failed: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE t (v INTEGER)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if !strings.EqualFold(mode, "wal") {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
	if len(logged) != 0 {
		t.Errorf("unexpected retries logged: %v", logged)
	}
}

func TestOpenGivesUpOnCancelledContext(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "dir")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(nil)
	_, err := m.Open(ctx, OpenOptions{Path: filepath.Join(dir, "x.db"), MaxRetries: 3, RetryBaseMs: 1})
	if err == nil {
		t.Fatal("expected error for unreachable directory")
	}
	t.Logf("open error: %v", err)
}

func TestRetryParamsDefaults(t *testing.T) {
	n, ms := retryParams(OpenOptions{})
	if n != 8 || ms != 400 {
		t.Errorf("defaults = %d, %d", n, ms)
	}
	n, ms = retryParams(OpenOptions{MaxRetries: 2, RetryBaseMs: 10})
	if n != 2 || ms != 10 {
		t.Errorf("overrides = %d, %d", n, ms)
	}
}

func TestDSN(t *testing.T) {
	if got := DSN("a.db", ModeReadOnly); !strings.HasSuffix(got, "&mode=ro") || !strings.HasPrefix(got, "file:a.db?") {
		t.Errorf("read-only DSN = %q", got)
	}
	if got := DSN("a.db", ModeReadWrite); strings.Contains(got, "mode=ro") {
		t.Errorf("writable DSN = %q", got)
	}
}
