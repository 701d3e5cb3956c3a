package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomicReplaces(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.bin")
	ctx := context.Background()

	if err := WriteFileAtomic(ctx, dest, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(ctx, dest, []byte("second")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dest)
	if err != nil || string(got) != "second" {
		t.Fatalf("content = %q, %v", got, err)
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmp-") {
			t.Errorf("temporary file left behind: %s", e.Name())
		}
	}
}

func TestWriteFileAtomicCancelled(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.bin")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := WriteFileAtomic(ctx, dest, []byte("x")); err == nil {
		t.Fatal("expected context error")
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Errorf("destination created despite cancellation: %v", err)
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "no", "such", "dir", "out.bin")
	if err := WriteFileAtomic(context.Background(), dest, []byte("x")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
