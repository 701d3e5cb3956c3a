package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHandoutExport(t *testing.T) {
	t.Log("generating handout without a custom font")
	data, err := NewHandoutService("", nil).Export(buildReSpring(t))
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %q", data[:min(8, len(data))])
	}
	t.Logf("handout is %d bytes", len(data))
}

func TestHandoutSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handout.pdf")
	if err := NewHandoutService("", nil).Save(context.Background(), buildReSpring(t), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Fatalf("handout missing or empty: %v", err)
	}
}

func TestHandoutMissingFont(t *testing.T) {
	svc := NewHandoutService(filepath.Join(t.TempDir(), "nofont.ttf"), nil)
	if _, err := svc.Export(buildReSpring(t)); err == nil {
		t.Fatal("expected error for a missing font file")
	}
}

func TestHandoutWarnsWithoutHangulFont(t *testing.T) {
	var logged []string
	svc := NewHandoutService("", func(s string) { logged = append(logged, s) })
	if svc.HasHangulFont() {
		t.Fatal("no font path should mean no Hangul font")
	}
	if _, err := svc.Export(buildReSpring(t)); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(logged) != 1 || !strings.Contains(logged[0], "no handout font") {
		t.Fatalf("expected one font warning, got %q", logged)
	}
	t.Logf("warning: %s", logged[0])

	logged = nil
	withFont := NewHandoutService(filepath.Join(t.TempDir(), "nofont.ttf"), func(s string) { logged = append(logged, s) })
	if !withFont.HasHangulFont() {
		t.Fatal("a font path should count as a Hangul font")
	}
	_, _ = withFont.Export(buildReSpring(t))
	if len(logged) != 0 {
		t.Errorf("no warning expected when a font is configured, got %q", logged)
	}
}
