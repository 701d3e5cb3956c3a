package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWritesNumberedFiles(t *testing.T) {
	dir := t.TempDir()

	first := NewLogger()
	if err := first.Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	first.Logf("built %d slides", 17)
	path := first.Path()
	first.Close()

	if !strings.HasSuffix(path, "_1.log") || !strings.HasPrefix(filepath.Base(path), "respring_") {
		t.Errorf("unexpected log file name %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "built 17 slides") {
		t.Errorf("log missing message:\n%s", data)
	}

	second := NewLogger()
	if err := second.Init(dir); err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	if !strings.HasSuffix(second.Path(), "_2.log") {
		t.Errorf("second run should get _2, got %s", second.Path())
	}
}

func TestLoggerConsoleMirror(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.SetConsole(&buf)
	l.Tagged("export")("wrote deck.pptx")

	if !strings.Contains(buf.String(), "[export] wrote deck.pptx") {
		t.Errorf("console got %q", buf.String())
	}

	l.SetConsole(nil)
	l.Log("silent")
	if strings.Contains(buf.String(), "silent") {
		t.Error("nothing should be written once the console is cleared")
	}
	if l.Path() != "" {
		t.Error("no file logging without Init")
	}
}
