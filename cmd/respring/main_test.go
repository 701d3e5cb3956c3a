package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"respring/config"
	"respring/content"
	"respring/deck"
	"respring/export"
	"respring/i18n"
	"respring/ledger"
	"respring/logger"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	t.Logf("respring %s -> %d\nstdout: %s\nstderr: %s", strings.Join(args, " "), code, stdout.String(), stderr.String())
	return code, stdout.String(), stderr.String()
}

func TestBuildVerifyHistory(t *testing.T) {
	defer i18n.SetLanguage(i18n.Korean)
	dir := t.TempDir()
	out := filepath.Join(dir, "deck.pptx")
	db := filepath.Join(dir, "ledger.db")

	code, stdout, _ := runCLI(t, "-o", out, "-ledger", db, "-overflow", "ignore")
	if code != exitOK {
		t.Fatalf("build exit %d", code)
	}
	if !strings.Contains(stdout, "✓ PPT 완성!") {
		t.Errorf("missing completion line: %q", stdout)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("deck not written: %v", err)
	}

	code, stdout, _ = runCLI(t, "verify", "-o", out, "-lang", "English", "-ledger", db)
	if code != exitOK {
		t.Fatalf("verify exit %d", code)
	}
	if !strings.Contains(stdout, "Verified") {
		t.Errorf("unexpected verify output %q", stdout)
	}

	runCLI(t, "build", "-o", out, "-ledger", db, "-backend", "gooxml", "-overflow", "ignore")

	l, err := ledger.Open(context.Background(), db, nil)
	if err != nil {
		t.Fatal(err)
	}
	builds, err := l.List(context.Background(), 0)
	l.Close()
	if err != nil || len(builds) != 2 {
		t.Fatalf("ledger has %d builds, %v", len(builds), err)
	}
	if builds[0].Fingerprint != builds[1].Fingerprint {
		t.Error("same content produced different fingerprints")
	}
	if builds[0].Backend != "gooxml" || builds[1].Backend != "goppt" {
		t.Errorf("backends recorded newest first: %s, %s", builds[0].Backend, builds[1].Backend)
	}

	code, stdout, _ = runCLI(t, "history", "-ledger", db, "-n", "1")
	if code != exitOK {
		t.Fatalf("history exit %d", code)
	}
	if !strings.Contains(stdout, builds[0].RunID) || strings.Contains(stdout, builds[1].RunID) {
		t.Errorf("history -n 1 listed the wrong builds: %q", stdout)
	}
}

func TestVerifyMismatchExitCode(t *testing.T) {
	dir := t.TempDir()
	if code, _, _ := runCLI(t, "verify", "-o", filepath.Join(dir, "absent.pptx")); code != exitFailure {
		t.Errorf("missing file exit %d, want %d", code, exitFailure)
	}

	doc, err := deck.NewBuilder(content.Title, content.Author).Build(content.ReSpring()[:3])
	if err != nil {
		t.Fatal(err)
	}
	short := filepath.Join(dir, "short.pptx")
	if _, err := export.NewPPTExportService(export.BackendGoPPT, nil).Persist(context.Background(), doc, short); err != nil {
		t.Fatal(err)
	}
	if code, _, stderr := runCLI(t, "verify", "-o", short); code != exitMismatch {
		t.Errorf("short deck exit %d, want %d", code, exitMismatch)
	} else if !strings.Contains(stderr, "slide count") {
		t.Errorf("mismatch not explained: %q", stderr)
	}
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{"-backend", "keynote"},
		{"-overflow", "truncate"},
		{"publish"},
		{"build", "extra"},
		{"-config", filepath.Join(t.TempDir(), "missing.json")},
		{"history"},
	}
	for _, args := range cases {
		if code, _, _ := runCLI(t, args...); code != exitUsage {
			t.Errorf("respring %v exit %d, want %d", args, code, exitUsage)
		}
	}
}

func TestConfigFileAndFlagsMerge(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "respring.json")
	body := `{"output":"` + filepath.ToSlash(filepath.Join(dir, "from-config.pptx")) + `","backend":"gooxml","excelOutput":"` + filepath.ToSlash(filepath.Join(dir, "tables.xlsx")) + `"}`
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	flagOut := filepath.Join(dir, "from-flag.pptx")
	if code, _, _ := runCLI(t, "-config", cfgPath, "-o", flagOut, "-overflow", "ignore", "-log-dir", filepath.Join(dir, "logs")); code != exitOK {
		t.Fatalf("exit %d", code)
	}
	for _, p := range []string{flagOut, filepath.Join(dir, "tables.xlsx")} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s not written: %v", p, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "from-config.pptx")); !os.IsNotExist(err) {
		t.Error("flag did not override the configured output")
	}
	logs, _ := filepath.Glob(filepath.Join(dir, "logs", "respring_*.log"))
	if len(logs) != 1 {
		t.Errorf("want one log file, got %v", logs)
	}
}

func TestBuildRejectsUnknownBackend(t *testing.T) {
	cfg := config.Defaults()
	cfg.Output = filepath.Join(t.TempDir(), "deck.pptx")
	cfg.Backend = "keynote"
	var stdout, stderr bytes.Buffer
	a := &app{cfg: cfg, log: logger.NewLogger(), stdout: &stdout, stderr: &stderr}

	if code := a.build(context.Background()); code != exitUsage {
		t.Fatalf("build exit %d, want %d", code, exitUsage)
	}
	if !strings.Contains(stderr.String(), "keynote") {
		t.Errorf("backend not named in %q", stderr.String())
	}
	if _, err := os.Stat(cfg.Output); !os.IsNotExist(err) {
		t.Error("nothing should be written for an unknown backend")
	}
}

func TestHandoutWithoutFontWarns(t *testing.T) {
	defer i18n.SetLanguage(i18n.Korean)
	dir := t.TempDir()
	code, _, stderr := runCLI(t, "-o", filepath.Join(dir, "deck.pptx"), "-handout", filepath.Join(dir, "deck.pdf"),
		"-overflow", "ignore", "-lang", "English", "-v")
	if code != exitOK {
		t.Fatalf("build exit %d", code)
	}
	if !strings.Contains(stderr, "no handout font set") {
		t.Errorf("operator was not warned: %q", stderr)
	}
	if !strings.Contains(stderr, "no handout font configured") {
		t.Errorf("warning missing from the log: %q", stderr)
	}
	if !strings.Contains(stderr, "language English") {
		t.Errorf("run log does not name the message language: %q", stderr)
	}
}
