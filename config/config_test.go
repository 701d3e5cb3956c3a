package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadJSONRejectsUnknownFields(t *testing.T) {
	_, err := LoadJSON("", []byte(`{"output":"a.pptx","theme":"dark"}`))
	if err == nil || !strings.Contains(err.Error(), "theme") {
		t.Fatalf("want unknown field error, got %v", err)
	}
}

func TestLoadJSONFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "respring.json")
	body := `{"output":"plan.pptx","backend":"gooxml","excelOutput":"tables.xlsx","overflowPolicy":"fail"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadJSON(path, nil)
	if err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	merged := Merge(Defaults(), cfg)
	if merged.Output != "plan.pptx" || merged.Backend != "gooxml" || merged.ExcelOutput != "tables.xlsx" {
		t.Errorf("unexpected merge result %+v", merged)
	}
	if merged.Title != "Re:Spring" || merged.Language != "한국어" {
		t.Errorf("defaults lost: %+v", merged)
	}
	if err := merged.Validate(); err != nil {
		t.Errorf("merged config invalid: %v", err)
	}
}

func TestLoadJSONNoSource(t *testing.T) {
	if _, err := LoadJSON("", nil); err == nil {
		t.Fatal("expected error without a source")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Defaults()
	cfg.Backend = "keynote"
	cfg.OverflowPolicy = "truncate"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"backend", "overflowPolicy"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

// Merging an empty overlay changes nothing; merging a config over itself
// is the identity.
func TestPropertyMergeIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := Config{
			Output:         rapid.StringMatching(`[a-z]{1,8}\.pptx`).Draw(t, "output"),
			Backend:        rapid.SampledFrom([]string{"goppt", "gooxml"}).Draw(t, "backend"),
			Language:       rapid.SampledFrom([]string{"한국어", "English"}).Draw(t, "language"),
			OverflowPolicy: rapid.SampledFrom([]string{OverflowWarn, OverflowFail, OverflowIgnore}).Draw(t, "policy"),
			Title:          rapid.StringMatching(`[A-Za-z:]{1,10}`).Draw(t, "title"),
		}
		if got := Merge(base, Config{}); got.Output != base.Output || got.Backend != base.Backend ||
			got.OverflowPolicy != base.OverflowPolicy || got.Language != base.Language {
			t.Fatalf("empty overlay changed %+v into %+v", base, got)
		}
		if got := Merge(Defaults(), base); got.Output != base.Output || got.Title != base.Title {
			t.Fatalf("overlay lost: %+v", got)
		}
		if err := Merge(Defaults(), base).Validate(); err != nil {
			t.Fatalf("valid overlay became invalid: %v", err)
		}
	})
}
