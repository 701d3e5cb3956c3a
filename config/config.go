package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Overflow policies.
const (
	OverflowWarn   = "warn"
	OverflowFail   = "fail"
	OverflowIgnore = "ignore"
)

// Config structure
type Config struct {
	Output         string `json:"output"`                  // .pptx destination
	Backend        string `json:"backend"`                 // "goppt" or "gooxml"
	Language       string `json:"language"`                // operator messages: "한국어" or "English"
	LogDir         string `json:"logDir,omitempty"`        // empty: no log file
	ExcelOutput    string `json:"excelOutput,omitempty"`   // tables workbook, empty to skip
	HandoutOutput  string `json:"handoutOutput,omitempty"` // PDF outline, empty to skip
	HandoutFont    string `json:"handoutFont,omitempty"`   // TTF with Hangul glyphs
	LedgerPath     string `json:"ledgerPath,omitempty"`    // SQLite build history, empty to skip
	OverflowPolicy string `json:"overflowPolicy"`          // "warn", "fail" or "ignore"
	Title          string `json:"title"`
	Author         string `json:"author"`
}

// Defaults returns the configuration used when nothing else is given.
func Defaults() Config {
	return Config{
		Output:         "ReSpring_Business_Plan.pptx",
		Backend:        "goppt",
		Language:       "한국어",
		OverflowPolicy: OverflowWarn,
		Title:          "Re:Spring",
		Author:         "민소은",
	}
}

// LoadJSON parses a Config from a file path or raw JSON. Unknown fields
// are rejected.
func LoadJSON(path string, raw []byte) (Config, error) {
	var cfg Config
	var r io.Reader
	switch {
	case len(raw) > 0:
		r = bytes.NewReader(raw)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		r = f
	default:
		return cfg, errors.New("no config source provided")
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Merge overlays the non-empty fields of over onto base.
func Merge(base, over Config) Config {
	out := base
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&out.Output, over.Output)
	set(&out.Backend, over.Backend)
	set(&out.Language, over.Language)
	set(&out.LogDir, over.LogDir)
	set(&out.ExcelOutput, over.ExcelOutput)
	set(&out.HandoutOutput, over.HandoutOutput)
	set(&out.HandoutFont, over.HandoutFont)
	set(&out.LedgerPath, over.LedgerPath)
	set(&out.OverflowPolicy, over.OverflowPolicy)
	set(&out.Title, over.Title)
	set(&out.Author, over.Author)
	return out
}

// Validate rejects values no component accepts.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Output) == "" {
		errs = append(errs, errors.New("output: must not be empty"))
	}
	switch strings.ToLower(c.Backend) {
	case "goppt", "gooxml":
	default:
		errs = append(errs, fmt.Errorf("backend: %q is not goppt or gooxml", c.Backend))
	}
	switch c.OverflowPolicy {
	case OverflowWarn, OverflowFail, OverflowIgnore:
	default:
		errs = append(errs, fmt.Errorf("overflowPolicy: %q is not warn, fail or ignore", c.OverflowPolicy))
	}
	switch c.Language {
	case "한국어", "English":
	default:
		errs = append(errs, fmt.Errorf("language: %q is not 한국어 or English", c.Language))
	}
	return errors.Join(errs...)
}
