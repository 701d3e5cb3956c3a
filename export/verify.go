package export

import (
	"fmt"
	"strings"

	"github.com/tsawler/tabula/pptx"

	"respring/apperr"
	"respring/deck"
)

// SlideReport compares one written slide with its document slide.
type SlideReport struct {
	Number         int
	WantParagraphs int
	GotParagraphs  int
	WantTables     int
	GotTables      int
	Missing        []string
	Mismatches     []string
}

// Report is the result of reading a written presentation back.
type Report struct {
	Path       string
	Title      string
	WantSlides int
	GotSlides  int
	Slides     []SlideReport
}

// OK reports whether every slide, table shape, paragraph count and text
// matched.
func (r *Report) OK() bool {
	return len(r.Problems()) == 0
}

// Problems lists the mismatches in reading order.
func (r *Report) Problems() []string {
	var out []string
	if r.WantSlides != r.GotSlides {
		out = append(out, fmt.Sprintf("slide count: want %d, got %d", r.WantSlides, r.GotSlides))
	}
	for _, s := range r.Slides {
		for _, m := range s.Mismatches {
			out = append(out, fmt.Sprintf("slide %d: %s", s.Number, m))
		}
		for _, m := range s.Missing {
			out = append(out, fmt.Sprintf("slide %d: missing %q", s.Number, m))
		}
	}
	return out
}

// flatten is how a paragraph reads back: soft breaks vanish between runs
// and surrounding space is trimmed.
func flatten(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\n", ""))
}

// Verify opens the presentation at path and checks that it carries the
// slides and texts of doc. Table cells may come back either as table
// shapes or as text, depending on the writer.
func Verify(path string, doc *deck.Document) (*Report, error) {
	r, err := pptx.Open(path)
	if err != nil {
		return nil, apperr.WrapError("Verify", "Open", err)
	}
	defer r.Close()

	rep := &Report{
		Path:       path,
		Title:      r.Metadata().Title,
		WantSlides: len(doc.Slides),
		GotSlides:  r.SlideCount(),
	}

	for i, want := range doc.Slides {
		if i >= r.SlideCount() {
			break
		}
		got, err := r.Slide(i)
		if err != nil {
			return nil, apperr.WrapError("Verify", "Slide", err)
		}
		rep.Slides = append(rep.Slides, compareSlide(want, got))
	}
	return rep, nil
}

// compareSlide matches the written slide against the document slide.
// Tables must come back as table shapes of the same size, or, when the
// writer has no table shapes, as one paragraph per row with the cells
// joined by TableRowSeparator. Every other paragraph must match a
// document paragraph, and the counts must agree.
func compareSlide(want deck.Slide, got *pptx.Slide) SlideReport {
	sr := SlideReport{Number: want.Number, WantTables: len(want.Tables()), GotTables: len(got.Tables)}

	texts := map[string]int{}
	for _, b := range got.Content {
		for _, p := range b.Paragraphs {
			texts[p.Text]++
			sr.GotParagraphs++
		}
	}

	switch {
	case sr.GotTables > 0 || sr.WantTables == 0:
		if sr.GotTables != sr.WantTables {
			sr.Mismatches = append(sr.Mismatches, fmt.Sprintf("tables: want %d, got %d", sr.WantTables, sr.GotTables))
		}
		for i, t := range want.Tables() {
			if i < len(got.Tables) {
				sr.compareTable(i+1, t, got.Tables[i])
			}
		}
	default:
		// Text rows count as paragraphs in the file but not in the document.
		for _, t := range want.Tables() {
			for _, row := range t.Rows {
				line := make([]string, len(row))
				for j, c := range row {
					line[j] = flatten(c.Text)
				}
				joined := strings.TrimSpace(strings.Join(line, TableRowSeparator))
				if texts[joined] > 0 {
					texts[joined]--
					sr.GotParagraphs--
					continue
				}
				sr.Missing = append(sr.Missing, joined)
			}
		}
	}

	for _, e := range want.TextElements() {
		for _, p := range e.Paragraphs {
			t := flatten(p.Text)
			if t == "" {
				continue
			}
			sr.WantParagraphs++
			if texts[t] > 0 {
				texts[t]--
				continue
			}
			sr.Missing = append(sr.Missing, t)
		}
	}
	if sr.WantParagraphs != sr.GotParagraphs {
		sr.Mismatches = append(sr.Mismatches, fmt.Sprintf("paragraphs: want %d, got %d", sr.WantParagraphs, sr.GotParagraphs))
	}
	return sr
}

func (sr *SlideReport) compareTable(n int, want *deck.Table, got pptx.Table) {
	if len(got.Rows) != want.NumRows() || got.Columns != want.NumCols() {
		sr.Mismatches = append(sr.Mismatches, fmt.Sprintf("table %d: want %dx%d, got %dx%d",
			n, want.NumRows(), want.NumCols(), len(got.Rows), got.Columns))
		return
	}
	for i, row := range want.Rows {
		if len(got.Rows[i]) != len(row) {
			sr.Mismatches = append(sr.Mismatches, fmt.Sprintf("table %d row %d: want %d cells, got %d", n, i+1, len(row), len(got.Rows[i])))
			continue
		}
		for j, c := range row {
			if w, g := flatten(c.Text), strings.TrimSpace(got.Rows[i][j].Text); w != g {
				sr.Mismatches = append(sr.Mismatches, fmt.Sprintf("table %d cell %d,%d: want %q, got %q", n, i+1, j+1, w, g))
			}
		}
	}
}
