package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"respring/apperr"
	"respring/deck"
)

// handoutFamily is the family name a custom font is registered under.
const handoutFamily = "handout"

// HandoutService prints an A4 outline of a deck using maroto: one section
// per slide with its title, text and tables.
type HandoutService struct {
	fontPath string
	logf     func(string)
}

// NewHandoutService creates a handout service. fontPath names a UTF-8
// TrueType font with Hangul glyphs; when empty Arial is used, Hangul does
// not render, and Export logs a warning. logf may be nil.
func NewHandoutService(fontPath string, logf func(string)) *HandoutService {
	return &HandoutService{fontPath: fontPath, logf: logf}
}

// HasHangulFont reports whether a font with Hangul glyphs is configured.
func (s *HandoutService) HasHangulFont() bool { return s.fontPath != "" }

func (s *HandoutService) family() string {
	if s.fontPath != "" {
		return handoutFamily
	}
	return fontfamily.Arial
}

// Export renders doc as PDF bytes.
func (s *HandoutService) Export(doc *deck.Document) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15)

	if s.fontPath == "" {
		if s.logf != nil {
			s.logf("[export] WARNING: no handout font configured, Hangul text will not render in Arial")
		}
	} else {
		fonts, err := repository.New().
			AddUTF8Font(handoutFamily, fontstyle.Normal, s.fontPath).
			AddUTF8Font(handoutFamily, fontstyle.Bold, s.fontPath).
			Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load handout font: %w", err)
		}
		builder = builder.WithCustomFonts(fonts)
	}
	cfg := builder.WithDefaultFont(&props.Font{Family: s.family(), Size: 10}).Build()

	m := maroto.New(cfg)
	s.addHeader(m, doc)
	for _, slide := range doc.Slides {
		s.addSlide(m, slide)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return document.GetBytes(), nil
}

// Save exports doc and writes the PDF to path.
func (s *HandoutService) Save(ctx context.Context, doc *deck.Document, path string) error {
	data, err := s.Export(doc)
	if err != nil {
		return apperr.WrapError("Handout", "Export", err)
	}
	if err := WriteFileAtomic(ctx, path, data); err != nil {
		return apperr.WrapError("Handout", "Save", err)
	}
	return nil
}

// pdfColor maps slide colours to print; light colours meant for the navy
// background fall back to black.
func pdfColor(c deck.Color) *props.Color {
	if c.IsZero() || c == deck.White || c == deck.Mist {
		return nil
	}
	r, g, b := c.Components()
	return &props.Color{Red: int(r), Green: int(g), Blue: int(b)}
}

func (s *HandoutService) addHeader(m core.Maroto, doc *deck.Document) {
	m.AddRow(16,
		col.New(12).Add(
			text.New(doc.Title, props.Text{
				Family: s.family(),
				Size:   20,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  pdfColor(deck.Navy),
			}),
		),
	)
	if doc.Author != "" {
		m.AddRow(8,
			col.New(12).Add(
				text.New(doc.Author, props.Text{
					Family: s.family(),
					Size:   10,
					Align:  align.Center,
					Color:  pdfColor(deck.LightGray),
				}),
			),
		)
	}
	m.AddRow(5)
}

func (s *HandoutService) addSlide(m core.Maroto, slide deck.Slide) {
	m.AddRow(9,
		col.New(12).Add(
			text.New(fmt.Sprintf("%d. %s", slide.Number, slide.Title), props.Text{
				Family: s.family(),
				Size:   12,
				Style:  fontstyle.Bold,
				Color:  pdfColor(deck.Navy),
			}),
		),
	)
	m.AddRow(2, line.NewCol(12, props.Line{Color: pdfColor(deck.Green), Thickness: 0.6}))

	for _, e := range slide.Elements {
		switch e.Kind {
		case deck.KindText:
			if e.Role == deck.RoleHeading || e.Role == deck.RoleTitle {
				continue
			}
			for _, p := range e.Paragraphs {
				if p.Text == "" {
					continue
				}
				for _, seg := range strings.Split(p.Text, "\n") {
					s.addLine(m, strings.TrimSpace(seg), p.Style)
				}
			}
		case deck.KindTable:
			s.addTable(m, e.Table)
		}
	}
	m.AddRow(6)
}

func (s *HandoutService) addLine(m core.Maroto, txt string, st deck.Style) {
	style := fontstyle.Normal
	if st.Bold {
		style = fontstyle.Bold
	}
	m.AddRow(6,
		col.New(12).Add(
			text.New(txt, props.Text{
				Family: s.family(),
				Size:   9,
				Style:  style,
				Color:  pdfColor(st.Color),
			}),
		),
	)
}

func (s *HandoutService) addTable(m core.Maroto, t *deck.Table) {
	n := t.NumCols()
	if n == 0 {
		return
	}
	width := 12 / n
	if width < 1 {
		width = 1
	}
	for r, row := range t.Rows {
		cols := make([]core.Col, 0, len(row))
		for _, cell := range row {
			style := fontstyle.Normal
			if cell.Style.Bold || r == 0 {
				style = fontstyle.Bold
			}
			cols = append(cols, col.New(width).Add(
				text.New(cell.Text, props.Text{
					Family: s.family(),
					Size:   9,
					Style:  style,
				}),
			))
		}
		m.AddRow(7, cols...)
	}
}
