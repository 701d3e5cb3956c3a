package export

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"respring/deck"
)

// GoPPTService renders a deck.Document with GoPPT (pure Go, zero dependencies)
type GoPPTService struct{}

// NewGoPPTService creates a new GoPPT service
func NewGoPPTService() *GoPPTService {
	return &GoPPTService{}
}

// header row fill of tables
const gopptTableHeadFill = "FFF1F5F9"

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

func horizontal(a deck.Align) (ppt.HorizontalAlignment, bool) {
	switch a {
	case deck.AlignLeft:
		return ppt.HorizontalLeft, true
	case deck.AlignCenter:
		return ppt.HorizontalCenter, true
	case deck.AlignRight:
		return ppt.HorizontalRight, true
	}
	return ppt.HorizontalLeft, false
}

// Presentation builds the in-memory GoPPT presentation for doc.
func (s *GoPPTService) Presentation(doc *deck.Document) (*ppt.Presentation, error) {
	if doc == nil || len(doc.Slides) == 0 {
		return nil, deck.ErrEmptyDeck
	}
	p := ppt.New()
	p.GetDocumentProperties().Title = doc.Title
	p.GetDocumentProperties().Creator = doc.Author

	layout := p.GetLayout()
	layout.CX = int64(doc.Width)
	layout.CY = int64(doc.Height)

	for i, sl := range doc.Slides {
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}
		if !sl.Background.IsZero() {
			s.addBackground(slide, doc, sl.Background)
		}
		for j, e := range sl.Elements {
			switch e.Kind {
			case deck.KindText:
				s.addText(slide, e)
			case deck.KindRule:
				s.addBar(slide, e.Frame, string(e.Fill))
			case deck.KindTable:
				s.addTable(slide, e)
			default:
				return nil, fmt.Errorf("slide %d element %d: unknown kind %q", sl.Number, j+1, e.Kind)
			}
		}
	}
	return p, nil
}

// Render writes doc as PPTX bytes.
func (s *GoPPTService) Render(doc *deck.Document) ([]byte, error) {
	p, err := s.Presentation(doc)
	if err != nil {
		return nil, err
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}

// addBackground paints the page with a full-bleed filled shape.
func (s *GoPPTService) addBackground(slide *ppt.Slide, doc *deck.Document, c deck.Color) {
	bg := slide.CreateRichTextShape()
	bg.SetOffsetX(0).SetOffsetY(0)
	bg.SetWidth(int64(doc.Width)).SetHeight(int64(doc.Height))
	bg.SetFill(solidFill(string(c)))
}

func (s *GoPPTService) addBar(slide *ppt.Slide, f deck.Frame, argb string) {
	bar := slide.CreateRichTextShape()
	bar.SetOffsetX(int64(f.X)).SetOffsetY(int64(f.Y))
	bar.SetWidth(int64(f.CX)).SetHeight(int64(f.CY))
	bar.SetFill(solidFill(argb))
}

func (s *GoPPTService) addText(slide *ppt.Slide, e deck.Element) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(int64(e.Frame.X)).SetOffsetY(int64(e.Frame.Y))
	shape.SetWidth(int64(e.Frame.CX)).SetHeight(int64(e.Frame.CY))
	shape.SetWordWrap(e.WordWrap)
	if !e.Fill.IsZero() {
		shape.SetFill(solidFill(string(e.Fill)))
	}
	for i, para := range e.Paragraphs {
		if i > 0 {
			shape.CreateParagraph()
		}
		writeParagraph(shape, para.Text, para.Style)
	}
}

// writeParagraph fills the active paragraph of shape. Soft breaks inside
// text become line breaks within the paragraph.
func writeParagraph(shape *ppt.RichTextShape, text string, st deck.Style) {
	if h, ok := horizontal(st.Align); ok {
		shape.GetActiveParagraph().SetAlignment(ppt.NewAlignment().SetHorizontal(h))
	}
	if text == "" {
		if st.Size > 0 {
			styleRun(shape.CreateTextRun(""), st)
		}
		return
	}
	for i, seg := range strings.Split(text, "\n") {
		if i > 0 {
			shape.CreateBreak()
		}
		if seg == "" {
			continue
		}
		styleRun(shape.CreateTextRun(seg), st)
	}
}

func styleRun(tr *ppt.TextRun, st deck.Style) {
	font := tr.GetFont()
	if st.Size > 0 {
		font.SetSize(int(math.Round(float64(st.Size))))
	}
	if st.Bold {
		font.SetBold(true)
	}
	if !st.Color.IsZero() {
		font.SetColor(ppt.NewColor(string(st.Color)))
	}
}

// addTable writes a native table at the element frame. Row heights and
// column widths are even; the header row is shaded.
func (s *GoPPTService) addTable(slide *ppt.Slide, e deck.Element) {
	t := e.Table
	rows, cols := t.NumRows(), t.NumCols()
	if rows == 0 || cols == 0 {
		return
	}
	table := slide.CreateTableShape(rows, cols)
	table.SetOffsetX(int64(e.Frame.X)).SetOffsetY(int64(e.Frame.Y))
	table.SetWidth(int64(e.Frame.CX)).SetHeight(int64(e.Frame.CY))

	for r, row := range t.Rows {
		for c, cell := range row {
			tc := table.GetCell(r, c)
			if r == 0 {
				tc.SetFill(solidFill(gopptTableHeadFill))
			}
			writeCell(tc, cell.Text, cell.Style)
		}
	}
}

func writeCell(tc *ppt.TableCell, text string, st deck.Style) {
	para := tc.GetParagraphs()[0]
	for i, seg := range strings.Split(text, "\n") {
		if i > 0 {
			para.CreateBreak()
		}
		styleRun(para.CreateTextRun(seg), st)
	}
}
