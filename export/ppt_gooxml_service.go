package export

import (
	"bytes"
	"fmt"
	"strings"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/drawingml"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/presentation"
	"baliance.com/gooxml/schema/soo/dml"
	"baliance.com/gooxml/schema/soo/pml"

	"respring/deck"
)

// TableRowSeparator joins the cells of a table row written as text.
const TableRowSeparator = "  |  "

// GooxmlPPTService renders a deck.Document with gooxml (open source)
type GooxmlPPTService struct{}

// NewGooxmlPPTService creates a new gooxml PPT service
func NewGooxmlPPTService() *GooxmlPPTService {
	return &GooxmlPPTService{}
}

// Render writes doc as PPTX bytes.
func (s *GooxmlPPTService) Render(doc *deck.Document) ([]byte, error) {
	if doc == nil || len(doc.Slides) == 0 {
		return nil, deck.ErrEmptyDeck
	}
	ppt := presentation.New()
	ppt.CoreProperties.SetTitle(doc.Title)
	ppt.CoreProperties.SetAuthor(doc.Author)

	sz := pml.NewCT_SlideSize()
	sz.CxAttr = int32(doc.Width)
	sz.CyAttr = int32(doc.Height)
	ppt.X().SldSz = sz

	for _, sl := range doc.Slides {
		slide := ppt.AddSlide()
		if !sl.Background.IsZero() {
			bg := slide.AddTextBox()
			place(bg.Properties(), deck.Frame{CX: doc.Width, CY: doc.Height})
			bg.Properties().SetSolidFill(rgb(sl.Background))
		}
		for j, e := range sl.Elements {
			switch e.Kind {
			case deck.KindText:
				s.addText(slide, e)
			case deck.KindRule:
				bar := slide.AddTextBox()
				place(bar.Properties(), e.Frame)
				bar.Properties().SetSolidFill(rgb(e.Fill))
			case deck.KindTable:
				s.addTable(slide, e)
			default:
				return nil, fmt.Errorf("slide %d element %d: unknown kind %q", sl.Number, j+1, e.Kind)
			}
		}
	}

	var buf bytes.Buffer
	if err := ppt.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}

func place(p drawingml.ShapeProperties, f deck.Frame) {
	p.SetGeometry(dml.ST_ShapeTypeRect)
	p.SetPosition(emu(f.X), emu(f.Y))
	p.SetSize(emu(f.CX), emu(f.CY))
}

func emu(e deck.EMU) measurement.Distance {
	return measurement.Distance(e.Inches()) * measurement.Inch
}

func rgb(c deck.Color) color.Color {
	r, g, b := c.Components()
	return color.RGB(r, g, b)
}

func (s *GooxmlPPTService) addText(slide presentation.Slide, e deck.Element) {
	box := slide.AddTextBox()
	place(box.Properties(), e.Frame)
	setWrap(box, e.WordWrap)
	if !e.Fill.IsZero() {
		box.Properties().SetSolidFill(rgb(e.Fill))
	}
	for _, para := range e.Paragraphs {
		writeGooxmlParagraph(box.AddParagraph(), para.Text, para.Style)
	}
}

// setWrap writes bodyPr wrap="square" or wrap="none".
func setWrap(box presentation.TextBox, wrap bool) {
	tx := box.X().TxBody
	if tx == nil {
		return
	}
	if tx.BodyPr == nil {
		tx.BodyPr = dml.NewCT_TextBodyProperties()
	}
	if wrap {
		tx.BodyPr.WrapAttr = dml.ST_TextWrappingTypeSquare
	} else {
		tx.BodyPr.WrapAttr = dml.ST_TextWrappingTypeNone
	}
}

func writeGooxmlParagraph(para drawingml.Paragraph, text string, st deck.Style) {
	switch st.Align {
	case deck.AlignLeft:
		para.Properties().SetAlign(dml.ST_TextAlignTypeL)
	case deck.AlignCenter:
		para.Properties().SetAlign(dml.ST_TextAlignTypeCtr)
	case deck.AlignRight:
		para.Properties().SetAlign(dml.ST_TextAlignTypeR)
	}
	for i, seg := range strings.Split(text, "\n") {
		if i > 0 {
			para.AddBreak()
		}
		if seg == "" && text != "" {
			continue
		}
		run := para.AddRun()
		run.SetText(seg)
		if st.Size > 0 {
			run.Properties().SetSize(measurement.Distance(st.Size))
		}
		if st.Bold {
			run.Properties().SetBold(true)
		}
		if !st.Color.IsZero() {
			run.Properties().SetSolidFill(rgb(st.Color))
		}
	}
}

// addTable writes the table as formatted text rows, one paragraph per
// row with cells joined by TableRowSeparator.
func (s *GooxmlPPTService) addTable(slide presentation.Slide, e deck.Element) {
	box := slide.AddTextBox()
	place(box.Properties(), e.Frame)
	setWrap(box, false)
	for _, row := range e.Table.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = c.Text
		}
		var st deck.Style
		if len(row) > 0 {
			st = row[0].Style
		}
		writeGooxmlParagraph(box.AddParagraph(), strings.Join(cells, TableRowSeparator), st)
	}
}
