package deck

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrEmptyDeck   = errors.New("deck has no slides")
	ErrNilSpec     = errors.New("nil slide spec")
	ErrEmptyTable  = errors.New("table has no rows or columns")
	ErrRaggedTable = errors.New("table rows differ in length")
)

// Cover and header geometry.
var (
	coverLabelFrame    = At(1, 1.5, 8, 0.4)
	coverTitleFrame    = At(1, 2.2, 8, 1.2)
	coverSubtitleFrame = At(1, 3.5, 8, 0.8)
	coverFooterFrame   = At(1, 5.8, 6, 1)

	headerTitleFrame = At(0.5, 0.4, 9, 0.5)
	headerRuleY      = Inches(1.0)
	headerRuleX      = Inches(0.5)
	headerRuleW      = Inches(9)
	headerRuleWeight = Points(4)
)

var (
	coverLabelStyle    = Style{Size: 16, Bold: true, Color: Green, Align: AlignLeft}
	coverTitleStyle    = Style{Size: 70, Bold: true, Color: White, Align: AlignLeft}
	coverSubtitleStyle = Style{Size: 18, Color: Mist, Align: AlignLeft}
	coverFooterStyle   = Style{Size: 14, Color: LightGray, Align: AlignLeft}
	headerTitleStyle   = Style{Size: 26, Bold: true, Color: Navy}
)

// Builder renders slide specs into a Document.
type Builder struct {
	Title  string
	Author string
}

// NewBuilder returns a builder that stamps the given document properties.
func NewBuilder(title, author string) *Builder {
	return &Builder{Title: title, Author: author}
}

// Build renders specs in order. It fails only on structurally broken
// input (no slides, nil specs, ragged tables); content is not validated.
func (b *Builder) Build(specs []SlideSpec) (*Document, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyDeck
	}
	doc := &Document{
		Width:  PageWidth.EMU(),
		Height: PageHeight.EMU(),
		Title:  nfc(b.Title),
		Author: nfc(b.Author),
		Slides: make([]Slide, 0, len(specs)),
	}
	for i, spec := range specs {
		slide, err := b.buildSlide(i+1, spec)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		doc.Slides = append(doc.Slides, slide)
	}
	return doc, nil
}

// Build renders specs with empty document properties.
func Build(specs []SlideSpec) (*Document, error) {
	return (&Builder{}).Build(specs)
}

func (b *Builder) buildSlide(number int, spec SlideSpec) (Slide, error) {
	switch s := spec.(type) {
	case nil:
		return Slide{}, ErrNilSpec
	case TitleSlide:
		return buildTitleSlide(number, s), nil
	case *TitleSlide:
		if s == nil {
			return Slide{}, ErrNilSpec
		}
		return buildTitleSlide(number, *s), nil
	case ContentSlide:
		return buildContentSlide(number, s)
	case *ContentSlide:
		if s == nil {
			return Slide{}, ErrNilSpec
		}
		return buildContentSlide(number, *s)
	default:
		return Slide{}, fmt.Errorf("unsupported slide spec %T", spec)
	}
}

func buildTitleSlide(number int, s TitleSlide) Slide {
	slide := Slide{Number: number, Title: nfc(s.Title), Background: Navy}
	if s.SmallLabel != "" {
		slide.add(textElement(RoleLabel, coverLabelFrame, false, Line{Text: s.SmallLabel, Style: coverLabelStyle}))
	}
	slide.add(textElement(RoleTitle, coverTitleFrame, false, Line{Text: s.Title, Style: coverTitleStyle}))
	if s.Subtitle != "" {
		slide.add(textElement(RoleSubtitle, coverSubtitleFrame, false, Line{Text: s.Subtitle, Style: coverSubtitleStyle}))
	}
	if len(s.FooterLines) > 0 {
		lines := make([]Line, len(s.FooterLines))
		for i, l := range s.FooterLines {
			lines[i] = Line{Text: l, Style: coverFooterStyle}
		}
		slide.add(textElement(RoleFooter, coverFooterFrame, false, lines...))
	}
	return slide
}

func buildContentSlide(number int, s ContentSlide) (Slide, error) {
	slide := Slide{Number: number, Title: nfc(s.Title), Background: s.Background}
	if s.Header == HeaderRule {
		slide.add(textElement(RoleHeading, headerTitleFrame, true, Line{Text: s.Title, Style: headerTitleStyle}))
		slide.add(ruleElement(headerRuleX, headerRuleY, headerRuleW, headerRuleWeight, Green))
	}
	for i, block := range s.Blocks {
		switch blk := block.(type) {
		case TextBlock:
			slide.add(textElement(RoleBody, blk.Frame, blk.Wrap, blk.Lines...))
		case *TextBlock:
			slide.add(textElement(RoleBody, blk.Frame, blk.Wrap, blk.Lines...))
		case TableBlock:
			e, err := tableElement(blk)
			if err != nil {
				return Slide{}, fmt.Errorf("block %d: %w", i+1, err)
			}
			slide.add(e)
		case *TableBlock:
			e, err := tableElement(*blk)
			if err != nil {
				return Slide{}, fmt.Errorf("block %d: %w", i+1, err)
			}
			slide.add(e)
		default:
			return Slide{}, fmt.Errorf("block %d: unsupported block %T", i+1, block)
		}
	}
	return slide, nil
}

func (s *Slide) add(e Element) {
	s.Elements = append(s.Elements, e)
}

func textElement(role Role, frame Rect, wrap bool, lines ...Line) Element {
	paras := make([]Paragraph, len(lines))
	for i, l := range lines {
		paras[i] = Paragraph{Text: nfc(l.Text), Style: l.Style}
	}
	return Element{Kind: KindText, Role: role, Frame: frame.Frame(), Paragraphs: paras, WordWrap: wrap}
}

// ruleElement is a horizontal line of the given weight centred on y.
func ruleElement(x, y, w Inches, weight Points, c Color) Element {
	thick := EMU(float64(weight) * EMUPerPoint)
	return Element{
		Kind: KindRule,
		Role: RoleRule,
		Frame: Frame{
			X:  x.EMU(),
			Y:  y.EMU() - thick/2,
			CX: w.EMU(),
			CY: thick,
		},
		Fill: c,
	}
}

func tableElement(b TableBlock) (Element, error) {
	cols := b.Columns()
	if len(b.Rows) == 0 || cols == 0 {
		return Element{}, ErrEmptyTable
	}
	t := &Table{Rows: make([][]Cell, len(b.Rows))}
	for i, row := range b.Rows {
		if len(row) != cols {
			return Element{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedTable, i+1, len(row), cols)
		}
		style := Style{Size: b.FontSize, Bold: b.isBold(i)}
		cells := make([]Cell, cols)
		for j, v := range row {
			cells[j] = Cell{Text: nfc(v), Style: style}
		}
		t.Rows[i] = cells
	}
	return Element{Kind: KindTable, Role: RoleTable, Frame: b.Frame.Frame(), Table: t}, nil
}

func nfc(s string) string {
	return norm.NFC.String(s)
}
