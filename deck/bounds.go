package deck

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/width"
)

// OverflowKind classifies a bounds problem.
type OverflowKind string

const (
	// OffPage: the frame extends past the page edge.
	OffPage OverflowKind = "off-page"
	// TextTooTall: the estimated text height exceeds the frame.
	TextTooTall OverflowKind = "text-too-tall"
	// TextTooWide: unwrapped text is wider than the frame.
	TextTooWide OverflowKind = "text-too-wide"
)

// Overflow is one element that does not fit where it was placed.
type Overflow struct {
	Slide   int
	Element int
	Role    Role
	Kind    OverflowKind
	Need    Inches
	Have    Inches
}

func (o Overflow) String() string {
	return fmt.Sprintf("slide %d element %d (%s): %s, needs %.2fin, has %.2fin",
		o.Slide, o.Element+1, o.Role, o.Kind, float64(o.Need), float64(o.Have))
}

// Text box insets and the line height used for estimates.
const (
	insetX       Inches = 0.1
	insetY       Inches = 0.05
	lineHeight          = 1.2
	defaultSize  Points = 18
	pointsPerInch       = 72
)

// CheckBounds reports elements that leave the page or whose text is
// estimated not to fit. It never changes the document.
func CheckBounds(doc *Document) []Overflow {
	var out []Overflow
	pageW, pageH := doc.Width.Inches(), doc.Height.Inches()
	for _, s := range doc.Slides {
		for i, e := range s.Elements {
			r := e.Frame.Rect()
			if right := r.Right(); right > pageW+epsilon {
				out = append(out, Overflow{Slide: s.Number, Element: i, Role: e.Role, Kind: OffPage, Need: right, Have: pageW})
			}
			if bottom := r.Bottom(); bottom > pageH+epsilon {
				out = append(out, Overflow{Slide: s.Number, Element: i, Role: e.Role, Kind: OffPage, Need: bottom, Have: pageH})
			}
			if e.Kind != KindText {
				continue
			}
			usable := r.W - 2*insetX
			if !e.WordWrap {
				if widest := widestLine(e.Paragraphs); widest > usable+epsilon {
					out = append(out, Overflow{Slide: s.Number, Element: i, Role: e.Role, Kind: TextTooWide, Need: widest, Have: usable})
				}
			}
			need := TextHeight(e.Paragraphs, usable, e.WordWrap)
			// Single-paragraph boxes grow with their text in every viewer.
			if need > r.H-2*insetY+epsilon && len(e.Paragraphs) > 1 {
				out = append(out, Overflow{Slide: s.Number, Element: i, Role: e.Role, Kind: TextTooTall, Need: need, Have: r.H - 2*insetY})
			}
		}
	}
	return out
}

const epsilon Inches = 0.005

// TextHeight estimates the height of paragraphs set in a box of the given
// usable width.
func TextHeight(paras []Paragraph, usable Inches, wrap bool) Inches {
	var total Inches
	for _, p := range paras {
		size := p.Style.Size
		if size <= 0 {
			size = defaultSize
		}
		rows := 0
		for _, seg := range strings.Split(p.Text, "\n") {
			rows += visualRows(seg, size, usable, wrap)
		}
		total += Inches(float64(rows) * float64(size) * lineHeight / pointsPerInch)
	}
	return total
}

func visualRows(seg string, size Points, usable Inches, wrap bool) int {
	if !wrap || usable <= 0 {
		return 1
	}
	w := TextWidth(seg, size)
	if w <= usable {
		return 1
	}
	return int(math.Ceil(float64(w / usable)))
}

// TextWidth estimates the rendered width of a single line. East Asian
// wide and fullwidth runes count one em, everything else half an em.
func TextWidth(s string, size Points) Inches {
	var ems float64
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			ems += 1
		default:
			ems += 0.5
		}
	}
	return Inches(ems * float64(size) / pointsPerInch)
}

func widestLine(paras []Paragraph) Inches {
	var widest Inches
	for _, p := range paras {
		size := p.Style.Size
		if size <= 0 {
			size = defaultSize
		}
		for _, seg := range strings.Split(p.Text, "\n") {
			if w := TextWidth(seg, size); w > widest {
				widest = w
			}
		}
	}
	return widest
}
