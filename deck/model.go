// Package deck turns an ordered list of slide specifications into a
// positioned, styled document that a presentation writer can serialise.
//
// Everything is in absolute page coordinates. The builder places blocks
// exactly where their specification says; it never reflows, resizes or
// clips. Blocks that do not fit are reported by CheckBounds.
package deck

// Align is a paragraph alignment.
type Align int

const (
	AlignDefault Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "default"
}

// Style is the character and paragraph formatting of one line.
// Zero fields fall back to the writer's defaults.
type Style struct {
	Size  Points `json:"size,omitempty"`
	Bold  bool   `json:"bold,omitempty"`
	Color Color  `json:"color,omitempty"`
	Align Align  `json:"align,omitempty"`
}

// Line is one paragraph of a text block. A "\n" inside Text is a soft
// line break that stays inside the paragraph.
type Line struct {
	Text  string
	Style Style
}

// SlideSpec is one of TitleSlide or ContentSlide.
type SlideSpec interface {
	isSlideSpec()
}

// TitleSlide is the cover layout: navy page, optional small label above
// a large title, subtitle, and footer lines.
type TitleSlide struct {
	SmallLabel  string
	Title       string
	Subtitle    string
	FooterLines []string
}

// Header selects the heading drawn at the top of a content slide.
type Header int

const (
	// HeaderRule draws the slide title with a green rule underneath.
	HeaderRule Header = iota
	// HeaderNone draws nothing; the blocks carry all text.
	HeaderNone
)

// ContentSlide is a titled slide carrying positioned blocks.
type ContentSlide struct {
	Title      string
	Background Color
	Header     Header
	Blocks     []Block
}

func (TitleSlide) isSlideSpec()   {}
func (ContentSlide) isSlideSpec() {}

// Block is one of TextBlock or TableBlock.
type Block interface {
	Bounds() Rect
}

// TextBlock is a text box at a literal position. Each line stays on one
// row however wide it is, unless Wrap is set.
type TextBlock struct {
	Frame Rect
	Lines []Line
	Wrap  bool
}

// TableBlock is a grid of strings. Rows listed in BoldRows are set bold.
type TableBlock struct {
	Frame    Rect
	Rows     [][]string
	FontSize Points
	BoldRows []int
}

func (b TextBlock) Bounds() Rect  { return b.Frame }
func (b TableBlock) Bounds() Rect { return b.Frame }

// Columns returns the number of columns of the first row.
func (b TableBlock) Columns() int {
	if len(b.Rows) == 0 {
		return 0
	}
	return len(b.Rows[0])
}

func (b TableBlock) isBold(row int) bool {
	for _, r := range b.BoldRows {
		if r == row {
			return true
		}
	}
	return false
}
