package deck

// ElementKind identifies what a writer has to draw.
type ElementKind string

const (
	KindText  ElementKind = "text"
	KindRule  ElementKind = "rule"
	KindTable ElementKind = "table"
)

// Role records which part of a layout produced an element.
type Role string

const (
	RoleLabel    Role = "label"
	RoleTitle    Role = "title"
	RoleSubtitle Role = "subtitle"
	RoleFooter   Role = "footer"
	RoleHeading  Role = "heading"
	RoleRule     Role = "rule"
	RoleBody     Role = "body"
	RoleTable    Role = "table"
)

// Document is the rendered deck. It is append-only while the builder
// runs and treated as read-only afterwards.
type Document struct {
	Width  EMU     `json:"width"`
	Height EMU     `json:"height"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Slides []Slide `json:"slides"`
}

// Slide is one rendered page.
type Slide struct {
	Number     int       `json:"number"`
	Title      string    `json:"title"`
	Background Color     `json:"background,omitempty"`
	Elements   []Element `json:"elements"`
}

// Element is a positioned shape on a slide.
type Element struct {
	Kind       ElementKind `json:"kind"`
	Role       Role        `json:"role"`
	Frame      Frame       `json:"frame"`
	Paragraphs []Paragraph `json:"paragraphs,omitempty"`
	WordWrap   bool        `json:"wordWrap,omitempty"`
	Fill       Color       `json:"fill,omitempty"`
	Table      *Table      `json:"table,omitempty"`
}

// Paragraph is one styled line of a text element.
type Paragraph struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// Table is a rendered grid.
type Table struct {
	Rows [][]Cell `json:"rows"`
}

// Cell is one table cell.
type Cell struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Texts returns the row texts, the shape the table was specified in.
func (t *Table) Texts() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = c.Text
		}
	}
	return out
}

// Tables returns the table elements of the slide in drawing order.
func (s Slide) Tables() []*Table {
	var out []*Table
	for _, e := range s.Elements {
		if e.Kind == KindTable && e.Table != nil {
			out = append(out, e.Table)
		}
	}
	return out
}

// TextElements returns the text elements of the slide in drawing order.
func (s Slide) TextElements() []Element {
	var out []Element
	for _, e := range s.Elements {
		if e.Kind == KindText {
			out = append(out, e)
		}
	}
	return out
}
