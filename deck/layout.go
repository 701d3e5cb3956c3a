package deck

import "strings"

// T is a styled line.
func T(text string, s Style) Line {
	return Line{Text: text, Style: s}
}

// Gap is an empty, unstyled line.
func Gap() Line {
	return Line{}
}

// Each styles every text with s.
func Each(s Style, texts ...string) []Line {
	out := make([]Line, len(texts))
	for i, t := range texts {
		out[i] = Line{Text: t, Style: s}
	}
	return out
}

// Split breaks a multi-line string into separate paragraphs.
func Split(text string) []string {
	return strings.Split(text, "\n")
}

// Text builds a text block from lines.
func Text(frame Rect, lines ...Line) TextBlock {
	return TextBlock{Frame: frame, Lines: lines}
}

// Labeled builds the recurring "heading, blank line, body" box: the
// heading in hs, then an empty paragraph, then each body paragraph in bs.
func Labeled(frame Rect, heading string, hs, bs Style, body ...string) TextBlock {
	lines := make([]Line, 0, len(body)+2)
	lines = append(lines, T(heading, hs), Gap())
	lines = append(lines, Each(bs, body...)...)
	return TextBlock{Frame: frame, Lines: lines}
}

// Spaced interleaves items with empty lines: a, "", b, "", c. The empty
// lines carry s too, so they are as tall as the items.
func Spaced(s Style, items ...string) []Line {
	out := make([]Line, 0, 2*len(items))
	for i, it := range items {
		if i > 0 {
			out = append(out, T("", s))
		}
		out = append(out, T(it, s))
	}
	return out
}

// Stack interleaves already styled lines with unstyled gaps.
func Stack(lines ...Line) []Line {
	out := make([]Line, 0, 2*len(lines))
	for i, l := range lines {
		if i > 0 {
			out = append(out, Gap())
		}
		out = append(out, l)
	}
	return out
}

// Columns lays out n frames of size w×h on one row, the first at x0 and
// each next one step further right.
func Columns(n int, x0, step, y, w, h Inches) []Rect {
	out := make([]Rect, n)
	for i := range out {
		out[i] = At(x0+Inches(i)*step, y, w, h)
	}
	return out
}

// Grid lays out cols×rows frames in row-major order.
func Grid(cols, rows int, x0, y0, dx, dy, w, h Inches) []Rect {
	out := make([]Rect, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, At(x0+Inches(c)*dx, y0+Inches(r)*dy, w, h))
		}
	}
	return out
}

// Grid2x2 is the four-box layout used by SWOT-style slides.
func Grid2x2(x0, y0, dx, dy, w, h Inches) []Rect {
	return Grid(2, 2, x0, y0, dx, dy, w, h)
}
