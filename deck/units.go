package deck

import "math"

// EMU is the OOXML English Metric Unit.
type EMU int64

// Inches is a length on the page.
type Inches float64

// Points is a font size.
type Points float64

const (
	EMUPerInch  = 914400
	EMUPerPoint = 12700

	// 4:3 page, the size the deck was designed on.
	PageWidth  Inches = 10
	PageHeight Inches = 7.5
)

// EMU converts inches to EMU, rounding to the nearest unit.
func (in Inches) EMU() EMU {
	return EMU(math.Round(float64(in) * EMUPerInch))
}

// Inches converts back to inches.
func (e EMU) Inches() Inches {
	return Inches(float64(e) / EMUPerInch)
}

// Rect is a position and size on the page, in inches.
type Rect struct {
	X Inches `json:"x"`
	Y Inches `json:"y"`
	W Inches `json:"w"`
	H Inches `json:"h"`
}

// At is shorthand for Rect{x, y, w, h}.
func At(x, y, w, h Inches) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() Inches { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() Inches { return r.Y + r.H }

// Frame is a Rect converted to EMU.
type Frame struct {
	X  EMU `json:"x"`
	Y  EMU `json:"y"`
	CX EMU `json:"cx"`
	CY EMU `json:"cy"`
}

// Frame converts the rect to EMU.
func (r Rect) Frame() Frame {
	return Frame{X: r.X.EMU(), Y: r.Y.EMU(), CX: r.W.EMU(), CY: r.H.EMU()}
}

// Rect converts the frame back to inches.
func (f Frame) Rect() Rect {
	return Rect{X: f.X.Inches(), Y: f.Y.Inches(), W: f.CX.Inches(), H: f.CY.Inches()}
}
