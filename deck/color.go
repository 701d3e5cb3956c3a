package deck

import (
	"fmt"
	"strconv"
)

// Color is an ARGB hex string such as "FF0F172A". The empty string means
// the renderer's default.
type Color string

// RGB builds an opaque colour from its components.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("FF%02X%02X%02X", r, g, b))
}

// Palette of the business plan.
var (
	Navy      = RGB(15, 23, 42)
	Green     = RGB(16, 185, 129)
	Blue      = RGB(59, 130, 246)
	Red       = RGB(239, 68, 68)
	Orange    = RGB(245, 158, 11)
	Gray      = RGB(51, 65, 85)
	LightGray = RGB(148, 163, 184)
	Mist      = RGB(226, 232, 240)
	White     = RGB(255, 255, 255)
)

// IsZero reports whether the colour is unset.
func (c Color) IsZero() bool { return c == "" }

// Components returns the red, green and blue bytes. Malformed colours
// yield black.
func (c Color) Components() (r, g, b uint8) {
	s := string(c)
	if len(s) == 8 {
		s = s[2:]
	}
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Hex returns the colour as RRGGBB, the form excelize and most schemas use.
func (c Color) Hex() string {
	r, g, b := c.Components()
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}
