package deck

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// Labeled always yields heading, one blank line, then the body in order.
func TestPropertyLabeledShape(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		heading := rapid.String().Draw(t, "heading")
		body := rapid.SliceOf(rapid.String()).Draw(t, "body")
		hs := Style{Size: 16, Bold: true}
		bs := Style{Size: 12}

		b := Labeled(At(1, 1, 3, 2), heading, hs, bs, body...)

		if len(b.Lines) != len(body)+2 {
			t.Fatalf("got %d lines, want %d", len(b.Lines), len(body)+2)
		}
		if b.Lines[0] != T(heading, hs) {
			t.Fatalf("first line %+v", b.Lines[0])
		}
		if b.Lines[1] != Gap() {
			t.Fatalf("second line should be a gap, got %+v", b.Lines[1])
		}
		for i, s := range body {
			if b.Lines[i+2] != T(s, bs) {
				t.Fatalf("body line %d = %+v, want %q", i, b.Lines[i+2], s)
			}
		}
	})
}

func TestPropertySpacedInterleavesGaps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOfN(rapid.StringN(1, 20, -1), 1, 10).Draw(t, "items")
		lines := Spaced(Style{}, items...)
		if len(lines) != 2*len(items)-1 {
			t.Fatalf("got %d lines for %d items", len(lines), len(items))
		}
		for i, l := range lines {
			if i%2 == 1 && l.Text != "" {
				t.Fatalf("line %d should be blank, got %q", i, l.Text)
			}
			if i%2 == 0 && l.Text != items[i/2] {
				t.Fatalf("line %d = %q, want %q", i, l.Text, items[i/2])
			}
		}
	})
}

func TestPropertyColumnsAndGridSpacing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cols := rapid.IntRange(1, 5).Draw(t, "cols")
		rows := rapid.IntRange(1, 4).Draw(t, "rows")
		x0 := Inches(rapid.Float64Range(0, 5).Draw(t, "x0"))
		y0 := Inches(rapid.Float64Range(0, 5).Draw(t, "y0"))
		dx := Inches(rapid.Float64Range(0.1, 3).Draw(t, "dx"))
		dy := Inches(rapid.Float64Range(0.1, 3).Draw(t, "dy"))

		row := Columns(cols, x0, dx, y0, 1, 1)
		if len(row) != cols {
			t.Fatalf("Columns returned %d frames", len(row))
		}
		for i := 1; i < len(row); i++ {
			if d := row[i].X - row[i-1].X; math.Abs(float64(d-dx)) > 1e-9 {
				t.Fatalf("column step %v, want %v", d, dx)
			}
		}

		grid := Grid(cols, rows, x0, y0, dx, dy, 1, 1)
		if len(grid) != cols*rows {
			t.Fatalf("Grid returned %d frames", len(grid))
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				f := grid[r*cols+c]
				if f.Y != y0+Inches(r)*dy || f.X != x0+Inches(c)*dx {
					t.Fatalf("grid[%d,%d] at (%v,%v)", r, c, f.X, f.Y)
				}
			}
		}
	})
}

func TestPropertyInchesRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := Inches(rapid.Float64Range(0, 20).Draw(t, "inches"))
		back := in.EMU().Inches()
		// One EMU is about 1.1e-6 inch.
		if math.Abs(float64(back-in)) > 1.0/EMUPerInch {
			t.Fatalf("%v -> %d -> %v", in, in.EMU(), back)
		}
	})
}

func TestPropertyBuildIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		texts := rapid.SliceOfN(rapid.String(), 1, 8).Draw(t, "texts")
		specs := []SlideSpec{ContentSlide{
			Title:  texts[0],
			Blocks: []Block{Text(At(1, 2, 8, 4), Each(Style{Size: 12}, texts...)...)},
		}}
		a, err := Build(specs)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Build(specs)
		if err != nil {
			t.Fatal(err)
		}
		fa, _ := Fingerprint(a)
		fb, _ := Fingerprint(b)
		if fa != fb {
			t.Fatalf("fingerprints differ: %s vs %s", fa, fb)
		}
		if got := len(a.Slides[0].Elements[2].Paragraphs); got != len(texts) {
			t.Fatalf("got %d paragraphs, want %d", got, len(texts))
		}
	})
}
