package textmesh

import (
	"testing"

	"github.com/ungerik/go3d/float64/vec2"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// loadTestSource builds an sfnt-backed source over the embedded Go Regular
// font.
func loadTestSource(t *testing.T, sizePx int) OutlineSource {
	t.Helper()

	src, err := NewFontSource(goregular.TTF, sizePx)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	return src
}

// loadTestMesher builds a ready Mesher over the embedded Go Regular font.
func loadTestMesher(t *testing.T, sizePx int, opts ...Option) *Mesher {
	t.Helper()

	m := NewFromSource(loadTestSource(t, sizePx), opts...)
	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Errorf("failed to close mesher: %v", err)
		}
	})
	return m
}

// stubGlyph is one scripted glyph of a stubSource.
type stubGlyph struct {
	index   GlyphIndex
	outline GlyphOutline
	err     error
}

// stubSource is a scripted OutlineSource for layout tests. It needs no font
// file and records nothing, so every expectation is explicit in the test.
type stubSource struct {
	glyphs map[rune]stubGlyph
	kern   map[[2]GlyphIndex]fixed.Int26_6
	closed int
}

func (s *stubSource) GlyphIndex(r rune) GlyphIndex {
	return s.glyphs[r].index
}

func (s *stubSource) GlyphOutline(gi GlyphIndex, steps int) (GlyphOutline, error) {
	for _, g := range s.glyphs {
		if g.index == gi {
			if g.err != nil {
				return GlyphOutline{}, g.err
			}
			return g.outline, nil
		}
	}
	return GlyphOutline{Index: gi}, nil
}

func (s *stubSource) Kern(prev, cur GlyphIndex) fixed.Int26_6 {
	return s.kern[[2]GlyphIndex{prev, cur}]
}

func (s *stubSource) Close() error {
	s.closed++
	return nil
}

// squareContour returns a clockwise unit-scaled square fill contour with
// corner (x0, y0) and the given side length.
func squareContour(x0, y0, side float64) Contour {
	return Contour{
		Points: []vec2.T{
			{x0, y0},
			{x0, y0 + side},
			{x0 + side, y0 + side},
			{x0 + side, y0},
		},
		Clockwise: true,
	}
}

// squareGlyph scripts a glyph with one clockwise square contour and a
// fixed-point advance.
func squareGlyph(index GlyphIndex, side float64, advance fixed.Int26_6) stubGlyph {
	return stubGlyph{
		index: index,
		outline: GlyphOutline{
			Index:    index,
			Contours: []Contour{squareContour(0, 0, side)},
			Advance:  advance,
		},
	}
}

// fanTessellator is a PolygonTessellator double that fans the first contour
// of each unit from its first vertex. Correct for convex fill contours,
// holes are ignored.
type fanTessellator struct {
	contours []Contour
	units    int
}

func (f *fanTessellator) BeginPolygon() {
	f.contours = f.contours[:0]
}

func (f *fanTessellator) AddContour(c Contour, _ WindingRule) {
	f.contours = append(f.contours, c)
}

func (f *fanTessellator) EndPolygon() (*Cap, error) {
	f.units++
	if len(f.contours) == 0 {
		return &Cap{}, nil
	}
	outer := f.contours[0]
	out := &Cap{Vertices: outer.Points}
	for i := 1; i+1 < len(outer.Points); i++ {
		out.Triangles = append(out.Triangles, Tri{0, i, i + 1})
	}
	return out, nil
}
