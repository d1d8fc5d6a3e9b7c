package textmesh

import (
	"fmt"
	"os"

	"github.com/ungerik/go3d/float64/vec2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntSource is the default OutlineSource, backed by
// golang.org/x/image/font/sfnt. Outlines are unhinted, so both side-bearing
// deltas are always zero.
type sfntSource struct {
	font *sfnt.Font
	data []byte
	ppem fixed.Int26_6

	// buffer is reused across sfnt operations.
	buffer sfnt.Buffer
}

// NewFontSource parses font data (TTF or OTF) into an OutlineSource that
// extracts outlines at the given pixel size. The data slice is copied
// internally and can be reused after this call.
func NewFontSource(data []byte, sizePx int) (OutlineSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if sizePx <= 0 {
		return nil, fmt.Errorf("textmesh: invalid font size %d", sizePx)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("textmesh: failed to parse font: %w", err)
	}

	return &sfntSource{
		font: f,
		data: dataCopy,
		ppem: fixed.I(sizePx),
	}, nil
}

// NewFontSourceFromFile loads an OutlineSource from a font file path.
func NewFontSourceFromFile(path string, sizePx int) (OutlineSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textmesh: failed to read font file: %w", err)
	}
	return NewFontSource(data, sizePx)
}

// GlyphIndex implements OutlineSource.
func (s *sfntSource) GlyphIndex(r rune) GlyphIndex {
	gi, err := s.font.GlyphIndex(&s.buffer, r)
	if err != nil {
		return 0
	}
	return GlyphIndex(gi)
}

// GlyphOutline implements OutlineSource. Coordinates are converted from the
// rasterizer's 26.6 fixed-point, y-down space to float64 y-up mesh space.
func (s *sfntSource) GlyphOutline(gi GlyphIndex, steps int) (GlyphOutline, error) {
	if steps < 1 {
		steps = 1
	}

	segments, err := s.font.LoadGlyph(&s.buffer, sfnt.GlyphIndex(gi), s.ppem, nil)
	if err != nil {
		return GlyphOutline{}, fmt.Errorf("textmesh: failed to load glyph %d: %w", gi, err)
	}

	out := GlyphOutline{
		Index:    gi,
		Contours: flattenSegments(segments, steps),
	}

	advance, err := s.font.GlyphAdvance(&s.buffer, sfnt.GlyphIndex(gi), s.ppem, font.HintingNone)
	if err == nil {
		out.Advance = advance
	}
	return out, nil
}

// Kern implements OutlineSource. Fonts without kerning data report zero for
// every pair.
func (s *sfntSource) Kern(prev, cur GlyphIndex) fixed.Int26_6 {
	k, err := s.font.Kern(&s.buffer, sfnt.GlyphIndex(prev), sfnt.GlyphIndex(cur), s.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return k
}

// Close implements OutlineSource. It is safe to call multiple times.
func (s *sfntSource) Close() error {
	s.font = nil
	s.data = nil
	return nil
}

// FontData exposes the raw font file for HarfBuzz shaping.
func (s *sfntSource) FontData() []byte {
	return s.data
}

// Size returns the pixel size outlines are extracted at.
func (s *sfntSource) Size() fixed.Int26_6 {
	return s.ppem
}

// flattenSegments converts sfnt outline segments into closed polygonal
// contours, subdividing each curved segment into steps straight pieces.
// Each contour's winding direction is computed from its signed area rather
// than trusted from the backend.
func flattenSegments(segments []sfnt.Segment, steps int) []Contour {
	var contours []Contour
	var points []vec2.T
	var pen vec2.T

	closeContour := func() {
		if len(points) > 1 && approxEqual(points[0], points[len(points)-1]) {
			points = points[:len(points)-1]
		}
		if len(points) >= 3 {
			c := Contour{Points: points}
			c.Clockwise = c.SignedArea() < 0
			contours = append(contours, c)
		}
		points = nil
	}

	push := func(p vec2.T) {
		if len(points) > 0 && approxEqual(points[len(points)-1], p) {
			return
		}
		points = append(points, p)
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			closeContour()
			pen = segPoint(seg.Args[0])
			push(pen)

		case sfnt.SegmentOpLineTo:
			pen = segPoint(seg.Args[0])
			push(pen)

		case sfnt.SegmentOpQuadTo:
			ctrl := segPoint(seg.Args[0])
			end := segPoint(seg.Args[1])
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				push(quadPoint(pen, ctrl, end, t))
			}
			pen = end

		case sfnt.SegmentOpCubeTo:
			ctrl1 := segPoint(seg.Args[0])
			ctrl2 := segPoint(seg.Args[1])
			end := segPoint(seg.Args[2])
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				push(cubicPoint(pen, ctrl1, ctrl2, end, t))
			}
			pen = end
		}
	}
	closeContour()

	return contours
}

// segPoint converts a 26.6 fixed-point, y-down point to float64 y-up space.
func segPoint(p fixed.Point26_6) vec2.T {
	return vec2.T{float64(p.X) / 64.0, -float64(p.Y) / 64.0}
}

// quadPoint evaluates a quadratic bezier at parameter t.
func quadPoint(p0, p1, p2 vec2.T, t float64) vec2.T {
	u := 1 - t
	return vec2.T{
		u*u*p0[0] + 2*u*t*p1[0] + t*t*p2[0],
		u*u*p0[1] + 2*u*t*p1[1] + t*t*p2[1],
	}
}

// cubicPoint evaluates a cubic bezier at parameter t.
func cubicPoint(p0, p1, p2, p3 vec2.T, t float64) vec2.T {
	u := 1 - t
	return vec2.T{
		u*u*u*p0[0] + 3*u*u*t*p1[0] + 3*u*t*t*p2[0] + t*t*t*p3[0],
		u*u*u*p0[1] + 3*u*u*t*p1[1] + 3*u*t*t*p2[1] + t*t*t*p3[1],
	}
}

// approxEqual reports whether two points coincide within the package
// epsilon.
func approxEqual(a, b vec2.T) bool {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx+dy*dy <= containsEpsilon*containsEpsilon
}
