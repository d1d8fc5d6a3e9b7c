package textmesh

import "golang.org/x/image/math/fixed"

// GlyphIndex is a font-specific glyph identifier. Index 0 is the missing
// glyph (.notdef).
type GlyphIndex uint16

// GlyphOutline is one glyph's flattened outline plus the fixed-point
// spacing metrics the layout engine needs. Contours are positioned relative
// to the glyph origin on the baseline.
type GlyphOutline struct {
	// Index is the glyph this outline belongs to.
	Index GlyphIndex

	// Contours are the glyph's closed outline loops, in discovery order.
	// Empty for glyphs without an outline, such as the space.
	Contours []Contour

	// Advance is the horizontal advance width in 26.6 fixed-point units.
	Advance fixed.Int26_6

	// LSBDelta and RSBDelta are the hinting side-bearing deltas in 26.6
	// fixed-point units. Backends that do not hint report zero, which makes
	// the layout engine's drift correction a no-op.
	LSBDelta fixed.Int26_6
	RSBDelta fixed.Int26_6
}

// OutlineSource resolves characters to outline contours and spacing
// metrics. It abstracts the glyph rasterizer so the mesh pipeline can be
// exercised without a real font file.
//
// Implementations are not required to be safe for concurrent use; a Mesher
// serializes all access to its source.
type OutlineSource interface {
	// GlyphIndex resolves a rune to its glyph index, 0 when the font has no
	// glyph for it.
	GlyphIndex(r rune) GlyphIndex

	// GlyphOutline loads one glyph's outline, approximating each curved
	// segment with steps straight subdivisions.
	GlyphOutline(gi GlyphIndex, steps int) (GlyphOutline, error)

	// Kern returns the horizontal kerning adjustment between two glyphs in
	// 26.6 fixed-point units, 0 when the font declares no kerning for the
	// pair or does not support kerning at all.
	Kern(prev, cur GlyphIndex) fixed.Int26_6

	// Close releases the source's resources. It must be idempotent.
	Close() error
}

// shapingSource is implemented by outline sources that can back HarfBuzz
// shaping: they expose the raw font file and the pixel size outlines are
// extracted at.
type shapingSource interface {
	FontData() []byte
	Size() fixed.Int26_6
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
