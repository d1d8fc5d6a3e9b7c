package textmesh

import "golang.org/x/image/math/fixed"

// layoutState carries the pen position and the cross-character spacing
// state of one text run. A fresh state is created at the start of every
// Generate call so no kerning or hinting state leaks between runs.
type layoutState struct {
	penX, penY float64

	prevGlyph    GlyphIndex
	prevRSBDelta fixed.Int26_6
}

// layout walks the text one character at a time and returns each
// character's contours positioned along the baseline starting at (x, y).
// Character order is semantically significant: kerning and advances
// accumulate sequentially, so the loop must not be reordered.
func (m *Mesher) layout(text string, x, y float64) []CharacterOutline {
	st := layoutState{penX: x, penY: y}

	characters := make([]CharacterOutline, 0, len(text))
	for _, r := range text {
		characters = append(characters, m.nextCharacterOutline(r, &st))
	}
	return characters
}

// nextCharacterOutline lays out a single character: it applies kerning
// against the previous glyph and the side-bearing drift correction, emits
// the glyph's contours at the pen position, and advances the pen.
//
// Failures are soft: a character whose glyph cannot be loaded yields an
// empty outline so the rest of the text still gets laid out. Each distinct
// failure kind is logged once per Mesher to avoid flooding on repeated
// missing glyphs.
func (m *Mesher) nextCharacterOutline(r rune, st *layoutState) CharacterOutline {
	ch := CharacterOutline{Character: r}

	gi := m.source.GlyphIndex(r)

	outline, err := m.source.GlyphOutline(gi, m.bezierSteps)
	if err != nil {
		m.logGlyphFailure("outline extraction failed", r, err)
		return ch
	}

	if st.prevGlyph != 0 {
		st.penX += fixedToFloat(m.source.Kern(st.prevGlyph, gi))
	}

	// Compensate rounding drift between consecutive hinted glyph
	// placements. The 32 threshold is half a 26.6 fixed-point unit.
	delta := st.prevRSBDelta - outline.LSBDelta
	if delta >= 32 {
		st.penX -= 1.0
	} else if delta < -32 {
		st.penX += 1.0
	}
	st.prevRSBDelta = outline.RSBDelta

	for i := range outline.Contours {
		ch.Contours = append(ch.Contours, outline.Contours[i].translate(st.penX, st.penY))
	}

	st.prevGlyph = gi
	st.penX += fixedToFloat(outline.Advance)

	return ch
}

// logGlyphFailure logs one per-glyph failure, at most once per distinct
// failure kind for the lifetime of the Mesher.
func (m *Mesher) logGlyphFailure(kind string, r rune, err error) {
	if _, seen := m.loggedFailures[kind]; seen {
		return
	}
	m.loggedFailures[kind] = struct{}{}
	Logger().Warn("textmesh: skipping glyph", "reason", kind, "char", string(r), "error", err)
}
