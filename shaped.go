package textmesh

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GenerateShaped is an opt-in alternative to Generate that positions glyphs
// with go-text/typesetting's HarfBuzz shaper instead of the per-character
// layout engine. Shaping applies kerning pairs, ligatures and contextual
// alternates, at the cost of losing the one-rune-per-outline mapping (a
// ligature produces a single character outline).
//
// The Mesher's outline source must expose the raw font data; the default
// sfnt-backed source does, custom sources that don't make GenerateShaped
// fail with ErrShapingUnsupported.
func (m *Mesher) GenerateShaped(text string, x, y, depth float64) (*Mesh, error) {
	mesh := NewMesh()
	if err := m.GenerateShapedInto(mesh, text, x, y, depth); err != nil {
		return nil, err
	}
	return mesh, nil
}

// GenerateShapedInto is like GenerateShaped but writes into a
// caller-supplied mesh.
func (m *Mesher) GenerateShapedInto(mesh *Mesh, text string, x, y, depth float64) error {
	if !m.ready || m.source == nil {
		return ErrNotReady
	}
	src, ok := m.source.(shapingSource)
	if !ok {
		return ErrShapingUnsupported
	}

	characters, err := m.shapedLayout(src, text, x, y)
	if err != nil {
		return err
	}
	return m.assemble(mesh, characters, depth)
}

// shapedLayout shapes the text with HarfBuzz and extracts each positioned
// glyph's contours through the Mesher's outline source, so shaped and
// unshaped generation share the same curve flattening.
func (m *Mesher) shapedLayout(src shapingSource, text string, x, y float64) ([]CharacterOutline, error) {
	face, err := font.ParseTTF(bytes.NewReader(src.FontData()))
	if err != nil {
		return nil, fmt.Errorf("textmesh: failed to parse font for shaping: %w", err)
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      src.Size(),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := &shaping.HarfbuzzShaper{}
	output := shaper.Shape(input)

	penX, penY := x, y
	characters := make([]CharacterOutline, 0, len(output.Glyphs))
	for _, g := range output.Glyphs {
		ch := CharacterOutline{Character: clusterRune(runes, g.TextIndex())}

		outline, err := m.source.GlyphOutline(GlyphIndex(uint16(g.GlyphID)), m.bezierSteps)
		if err != nil {
			m.logGlyphFailure("shaped outline extraction failed", ch.Character, err)
			penX += fixedToFloat(g.Advance)
			characters = append(characters, ch)
			continue
		}

		gx := penX + fixedToFloat(g.XOffset)
		gy := penY + fixedToFloat(g.YOffset)
		for i := range outline.Contours {
			ch.Contours = append(ch.Contours, outline.Contours[i].translate(gx, gy))
		}
		characters = append(characters, ch)

		penX += fixedToFloat(g.Advance)
	}
	return characters, nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs before
// shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// clusterRune maps a shaped glyph's cluster index back to a rune, falling
// back to the replacement character for out-of-range clusters.
func clusterRune(runes []rune, idx int) rune {
	if idx >= 0 && idx < len(runes) {
		return runes[idx]
	}
	return '�'
}
