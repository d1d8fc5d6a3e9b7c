package textmesh

import "errors"

// Sentinel errors for the textmesh package.
var (
	// ErrNotReady is returned by Generate when the instance has no
	// successfully loaded font.
	ErrNotReady = errors.New("textmesh: mesher is not ready (no font loaded)")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("textmesh: empty font data")

	// ErrNoContours is returned when layout produced no contours across the
	// whole text, e.g. for empty or whitespace-only input.
	ErrNoContours = errors.New("textmesh: no contours generated from the text")

	// ErrShapingUnsupported is returned by GenerateShaped when the outline
	// source does not expose the raw font data needed for shaping.
	ErrShapingUnsupported = errors.New("textmesh: outline source does not support shaping")
)
