package textmesh

import (
	"github.com/ungerik/go3d/float64/vec2"
)

// WindingRule selects how a tessellation backend decides which regions of
// an overlapping contour set are filled.
type WindingRule int

const (
	// WindingNonzero fills regions with a nonzero winding number.
	WindingNonzero WindingRule = iota

	// WindingOdd fills regions with an odd winding number.
	WindingOdd

	// WindingPositive fills regions with a positive winding number.
	WindingPositive
)

// String returns a string representation of the winding rule.
func (r WindingRule) String() string {
	switch r {
	case WindingNonzero:
		return "Nonzero"
	case WindingOdd:
		return "Odd"
	case WindingPositive:
		return "Positive"
	default:
		return "Unknown"
	}
}

// Cap is one triangulated z-level face of a glyph region: the flat polygon
// spanned by a fill contour minus its holes. Triangle triples index into
// Vertices.
type Cap struct {
	Vertices  []vec2.T
	Triangles []Tri
}

// PolygonTessellator triangulates one fill region at a time. A
// tessellation unit is opened with BeginPolygon, fed the fill contour and
// its hole contours with AddContour, and closed with EndPolygon, which
// returns the triangulated cap.
//
// Implementations are not required to be safe for concurrent use; a Mesher
// serializes all access to its tessellator.
type PolygonTessellator interface {
	// BeginPolygon starts a new tessellation unit, discarding any contours
	// from a previous unfinished unit.
	BeginPolygon()

	// AddContour declares one contour of the current unit under the given
	// winding rule.
	AddContour(c Contour, rule WindingRule)

	// EndPolygon finishes the unit and returns the triangulated cap.
	EndPolygon() (*Cap, error)
}
