package textmesh

import (
	"fmt"

	libtess2 "github.com/hajimehoshi/go-libtess2"
	"github.com/ungerik/go3d/float64/vec2"
)

// libtessTessellator is the default PolygonTessellator, backed by
// github.com/hajimehoshi/go-libtess2. The backend resolves fills with the
// even-odd rule over all contours of a unit; for the input the cap driver
// produces (one fill contour plus disjoint holes nested inside it) this
// yields the same region as the declared nonzero/odd rules, so the rule
// arguments are accepted but not distinguished.
type libtessTessellator struct {
	contours [][]libtess2.Vertex
}

// NewLibtessTessellator creates the libtess2-backed tessellator.
func NewLibtessTessellator() PolygonTessellator {
	return &libtessTessellator{}
}

// BeginPolygon implements PolygonTessellator.
func (t *libtessTessellator) BeginPolygon() {
	t.contours = t.contours[:0]
}

// AddContour implements PolygonTessellator.
func (t *libtessTessellator) AddContour(c Contour, _ WindingRule) {
	vs := make([]libtess2.Vertex, len(c.Points))
	for i, p := range c.Points {
		vs[i] = libtess2.Vertex{X: float32(p[0]), Y: float32(p[1])}
	}
	t.contours = append(t.contours, vs)
}

// EndPolygon implements PolygonTessellator.
func (t *libtessTessellator) EndPolygon() (*Cap, error) {
	contours := make([]libtess2.Contour, len(t.contours))
	for i, c := range t.contours {
		contours[i] = libtess2.Contour(c)
	}
	t.contours = t.contours[:0]

	elements, vertices, err := libtess2.Tesselate(contours, libtess2.WindingRuleOdd)
	if err != nil {
		return nil, fmt.Errorf("textmesh: tessellation failed: %w", err)
	}

	out := &Cap{
		Vertices:  make([]vec2.T, len(vertices)),
		Triangles: make([]Tri, 0, len(elements)/3),
	}
	for i, v := range vertices {
		out.Vertices[i] = vec2.T{float64(v.X), float64(v.Y)}
	}
	for i := 0; i+2 < len(elements); i += 3 {
		out.Triangles = append(out.Triangles, Tri{elements[i], elements[i+1], elements[i+2]})
	}
	return out, nil
}
