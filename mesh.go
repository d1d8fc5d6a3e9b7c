package textmesh

import (
	"fmt"
	"io"

	"github.com/ungerik/go3d/float64/vec3"
)

// Tri indexes three vertices of a Mesh forming one triangle face.
type Tri [3]int

// Mesh accumulates vertex positions and triangle index triples. It is a
// render mesh, not a minimal manifold: vertices are not deduplicated, every
// triangle owns its three vertex instances.
type Mesh struct {
	Vertices  []vec3.T
	Triangles []Tri
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v vec3.T) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddTriangle appends a triangle referencing three vertex indices.
func (m *Mesh) AddTriangle(a, b, c int) {
	m.Triangles = append(m.Triangles, Tri{a, b, c})
}

// addFace appends a triangle with three fresh vertex instances.
func (m *Mesh) addFace(a, b, c vec3.T) {
	m.AddTriangle(m.AddVertex(a), m.AddVertex(b), m.AddVertex(c))
}

// NumVertices returns the number of vertex instances in the mesh.
func (m *Mesh) NumVertices() int {
	return len(m.Vertices)
}

// NumTriangles returns the number of triangle faces in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Triangles)
}

// Bounds returns the axis-aligned bounding box of all vertices. For an
// empty mesh both corners are the zero vector.
func (m *Mesh) Bounds() (min, max vec3.T) {
	if len(m.Vertices) == 0 {
		return vec3.T{}, vec3.T{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max
}

// WriteOBJ writes the mesh in Wavefront OBJ format. OBJ vertex indices are
// 1-based.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", v[0], v[1], v[2]); err != nil {
			return fmt.Errorf("textmesh: writing OBJ vertex: %w", err)
		}
	}
	for _, t := range m.Triangles {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1); err != nil {
			return fmt.Errorf("textmesh: writing OBJ face: %w", err)
		}
	}
	return nil
}
