package textmesh

import (
	"strings"
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

func TestMesh_AddVertexAddTriangle(t *testing.T) {
	m := NewMesh()

	a := m.AddVertex(vec3.T{0, 0, 0})
	b := m.AddVertex(vec3.T{1, 0, 0})
	c := m.AddVertex(vec3.T{0, 1, 0})
	m.AddTriangle(a, b, c)

	if m.NumVertices() != 3 {
		t.Errorf("NumVertices() = %d, want 3", m.NumVertices())
	}
	if m.NumTriangles() != 1 {
		t.Errorf("NumTriangles() = %d, want 1", m.NumTriangles())
	}
	if m.Triangles[0] != (Tri{0, 1, 2}) {
		t.Errorf("Triangles[0] = %v, want {0 1 2}", m.Triangles[0])
	}
}

func TestMesh_AddFaceDoesNotDeduplicate(t *testing.T) {
	m := NewMesh()
	v := vec3.T{1, 2, 3}

	m.addFace(v, v, v)
	m.addFace(v, v, v)

	// Every triangle owns three fresh vertex instances.
	if m.NumVertices() != 6 {
		t.Errorf("NumVertices() = %d, want 6", m.NumVertices())
	}
	if m.NumTriangles() != 2 {
		t.Errorf("NumTriangles() = %d, want 2", m.NumTriangles())
	}
}

func TestMesh_Bounds(t *testing.T) {
	m := NewMesh()
	m.AddVertex(vec3.T{-1, 5, 2})
	m.AddVertex(vec3.T{3, -2, 7})
	m.AddVertex(vec3.T{0, 0, 0})

	min, max := m.Bounds()
	if min != (vec3.T{-1, -2, 0}) {
		t.Errorf("Bounds() min = %v, want (-1, -2, 0)", min)
	}
	if max != (vec3.T{3, 5, 7}) {
		t.Errorf("Bounds() max = %v, want (3, 5, 7)", max)
	}
}

func TestMesh_BoundsEmpty(t *testing.T) {
	min, max := NewMesh().Bounds()
	if min != (vec3.T{}) || max != (vec3.T{}) {
		t.Errorf("empty mesh Bounds() = %v, %v, want zero vectors", min, max)
	}
}

func TestMesh_WriteOBJ(t *testing.T) {
	m := NewMesh()
	m.addFace(vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{0, 1, 0})

	var sb strings.Builder
	if err := m.WriteOBJ(&sb); err != nil {
		t.Fatalf("WriteOBJ() failed: %v", err)
	}

	got := sb.String()
	want := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if got != want {
		t.Errorf("WriteOBJ() = %q, want %q", got, want)
	}
}
