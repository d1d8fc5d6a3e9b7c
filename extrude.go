package textmesh

import (
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// extrudeSideWalls emits the wall strip connecting one contour's z=0 rim to
// its z=depth rim: two triangles per boundary edge, with wraparound from
// the last point to the first. The vertex order (a+depth, b, a) /
// (a+depth, b+depth, b) gives outward-facing normals for clockwise fill
// contours and counter-clockwise holes.
func extrudeSideWalls(mesh *Mesh, c *Contour, depth float64) {
	n := len(c.Points)
	for i := 0; i < n; i++ {
		a := c.Points[i]
		b := c.Points[(i+1)%n]

		a0 := vec3.T{a[0], a[1], 0}
		b0 := vec3.T{b[0], b[1], 0}
		a1 := vec3.T{a[0], a[1], depth}
		b1 := vec3.T{b[0], b[1], depth}

		mesh.addFace(a1, b0, a0)
		mesh.addFace(a1, b1, b0)
	}
}

// extrudeCap emits one tessellated cap at both z levels: the bottom face at
// z=0 winding downward and the top face at z=depth winding upward. The
// orientation of each triangle is derived from its signed area, so the
// faces point outward regardless of the winding the tessellation backend
// emits.
func extrudeCap(mesh *Mesh, c *Cap, depth float64) {
	for _, t := range c.Triangles {
		va := c.Vertices[t[0]]
		vb := c.Vertices[t[1]]
		vc := c.Vertices[t[2]]

		// A counter-clockwise triangle in the xy plane has a +z normal;
		// swap two vertices so the bottom face points down.
		if triangleArea2(va, vb, vc) > 0 {
			vb, vc = vc, vb
		}

		mesh.addFace(
			vec3.T{va[0], va[1], 0},
			vec3.T{vb[0], vb[1], 0},
			vec3.T{vc[0], vc[1], 0},
		)
		mesh.addFace(
			vec3.T{vc[0], vc[1], depth},
			vec3.T{vb[0], vb[1], depth},
			vec3.T{va[0], va[1], depth},
		)
	}
}

// triangleArea2 returns twice the signed area of the triangle (a, b, c),
// positive for counter-clockwise winding.
func triangleArea2(a, b, c vec2.T) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
}
