package textmesh

import (
	"math"

	"github.com/ungerik/go3d/float64/vec2"
)

// containsEpsilon is the slack used when testing points against contour
// edges. Boundary-touching points count as inside, so shared edges produced
// by curve subdivision do not open gaps between a fill and its holes.
const containsEpsilon = 1e-9

// Contour is one closed loop of a glyph outline, approximated by straight
// segments. Points are stored in traversal order without a duplicate
// closing point; the edge from the last point back to the first is implied.
type Contour struct {
	// Points is the closed polygon, at least 3 points.
	Points []vec2.T

	// Clockwise records the winding direction of Points. Fill contours are
	// clockwise, hole contours counter-clockwise.
	Clockwise bool
}

// SignedArea returns the shoelace area of the contour. In the y-up
// coordinate space used throughout this package, counter-clockwise contours
// have positive area and clockwise contours negative area.
func (c *Contour) SignedArea() float64 {
	n := len(c.Points)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		p := c.Points[i]
		q := c.Points[(i+1)%n]
		area += p[0]*q[1] - q[0]*p[1]
	}
	return area / 2
}

// Contains reports whether p lies inside the contour, using a ray-casting
// test that handles non-convex polygons. Points on the boundary count as
// inside.
func (c *Contour) Contains(p vec2.T) bool {
	n := len(c.Points)
	if n < 3 {
		return false
	}

	inside := false
	for i := 0; i < n; i++ {
		a := c.Points[i]
		b := c.Points[(i+1)%n]

		if onSegment(p, a, b) {
			return true
		}

		// Cast a ray towards +x and count edge crossings.
		if (a[1] > p[1]) != (b[1] > p[1]) {
			t := (p[1] - a[1]) / (b[1] - a[1])
			if a[0]+t*(b[0]-a[0]) > p[0] {
				inside = !inside
			}
		}
	}
	return inside
}

// onSegment reports whether p lies on the segment from a to b.
func onSegment(p, a, b vec2.T) bool {
	cross := (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
	if math.Abs(cross) > containsEpsilon {
		return false
	}
	dot := (p[0]-a[0])*(b[0]-a[0]) + (p[1]-a[1])*(b[1]-a[1])
	if dot < -containsEpsilon {
		return false
	}
	lenSq := (b[0]-a[0])*(b[0]-a[0]) + (b[1]-a[1])*(b[1]-a[1])
	return dot <= lenSq+containsEpsilon
}

// encloses reports whether every point of other lies inside c.
func (c *Contour) encloses(other *Contour) bool {
	for _, p := range other.Points {
		if !c.Contains(p) {
			return false
		}
	}
	return true
}

// reverse flips the traversal order of the contour in place, toggling its
// winding direction.
func (c *Contour) reverse() {
	for i, j := 0, len(c.Points)-1; i < j; i, j = i+1, j-1 {
		c.Points[i], c.Points[j] = c.Points[j], c.Points[i]
	}
	c.Clockwise = !c.Clockwise
}

// translate returns a copy of the contour offset by (dx, dy).
func (c *Contour) translate(dx, dy float64) Contour {
	pts := make([]vec2.T, len(c.Points))
	for i, p := range c.Points {
		pts[i] = vec2.T{p[0] + dx, p[1] + dy}
	}
	return Contour{Points: pts, Clockwise: c.Clockwise}
}

// CharacterOutline is the set of contours belonging to one laid-out
// character, in the order the outline backend discovered them. It is empty
// for characters without an outline (e.g. spaces) and for characters whose
// glyph failed to load.
type CharacterOutline struct {
	// Character is the rune this outline belongs to.
	Character rune

	// Contours are the character's closed outline loops, positioned in the
	// common baseline coordinate space.
	Contours []Contour
}

// IsEmpty returns true if the character produced no contours.
func (c *CharacterOutline) IsEmpty() bool {
	return len(c.Contours) == 0
}
