package textmesh

import "testing"

// holeContour returns a counter-clockwise square hole contour.
func holeContour(x0, y0, side float64) Contour {
	c := squareContour(x0, y0, side)
	c.reverse()
	return c
}

func TestIsHoleOf(t *testing.T) {
	outer := squareContour(0, 0, 10)

	tests := []struct {
		name      string
		candidate Contour
		want      bool
	}{
		{"nested opposite winding", holeContour(2, 2, 4), true},
		{"nested same winding", squareContour(2, 2, 4), false},
		{"outside opposite winding", holeContour(20, 20, 4), false},
		{"partially outside", holeContour(8, 8, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHoleOf(&tt.candidate, &outer); got != tt.want {
				t.Errorf("isHoleOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsHoleOf_SelfIsNotAHole(t *testing.T) {
	ch := CharacterOutline{Contours: []Contour{squareContour(0, 0, 10)}}
	if isHoleOf(&ch.Contours[0], &ch.Contours[0]) {
		t.Error("a contour must not classify as its own hole")
	}
}

func TestNormalizeFillConvention_TrueTypeOrder(t *testing.T) {
	// Clockwise outer with counter-clockwise hole: already in convention.
	ch := CharacterOutline{Contours: []Contour{
		squareContour(0, 0, 10),
		holeContour(2, 2, 4),
	}}

	if normalizeFillConvention(&ch) {
		t.Error("convention-conforming character should not be reoriented")
	}
	if !ch.Contours[0].Clockwise || ch.Contours[1].Clockwise {
		t.Error("windings must be untouched for conforming characters")
	}
}

func TestNormalizeFillConvention_InvertedOrder(t *testing.T) {
	// Counter-clockwise outer with clockwise hole: the CFF convention.
	ch := CharacterOutline{Contours: []Contour{
		holeContour(0, 0, 10),
		squareContour(2, 2, 4),
	}}

	if !normalizeFillConvention(&ch) {
		t.Fatal("inverted character should be reoriented")
	}
	if !ch.Contours[0].Clockwise {
		t.Error("top-level contour should be clockwise after reorientation")
	}
	if ch.Contours[1].Clockwise {
		t.Error("nested contour should be counter-clockwise after reorientation")
	}
	// The flags must agree with the actual point order.
	if ch.Contours[0].SignedArea() >= 0 {
		t.Error("reorientation must reverse the point order, not only the flag")
	}
}

func TestNormalizeFillConvention_Empty(t *testing.T) {
	ch := CharacterOutline{}
	if normalizeFillConvention(&ch) {
		t.Error("empty character should not be reoriented")
	}
}

func TestContainedByAny(t *testing.T) {
	contours := []Contour{
		squareContour(0, 0, 10),
		holeContour(2, 2, 4),
		squareContour(20, 0, 3),
	}

	if containedByAny(0, contours) {
		t.Error("outer contour is not contained by anything")
	}
	if !containedByAny(1, contours) {
		t.Error("hole is contained by the outer contour")
	}
	if containedByAny(2, contours) {
		t.Error("disjoint contour is not contained by anything")
	}
}
