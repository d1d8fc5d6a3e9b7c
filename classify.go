package textmesh

// isHoleOf reports whether candidate is a hole nested inside outer. A
// contour qualifies iff it is a different contour with the opposite winding
// direction and every one of its points lies inside outer. Boundary-touching
// points count as inside, so holes that share subdivision points with their
// fill contour are still recognized.
//
// The scan over candidate points is O(points per contour) and the caller
// runs it for every contour pair of one character. Glyphs have few contours
// (typically 1-4), so the quadratic scan is fine without spatial indexing.
func isHoleOf(candidate, outer *Contour) bool {
	if candidate == outer {
		return false
	}
	if candidate.Clockwise == outer.Clockwise {
		return false
	}
	return outer.encloses(candidate)
}

// normalizeFillConvention validates the clockwise-fill convention for one
// character. TrueType outlines traverse fill contours clockwise (in y-up
// coordinates) and holes counter-clockwise, but CFF-flavored fonts use the
// opposite orientation. The check finds the character's top-level contours
// (those not contained in any other contour) and, if none of them is
// clockwise, reverses every contour so the rest of the pipeline sees the
// TrueType convention. Returns true when the character was reoriented.
func normalizeFillConvention(ch *CharacterOutline) bool {
	if len(ch.Contours) == 0 {
		return false
	}

	hasTopLevel := false
	for i := range ch.Contours {
		if containedByAny(i, ch.Contours) {
			continue
		}
		hasTopLevel = true
		if ch.Contours[i].Clockwise {
			return false
		}
	}
	if !hasTopLevel {
		// Mutual containment can only happen for degenerate outlines;
		// leave them alone.
		return false
	}

	for i := range ch.Contours {
		ch.Contours[i].reverse()
	}
	return true
}

// containedByAny reports whether contour i lies inside any other contour of
// the character.
func containedByAny(i int, contours []Contour) bool {
	for j := range contours {
		if j == i {
			continue
		}
		if contours[j].encloses(&contours[i]) {
			return true
		}
	}
	return false
}
