package frogger

// Overlaps reports whether two bodies share a row and their horizontal
// extents [x, x+width) intersect. Bodies only ever move within fixed rows,
// so rows must match exactly rather than merely intersect.
func Overlaps(a, b Body) bool {
	if a.Pos.Y != b.Pos.Y {
		return false
	}
	return a.Pos.X < b.Right() && b.Pos.X < a.Right()
}

// CollidesWithAny reports whether any body in any lane overlaps the frog.
func CollidesWithAny(frog Body, lanes []Lane) bool {
	for _, lane := range lanes {
		for _, b := range lane {
			if Overlaps(frog, b) {
				return true
			}
		}
	}
	return false
}

// overlapsKind is CollidesWithAny restricted to bodies of one kind.
func overlapsKind(frog Body, lanes []Lane, kind Kind) bool {
	for _, lane := range lanes {
		for _, b := range lane {
			if b.Kind == kind && Overlaps(frog, b) {
				return true
			}
		}
	}
	return false
}
