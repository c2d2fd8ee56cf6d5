package geom

// SplitOverX computes the integer y at which the infinite line through a
// and b crosses the vertical line x = x0.
//
// Degenerate case (a.X == b.X): the line runs parallel to the cut, so there
// are either zero or infinitely many intersections; this returns the
// midpoint (a.Y+b.Y)/2 as a best-effort guess, with no bias correction for
// the integer truncation.
//
// Products are computed in int64 to stay correct on grids whose coordinate
// products would overflow a 32-bit intermediate.
func SplitOverX(a, b Coord, x0 int) int {
	if a.X == b.X {
		return (a.Y + b.Y) / 2
	}

	dx := int64(a.X - b.X)
	dy := int64(a.Y - b.Y)
	x0_64 := int64(x0)

	return int((dy*x0_64 + int64(a.Y)*dx - int64(a.X)*dy) / dx)
}

// SplitOverY computes the integer x at which the infinite line through a
// and b crosses the horizontal line y = y0. It is defined in terms of
// SplitOverX by swapping the X and Y coordinates of both endpoints.
func SplitOverY(a, b Coord, y0 int) int {
	swappedA := Coord{X: a.Y, Y: a.X}
	swappedB := Coord{X: b.Y, Y: b.X}

	return SplitOverX(swappedA, swappedB, y0)
}
