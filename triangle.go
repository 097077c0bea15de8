package gasket

// Triangle represents a triangle made of three points. The order of the points only matters for
// subdivision (it decides which midpoints are shared between which corners), not for rendering.
type Triangle struct {
	A, B, C Vector2
}

// NewTriangle returns a new Triangle composed of the three points given.
func NewTriangle(a, b, c Vector2) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Midpoints returns the midpoints of the Triangle's edges, in the order AB, AC, BC.
func (tri Triangle) Midpoints() (ab, ac, bc Vector2) {
	return Midpoint(tri.A, tri.B), Midpoint(tri.A, tri.C), Midpoint(tri.B, tri.C)
}

// Corners returns the three half-scale corner triangles of the Triangle, in the order they're
// subdivided: the A corner, then the C corner, then the B corner. The middle triangle formed by
// the three midpoints is left out; that's the hole in the gasket.
func (tri Triangle) Corners() [3]Triangle {
	ab, ac, bc := tri.Midpoints()
	return [3]Triangle{
		{A: tri.A, B: ab, C: ac},
		{A: tri.C, B: ac, C: bc},
		{A: tri.B, B: bc, C: ab},
	}
}

// Subdivide returns the points of the gasket generated from the Triangle at the given depth.
func (tri Triangle) Subdivide(depth int) []Vector2 {
	return Subdivide(tri.A, tri.B, tri.C, depth, make([]Vector2, 0, VertexCount(depth)))
}
