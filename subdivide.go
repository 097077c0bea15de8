package gasket

// Subdivide appends the points of a Sierpinski gasket built from the triangle (a, b, c) to out,
// returning the extended slice.
//
// At a depth of 0, the triangle itself is appended, winding order intact. Otherwise, the
// triangle is split at its edge midpoints and the three corner triangles (a, ab, ac), (c, ac, bc),
// and (b, bc, ab) are subdivided in that order with depth-1. The middle triangle is never emitted.
//
// Subdivide holds no state of its own; calling it twice with the same arguments appends the same
// points. A negative depth is treated as 0. The number of points appended is VertexCount(depth),
// so keep depth small (see MaxDepth).
func Subdivide(a, b, c Vector2, depth int, out []Vector2) []Vector2 {

	if depth <= 0 {
		return append(out, a, b, c)
	}

	for _, corner := range NewTriangle(a, b, c).Corners() {
		out = Subdivide(corner.A, corner.B, corner.C, depth-1, out)
	}

	return out

}

// VertexCount returns the number of points Subdivide produces for the given depth: 3 * 3^depth.
func VertexCount(depth int) int {
	count := 3
	for i := 0; i < depth; i++ {
		count *= 3
	}
	return count
}

// TriangleCount returns the number of triangles Subdivide produces for the given depth: 3^depth.
func TriangleCount(depth int) int {
	return VertexCount(depth) / 3
}

// VertexBuffer is a flat list of interleaved x, y vertex positions, ready to be uploaded to the GPU
// as tightly packed pairs of 32-bit floats. A VertexBuffer isn't modified after it's generated.
type VertexBuffer []float32

// Flatten interleaves the given points into a new VertexBuffer.
func Flatten(points []Vector2) VertexBuffer {
	vb := make(VertexBuffer, 0, len(points)*2)
	for _, p := range points {
		vb = append(vb, float32(p.X), float32(p.Y))
	}
	return vb
}

// Generate subdivides the Triangle provided to the given depth and flattens the result into a VertexBuffer.
func Generate(tri Triangle, depth int) VertexBuffer {
	return Flatten(tri.Subdivide(depth))
}

// Len returns the number of floats in the VertexBuffer.
func (vb VertexBuffer) Len() int {
	return len(vb)
}

// VertexCount returns the number of vertices in the VertexBuffer (two floats each).
func (vb VertexBuffer) VertexCount() int {
	return len(vb) / 2
}

// Vertex returns the vertex at the given index.
func (vb VertexBuffer) Vertex(index int) Vector2 {
	return Vector2{X: float64(vb[index*2]), Y: float64(vb[index*2+1])}
}

// Points returns the vertices of the VertexBuffer as a slice of Vector2s.
func (vb VertexBuffer) Points() []Vector2 {
	points := make([]Vector2, 0, vb.VertexCount())
	for i := 0; i < vb.VertexCount(); i++ {
		points = append(points, vb.Vertex(i))
	}
	return points
}

// Triangles returns the VertexBuffer grouped into triangles, three vertices each.
func (vb VertexBuffer) Triangles() []Triangle {
	tris := make([]Triangle, 0, vb.VertexCount()/3)
	for i := 0; i+2 < vb.VertexCount(); i += 3 {
		tris = append(tris, NewTriangle(vb.Vertex(i), vb.Vertex(i+1), vb.Vertex(i+2)))
	}
	return tris
}
