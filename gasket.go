// Package gasket renders a Sierpinski gasket: a triangle is recursively subdivided into its three
// corner triangles down to a fixed depth, the resulting vertices are uploaded once to a GPU buffer,
// and a single draw call renders them through a minimal shader pair.
//
// The geometry generation is pure and backend-agnostic; drawing goes through a Backend, of which
// two are provided: ebitenrender (Ebitengine) and glrender (OpenGL 3.3 core through GLFW).
package gasket

// DefaultDepth is the recursion depth the gasket is rendered at by default.
const DefaultDepth = 4

// MaxTriangleCount is the number of triangles that fit in a single uint16-indexed batch (65535 / 3).
const MaxTriangleCount = 21845

// MaxDepth is the deepest subdivision that stays within MaxTriangleCount (3^9 = 19683 triangles).
const MaxDepth = 9

// DefaultTriangle returns the triangle the gasket is generated from by default, spanning the
// whole viewport: a (-1, -1), b (0, 1), c (1, -1).
func DefaultTriangle() Triangle {
	return NewTriangle(
		NewVector2(-1, -1),
		NewVector2(0, 1),
		NewVector2(1, -1),
	)
}
