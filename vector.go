package gasket

import (
	"fmt"
	"math"
)

// Vector2 represents a 2D point in normalized device coordinates, where both X and Y are expected to
// range from -1 to 1. Like most small math types here, Vector2 is a value type; functions that "modify"
// a Vector2 return modified copies, so method-chaining works as expected.
type Vector2 struct {
	X float64 // The X (1st) component of the Vector2
	Y float64 // The Y (2nd) component of the Vector2
}

// NewVector2 creates a new Vector2 with the specified x and y components.
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Distance returns the distance from the calling Vector2 to the other Vector2 provided.
func (vec Vector2) Distance(other Vector2) float64 {
	return math.Hypot(vec.X-other.X, vec.Y-other.Y)
}

func (vec Vector2) String() string {
	return fmt.Sprintf("{%.4f, %.4f}", vec.X, vec.Y)
}

// Midpoint returns the point halfway between p and q, computed as ((p.X+q.X)/2, (p.Y+q.Y)/2).
func Midpoint(p, q Vector2) Vector2 {
	return Vector2{
		X: (p.X + q.X) / 2,
		Y: (p.Y + q.Y) / 2,
	}
}

// Vector4 represents a clip-space position, as output by a vertex stage.
type Vector4 struct {
	X, Y, Z, W float64
}

// ClipPosition is the vertex stage used to draw a gasket: it passes the 2D position through
// untransformed, returning (x, y, 0, 1).
func ClipPosition(point Vector2) Vector4 {
	return Vector4{X: point.X, Y: point.Y, Z: 0, W: 1}
}

// NDC returns the normalized device coordinates of the clip-space position (the perspective divide).
// A W of 0 returns the X and Y components as-is.
func (vec Vector4) NDC() Vector2 {
	if vec.W == 0 {
		return Vector2{X: vec.X, Y: vec.Y}
	}
	return Vector2{X: vec.X / vec.W, Y: vec.Y / vec.W}
}
