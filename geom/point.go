package geom

import "fmt"

// Point is an ordered pair of x/y coordinates in the plane.
type Point[C Number] struct {
	X, Y C
}

// NewPoint builds a Point from its coordinates.
func NewPoint[C Number](x, y C) Point[C] {
	return Point[C]{X: x, Y: y}
}

// Less gives Point a total (lexicographic) order, needed anywhere a point
// sequence must be walked in a deterministic min/max order (BoundingBox).
func (p Point[C]) Less(other Point[C]) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// String renders p as "Point { x, y }".
func (p Point[C]) String() string {
	return fmt.Sprintf("Point { %v, %v }", p.X, p.Y)
}

// Translate returns p shifted by (dx, dy).
func (p Point[C]) Translate(dx, dy C) Point[C] {
	return Point[C]{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance between p and q.
func Distance[C Number](p, q Point[C]) C {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return sqrt(dx*dx + dy*dy)
}
