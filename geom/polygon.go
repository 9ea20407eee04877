package geom

import (
	"fmt"
	"strings"
)

// SimplePolygon is an ordered sequence of vertices forming a closed
// piecewise-linear curve, listed in clockwise order by convention. The
// library does not verify non-self-intersection; that is the caller's
// responsibility. A polygon with fewer than 3 vertices is treated as empty
// by SimplePolygonContains.
type SimplePolygon[C Number] struct {
	vertices []Point[C]
}

// NewSimplePolygon builds a SimplePolygon from its vertex sequence.
func NewSimplePolygon[C Number](vertices []Point[C]) SimplePolygon[C] {
	return SimplePolygon[C]{vertices: vertices}
}

// Empty reports whether the polygon has no vertices.
func (p SimplePolygon[C]) Empty() bool {
	return len(p.vertices) == 0
}

// Boundary returns the vertex sequence, or ErrEmpty if the polygon has none.
func (p SimplePolygon[C]) Boundary() ([]Point[C], error) {
	if p.Empty() {
		return nil, ErrEmpty
	}
	return p.vertices, nil
}

// Vertex returns the i-th vertex, wrapping modulo the vertex count. Used
// internally by the ray-casting and SAT algorithms to walk edges cyclically.
func (p SimplePolygon[C]) Vertex(i int) Point[C] {
	n := len(p.vertices)
	return p.vertices[((i%n)+n)%n]
}

// Len returns the number of vertices.
func (p SimplePolygon[C]) Len() int { return len(p.vertices) }

// Translate returns p with every vertex shifted by (dx, dy).
func (p SimplePolygon[C]) Translate(dx, dy C) SimplePolygon[C] {
	out := make([]Point[C], len(p.vertices))
	for i, v := range p.vertices {
		out[i] = v.Translate(dx, dy)
	}
	return SimplePolygon[C]{vertices: out}
}

// BoundingBox returns the rectangle spanning the lexicographic minimum and
// maximum vertices of p under (x, y) ordering. This matches the true
// axis-aligned bounding rectangle only when the lexicographic extremes
// happen to coincide with the axis extremes of the boundary — documented as
// an open question rather than "fixed", since that is the reference
// library's behavior.
func (p SimplePolygon[C]) BoundingBox() Rect[C] {
	if p.Empty() {
		return Rect[C]{}
	}
	lo, hi := p.vertices[0], p.vertices[0]
	for _, v := range p.vertices[1:] {
		if v.Less(lo) {
			lo = v
		}
		if hi.Less(v) {
			hi = v
		}
	}
	return RectFromCorners(lo, hi)
}

// String renders "SimplePolygon { p1, p2, ... }".
func (p SimplePolygon[C]) String() string {
	parts := make([]string, len(p.vertices))
	for i, v := range p.vertices {
		parts[i] = v.String()
	}
	return fmt.Sprintf("SimplePolygon { %s }", strings.Join(parts, ", "))
}

// Polygon is a simple polygon (the outer boundary) plus an ordered sequence
// of simple polygons representing holes. Internally stored as one
// contiguous sequence where index 0 is the outer boundary.
type Polygon[C Number] struct {
	contours []SimplePolygon[C]
}

// NewPolygon builds a Polygon from its outer boundary and holes.
func NewPolygon[C Number](outer SimplePolygon[C], holes ...SimplePolygon[C]) Polygon[C] {
	contours := make([]SimplePolygon[C], 0, len(holes)+1)
	contours = append(contours, outer)
	contours = append(contours, holes...)
	return Polygon[C]{contours: contours}
}

// Empty reports whether the polygon has no outer boundary.
func (p Polygon[C]) Empty() bool {
	return len(p.contours) == 0
}

// Boundary returns the outer boundary, or ErrEmpty if the polygon has none.
func (p Polygon[C]) Boundary() (SimplePolygon[C], error) {
	if p.Empty() {
		return SimplePolygon[C]{}, ErrEmpty
	}
	return p.contours[0], nil
}

// HasHoles reports whether the polygon has one or more holes.
func (p Polygon[C]) HasHoles() bool {
	return len(p.contours) > 1
}

// Holes returns the hole contours, or nil if the polygon has none.
func (p Polygon[C]) Holes() []SimplePolygon[C] {
	if !p.HasHoles() {
		return nil
	}
	return p.contours[1:]
}

// Translate returns p with the outer boundary and every hole shifted by
// (dx, dy).
func (p Polygon[C]) Translate(dx, dy C) Polygon[C] {
	out := make([]SimplePolygon[C], len(p.contours))
	for i, c := range p.contours {
		out[i] = c.Translate(dx, dy)
	}
	return Polygon[C]{contours: out}
}

// BoundingBox returns the bounding box of the outer boundary, which is the
// bounding box of the whole polygon since holes lie within it.
func (p Polygon[C]) BoundingBox() Rect[C] {
	if p.Empty() {
		return Rect[C]{}
	}
	return p.contours[0].BoundingBox()
}

// String renders "Polygon { Boundary: { ... } Hole: { ... } ... }".
func (p Polygon[C]) String() string {
	if p.Empty() {
		return "Polygon { }"
	}
	var b strings.Builder
	b.WriteString("Polygon { Boundary: { ")
	b.WriteString(p.contours[0].String())
	for _, hole := range p.Holes() {
		b.WriteString(" } Hole: { ")
		b.WriteString(hole.String())
	}
	b.WriteString(" } }")
	return b.String()
}
