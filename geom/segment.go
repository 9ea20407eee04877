package geom

import "fmt"

// Segment is an ordered pair of points. Equality compares ordered pairs, so
// Segment{p, q} != Segment{q, p}.
type Segment[C Number] struct {
	P, Q Point[C]
}

// NewSegment builds a Segment from its two endpoints.
func NewSegment[C Number](p, q Point[C]) Segment[C] {
	return Segment[C]{P: p, Q: q}
}

// Translate returns s shifted by (dx, dy).
func (s Segment[C]) Translate(dx, dy C) Segment[C] {
	return Segment[C]{P: s.P.Translate(dx, dy), Q: s.Q.Translate(dx, dy)}
}

// BoundingBox returns the axis-aligned bounding rectangle of the segment.
func (s Segment[C]) BoundingBox() Rect[C] {
	lo := Point[C]{X: min(s.P.X, s.Q.X), Y: min(s.P.Y, s.Q.Y)}
	hi := Point[C]{X: max(s.P.X, s.Q.X), Y: max(s.P.Y, s.Q.Y)}
	return RectFromCorners(lo, hi)
}

// OnSegment reports whether p lies within the axis-aligned bounding
// rectangle of s.
func OnSegment[C Number](s Segment[C], p Point[C]) bool {
	bb := s.BoundingBox()
	return BoxContainsPoint[C](bb, p)
}

// String renders "Segment { p, q }".
func (s Segment[C]) String() string {
	return fmt.Sprintf("Segment { %v, %v }", s.P, s.Q)
}
