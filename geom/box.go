package geom

// Box is the capability interface axis-aligned shapes (Rect, Square) share.
// Predicates are written against Box rather than a concrete type or a base
// class, per the "polymorphism over box shape" design note: any type
// exposing pos/width/height can participate, including a caller's own type.
type Box[C Number] interface {
	Pos() Point[C]
	Width() C
	Height() C
}

// BottomLeft returns the bottom-left corner of b: its pos.
func BottomLeft[C Number, B Box[C]](b B) Point[C] {
	return b.Pos()
}

// BottomRight returns the bottom-right corner of b.
func BottomRight[C Number, B Box[C]](b B) Point[C] {
	pos := b.Pos()
	return Point[C]{X: pos.X + b.Width(), Y: pos.Y}
}

// TopLeft returns the top-left corner of b.
func TopLeft[C Number, B Box[C]](b B) Point[C] {
	pos := b.Pos()
	return Point[C]{X: pos.X, Y: pos.Y + b.Height()}
}

// TopRight returns the top-right corner of b.
func TopRight[C Number, B Box[C]](b B) Point[C] {
	pos := b.Pos()
	return Point[C]{X: pos.X + b.Width(), Y: pos.Y + b.Height()}
}

// BoxesIntersect reports whether a and b overlap, touching edges counting as
// intersection (closed-box semantics):
// a.right >= b.left && b.right >= a.left && a.top >= b.bottom && b.top >= a.bottom.
func BoxesIntersect[C Number, A, B Box[C]](a A, b B) bool {
	aBL, aTR := BottomLeft[C](a), TopRight[C](a)
	bBL, bTR := BottomLeft[C](b), TopRight[C](b)
	return aTR.X >= bBL.X && bTR.X >= aBL.X && aTR.Y >= bBL.Y && bTR.Y >= aBL.Y
}

// BoxContainsPoint reports whether p lies within (or on the edge of) b.
func BoxContainsPoint[C Number, B Box[C]](b B, p Point[C]) bool {
	bl, tr := BottomLeft[C](b), TopRight[C](b)
	return bl.X <= p.X && p.X <= tr.X && bl.Y <= p.Y && p.Y <= tr.Y
}

// BoxContainsBox reports whether b's bottom-left and top-right corners both
// lie within a.
func BoxContainsBox[C Number, A, B Box[C]](a A, b B) bool {
	return BoxContainsPoint[C](a, BottomLeft[C](b)) && BoxContainsPoint[C](a, TopRight[C](b))
}
