// Package geom implements the primitive shapes and predicate kernel of a
// two-dimensional computational-geometry library: points, vectors,
// axis-aligned boxes, segments, and simple/holed polygons, plus the pure
// functions (orientation, intersection, containment, point-in-polygon, SAT)
// that operate on them.
//
// All types are generic over a coordinate type C, which must support the
// arithmetic and ordering operators Go's generics give "for free" on numeric
// underlying types. Integer coordinate types are first-class; the spatial
// index in the sibling quadtree package uses int32 in practice.
package geom

import (
	"errors"
	"math"
)

// Number is the coordinate type constraint: any type whose underlying type
// is one of Go's built-in numeric kinds, giving +, -, *, /, and ordering
// comparisons for free.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ErrEmpty is returned by Boundary accessors on a polygon with no vertices.
// Callers are expected to guard with Empty() first; this is a caller
// contract violation surfaced as an error, not a panic.
var ErrEmpty = errors.New("geom: polygon has no boundary")

// sqrt computes the square root of v, round-tripping through float64. For
// integer C this truncates back to C, matching the reference library's
// std::sqrt-then-cast behavior.
//
// min and max over C are not defined here: Go 1.21's builtin min/max cover
// any ordered numeric type, so there is nothing to add.
func sqrt[C Number](v C) C {
	return C(math.Sqrt(float64(v)))
}
