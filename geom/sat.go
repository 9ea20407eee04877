package geom

// SimplePolygonsIntersect reports whether a and b overlap, using the
// Separating Axis Theorem: a and b are disjoint iff some edge-perpendicular
// axis of either polygon separates their vertex projections. SAT is exact
// for convex polygons; applied here to general simple polygons, it may
// overapproximate (report an intersection) for non-convex inputs. That is a
// documented limitation, not a bug to fix.
func SimplePolygonsIntersect[C Number](a, b SimplePolygon[C]) bool {
	if separatingAxisExists(a, b) || separatingAxisExists(b, a) {
		return false
	}
	return true
}

// separatingAxisExists tests every edge of p as a candidate separating axis
// against both p and q's projections.
func separatingAxisExists[C Number](p, q SimplePolygon[C]) bool {
	n := p.Len()
	for i := 0; i < n; i++ {
		edge := VecBetween(p.Vertex(i), p.Vertex(i+1))
		axis := PerpendicularAxis(edge)

		pMin, pMax := projectOnto(p, axis)
		qMin, qMax := projectOnto(q, axis)

		if pMax < qMin || qMax < pMin {
			return true
		}
	}
	return false
}

// projectOnto returns the minimum and maximum dot product of axis with every
// vertex of p.
func projectOnto[C Number](p SimplePolygon[C], axis Vec2[C]) (C, C) {
	lo := Dot(axis, Vec2[C]{X: p.Vertex(0).X, Y: p.Vertex(0).Y})
	hi := lo
	for i := 1; i < p.Len(); i++ {
		v := p.Vertex(i)
		d := Dot(axis, Vec2[C]{X: v.X, Y: v.Y})
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, hi
}
