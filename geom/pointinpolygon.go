package geom

// SimplePolygonContains reports whether q lies inside or on the boundary of
// p, using even-odd ray casting: a horizontal ray cast from q to the right
// of the polygon's bounding box, counting edge crossings.
//
// The vertex-on-ray case needs care, since a ray that passes exactly through
// a shared vertex of two consecutive edges would otherwise be counted twice.
// When the ray terminates at an edge's second vertex, the crossing is only
// counted if the polygon turns the same way around that vertex as seen from
// q and from the vertex two steps ahead — this disambiguates a glancing
// touch from a true crossing.
func SimplePolygonContains[C Number](p SimplePolygon[C], q Point[C]) bool {
	n := p.Len()
	if n < 3 {
		return false
	}

	farX := TopRight[C](p.BoundingBox()).X + 1
	ray := Segment[C]{P: q, Q: Point[C]{X: farX, Y: q.Y}}

	crossings := 0
	for i := 0; i < n; i++ {
		edge := Segment[C]{P: p.Vertex(i), Q: p.Vertex(i + 1)}
		if !SegmentsIntersect(edge, ray) {
			continue
		}

		if OrientationOf(edge.P, q, edge.Q) == Collinear {
			return OnSegment(edge, q)
		}

		if OnSegment(ray, edge.Q) {
			if OrientationOf(q, edge.Q, edge.P) == OrientationOf(p.Vertex(i+2), edge.Q, q) {
				crossings++
			}
		}
		crossings++
	}
	return crossings%2 == 1
}

// PolygonContains reports whether q lies inside p's outer boundary and
// outside every hole. An empty polygon contains nothing.
func PolygonContains[C Number](p Polygon[C], q Point[C]) bool {
	if p.Empty() {
		return false
	}
	outer, _ := p.Boundary()
	if !SimplePolygonContains(outer, q) {
		return false
	}
	for _, hole := range p.Holes() {
		if SimplePolygonContains(hole, q) {
			return false
		}
	}
	return true
}
