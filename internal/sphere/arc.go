package sphere

// pointOnArcTolerance bounds the angular slack when deciding whether a
// point lies on a great circle arc.
const pointOnArcTolerance = 1e-6

// ArcsIntersect reports whether the great circle arc from a1 to a2 and
// the arc from b1 to b2 intersect on the unit sphere. Arcs that lie on
// the same great circle are treated as non-intersecting.
func ArcsIntersect(a1, a2, b1, b2 Vec3) bool {
	// Normals of the planes containing each arc; their cross product is
	// the line where the two planes meet.
	n1 := a1.Cross(a2)
	n2 := b1.Cross(b2)

	line := n1.Cross(n2).Normalize()
	if line.IsZero() {
		return false
	}

	// The line pierces the sphere at two antipodal points.
	p1 := line
	p2 := line.Scale(-1)

	return (pointOnArc(p1, a1, a2) && pointOnArc(p1, b1, b2)) ||
		(pointOnArc(p2, a1, a2) && pointOnArc(p2, b1, b2))
}

// pointOnArc reports whether p lies on the shorter great circle arc
// between a and b.
func pointOnArc(p, a, b Vec3) bool {
	angleAB := a.AngleBetween(b)
	angleAP := a.AngleBetween(p)
	anglePB := p.AngleBetween(b)

	diff := angleAP + anglePB - angleAB

	return diff > -pointOnArcTolerance && diff < pointOnArcTolerance
}

// InsideTriangle reports whether p lies inside (or on an edge of) the
// spherical triangle spanned by v1, v2 and v3.
func InsideTriangle(p, v1, v2, v3 Vec3) bool {
	d1 := p.Dot(v1.Cross(v2))
	d2 := p.Dot(v2.Cross(v3))
	d3 := p.Dot(v3.Cross(v1))

	// Same sign for all three edge planes means the point is inside.
	return (d1 >= 0 && d2 >= 0 && d3 >= 0) || (d1 <= 0 && d2 <= 0 && d3 <= 0)
}
