package sphere

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type, no heap allocation.
type Mat3 [9]float64

// Mat3FromCols builds a matrix whose columns are a, b and c.
func Mat3FromCols(a, b, c Vec3) Mat3 {
	return Mat3{
		a.X, b.X, c.X,
		a.Y, b.Y, c.Y,
		a.Z, b.Z, c.Z,
	}
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse of m. The second return value is false if m
// is singular (determinant magnitude below eps), in which case the zero
// matrix is returned.
func (m Mat3) Inverse(eps float64) (Mat3, bool) {
	det := m.Det()
	if det > -eps && det < eps {
		return Mat3{}, false
	}

	inv := 1 / det

	return Mat3{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}, true
}

// MulVec returns m × v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Mat2 is a 2×2 matrix stored row-major: [r0c0, r0c1, r1c0, r1c1].
type Mat2 [4]float64

// Mat2FromCols builds a matrix whose columns are (ax, ay) and (bx, by).
func Mat2FromCols(ax, ay, bx, by float64) Mat2 {
	return Mat2{ax, bx, ay, by}
}

// Det returns the determinant of m.
func (m Mat2) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Inverse returns the inverse of m. The second return value is false if m
// is singular (determinant magnitude below eps).
func (m Mat2) Inverse(eps float64) (Mat2, bool) {
	det := m.Det()
	if det > -eps && det < eps {
		return Mat2{}, false
	}

	inv := 1 / det

	return Mat2{m[3] * inv, -m[1] * inv, -m[2] * inv, m[0] * inv}, true
}

// MulVec returns m × (x, y).
func (m Mat2) MulVec(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y, m[2]*x + m[3]*y
}
