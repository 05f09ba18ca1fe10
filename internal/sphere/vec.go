// Package sphere provides the small fixed-size vector and matrix types
// and the spherical geometry predicates used by the VBAP solver.
package sphere

import "math"

// Vec3 is a vector in 3-dimensional listener space.
// Axis convention: X points left, Y points front, Z points up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns a multiplied by the scalar s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{X: s * a.X, Y: s * a.Y, Z: s * a.Z}
}

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of a and b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length of a.
func (a Vec3) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// IsZero reports whether a is the zero vector.
func (a Vec3) IsZero() bool {
	return a.X == 0 && a.Y == 0 && a.Z == 0
}

// Normalize returns a scaled to unit length, or the zero vector if a has
// (near-)zero length.
func (a Vec3) Normalize() Vec3 {
	length := a.Length()
	if length < 1e-12 {
		return Vec3{}
	}

	return a.Scale(1 / length)
}

// AngleBetween returns the angle between a and b in radians, in [0, π].
// Both vectors must be non-zero.
func (a Vec3) AngleBetween(b Vec3) float64 {
	denom := a.Length() * b.Length()
	if denom < 1e-12 {
		return 0
	}

	cos := a.Dot(b) / denom
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos)
}
