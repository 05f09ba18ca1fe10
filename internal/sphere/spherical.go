package sphere

import "math"

// FromSpherical converts spherical coordinates in degrees to a Cartesian
// unit vector.
//
// Angle convention:
//   - azimuth 0° = front center (+Y), 90° = left (+X), -90° = right (-X)
//   - elevation 0° = horizontal plane, 90° = directly above (+Z)
func FromSpherical(azimuth, elevation float64) Vec3 {
	aziSin, aziCos := math.Sincos(azimuth * math.Pi / 180)
	eleSin, eleCos := math.Sincos(elevation * math.Pi / 180)

	v := Vec3{
		X: eleCos * aziSin,
		Y: eleCos * aziCos,
		Z: eleSin,
	}

	// Absorb floating-point drift so callers can rely on unit length.
	return v.Normalize()
}

// ToSpherical converts a Cartesian vector to spherical coordinates,
// returning azimuth and elevation in degrees. The zero vector maps to
// (0, 0).
func ToSpherical(v Vec3) (azimuth, elevation float64) {
	n := v.Normalize()
	if n.IsZero() {
		return 0, 0
	}

	elevation = math.Asin(n.Z) * 180 / math.Pi
	azimuth = math.Atan2(n.X, n.Y) * 180 / math.Pi

	return azimuth, elevation
}
