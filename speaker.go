package vbap

import "github.com/cwbudde/algo-vbap/internal/sphere"

// Position is a speaker or source direction in degrees.
//
// Angle convention:
//   - Azimuth 0° = front center, 90° = left, -90° = right, 180° = rear
//   - Elevation 0° = horizontal plane, 90° = directly above
type Position struct {
	Azimuth   float64
	Elevation float64
}

// Speaker is a loudspeaker at a fixed direction within a built layout.
// Its index is the speaker's position in the layout and stays stable for
// the layout's lifetime.
type Speaker struct {
	index     int
	azimuth   float64
	elevation float64
	direction sphere.Vec3
}

func newSpeaker(index int, pos Position) Speaker {
	return Speaker{
		index:     index,
		azimuth:   pos.Azimuth,
		elevation: pos.Elevation,
		direction: sphere.FromSpherical(pos.Azimuth, pos.Elevation),
	}
}

// Index returns the speaker's position in the layout.
func (s Speaker) Index() int { return s.index }

// Azimuth returns the azimuth angle in degrees.
func (s Speaker) Azimuth() float64 { return s.azimuth }

// Elevation returns the elevation angle in degrees.
func (s Speaker) Elevation() float64 { return s.elevation }

// Position returns the speaker's angles.
func (s Speaker) Position() Position {
	return Position{Azimuth: s.azimuth, Elevation: s.elevation}
}

// Direction returns the Cartesian unit vector pointing at the speaker
// (x left, y front, z up).
func (s Speaker) Direction() (x, y, z float64) {
	return s.direction.X, s.direction.Y, s.direction.Z
}

// IsHorizontal reports whether the speaker lies in the horizontal plane.
func (s Speaker) IsHorizontal() bool {
	return s.elevation > -elevationEpsilon && s.elevation < elevationEpsilon
}
