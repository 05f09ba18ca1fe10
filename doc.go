// Package vbap computes per-speaker gain coefficients that position a
// virtual sound source at an arbitrary azimuth and elevation within a
// fixed loudspeaker layout, using Vector Base Amplitude Panning.
//
// A layout is built once from speaker angles or a named preset and
// validated for degenerate configurations; the panner then solves gains
// per call on the audio path. Horizontal-only layouts pan across
// angularly adjacent speaker pairs, layouts with height channels pan
// across speaker triplets from a triangulation of the speaker directions
// on the unit sphere. Gains are constant-power normalized: the squares
// of the active gains sum to 1 regardless of direction.
//
// # Usage
//
// Build a panner and solve gains for a direction:
//
//	p, err := vbap.NewPanner(vbap.WithPreset(vbap.PresetSurround51))
//	if err != nil {
//	    // configuration error
//	}
//	gains, err := p.ComputeGains(45, 0)
//
// On a real-time path, reuse a gain buffer:
//
//	gains := make([]float64, p.NumSpeakers())
//	err := p.ComputeGainsInto(azimuth, elevation, gains)
//
// Custom layouts use WithSpeaker / WithSpeakers:
//
//	p, err := vbap.NewPanner(
//	    vbap.WithSpeaker(30, 0),
//	    vbap.WithSpeaker(-30, 0),
//	    vbap.WithSpeaker(0, 45),
//	)
//
// # Angle conventions
//
// Azimuth 0° is front center, 90° left, -90° right, 180° rear; elevation
// 0° is the horizontal plane, 90° directly above. ComputeGains accepts
// any real-valued angles and wraps or clamps them into these ranges.
//
// The algorithm follows Pulkki, "Virtual Sound Source Positioning Using
// Vector Base Amplitude Panning" (1997).
package vbap
