package vbap

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vbap/internal/sphere"
)

const (
	// exactHitEpsilon is the angular distance (radians) below which a
	// target counts as sitting exactly on a speaker, short-circuiting the
	// solve to unit gain on that speaker.
	exactHitEpsilon = 1e-7

	// powerFloor is the squared-sum floor below which a solved gain
	// vector counts as zero power.
	powerFloor = 1e-10

	// spreadRingSources is the number of virtual sources placed around
	// the target direction when spreading is enabled.
	spreadRingSources = 8
)

// Panner computes per-speaker gain coefficients that place a virtual
// source at a requested direction within a fixed speaker layout.
//
// A Panner holds no mutable state after construction and is safe for
// concurrent use. ComputeGainsInto performs no allocation unless
// spreading is enabled.
type Panner struct {
	layout *Layout
}

// NewPanner builds a layout from the given options and returns a panner
// operating over it.
func NewPanner(opts ...Option) (*Panner, error) {
	layout, err := NewLayout(opts...)
	if err != nil {
		return nil, err
	}

	return &Panner{layout: layout}, nil
}

// NewPannerFromLayout returns a panner operating over an already built
// layout. The panner takes ownership: the layout must not be used to
// seed further construction.
func NewPannerFromLayout(layout *Layout) *Panner {
	return &Panner{layout: layout}
}

// ComputeGains returns one gain per speaker for a source at the given
// azimuth and elevation in degrees. Angles outside the nominal ranges
// are wrapped (azimuth) and clamped (elevation) rather than rejected.
//
// Only the speakers of the selected active group receive non-zero gain;
// the gains are constant-power normalized so their squares sum to 1.
func (p *Panner) ComputeGains(azimuth, elevation float64) ([]float64, error) {
	gains := make([]float64, len(p.layout.speakers))

	if err := p.ComputeGainsInto(azimuth, elevation, gains); err != nil {
		return nil, err
	}

	return gains, nil
}

// ComputeGainsInto computes gains into a caller-provided slice, avoiding
// allocation on repeated calls. The slice must hold at least
// NumSpeakers values; all of it is overwritten.
func (p *Panner) ComputeGainsInto(azimuth, elevation float64, gains []float64) error {
	numSpeakers := len(p.layout.speakers)
	if len(gains) < numSpeakers {
		return fmt.Errorf("vbap: gains slice too small: %d < %d", len(gains), numSpeakers)
	}

	for i := range gains {
		gains[i] = 0
	}

	gains = gains[:numSpeakers]

	azimuth = wrapAzimuth(azimuth)
	elevation = clampElevation(elevation)
	dir := sphere.FromSpherical(azimuth, elevation)

	if p.layout.spread <= 0 {
		// A target exactly on a speaker bypasses the solve entirely so
		// that speaker gets gain 1 and everything else exactly 0.
		for i := range p.layout.speakers {
			if p.layout.speakers[i].direction.AngleBetween(dir) < exactHitEpsilon {
				gains[i] = 1
				return nil
			}
		}

		if err := p.accumulatePower(dir, gains); err != nil {
			return err
		}
	} else {
		for _, source := range spreadSources(dir, p.layout.spread) {
			if err := p.accumulatePower(source, gains); err != nil {
				return err
			}
		}
	}

	for i := range gains {
		gains[i] = math.Sqrt(gains[i])
	}

	sumSq := vecmath.DotProduct(gains, gains)
	if sumSq < powerFloor {
		return fmt.Errorf("%w: (%g°, %g°) solved to zero power", ErrUnreachableDirection,
			azimuth, elevation)
	}

	vecmath.ScaleBlockInPlace(gains, 1/math.Sqrt(sumSq))

	return nil
}

// NumSpeakers returns the number of speakers in the layout.
func (p *Panner) NumSpeakers() int { return len(p.layout.speakers) }

// Mode returns the layout's panning mode.
func (p *Panner) Mode() Mode { return p.layout.mode }

// Spread returns the configured spread in degrees.
func (p *Panner) Spread() float64 { return p.layout.spread }

// Layout returns the layout the panner operates over.
func (p *Panner) Layout() *Layout { return p.layout }

// accumulatePower solves the best active group for dir and adds the
// squared gains of its positive members into gains. A direction outside
// every group's span falls back to the nearest speaker.
func (p *Panner) accumulatePower(dir sphere.Vec3, gains []float64) error {
	indices, solved, n := p.layout.solve(dir)
	if n == 0 {
		return fmt.Errorf("%w: layout has no active groups", ErrUnreachableDirection)
	}

	positive := false

	for m := 0; m < n; m++ {
		if solved[m] > 0 {
			gains[indices[m]] += solved[m] * solved[m]
			positive = true
		}
	}

	if !positive {
		// Target opposite to the whole array (e.g. a rear source on a
		// front-only pair). Collapse onto the nearest speaker.
		gains[p.layout.nearestSpeaker(dir)] += 1
	}

	return nil
}

// solve finds the active group with the highest minimum solved gain and
// returns its speaker indices and raw (unnormalized, possibly negative)
// gains. n is 2 for pairs, 3 for triplets, 0 if the layout holds no
// groups.
func (l *Layout) solve(dir sphere.Vec3) (indices [3]int, gains [3]float64, n int) {
	bestMin := math.Inf(-1)

	if l.mode == Mode3D {
		for _, t := range l.triplets {
			g := t.inv.MulVec(dir)

			low := g.X
			if g.Y < low {
				low = g.Y
			}
			if g.Z < low {
				low = g.Z
			}

			if low > bestMin {
				bestMin = low
				indices = [3]int{t.i, t.j, t.k}
				gains = [3]float64{g.X, g.Y, g.Z}
				n = 3
			}
		}

		return indices, gains, n
	}

	for _, pr := range l.pairs {
		gi, gj := pr.inv.MulVec(dir.X, dir.Y)

		low := gi
		if gj < low {
			low = gj
		}

		if low > bestMin {
			bestMin = low
			indices = [3]int{pr.i, pr.j, 0}
			gains = [3]float64{gi, gj, 0}
			n = 2
		}
	}

	return indices, gains, n
}

// nearestSpeaker returns the index of the speaker closest to dir.
func (l *Layout) nearestSpeaker(dir sphere.Vec3) int {
	best := 0
	bestDot := math.Inf(-1)

	for i := range l.speakers {
		if dot := l.speakers[i].direction.Dot(dir); dot > bestDot {
			bestDot = dot
			best = i
		}
	}

	return best
}

// spreadSources returns the target direction plus a ring of virtual
// sources at the spread angle around it.
func spreadSources(dir sphere.Vec3, spreadDeg float64) []sphere.Vec3 {
	// Orthonormal frame around dir; fall back to the front axis when dir
	// is (anti)parallel to the zenith.
	up := sphere.Vec3{Z: 1}
	if d := dir.Dot(up); d > 0.999 || d < -0.999 {
		up = sphere.Vec3{Y: 1}
	}

	u := dir.Cross(up).Normalize()
	v := dir.Cross(u).Normalize()

	radius := spreadDeg * math.Pi / 180
	sinR, cosR := math.Sin(radius), math.Cos(radius)

	sources := make([]sphere.Vec3, 0, spreadRingSources+1)
	sources = append(sources, dir)

	for i := 0; i < spreadRingSources; i++ {
		phi := 2 * math.Pi * float64(i) / spreadRingSources
		ring := u.Scale(math.Cos(phi)).Add(v.Scale(math.Sin(phi)))
		sources = append(sources, dir.Scale(cosR).Add(ring.Scale(sinR)).Normalize())
	}

	return sources
}

// wrapAzimuth maps any azimuth into (-180, 180].
func wrapAzimuth(azimuth float64) float64 {
	wrapped := math.Mod(azimuth, 360)

	if wrapped > 180 {
		wrapped -= 360
	} else if wrapped <= -180 {
		wrapped += 360
	}

	return wrapped
}

// clampElevation limits the elevation to [-90, 90].
func clampElevation(elevation float64) float64 {
	if elevation > 90 {
		return 90
	}

	if elevation < -90 {
		return -90
	}

	return elevation
}
