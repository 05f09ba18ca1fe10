package vbap

import (
	"fmt"
	"math"
)

const (
	// duplicateEpsilon is the angular distance (radians) below which two
	// speaker directions count as the same speaker.
	duplicateEpsilon = 1e-6

	// elevationEpsilon bounds how far off the horizontal plane a speaker
	// may sit and still count as horizontal for mode auto-detection.
	elevationEpsilon = 1e-6

	// minPairAngle and maxPairAngle bound the angular distance (radians)
	// between the two speakers of a valid pair; roughly 5° and 175°.
	minPairAngle = 0.0872665
	maxPairAngle = 3.0543

	// minVolumePerPerimeter rejects near-flat speaker triplets.
	minVolumePerPerimeter = 0.01

	// matrixEpsilon is the determinant floor below which a base matrix
	// counts as singular.
	matrixEpsilon = 1e-10

	minSpread = 0.0
	maxSpread = 90.0
)

// Mode is the resolved panning mode of a built layout.
type Mode int

const (
	// Mode2D pans with speaker pairs in the horizontal plane.
	Mode2D Mode = iota
	// Mode3D pans with speaker triplets over the full sphere.
	Mode3D
)

// String returns "2D" or "3D".
func (m Mode) String() string {
	if m == Mode3D {
		return "3D"
	}

	return "2D"
}

// Dimension selects how the panning mode is resolved at build time.
type Dimension int

const (
	// DimensionAuto picks 3D when any speaker has non-zero elevation.
	DimensionAuto Dimension = iota
	// DimensionForce2D pans with pairs even for elevated speakers.
	DimensionForce2D
	// DimensionForce3D pans with triplets.
	DimensionForce3D
)

// String returns the dimension mode's name.
func (d Dimension) String() string {
	switch d {
	case DimensionForce2D:
		return "force-2D"
	case DimensionForce3D:
		return "force-3D"
	default:
		return "auto"
	}
}

type layoutConfig struct {
	speakers  []Speaker
	dimension Dimension
	spread    float64
}

// Option mutates layout construction parameters.
type Option func(*layoutConfig) error

// WithSpeaker adds a speaker at the given azimuth and elevation in
// degrees. The azimuth must lie in (-180, 180] and the elevation in
// [-90, 90]; the resulting direction must not coincide with an
// already-added speaker.
func WithSpeaker(azimuth, elevation float64) Option {
	return func(cfg *layoutConfig) error {
		return cfg.addSpeaker(Position{Azimuth: azimuth, Elevation: elevation})
	}
}

// WithSpeakers adds one speaker per position, in order.
func WithSpeakers(positions ...Position) Option {
	return func(cfg *layoutConfig) error {
		for _, pos := range positions {
			if err := cfg.addSpeaker(pos); err != nil {
				return err
			}
		}

		return nil
	}
}

// WithPreset adds the speakers of a named preset layout.
func WithPreset(p Preset) Option {
	return func(cfg *layoutConfig) error {
		table := p.table()
		if table == nil {
			return fmt.Errorf("%w: unknown preset %d", ErrDegenerateLayout, int(p))
		}

		for _, pos := range table {
			if err := cfg.addSpeaker(pos); err != nil {
				return err
			}
		}

		return nil
	}
}

// WithDimension overrides panning mode auto-detection.
func WithDimension(d Dimension) Option {
	return func(cfg *layoutConfig) error {
		if d != DimensionAuto && d != DimensionForce2D && d != DimensionForce3D {
			return fmt.Errorf("vbap: unknown dimension mode %d", int(d))
		}

		cfg.dimension = d

		return nil
	}
}

// WithSpread widens the apparent source by panning a ring of virtual
// sources around the target direction and averaging their power. The
// spread is the ring's angular radius in degrees, in [0, 90]; 0 disables
// spreading (default).
func WithSpread(degrees float64) Option {
	return func(cfg *layoutConfig) error {
		if degrees < minSpread || degrees > maxSpread ||
			math.IsNaN(degrees) || math.IsInf(degrees, 0) {
			return fmt.Errorf("vbap: spread must be in [%g, %g]: %f",
				minSpread, maxSpread, degrees)
		}

		cfg.spread = degrees

		return nil
	}
}

func (cfg *layoutConfig) addSpeaker(pos Position) error {
	if pos.Azimuth <= -180 || pos.Azimuth > 180 ||
		math.IsNaN(pos.Azimuth) || math.IsInf(pos.Azimuth, 0) {
		return fmt.Errorf("%w: azimuth %f not in (-180, 180]", ErrInvalidAngle, pos.Azimuth)
	}

	if pos.Elevation < -90 || pos.Elevation > 90 || math.IsNaN(pos.Elevation) {
		return fmt.Errorf("%w: elevation %f not in [-90, 90]", ErrInvalidAngle, pos.Elevation)
	}

	speaker := newSpeaker(len(cfg.speakers), pos)

	for _, existing := range cfg.speakers {
		if existing.direction.AngleBetween(speaker.direction) < duplicateEpsilon {
			return fmt.Errorf("%w: speaker (%g°, %g°) coincides with speaker %d (%g°, %g°)",
				ErrDuplicateDirection, pos.Azimuth, pos.Elevation,
				existing.index, existing.azimuth, existing.elevation)
		}
	}

	cfg.speakers = append(cfg.speakers, speaker)

	return nil
}

// Layout is an immutable, validated set of speaker directions together
// with the speaker pairs or triplets precomputed for gain solving. It is
// built once and never mutated; any change requires building a new
// layout.
type Layout struct {
	speakers []Speaker
	mode     Mode
	spread   float64

	pairs    []pair
	triplets []triplet
}

// NewLayout validates the configured speakers and precomputes the active
// speaker groups. On error no usable layout is returned.
func NewLayout(opts ...Option) (*Layout, error) {
	var cfg layoutConfig

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	mode := Mode2D

	switch cfg.dimension {
	case DimensionForce3D:
		mode = Mode3D
	case DimensionForce2D:
		mode = Mode2D
	default:
		for _, s := range cfg.speakers {
			if !s.IsHorizontal() {
				mode = Mode3D
				break
			}
		}
	}

	required := 2
	if mode == Mode3D {
		required = 3
	}

	if len(cfg.speakers) < required {
		return nil, fmt.Errorf("%w: %d provided, %d required for %s panning",
			ErrInsufficientSpeakers, len(cfg.speakers), required, mode)
	}

	layout := &Layout{
		speakers: cfg.speakers,
		mode:     mode,
		spread:   cfg.spread,
	}

	if mode == Mode3D {
		layout.triplets = chooseTriplets(cfg.speakers)
	} else {
		layout.pairs = choosePairs(cfg.speakers)
	}

	if len(layout.pairs) == 0 && len(layout.triplets) == 0 {
		group := "pair"
		if mode == Mode3D {
			group = "triplet"
		}

		return nil, fmt.Errorf("%w: no valid speaker %s could be formed", ErrDegenerateLayout, group)
	}

	return layout, nil
}

// Speakers returns the layout's speakers in index order.
func (l *Layout) Speakers() []Speaker {
	out := make([]Speaker, len(l.speakers))
	copy(out, l.speakers)

	return out
}

// NumSpeakers returns the number of speakers.
func (l *Layout) NumSpeakers() int { return len(l.speakers) }

// Mode returns the resolved panning mode.
func (l *Layout) Mode() Mode { return l.mode }

// Spread returns the configured spread in degrees, or 0 when disabled.
func (l *Layout) Spread() float64 { return l.spread }

// NumGroups returns the number of precomputed active speaker groups.
func (l *Layout) NumGroups() int {
	if l.mode == Mode3D {
		return len(l.triplets)
	}

	return len(l.pairs)
}
