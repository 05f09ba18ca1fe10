package vbap

import (
	"errors"
	"testing"
)

func TestNewLayoutPresets(t *testing.T) {
	tests := []struct {
		preset      Preset
		numSpeakers int
		mode        Mode
	}{
		{PresetStereo, 2, Mode2D},
		{PresetStereoWide, 2, Mode2D},
		{PresetLCR, 3, Mode2D},
		{PresetQuad, 4, Mode2D},
		{PresetSurround51, 5, Mode2D},
		{PresetSurround71, 7, Mode2D},
		{PresetHexagon, 6, Mode2D},
		{PresetOctagon, 8, Mode2D},
		{PresetAtmos514, 9, Mode3D},
		{PresetAtmos714, 11, Mode3D},
		{PresetAtmos916, 15, Mode3D},
		{PresetAuro91, 9, Mode3D},
	}

	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			layout, err := NewLayout(WithPreset(tt.preset))
			if err != nil {
				t.Fatalf("NewLayout(%s) error = %v", tt.preset, err)
			}

			if got := layout.NumSpeakers(); got != tt.numSpeakers {
				t.Errorf("NumSpeakers() = %d, want %d", got, tt.numSpeakers)
			}

			if got := layout.Mode(); got != tt.mode {
				t.Errorf("Mode() = %s, want %s", got, tt.mode)
			}

			if layout.NumGroups() == 0 {
				t.Error("NumGroups() = 0, want at least one active group")
			}
		})
	}
}

func TestNewLayoutCustomSpeakers(t *testing.T) {
	layout, err := NewLayout(
		WithSpeaker(30, 0),
		WithSpeaker(-30, 0),
		WithSpeaker(0, 0),
		WithSpeaker(110, 0),
		WithSpeaker(-110, 0),
	)
	if err != nil {
		t.Fatalf("NewLayout() error = %v", err)
	}

	if got := layout.NumSpeakers(); got != 5 {
		t.Fatalf("NumSpeakers() = %d, want 5", got)
	}

	speakers := layout.Speakers()
	for i, s := range speakers {
		if s.Index() != i {
			t.Errorf("speaker %d Index() = %d", i, s.Index())
		}
	}

	if !speakers[0].IsHorizontal() {
		t.Error("IsHorizontal() = false for elevation 0")
	}
}

func TestNewLayoutForce2D(t *testing.T) {
	layout, err := NewLayout(WithPreset(PresetAtmos714), WithDimension(DimensionForce2D))
	if err != nil {
		t.Fatalf("NewLayout() error = %v", err)
	}

	if got := layout.Mode(); got != Mode2D {
		t.Fatalf("Mode() = %s, want 2D", got)
	}
}

func TestNewLayoutForce3DPlanar(t *testing.T) {
	// A purely horizontal ring has no spherical volume: every triplet is
	// rejected, so forcing 3D must fail.
	_, err := NewLayout(WithPreset(PresetHexagon), WithDimension(DimensionForce3D))
	if !errors.Is(err, ErrDegenerateLayout) {
		t.Fatalf("NewLayout() error = %v, want ErrDegenerateLayout", err)
	}
}

func TestNewLayoutInsufficientSpeakers(t *testing.T) {
	if _, err := NewLayout(WithSpeaker(0, 0)); !errors.Is(err, ErrInsufficientSpeakers) {
		t.Fatalf("NewLayout(1 speaker) error = %v, want ErrInsufficientSpeakers", err)
	}

	if _, err := NewLayout(); !errors.Is(err, ErrInsufficientSpeakers) {
		t.Fatalf("NewLayout(no speakers) error = %v, want ErrInsufficientSpeakers", err)
	}

	_, err := NewLayout(
		WithSpeaker(30, 0),
		WithSpeaker(-30, 0),
		WithDimension(DimensionForce3D),
	)
	if !errors.Is(err, ErrInsufficientSpeakers) {
		t.Fatalf("NewLayout(2 speakers, force-3D) error = %v, want ErrInsufficientSpeakers", err)
	}
}

func TestNewLayoutDuplicateDirection(t *testing.T) {
	_, err := NewLayout(WithSpeaker(30, 0), WithSpeaker(30, 0))
	if !errors.Is(err, ErrDuplicateDirection) {
		t.Fatalf("NewLayout(duplicate) error = %v, want ErrDuplicateDirection", err)
	}

	// Within the duplicate tolerance, not exactly equal.
	_, err = NewLayout(WithSpeaker(30, 0), WithSpeaker(30.00000001, 0))
	if !errors.Is(err, ErrDuplicateDirection) {
		t.Fatalf("NewLayout(near-duplicate) error = %v, want ErrDuplicateDirection", err)
	}
}

func TestNewLayoutInvalidAngle(t *testing.T) {
	tests := []struct {
		name      string
		azimuth   float64
		elevation float64
	}{
		{"azimuth above range", 200, 0},
		{"azimuth at -180", -180, 0},
		{"elevation above range", 0, 100},
		{"elevation below range", 0, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLayout(WithSpeaker(tt.azimuth, tt.elevation))
			if !errors.Is(err, ErrInvalidAngle) {
				t.Fatalf("NewLayout(%g, %g) error = %v, want ErrInvalidAngle",
					tt.azimuth, tt.elevation, err)
			}
		})
	}
}

func TestNewLayoutDegenerate(t *testing.T) {
	// Two speakers closer than the minimum pair angle.
	_, err := NewLayout(WithSpeaker(0, 0), WithSpeaker(2, 0))
	if !errors.Is(err, ErrDegenerateLayout) {
		t.Fatalf("NewLayout(narrow pair) error = %v, want ErrDegenerateLayout", err)
	}

	// An antipodal pair has a singular base matrix: no direction between
	// the speakers can be solved.
	_, err = NewLayout(WithSpeaker(90, 0), WithSpeaker(-90, 0))
	if !errors.Is(err, ErrDegenerateLayout) {
		t.Fatalf("NewLayout(antipodal pair) error = %v, want ErrDegenerateLayout", err)
	}
}

func TestNewLayoutSpreadValidation(t *testing.T) {
	if _, err := NewLayout(WithPreset(PresetStereo), WithSpread(-1)); err == nil {
		t.Fatal("NewLayout(spread -1) error = nil")
	}

	if _, err := NewLayout(WithPreset(PresetStereo), WithSpread(120)); err == nil {
		t.Fatal("NewLayout(spread 120) error = nil")
	}

	layout, err := NewLayout(WithPreset(PresetStereo), WithSpread(15))
	if err != nil {
		t.Fatalf("NewLayout(spread 15) error = %v", err)
	}

	if got := layout.Spread(); got != 15 {
		t.Fatalf("Spread() = %g, want 15", got)
	}
}

func TestSpeakersReturnsCopy(t *testing.T) {
	layout, err := NewLayout(WithPreset(PresetStereo))
	if err != nil {
		t.Fatalf("NewLayout() error = %v", err)
	}

	speakers := layout.Speakers()
	speakers[0] = Speaker{}

	if got := layout.Speakers()[0].Azimuth(); got != 30 {
		t.Fatalf("layout speaker mutated through accessor: azimuth = %g", got)
	}
}

func TestNilOptionIgnored(t *testing.T) {
	if _, err := NewLayout(WithPreset(PresetStereo), nil); err != nil {
		t.Fatalf("NewLayout(nil option) error = %v", err)
	}
}
