package vbap

import "errors"

var (
	// ErrInvalidAngle reports an azimuth outside (-180, 180] or an
	// elevation outside [-90, 90] at speaker-add time.
	ErrInvalidAngle = errors.New("vbap: angle outside valid range")

	// ErrDuplicateDirection reports a speaker whose direction coincides
	// with an already-added speaker.
	ErrDuplicateDirection = errors.New("vbap: duplicate speaker direction")

	// ErrInsufficientSpeakers reports too few speakers for the resolved
	// panning mode (2 for pairwise, 3 for triplet panning).
	ErrInsufficientSpeakers = errors.New("vbap: insufficient speakers")

	// ErrDegenerateLayout reports a speaker set from which no valid
	// pair or triplet could be formed.
	ErrDegenerateLayout = errors.New("vbap: degenerate speaker layout")

	// ErrUnreachableDirection reports that no speaker group could solve
	// the requested direction. Under a successfully built layout this is
	// an internal consistency failure, not a caller error.
	ErrUnreachableDirection = errors.New("vbap: no speaker group covers direction")
)
