// Package testutil provides shared assertion helpers for gain vector
// tests.
package testutil

import (
	"math"
	"testing"
)

// RequireGainsNearlyEqual fails t if got and want differ in length or if
// any gain pair exceeds eps (absolute tolerance).
func RequireGainsNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("gain %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireConstantPower fails t if the gains are not constant-power
// normalized: every gain in [0, 1] and the squared sum within eps of 1.
func RequireConstantPower(t *testing.T, gains []float64, eps float64) {
	t.Helper()

	var sum float64
	for i, g := range gains {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			t.Fatalf("gain %d: non-finite value %v", i, g)
		}
		if g < 0 || g > 1 {
			t.Fatalf("gain %d: %v outside [0, 1]", i, g)
		}
		sum += g * g
	}

	if diff := math.Abs(sum - 1); diff > eps {
		t.Fatalf("sum of squared gains = %v, want 1 (diff %v > eps %v)", sum, diff, eps)
	}
}
