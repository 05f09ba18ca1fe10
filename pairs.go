package vbap

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-vbap/internal/sphere"
)

// pair is an active group of two speakers with the precomputed inverse
// of its 2×2 base matrix (columns are the speakers' horizontal direction
// vectors).
type pair struct {
	i, j int
	inv  sphere.Mat2
}

// choosePairs forms active groups from angularly adjacent speakers.
// Speakers are sorted by azimuth and paired with their neighbor, wrapping
// around the full circle; pairs that are too narrow or too close to
// antipodal are skipped.
func choosePairs(speakers []Speaker) []pair {
	n := len(speakers)
	if n < 2 {
		return nil
	}

	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}

	sort.Slice(sorted, func(a, b int) bool {
		return speakers[sorted[a]].azimuth < speakers[sorted[b]].azimuth
	})

	pairs := make([]pair, 0, n)

	for i := 0; i < n; i++ {
		idx1 := sorted[i]
		idx2 := sorted[(i+1)%n]

		s1 := speakers[idx1]
		s2 := speakers[idx2]

		angle := s1.direction.AngleBetween(s2.direction)
		if angle < minPairAngle || angle > maxPairAngle {
			continue
		}

		azi1 := s1.azimuth * math.Pi / 180
		azi2 := s2.azimuth * math.Pi / 180

		base := sphere.Mat2FromCols(
			math.Sin(azi1), math.Cos(azi1),
			math.Sin(azi2), math.Cos(azi2),
		)

		inv, ok := base.Inverse(matrixEpsilon)
		if !ok {
			continue
		}

		pairs = append(pairs, pair{i: idx1, j: idx2, inv: inv})
	}

	return pairs
}
