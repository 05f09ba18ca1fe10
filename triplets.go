package vbap

import (
	"sort"

	"github.com/cwbudde/algo-vbap/internal/sphere"
)

// triplet is an active group of three speakers with the precomputed
// inverse of its 3×3 base matrix (columns are the speakers' direction
// vectors).
type triplet struct {
	i, j, k int
	inv     sphere.Mat3
}

type tripletCandidate struct {
	i, j, k int
}

type edge struct {
	a, b   int
	length float64
}

// chooseTriplets triangulates the speaker directions into active groups
// covering the sphere. Near-flat triplets are rejected, crossing edges
// are resolved in favor of the shorter edge, and triplets enclosing
// another speaker are dropped, leaving a non-overlapping triangle mesh.
func chooseTriplets(speakers []Speaker) []triplet {
	n := len(speakers)
	if n < 3 {
		return nil
	}

	// All triplets with enough spherical volume per perimeter length.
	var candidates []tripletCandidate

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				v1 := speakers[i].direction
				v2 := speakers[j].direction
				v3 := speakers[k].direction

				volume := v1.Cross(v2).Dot(v3)
				if volume < 0 {
					volume = -volume
				}

				perimeter := v1.AngleBetween(v2) + v1.AngleBetween(v3) + v2.AngleBetween(v3)
				if perimeter < 1e-10 {
					continue
				}

				if volume/perimeter > minVolumePerPerimeter {
					candidates = append(candidates, tripletCandidate{i: i, j: j, k: k})
				}
			}
		}
	}

	// Edges sorted shortest first; when two edges cross on the sphere the
	// longer one is removed so the surviving mesh has no overlaps.
	edges := make([]edge, 0, n*(n-1)/2)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, edge{
				a:      i,
				b:      j,
				length: speakers[i].direction.AngleBetween(speakers[j].direction),
			})
		}
	}

	sort.Slice(edges, func(a, b int) bool { return edges[a].length < edges[b].length })

	connected := make([]bool, n*n)
	for i := range connected {
		connected[i] = true
	}

	for _, e1 := range edges {
		if !connected[e1.a*n+e1.b] {
			continue
		}

		va := speakers[e1.a].direction
		vb := speakers[e1.b].direction

		for _, e2 := range edges {
			if e1.a == e2.a || e1.a == e2.b || e1.b == e2.a || e1.b == e2.b {
				continue
			}

			if !connected[e2.a*n+e2.b] {
				continue
			}

			vc := speakers[e2.a].direction
			vd := speakers[e2.b].direction

			if sphere.ArcsIntersect(va, vb, vc, vd) && e2.length > e1.length {
				connected[e2.a*n+e2.b] = false
				connected[e2.b*n+e2.a] = false
			}
		}
	}

	triplets := make([]triplet, 0, len(candidates))

	for _, c := range candidates {
		if !connected[c.i*n+c.j] || !connected[c.i*n+c.k] || !connected[c.j*n+c.k] {
			continue
		}

		v1 := speakers[c.i].direction
		v2 := speakers[c.j].direction
		v3 := speakers[c.k].direction

		if hasInteriorSpeaker(speakers, c, v1, v2, v3) {
			continue
		}

		inv, ok := sphere.Mat3FromCols(v1, v2, v3).Inverse(matrixEpsilon)
		if !ok {
			continue
		}

		triplets = append(triplets, triplet{i: c.i, j: c.j, k: c.k, inv: inv})
	}

	return triplets
}

func hasInteriorSpeaker(speakers []Speaker, c tripletCandidate, v1, v2, v3 sphere.Vec3) bool {
	for m, s := range speakers {
		if m == c.i || m == c.j || m == c.k {
			continue
		}

		if sphere.InsideTriangle(s.direction, v1, v2, v3) {
			return true
		}
	}

	return false
}
