package sphere

import (
	"math"
	"testing"
)

func TestFromSphericalCardinalDirections(t *testing.T) {
	tests := []struct {
		name      string
		azimuth   float64
		elevation float64
		want      Vec3
	}{
		{"front", 0, 0, Vec3{X: 0, Y: 1, Z: 0}},
		{"left", 90, 0, Vec3{X: 1, Y: 0, Z: 0}},
		{"right", -90, 0, Vec3{X: -1, Y: 0, Z: 0}},
		{"rear", 180, 0, Vec3{X: 0, Y: -1, Z: 0}},
		{"up", 0, 90, Vec3{X: 0, Y: 0, Z: 1}},
		{"down", 0, -90, Vec3{X: 0, Y: 0, Z: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSpherical(tt.azimuth, tt.elevation)

			if diff := got.Sub(tt.want).Length(); diff > 1e-10 {
				t.Fatalf("FromSpherical(%g, %g) = %+v, want %+v (diff=%g)",
					tt.azimuth, tt.elevation, got, tt.want, diff)
			}
		})
	}
}

func TestFromSphericalUnitLength(t *testing.T) {
	for azi := -180.0; azi <= 180; azi += 7.5 {
		for ele := -90.0; ele <= 90; ele += 7.5 {
			v := FromSpherical(azi, ele)

			if diff := math.Abs(v.Length() - 1); diff > 1e-12 {
				t.Fatalf("FromSpherical(%g, %g) length = %g, want 1", azi, ele, v.Length())
			}
		}
	}
}

func TestToSphericalRoundtrip(t *testing.T) {
	angles := [][2]float64{
		{0, 0}, {45, 0}, {-45, 0}, {90, 0}, {0, 45}, {45, 30}, {-135, -20}, {180, 0},
	}

	for _, a := range angles {
		azi, ele := ToSpherical(FromSpherical(a[0], a[1]))

		if math.Abs(azi-a[0]) > 1e-9 || math.Abs(ele-a[1]) > 1e-9 {
			t.Fatalf("roundtrip(%g, %g) = (%g, %g)", a[0], a[1], azi, ele)
		}
	}
}

func TestToSphericalZeroVector(t *testing.T) {
	azi, ele := ToSpherical(Vec3{})
	if azi != 0 || ele != 0 {
		t.Fatalf("ToSpherical(zero) = (%g, %g), want (0, 0)", azi, ele)
	}
}

func TestAngleBetween(t *testing.T) {
	a := Vec3{X: 1}
	b := Vec3{Y: 1}

	if got := a.AngleBetween(b); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("AngleBetween orthogonal = %g, want %g", got, math.Pi/2)
	}

	if got := a.AngleBetween(a); got > 1e-7 {
		t.Fatalf("AngleBetween identical = %g, want 0", got)
	}

	if got := a.AngleBetween(a.Scale(-1)); math.Abs(got-math.Pi) > 1e-7 {
		t.Fatalf("AngleBetween antipodal = %g, want %g", got, math.Pi)
	}
}

func TestMat3InverseRecoversIdentity(t *testing.T) {
	m := Mat3FromCols(
		FromSpherical(30, 0),
		FromSpherical(-30, 0),
		FromSpherical(0, 45),
	)

	inv, ok := m.Inverse(1e-10)
	if !ok {
		t.Fatal("Inverse() reported singular matrix")
	}

	// m * inv(m) * v should reproduce v.
	v := FromSpherical(12, 20)
	got := m.MulVec(inv.MulVec(v))

	if diff := got.Sub(v).Length(); diff > 1e-10 {
		t.Fatalf("m*inv(m)*v = %+v, want %+v (diff=%g)", got, v, diff)
	}
}

func TestMat3InverseSingular(t *testing.T) {
	v := FromSpherical(10, 0)

	if _, ok := Mat3FromCols(v, v, FromSpherical(0, 45)).Inverse(1e-10); ok {
		t.Fatal("Inverse() accepted singular matrix")
	}
}

func TestMat2InverseRecoversIdentity(t *testing.T) {
	m := Mat2FromCols(math.Sin(0.5), math.Cos(0.5), math.Sin(-0.5), math.Cos(-0.5))

	inv, ok := m.Inverse(1e-10)
	if !ok {
		t.Fatal("Inverse() reported singular matrix")
	}

	x, y := m.MulVec(inv.MulVec(0.3, 0.8))

	if math.Abs(x-0.3) > 1e-12 || math.Abs(y-0.8) > 1e-12 {
		t.Fatalf("m*inv(m)*(0.3, 0.8) = (%g, %g)", x, y)
	}
}

func TestArcsIntersect(t *testing.T) {
	front := FromSpherical(0, 0)
	rear := FromSpherical(180, 0)
	left := FromSpherical(90, 0)
	up := FromSpherical(0, 90)

	// Vertical front-rear arc through the zenith crosses the horizontal
	// front-left arc only at the front point itself; shift both arcs so
	// they genuinely cross.
	a1 := FromSpherical(20, -40)
	a2 := FromSpherical(20, 40)
	b1 := FromSpherical(-30, 0)
	b2 := FromSpherical(70, 0)

	if !ArcsIntersect(a1, a2, b1, b2) {
		t.Fatal("ArcsIntersect() = false for crossing arcs")
	}

	// Disjoint arcs on different hemispheres.
	if ArcsIntersect(front, left, rear, up) {
		t.Fatal("ArcsIntersect() = true for disjoint arcs")
	}
}

func TestInsideTriangle(t *testing.T) {
	v1 := FromSpherical(30, 0)
	v2 := FromSpherical(-30, 0)
	v3 := FromSpherical(0, 45)

	if !InsideTriangle(FromSpherical(0, 15), v1, v2, v3) {
		t.Fatal("InsideTriangle() = false for interior point")
	}

	if InsideTriangle(FromSpherical(180, 0), v1, v2, v3) {
		t.Fatal("InsideTriangle() = true for exterior point")
	}
}
