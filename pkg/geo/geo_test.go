package geo

import (
	"math"
	"testing"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// --- Point2D / Vec3 tests ---

func TestPointDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, 10)
	mid := a.Lerp(b, 0.5)
	if !approxEqual(mid.X, 5, tolerance) || !approxEqual(mid.Z, 5, tolerance) {
		t.Errorf("expected (5,5), got (%f,%f)", mid.X, mid.Z)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, 20, -10)
	q := a.Lerp(b, 0.25)
	if !approxEqual(q.X, 2.5, tolerance) || !approxEqual(q.Y, 5, tolerance) || !approxEqual(q.Z, -2.5, tolerance) {
		t.Errorf("expected (2.5,5,-2.5), got %v", q)
	}
	if !approxEqual(a.Distance(V3(2, 3, 6)), 7, tolerance) {
		t.Errorf("expected distance 7, got %f", a.Distance(V3(2, 3, 6)))
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-3, 2}, {0, 2}, {7, 7}, {20, 15}, {math.NaN(), 2},
	}
	for _, c := range cases {
		if got := Clamp(c.in, 2, 15); got != c.want {
			t.Errorf("Clamp(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

// --- AABB tests ---

func TestAABBOverlap(t *testing.T) {
	a := RectAt(0, 0, 2, 2)
	b := RectAt(2, 0, 2, 2)
	if a.Overlaps(b) {
		t.Error("touching boxes should not overlap")
	}
	if !a.OverlapsWithin(b, 0.3) {
		t.Error("touching boxes should violate a 0.3 margin")
	}
	c := RectAt(2.31, 0, 2, 2)
	if a.OverlapsWithin(c, 0.3) {
		t.Error("boxes 0.31 apart should satisfy a 0.3 margin")
	}
}

func TestAABBContains(t *testing.T) {
	zone := RectAt(5, 5, 10, 10)
	inner := zone.Shrink(0.5)
	if !approxEqual(inner.Width(), 9, tolerance) || !approxEqual(inner.Depth(), 9, tolerance) {
		t.Errorf("expected 9x9 interior, got %fx%f", inner.Width(), inner.Depth())
	}
	if !zone.Contains(inner) {
		t.Error("zone should contain its interior")
	}
	if inner.Contains(zone) {
		t.Error("interior should not contain the zone")
	}
	if !RectAt(0, 0, 1, 1).Shrink(0.6).Empty() {
		t.Error("over-shrunk box should be empty")
	}
}

func TestBox3Union(t *testing.T) {
	a := RectAt(0, 0, 2, 2).Lift(0, 1)
	b := RectAt(5, 5, 2, 2).Lift(0, 3)
	u := a.Union(b)
	if u.Min.X != -1 || u.Max.X != 6 || u.Max.Y != 3 {
		t.Errorf("unexpected union %+v", u)
	}
}

// --- Rand tests ---

func TestSeedRandDeterministic(t *testing.T) {
	r1 := SeedRand("zone-a", 1.5, -2, 3)
	r2 := SeedRand("zone-a", 1.5, -2, 3)
	for i := 0; i < 100; i++ {
		if r1.Next() != r2.Next() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestSeedRandVariesWithIndex(t *testing.T) {
	a := SeedRand("zone-a", 0, 0, 0).Next()
	b := SeedRand("zone-a", 0, 0, 1).Next()
	if a == b {
		t.Error("different item indices should seed different sequences")
	}
}

func TestRandFloatRange(t *testing.T) {
	r := NewRand(0)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
		s := r.Signed(2)
		if s < -2 || s >= 2 {
			t.Fatalf("Signed out of range: %f", s)
		}
	}
}
