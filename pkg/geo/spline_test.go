package geo

import (
	"math"
	"testing"
)

func TestCatmullRomSplinePassesThroughControlPoints(t *testing.T) {
	pts := []Point2D{Pt(0, 0), Pt(10, 0), Pt(20, 10), Pt(30, 10)}
	spline := CatmullRomSpline(pts, 20)

	if spline.Points[0].Distance(pts[0]) > 0.01 {
		t.Errorf("spline does not start at first control point: got %v", spline.Points[0])
	}
	last := spline.Points[len(spline.Points)-1]
	if last.Distance(pts[len(pts)-1]) > 0.01 {
		t.Errorf("spline does not end at last control point: got %v", last)
	}
	// Uniform Catmull-Rom interpolates every control point at span starts.
	for i := 1; i < len(pts)-1; i++ {
		got := spline.Points[i*20]
		if got.Distance(pts[i]) > 0.01 {
			t.Errorf("control point %d: spline sample %v", i, got)
		}
	}
}

func TestCatmullRomSplineTwoPointsLinear(t *testing.T) {
	pts := []Point2D{Pt(0, 0), Pt(10, 0)}
	spline := CatmullRomSpline(pts, 10)

	if len(spline.Points) != 11 {
		t.Fatalf("expected 11 points for 2-point spline with 10 samples, got %d", len(spline.Points))
	}
	for i, p := range spline.Points {
		if math.Abs(p.Z) > 0.01 {
			t.Errorf("point %d has Z=%.3f, expected 0 (linear)", i, p.Z)
		}
	}
}

func TestPolylineLength(t *testing.T) {
	pl := NewPolyline(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	if math.Abs(pl.Length()-20) > 0.01 {
		t.Errorf("expected length 20, got %.2f", pl.Length())
	}
	if (Polyline{}).Length() != 0 {
		t.Error("empty polyline should have zero length")
	}
}
