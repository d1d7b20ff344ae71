package geo

// Polyline is an ordered sequence of floor points.
type Polyline struct {
	Points []Point2D
}

// NewPolyline creates a polyline from a list of points.
func NewPolyline(pts ...Point2D) Polyline {
	return Polyline{Points: pts}
}

// Length returns the total arc length of the polyline.
func (pl Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl.Points); i++ {
		total += pl.Points[i-1].Distance(pl.Points[i])
	}
	return total
}

// CatmullRomSpline samples a uniform Catmull-Rom curve through the control
// points, samplesPerSegment points per span plus the final control point.
// Two control points degrade to a straight line.
func CatmullRomSpline(controlPoints []Point2D, samplesPerSegment int) Polyline {
	n := len(controlPoints)
	if n < 2 {
		return NewPolyline(controlPoints...)
	}
	if samplesPerSegment < 1 {
		samplesPerSegment = 1
	}

	// Phantom endpoints mirror the first and last spans.
	ext := make([]Point2D, 0, n+2)
	ext = append(ext, controlPoints[0].Add(controlPoints[0].Sub(controlPoints[1])))
	ext = append(ext, controlPoints...)
	ext = append(ext, controlPoints[n-1].Add(controlPoints[n-1].Sub(controlPoints[n-2])))

	pts := make([]Point2D, 0, (n-1)*samplesPerSegment+1)
	for i := 1; i < n; i++ {
		for j := 0; j < samplesPerSegment; j++ {
			t := float64(j) / float64(samplesPerSegment)
			pts = append(pts, catmullRom(ext[i-1], ext[i], ext[i+1], ext[i+2], t))
		}
	}
	pts = append(pts, controlPoints[n-1])
	return Polyline{Points: pts}
}

func catmullRom(p0, p1, p2, p3 Point2D, t float64) Point2D {
	t2 := t * t
	t3 := t2 * t
	eval := func(a, b, c, d float64) float64 {
		return 0.5 * (2*b + (c-a)*t + (2*a-5*b+4*c-d)*t2 + (3*b-a-3*c+d)*t3)
	}
	return Point2D{
		X: eval(p0.X, p1.X, p2.X, p3.X),
		Z: eval(p0.Z, p1.Z, p2.Z, p3.Z),
	}
}
