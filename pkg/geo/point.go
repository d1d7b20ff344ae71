package geo

import "math"

// Point2D is a point on the store floor plane (Y is up in the 3D scene).
type Point2D struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Pt is a shorthand constructor for Point2D.
func Pt(x, z float64) Point2D {
	return Point2D{X: x, Z: z}
}

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{p.X + q.X, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Z - q.Z}
}

// Scale returns p * s.
func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Z * s}
}

// Length returns the Euclidean length of the vector.
func (p Point2D) Length() float64 {
	return math.Hypot(p.X, p.Z)
}

// Distance returns the Euclidean distance from p to q.
func (p Point2D) Distance(q Point2D) float64 {
	return p.Sub(q).Length()
}

// Lerp returns the linear interpolation between p and q at t in [0,1].
func (p Point2D) Lerp(q Point2D, t float64) Point2D {
	return Point2D{
		X: p.X + (q.X-p.X)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// At lifts p to 3D at height y.
func (p Point2D) At(y float64) Vec3 {
	return Vec3{X: p.X, Y: y, Z: p.Z}
}

// Lerp interpolates scalars.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
