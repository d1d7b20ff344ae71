package geo

// AABB is an axis-aligned rectangle on the floor plane.
type AABB struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinZ float64 `json:"min_z"`
	MaxZ float64 `json:"max_z"`
}

// RectAt returns the AABB of a w x d footprint centered on (x, z).
func RectAt(x, z, w, d float64) AABB {
	return AABB{
		MinX: x - w/2,
		MaxX: x + w/2,
		MinZ: z - d/2,
		MaxZ: z + d/2,
	}
}

// Width is the X extent.
func (b AABB) Width() float64 { return b.MaxX - b.MinX }

// Depth is the Z extent.
func (b AABB) Depth() float64 { return b.MaxZ - b.MinZ }

// Center returns the midpoint of the box.
func (b AABB) Center() Point2D {
	return Point2D{X: (b.MinX + b.MaxX) / 2, Z: (b.MinZ + b.MaxZ) / 2}
}

// Expand grows the box by m on every side. Negative m shrinks it.
func (b AABB) Expand(m float64) AABB {
	return AABB{MinX: b.MinX - m, MaxX: b.MaxX + m, MinZ: b.MinZ - m, MaxZ: b.MaxZ + m}
}

// Shrink is Expand(-m).
func (b AABB) Shrink(m float64) AABB {
	return b.Expand(-m)
}

// Empty reports whether the box has no interior.
func (b AABB) Empty() bool {
	return b.MaxX <= b.MinX || b.MaxZ <= b.MinZ
}

// Overlaps reports whether b and o share interior area. Touching edges do
// not count.
func (b AABB) Overlaps(o AABB) bool {
	return b.MinX < o.MaxX && o.MinX < b.MaxX &&
		b.MinZ < o.MaxZ && o.MinZ < b.MaxZ
}

// OverlapsWithin reports whether b and o are closer than margin on both axes.
func (b AABB) OverlapsWithin(o AABB, margin float64) bool {
	return b.Expand(margin).Overlaps(o)
}

// Contains reports whether o lies entirely inside b.
func (b AABB) Contains(o AABB) bool {
	return o.MinX >= b.MinX && o.MaxX <= b.MaxX &&
		o.MinZ >= b.MinZ && o.MaxZ <= b.MaxZ
}

// ContainsPoint reports whether p lies inside b (edges inclusive).
func (b AABB) ContainsPoint(p Point2D) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// Box3 is an axis-aligned box in scene space.
type Box3 struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// Lift extrudes a floor rectangle from y0 to y1.
func (b AABB) Lift(y0, y1 float64) Box3 {
	return Box3{
		Min: Vec3{X: b.MinX, Y: y0, Z: b.MinZ},
		Max: Vec3{X: b.MaxX, Y: y1, Z: b.MaxZ},
	}
}

// Union returns the smallest box enclosing a and b.
func (a Box3) Union(b Box3) Box3 {
	return Box3{
		Min: Vec3{X: min(a.Min.X, b.Min.X), Y: min(a.Min.Y, b.Min.Y), Z: min(a.Min.Z, b.Min.Z)},
		Max: Vec3{X: max(a.Max.X, b.Max.X), Y: max(a.Max.Y, b.Max.Y), Z: max(a.Max.Z, b.Max.Z)},
	}
}
