package layout

import (
	"fmt"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/fixture"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/geo"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/validation"
)

const (
	ItemMargin = 0.3 // minimum gap between any two furniture items
	EdgeMargin = 0.4 // inset from the zone boundary

	MaxPlacementRetries = 8

	spreadJitter = 0.3 // z jitter for 2-3 item rows
	containEps   = 1e-9
)

// FurnitureItem is one generated fixture. Items are rebuilt from scratch
// whenever the zone set changes and are never edited in place.
type FurnitureItem struct {
	ID     string       `json:"id"`
	ZoneID string       `json:"zone_id"`
	Kind   fixture.Kind `json:"kind"`
	X      float64      `json:"x"`
	Z      float64      `json:"z"`
	W      float64      `json:"w"`
	H      float64      `json:"h"`
	D      float64      `json:"d"`
	Label  string       `json:"label"`
}

// Bounds returns the item's floor footprint.
func (f FurnitureItem) Bounds() geo.AABB {
	return geo.RectAt(f.X, f.Z, f.W, f.D)
}

// Occupancy is the arena of footprints placed so far, across all zones.
type Occupancy struct {
	Boxes []geo.AABB
}

// Fits reports whether b keeps at least margin clearance from every box.
func (o Occupancy) Fits(b geo.AABB, margin float64) bool {
	for _, placed := range o.Boxes {
		if b.OverlapsWithin(placed, margin) {
			return false
		}
	}
	return true
}

// With returns the occupancy extended by b.
func (o Occupancy) With(b geo.AABB) Occupancy {
	boxes := make([]geo.AABB, len(o.Boxes), len(o.Boxes)+1)
	copy(boxes, o.Boxes)
	return Occupancy{Boxes: append(boxes, b)}
}

// Interior returns the usable floor of a zone.
func Interior(z directive.Zone) geo.AABB {
	return geo.RectAt(z.X, z.Z, z.W, z.D).Shrink(EdgeMargin)
}

// PlaceFurniture furnishes every zone in order, threading one occupancy
// arena through all of them so items never collide across zone borders.
// Items that cannot be placed without overlap are dropped.
func PlaceFurniture(zones []directive.Zone) ([]FurnitureItem, Occupancy, *validation.Report) {
	report := validation.NewReport()
	var (
		items   []FurnitureItem
		occ     Occupancy
		dropped int
	)

	for _, z := range zones {
		var zoneItems []FurnitureItem
		var n int
		zoneItems, occ, n = PlaceZone(z, occ)
		items = append(items, zoneItems...)
		dropped += n
	}

	if items == nil {
		items = []FurnitureItem{}
	}
	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("placed %d furniture items in %d zones (%d dropped)", len(items), len(zones), dropped),
	})
	return items, occ, report
}

// PlaceZone furnishes one zone against the given occupancy and returns the
// placed items, the extended occupancy and the number of dropped items.
func PlaceZone(z directive.Zone, occ Occupancy) ([]FurnitureItem, Occupancy, int) {
	rule := fixture.Lookup(z)
	count := rule.Count(z.Area())
	if count == 0 {
		return nil, occ, 0
	}

	inner := Interior(z)
	var items []FurnitureItem
	dropped := 0

	for i := 0; i < count; i++ {
		kind := rule.KindAt(i)
		rng := geo.SeedRand(z.ID, z.X, z.Z, i)
		dims := fixture.PresetFor(kind).Draw(rng)

		pos, ok := findSpot(inner, candidate(inner, i, count, rng), dims, occ, rng)
		if !ok {
			dropped++
			continue
		}

		item := FurnitureItem{
			ID:     fmt.Sprintf("%s_f%02d", z.ID, i),
			ZoneID: z.ID,
			Kind:   kind,
			X:      pos.X,
			Z:      pos.Z,
			W:      dims.W,
			H:      dims.H,
			D:      dims.D,
			Label:  kind.Label(),
		}
		occ = occ.With(item.Bounds())
		items = append(items, item)
	}
	return items, occ, dropped
}

// candidate returns the layout-rule position of item i of n: one item
// centers, two or three spread along x, four or more fill a 2-column grid.
func candidate(inner geo.AABB, i, n int, rng *geo.Rand) geo.Point2D {
	c := inner.Center()
	switch {
	case n == 1:
		return c
	case n <= 3:
		x := inner.MinX + (float64(i)+0.5)*inner.Width()/float64(n)
		return geo.Pt(x, c.Z+rng.Signed(spreadJitter))
	default:
		rows := (n + 1) / 2
		col, row := i%2, i/2
		x := inner.MinX + (float64(col)+0.5)*inner.Width()/2
		z := inner.MinZ + (float64(row)+0.5)*inner.Depth()/float64(rows)
		return geo.Pt(x, z)
	}
}

// findSpot tries the candidate, then up to MaxPlacementRetries jittered
// positions with shrinking amplitude.
func findSpot(inner geo.AABB, want geo.Point2D, dims fixture.Dims, occ Occupancy, rng *geo.Rand) (geo.Point2D, bool) {
	if dims.W > inner.Width() || dims.D > inner.Depth() {
		return geo.Point2D{}, false
	}

	amp := max(inner.Width(), inner.Depth()) / 4
	for attempt := 0; attempt <= MaxPlacementRetries; attempt++ {
		p := want
		if attempt > 0 {
			scale := 1 - float64(attempt-1)/MaxPlacementRetries
			p = geo.Pt(want.X+rng.Signed(amp*scale), want.Z+rng.Signed(amp*scale))
		}
		p = clampInto(inner, p, dims)
		box := geo.RectAt(p.X, p.Z, dims.W, dims.D)
		if inner.Expand(containEps).Contains(box) && occ.Fits(box, ItemMargin) {
			return p, true
		}
	}
	return geo.Point2D{}, false
}

// clampInto keeps a w x d footprint centered at p inside inner.
func clampInto(inner geo.AABB, p geo.Point2D, dims fixture.Dims) geo.Point2D {
	return geo.Pt(
		geo.Clamp(p.X, inner.MinX+dims.W/2, inner.MaxX-dims.W/2),
		geo.Clamp(p.Z, inner.MinZ+dims.D/2, inner.MaxZ-dims.D/2),
	)
}
