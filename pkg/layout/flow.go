package layout

import (
	"sort"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/geo"
)

// FlowHeight is the Y of every flow waypoint, just above the floor.
const FlowHeight = 0.3

// FlowPath returns the customer-flow control points for a zone set.
//
// An explicit order that resolves to at least two zones is used verbatim
// (unknown ids are skipped). Otherwise zones are visited front to back by
// descending Z, starting from the entry point at the store front. Fewer than
// two zones yield a straight front-to-back path so the result always has at
// least two points.
func FlowPath(zones []directive.Zone, order []string, storeDepth float64) []geo.Vec3 {
	byID := make(map[string]directive.Zone, len(zones))
	for _, z := range zones {
		byID[z.ID] = z
	}

	if len(order) >= 2 {
		var pts []geo.Vec3
		for _, id := range order {
			if z, ok := byID[id]; ok {
				pts = append(pts, waypoint(z))
			}
		}
		if len(pts) >= 2 {
			return pts
		}
	}

	front := storeDepth / 2
	if len(zones) < 2 {
		return []geo.Vec3{
			geo.V3(0, FlowHeight, front),
			geo.V3(0, FlowHeight, -front),
		}
	}

	sorted := make([]directive.Zone, len(zones))
	copy(sorted, zones)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Z != sorted[j].Z {
			return sorted[i].Z > sorted[j].Z
		}
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].ID < sorted[j].ID
	})

	pts := make([]geo.Vec3, 0, len(sorted)+1)
	pts = append(pts, geo.V3(0, FlowHeight, front))
	for _, z := range sorted {
		pts = append(pts, waypoint(z))
	}
	return pts
}

func waypoint(z directive.Zone) geo.Vec3 {
	return geo.V3(z.X, FlowHeight, z.Z)
}
