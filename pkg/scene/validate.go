package scene

import (
	"fmt"
	"slices"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/layout"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/validation"
)

const placementTolerance = 1e-6

// ValidateConfig performs structural validation on a built scene.
// It checks id integrity, group index consistency, furniture placement,
// flow shape and bounds enclosure.
func ValidateConfig(c *Config) *validation.Report {
	r := validation.NewReport()

	if c == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "scene config is nil",
		})
		return r
	}

	validateIDs(c, r)
	validateGroupIndices(c, r)
	validatePlacement(c, r)
	validateFlow(c, r)
	validateDimensions(c, r)
	validateBoundsEnclosure(c, r)

	return r
}

func validateIDs(c *Config, r *validation.Report) {
	seen := make(map[string]string, len(c.Zones)+len(c.Furniture))
	check := func(id, path string) {
		if id == "" {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("%s has empty ID", path),
				Path:        path + ".id",
				ActualValue: "",
				Expected:    "non-empty string",
			})
			return
		}
		if prev, exists := seen[id]; exists {
			r.AddError(validation.Result{
				Level:        validation.LevelSpatial,
				Message:      fmt.Sprintf("duplicate ID %q", id),
				Path:         path + ".id",
				ActualValue:  id,
				ConflictWith: prev,
			})
			return
		}
		seen[id] = path
	}
	for i, z := range c.Zones {
		check(z.ID, fmt.Sprintf("zones[%d]", i))
	}
	for i, f := range c.Furniture {
		check(f.ID, fmt.Sprintf("furniture[%d]", i))
	}
}

func validateGroupIndices(c *Config, r *validation.Report) {
	zoneIDs := make(map[string]bool, len(c.Zones))
	for _, z := range c.Zones {
		zoneIDs[z.ID] = true
	}
	itemIDs := make(map[string]bool, len(c.Furniture))
	for _, f := range c.Furniture {
		itemIDs[f.ID] = true
	}

	checkGroup := func(groupType, groupName string, ids []string, valid map[string]bool) {
		for _, id := range ids {
			if !valid[id] {
				r.AddError(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("group %s.%s references non-existent entity %q", groupType, groupName, id),
					Path:        fmt.Sprintf("groups.%s.%s", groupType, groupName),
					ActualValue: id,
					Expected:    "existing ID",
				})
			}
		}
	}

	categorized := 0
	for name, ids := range c.Groups.Categories {
		checkGroup("categories", string(name), ids, zoneIDs)
		categorized += len(ids)
	}
	if categorized != len(c.Zones) {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("categories index covers %d of %d zones", categorized, len(c.Zones)),
			Path:        "groups.categories",
			ActualValue: categorized,
		})
	}
	for name, ids := range c.Groups.Kinds {
		checkGroup("kinds", string(name), ids, itemIDs)
	}
	for zoneID, ids := range c.Groups.Furniture {
		if !zoneIDs[zoneID] {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("furniture index has unknown zone %q", zoneID),
				Path:        "groups.furniture",
				ActualValue: zoneID,
			})
		}
		checkGroup("furniture", zoneID, ids, itemIDs)
	}
	for _, f := range c.Furniture {
		if !slices.Contains(c.Groups.Furniture[f.ZoneID], f.ID) {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("item %q of zone %q is not in the furniture index", f.ID, f.ZoneID),
				Path:        fmt.Sprintf("groups.furniture.%s", f.ZoneID),
				ActualValue: f.ID,
			})
		}
	}
}

func validatePlacement(c *Config, r *validation.Report) {
	zones := make(map[string]directive.Zone, len(c.Zones))
	for _, z := range c.Zones {
		zones[z.ID] = z
	}

	for i, f := range c.Furniture {
		z, ok := zones[f.ZoneID]
		if !ok {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("item %q belongs to unknown zone %q", f.ID, f.ZoneID),
				Path:        fmt.Sprintf("furniture[%d].zone_id", i),
				ActualValue: f.ZoneID,
			})
			continue
		}
		if !layout.Interior(z).Expand(placementTolerance).Contains(f.Bounds()) {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("item %q extends past the interior of zone %q", f.ID, z.ID),
				Path:        fmt.Sprintf("furniture[%d]", i),
				ActualValue: f.Bounds(),
			})
		}
	}

	for i := range c.Furniture {
		a := c.Furniture[i].Bounds()
		for j := i + 1; j < len(c.Furniture); j++ {
			if a.OverlapsWithin(c.Furniture[j].Bounds(), layout.ItemMargin-placementTolerance) {
				r.AddError(validation.Result{
					Level:        validation.LevelSpatial,
					Message:      fmt.Sprintf("items %q and %q are closer than %.1f", c.Furniture[i].ID, c.Furniture[j].ID, layout.ItemMargin),
					Path:         fmt.Sprintf("furniture[%d]", i),
					ConflictWith: fmt.Sprintf("furniture[%d]", j),
				})
			}
		}
	}
}

func validateFlow(c *Config, r *validation.Report) {
	if len(c.Flow.Waypoints) < 2 {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("flow has %d waypoints", len(c.Flow.Waypoints)),
			Path:        "flow.waypoints",
			ActualValue: len(c.Flow.Waypoints),
			Expected:    ">= 2",
		})
	}
	for i, p := range c.Flow.Waypoints {
		if p.Y != layout.FlowHeight {
			r.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("flow waypoint %d is off the flow plane", i),
				Path:        fmt.Sprintf("flow.waypoints[%d].y", i),
				ActualValue: p.Y,
			})
		}
	}
}

func validateDimensions(c *Config, r *validation.Report) {
	if c.Store.Width <= 0 || c.Store.Depth <= 0 || c.Store.Height <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     "store has zero or negative dimension",
			Path:        "store",
			ActualValue: fmt.Sprintf("%.2f x %.2f x %.2f", c.Store.Width, c.Store.Depth, c.Store.Height),
			Expected:    "all dimensions > 0",
		})
	}
	for i, z := range c.Zones {
		if z.W < directive.MinZoneExtent || z.W > directive.MaxZoneExtent ||
			z.D < directive.MinZoneExtent || z.D > directive.MaxZoneExtent {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("zone %q extent %.2f x %.2f outside clamp range", z.ID, z.W, z.D),
				Path:        fmt.Sprintf("zones[%d]", i),
				ActualValue: fmt.Sprintf("%.2f x %.2f", z.W, z.D),
			})
		}
	}
	for i, f := range c.Furniture {
		if f.W <= 0 || f.H <= 0 || f.D <= 0 {
			r.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("item %q has zero or negative dimension (%.2f, %.2f, %.2f)", f.ID, f.W, f.H, f.D),
				Path:        fmt.Sprintf("furniture[%d]", i),
				ActualValue: fmt.Sprintf("%.2f x %.2f x %.2f", f.W, f.H, f.D),
				Expected:    "all dimensions > 0",
			})
		}
	}
}

// validateBoundsEnclosure warns once when a zone leaves the store floor.
// Directives may place zones anywhere, so this is not an error.
func validateBoundsEnclosure(c *Config, r *validation.Report) {
	halfW, halfD := c.Store.Width/2, c.Store.Depth/2
	for i, z := range c.Zones {
		if z.X-z.W/2 < -halfW || z.X+z.W/2 > halfW || z.Z-z.D/2 < -halfD || z.Z+z.D/2 > halfD {
			r.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("zone %q extends past the %.0f x %.0f store floor", z.ID, c.Store.Width, c.Store.Depth),
				Path:        fmt.Sprintf("zones[%d]", i),
				ActualValue: fmt.Sprintf("x %.1f z %.1f", z.X, z.Z),
			})
			break
		}
	}
}
