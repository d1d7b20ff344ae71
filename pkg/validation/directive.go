package validation

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
)

// ValidateDirective reports what the builder will repair or ignore in a
// decoded directive. known lists zone ids already in the scene; they make
// references resolvable when the directive itself carries no zones.
func ValidateDirective(d *directive.Directive, known []string) *Report {
	r := NewReport()
	if d == nil {
		return r
	}

	ids := make(map[string]bool)
	if d.Zones != nil {
		validateZones(d.Zones, r)
		for _, z := range d.Zones {
			ids[z.ID] = true
		}
	} else {
		for _, id := range known {
			ids[id] = true
		}
	}

	validateStore(d.StoreParams, r)
	validateScale(d.ZoneScale, ids, r)
	validateReferences(d, ids, r)
	return r
}

func validateZones(zones []directive.ZoneSpec, r *Report) {
	seen := make(map[string]int)
	for i, z := range zones {
		path := fmt.Sprintf("zones[%d]", i)
		if strings.TrimSpace(z.ID) == "" {
			r.AddWarning(Result{
				Level:   LevelSemantic,
				Message: "zone has no id and will be skipped",
				Path:    path + ".id",
			})
			continue
		}
		if prev, dup := seen[z.ID]; dup {
			r.AddWarning(Result{
				Level:        LevelSemantic,
				Message:      fmt.Sprintf("zone %q is declared twice; the later entry wins", z.ID),
				Path:         path + ".id",
				ConflictWith: fmt.Sprintf("zones[%d]", prev),
			})
		}
		seen[z.ID] = i

		checkExtent(z.W, path+".w", r)
		checkExtent(z.D, path+".d", r)

		if z.Color == "" {
			r.AddInfo(Result{
				Level:   LevelSemantic,
				Message: fmt.Sprintf("zone %q has no colour; using %s", z.ID, directive.DefaultZoneColor),
				Path:    path + ".color",
			})
		} else if _, ok := directive.ParseColor(z.Color); !ok {
			r.AddWarning(Result{
				Level:       LevelSemantic,
				Message:     fmt.Sprintf("zone %q colour is not a hex colour; using %s", z.ID, directive.DefaultZoneColor),
				Path:        path + ".color",
				ActualValue: z.Color,
				Expected:    "#rrggbb",
			})
		}
		if strings.TrimSpace(z.Label) == "" {
			r.AddInfo(Result{
				Level:   LevelSemantic,
				Message: fmt.Sprintf("zone %q has no label; using its id", z.ID),
				Path:    path + ".label",
			})
		}
		if z.Type != "" {
			zt := directive.ZoneType(strings.ToLower(strings.TrimSpace(string(z.Type))))
			if !zt.Known() {
				r.AddWarning(Result{
					Level:       LevelSemantic,
					Message:     fmt.Sprintf("zone %q has unknown type; inferring from label", z.ID),
					Path:        path + ".type",
					ActualValue: z.Type,
				})
			}
		}
	}
}

func checkExtent(v float64, path string, r *Report) {
	if math.IsNaN(v) || v < directive.MinZoneExtent || v > directive.MaxZoneExtent {
		r.AddWarning(Result{
			Level:       LevelSemantic,
			Message:     fmt.Sprintf("extent %g will be clamped", v),
			Path:        path,
			ActualValue: v,
			Expected:    fmt.Sprintf("%g-%g", directive.MinZoneExtent, directive.MaxZoneExtent),
		})
	}
}

func validateStore(p *directive.StoreParams, r *Report) {
	if p == nil {
		return
	}
	dims := []struct {
		name string
		v    *float64
	}{
		{"storeWidth", p.StoreWidth},
		{"storeDepth", p.StoreDepth},
		{"storeHeight", p.StoreHeight},
	}
	for _, dim := range dims {
		if dim.v == nil {
			continue
		}
		if !(*dim.v > 0) || math.IsInf(*dim.v, 0) {
			r.AddWarning(Result{
				Level:       LevelSemantic,
				Message:     fmt.Sprintf("%s must be positive and finite; keeping the current value", dim.name),
				Path:        "storeParams." + dim.name,
				ActualValue: *dim.v,
				Expected:    "> 0",
			})
		}
	}
}

func validateScale(scale map[string]directive.ZoneScale, ids map[string]bool, r *Report) {
	for _, id := range slices.Sorted(maps.Keys(scale)) {
		s := scale[id]
		path := fmt.Sprintf("zoneScale.%s", id)
		if !ids[id] {
			r.AddWarning(Result{
				Level:   LevelSemantic,
				Message: fmt.Sprintf("zoneScale references unknown zone %q", id),
				Path:    path,
			})
		}
		sx, sz := s.Factors()
		if !(sx > 0) || !(sz > 0) {
			r.AddWarning(Result{
				Level:       LevelSemantic,
				Message:     fmt.Sprintf("zone %q scale factors must be positive; the result clamps to the minimum extent", id),
				Path:        path,
				ActualValue: fmt.Sprintf("%g x %g", sx, sz),
			})
		}
	}
}

func validateReferences(d *directive.Directive, ids map[string]bool, r *Report) {
	if d.FocusZone != "" && !ids[d.FocusZone] {
		r.AddWarning(Result{
			Level:       LevelSemantic,
			Message:     fmt.Sprintf("focus zone %q not found; the camera keeps its last preset", d.FocusZone),
			Path:        "focusZone",
			ActualValue: d.FocusZone,
		})
	}
	if d.FlowOrder != nil && len(d.FlowOrder.Order) > 0 {
		resolved := 0
		for i, id := range d.FlowOrder.Order {
			if ids[id] {
				resolved++
				continue
			}
			r.AddWarning(Result{
				Level:       LevelSemantic,
				Message:     fmt.Sprintf("flowOrder entry %q is not a zone and is ignored", id),
				Path:        fmt.Sprintf("flowOrder[%d]", i),
				ActualValue: id,
			})
		}
		if resolved < 2 {
			r.AddInfo(Result{
				Level:   LevelSemantic,
				Message: fmt.Sprintf("flowOrder resolves to %d zones; using the default front-to-back path", resolved),
				Path:    "flowOrder",
			})
		}
	}
	for i, id := range d.Highlights {
		if !ids[id] {
			r.AddWarning(Result{
				Level:       LevelSemantic,
				Message:     fmt.Sprintf("highlight %q is not a zone", id),
				Path:        fmt.Sprintf("highlights[%d]", i),
				ActualValue: id,
			})
		}
	}
	for i, a := range d.Annotations {
		path := fmt.Sprintf("annotations[%d]", i)
		if !ids[a.Zone] {
			r.AddWarning(Result{
				Level:       LevelSemantic,
				Message:     fmt.Sprintf("annotation targets unknown zone %q and will not be drawn", a.Zone),
				Path:        path + ".zone",
				ActualValue: a.Zone,
			})
		}
		if a.Color != "" {
			if _, ok := directive.ParseColor(a.Color); !ok {
				r.AddWarning(Result{
					Level:       LevelSemantic,
					Message:     "annotation colour is not a hex colour",
					Path:        path + ".color",
					ActualValue: a.Color,
				})
			}
		}
	}
}
