package scene

import (
	"fmt"
	"math"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/fixture"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/geo"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/layout"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/validation"
)

const (
	// ZoneSlabHeight is the thickness of the pickable floor tile of a zone.
	ZoneSlabHeight = 0.05
	// ZoneLabelHeight is the Y of a zone's label anchor.
	ZoneLabelHeight = 2.2
	// AnnotationHeight is the Y of an annotation anchor.
	AnnotationHeight = 3.0

	defaultAnnotationColor = "#ffffff"
)

// Build resolves an effective directive into a scene. A nil directive yields
// the baseline. The result depends only on d: no clocks, no global state.
//
// Steps, in order: zones (directive zones replace the baseline entirely),
// store dimensions, per-zone scale, then furniture and flow generated from
// the final zones.
func Build(d *directive.Directive) (*Config, *validation.Report) {
	if d == nil {
		d = &directive.Directive{}
	}
	report := validation.NewReport()
	c := NewConfig()
	c.Key = ConfigKey(d)

	specs := BaselineZones()
	if d.Zones != nil {
		specs = d.Zones
		c.Dynamic = true
	}
	zones := directive.NormalizeZones(specs)

	c.Store = resolveStore(d.StoreParams, report)
	c.Visual = VisualFor(c.Store)

	zones, c.Stats.ScaledZones = applyScale(zones, d.ZoneScale)
	for _, z := range zones {
		addZone(c, z)
	}

	items, _, placeReport := layout.PlaceFurniture(c.Zones)
	report.Merge(placeReport)
	for _, it := range items {
		addFurniture(c, it)
	}
	c.Stats.DroppedFurniture = countExpected(c.Zones) - len(items)

	var order []string
	c.Flow.Visible = true
	if d.FlowOrder != nil {
		order = d.FlowOrder.Order
		c.Flow.Visible = d.FlowOrder.Show
	}
	c.Flow.Waypoints = layout.FlowPath(c.Zones, order, c.Store.Depth)
	c.Stats.ResolvedFlowEntries = resolvedCount(c, order)

	resolveHighlights(c, d.Highlights)
	resolveAnnotations(c, d.Annotations, report)
	c.Bounds = computeBounds(c)

	return c, report
}

// resolveStore overlays positive finite store parameters on the baseline.
func resolveStore(p *directive.StoreParams, r *validation.Report) Store {
	s := BaselineStore()
	if p == nil {
		return s
	}
	set := func(dst *float64, v *float64, name string) {
		if v == nil {
			return
		}
		if *v > 0 && !math.IsInf(*v, 0) {
			*dst = *v
			return
		}
		r.AddWarning(validation.Result{
			Level:       validation.LevelSemantic,
			Message:     fmt.Sprintf("ignoring invalid %s", name),
			Path:        "storeParams." + name,
			ActualValue: *v,
			Expected:    "> 0",
		})
	}
	set(&s.Width, p.StoreWidth, "storeWidth")
	set(&s.Depth, p.StoreDepth, "storeDepth")
	set(&s.Height, p.StoreHeight, "storeHeight")
	return s
}

// applyScale multiplies zone footprints. Position and colour are untouched;
// the result is re-clamped into the zone extent range.
func applyScale(zones []directive.Zone, scale map[string]directive.ZoneScale) ([]directive.Zone, int) {
	if len(scale) == 0 {
		return zones, 0
	}
	n := 0
	out := make([]directive.Zone, len(zones))
	for i, z := range zones {
		if s, ok := scale[z.ID]; ok {
			sx, sz := s.Factors()
			z = z.Scaled(sx, sz)
			n++
		}
		out[i] = z
	}
	return out, n
}

// addZone appends a zone and updates the group indices.
func addZone(c *Config, z directive.Zone) {
	c.Zones = append(c.Zones, z)
	cat := fixture.Lookup(z).Category
	c.Groups.Categories[cat] = append(c.Groups.Categories[cat], z.ID)
}

// addFurniture appends an item and updates the group indices.
func addFurniture(c *Config, it layout.FurnitureItem) {
	c.Furniture = append(c.Furniture, it)
	c.Groups.Kinds[it.Kind] = append(c.Groups.Kinds[it.Kind], it.ID)
	c.Groups.Furniture[it.ZoneID] = append(c.Groups.Furniture[it.ZoneID], it.ID)
}

func countExpected(zones []directive.Zone) int {
	n := 0
	for _, z := range zones {
		n += fixture.Lookup(z).Count(z.Area())
	}
	return n
}

func resolvedCount(c *Config, order []string) int {
	n := 0
	for _, id := range order {
		if _, ok := c.Zone(id); ok {
			n++
		}
	}
	return n
}

// resolveHighlights keeps highlight ids that name a zone, once each.
func resolveHighlights(c *Config, ids []string) {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := c.Zone(id); !ok {
			c.Stats.IgnoredHighlights++
			continue
		}
		c.Highlights = append(c.Highlights, id)
	}
}

// resolveAnnotations anchors annotations above their zone. Annotations for
// unknown zones are dropped.
func resolveAnnotations(c *Config, anns []directive.Annotation, r *validation.Report) {
	for i, a := range anns {
		z, ok := c.Zone(a.Zone)
		if !ok {
			c.Stats.DroppedAnnotations++
			r.AddWarning(validation.Result{
				Level:       validation.LevelSemantic,
				Message:     fmt.Sprintf("dropping annotation for unknown zone %q", a.Zone),
				Path:        fmt.Sprintf("annotations[%d].zone", i),
				ActualValue: a.Zone,
			})
			continue
		}
		color, ok := directive.ParseColor(a.Color)
		if !ok {
			color = directive.MustColor(defaultAnnotationColor)
		}
		c.Annotations = append(c.Annotations, Annotation{
			ID:     fmt.Sprintf("ann_%02d_%s", i, z.ID),
			ZoneID: z.ID,
			Text:   a.Text,
			Color:  color,
			Anchor: geo.V3(z.X, min(AnnotationHeight, c.Store.Height), z.Z),
		})
	}
}

// computeBounds encloses every zone slab and furniture item.
func computeBounds(c *Config) geo.Box3 {
	first := true
	var b geo.Box3
	grow := func(box geo.Box3) {
		if first {
			b, first = box, false
			return
		}
		b = b.Union(box)
	}
	for _, z := range c.Zones {
		grow(zoneBox(z))
	}
	for _, f := range c.Furniture {
		grow(furnitureBox(f))
	}
	return b
}

func zoneBox(z directive.Zone) geo.Box3 {
	return geo.RectAt(z.X, z.Z, z.W, z.D).Lift(0, ZoneSlabHeight)
}

func furnitureBox(f layout.FurnitureItem) geo.Box3 {
	return f.Bounds().Lift(0, f.H)
}
