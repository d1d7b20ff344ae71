package scene

import (
	"math"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/geo"
)

// Baseline store envelope.
const (
	BaseWidth  = 30.0
	BaseDepth  = 20.0
	BaseHeight = 4.0
)

// Baseline visual constants for a BaseWidth x BaseDepth store.
const (
	baseGridSize      = 40.0
	baseGridDivisions = 40
	baseParticles     = 200
	baseFogNear       = 20.0
	baseFogFar        = 60.0

	minParticles = 50
	maxParticles = 2000

	minGridDivisions = 10
	maxGridDivisions = 400
)

// baselineZones is the static layout shown before any directive arrives.
var baselineZones = []directive.ZoneSpec{
	{ID: "entrance", X: 0, Z: 8.5, W: 6, D: 3, Color: "#9e9e9e", Label: "Main Entrance", Type: directive.ZoneEntrance},
	{ID: "apparel", X: -9, Z: 3, W: 10, D: 8, Color: "#e06666", Label: "Apparel", Type: directive.ZoneClothing},
	{ID: "fresh", X: 9, Z: 3, W: 8, D: 6, Color: "#6fa8dc", Label: "Refrigerated", Type: directive.ZoneRefrigerated},
	{ID: "checkout", X: 0, Z: 2, W: 5, D: 3, Color: "#8e7cc3", Label: "Checkout", Type: directive.ZoneCheckout},
	{ID: "grocery", X: -7, Z: -5.5, W: 12, D: 6, Color: "#93c47d", Label: "Grocery", Type: directive.ZoneGrocery},
	{ID: "cafe", X: 9, Z: -5.5, W: 8, D: 6, Color: "#f6b26b", Label: "Café Lounge", Type: directive.ZoneSeating},
	{ID: "storage", X: 2, Z: -8, W: 4, D: 3, Color: "#b7b7b7", Label: "Back Storage", Type: directive.ZoneStorage},
}

// BaselineZones returns a copy of the static zone list.
func BaselineZones() []directive.ZoneSpec {
	out := make([]directive.ZoneSpec, len(baselineZones))
	copy(out, baselineZones)
	return out
}

// BaselineStore returns the default store envelope.
func BaselineStore() Store {
	return Store{Width: BaseWidth, Depth: BaseDepth, Height: BaseHeight}
}

// VisualFor scales the baseline visual constants to a store. Grid and fog
// follow the larger linear ratio, particle count follows floor area.
func VisualFor(s Store) Visual {
	ratio := max(s.Width/BaseWidth, s.Depth/BaseDepth)
	area := (s.Width * s.Depth) / (BaseWidth * BaseDepth)

	// Clamp before converting: huge stores overflow int.
	particles := int(math.Round(geo.Clamp(baseParticles*area, minParticles, maxParticles)))
	divisions := int(math.Round(geo.Clamp(baseGridDivisions*ratio, minGridDivisions, maxGridDivisions)))

	return Visual{
		GridSize:       baseGridSize * ratio,
		GridDivisions:  divisions,
		ParticleCount:  particles,
		ParticleBounds: geo.V3(s.Width, s.Height, s.Depth),
		FogNear:        baseFogNear * ratio,
		FogFar:         baseFogFar * ratio,
	}
}
