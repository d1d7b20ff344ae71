package scene

import (
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/camera"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/fixture"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/geo"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/layout"
)

// Store is the store envelope in store units. The floor spans
// [-Width/2, Width/2] x [-Depth/2, Depth/2]; +Z is the front.
type Store struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// Flow is the customer path. Waypoints are always present, Visible
// toggles drawing.
type Flow struct {
	Waypoints []geo.Vec3 `json:"waypoints"`
	Visible   bool       `json:"visible"`
}

// Visual holds renderer constants that scale with the store.
type Visual struct {
	GridSize       float64  `json:"grid_size"`
	GridDivisions  int      `json:"grid_divisions"`
	ParticleCount  int      `json:"particle_count"`
	ParticleBounds geo.Vec3 `json:"particle_bounds"`
	FogNear        float64  `json:"fog_near"`
	FogFar         float64  `json:"fog_far"`
}

// Annotation is a resolved floating tag.
type Annotation struct {
	ID     string        `json:"id"`
	ZoneID string        `json:"zone_id"`
	Text   string        `json:"text"`
	Color  directive.RGB `json:"color"`
	Anchor geo.Vec3      `json:"anchor"`
}

// Groups indexes ids for fast filtering.
type Groups struct {
	Categories map[directive.ZoneType][]string `json:"categories"`
	Kinds      map[fixture.Kind][]string       `json:"kinds"`
	Furniture  map[string][]string             `json:"furniture"` // zone id -> item ids
}

// Stats counts what the builder repaired or dropped.
type Stats struct {
	DroppedFurniture    int `json:"dropped_furniture"`
	DroppedAnnotations  int `json:"dropped_annotations"`
	IgnoredHighlights   int `json:"ignored_highlights"`
	ScaledZones         int `json:"scaled_zones"`
	ResolvedFlowEntries int `json:"resolved_flow_entries"`
}

// Config is the immutable, fully resolved scene. One Config determines one
// renderable scene; it is replaced, never edited.
type Config struct {
	Key         string                      `json:"key"`
	Dynamic     bool                        `json:"dynamic"` // zones came from a directive
	Store       Store                       `json:"store"`
	Zones       []directive.Zone            `json:"zones"`
	Furniture   []layout.FurnitureItem      `json:"furniture"`
	Flow        Flow                        `json:"flow"`
	Visual      Visual                      `json:"visual"`
	Presets     map[string]camera.Transform `json:"presets"`
	Highlights  []string                    `json:"highlights"`
	Annotations []Annotation                `json:"annotations"`
	Groups      Groups                      `json:"groups"`
	Bounds      geo.Box3                    `json:"bounds"`
	Stats       Stats                       `json:"stats"`
}

// NewConfig creates an empty config with initialized collections.
func NewConfig() *Config {
	return &Config{
		Zones:       []directive.Zone{},
		Furniture:   []layout.FurnitureItem{},
		Highlights:  []string{},
		Annotations: []Annotation{},
		Presets:     camera.Presets(),
		Groups: Groups{
			Categories: make(map[directive.ZoneType][]string),
			Kinds:      make(map[fixture.Kind][]string),
			Furniture:  make(map[string][]string),
		},
	}
}

// Zone returns the zone with the given id.
func (c *Config) Zone(id string) (directive.Zone, bool) {
	for _, z := range c.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return directive.Zone{}, false
}

// ZoneIDs returns zone ids in config order.
func (c *Config) ZoneIDs() []string {
	ids := make([]string, len(c.Zones))
	for i, z := range c.Zones {
		ids[i] = z.ID
	}
	return ids
}

// Highlighted reports whether a zone should pulse.
func (c *Config) Highlighted(id string) bool {
	for _, h := range c.Highlights {
		if h == id {
			return true
		}
	}
	return false
}
