package scene

import (
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/geo"
)

// PickKind tags what a pickable box belongs to.
type PickKind string

const (
	PickZone      PickKind = "zone"
	PickFurniture PickKind = "furniture"
)

// Pickable is a box the host raycasts pointer input against.
type Pickable struct {
	ID     string   `json:"id"`
	Kind   PickKind `json:"kind"`
	ZoneID string   `json:"zone_id"`
	Box    geo.Box3 `json:"box"`
}

// Pickables returns furniture boxes followed by zone floor slabs, so a host
// taking the first hit prefers the fixture standing on a zone.
func (c *Config) Pickables() []Pickable {
	out := make([]Pickable, 0, len(c.Furniture)+len(c.Zones))
	for _, f := range c.Furniture {
		out = append(out, Pickable{ID: f.ID, Kind: PickFurniture, ZoneID: f.ZoneID, Box: furnitureBox(f)})
	}
	for _, z := range c.Zones {
		out = append(out, Pickable{ID: z.ID, Kind: PickZone, ZoneID: z.ID, Box: zoneBox(z)})
	}
	return out
}

// AnchorKind tags a label anchor.
type AnchorKind string

const (
	AnchorZone       AnchorKind = "zone"
	AnchorAnnotation AnchorKind = "annotation"
)

// Anchor is a world-space label position for the host to project.
type Anchor struct {
	ID       string     `json:"id"`
	Kind     AnchorKind `json:"kind"`
	Text     string     `json:"text"`
	Position geo.Vec3   `json:"position"`
}

// LabelAnchors returns one anchor per zone label, then one per annotation.
func (c *Config) LabelAnchors() []Anchor {
	out := make([]Anchor, 0, len(c.Zones)+len(c.Annotations))
	for _, z := range c.Zones {
		out = append(out, Anchor{
			ID:       z.ID,
			Kind:     AnchorZone,
			Text:     z.Label,
			Position: geo.V3(z.X, min(ZoneLabelHeight, c.Store.Height), z.Z),
		})
	}
	for _, a := range c.Annotations {
		out = append(out, Anchor{ID: a.ID, Kind: AnchorAnnotation, Text: a.Text, Position: a.Anchor})
	}
	return out
}
