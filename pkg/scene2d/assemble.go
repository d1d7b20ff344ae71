package scene2d

import (
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/geo"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/layout"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/scene"
)

// PreviewSamples is the number of curve samples per flow span.
const PreviewSamples = 8

// Assemble2D converts a scene into a top-down plan. Furniture is kept per
// item and also summarized by kind and zone category.
func Assemble2D(c *scene.Config) *Scene2D {
	return &Scene2D{
		Metadata:    assembleMetadata(c),
		Floor:       rectToCoords(geo.RectAt(0, 0, c.Store.Width, c.Store.Depth)),
		Zones:       assembleZones(c),
		Furniture:   assembleFurniture(c.Furniture),
		Flow:        assembleFlow(c.Flow),
		Annotations: assembleAnnotations(c.Annotations),
		Summary:     assembleSummary(c),
	}
}

func assembleMetadata(c *scene.Config) Metadata {
	zoneArea := 0.0
	for _, z := range c.Zones {
		zoneArea += z.Area()
	}
	return Metadata{
		Key:            c.Key,
		Dynamic:        c.Dynamic,
		StoreWidth:     c.Store.Width,
		StoreDepth:     c.Store.Depth,
		ZoneCount:      len(c.Zones),
		FurnitureCount: len(c.Furniture),
		FloorAreaSqm:   c.Store.Width * c.Store.Depth,
		ZoneAreaSqm:    zoneArea,
	}
}

func assembleZones(c *scene.Config) []Zone2D {
	category := make(map[string]directive.ZoneType, len(c.Zones))
	for cat, ids := range c.Groups.Categories {
		for _, id := range ids {
			category[id] = cat
		}
	}

	result := make([]Zone2D, 0, len(c.Zones))
	for _, z := range c.Zones {
		result = append(result, Zone2D{
			ID:          z.ID,
			Label:       z.Label,
			Category:    string(category[z.ID]),
			Color:       z.Color.Hex(),
			Center:      [2]float64{z.X, z.Z},
			Polygon:     rectToCoords(geo.RectAt(z.X, z.Z, z.W, z.D)),
			AreaSqm:     z.Area(),
			Furniture:   len(c.Groups.Furniture[z.ID]),
			Highlighted: c.Highlighted(z.ID),
		})
	}
	return result
}

func assembleFurniture(items []layout.FurnitureItem) []Furniture2D {
	result := make([]Furniture2D, 0, len(items))
	for _, f := range items {
		result = append(result, Furniture2D{
			ID:         f.ID,
			ZoneID:     f.ZoneID,
			Kind:       string(f.Kind),
			Position:   [2]float64{f.X, f.Z},
			Dimensions: [2]float64{f.W, f.D},
			Height:     f.H,
		})
	}
	return result
}

func assembleFlow(f scene.Flow) Flow2D {
	ctrl := make([]geo.Point2D, len(f.Waypoints))
	for i, p := range f.Waypoints {
		ctrl[i] = p.Flat()
	}
	curve := geo.CatmullRomSpline(ctrl, PreviewSamples)
	return Flow2D{
		Visible:   f.Visible,
		Waypoints: pointsToCoords(ctrl),
		Preview:   pointsToCoords(curve.Points),
		LengthM:   curve.Length(),
	}
}

func assembleAnnotations(anns []scene.Annotation) []Annotation2D {
	result := make([]Annotation2D, 0, len(anns))
	for _, a := range anns {
		result = append(result, Annotation2D{
			ID:       a.ID,
			ZoneID:   a.ZoneID,
			Text:     a.Text,
			Color:    a.Color.Hex(),
			Position: [2]float64{a.Anchor.X, a.Anchor.Z},
		})
	}
	return result
}

func assembleSummary(c *scene.Config) FurnitureSummary {
	s := FurnitureSummary{
		Total:      len(c.Furniture),
		Dropped:    c.Stats.DroppedFurniture,
		ByKind:     make(map[string]int),
		ByCategory: make(map[string]int),
	}
	for kind, ids := range c.Groups.Kinds {
		s.ByKind[string(kind)] = len(ids)
	}
	for cat, zoneIDs := range c.Groups.Categories {
		n := 0
		for _, id := range zoneIDs {
			n += len(c.Groups.Furniture[id])
		}
		s.ByCategory[string(cat)] = n
	}
	return s
}

// rectToCoords returns the corners of b, counter-clockwise from min.
func rectToCoords(b geo.AABB) [][2]float64 {
	return [][2]float64{
		{b.MinX, b.MinZ},
		{b.MaxX, b.MinZ},
		{b.MaxX, b.MaxZ},
		{b.MinX, b.MaxZ},
	}
}

func pointsToCoords(pts []geo.Point2D) [][2]float64 {
	coords := make([][2]float64, len(pts))
	for i, p := range pts {
		coords[i] = [2]float64{p.X, p.Z}
	}
	return coords
}
