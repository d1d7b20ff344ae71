package scene2d

import (
	"math"
	"testing"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/scene"
)

func assembleTestScene2D(t *testing.T) (*scene.Config, *Scene2D) {
	t.Helper()
	c, report := scene.Build(&directive.Directive{
		Zones: []directive.ZoneSpec{
			{ID: "door", X: 0, Z: 8, W: 4, D: 2, Label: "Entrance"},
			{ID: "wear", X: -6, Z: 3, W: 8, D: 6, Color: "#e06666", Label: "Apparel"},
			{ID: "cold", X: 6, Z: -4, W: 8, D: 6, Color: "#6fa8dc", Label: "Refrigerated"},
		},
		Highlights:  []string{"cold"},
		Annotations: []directive.Annotation{{Zone: "wear", Text: "Sale"}},
	})
	if !report.Valid {
		t.Fatalf("build failed: %v", report.Errors)
	}
	return c, Assemble2D(c)
}

func TestAssemble2DProducesScene(t *testing.T) {
	_, s := assembleTestScene2D(t)
	if s == nil {
		t.Fatal("expected non-nil scene")
	}
	if len(s.Zones) == 0 {
		t.Error("no zones")
	}
	t.Logf("2D scene: %d zones, %d furniture, %d preview points", len(s.Zones), len(s.Furniture), len(s.Flow.Preview))
}

func TestAssemble2DMetadata(t *testing.T) {
	c, s := assembleTestScene2D(t)
	m := s.Metadata
	if m.Key != c.Key {
		t.Error("key not carried over")
	}
	if m.ZoneCount != 3 {
		t.Errorf("expected 3 zones, got %d", m.ZoneCount)
	}
	if m.FurnitureCount != len(c.Furniture) {
		t.Errorf("furniture count %d != %d", m.FurnitureCount, len(c.Furniture))
	}
	if m.FloorAreaSqm != scene.BaseWidth*scene.BaseDepth {
		t.Errorf("unexpected floor area %.1f", m.FloorAreaSqm)
	}
	if m.ZoneAreaSqm != 8+48+48 {
		t.Errorf("unexpected zone area %.1f", m.ZoneAreaSqm)
	}
}

func TestAssemble2DZones(t *testing.T) {
	_, s := assembleTestScene2D(t)
	for _, z := range s.Zones {
		if len(z.Polygon) != 4 {
			t.Errorf("zone %s polygon has %d points", z.ID, len(z.Polygon))
		}
		if z.Color == "" || z.Category == "" {
			t.Errorf("zone %s missing colour or category", z.ID)
		}
	}
	door := s.Zones[0]
	if door.Category != string(directive.ZoneEntrance) || door.Furniture != 0 {
		t.Errorf("entrance should be unfurnished, got %+v", door)
	}
	if !s.Zones[2].Highlighted || s.Zones[1].Highlighted {
		t.Error("highlight flags wrong")
	}
	if s.Zones[1].Color != "#e06666" {
		t.Errorf("unexpected colour %s", s.Zones[1].Color)
	}
}

func TestAssemble2DFlowPreview(t *testing.T) {
	_, s := assembleTestScene2D(t)
	f := s.Flow
	if len(f.Waypoints) < 2 {
		t.Fatalf("expected at least 2 waypoints, got %d", len(f.Waypoints))
	}
	want := (len(f.Waypoints)-1)*PreviewSamples + 1
	if len(f.Preview) != want {
		t.Errorf("expected %d preview points, got %d", want, len(f.Preview))
	}
	if f.Preview[0] != f.Waypoints[0] || f.Preview[len(f.Preview)-1] != f.Waypoints[len(f.Waypoints)-1] {
		t.Error("preview must start and end on the control points")
	}
	straight := 0.0
	for i := 1; i < len(f.Waypoints); i++ {
		a, b := f.Waypoints[i-1], f.Waypoints[i]
		straight += math.Hypot(b[0]-a[0], b[1]-a[1])
	}
	if f.LengthM < straight-1e-9 {
		t.Errorf("curve length %.2f shorter than control polygon %.2f", f.LengthM, straight)
	}
}

func TestAssemble2DSummary(t *testing.T) {
	c, s := assembleTestScene2D(t)
	total := 0
	for _, n := range s.Summary.ByKind {
		total += n
	}
	if total != len(c.Furniture) || s.Summary.Total != total {
		t.Errorf("kind summary %d / total %d, want %d", total, s.Summary.Total, len(c.Furniture))
	}
	byCat := 0
	for _, n := range s.Summary.ByCategory {
		byCat += n
	}
	if byCat != total {
		t.Errorf("category summary %d, want %d", byCat, total)
	}
}

func TestAssemble2DAnnotations(t *testing.T) {
	_, s := assembleTestScene2D(t)
	if len(s.Annotations) != 1 {
		t.Fatalf("expected 1 annotation, got %d", len(s.Annotations))
	}
	a := s.Annotations[0]
	if a.Position != [2]float64{-6, 3} || a.Color != "#ffffff" {
		t.Errorf("unexpected annotation %+v", a)
	}
}
