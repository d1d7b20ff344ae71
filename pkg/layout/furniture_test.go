package layout

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/geo"
)

func testZones() []directive.Zone {
	return directive.NormalizeZones([]directive.ZoneSpec{
		{ID: "apparel", X: -8, Z: 4, W: 10, D: 8, Label: "Apparel", Color: "#e06666"},
		{ID: "fresh", X: 6, Z: 4, W: 8, D: 8, Label: "Refrigerated", Color: "#6fa8dc"},
		{ID: "snacks", X: -6, Z: -5, W: 12, D: 6, Label: "Snack Gondolas"},
		{ID: "cafe", X: 8, Z: -5, W: 6, D: 6, Label: "Café"},
		{ID: "door", X: 0, Z: 9, W: 4, D: 2, Label: "Entrance"},
		{ID: "till", X: 0, Z: -1, W: 6, D: 3, Type: directive.ZoneCheckout},
	})
}

// crowdedZones overlaps several zones so cross-zone collisions are exercised.
func crowdedZones() []directive.Zone {
	var specs []directive.ZoneSpec
	for i := 0; i < 6; i++ {
		specs = append(specs, directive.ZoneSpec{
			ID:    fmt.Sprintf("z%d", i),
			X:     float64(i) * 1.5,
			Z:     float64(i%2) * 1.5,
			W:     7,
			D:     7,
			Label: "Grocery",
		})
	}
	return directive.NormalizeZones(specs)
}

func assertPlacementSound(t *testing.T, zones []directive.Zone, items []FurnitureItem) {
	t.Helper()
	byID := make(map[string]directive.Zone)
	for _, z := range zones {
		byID[z.ID] = z
	}
	for i, a := range items {
		z, ok := byID[a.ZoneID]
		if !ok {
			t.Fatalf("item %s references unknown zone %s", a.ID, a.ZoneID)
		}
		if !Interior(z).Expand(1e-6).Contains(a.Bounds()) {
			t.Errorf("item %s %+v escapes interior of zone %s", a.ID, a.Bounds(), z.ID)
		}
		for _, b := range items[i+1:] {
			if a.Bounds().OverlapsWithin(b.Bounds(), ItemMargin-1e-6) {
				t.Errorf("items %s and %s closer than %.1f", a.ID, b.ID, ItemMargin)
			}
		}
	}
}

func TestPlaceFurnitureNonOverlapping(t *testing.T) {
	for name, zones := range map[string][]directive.Zone{
		"spread":  testZones(),
		"crowded": crowdedZones(),
	} {
		t.Run(name, func(t *testing.T) {
			items, occ, report := PlaceFurniture(zones)
			if len(items) == 0 {
				t.Fatal("expected furniture to be placed")
			}
			if len(occ.Boxes) != len(items) {
				t.Errorf("occupancy has %d boxes, want %d", len(occ.Boxes), len(items))
			}
			if !report.Valid {
				t.Errorf("unexpected errors: %v", report.Errors)
			}
			assertPlacementSound(t, zones, items)
		})
	}
}

func TestPlaceFurnitureDeterministic(t *testing.T) {
	a, _, _ := PlaceFurniture(testZones())
	b, _, _ := PlaceFurniture(testZones())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same zones produced different furniture")
	}
}

func TestPlaceFurnitureSeedDependsOnPosition(t *testing.T) {
	zones := testZones()
	a, _, _ := PlaceFurniture(zones[:1])
	moved := zones[0]
	moved.X += 0.5
	b, _, _ := PlaceFurniture([]directive.Zone{moved})
	if len(a) == 0 || len(b) == 0 {
		t.Fatal("expected furniture in both layouts")
	}
	if a[0].W == b[0].W && a[0].D == b[0].D {
		t.Error("moving a zone should reseed its fixture dimensions")
	}
}

func TestEntranceNeverFurnished(t *testing.T) {
	items, _, _ := PlaceFurniture(testZones())
	for _, it := range items {
		if it.ZoneID == "door" {
			t.Errorf("entrance zone got furniture %s", it.ID)
		}
	}
}

func TestOversizedZoneClampedBeforeDensity(t *testing.T) {
	zones := directive.NormalizeZones([]directive.ZoneSpec{
		{ID: "big", W: 20, D: 20, Label: "Apparel"},
	})
	if zones[0].W != 15 || zones[0].D != 15 {
		t.Fatalf("got %vx%v, want 15x15", zones[0].W, zones[0].D)
	}
	items, _, _ := PlaceFurniture(zones)
	// 225 * 0.08 rounds to 18, clamped to the clothing max of 6.
	if len(items) != 6 {
		t.Errorf("got %d items, want 6", len(items))
	}
	assertPlacementSound(t, zones, items)
}

func TestFurnitureIDsAndKinds(t *testing.T) {
	items, _, _ := PlaceFurniture(testZones()[:1])
	for i, it := range items {
		want := fmt.Sprintf("apparel_f%02d", i)
		if it.ID != want {
			t.Errorf("item %d id = %s, want %s", i, it.ID, want)
		}
		if it.Label == "" || it.Kind == "" {
			t.Errorf("item %s missing kind or label", it.ID)
		}
	}
	if len(items) >= 2 && items[0].Kind == items[1].Kind {
		t.Error("expected clothing fixtures to alternate kinds")
	}
}

func TestOccupancyThreadedAcrossZones(t *testing.T) {
	// A box covering the whole floor blocks every placement.
	occ := Occupancy{Boxes: []geo.AABB{geo.RectAt(0, 0, 100, 100)}}
	zone := directive.NormalizeZones([]directive.ZoneSpec{{ID: "g", W: 8, D: 8, Label: "Grocery"}})[0]
	items, out, dropped := PlaceZone(zone, occ)
	if len(items) != 0 {
		t.Fatalf("expected every item dropped, got %d", len(items))
	}
	if dropped == 0 {
		t.Error("expected dropped count")
	}
	if len(out.Boxes) != 1 {
		t.Errorf("occupancy grew to %d boxes", len(out.Boxes))
	}
}

func TestOccupancyWithDoesNotAlias(t *testing.T) {
	base := Occupancy{Boxes: make([]geo.AABB, 1, 4)}
	a := base.With(geo.RectAt(1, 1, 1, 1))
	b := base.With(geo.RectAt(5, 5, 1, 1))
	if a.Boxes[1] == b.Boxes[1] {
		t.Error("With shares backing storage between branches")
	}
	if len(base.Boxes) != 1 {
		t.Error("With mutated receiver")
	}
}

func TestMinimumZoneDropsOversizedFixtures(t *testing.T) {
	// A 2x2 zone leaves a 1.2x1.2 interior, too small for any refrigerator.
	zones := directive.NormalizeZones([]directive.ZoneSpec{{ID: "tiny", W: 1, D: 1, Label: "Fridge"}})
	items, _, report := PlaceFurniture(zones)
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
	if len(report.Info) == 0 {
		t.Error("expected placement summary in report")
	}
}
