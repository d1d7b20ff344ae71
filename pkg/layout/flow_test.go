package layout

import (
	"testing"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/geo"
)

func twoZones() []directive.Zone {
	return directive.NormalizeZones([]directive.ZoneSpec{
		{ID: "a", X: 0, Z: 5, W: 4, D: 4, Label: "A"},
		{ID: "b", X: 0, Z: -5, W: 4, D: 4, Label: "B"},
	})
}

func equalPath(a, b []geo.Vec3) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFlowExplicitOrder(t *testing.T) {
	got := FlowPath(twoZones(), []string{"a", "b"}, 20)
	want := []geo.Vec3{geo.V3(0, 0.3, 5), geo.V3(0, 0.3, -5)}
	if !equalPath(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlowExplicitOrderNonLinear(t *testing.T) {
	got := FlowPath(twoZones(), []string{"b", "a", "b"}, 20)
	want := []geo.Vec3{geo.V3(0, 0.3, -5), geo.V3(0, 0.3, 5), geo.V3(0, 0.3, -5)}
	if !equalPath(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlowUnknownIDsFallBackToDefault(t *testing.T) {
	got := FlowPath(twoZones(), []string{"a", "ghost"}, 20)
	want := []geo.Vec3{geo.V3(0, 0.3, 10), geo.V3(0, 0.3, 5), geo.V3(0, 0.3, -5)}
	if !equalPath(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlowDefaultSortsByDescendingZ(t *testing.T) {
	zones := directive.NormalizeZones([]directive.ZoneSpec{
		{ID: "back", X: 2, Z: -6, W: 4, D: 4},
		{ID: "front", X: -3, Z: 6, W: 4, D: 4},
		{ID: "mid-r", X: 4, Z: 0, W: 4, D: 4},
		{ID: "mid-l", X: -4, Z: 0, W: 4, D: 4},
	})
	got := FlowPath(zones, nil, 30)
	want := []geo.Vec3{
		geo.V3(0, 0.3, 15),
		geo.V3(-3, 0.3, 6),
		geo.V3(-4, 0.3, 0),
		geo.V3(4, 0.3, 0),
		geo.V3(2, 0.3, -6),
	}
	if !equalPath(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlowMinimum(t *testing.T) {
	one := twoZones()[:1]
	for name, zones := range map[string][]directive.Zone{"none": nil, "one": one} {
		got := FlowPath(zones, []string{"a", "a"}, 20)
		if len(got) < 2 {
			t.Errorf("%s: got %d waypoints, want at least 2", name, len(got))
		}
		for _, p := range got {
			if p.Y != FlowHeight {
				t.Errorf("%s: waypoint %v not at flow height", name, p)
			}
		}
	}
}
