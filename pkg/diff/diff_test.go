package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
)

func zs(specs ...directive.ZoneSpec) []directive.Zone {
	return directive.NormalizeZones(specs)
}

var (
	zoneA = directive.ZoneSpec{ID: "a", X: -5, Z: 0, W: 4, D: 4, Color: "#ff0000", Label: "A"}
	zoneB = directive.ZoneSpec{ID: "b", X: 5, Z: 0, W: 4, D: 4, Color: "#00ff00", Label: "B"}
	zoneC = directive.ZoneSpec{ID: "c", X: 0, Z: 6, W: 3, D: 3, Color: "#0000ff", Label: "C"}
)

func TestIdentity(t *testing.T) {
	z := zs(zoneA, zoneB, zoneC)
	r := Zones(z, z)
	assert.Empty(t, r.Added)
	assert.Empty(t, r.Removed)
	assert.Empty(t, r.Updated)
	assert.Equal(t, []string{"a", "b", "c"}, r.Unchanged)
	assert.True(t, r.Empty())
}

func TestAddRemove(t *testing.T) {
	r := Zones(zs(zoneA, zoneB), zs(zoneB, zoneC))
	require.Len(t, r.Added, 1)
	assert.Equal(t, "c", r.Added[0].ID)
	assert.Equal(t, []string{"a"}, r.Removed)
	assert.Empty(t, r.Updated)
	assert.Equal(t, []string{"b"}, r.Unchanged)
	assert.Equal(t, []string{"a", "c"}, r.Changed())
}

func TestColorOnlyChange(t *testing.T) {
	recolored := zoneB
	recolored.Color = "#00ff01"

	r := Zones(zs(zoneA, zoneB, zoneC), zs(zoneA, recolored, zoneC))
	require.Len(t, r.Updated, 1)
	u := r.Updated[0]
	assert.Equal(t, "b", u.ID)
	assert.NotEqual(t, u.Before.Color, u.After.Color)
	assert.Equal(t, []string{"a", "c"}, r.Unchanged)
	assert.Empty(t, r.Added)
	assert.Empty(t, r.Removed)
}

func TestEachComparedAttribute(t *testing.T) {
	edits := map[string]func(*directive.ZoneSpec){
		"x":     func(s *directive.ZoneSpec) { s.X++ },
		"z":     func(s *directive.ZoneSpec) { s.Z++ },
		"w":     func(s *directive.ZoneSpec) { s.W++ },
		"d":     func(s *directive.ZoneSpec) { s.D++ },
		"color": func(s *directive.ZoneSpec) { s.Color = "#123456" },
		"label": func(s *directive.ZoneSpec) { s.Label = "Renamed" },
	}
	for name, edit := range edits {
		t.Run(name, func(t *testing.T) {
			changed := zoneA
			edit(&changed)
			r := Zones(zs(zoneA), zs(changed))
			assert.Len(t, r.Updated, 1)
			assert.Empty(t, r.Unchanged)
		})
	}
}

func TestTypeNotCompared(t *testing.T) {
	typed := zoneA
	typed.Type = directive.ZoneGrocery
	r := Zones(zs(zoneA), zs(typed))
	assert.True(t, r.Empty())
}

func TestClampedSizesCompareEqual(t *testing.T) {
	big := zoneA
	big.W = 40
	bigger := zoneA
	bigger.W = 90
	r := Zones(zs(big), zs(bigger))
	assert.True(t, r.Empty(), "both clamp to the maximum extent")
}

func TestEmptySides(t *testing.T) {
	r := Zones(nil, zs(zoneA))
	assert.Len(t, r.Added, 1)
	assert.NotNil(t, r.Removed)

	r = Zones(zs(zoneA), nil)
	assert.Equal(t, []string{"a"}, r.Removed)
	assert.NotNil(t, r.Added)
}
