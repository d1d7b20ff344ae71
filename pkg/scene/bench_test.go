package scene

import (
	"fmt"
	"testing"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
)

// gridDirective lays out n zones in rows of five across a store sized to fit.
func gridDirective(n int) *directive.Directive {
	labels := []string{"Apparel", "Frozen", "Grocery", "Café", "Kiosk", "Storage", "Checkout"}
	d := &directive.Directive{}
	rows := (n + 4) / 5
	width, depth := 5*9.0, float64(rows)*9
	for i := 0; i < n; i++ {
		col, row := i%5, i/5
		d.Zones = append(d.Zones, directive.ZoneSpec{
			ID:    fmt.Sprintf("z%02d", i),
			X:     -width/2 + 4.5 + float64(col)*9,
			Z:     depth/2 - 4.5 - float64(row)*9,
			W:     8,
			D:     8,
			Label: labels[i%len(labels)],
		})
	}
	d.StoreParams = &directive.StoreParams{StoreWidth: &width, StoreDepth: &depth}
	return d
}

func runBuild(t testing.TB, n int) *Config {
	t.Helper()
	c, report := Build(gridDirective(n))
	if !report.Valid {
		t.Fatalf("build failed for %d zones: %s", n, report.Summary)
	}
	return c
}

func TestLargeStore40Zones(t *testing.T) {
	c := runBuild(t, 40)
	if len(c.Zones) != 40 {
		t.Fatalf("expected 40 zones, got %d", len(c.Zones))
	}
	if r := ValidateConfig(c); !r.Valid {
		t.Fatalf("large store invalid: %s", r.Summary)
	}
	t.Logf("40 zones: %d furniture, %d dropped", len(c.Furniture), c.Stats.DroppedFurniture)

	for kind, ids := range c.Groups.Kinds {
		t.Logf("  %s: %d", kind, len(ids))
	}
}

func BenchmarkBuild10(b *testing.B) {
	for b.Loop() {
		runBuild(b, 10)
	}
}

func BenchmarkBuild40(b *testing.B) {
	for b.Loop() {
		runBuild(b, 40)
	}
}

func BenchmarkConfigKey(b *testing.B) {
	d := gridDirective(40)
	for b.Loop() {
		ConfigKey(d)
	}
}
