package directive

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// MinZoneExtent and MaxZoneExtent bound zone width and depth in store units.
	MinZoneExtent = 2.0
	MaxZoneExtent = 15.0

	// DefaultZoneColor is used when a zone carries no parsable colour.
	DefaultZoneColor = "#808080"
)

// Zone is a normalized zone: defaults applied, footprint clamped. Zones are
// never mutated once built into a scene.
type Zone struct {
	ID    string   `json:"id"`
	X     float64  `json:"x"`
	Z     float64  `json:"z"`
	W     float64  `json:"w"`
	D     float64  `json:"d"`
	Color RGB      `json:"color"`
	Label string   `json:"label"`
	Type  ZoneType `json:"type,omitempty"`
}

// Area returns the footprint area.
func (z Zone) Area() float64 {
	return z.W * z.D
}

// SameAs reports whether z and o agree on every compared attribute
// (position, footprint, colour and label).
func (z Zone) SameAs(o Zone) bool {
	return z.X == o.X && z.Z == o.Z && z.W == o.W && z.D == o.D &&
		z.Color == o.Color && z.Label == o.Label
}

// RGB is a colour with channels in [0, 1]. It serializes as "#rrggbb".
type RGB struct {
	R, G, B float64
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

func (c RGB) String() string {
	return c.Hex()
}

// MarshalJSON writes the hex form.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// UnmarshalJSON reads the hex form.
func (c *RGB) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseColor(s)
	if !ok {
		return fmt.Errorf("invalid colour %q", s)
	}
	*c = parsed
	return nil
}

// ParseColor parses "#rrggbb", "#rgb" or the same without the leading '#'.
// Channels are quantized to 8 bits so equal inputs compare equal.
func ParseColor(s string) (RGB, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, false
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

// MustColor parses a colour or panics. For package-level tables only.
func MustColor(s string) RGB {
	c, ok := ParseColor(s)
	if !ok {
		panic(fmt.Sprintf("directive: bad colour literal %q", s))
	}
	return c
}

// Normalize applies zone defaults: unparsable colour becomes neutral gray,
// missing label becomes the id, width and depth are clamped into
// [MinZoneExtent, MaxZoneExtent]. Unknown types are dropped so label
// inference applies.
func (s ZoneSpec) Normalize() Zone {
	color, ok := ParseColor(s.Color)
	if !ok {
		color = MustColor(DefaultZoneColor)
	}
	label := strings.TrimSpace(s.Label)
	if label == "" {
		label = s.ID
	}
	zt := ZoneType(strings.ToLower(strings.TrimSpace(string(s.Type))))
	if !zt.Known() {
		zt = ""
	}
	return Zone{
		ID:    s.ID,
		X:     finite(s.X),
		Z:     finite(s.Z),
		W:     ClampExtent(s.W),
		D:     ClampExtent(s.D),
		Color: color,
		Label: label,
		Type:  zt,
	}
}

// Scaled returns z with its footprint multiplied and re-clamped.
func (z Zone) Scaled(sx, sz float64) Zone {
	z.W = ClampExtent(z.W * sx)
	z.D = ClampExtent(z.D * sz)
	return z
}

// ClampExtent clamps a zone width or depth. Non-positive and NaN values map
// to the floor.
func ClampExtent(v float64) float64 {
	if math.IsNaN(v) || v < MinZoneExtent {
		return MinZoneExtent
	}
	if v > MaxZoneExtent {
		return MaxZoneExtent
	}
	return v
}

// NormalizeZones normalizes a zone list. Zones without an id are skipped;
// a repeated id replaces the earlier entry in place.
func NormalizeZones(specs []ZoneSpec) []Zone {
	zones := make([]Zone, 0, len(specs))
	index := make(map[string]int, len(specs))
	for _, s := range specs {
		if strings.TrimSpace(s.ID) == "" {
			continue
		}
		z := s.Normalize()
		if i, dup := index[z.ID]; dup {
			zones[i] = z
			continue
		}
		index[z.ID] = len(zones)
		zones = append(zones, z)
	}
	return zones
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
