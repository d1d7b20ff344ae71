// Package camera resolves camera targets from directives and eases a live
// camera toward them, one frame at a time.
package camera

import (
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/geo"
)

// Transform is a camera pose.
type Transform struct {
	Position geo.Vec3 `json:"position"`
	LookAt   geo.Vec3 `json:"look_at"`
	FOV      float64  `json:"fov"`
}

// Named presets.
const (
	Overview    = "overview"
	Entry       = "entry"
	Exploration = "exploration"
	Purchase    = "purchase"
	Topdown     = "topdown"
)

// FocusFOV is the field of view used when framing a single zone.
const FocusFOV = 45.0

// topEpsilon keeps a straight-down camera off the look-at axis.
const topEpsilon = 0.01

var presets = map[string]Transform{
	Overview:    {Position: geo.V3(0, 18, 22), LookAt: geo.V3(0, 0, 0), FOV: 50},
	Entry:       {Position: geo.V3(0, 3, 14), LookAt: geo.V3(0, 1.5, 0), FOV: 60},
	Exploration: {Position: geo.V3(-10, 8, 10), LookAt: geo.V3(0, 0, -2), FOV: 55},
	Purchase:    {Position: geo.V3(8, 5, -2), LookAt: geo.V3(6, 1, -6), FOV: 50},
	Topdown:     {Position: geo.V3(0, 30, topEpsilon), LookAt: geo.V3(0, 0, 0), FOV: 45},
}

// PresetNames lists the presets in display order.
var PresetNames = []string{Overview, Entry, Exploration, Purchase, Topdown}

// Preset returns a named preset.
func Preset(name string) (Transform, bool) {
	t, ok := presets[name]
	return t, ok
}

// Presets returns a copy of the preset table.
func Presets() map[string]Transform {
	out := make(map[string]Transform, len(presets))
	for k, v := range presets {
		out[k] = v
	}
	return out
}

// PresetForAngle maps a bare angle hint (no focus zone) to a preset.
func PresetForAngle(a directive.CameraAngle) (string, bool) {
	switch a {
	case directive.AngleTop:
		return Topdown, true
	case directive.AngleFront:
		return Entry, true
	case directive.AngleSide:
		return Exploration, true
	case directive.AnglePerspective:
		return Overview, true
	}
	return "", false
}

// FocusDistance is how far the camera stands from a framed zone.
func FocusDistance(z directive.Zone) float64 {
	return max(z.W, z.D)*1.2 + 5
}

// Focus frames a zone from the given angle. Unknown angles use the
// perspective corner.
func Focus(z directive.Zone, angle directive.CameraAngle) Transform {
	dist := FocusDistance(z)
	var pos geo.Vec3
	switch angle {
	case directive.AngleFront:
		pos = geo.V3(z.X, dist*0.5, z.Z+dist)
	case directive.AngleSide:
		pos = geo.V3(z.X+dist, dist*0.5, z.Z)
	case directive.AngleTop:
		pos = geo.V3(z.X, dist*1.5, z.Z+topEpsilon)
	default:
		pos = geo.V3(z.X+dist*0.7, dist*0.8, z.Z+dist*0.7)
	}
	return Transform{
		Position: pos,
		LookAt:   geo.V3(z.X, 0, z.Z),
		FOV:      FocusFOV,
	}
}
