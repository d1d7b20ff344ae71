package directive

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a directive from a YAML or JSON file.
func Load(path string) (*Directive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading directive file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a directive document. YAML is a superset of JSON, so both
// encodings are accepted.
func Parse(data []byte) (*Directive, error) {
	var d Directive
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing directive: %w", err)
	}
	return &d, nil
}

// Merge overlays next onto prev. Fields absent from next keep prev's value;
// nothing is cleared by omission. Camera fields are taken from next only,
// since they describe a one-shot transition rather than scene content.
func Merge(prev, next Directive) Directive {
	out := prev
	if next.Zones != nil {
		out.Zones = next.Zones
	}
	if next.StoreParams != nil {
		sp := StoreParams{}
		if prev.StoreParams != nil {
			sp = *prev.StoreParams
		}
		if next.StoreParams.StoreWidth != nil {
			sp.StoreWidth = next.StoreParams.StoreWidth
		}
		if next.StoreParams.StoreDepth != nil {
			sp.StoreDepth = next.StoreParams.StoreDepth
		}
		if next.StoreParams.StoreHeight != nil {
			sp.StoreHeight = next.StoreParams.StoreHeight
		}
		out.StoreParams = &sp
	}
	if next.ZoneScale != nil {
		out.ZoneScale = next.ZoneScale
	}
	if next.FlowOrder != nil {
		out.FlowOrder = next.FlowOrder
	}
	if next.Highlights != nil {
		out.Highlights = next.Highlights
	}
	if next.Annotations != nil {
		out.Annotations = next.Annotations
	}
	out.FocusZone = next.FocusZone
	out.CameraAngle = next.CameraAngle
	out.CameraPreset = next.CameraPreset
	return out
}

// HasCamera reports whether d carries any camera hint.
func (d Directive) HasCamera() bool {
	return d.FocusZone != "" || d.CameraAngle != "" || d.CameraPreset != ""
}
