package directive

// Directive is one message from the conversational backend describing the
// desired scene. Every field is optional; an absent field keeps whatever the
// previous directive (or the baseline) established.
type Directive struct {
	Zones        []ZoneSpec           `yaml:"zones,omitempty" json:"zones,omitempty"`
	StoreParams  *StoreParams         `yaml:"storeParams,omitempty" json:"storeParams,omitempty"`
	ZoneScale    map[string]ZoneScale `yaml:"zoneScale,omitempty" json:"zoneScale,omitempty"`
	FocusZone    string               `yaml:"focusZone,omitempty" json:"focusZone,omitempty"`
	CameraAngle  CameraAngle          `yaml:"cameraAngle,omitempty" json:"cameraAngle,omitempty"`
	CameraPreset string               `yaml:"cameraPreset,omitempty" json:"cameraPreset,omitempty"`
	FlowOrder    *FlowOrder           `yaml:"flowOrder,omitempty" json:"flowOrder,omitempty"`
	Highlights   []string             `yaml:"highlights,omitempty" json:"highlights,omitempty"`
	Annotations  []Annotation         `yaml:"annotations,omitempty" json:"annotations,omitempty"`
}

// ZoneSpec is a zone as it arrives on the wire, before defaults and clamping.
type ZoneSpec struct {
	ID    string   `yaml:"id" json:"id"`
	X     float64  `yaml:"x" json:"x"`
	Z     float64  `yaml:"z" json:"z"`
	W     float64  `yaml:"w" json:"w"`
	D     float64  `yaml:"d" json:"d"`
	Color string   `yaml:"color,omitempty" json:"color,omitempty"`
	Label string   `yaml:"label,omitempty" json:"label,omitempty"`
	Type  ZoneType `yaml:"type,omitempty" json:"type,omitempty"`
}

// StoreParams overrides the store envelope. Nil fields keep the current value.
type StoreParams struct {
	StoreWidth  *float64 `yaml:"storeWidth,omitempty" json:"storeWidth,omitempty"`
	StoreDepth  *float64 `yaml:"storeDepth,omitempty" json:"storeDepth,omitempty"`
	StoreHeight *float64 `yaml:"storeHeight,omitempty" json:"storeHeight,omitempty"`
}

// ZoneScale multiplies a zone footprint. Nil factors mean 1.
type ZoneScale struct {
	ScaleX *float64 `yaml:"scaleX,omitempty" json:"scaleX,omitempty"`
	ScaleZ *float64 `yaml:"scaleZ,omitempty" json:"scaleZ,omitempty"`
}

// Factors returns the X and Z multipliers with defaults applied.
func (s ZoneScale) Factors() (float64, float64) {
	sx, sz := 1.0, 1.0
	if s.ScaleX != nil {
		sx = *s.ScaleX
	}
	if s.ScaleZ != nil {
		sz = *s.ScaleZ
	}
	return sx, sz
}

// Annotation is a floating text tag attached to a zone.
type Annotation struct {
	Zone  string `yaml:"zone" json:"zone"`
	Text  string `yaml:"text" json:"text"`
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// CameraAngle picks the framing used for a focus zone.
type CameraAngle string

const (
	AngleFront       CameraAngle = "front"
	AngleSide        CameraAngle = "side"
	AngleTop         CameraAngle = "top"
	AnglePerspective CameraAngle = "perspective"
)

// ZoneType is the semantic category of a zone. It drives fixture selection.
type ZoneType string

const (
	ZoneClothing     ZoneType = "clothing"
	ZoneRefrigerated ZoneType = "refrigerated"
	ZoneGrocery      ZoneType = "grocery"
	ZoneSeating      ZoneType = "seating"
	ZoneExperience   ZoneType = "experience"
	ZoneStorage      ZoneType = "storage"
	ZoneCheckout     ZoneType = "checkout"
	ZoneEntrance     ZoneType = "entrance"
	ZoneCorridor     ZoneType = "corridor"
	ZoneDisplay      ZoneType = "display"
)

// Known reports whether t is one of the declared zone types.
func (t ZoneType) Known() bool {
	switch t {
	case ZoneClothing, ZoneRefrigerated, ZoneGrocery, ZoneSeating, ZoneExperience,
		ZoneStorage, ZoneCheckout, ZoneEntrance, ZoneCorridor, ZoneDisplay:
		return true
	}
	return false
}

// Float is a helper for building optional numeric fields.
func Float(v float64) *float64 {
	return &v
}
