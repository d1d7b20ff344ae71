package scene

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
)

// keyNamespace scopes config keys so they never collide with other
// name-based UUIDs.
var keyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:neuraltwin:store-scene"))

// keyInputs is every directive field that changes the built scene. Camera
// hints are excluded: they retarget the camera without a rebuild.
type keyInputs struct {
	Zones       []directive.ZoneSpec           `json:"zones"`
	HasZones    bool                           `json:"has_zones"`
	Store       *directive.StoreParams         `json:"store"`
	Scale       map[string]directive.ZoneScale `json:"scale"`
	Flow        *directive.FlowOrder           `json:"flow"`
	Highlights  []string                       `json:"highlights"`
	Annotations []directive.Annotation         `json:"annotations"`
}

// ConfigKey returns a name-based UUID of the scene-shaping fields of d.
// Equal keys mean Build would produce identical configs.
func ConfigKey(d *directive.Directive) string {
	if d == nil {
		d = &directive.Directive{}
	}
	in := keyInputs{
		Zones:       d.Zones,
		HasZones:    d.Zones != nil,
		Store:       d.StoreParams,
		Scale:       d.ZoneScale,
		Flow:        d.FlowOrder,
		Highlights:  d.Highlights,
		Annotations: d.Annotations,
	}
	// Map keys marshal sorted, so the encoding is canonical.
	data, err := json.Marshal(in)
	if err != nil {
		// NaN or Inf coordinates: no stable encoding, so never memoize.
		return uuid.NewString()
	}
	return uuid.NewSHA1(keyNamespace, data).String()
}
