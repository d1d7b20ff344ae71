package fixture

import "github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/geo"

// Preset bounds the dimensions of one fixture kind, in store units.
type Preset struct {
	W, H, D [2]float64 // [min, max]
}

// Dims is a concrete fixture size.
type Dims struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
	D float64 `json:"d"`
}

var presets = map[Kind]Preset{
	KindClothingRack:    {W: [2]float64{1.2, 1.8}, H: [2]float64{1.4, 1.7}, D: [2]float64{0.5, 0.6}},
	KindDisplayTable:    {W: [2]float64{1.0, 1.4}, H: [2]float64{0.8, 0.9}, D: [2]float64{0.7, 1.0}},
	KindRefrigerator:    {W: [2]float64{1.2, 2.0}, H: [2]float64{1.9, 2.2}, D: [2]float64{0.7, 0.9}},
	KindGondola:         {W: [2]float64{1.5, 2.4}, H: [2]float64{1.4, 1.8}, D: [2]float64{0.6, 0.9}},
	KindShelfUnit:       {W: [2]float64{1.0, 1.6}, H: [2]float64{1.6, 2.0}, D: [2]float64{0.4, 0.5}},
	KindCafeTable:       {W: [2]float64{0.7, 0.9}, H: [2]float64{0.72, 0.76}, D: [2]float64{0.7, 0.9}},
	KindBench:           {W: [2]float64{1.2, 1.6}, H: [2]float64{0.45, 0.5}, D: [2]float64{0.4, 0.5}},
	KindKiosk:           {W: [2]float64{0.6, 0.9}, H: [2]float64{1.5, 1.8}, D: [2]float64{0.5, 0.7}},
	KindStorageRack:     {W: [2]float64{1.5, 2.2}, H: [2]float64{2.0, 2.4}, D: [2]float64{0.6, 0.8}},
	KindCheckoutCounter: {W: [2]float64{1.4, 2.0}, H: [2]float64{0.9, 1.0}, D: [2]float64{0.6, 0.8}},
	KindDisplayCase:     {W: [2]float64{0.9, 1.4}, H: [2]float64{1.0, 1.3}, D: [2]float64{0.5, 0.7}},
}

// PresetFor returns the dimension bounds for a kind. Unknown kinds use the
// display case preset.
func PresetFor(k Kind) Preset {
	if p, ok := presets[k]; ok {
		return p
	}
	return presets[KindDisplayCase]
}

// Draw picks concrete dimensions from the preset with r.
func (p Preset) Draw(r *geo.Rand) Dims {
	return Dims{
		W: r.Range(p.W[0], p.W[1]),
		H: r.Range(p.H[0], p.H[1]),
		D: r.Range(p.D[0], p.D[1]),
	}
}
