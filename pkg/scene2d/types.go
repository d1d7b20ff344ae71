package scene2d

// Scene2D is the top-down floor plan of a scene, for minimap and SVG
// consumers. Coordinates are [x, z] in store units.
type Scene2D struct {
	Metadata    Metadata         `json:"metadata"`
	Floor       [][2]float64     `json:"floor"`
	Zones       []Zone2D         `json:"zones"`
	Furniture   []Furniture2D    `json:"furniture"`
	Flow        Flow2D           `json:"flow"`
	Annotations []Annotation2D   `json:"annotations"`
	Summary     FurnitureSummary `json:"summary"`
}

// Metadata holds store-level summary data.
type Metadata struct {
	Key            string  `json:"key"`
	Dynamic        bool    `json:"dynamic"`
	StoreWidth     float64 `json:"store_width"`
	StoreDepth     float64 `json:"store_depth"`
	ZoneCount      int     `json:"zone_count"`
	FurnitureCount int     `json:"furniture_count"`
	FloorAreaSqm   float64 `json:"floor_area_sqm"`
	ZoneAreaSqm    float64 `json:"zone_area_sqm"`
}

// Zone2D is a zone rectangle.
type Zone2D struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Category    string       `json:"category"`
	Color       string       `json:"color"`
	Center      [2]float64   `json:"center"`
	Polygon     [][2]float64 `json:"polygon"`
	AreaSqm     float64      `json:"area_sqm"`
	Furniture   int          `json:"furniture"`
	Highlighted bool         `json:"highlighted"`
}

// Furniture2D is one fixture footprint.
type Furniture2D struct {
	ID         string     `json:"id"`
	ZoneID     string     `json:"zone_id"`
	Kind       string     `json:"kind"`
	Position   [2]float64 `json:"position"`
	Dimensions [2]float64 `json:"dimensions"`
	Height     float64    `json:"height"`
}

// Flow2D is the customer path: its control points and a sampled curve.
type Flow2D struct {
	Visible   bool         `json:"visible"`
	Waypoints [][2]float64 `json:"waypoints"`
	Preview   [][2]float64 `json:"preview"`
	LengthM   float64      `json:"length_m"`
}

// Annotation2D is a floating tag placed on the plan.
type Annotation2D struct {
	ID       string     `json:"id"`
	ZoneID   string     `json:"zone_id"`
	Text     string     `json:"text"`
	Color    string     `json:"color"`
	Position [2]float64 `json:"position"`
}

// FurnitureSummary holds aggregate fixture counts.
type FurnitureSummary struct {
	Total      int            `json:"total"`
	Dropped    int            `json:"dropped"`
	ByKind     map[string]int `json:"by_kind"`
	ByCategory map[string]int `json:"by_category"`
}
