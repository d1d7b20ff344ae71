// Package fixture maps a zone's semantic type or label to the furniture it
// should carry. The table is stateless; every zone resolves to some rule.
package fixture

import (
	"slices"
	"strings"
	"unicode"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
)

// Kind identifies a piece of store furniture.
type Kind string

const (
	KindClothingRack    Kind = "clothing_rack"
	KindDisplayTable    Kind = "display_table"
	KindRefrigerator    Kind = "refrigerator"
	KindGondola         Kind = "gondola"
	KindShelfUnit       Kind = "shelf_unit"
	KindCafeTable       Kind = "cafe_table"
	KindBench           Kind = "bench"
	KindKiosk           Kind = "kiosk"
	KindStorageRack     Kind = "storage_rack"
	KindCheckoutCounter Kind = "checkout_counter"
	KindDisplayCase     Kind = "display_case"
)

// Rule is the furniture policy for one category of zone.
type Rule struct {
	Category      directive.ZoneType `json:"category"`
	MaxCount      int                `json:"max_count"`
	DensityPerSqm float64            `json:"density_per_sqm"`
	Fixtures      []Kind             `json:"fixtures"`
}

// Furnished reports whether the rule places any furniture.
func (r Rule) Furnished() bool {
	return r.MaxCount > 0 && len(r.Fixtures) > 0
}

// Count returns the item count for a zone of the given area:
// round(area * density) clamped to [1, MaxCount]. Unfurnished rules give 0.
func (r Rule) Count(area float64) int {
	if !r.Furnished() {
		return 0
	}
	n := int(area*r.DensityPerSqm + 0.5)
	if n < 1 {
		n = 1
	}
	if n > r.MaxCount {
		n = r.MaxCount
	}
	return n
}

// KindAt returns the fixture kind for the i-th item (round-robin).
func (r Rule) KindAt(i int) Kind {
	return r.Fixtures[i%len(r.Fixtures)]
}

var rules = map[directive.ZoneType]Rule{
	directive.ZoneClothing: {
		MaxCount: 6, DensityPerSqm: 0.08,
		Fixtures: []Kind{KindClothingRack, KindDisplayTable},
	},
	directive.ZoneRefrigerated: {
		MaxCount: 4, DensityPerSqm: 0.06,
		Fixtures: []Kind{KindRefrigerator},
	},
	directive.ZoneGrocery: {
		MaxCount: 6, DensityPerSqm: 0.08,
		Fixtures: []Kind{KindGondola, KindShelfUnit},
	},
	directive.ZoneSeating: {
		MaxCount: 6, DensityPerSqm: 0.1,
		Fixtures: []Kind{KindCafeTable, KindBench},
	},
	directive.ZoneExperience: {
		MaxCount: 3, DensityPerSqm: 0.05,
		Fixtures: []Kind{KindKiosk, KindDisplayTable},
	},
	directive.ZoneStorage: {
		MaxCount: 4, DensityPerSqm: 0.06,
		Fixtures: []Kind{KindStorageRack},
	},
	directive.ZoneCheckout: {
		MaxCount: 3, DensityPerSqm: 0.05,
		Fixtures: []Kind{KindCheckoutCounter},
	},
	directive.ZoneEntrance: {MaxCount: 0},
	directive.ZoneCorridor: {MaxCount: 0},
	directive.ZoneDisplay: {
		MaxCount: 4, DensityPerSqm: 0.05,
		Fixtures: []Kind{KindDisplayCase},
	},
}

// keywords drive label inference. Order matters: the first category with a
// matching keyword wins, so walk-through areas are checked before anything
// that could share a word with them. Stems match anywhere in the label;
// whole entries only match a complete word, since they hide inside
// unrelated words ("distillery", "colder").
var keywords = []struct {
	category directive.ZoneType
	stems    []string
	whole    []string
}{
	{directive.ZoneEntrance, []string{"entrance", "entry", "입구", "출입"}, nil},
	{directive.ZoneCorridor, []string{"corridor", "aisle", "hallway", "walkway", "통로", "복도"}, nil},
	{directive.ZoneRefrigerated, []string{"refrigerat", "fridge", "frozen", "freezer", "dairy", "냉장", "냉동"}, []string{"cold"}},
	{directive.ZoneStorage, []string{"storage", "warehouse", "backroom", "stockroom", "창고", "재고"}, []string{"stock"}},
	{directive.ZoneCheckout, []string{"checkout", "counter", "cashier", "계산", "카운터"}, []string{"till", "tills"}},
	{directive.ZoneClothing, []string{"cloth", "apparel", "fashion", "rack", "garment", "의류", "패션"}, []string{"wear"}},
	{directive.ZoneGrocery, []string{"grocery", "gondola", "produce", "snack", "food", "shelf", "식품", "진열대"}, nil},
	{directive.ZoneSeating, []string{"seating", "cafe", "café", "coffee", "lounge", "카페", "휴게"}, nil},
	{directive.ZoneExperience, []string{"experience", "kiosk", "demo", "interactive", "체험", "키오스크"}, nil},
}

// Infer returns the zone category for a label, or ZoneDisplay when nothing
// matches.
func Infer(label string) directive.ZoneType {
	l := strings.ToLower(label)
	words := strings.FieldsFunc(l, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, k := range keywords {
		for _, w := range k.stems {
			if strings.Contains(l, w) {
				return k.category
			}
		}
		for _, w := range k.whole {
			if slices.Contains(words, w) {
				return k.category
			}
		}
	}
	return directive.ZoneDisplay
}

// Lookup returns the rule for a zone. An explicit type wins over the label.
func Lookup(z directive.Zone) Rule {
	category := z.Type
	if !category.Known() {
		category = Infer(z.Label)
	}
	r := rules[category]
	r.Category = category
	return r
}

// Label returns a display name, e.g. "Clothing Rack".
func (k Kind) Label() string {
	words := strings.Split(string(k), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
