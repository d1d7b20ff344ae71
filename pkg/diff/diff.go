// Package diff classifies the zone changes between two directives.
package diff

import (
	"sort"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
)

// Update is a zone present on both sides with at least one differing
// attribute.
type Update struct {
	ID     string         `json:"id"`
	Before directive.Zone `json:"before"`
	After  directive.Zone `json:"after"`
}

// Result is the classification of every zone id seen on either side.
// Added and Updated follow the order of the next zone list; Removed
// follows the previous list; Unchanged follows the next list.
type Result struct {
	Added     []directive.Zone `json:"added"`
	Removed   []string         `json:"removed"`
	Updated   []Update         `json:"updated"`
	Unchanged []string         `json:"unchanged"`
}

// Empty reports whether nothing was added, removed or updated.
func (r Result) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Updated) == 0
}

// Changed returns the ids of every added, removed or updated zone, sorted.
func (r Result) Changed() []string {
	ids := make([]string, 0, len(r.Added)+len(r.Removed)+len(r.Updated))
	for _, z := range r.Added {
		ids = append(ids, z.ID)
	}
	ids = append(ids, r.Removed...)
	for _, u := range r.Updated {
		ids = append(ids, u.ID)
	}
	sort.Strings(ids)
	return ids
}

// Zones compares two zone lists keyed by id. Position, footprint, colour and
// label are compared; the semantic type is not.
func Zones(prev, next []directive.Zone) Result {
	before := make(map[string]directive.Zone, len(prev))
	for _, z := range prev {
		before[z.ID] = z
	}
	after := make(map[string]bool, len(next))

	r := Result{
		Added:     []directive.Zone{},
		Removed:   []string{},
		Updated:   []Update{},
		Unchanged: []string{},
	}
	for _, z := range next {
		if after[z.ID] {
			continue
		}
		after[z.ID] = true

		old, ok := before[z.ID]
		switch {
		case !ok:
			r.Added = append(r.Added, z)
		case !old.SameAs(z):
			r.Updated = append(r.Updated, Update{ID: z.ID, Before: old, After: z})
		default:
			r.Unchanged = append(r.Unchanged, z.ID)
		}
	}
	for _, z := range prev {
		if !after[z.ID] {
			after[z.ID] = true
			r.Removed = append(r.Removed, z.ID)
		}
	}
	return r
}
