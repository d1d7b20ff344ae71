package labels

import "sort"

// MaxPasses bounds the number of resolution sweeps.
const MaxPasses = 2

// Label is a projected label. X is the horizontal center and Y the top edge,
// in screen px with Y growing downward.
type Label struct {
	ID      string  `json:"id"`
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Visible bool    `json:"visible"`
}

// Box is a screen-space rectangle.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Overlaps reports whether two boxes share interior area.
func (b Box) Overlaps(o Box) bool {
	return b.MinX < o.MaxX && o.MinX < b.MaxX && b.MinY < o.MaxY && o.MinY < b.MaxY
}

// BoxOf returns the estimated footprint of l.
func (m Metrics) BoxOf(l Label) Box {
	w, h := m.Size(l.Text)
	return Box{MinX: l.X - w/2, MaxX: l.X + w/2, MinY: l.Y, MaxY: l.Y + h}
}

// Resolve pushes overlapping visible labels downward until no two visible
// boxes overlap. Labels are processed top to bottom; each one moves below
// every box above it that it collides with, by the overlap plus Gap.
// Invisible labels are returned untouched. The result keeps input order and
// the input slice is not modified.
func Resolve(in []Label, m Metrics) []Label {
	out := make([]Label, len(in))
	copy(out, in)

	var order []int
	for i, l := range out {
		if l.Visible {
			order = append(order, i)
		}
	}
	if len(order) < 2 {
		return out
	}

	for pass := 0; pass < MaxPasses; pass++ {
		sort.SliceStable(order, func(a, b int) bool {
			la, lb := out[order[a]], out[order[b]]
			if la.Y != lb.Y {
				return la.Y < lb.Y
			}
			return la.X < lb.X
		})
		if !sweep(out, order, m) {
			break
		}
	}
	return out
}

// sweep runs one top-to-bottom pass and reports whether anything moved.
func sweep(out []Label, order []int, m Metrics) bool {
	moved := false
	// A negative gap would leave pushed boxes touching their blocker forever.
	gap := max(m.Gap, 0)
	placed := make([]Box, 0, len(order))
	for _, i := range order {
		box := m.BoxOf(out[i])
		for hit := true; hit; {
			hit = false
			for _, p := range placed {
				if box.Overlaps(p) {
					shift := p.MaxY - box.MinY + gap
					out[i].Y += shift
					box.MinY += shift
					box.MaxY += shift
					hit, moved = true, true
				}
			}
		}
		placed = append(placed, box)
	}
	return moved
}

// Overlapping returns the index pairs of visible labels whose boxes overlap.
func Overlapping(ls []Label, m Metrics) [][2]int {
	var pairs [][2]int
	for i := range ls {
		if !ls[i].Visible {
			continue
		}
		bi := m.BoxOf(ls[i])
		for j := i + 1; j < len(ls); j++ {
			if ls[j].Visible && bi.Overlaps(m.BoxOf(ls[j])) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}
