package camera

import (
	"math"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/geo"
)

// Channel tunes the ease of one camera channel. Each frame the channel closes
// min(Cap, Base + Gain*distance) of its remaining distance, normalized to a
// 60 Hz frame.
type Channel struct {
	Base float64 `toml:"base" yaml:"base" json:"base"`
	Gain float64 `toml:"gain" yaml:"gain" json:"gain"`
	Cap  float64 `toml:"cap" yaml:"cap" json:"cap"`
}

func (c Channel) alpha(dist, dt float64) float64 {
	a := geo.Clamp(c.Base+c.Gain*dist, 0, c.Cap)
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 1
	}
	return 1 - math.Pow(1-a, dt*60)
}

// Tuning holds the per-channel ease parameters.
type Tuning struct {
	Position Channel `toml:"position" yaml:"position" json:"position"`
	LookAt   Channel `toml:"look_at" yaml:"look_at" json:"look_at"`
	FOV      Channel `toml:"fov" yaml:"fov" json:"fov"`
	Epsilon  float64 `toml:"epsilon" yaml:"epsilon" json:"epsilon"`
}

// DefaultTuning returns the stock ease parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Position: Channel{Base: 0.05, Gain: 0.01, Cap: 0.25},
		LookAt:   Channel{Base: 0.06, Gain: 0.01, Cap: 0.25},
		FOV:      Channel{Base: 0.06, Gain: 0.004, Cap: 0.2},
		Epsilon:  1e-3,
	}
}

// Source records how the current target was chosen.
type Source string

const (
	SourcePreset   Source = "preset"
	SourceFocus    Source = "focus"
	SourceFallback Source = "fallback"
	SourceUser     Source = "user"
)

// State is the two-layer camera: Target is set instantly, Live eases toward
// it. The zero value is not useful; use New.
type State struct {
	Target      Transform `json:"target"`
	Live        Transform `json:"live"`
	Source      Source    `json:"source"`
	Preset      string    `json:"preset"` // last named preset, used as the focus fallback
	Focus       string    `json:"focus,omitempty"`
	Interacting bool      `json:"interacting"`
}

// New returns a state parked on a preset. Unknown names use Overview.
func New(preset string) State {
	t, ok := presets[preset]
	if !ok {
		preset, t = Overview, presets[Overview]
	}
	return State{Target: t, Live: t, Source: SourcePreset, Preset: preset}
}

// WithPreset targets a named preset. Unknown names leave s unchanged.
func (s State) WithPreset(name string) (State, bool) {
	t, ok := presets[name]
	if !ok {
		return s, false
	}
	s.Target = t
	s.Source = SourcePreset
	s.Preset = name
	s.Focus = ""
	return s, true
}

// WithFocus frames the zone with the given id. When the id is not among
// zones the target falls back to the last named preset.
func (s State) WithFocus(zones []directive.Zone, id string, angle directive.CameraAngle) (State, bool) {
	for _, z := range zones {
		if z.ID == id {
			s.Target = Focus(z, angle)
			s.Source = SourceFocus
			s.Focus = id
			return s, true
		}
	}
	s.Target = presets[s.Preset]
	s.Source = SourceFallback
	s.Focus = ""
	return s, false
}

// Retarget applies the camera hints of one directive. Precedence: focus
// zone, then explicit preset, then a bare angle. A directive without camera
// hints returns s unchanged.
func (s State) Retarget(d *directive.Directive, zones []directive.Zone) State {
	if d == nil {
		return s
	}
	if d.FocusZone != "" {
		s, _ = s.WithFocus(zones, d.FocusZone, d.CameraAngle)
		return s
	}
	if d.CameraPreset != "" {
		if next, ok := s.WithPreset(d.CameraPreset); ok {
			return next
		}
	}
	if name, ok := PresetForAngle(d.CameraAngle); ok {
		s, _ = s.WithPreset(name)
	}
	return s
}

// BeginInteraction hands the live transform to external input.
func (s State) BeginInteraction() State {
	s.Interacting = true
	return s
}

// Move sets the live transform directly while interacting.
func (s State) Move(live Transform) State {
	if s.Interacting {
		s.Live = live
	}
	return s
}

// EndInteraction adopts the live transform as the new target so the camera
// stays where the user left it.
func (s State) EndInteraction() State {
	if !s.Interacting {
		return s
	}
	s.Interacting = false
	s.Target = s.Live
	s.Source = SourceUser
	s.Focus = ""
	return s
}

// Advance eases Live toward Target by one frame of dt seconds. It is a
// no-op while interacting. Channels within Epsilon snap to the target and
// stop moving.
func (s State) Advance(dt float64, t Tuning) State {
	if s.Interacting || dt <= 0 {
		return s
	}
	s.Live.Position = step(s.Live.Position, s.Target.Position, dt, t.Position, t.Epsilon)
	s.Live.LookAt = step(s.Live.LookAt, s.Target.LookAt, dt, t.LookAt, t.Epsilon)

	d := math.Abs(s.Target.FOV - s.Live.FOV)
	switch {
	case d < t.Epsilon:
		s.Live.FOV = s.Target.FOV
	default:
		s.Live.FOV = geo.Lerp(s.Live.FOV, s.Target.FOV, t.FOV.alpha(d, dt))
	}
	return s
}

func step(live, target geo.Vec3, dt float64, c Channel, eps float64) geo.Vec3 {
	d := live.Distance(target)
	if d < eps {
		return target
	}
	next := live.Lerp(target, c.alpha(d, dt))
	if next.Distance(target) < eps {
		return target
	}
	return next
}

// Settled reports whether Live has reached Target on every channel.
func (s State) Settled() bool {
	return s.Live == s.Target
}

// Remaining is the position distance still to travel.
func (s State) Remaining() float64 {
	return s.Live.Position.Distance(s.Target.Position)
}
