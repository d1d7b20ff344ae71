// Package engine owns the live scene: the effective directive, the current
// scene config and the camera. It is single-threaded; callers serialize
// access.
package engine

import (
	"log/slog"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/camera"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/diff"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/labels"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/scene"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/validation"
)

// Engine applies directives and advances the camera.
type Engine struct {
	effective directive.Directive
	config    *scene.Config
	camera    camera.State
	tuning    camera.Tuning
	metrics   labels.Metrics
	log       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTuning sets the camera easing parameters.
func WithTuning(t camera.Tuning) Option {
	return func(e *Engine) { e.tuning = t }
}

// WithMetrics sets the label size estimates.
func WithMetrics(m labels.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithPreset sets the starting camera preset.
func WithPreset(name string) Option {
	return func(e *Engine) { e.camera = camera.New(name) }
}

// New returns an engine showing the baseline store.
func New(opts ...Option) *Engine {
	e := &Engine{
		camera:  camera.New(camera.Overview),
		tuning:  camera.DefaultTuning(),
		metrics: labels.DefaultMetrics(),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.config, _ = scene.Build(&e.effective)
	return e
}

// Result describes one directive application.
type Result struct {
	Config  *scene.Config      `json:"config"`
	Diff    diff.Result        `json:"diff"`
	Report  *validation.Report `json:"report"`
	Rebuilt bool               `json:"rebuilt"`
	Camera  camera.State       `json:"camera"`
}

// Apply overlays d on the effective directive, rebuilds the scene when the
// config key changes and retargets the camera from d's camera hints. A
// directive that leaves the key unchanged reuses the current config.
func (e *Engine) Apply(d directive.Directive) Result {
	next := directive.Merge(e.effective, d)
	prev := e.config

	res := Result{Config: prev, Report: validation.NewReport()}
	if key := scene.ConfigKey(&next); key != prev.Key {
		res.Config, res.Report = scene.Build(&next)
		res.Rebuilt = true
	}
	res.Diff = diff.Zones(prev.Zones, res.Config.Zones)

	e.effective = next
	e.config = res.Config

	if d.HasCamera() {
		e.camera = e.camera.Retarget(&d, e.config.Zones)
		if d.FocusZone != "" && e.camera.Source == camera.SourceFallback {
			e.log.Warn("focus zone not found, using preset", "zone", d.FocusZone, "preset", e.camera.Preset)
		}
	}
	res.Camera = e.camera

	e.log.Info("directive applied",
		"rebuilt", res.Rebuilt,
		"added", len(res.Diff.Added),
		"removed", len(res.Diff.Removed),
		"updated", len(res.Diff.Updated),
		"unchanged", len(res.Diff.Unchanged),
		"camera", e.camera.Source)
	if res.Rebuilt && res.Config.Stats.DroppedFurniture > 0 {
		e.log.Debug("furniture dropped", "count", res.Config.Stats.DroppedFurniture)
	}
	return res
}

// Reset drops the effective directive and returns to the baseline store and
// the overview camera.
func (e *Engine) Reset() Result {
	prev := e.config
	e.effective = directive.Directive{}
	c, report := scene.Build(&e.effective)
	e.config = c
	e.camera, _ = e.camera.WithPreset(camera.Overview)
	return Result{
		Config:  c,
		Diff:    diff.Zones(prev.Zones, c.Zones),
		Report:  report,
		Rebuilt: c.Key != prev.Key,
		Camera:  e.camera,
	}
}

// Frame advances the camera by dt seconds.
func (e *Engine) Frame(dt float64) camera.State {
	e.camera = e.camera.Advance(dt, e.tuning)
	return e.camera
}

// BeginInteraction pauses easing while the user drives the camera.
func (e *Engine) BeginInteraction() camera.State {
	e.camera = e.camera.BeginInteraction()
	return e.camera
}

// MoveCamera sets the live transform during an interaction.
func (e *Engine) MoveCamera(live camera.Transform) camera.State {
	e.camera = e.camera.Move(live)
	return e.camera
}

// EndInteraction resumes easing from where the user left the camera.
func (e *Engine) EndInteraction() camera.State {
	e.camera = e.camera.EndInteraction()
	return e.camera
}

// Labels resolves overlaps among projected labels.
func (e *Engine) Labels(projected []labels.Label) []labels.Label {
	return labels.Resolve(projected, e.metrics)
}

// Config returns the current scene. It must not be modified.
func (e *Engine) Config() *scene.Config { return e.config }

// Camera returns the current camera state.
func (e *Engine) Camera() camera.State { return e.camera }

// Effective returns the merged directive the current scene was built from.
func (e *Engine) Effective() directive.Directive { return e.effective }

// Metrics returns the label metrics in use.
func (e *Engine) Metrics() labels.Metrics { return e.metrics }
