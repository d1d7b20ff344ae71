package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/internal/config"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/internal/server"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/diff"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/engine"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/labels"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/scene"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/scene2d"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/validation"
)

// setup loads the config file and builds the logger.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, nil, err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return cfg, log, nil
}

func newEngine(cfg config.Config, log *slog.Logger) *engine.Engine {
	return engine.New(
		engine.WithTuning(cfg.Camera),
		engine.WithMetrics(cfg.Labels),
		engine.WithLogger(log),
		engine.WithPreset(cfg.Server.Preset),
	)
}

// loadDirective reads a directive file and returns it with its JSON form
// for schema checking. YAML files are re-encoded as JSON.
func loadDirective(path string) (*directive.Directive, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading directive: %w", err)
	}
	d, err := directive.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return d, data, nil
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: re-encoding as JSON: %w", path, err)
	}
	return d, js, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runBuild(path string, plan bool) error {
	_, log, err := setup()
	if err != nil {
		return err
	}
	d := &directive.Directive{}
	if path != "" {
		if d, err = directive.Load(path); err != nil {
			return err
		}
	}

	c, report := scene.Build(d)
	report.Merge(scene.ValidateConfig(c))
	log.Debug("scene built", "key", c.Key, "zones", len(c.Zones), "furniture", len(c.Furniture),
		"dropped", c.Stats.DroppedFurniture)
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scene has validation errors")
	}

	var out any = c
	if plan {
		out = scene2d.Assemble2D(c)
	}
	return writeJSON(map[string]any{
		"validation": report,
		"scene":      out,
	})
}

func runValidate(path string) error {
	if _, _, err := setup(); err != nil {
		return err
	}
	d, js, err := loadDirective(path)
	if err != nil {
		return err
	}

	report := validation.ValidateSchema(js)
	var known []string
	if d.Zones == nil {
		for _, z := range directive.NormalizeZones(scene.BaselineZones()) {
			known = append(known, z.ID)
		}
	}
	report.Merge(validation.ValidateDirective(d, known))

	c, buildReport := scene.Build(d)
	report.Merge(buildReport)
	report.Merge(scene.ValidateConfig(c))

	printValidationReport(report)
	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runDiff(prevPath, nextPath string) error {
	if _, _, err := setup(); err != nil {
		return err
	}
	prev, err := directive.Load(prevPath)
	if err != nil {
		return err
	}
	next, err := directive.Load(nextPath)
	if err != nil {
		return err
	}
	merged := directive.Merge(*prev, *next)

	before, _ := scene.Build(prev)
	after, _ := scene.Build(&merged)
	printDiff(diff.Zones(before.Zones, after.Zones), before.Key == after.Key)
	return nil
}

func runCamera(paths []string, fps, maxFrames, every int) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	eng := newEngine(cfg, log)
	for _, p := range paths {
		d, err := directive.Load(p)
		if err != nil {
			return err
		}
		eng.Apply(*d)
	}

	dt := 1 / float64(fps)
	st := eng.Camera()
	printCameraHeader(st)
	frame := 0
	for ; frame < maxFrames && !st.Settled(); frame++ {
		if every > 0 && frame%every == 0 {
			printCameraFrame(frame, st)
		}
		st = eng.Frame(dt)
	}
	printCameraFrame(frame, st)
	if st.Settled() {
		fmt.Printf("settled after %d frames (%.2fs at %d fps)\n", frame, float64(frame)*dt, fps)
	} else {
		fmt.Printf("not settled after %d frames, %.4f remaining\n", frame, st.Remaining())
	}
	return nil
}

func runLabels(path string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading labels: %w", err)
	}
	var in []labels.Label
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	out := labels.Resolve(in, cfg.Labels)
	if left := labels.Overlapping(out, cfg.Labels); len(left) > 0 {
		fmt.Fprintf(os.Stderr, "%d overlapping pairs remain\n", len(left))
	}
	return writeJSON(out)
}

type serveFlags struct {
	addr, watch               string
	fps                       int
	addrSet, watchSet, fpsSet bool
}

func runServe(ctx context.Context, f serveFlags) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	if f.addrSet || cfg.Server.Addr == "" {
		cfg.Server.Addr = f.addr
	}
	if f.watchSet {
		cfg.Server.Watch = f.watch
	}
	if f.fpsSet {
		cfg.Server.FrameRate = f.fps
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(newEngine(cfg, log), server.Options{
		Addr:      cfg.Server.Addr,
		FrameRate: cfg.Server.FrameRate,
		Watch:     cfg.Server.Watch,
		Logger:    log,
	})
	return srv.Run(ctx)
}
