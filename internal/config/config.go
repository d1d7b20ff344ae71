// Package config loads scenectl settings from a TOML or YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/camera"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/labels"
)

// Config holds every tool setting. Fields missing from the file keep their
// defaults.
type Config struct {
	Server Server         `toml:"server" yaml:"server"`
	Log    Log            `toml:"log" yaml:"log"`
	Camera camera.Tuning  `toml:"camera" yaml:"camera"`
	Labels labels.Metrics `toml:"labels" yaml:"labels"`
}

// Server configures the dev server.
type Server struct {
	Addr      string `toml:"addr" yaml:"addr"`
	FrameRate int    `toml:"frame_rate" yaml:"frame_rate"` // camera ticks per second
	Watch     string `toml:"watch" yaml:"watch"`           // directive file to reload on change
	Preset    string `toml:"preset" yaml:"preset"`         // starting camera preset
}

// Log configures the logger.
type Log struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Server: Server{
			Addr:      ":3000",
			FrameRate: 30,
			Preset:    camera.Overview,
		},
		Log:    Log{Level: "info"},
		Camera: camera.DefaultTuning(),
		Labels: labels.DefaultMetrics(),
	}
}

// Load reads a config file. The format follows the extension: .toml, or
// .yaml/.yml. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would make the engine misbehave.
func (c Config) Validate() error {
	if c.Server.FrameRate <= 0 {
		return fmt.Errorf("server.frame_rate must be positive, got %d", c.Server.FrameRate)
	}
	if c.Camera.Epsilon <= 0 {
		return fmt.Errorf("camera.epsilon must be positive, got %g", c.Camera.Epsilon)
	}
	for _, named := range []struct {
		name string
		ch   camera.Channel
	}{
		{"position", c.Camera.Position},
		{"look_at", c.Camera.LookAt},
		{"fov", c.Camera.FOV},
	} {
		name, ch := named.name, named.ch
		if ch.Cap <= 0 || ch.Cap > 1 {
			return fmt.Errorf("camera.%s.cap must be in (0, 1], got %g", name, ch.Cap)
		}
		if ch.Base < 0 || ch.Gain < 0 {
			return fmt.Errorf("camera.%s base and gain must not be negative, got %g and %g", name, ch.Base, ch.Gain)
		}
		// Gain alone shrinks the step with the distance left, so settling crawls.
		if ch.Base <= 0 {
			return fmt.Errorf("camera.%s.base must be positive, got %g", name, ch.Base)
		}
	}
	if !slices.Contains(camera.PresetNames, c.Server.Preset) {
		return fmt.Errorf("server.preset %q is not one of %v", c.Server.Preset, camera.PresetNames)
	}
	if c.Labels.LineHeight <= 0 {
		return fmt.Errorf("labels.line_height must be positive, got %g", c.Labels.LineHeight)
	}
	if c.Labels.Gap < 0 {
		return fmt.Errorf("labels.gap must not be negative, got %g", c.Labels.Gap)
	}
	if c.Labels.Padding < 0 {
		return fmt.Errorf("labels.padding must not be negative, got %g", c.Labels.Padding)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name onto slog.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
