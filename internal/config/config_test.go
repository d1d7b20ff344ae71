package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/camera"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/labels"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "scene.toml", `
[server]
addr = ":8080"
frame_rate = 60

[camera.position]
base = 0.1
gain = 0.02
cap = 0.5

[labels]
gap = 8
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 60, cfg.Server.FrameRate)
	assert.Equal(t, camera.Channel{Base: 0.1, Gain: 0.02, Cap: 0.5}, cfg.Camera.Position)
	assert.Equal(t, camera.DefaultTuning().FOV, cfg.Camera.FOV, "untouched channels keep defaults")
	assert.Equal(t, 8.0, cfg.Labels.Gap)
	assert.Equal(t, labels.DefaultMetrics().LineHeight, cfg.Labels.LineHeight)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "scene.yml", `
server:
  watch: directive.yaml
  preset: entry
log:
  level: debug
camera:
  epsilon: 0.01
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "directive.yaml", cfg.Server.Watch)
	assert.Equal(t, camera.Entry, cfg.Server.Preset)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 0.01, cfg.Camera.Epsilon)
	assert.Equal(t, 30, cfg.Server.FrameRate)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "scene.json", `{}`))
	assert.ErrorContains(t, err, "unsupported")

	_, err = Load(writeFile(t, "bad.toml", "[server\n"))
	assert.ErrorContains(t, err, "parsing config")

	_, err = Load(writeFile(t, "zero.yaml", "server:\n  frame_rate: 0\n"))
	assert.ErrorContains(t, err, "frame_rate")

	_, err = Load(writeFile(t, "cap.yaml", "camera:\n  fov:\n    cap: 2\n"))
	assert.ErrorContains(t, err, "camera.fov.cap")

	_, err = Load(writeFile(t, "gap.yaml", "labels:\n  gap: -2\n"))
	assert.ErrorContains(t, err, "labels.gap")

	_, err = Load(writeFile(t, "padding.toml", "[labels]\npadding = -1\n"))
	assert.ErrorContains(t, err, "labels.padding")

	_, err = Load(writeFile(t, "preset.yaml", "server:\n  preset: drone\n"))
	assert.ErrorContains(t, err, "server.preset")

	_, err = Load(writeFile(t, "level.yaml", "log:\n  level: loud\n"))
	assert.ErrorContains(t, err, "log level")
}

func TestLoadRejectsStalledCamera(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"zero base and gain", "camera:\n  position: {base: 0, gain: 0, cap: 0.5}\n", "camera.position.base"},
		{"zero base", "camera:\n  look_at: {base: 0, gain: 0.01, cap: 0.25}\n", "camera.look_at.base"},
		{"negative gain", "camera:\n  fov: {base: 0.05, gain: -0.01, cap: 0.2}\n", "camera.fov base and gain"},
		{"negative base", "camera:\n  position: {base: -0.1, gain: 0.5, cap: 0.5}\n", "camera.position base and gain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "camera.yaml", tt.body))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	l, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
}
