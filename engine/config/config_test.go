package config

import (
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/window/backend"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config valid, got %v", err)
	}
	if cfg.Backend() != backend.GLFW {
		t.Errorf("Expected glfw backend, got %v", cfg.Backend())
	}
	want := common.Color{0x54 / 255.0, 0xb3 / 255.0, 0xd1 / 255.0}
	if cfg.Background() != want {
		t.Errorf("Expected background %v, got %v", want, cfg.Background())
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  backend: terminal
swarm:
  count: 9
tracking:
  pointer_smoothing: 0.5
render:
  background: steelblue
`))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Backend() != backend.Terminal {
		t.Errorf("Expected terminal backend, got %v", cfg.Backend())
	}
	if cfg.Swarm.Count != 9 || cfg.Swarm.Gap != 5 {
		t.Errorf("Expected count 9 with default gap 5, got %d and %v", cfg.Swarm.Count, cfg.Swarm.Gap)
	}
	if cfg.Tracking.PointerSmoothing != 0.5 || cfg.Tracking.OffsetDamping != 0.45 {
		t.Errorf("Expected smoothing 0.5 with default damping 0.45, got %v and %v",
			cfg.Tracking.PointerSmoothing, cfg.Tracking.OffsetDamping)
	}
	if cfg.Background() != (common.Color{70 / 255.0, 130 / 255.0, 180 / 255.0}) {
		t.Errorf("Expected steelblue, got %v", cfg.Background())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"backend", func(c *Config) { c.Window.Backend = "vulkan" }},
		{"window size", func(c *Config) { c.Window.Width = 0 }},
		{"count", func(c *Config) { c.Swarm.Count = 1 }},
		{"gap", func(c *Config) { c.Swarm.Gap = 0 }},
		{"scale", func(c *Config) { c.Swarm.Scale = -1 }},
		{"camera inside plane", func(c *Config) { c.Camera.Distance = 1 }},
		{"fov", func(c *Config) { c.Camera.FovDegrees = 180 }},
		{"near", func(c *Config) { c.Camera.Near = 0 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"far short of plane", func(c *Config) { c.Camera.Far = 5 }},
		{"plane size", func(c *Config) { c.Plane.Size = -2 }},
		{"smoothing", func(c *Config) { c.Tracking.PointerSmoothing = 0 }},
		{"damping", func(c *Config) { c.Tracking.OffsetDamping = 1.5 }},
		{"offset factor", func(c *Config) { c.Tracking.OffsetFactor = -1 }},
		{"reference rate", func(c *Config) { c.Tracking.ReferenceRate = -60 }},
		{"duration", func(c *Config) { c.Entrance.Duration = 0 }},
		{"background", func(c *Config) { c.Render.Background = "#12345" }},
		{"frame limit", func(c *Config) { c.Render.FrameLimit = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected error for a missing file")
	}
	if _, err := Parse([]byte("swarm: [")); err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("Expected a parse error, got %v", err)
	}
	if _, err := Parse([]byte("swarm:\n  count: 0\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

type tunables struct {
	smoothing, damping float32
}

func (t *tunables) SetTunables(pointerSmoothing, offsetDamping float32) {
	t.smoothing, t.damping = pointerSmoothing, offsetDamping
}

func TestApply(t *testing.T) {
	var got tunables
	Default().Tracking.Apply(&got)
	if got.smoothing != 0.175 || got.damping != 0.45 {
		t.Errorf("Expected (0.175, 0.45), got (%v, %v)", got.smoothing, got.damping)
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eyes.yaml")
	if err := os.WriteFile(path, []byte("swarm:\n  count: 9\n"), 0644); err != nil {
		t.Fatalf("Expected no error writing config, got %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("swarm:\n  count: 1\n"), 0644); err != nil {
		t.Fatalf("Expected no error writing config, got %v", err)
	}
	select {
	case err := <-w.Errors:
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("Expected ErrInvalid for a bad edit, got %v", err)
		}
	case cfg := <-w.Configs:
		t.Fatalf("Expected the bad edit rejected, got %+v", cfg.Swarm)
	case <-time.After(5 * time.Second):
		t.Fatalf("Timed out waiting for the bad edit")
	}

	if err := os.WriteFile(path, []byte("tracking:\n  offset_damping: 0.9\n"), 0644); err != nil {
		t.Fatalf("Expected no error writing config, got %v", err)
	}
	select {
	case cfg := <-w.Configs:
		if cfg.Tracking.OffsetDamping != 0.9 {
			t.Errorf("Expected damping 0.9, got %v", cfg.Tracking.OffsetDamping)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Timed out waiting for reload")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Expected no error closing, got %v", err)
	}
	if _, ok := <-w.Configs; ok {
		t.Errorf("Expected Configs closed")
	}
}

// Config is read by tools that never open a window, so it must not pull in GLFW or wgpu.
func TestImportsNoWindowing(t *testing.T) {
	entries, err := os.ReadDir(".")
	if err != nil {
		t.Fatalf("Expected to read package dir, got %v", err)
	}
	fset := token.NewFileSet()
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("Expected %s to parse, got %v", name, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			if strings.HasSuffix(path, "/engine/window") || strings.Contains(path, "glfw") || strings.Contains(path, "webgpu") {
				t.Errorf("Expected %s to avoid windowing packages, got import %q", name, path)
			}
		}
	}
}
