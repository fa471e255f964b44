package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-eyes/engine/config"
	"github.com/Carmen-Shannon/oxy-eyes/engine/renderer"
	"github.com/Carmen-Shannon/oxy-eyes/engine/window"
)

func TestLoadConfigBackendOverride(t *testing.T) {
	cfg, err := loadConfig("", "headless")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Backend() != window.BackendHeadless {
		t.Errorf("Expected headless backend, got %v", cfg.Backend())
	}
	if _, err := loadConfig("", "opengl"); err == nil {
		t.Errorf("Expected an error for an unknown backend")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eyes.yaml")
	if err := os.WriteFile(path, []byte("swarm:\n  count: 9\n"), 0644); err != nil {
		t.Fatalf("Expected no error writing config, got %v", err)
	}
	cfg, err := loadConfig(path, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Swarm.Count != 9 {
		t.Errorf("Expected 9 eyes, got %d", cfg.Swarm.Count)
	}
}

func TestRendererBackendFollowsWindow(t *testing.T) {
	tests := []struct {
		window window.BackendType
		want   renderer.RendererBackendType
	}{
		{window.BackendGLFW, renderer.BackendTypeWGPU},
		{window.BackendTerminal, renderer.BackendTypeTerminal},
		{window.BackendHeadless, renderer.BackendTypeHeadless},
	}
	for _, tt := range tests {
		if got := rendererBackend(tt.window); got != tt.want {
			t.Errorf("Expected %v for %v, got %v", tt.want, tt.window, got)
		}
	}
}

func TestRunHeadless(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Backend = "headless"
	cfg.Swarm.Count = 9
	if err := run(cfg, "", 30, false); err != nil {
		t.Errorf("Expected a clean 30-frame headless run, got %v", err)
	}
}
