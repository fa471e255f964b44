package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/window/backend"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration read from a YAML file.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Swarm    SwarmConfig    `yaml:"swarm"`
	Camera   CameraConfig   `yaml:"camera"`
	Plane    PlaneConfig    `yaml:"plane"`
	Tracking TrackingConfig `yaml:"tracking"`
	Entrance EntranceConfig `yaml:"entrance"`
	Render   RenderConfig   `yaml:"render"`
}

// WindowConfig selects the host window.
type WindowConfig struct {
	Backend string `yaml:"backend"` // glfw, terminal or headless
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// SwarmConfig describes the eye grid and the model each eye clones.
type SwarmConfig struct {
	Count int     `yaml:"count"`
	Gap   float32 `yaml:"gap"`
	Model string  `yaml:"model"` // glTF/GLB path; empty uses the embedded eye
	Scale float32 `yaml:"scale"`
}

// CameraConfig places the perspective camera on the +Z axis looking at the origin.
type CameraConfig struct {
	Distance   float32 `yaml:"distance"`
	FovDegrees float32 `yaml:"fov"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// PlaneConfig is the pointer intersection plane, parallel to the swarm.
type PlaneConfig struct {
	Depth float32 `yaml:"depth"`
	Size  float32 `yaml:"size"` // edge length of a bounded plane; 0 is infinite
}

// TrackingConfig holds the live tracking tunables. These hot-reload.
type TrackingConfig struct {
	PointerSmoothing float32 `yaml:"pointer_smoothing"`
	OffsetDamping    float32 `yaml:"offset_damping"`
	OffsetFactor     float32 `yaml:"offset_factor"`
	ReferenceRate    float32 `yaml:"reference_rate"`
}

// EntranceConfig times the opening choreography.
type EntranceConfig struct {
	Skip     bool    `yaml:"skip"`
	Delay    float32 `yaml:"delay"`
	Duration float32 `yaml:"duration"`
	Stagger  float32 `yaml:"stagger"`
}

// RenderConfig configures presentation.
type RenderConfig struct {
	Background string  `yaml:"background"`
	VSync      bool    `yaml:"vsync"`
	MSAA       bool    `yaml:"msaa"`
	Software   bool    `yaml:"software"`
	FrameLimit float64 `yaml:"frame_limit"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Backend: "glfw",
			Title:   "Eyes",
			Width:   1280,
			Height:  720,
		},
		Swarm: SwarmConfig{
			Count: 25,
			Gap:   5,
			Scale: 0.5,
		},
		Camera: CameraConfig{
			Distance:   12,
			FovDegrees: 50,
			Near:       0.1,
			Far:        100,
		},
		Plane: PlaneConfig{
			Depth: 1.8,
		},
		Tracking: TrackingConfig{
			PointerSmoothing: 0.175,
			OffsetDamping:    0.45,
			OffsetFactor:     0.8,
			ReferenceRate:    60,
		},
		Entrance: EntranceConfig{
			Delay:    0.15,
			Duration: 0.8,
			Stagger:  0.35,
		},
		Render: RenderConfig{
			Background: "#54b3d1",
			VSync:      true,
			MSAA:       true,
		},
	}
}

// Load reads a YAML file over Default, so omitted keys keep their defaults, then validates it.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - Config: the loaded configuration
//   - error: error if the file cannot be read, parsed or validated
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - Config: the configuration
//   - error: error if data is malformed or fails validation
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its allowed range.
//
// Returns:
//   - error: an error wrapping ErrInvalid naming the first bad field, or nil
func (c Config) Validate() error {
	if _, err := backend.Parse(c.Window.Backend); err != nil {
		return fmt.Errorf("%w: window.backend: %v", ErrInvalid, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Swarm.Count < 2 {
		return fmt.Errorf("%w: swarm.count must be at least 2, got %d", ErrInvalid, c.Swarm.Count)
	}
	if c.Swarm.Gap <= 0 {
		return fmt.Errorf("%w: swarm.gap must be positive, got %v", ErrInvalid, c.Swarm.Gap)
	}
	if c.Swarm.Scale <= 0 {
		return fmt.Errorf("%w: swarm.scale must be positive, got %v", ErrInvalid, c.Swarm.Scale)
	}
	if c.Camera.Distance <= c.Plane.Depth {
		return fmt.Errorf("%w: camera.distance %v must lie beyond plane.depth %v", ErrInvalid, c.Camera.Distance, c.Plane.Depth)
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		return fmt.Errorf("%w: camera.fov must be in (0, 180), got %v", ErrInvalid, c.Camera.FovDegrees)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera clip range must satisfy 0 < near < far, got %v..%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.Far <= c.Camera.Distance-c.Plane.Depth {
		return fmt.Errorf("%w: camera.far %v does not reach plane.depth %v", ErrInvalid, c.Camera.Far, c.Plane.Depth)
	}
	if c.Plane.Size < 0 {
		return fmt.Errorf("%w: plane.size must not be negative, got %v", ErrInvalid, c.Plane.Size)
	}
	if err := c.Tracking.Validate(); err != nil {
		return err
	}
	if c.Entrance.Delay < 0 || c.Entrance.Duration <= 0 || c.Entrance.Stagger < 0 {
		return fmt.Errorf("%w: entrance timings delay=%v duration=%v stagger=%v", ErrInvalid,
			c.Entrance.Delay, c.Entrance.Duration, c.Entrance.Stagger)
	}
	if _, err := common.ParseColor(c.Render.Background); err != nil {
		return fmt.Errorf("%w: render.background: %v", ErrInvalid, err)
	}
	if c.Render.FrameLimit < 0 {
		return fmt.Errorf("%w: render.frame_limit must not be negative, got %v", ErrInvalid, c.Render.FrameLimit)
	}
	return nil
}

// Validate checks the tracking tunables.
func (t TrackingConfig) Validate() error {
	if t.PointerSmoothing <= 0 || t.PointerSmoothing > 1 {
		return fmt.Errorf("%w: tracking.pointer_smoothing must be in (0, 1], got %v", ErrInvalid, t.PointerSmoothing)
	}
	if t.OffsetDamping <= 0 || t.OffsetDamping > 1 {
		return fmt.Errorf("%w: tracking.offset_damping must be in (0, 1], got %v", ErrInvalid, t.OffsetDamping)
	}
	if t.OffsetFactor < 0 {
		return fmt.Errorf("%w: tracking.offset_factor must not be negative, got %v", ErrInvalid, t.OffsetFactor)
	}
	if t.ReferenceRate < 0 {
		return fmt.Errorf("%w: tracking.reference_rate must not be negative, got %v", ErrInvalid, t.ReferenceRate)
	}
	return nil
}

// Backend returns the parsed window backend. Valid after Validate.
func (c Config) Backend() backend.Type {
	b, _ := backend.Parse(c.Window.Backend)
	return b
}

// Background returns the parsed background color. Valid after Validate.
func (c Config) Background() common.Color {
	bg, _ := common.ParseColor(c.Render.Background)
	return bg
}

// Tunable is anything whose live tracking factors can change at runtime.
type Tunable interface {
	SetTunables(pointerSmoothing, offsetDamping float32)
}

// Apply pushes the hot-reloadable tunables into t.
//
// Parameters:
//   - target: the receiver of the new factors, typically a gaze controller
func (t TrackingConfig) Apply(target Tunable) {
	target.SetTunables(t.PointerSmoothing, t.OffsetDamping)
}
