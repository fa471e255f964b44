package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-eyes/engine/gaze"
	"github.com/Carmen-Shannon/oxy-eyes/engine/renderer"
	"github.com/Carmen-Shannon/oxy-eyes/engine/scene"
	"github.com/Carmen-Shannon/oxy-eyes/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window whose update loop drives the engine.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithController sets the gaze controller ticked each frame.
//
// Parameters:
//   - c: the controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(c gaze.Controller) EngineBuilderOption {
	return func(e *engine) {
		e.controller = c
	}
}

// WithScene sets the scene presented each frame.
//
// Parameters:
//   - s: the Scene to present
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithRenderer sets the renderer presenting the scene.
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithFixedStep feeds the controller a constant delta time instead of the wall clock.
// Values <= 0 restore wall-clock timing.
//
// Parameters:
//   - dt: the step in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFixedStep(dt float32) EngineBuilderOption {
	return func(e *engine) {
		e.fixedStep = dt
	}
}

// WithFrameLimit stops the engine after n frames. 0 runs until the window closes.
func WithFrameLimit(n uint64) EngineBuilderOption {
	return func(e *engine) {
		e.frameLimit = n
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
