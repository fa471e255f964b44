package engine

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/gaze"
	"github.com/Carmen-Shannon/oxy-eyes/engine/pointer"
	"github.com/Carmen-Shannon/oxy-eyes/engine/profiler"
	"github.com/Carmen-Shannon/oxy-eyes/engine/renderer"
	"github.com/Carmen-Shannon/oxy-eyes/engine/scene"
	"github.com/Carmen-Shannon/oxy-eyes/engine/window"
)

// ErrNotConfigured is returned by Run when the engine lacks a window, controller, scene or renderer.
var ErrNotConfigured = errors.New("engine: window, controller, scene and renderer are required")

// engine implements the Engine interface.
// Drives one controller tick and one presented frame per window update.
type engine struct {
	mu *sync.Mutex

	window     window.Window
	controller gaze.Controller
	scene      scene.Scene
	renderer   renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback func(deltaTime float32)

	// fixedStep replaces the wall-clock delta when > 0.
	fixedStep float32

	// frameLimit closes the window after this many frames; 0 runs until closed.
	frameLimit uint64
	frames     uint64

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastTick         time.Time

	quitOnce sync.Once
	err      error
}

// Engine is the main entry point for the engine.
// It wires window input into the gaze controller and presents the scene once per tick.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Controller returns the gaze controller ticked each frame.
	Controller() gaze.Controller

	// Scene returns the scene presented each frame.
	Scene() scene.Scene

	// Renderer returns the renderer presenting the scene.
	Renderer() renderer.Renderer

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ProfilerEnabled reports whether profiling output is on.
	ProfilerEnabled() bool

	// SetTickCallback registers a function called after each controller tick and before the
	// frame is presented.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Frames returns the number of frames run so far.
	Frames() uint64

	// Run processes window messages until the window closes, the frame limit is reached or a
	// frame fails to present. Blocks the calling goroutine, which must be the main thread for
	// the GLFW window.
	//
	// Returns:
	//   - error: ErrNotConfigured, or the first presentation error
	Run() error

	// Quit closes the window, ending Run after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Window callbacks are installed once every part is present.
//
// Parameters:
//   - options: functional options for engine configuration (window, controller, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:       &sync.Mutex{},
		profiler: profiler.NewProfiler(),
	}
	for _, opt := range options {
		opt(e)
	}

	if e.configured() {
		e.install()
	}
	return e
}

func (e *engine) configured() bool {
	return e.window != nil && e.controller != nil && e.scene != nil && e.renderer != nil
}

// install routes window events into the controller and renderer.
func (e *engine) install() {
	e.window.SetResizeCallback(func(width, height int) {
		e.controller.Resize(width, height)
		e.renderer.Resize(width, height)
	})
	e.window.SetMouseMoveCallback(func(x, y float64) {
		e.controller.PointerMove(pointer.FromWindow(x, y, e.window.Width(), e.window.Height()))
	})
	e.window.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyP:
			if e.ProfilerEnabled() {
				e.DisableProfiler()
			} else {
				e.EnableProfiler()
			}
		case common.KeyQ, common.KeyEsc:
			e.Quit()
		}
	})
	e.window.SetUpdateCallback(e.tick)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Controller() gaze.Controller {
	return e.controller
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Run() error {
	if !e.configured() {
		return ErrNotConfigured
	}
	e.controller.Resize(e.window.Width(), e.window.Height())
	e.lastTick = time.Now()
	e.window.ProcessMessages()

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Quit closes the window. Uses sync.Once so repeated calls are no-ops.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if err := e.window.Close(); err != nil {
			log.Printf("[Engine] failed to close window: %v", err)
		}
	})
}

// tick runs one frame: advance the controller, present the scene, then profile and pace.
func (e *engine) tick() {
	start := time.Now()
	dt := e.fixedStep
	if dt <= 0 {
		dt = float32(start.Sub(e.lastTick).Seconds())
	}
	e.lastTick = start

	e.controller.Tick(dt)
	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	if err := e.renderer.Present(e.scene); err != nil {
		log.Printf("[Engine] frame %d failed: %v", e.Frames(), err)
		e.mu.Lock()
		e.err = err
		e.mu.Unlock()
		e.Quit()
		return
	}

	e.mu.Lock()
	e.frames++
	frames := e.frames
	profiling := e.profilingEnabled
	e.mu.Unlock()

	if profiling {
		e.profiler.Tick(time.Since(start))
	}
	if e.frameLimit > 0 && frames >= e.frameLimit {
		e.Quit()
		return
	}

	// Frame rate limiting
	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) ProfilerEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profilingEnabled
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}
