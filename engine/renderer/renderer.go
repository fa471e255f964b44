package renderer

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-eyes/engine/scene"
	"github.com/Carmen-Shannon/oxy-eyes/engine/window"
)

var (
	// ErrNoSurface is returned when the wgpu backend is paired with a window that cannot
	// provide a surface.
	ErrNoSurface = errors.New("renderer: window has no GPU surface")

	// ErrNoScreen is returned when the terminal backend is paired with a non-terminal window.
	ErrNoScreen = errors.New("renderer: window has no terminal screen")

	// ErrClosed is returned by Present after Close.
	ErrClosed = errors.New("renderer: closed")
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	width, height int
	frames        uint64
	lastFrame     Frame
	closed        bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
}

// Renderer draws a scene once per frame through a backend chosen at construction.
type Renderer interface {
	// Present snapshots the scene and draws it.
	//
	// Parameters:
	//   - s: the scene to draw
	//
	// Returns:
	//   - error: error if the backend failed to draw or the renderer is closed
	Present(s scene.Scene) error

	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	// Zero sizes (minimized windows) are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// BackendType returns the backend in use.
	BackendType() RendererBackendType

	// Frames returns the number of frames presented.
	Frames() uint64

	// LastFrame returns the most recently presented frame.
	//
	// Returns:
	//   - Frame: the frame, zero before the first Present
	LastFrame() Frame

	// Close releases the backend. Closing twice is a no-op.
	Close()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing into win with the given backend.
//
// Parameters:
//   - backendType: the backend to draw with
//   - win: the window providing the surface or screen
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the renderer
//   - error: ErrNoSurface or ErrNoScreen if win cannot host the backend, or a GPU setup error
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		width:       win.Width(),
		height:      win.Height(),
		presentMode: PresentModeVSync,
		msaa:        MSAA4x,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeTerminal:
		scr := win.Screen()
		if scr == nil {
			return nil, ErrNoScreen
		}
		r.backend = newTerminalRendererBackend(scr)
	case BackendTypeHeadless:
		r.backend = newHeadlessRendererBackend()
	default:
		desc := win.SurfaceDescriptor()
		if desc == nil {
			return nil, ErrNoSurface
		}
		b, err := newWGPURendererBackend(desc, r.forceFallbackAdapter, r.msaa, r.presentMode)
		if err != nil {
			return nil, fmt.Errorf("failed to create wgpu backend: %w", err)
		}
		r.backend = b
	}

	r.backend.ConfigureSurface(r.width, r.height)
	log.Printf("[Renderer] %s backend ready at %dx%d", backendType, r.width, r.height)
	return r, nil
}

func (r *renderer) Present(s scene.Scene) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}

	s.Update()
	f := BuildFrame(s, r.width, r.height)
	f.Index = r.frames
	if err := r.backend.Draw(&f); err != nil {
		return fmt.Errorf("failed to draw frame %d: %w", f.Index, err)
	}
	r.frames++
	r.lastFrame = f
	return nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.width, r.height = width, height
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}

func (r *renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *renderer) LastFrame() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastFrame
}

func (r *renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.backend.Release()
}
