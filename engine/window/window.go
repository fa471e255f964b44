package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-eyes/engine/window/backend"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gdamore/tcell/v2"
)

// BackendType selects the platform a Window runs on.
type BackendType = backend.Type

const (
	// BackendGLFW opens a native window through GLFW. Required by the wgpu renderer.
	BackendGLFW = backend.GLFW

	// BackendTerminal takes over the terminal through tcell. Each character cell is two pixels
	// tall, so Height reports twice the row count.
	BackendTerminal = backend.Terminal

	// BackendHeadless has no display and no input. Used for tests and timed runs.
	BackendHeadless = backend.Headless
)

// ParseBackend maps a backend name to its BackendType.
//
// Parameters:
//   - name: "glfw", "terminal" or "headless"
//
// Returns:
//   - BackendType: the backend
//   - error: error if the name is unknown
func ParseBackend(name string) (BackendType, error) {
	return backend.Parse(name)
}

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// Backend returns the platform this window runs on.
	Backend() BackendType

	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetMouseMoveCallback sets the callback for pointer movement.
	//
	// Parameters:
	//   - callback: function receiving the pointer position in pixels, origin top-left
	SetMouseMoveCallback(callback func(x, y float64))

	// MoveMouse reports a pointer position as if the user had moved there.
	//
	// Parameters:
	//   - x, y: the pointer position in pixels
	MoveMouse(x, y float64)

	// PressKey reports a key press as if the user had pressed it.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common key codes)
	PressKey(keyCode uint32)

	// SetSize resizes the client area and fires the resize callback.
	//
	// Parameters:
	//   - width, height: the new size in pixels
	SetSize(width, height int)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the surface descriptor, or nil for non-GLFW backends
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Screen returns the tcell screen of a terminal window.
	//
	// Returns:
	//   - tcell.Screen: the screen, or nil for non-terminal backends
	Screen() tcell.Screen

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources. Closing twice is a no-op.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// platformWindow is implemented once per backend.
type platformWindow interface {
	surfaceDescriptor() *wgpu.SurfaceDescriptor
	screen() tcell.Screen
	isRunning() bool
	close() error
	setSize(width, height int)

	// processMessages handles pending events and reports whether the window is still running.
	processMessages() bool
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, platform state, and event callbacks.
type engineWindow struct {
	backend BackendType

	// title is the window title displayed in the title bar.
	title string

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// terminalScreen replaces the real terminal for BackendTerminal when set.
	terminalScreen tcell.Screen

	internalWindow platformWindow
	closed         bool

	onUpdate    func()
	onResize    func(width, height int)
	onKeyDown   func(keyCode uint32)
	onMouseMove func(x, y float64)
}

var _ Window = &engineWindow{}

// NewWindow creates and opens a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
//   - error: error if the platform window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		backend: BackendGLFW,
		title:   "Eyes",
		width:   1280,
		height:  720,
	}
	for _, opt := range options {
		opt(w)
	}

	var err error
	switch w.backend {
	case BackendTerminal:
		w.internalWindow, err = newTerminalWindow(w)
	case BackendHeadless:
		w.internalWindow = newHeadlessWindow(w)
	default:
		w.internalWindow, err = newGLFWWindow(w)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s window: %w", w.backend, err)
	}
	return w, nil
}

func (w *engineWindow) Backend() BackendType {
	return w.backend
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float64)) {
	w.onMouseMove = callback
}

func (w *engineWindow) MoveMouse(x, y float64) {
	w.mouseMoved(x, y)
}

func (w *engineWindow) PressKey(keyCode uint32) {
	w.keyDown(keyCode)
}

func (w *engineWindow) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w.internalWindow.setSize(width, height)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return w.internalWindow.surfaceDescriptor()
}

func (w *engineWindow) Screen() tcell.Screen {
	return w.internalWindow.screen()
}

func (w *engineWindow) IsRunning() bool {
	return !w.closed && w.internalWindow.isRunning()
}

func (w *engineWindow) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.internalWindow.close()
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := w.internalWindow.processMessages(); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// resized records a new client size and fires the resize callback.
func (w *engineWindow) resized(width, height int) {
	w.width = width
	w.height = height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

func (w *engineWindow) keyDown(keyCode uint32) {
	if w.onKeyDown != nil {
		w.onKeyDown(keyCode)
	}
}

func (w *engineWindow) mouseMoved(x, y float64) {
	if w.onMouseMove != nil {
		w.onMouseMove(x, y)
	}
}
