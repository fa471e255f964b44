package renderer

import "fmt"

// RendererBackendType identifies the backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend. Needs a GLFW window.
	BackendTypeWGPU RendererBackendType = iota

	// BackendTypeTerminal draws half-block cells to the window's tcell screen.
	BackendTypeTerminal

	// BackendTypeHeadless draws nothing and keeps the last frame for inspection.
	BackendTypeHeadless
)

// String returns the lowercase name of the backend type.
func (t RendererBackendType) String() string {
	switch t {
	case BackendTypeWGPU:
		return "wgpu"
	case BackendTypeTerminal:
		return "terminal"
	case BackendTypeHeadless:
		return "headless"
	default:
		return fmt.Sprintf("backend(%d)", int(t))
	}
}

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend draws frames for one presentation target.
type RendererBackend interface {
	// ConfigureSurface prepares the target for a new size in pixels.
	ConfigureSurface(width, height int)

	// Draw renders and presents one frame.
	//
	// Parameters:
	//   - f: the frame to draw
	//
	// Returns:
	//   - error: error if the frame could not be drawn
	Draw(f *Frame) error

	// Release frees every resource held by the backend.
	Release()
}
