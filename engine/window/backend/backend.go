// Package backend names the platforms a window can run on. It has no platform dependencies, so
// configuration code can validate backend names without linking GLFW or wgpu.
package backend

import "fmt"

// Type selects the platform a window runs on.
type Type int

const (
	// GLFW opens a native window through GLFW. Required by the wgpu renderer.
	GLFW Type = iota

	// Terminal takes over the terminal through tcell. Each character cell is two pixels tall.
	Terminal

	// Headless has no display and no input. Used for tests and timed runs.
	Headless
)

// String returns the lowercase name of the backend.
func (t Type) String() string {
	switch t {
	case GLFW:
		return "glfw"
	case Terminal:
		return "terminal"
	case Headless:
		return "headless"
	default:
		return "unknown"
	}
}

// Parse maps a backend name to its Type.
//
// Parameters:
//   - name: "glfw", "terminal" or "headless"
//
// Returns:
//   - Type: the backend
//   - error: error if the name is unknown
func Parse(name string) (Type, error) {
	switch name {
	case "glfw":
		return GLFW, nil
	case "terminal":
		return Terminal, nil
	case "headless":
		return Headless, nil
	default:
		return 0, fmt.Errorf("unknown window backend %q", name)
	}
}
