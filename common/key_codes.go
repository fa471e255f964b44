package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys; the terminal
// window backend translates runes into the same codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyP   = 80  // P key (ASCII), toggles the frame profiler
	KeyQ   = 81  // Q key (ASCII), quits
	KeyEsc = 256 // Escape key (GLFW)
)
