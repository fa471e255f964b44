package window

import "github.com/gdamore/tcell/v2"

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithBackend selects the platform the window runs on. Defaults to BackendGLFW.
//
// Parameters:
//   - backend: the backend
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithBackend(backend BackendType) WindowBuilderOption {
	return func(w *engineWindow) {
		w.backend = backend
	}
}

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width. Ignored by the terminal backend.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height. Ignored by the terminal backend.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithScreen makes a terminal window draw to and read events from s instead of the real
// terminal. The window initializes the screen.
func WithScreen(s tcell.Screen) WindowBuilderOption {
	return func(w *engineWindow) {
		w.terminalScreen = s
	}
}
