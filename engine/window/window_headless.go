package window

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gdamore/tcell/v2"
)

// headlessWindow has no display. It runs until closed and only receives input through
// MoveMouse and SetSize.
type headlessWindow struct {
	parent  *engineWindow
	running bool
}

func newHeadlessWindow(w *engineWindow) *headlessWindow {
	return &headlessWindow{parent: w, running: true}
}

func (h *headlessWindow) surfaceDescriptor() *wgpu.SurfaceDescriptor {
	return nil
}

func (h *headlessWindow) screen() tcell.Screen {
	return nil
}

func (h *headlessWindow) isRunning() bool {
	return h.running
}

func (h *headlessWindow) close() error {
	h.running = false
	return nil
}

func (h *headlessWindow) setSize(width, height int) {
	h.parent.resized(width, height)
}

func (h *headlessWindow) processMessages() bool {
	return h.running
}
