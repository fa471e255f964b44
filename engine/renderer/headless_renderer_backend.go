package renderer

// headlessRendererBackend accepts frames without drawing them.
type headlessRendererBackend struct {
	width, height int
	drawn         uint64
}

func newHeadlessRendererBackend() *headlessRendererBackend {
	return &headlessRendererBackend{}
}

func (h *headlessRendererBackend) ConfigureSurface(width, height int) {
	h.width, h.height = width, height
}

func (h *headlessRendererBackend) Draw(f *Frame) error {
	h.drawn++
	return nil
}

func (h *headlessRendererBackend) Release() {}
