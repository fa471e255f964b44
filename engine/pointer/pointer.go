package pointer

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultSmoothing is the per-frame fraction of the remaining distance the smoothed
	// pointer covers toward the raw pointer.
	DefaultSmoothing float32 = 0.175

	// DefaultReferenceRate is the frame rate the smoothing factor is tuned for.
	DefaultReferenceRate float32 = 60
)

// State holds the latest raw pointer position and a time-smoothed copy of it, both in
// normalized device coordinates (x, y in [-1, 1], +y up).
//
// Update may be called from an input callback at any rate; Advance must be called once per
// frame whether or not the pointer moved.
type State interface {
	// Update records the latest raw pointer position. The last value wins.
	//
	// Parameters:
	//   - raw: the pointer position in normalized device coordinates
	Update(raw mgl32.Vec2)

	// Advance moves the smoothed position toward the raw position by the smoothing factor,
	// scaled for deltaTime.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous Advance; <= 0 applies the per-frame factor once
	Advance(deltaTime float32)

	// Raw returns the most recent raw pointer position.
	//
	// Returns:
	//   - mgl32.Vec2: the raw position
	Raw() mgl32.Vec2

	// Smoothed returns the current smoothed pointer position.
	//
	// Returns:
	//   - mgl32.Vec2: the smoothed position
	Smoothed() mgl32.Vec2

	// Smoothing returns the per-frame smoothing factor.
	//
	// Returns:
	//   - float32: the factor in (0, 1]
	Smoothing() float32

	// SetSmoothing replaces the per-frame smoothing factor. Values outside (0, 1] are ignored.
	//
	// Parameters:
	//   - alpha: the new factor
	SetSmoothing(alpha float32)
}

type stateImpl struct {
	mu *sync.Mutex

	raw      mgl32.Vec2
	smoothed mgl32.Vec2

	smoothing     float32
	referenceRate float32
}

var _ State = &stateImpl{}

// NewState creates a pointer State resting at the viewport center.
//
// Parameters:
//   - options: functional options to configure the state
//
// Returns:
//   - State: the newly created pointer state
func NewState(options ...StateBuilderOption) State {
	s := &stateImpl{
		mu:            &sync.Mutex{},
		smoothing:     DefaultSmoothing,
		referenceRate: DefaultReferenceRate,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *stateImpl) Update(raw mgl32.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = raw
}

func (s *stateImpl) Advance(deltaTime float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	alpha := common.FrameFactor(s.smoothing, deltaTime, s.referenceRate)
	s.smoothed = common.LerpVec2(s.smoothed, s.raw, alpha)
}

func (s *stateImpl) Raw() mgl32.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

func (s *stateImpl) Smoothed() mgl32.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.smoothed
}

func (s *stateImpl) Smoothing() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.smoothing
}

func (s *stateImpl) SetSmoothing(alpha float32) {
	if alpha <= 0 || alpha > 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.smoothing = alpha
}

// FromWindow converts a window-space pixel coordinate (origin top-left, +y down) into
// normalized device coordinates. A zero-sized viewport maps everything to the center.
//
// Parameters:
//   - px, py: the pointer position in pixels
//   - width, height: the viewport size in pixels
//
// Returns:
//   - mgl32.Vec2: x, y in [-1, 1] with +y up
func FromWindow(px, py float64, width, height int) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}
	}
	x := float32(px/float64(width))*2 - 1
	y := -(float32(py/float64(height))*2 - 1)
	return mgl32.Vec2{x, y}
}
