package eye

import (
	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// EyeBuilderOption is a functional option for configuring an Eye during construction.
type EyeBuilderOption func(*eyeImpl)

// WithID sets the ID of the Eye.
//
// Parameters:
//   - id: identifier for the Eye
//
// Returns:
//   - EyeBuilderOption: functional option to set the ID
func WithID(id uint64) EyeBuilderOption {
	return func(e *eyeImpl) {
		e.id = id
	}
}

// WithEnabled sets whether the Eye is drawn.
func WithEnabled(enabled bool) EyeBuilderOption {
	return func(e *eyeImpl) {
		e.enabled.Store(enabled)
	}
}

// WithModel gives the Eye the model it owns. Pass a clone; the Eye does not copy it.
//
// Parameters:
//   - m: the Model to own
//
// Returns:
//   - EyeBuilderOption: functional option to set the Model
func WithModel(m model.Model) EyeBuilderOption {
	return func(e *eyeImpl) {
		e.mdl = m
	}
}

// WithBasePosition sets the immutable resting position.
//
// Parameters:
//   - p: the base position
//
// Returns:
//   - EyeBuilderOption: functional option to set the base position
func WithBasePosition(p mgl32.Vec3) EyeBuilderOption {
	return func(e *eyeImpl) {
		e.basePosition = p
	}
}

// WithCell records the grid cell the Eye occupies.
func WithCell(row, col int) EyeBuilderOption {
	return func(e *eyeImpl) {
		e.row, e.col = row, col
	}
}

// WithScale sets the initial per-axis scale.
//
// Parameters:
//   - s: the scale
//
// Returns:
//   - EyeBuilderOption: functional option to set the scale
func WithScale(s mgl32.Vec3) EyeBuilderOption {
	return func(e *eyeImpl) {
		e.scale = s
	}
}
