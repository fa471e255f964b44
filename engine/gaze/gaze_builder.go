package gaze

import (
	"github.com/Carmen-Shannon/oxy-eyes/engine/entrance"
	"github.com/Carmen-Shannon/oxy-eyes/engine/pointer"
	"github.com/Carmen-Shannon/oxy-eyes/engine/projector"
)

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controllerImpl)

// WithPointer supplies the pointer state instead of a default one.
//
// Parameters:
//   - p: the pointer state
//
// Returns:
//   - ControllerBuilderOption: functional option to set the pointer state
func WithPointer(p pointer.State) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.pointer = p
	}
}

// WithProjector supplies the target projector instead of one casting onto z = 1.8.
//
// Parameters:
//   - p: the projector
//
// Returns:
//   - ControllerBuilderOption: functional option to set the projector
func WithProjector(p projector.Projector) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.projector = p
	}
}

// WithChoreographer supplies an unstarted entrance. The controller starts it.
func WithChoreographer(ch entrance.Choreographer) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.choreographer = ch
	}
}

// WithOffsetDamping sets the per-frame offset damping factor. Values outside (0, 1] are ignored.
func WithOffsetDamping(alpha float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if alpha > 0 && alpha <= 1 {
			c.offsetDamping = alpha
		}
	}
}

// WithOffsetFactor sets the length k of the tracking offset.
func WithOffsetFactor(k float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.offsetFactor = k
	}
}

// WithReferenceRate sets the frame rate the damping factors are tuned for. Zero applies the
// factors once per tick regardless of deltaTime.
//
// Parameters:
//   - hz: the reference rate
//
// Returns:
//   - ControllerBuilderOption: functional option to set the reference rate
func WithReferenceRate(hz float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.referenceRate = max(hz, 0)
	}
}

// WithSkipEntrance starts live tracking immediately with every eye at full scale.
func WithSkipEntrance(skip bool) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.skipEntrance = skip
	}
}
