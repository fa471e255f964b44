package entrance

import "github.com/go-gl/mathgl/mgl32"

// ChoreographerBuilderOption is a functional option for configuring a Choreographer.
type ChoreographerBuilderOption func(*choreographerImpl)

// WithDelay sets the pause before any eye moves.
//
// Parameters:
//   - seconds: the delay; negative values are clamped to zero
//
// Returns:
//   - ChoreographerBuilderOption: functional option to set the delay
func WithDelay(seconds float32) ChoreographerBuilderOption {
	return func(c *choreographerImpl) {
		c.delay = max(seconds, 0)
	}
}

// WithDuration sets the length of each eye's tween.
//
// Parameters:
//   - seconds: the tween length; negative values are clamped to zero
//
// Returns:
//   - ChoreographerBuilderOption: functional option to set the duration
func WithDuration(seconds float32) ChoreographerBuilderOption {
	return func(c *choreographerImpl) {
		c.duration = max(seconds, 0)
	}
}

// WithStagger sets the spread of scale delays between the center eye and the outermost eyes.
func WithStagger(seconds float32) ChoreographerBuilderOption {
	return func(c *choreographerImpl) {
		c.stagger = max(seconds, 0)
	}
}

// WithOffsetFactor sets the resting offset length k. Eyes start at 2k.
func WithOffsetFactor(k float32) ChoreographerBuilderOption {
	return func(c *choreographerImpl) {
		c.offsetFactor = k
	}
}

// WithTarget sets the point every eye looks at, and is pushed away from, during the entrance.
//
// Parameters:
//   - target: the world-space point, normally the projector's plane point
//
// Returns:
//   - ChoreographerBuilderOption: functional option to set the target
func WithTarget(target mgl32.Vec3) ChoreographerBuilderOption {
	return func(c *choreographerImpl) {
		c.target = target
	}
}

// WithEase replaces the elastic ease used by both tracks.
func WithEase(ease Ease) ChoreographerBuilderOption {
	return func(c *choreographerImpl) {
		if ease != nil {
			c.ease = ease
		}
	}
}

// WithOnComplete registers a callback invoked once, on the tick the entrance completes.
//
// Parameters:
//   - fn: the callback
//
// Returns:
//   - ChoreographerBuilderOption: functional option to set the callback
func WithOnComplete(fn func()) ChoreographerBuilderOption {
	return func(c *choreographerImpl) {
		c.onComplete = fn
	}
}
