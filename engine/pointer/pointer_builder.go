package pointer

import "github.com/go-gl/mathgl/mgl32"

// StateBuilderOption is a functional option for configuring a pointer State.
type StateBuilderOption func(*stateImpl)

// WithSmoothing sets the per-frame smoothing factor. Values outside (0, 1] are ignored.
//
// Parameters:
//   - alpha: fraction of the remaining distance covered per reference frame
//
// Returns:
//   - StateBuilderOption: functional option to set the smoothing factor
func WithSmoothing(alpha float32) StateBuilderOption {
	return func(s *stateImpl) {
		if alpha > 0 && alpha <= 1 {
			s.smoothing = alpha
		}
	}
}

// WithReferenceRate sets the frame rate the smoothing factor is expressed against.
// Zero disables frame-rate compensation so each Advance applies the factor once.
//
// Parameters:
//   - fps: reference frames per second
//
// Returns:
//   - StateBuilderOption: functional option to set the reference rate
func WithReferenceRate(fps float32) StateBuilderOption {
	return func(s *stateImpl) {
		if fps >= 0 {
			s.referenceRate = fps
		}
	}
}

// WithInitial places both the raw and smoothed positions at p.
func WithInitial(p mgl32.Vec2) StateBuilderOption {
	return func(s *stateImpl) {
		s.raw = p
		s.smoothed = p
	}
}
