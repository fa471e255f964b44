package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// LerpVec2 linearly interpolates each component of a toward b by t.
func LerpVec2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return mgl32.Vec2{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t)}
}

// LerpVec3 linearly interpolates each component of a toward b by t.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t)}
}

// Clamp01 clamps v into [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SafeNormalize returns v scaled to unit length, or the zero vector when v is too short
// to carry a direction.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-6 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// FrameFactor converts a per-frame interpolation factor into the factor for a step of
// deltaTime seconds, so that a value approached at alpha per frame at referenceRate frames per
// second decays identically at any frame rate.
//
// A non-positive deltaTime or referenceRate returns alpha unchanged (fixed-step behavior).
//
// Parameters:
//   - alpha: the per-frame factor in [0, 1]
//   - deltaTime: the elapsed time of this step in seconds
//   - referenceRate: the frame rate alpha was tuned for
//
// Returns:
//   - float32: the effective factor for this step
func FrameFactor(alpha, deltaTime, referenceRate float32) float32 {
	if deltaTime <= 0 || referenceRate <= 0 {
		return alpha
	}
	if alpha >= 1 {
		return 1
	}
	if alpha <= 0 {
		return 0
	}
	frames := float64(deltaTime) * float64(referenceRate)
	return float32(1 - math.Pow(1-float64(alpha), frames))
}
