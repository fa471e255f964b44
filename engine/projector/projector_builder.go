package projector

import (
	"github.com/Carmen-Shannon/oxy-eyes/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectorBuilderOption is a functional option for configuring a Projector.
type ProjectorBuilderOption func(*projectorImpl)

// WithPlane sets the reference plane by a point on it and its normal.
// A zero normal is ignored.
//
// Parameters:
//   - point: a point on the plane
//   - normal: the plane normal, facing the camera
//
// Returns:
//   - ProjectorBuilderOption: functional option to set the plane
func WithPlane(point, normal mgl32.Vec3) ProjectorBuilderOption {
	return func(p *projectorImpl) {
		p.point = point
		if normal.Len() > 0 {
			p.normal = normal
		}
	}
}

// WithLight attaches a light that is moved to every successful hit.
//
// Parameters:
//   - l: the light to move
//
// Returns:
//   - ProjectorBuilderOption: functional option to attach the light
func WithLight(l light.Light) ProjectorBuilderOption {
	return func(p *projectorImpl) {
		p.light = l
	}
}

// WithBounded limits hits to a square patch of the given edge length centered on the plane
// point. Hits outside the patch count as misses. A non-positive size leaves the plane infinite.
//
// Parameters:
//   - size: the edge length of the patch
//
// Returns:
//   - ProjectorBuilderOption: functional option to bound the plane
func WithBounded(size float32) ProjectorBuilderOption {
	return func(p *projectorImpl) {
		if size <= 0 {
			return
		}
		p.bounded = true
		p.halfExtent = size / 2
	}
}
