package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// parallelEpsilon is the smallest |normal·direction| still treated as a crossing.
const parallelEpsilon = 1e-6

// Ray is a half-line starting at Origin and extending along the unit vector Direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// NewPlaneFromPoint builds a Plane with the given normal passing through point.
// The normal is normalized before the distance term is derived.
//
// Parameters:
//   - normal: the plane normal (need not be unit length)
//   - point: any point lying on the plane
//
// Returns:
//   - Plane: the plane in ax + by + cz + d = 0 form
func NewPlaneFromPoint(normal, point mgl32.Vec3) Plane {
	n := SafeNormalize(normal)
	return Plane{
		Normal:   [3]float32(n),
		Distance: -n.Dot(point),
	}
}

// IntersectPlane finds where the ray crosses the plane.
// A ray that runs parallel to the plane, or whose crossing lies behind its origin, does not intersect.
//
// Parameters:
//   - p: the plane to test against
//
// Returns:
//   - mgl32.Vec3: the intersection point (zero vector when ok is false)
//   - float32: distance along the ray to the intersection
//   - bool: true if the ray intersects the plane
func (r Ray) IntersectPlane(p Plane) (mgl32.Vec3, float32, bool) {
	n := mgl32.Vec3(p.Normal)
	denom := n.Dot(r.Direction)
	if float32(math.Abs(float64(denom))) < parallelEpsilon {
		return mgl32.Vec3{}, 0, false
	}
	t := -(n.Dot(r.Origin) + p.Distance) / denom
	if t < 0 {
		return mgl32.Vec3{}, 0, false
	}
	return r.At(t), t, true
}
