package projector

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/camera"
	"github.com/Carmen-Shannon/oxy-eyes/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultPlaneDepth is the z coordinate of the reference plane the pointer is projected onto.
const DefaultPlaneDepth float32 = 1.8

// Projector turns a 2D pointer position into a 3D target point by casting a ray from the camera
// through the pointer and intersecting it with a fixed reference plane.
type Projector interface {
	// Project intersects the camera ray through ndc with the reference plane. On a hit the
	// attached light, if any, is moved to the hit point.
	//
	// Parameters:
	//   - ndc: the pointer position in normalized device coordinates
	//
	// Returns:
	//   - mgl32.Vec3: the intersection point (zero vector on a miss)
	//   - bool: false if the ray is parallel to the plane, points away from it, or leaves the
	//     bounded extent; the caller keeps its previous target
	Project(ndc mgl32.Vec2) (mgl32.Vec3, bool)

	// PlanePoint returns the point where the plane normal through the origin meets the plane.
	// The entrance animation aims every eye at this point.
	//
	// Returns:
	//   - mgl32.Vec3: the plane's anchor point
	PlanePoint() mgl32.Vec3

	// Plane returns the reference plane.
	//
	// Returns:
	//   - common.Plane: the plane in ax + by + cz + d = 0 form
	Plane() common.Plane

	// Light returns the light that follows hits, or nil.
	Light() light.Light
}

type projectorImpl struct {
	mu *sync.Mutex

	camera camera.Camera
	light  light.Light

	point  mgl32.Vec3
	normal mgl32.Vec3
	plane  common.Plane

	bounded    bool
	halfExtent float32
}

var _ Projector = &projectorImpl{}

// NewProjector creates a Projector casting rays from cam onto the plane z = 1.8 facing +Z.
//
// Parameters:
//   - cam: the camera rays are cast from
//   - options: functional options to configure the projector
//
// Returns:
//   - Projector: the newly created projector
func NewProjector(cam camera.Camera, options ...ProjectorBuilderOption) Projector {
	p := &projectorImpl{
		mu:     &sync.Mutex{},
		camera: cam,
		point:  mgl32.Vec3{0, 0, DefaultPlaneDepth},
		normal: mgl32.Vec3{0, 0, 1},
	}
	for _, option := range options {
		option(p)
	}
	p.plane = common.NewPlaneFromPoint(p.normal, p.point)
	return p
}

func (p *projectorImpl) Project(ndc mgl32.Vec2) (mgl32.Vec3, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ray := p.camera.Ray(ndc.X(), ndc.Y())
	hit, _, ok := ray.IntersectPlane(p.plane)
	if !ok {
		return mgl32.Vec3{}, false
	}
	if p.bounded && !p.withinExtent(hit) {
		return mgl32.Vec3{}, false
	}

	if p.light != nil {
		p.light.SetPosition(hit.X(), hit.Y(), hit.Z())
	}
	return hit, true
}

// withinExtent reports whether hit lies inside the square patch of the plane centered on its
// anchor point. Caller must hold the mutex.
func (p *projectorImpl) withinExtent(hit mgl32.Vec3) bool {
	u, v := p.tangents()
	d := hit.Sub(p.point)
	return abs(d.Dot(u)) <= p.halfExtent && abs(d.Dot(v)) <= p.halfExtent
}

// tangents returns two unit vectors spanning the plane.
func (p *projectorImpl) tangents() (mgl32.Vec3, mgl32.Vec3) {
	n := common.SafeNormalize(p.normal)
	ref := mgl32.Vec3{0, 1, 0}
	if abs(n.Dot(ref)) > 0.99 {
		ref = mgl32.Vec3{1, 0, 0}
	}
	u := common.SafeNormalize(ref.Cross(n))
	return u, n.Cross(u)
}

func (p *projectorImpl) PlanePoint() mgl32.Vec3 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.point
}

func (p *projectorImpl) Plane() common.Plane {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plane
}

func (p *projectorImpl) Light() light.Light {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.light
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
