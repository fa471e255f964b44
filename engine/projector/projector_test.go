package projector

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-eyes/engine/camera"
	"github.com/Carmen-Shannon/oxy-eyes/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

func newCamera() camera.Camera {
	return camera.NewCamera(
		camera.WithController(camera.NewCameraController(camera.WithRadius(12))),
		camera.WithFovDegrees(50),
		camera.WithAspect(1),
	)
}

func TestProjectCenterHitsPlaneAnchor(t *testing.T) {
	p := NewProjector(newCamera())
	hit, ok := p.Project(mgl32.Vec2{0, 0})
	if !ok {
		t.Fatalf("Expected a hit through the viewport center")
	}
	want := mgl32.Vec3{0, 0, 1.8}
	if !closeVec3(hit, want, 1e-4) {
		t.Errorf("Expected %v, got %v", want, hit)
	}
}

func TestProjectDepthEqualsPlaneDepth(t *testing.T) {
	p := NewProjector(newCamera())

	points := []mgl32.Vec2{{0.5, 0.5}, {-1, 1}, {0.9, -0.3}, {-0.2, -0.95}}
	for _, ndc := range points {
		hit, ok := p.Project(ndc)
		if !ok {
			t.Errorf("Expected a hit for %v", ndc)
			continue
		}
		if math.Abs(float64(hit.Z()-DefaultPlaneDepth)) > 1e-4 {
			t.Errorf("Expected depth %v for %v, got %v", DefaultPlaneDepth, ndc, hit.Z())
		}
	}
}

func TestProjectOffCenterMovesAwayFromAxis(t *testing.T) {
	p := NewProjector(newCamera())
	hit, ok := p.Project(mgl32.Vec2{0.5, 0})
	if !ok {
		t.Fatalf("Expected a hit")
	}
	if hit.X() <= 0 {
		t.Errorf("Expected positive x for a pointer right of center, got %v", hit.X())
	}
	if math.Abs(float64(hit.Y())) > 1e-4 {
		t.Errorf("Expected y 0, got %v", hit.Y())
	}
}

func TestProjectParallelPlaneMisses(t *testing.T) {
	// A plane containing the view axis is parallel to the center ray.
	p := NewProjector(newCamera(), WithPlane(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}))
	if _, ok := p.Project(mgl32.Vec2{0, 0}); ok {
		t.Errorf("Expected a miss for a ray parallel to the plane")
	}
}

func TestProjectPlaneBehindCameraMisses(t *testing.T) {
	p := NewProjector(newCamera(), WithPlane(mgl32.Vec3{0, 0, 20}, mgl32.Vec3{0, 0, 1}))
	if _, ok := p.Project(mgl32.Vec2{0, 0}); ok {
		t.Errorf("Expected a miss for a plane behind the camera")
	}
}

func TestProjectMovesLight(t *testing.T) {
	l := light.NewLight(light.LightTypePoint)
	p := NewProjector(newCamera(), WithLight(l))

	hit, ok := p.Project(mgl32.Vec2{0.25, -0.25})
	if !ok {
		t.Fatalf("Expected a hit")
	}
	if mgl32.Vec3(l.Position()) != hit {
		t.Errorf("Expected light at %v, got %v", hit, l.Position())
	}
}

func TestProjectMissLeavesLight(t *testing.T) {
	l := light.NewLight(light.LightTypePoint, light.WithPosition(1, 2, 3))
	p := NewProjector(newCamera(), WithLight(l), WithPlane(mgl32.Vec3{0, 0, 20}, mgl32.Vec3{0, 0, 1}))

	p.Project(mgl32.Vec2{0, 0})
	if l.Position() != [3]float32{1, 2, 3} {
		t.Errorf("Expected light to stay at (1, 2, 3), got %v", l.Position())
	}
}

func TestProjectBounded(t *testing.T) {
	// The visible half-width at the plane is (12 - 1.8) * tan(25deg), about 4.76.
	p := NewProjector(newCamera(), WithBounded(4))

	if _, ok := p.Project(mgl32.Vec2{0.1, 0.1}); !ok {
		t.Errorf("Expected a hit near the center")
	}
	if _, ok := p.Project(mgl32.Vec2{1, 0}); ok {
		t.Errorf("Expected a miss outside the bounded patch")
	}
}

// closeVec3 compares by absolute distance; mgl32's relative comparison rejects near-zero noise
// against an exact zero component.
func closeVec3(got, want mgl32.Vec3, tolerance float32) bool {
	return got.Sub(want).Len() <= tolerance
}
