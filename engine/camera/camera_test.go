package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func newTestCamera() Camera {
	ctrl := NewCameraController(WithRadius(12))
	return NewCamera(WithController(ctrl), WithFovDegrees(50), WithAspect(16.0/9.0))
}

func TestControllerDefaultPlacement(t *testing.T) {
	ctrl := NewCameraController(WithRadius(12))
	x, y, z := ctrl.Position()
	if !approx(x, 0) || !approx(y, 0) || !approx(z, 12) {
		t.Errorf("Expected position (0, 0, 12), got (%v, %v, %v)", x, y, z)
	}
}

func TestControllerSetPositionKeepsPlacement(t *testing.T) {
	ctrl := NewCameraController()
	ctrl.SetPosition(0, 3, 4)
	if !approx(ctrl.Radius(), 5) {
		t.Errorf("Expected radius 5, got %v", ctrl.Radius())
	}

	ctrl.SetTarget(0, 0, 0)
	x, y, z := ctrl.Position()
	if !approx(x, 0) || !approx(y, 3) || !approx(z, 4) {
		t.Errorf("Expected position (0, 3, 4) after SetTarget, got (%v, %v, %v)", x, y, z)
	}
}

func TestControllerRadiusFloor(t *testing.T) {
	ctrl := NewCameraController()
	ctrl.SetRadius(-5)
	if ctrl.Radius() <= 0 {
		t.Errorf("Expected positive radius, got %v", ctrl.Radius())
	}
}

func TestRayThroughCenter(t *testing.T) {
	cam := newTestCamera()
	ray := cam.Ray(0, 0)

	if !approx(ray.Origin.Z(), 12) {
		t.Errorf("Expected ray origin z 12, got %v", ray.Origin.Z())
	}
	want := mgl32.Vec3{0, 0, -1}
	for i := 0; i < 3; i++ {
		if !approx(ray.Direction[i], want[i]) {
			t.Errorf("Expected direction %v, got %v", want, ray.Direction)
			break
		}
	}
}

func TestRayProjectRoundTrip(t *testing.T) {
	cam := newTestCamera()

	tests := []struct {
		name string
		x, y float32
	}{
		{"Top right", 0.5, 0.5},
		{"Bottom left", -0.75, -0.25},
		{"Edge", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := cam.Ray(tt.x, tt.y)
			p := ray.At(5)
			ndc, ok := cam.Project(p)
			if !ok {
				t.Fatalf("Expected point on ray to project")
			}
			if !approx(ndc.X(), tt.x) || !approx(ndc.Y(), tt.y) {
				t.Errorf("Expected NDC (%v, %v), got (%v, %v)", tt.x, tt.y, ndc.X(), ndc.Y())
			}
			if ndc.Z() < 0 || ndc.Z() > 1 {
				t.Errorf("Expected depth in [0, 1], got %v", ndc.Z())
			}
		})
	}
}

func TestSetAspectIgnoresInvalid(t *testing.T) {
	cam := newTestCamera()
	before := cam.Aspect()

	cam.SetAspect(0)
	cam.SetAspect(-1)
	cam.SetAspect(float32(math.Inf(1)))

	if cam.Aspect() != before {
		t.Errorf("Expected aspect %v to be kept, got %v", before, cam.Aspect())
	}
}

func TestRayWithoutController(t *testing.T) {
	cam := NewCamera()
	ray := cam.Ray(0.3, 0.3)
	if ray.Direction != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Expected -Z fallback direction, got %v", ray.Direction)
	}
}
