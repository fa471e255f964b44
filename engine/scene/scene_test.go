package scene

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/camera"
	"github.com/Carmen-Shannon/oxy-eyes/engine/eye"
	"github.com/Carmen-Shannon/oxy-eyes/engine/light"
	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

func newCamera() camera.Camera {
	return camera.NewCamera(
		camera.WithController(camera.NewCameraController(camera.WithRadius(12))),
		camera.WithAspect(1),
	)
}

func newEye(pos mgl32.Vec3) eye.Eye {
	m := model.NewModel(model.WithBoundingRadius(1))
	return eye.NewEye(eye.WithModel(m), eye.WithBasePosition(pos))
}

func TestVisibleCullsAndSkipsDisabled(t *testing.T) {
	inside := newEye(mgl32.Vec3{0, 0, 0})
	outside := newEye(mgl32.Vec3{500, 0, 0})
	disabled := newEye(mgl32.Vec3{1, 1, 0})
	disabled.SetEnabled(false)
	behind := newEye(mgl32.Vec3{0, 0, 40})

	s := NewScene(WithCamera(newCamera()), WithEyes([]eye.Eye{inside, outside, disabled, behind}))
	visible := s.Visible()

	if len(visible) != 1 || visible[0] != inside {
		t.Errorf("Expected only the inside eye visible, got %d eyes", len(visible))
	}
	if len(s.Eyes()) != 4 {
		t.Errorf("Expected 4 eyes in scene, got %d", len(s.Eyes()))
	}
}

func TestVisibleWithoutCamera(t *testing.T) {
	s := NewScene(WithEyes([]eye.Eye{newEye(mgl32.Vec3{900, 0, 0})}))
	if len(s.Visible()) != 1 {
		t.Errorf("Expected every enabled eye visible without a camera, got %d", len(s.Visible()))
	}
}

func TestLights(t *testing.T) {
	rig := NewLighting()
	s := NewScene(WithLights(rig.All()...))

	if len(s.Lights()) != 4 {
		t.Fatalf("Expected 4 lights, got %d", len(s.Lights()))
	}
	ambient := s.AmbientColor()
	if want := DefaultBackground.Scale(1.5); ambient != want {
		t.Errorf("Expected ambient %v, got %v", want, ambient)
	}

	rig.Ambient.SetEnabled(false)
	if s.AmbientColor() != (common.Color{}) {
		t.Errorf("Expected no ambient with the ambient light disabled, got %v", s.AmbientColor())
	}

	s.RemoveLight(rig.Fill)
	if len(s.Lights()) != 3 {
		t.Errorf("Expected 3 lights after removal, got %d", len(s.Lights()))
	}
	for _, l := range s.Lights() {
		if l == rig.Fill {
			t.Errorf("Expected fill light removed")
		}
	}
}

func TestLightingRig(t *testing.T) {
	rig := NewLighting()
	if !rig.Tracking.CastsShadows() || rig.Tracking.Type() != light.LightTypePoint {
		t.Errorf("Expected a shadow-casting point tracking light")
	}
	if rig.Ambient.Color() != DefaultBackground || rig.Ambient.Intensity() != 1.5 {
		t.Errorf("Expected ambient tinted with the background at 1.5, got %v at %v", rig.Ambient.Color(), rig.Ambient.Intensity())
	}
	if rig.Key.Intensity() != 4.25 || rig.Fill.Intensity() != 4.15 {
		t.Errorf("Expected key 4.25 and fill 4.15, got %v and %v", rig.Key.Intensity(), rig.Fill.Intensity())
	}
	d := rig.Key.Direction()
	length := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
	if math.Abs(length-1) > 1e-5 || d[1] >= 0 {
		t.Errorf("Expected a unit key direction pointing down, got %v", d)
	}
}

func TestDefaultBackground(t *testing.T) {
	s := NewScene()
	r, g, b := s.Background().RGB8()
	if r != 0x54 || g != 0xb3 || b != 0xd1 {
		t.Errorf("Expected #54b3d1, got #%02x%02x%02x", r, g, b)
	}
}
