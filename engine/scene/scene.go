package scene

import (
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/camera"
	"github.com/Carmen-Shannon/oxy-eyes/engine/eye"
	"github.com/Carmen-Shannon/oxy-eyes/engine/light"
)

// DefaultBackground is the clear color of a new scene.
var DefaultBackground = common.Color{0x54 / 255.0, 0xb3 / 255.0, 0xd1 / 255.0}

type sceneImpl struct {
	mu *sync.Mutex

	name       string
	camera     camera.Camera
	eyes       []eye.Eye
	lights     []light.Light
	background common.Color
}

// Scene is what a renderer draws each frame: a camera, the eyes, the lights and a background.
// The scene does not own the eyes; the swarm does. Safe for concurrent use.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Eyes returns every eye in the scene, enabled or not.
	//
	// Returns:
	//   - []eye.Eye: the eyes
	Eyes() []eye.Eye

	// SetEyes replaces the eyes drawn by the scene.
	//
	// Parameters:
	//   - eyes: the eyes to draw
	SetEyes(eyes []eye.Eye)

	// Visible returns the enabled eyes whose bounding spheres intersect the camera frustum.
	//
	// Returns:
	//   - []eye.Eye: the eyes to draw this frame
	Visible() []eye.Eye

	// AddLight adds a light source to the scene.
	//
	// Parameters:
	//   - l: the Light to add
	AddLight(l light.Light)

	// RemoveLight removes a light source from the scene by reference.
	//
	// Parameters:
	//   - l: the Light to remove
	RemoveLight(l light.Light)

	// Lights returns all lights currently registered in the scene.
	//
	// Returns:
	//   - []light.Light: the scene's light list
	Lights() []light.Light

	// AmbientColor returns the sum of every enabled ambient light's color times its intensity.
	//
	// Returns:
	//   - common.Color: the ambient RGB color
	AmbientColor() common.Color

	// Background returns the clear color.
	Background() common.Color

	// SetBackground sets the clear color.
	//
	// Parameters:
	//   - c: the clear color
	SetBackground(c common.Color)

	// Update recomputes the camera matrices.
	Update()
}

var _ Scene = &sceneImpl{}

// NewScene creates an empty Scene with the default background.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &sceneImpl{
		mu:         &sync.Mutex{},
		name:       "eyes",
		background: DefaultBackground,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *sceneImpl) Name() string {
	return s.name
}

func (s *sceneImpl) Camera() camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera
}

func (s *sceneImpl) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = cam
}

func (s *sceneImpl) Eyes() []eye.Eye {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eyes
}

func (s *sceneImpl) SetEyes(eyes []eye.Eye) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eyes = eyes
}

func (s *sceneImpl) Visible() []eye.Eye {
	s.mu.Lock()
	cam := s.camera
	eyes := s.eyes
	s.mu.Unlock()

	var frustum *common.Frustum
	if cam != nil {
		vp := cam.ViewProjectionMatrix()
		f := common.ExtractFrustumFromMatrix(vp[:])
		frustum = &f
	}

	visible := make([]eye.Eye, 0, len(eyes))
	for _, e := range eyes {
		if !e.Enabled() {
			continue
		}
		if frustum != nil {
			p := e.Position()
			if !frustum.ContainsSphere(p.X(), p.Y(), p.Z(), boundingRadius(e)) {
				continue
			}
		}
		visible = append(visible, e)
	}
	return visible
}

// boundingRadius is the world-space radius of the eye's model after all scaling.
func boundingRadius(e eye.Eye) float32 {
	m := e.Model()
	if m == nil {
		return 0
	}
	sc := e.Scale()
	largest := max(abs(sc.X()), abs(sc.Y()), abs(sc.Z()))
	return m.BoundingRadius() * m.Scale() * largest
}

func (s *sceneImpl) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
}

func (s *sceneImpl) RemoveLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.lights, l); i >= 0 {
		s.lights = slices.Delete(s.lights, i, i+1)
	}
}

func (s *sceneImpl) Lights() []light.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lights)
}

func (s *sceneImpl) AmbientColor() common.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ambient common.Color
	for _, l := range s.lights {
		if l.Type() != light.LightTypeAmbient || !l.Enabled() {
			continue
		}
		c := l.Color().Scale(l.Intensity())
		for i := range ambient {
			ambient[i] += c[i]
		}
	}
	return ambient
}

func (s *sceneImpl) Background() common.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.background
}

func (s *sceneImpl) SetBackground(c common.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = c
}

func (s *sceneImpl) Update() {
	if cam := s.Camera(); cam != nil {
		cam.Update()
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
