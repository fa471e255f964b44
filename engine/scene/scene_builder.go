package scene

import (
	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/camera"
	"github.com/Carmen-Shannon/oxy-eyes/engine/eye"
	"github.com/Carmen-Shannon/oxy-eyes/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
type SceneBuilderOption func(*sceneImpl)

// WithName sets the scene's identifier.
func WithName(name string) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.name = name
	}
}

// WithCamera sets the scene's camera.
//
// Parameters:
//   - cam: the camera
//
// Returns:
//   - SceneBuilderOption: functional option to set the camera
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.camera = cam
	}
}

// WithEyes sets the eyes drawn by the scene.
//
// Parameters:
//   - eyes: the eyes
//
// Returns:
//   - SceneBuilderOption: functional option to set the eyes
func WithEyes(eyes []eye.Eye) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.eyes = eyes
	}
}

// WithLights adds light sources to the scene.
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.lights = append(s.lights, lights...)
	}
}

// WithBackground sets the clear color.
func WithBackground(c common.Color) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.background = c
	}
}
