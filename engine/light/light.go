package light

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-eyes/common"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeAmbient lights every surface uniformly. It has neither position nor direction.
	LightTypeAmbient LightType = iota

	// LightTypeDirectional represents a distant source. For directional lights the position is the
	// point the light shines from toward the origin, matching how the scene places them.
	LightTypeDirectional

	// LightTypePoint emits in all directions from a position. The tracking light is a point light
	// that follows the projected pointer target.
	LightTypePoint
)

// String returns the lowercase name of the light type.
func (t LightType) String() string {
	switch t {
	case LightTypeAmbient:
		return "ambient"
	case LightTypeDirectional:
		return "directional"
	case LightTypePoint:
		return "point"
	default:
		return "unknown"
	}
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.Mutex

	lightType     LightType
	position      [3]float32
	color         common.Color
	intensity     float32
	enabled       bool
	castsShadows  bool
	shadowBias    float32
	shadowMapSize int
}

// Light defines the interface for a light source in the scene.
//
// The projector moves the tracking point light every frame while renderers read it, so the
// implementation is safe for concurrent use.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (ambient, directional, or point)
	Type() LightType

	// Position returns the world-space position of the light.
	// Meaningless for ambient lights.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Direction returns the normalized direction the light travels.
	// Directional lights shine from their position toward the origin; point and ambient lights
	// return the zero vector.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - common.Color: color as (r, g, b)
	Color() common.Color

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Enabled returns whether this light is active for rendering.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// CastsShadows returns whether this light is eligible for shadow map generation.
	//
	// Returns:
	//   - bool: true if the light casts shadows
	CastsShadows() bool

	// ShadowBias returns the depth bias applied when sampling this light's shadow map.
	//
	// Returns:
	//   - float32: the depth bias
	ShadowBias() float32

	// ShadowMapSize returns the edge length in texels of this light's shadow map.
	//
	// Returns:
	//   - int: the shadow map size
	ShadowMapSize() int

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - c: the color
	SetColor(c common.Color)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetEnabled sets whether this light is active for rendering.
	//
	// Parameters:
	//   - enabled: true to enable, false to disable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the given type with white color and unit intensity.
//
// Parameters:
//   - lightType: the kind of light source
//   - opts: functional options to configure the light
//
// Returns:
//   - Light: the newly created light
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:            &sync.Mutex{},
		lightType:     lightType,
		color:         common.Color{1, 1, 1},
		intensity:     1.0,
		enabled:       true,
		shadowMapSize: 1024,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightImpl) Direction() [3]float32 {
	if l.lightType != LightTypeDirectional {
		return [3]float32{}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.position
	return normalize3(-p[0], -p[1], -p[2])
}

func (l *lightImpl) Color() common.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *lightImpl) CastsShadows() bool {
	return l.castsShadows
}

func (l *lightImpl) ShadowBias() float32 {
	return l.shadowBias
}

func (l *lightImpl) ShadowMapSize() int {
	return l.shadowMapSize
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetColor(c common.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = c
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}
