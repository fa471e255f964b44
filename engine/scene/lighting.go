package scene

import (
	"github.com/Carmen-Shannon/oxy-eyes/engine/light"
)

// Lighting is the stock light rig: an ambient fill tinted with the background color, a key and a
// fill directional light, and a shadow-casting point light that follows the gaze target.
type Lighting struct {
	Ambient  light.Light
	Key      light.Light
	Fill     light.Light
	Tracking light.Light
}

// NewLighting builds the stock light rig. The tracking light starts at the origin until the
// projector moves it.
//
// Returns:
//   - Lighting: the lights
func NewLighting() Lighting {
	return Lighting{
		Ambient: light.NewLight(light.LightTypeAmbient,
			light.WithColor(DefaultBackground),
			light.WithIntensity(1.5),
		),
		Key: light.NewLight(light.LightTypeDirectional,
			light.WithPosition(2, 15, 5),
			light.WithIntensity(4.25),
		),
		Fill: light.NewLight(light.LightTypeDirectional,
			light.WithPosition(-5, -2, 10),
			light.WithIntensity(4.15),
		),
		Tracking: light.NewLight(light.LightTypePoint,
			light.WithIntensity(4),
			light.WithShadows(-0.0001, 1024),
		),
	}
}

// All returns the rig's lights in a fixed order.
func (l Lighting) All() []light.Light {
	return []light.Light{l.Ambient, l.Key, l.Fill, l.Tracking}
}
