package common

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a linear RGB triple with components in [0, 1].
type Color [3]float32

// ParseColor accepts "#rrggbb", "#rgb" or an SVG 1.1 color name ("steelblue").
//
// Parameters:
//   - s: the color string
//
// Returns:
//   - Color: the parsed color
//   - error: error if s is neither a hex triple nor a known name
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return Color{
			float32((v>>16)&0xff) / 255,
			float32((v>>8)&0xff) / 255,
			float32(v&0xff) / 255,
		}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return Color{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

// RGB8 returns the color quantized to 8-bit channels.
func (c Color) RGB8() (r, g, b uint8) {
	q := func(v float32) uint8 {
		return uint8(Clamp01(v)*255 + 0.5)
	}
	return q(c[0]), q(c[1]), q(c[2])
}

// Scale returns the color with every channel multiplied by f.
func (c Color) Scale(f float32) Color {
	return Color{c[0] * f, c[1] * f, c[2] * f}
}
