package gasket

import "image/color"

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// ToRGBA64 converts the Color to a premultiplied color.RGBA64, for use with image and Ebitengine functions.
func (c Color) ToRGBA64() color.RGBA64 {
	return color.RGBA64{
		R: uint16(clamp01(c.R*c.A) * 65535),
		G: uint16(clamp01(c.G*c.A) * 65535),
		B: uint16(clamp01(c.B*c.A) * 65535),
		A: uint16(clamp01(c.A) * 65535),
	}
}

func clamp01(value float32) float32 {
	if value < 0 {
		return 0
	} else if value > 1 {
		return 1
	}
	return value
}
