package stadium3d

import (
	"image/color"
	"math"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorGray returns an opaque gray Color of the given brightness.
func NewColorGray(value float32) Color {
	return Color{value, value, value, 1}
}

// MultiplyRGB returns a copy of the Color with its R, G and B components multiplied by the value.
func (c Color) MultiplyRGB(value float32) Color {
	c.R *= value
	c.G *= value
	c.B *= value
	return c
}

// Mix returns a copy of the Color multiplied component-wise by the other Color (alpha included).
func (c Color) Mix(other Color) Color {
	c.R *= other.R
	c.G *= other.G
	c.B *= other.B
	c.A *= other.A
	return c
}

// Lerp returns the Color blended towards the other Color by the percentage given (0 to 1).
func (c Color) Lerp(other Color, percent float32) Color {
	c.R += (other.R - c.R) * percent
	c.G += (other.G - c.G) * percent
	c.B += (other.B - c.B) * percent
	c.A += (other.A - c.A) * percent
	return c
}

// Clamped returns a copy of the Color with every component clamped to [0, 1].
func (c Color) Clamped() Color {
	c.R = clamp(c.R, 0, 1)
	c.G = clamp(c.G, 0, 1)
	c.B = clamp(c.B, 0, 1)
	c.A = clamp(c.A, 0, 1)
	return c
}

// RGBA64 returns the Color's components as float64s.
func (c Color) RGBA64() (float64, float64, float64, float64) {
	return float64(c.R), float64(c.G), float64(c.B), float64(c.A)
}

// ToNRGBA64 converts the Color to a standard library color.
func (c Color) ToNRGBA64() color.NRGBA64 {
	c = c.Clamped()
	return color.NRGBA64{
		R: uint16(math.Round(float64(c.R) * math.MaxUint16)),
		G: uint16(math.Round(float64(c.G) * math.MaxUint16)),
		B: uint16(math.Round(float64(c.B) * math.MaxUint16)),
		A: uint16(math.Round(float64(c.A) * math.MaxUint16)),
	}
}

// Floats returns the Color as a [4]float64, the layout glTF material factors use.
func (c Color) Floats() [4]float64 {
	return [4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
}

// SurfaceTint returns the color each Surface's texture is modulated by: the ground is darkened to 80%, walls to 90%,
// and terraces are left as-is.
func SurfaceTint(surface Surface) Color {
	switch surface {
	case SurfaceGround:
		return NewColorGray(0.8)
	case SurfaceWall:
		return NewColorGray(0.9)
	}
	return NewColorGray(1)
}
