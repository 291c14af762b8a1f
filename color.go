package softrast

import "image/color"

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromRGB8 returns a new, opaque Color from 8-bit R, G, and B channels.
func NewColorFromRGB8(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// Mult returns a copy of the Color with the R, G, and B channels multiplied by the scalar given; alpha is left alone.
func (c Color) Mult(scalar float32) Color {
	c.R *= scalar
	c.G *= scalar
	c.B *= scalar
	return c
}

// MultRGB returns a copy of the Color with its channels multiplied component-wise by the Vector3 given (X with R, Y with G, Z with B).
func (c Color) MultRGB(vec Vector3) Color {
	c.R *= vec.X
	c.G *= vec.Y
	c.B *= vec.Z
	return c
}

// Clamped returns a copy of the Color with all channels clamped to the 0 to 1 range.
func (c Color) Clamped() Color {
	c.R = clamp(c.R, 0, 1)
	c.G = clamp(c.G, 0, 1)
	c.B = clamp(c.B, 0, 1)
	c.A = clamp(c.A, 0, 1)
	return c
}

// RGB8 returns the R, G, and B channels of the Color as 8-bit values, clamping out-of-range channels.
func (c Color) RGB8() (r, g, b uint8) {
	c = c.Clamped()
	return uint8(c.R*255 + 0.5), uint8(c.G*255 + 0.5), uint8(c.B*255 + 0.5)
}

// ToRGBA returns the Color as an image/color.RGBA (with premultiplied alpha).
func (c Color) ToRGBA() color.RGBA {
	c = c.Clamped()
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
