package imageutil

import "image/color"

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func RgbaFromInt(u int) color.RGBA {
	v := u & 0xffffff
	r := uint8(v >> 16)
	g := uint8(v >> 8)
	b := uint8(v)
	return color.RGBA{r, g, b, 255}
}

// Used by the x cursors (16 bit channels).
func ColorUint16s(c color.Color) (uint16, uint16, uint16, uint16) {
	r, g, b, a := c.RGBA()
	return uint16(r), uint16(g), uint16(b), uint16(a)
}

//----------

// Turn color darker by v percent (0.0, 1.0).
func Shade(c color.Color, v float64) color.Color {
	c2 := RgbaColor(c)
	c2.R = uint8(float64(c2.R) * (1 - v))
	c2.G = uint8(float64(c2.G) * (1 - v))
	c2.B = uint8(float64(c2.B) * (1 - v))
	return c2
}
