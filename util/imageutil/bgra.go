package imageutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Image with the byte order expected by the x server (blue first).
type BGRA struct {
	image.RGBA
}

func NewBGRA(r image.Rectangle) *BGRA {
	u := image.NewRGBA(r)
	return &BGRA{*u}
}

// Uses buf as the pixels memory (ex: shared memory). Needs 4 bytes per pixel.
func NewBGRAFromBuffer(buf []byte, r image.Rectangle) *BGRA {
	u := image.RGBA{Pix: buf, Stride: 4 * r.Dx(), Rect: r}
	return &BGRA{u}
}

func (img *BGRA) Set(x, y int, c color.Color) {
	img.SetRGBA(x, y, RgbaColor(c))
}

func (img *BGRA) SetRGBA(x, y int, c color.RGBA) {
	c.R, c.B = c.B, c.R // flip to keep bgra
	img.RGBA.SetRGBA(x, y, c)
}

func (img *BGRA) At(x, y int) color.Color {
	c := img.RGBA.RGBAAt(x, y)
	c.R, c.B = c.B, c.R // flip to return rgba
	return c
}

func (img *BGRA) SubImage(r image.Rectangle) draw.Image {
	u := img.RGBA.SubImage(r).(*image.RGBA)
	return &BGRA{*u}
}

//----------

func BgraColor(c color.Color) color.RGBA {
	c2 := RgbaColor(c)
	c2.R, c2.B = c2.B, c2.R
	return c2
}
