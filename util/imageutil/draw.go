package imageutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Draws color c through the mask (nil mask fills r). BGRA destinations draw on the underlying RGBA with the channels swapped in the color, which keeps the x/image fast path.
func DrawUniformMask(dst draw.Image, r image.Rectangle, c color.Color, mask image.Image, mp image.Point, op draw.Op) {
	if c == nil {
		return
	}
	if bgra, ok := dst.(*BGRA); ok {
		dst, c = &bgra.RGBA, BgraColor(c)
	}
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, mask, mp, op)
}

func FillRectangle(img draw.Image, r image.Rectangle, c color.Color) {
	DrawUniformMask(img, r, c, nil, image.Point{}, draw.Src)
}
