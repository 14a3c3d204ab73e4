package widget

import (
	"image"

	"github.com/editsurface/scrollbar/util/imageutil"
)

// Plain node painted with the "bg" palette color. A nil ctx doesn't paint.
type Rectangle struct {
	ENode
	Size image.Point
	ctx  ImageContext
}

func NewRectangle(ctx ImageContext) *Rectangle {
	return &Rectangle{ctx: ctx}
}

func (r *Rectangle) Measure(hint image.Point) image.Point {
	return r.Size
}

func (r *Rectangle) Paint() {
	if r.ctx == nil {
		return
	}
	c := r.TreeThemePaletteColor("bg")
	imageutil.FillRectangle(r.ctx.Image(), r.Bounds, c)
}
