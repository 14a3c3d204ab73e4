package widget

import (
	"golang.org/x/image/draw"
)

type ImageContext interface {
	Image() draw.Image
}

type FrameRequester interface {
	// Runs fn before the next paint.
	RequestFrame(fn func())
}

// Everything a scroll bar needs from the host ui.
type Context interface {
	ImageContext
	FrameRequester
	PointerSurface() *Surface
}
