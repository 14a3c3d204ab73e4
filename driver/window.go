package driver

import (
	"image"

	"github.com/editsurface/scrollbar/driver/xdriver"
	"github.com/editsurface/scrollbar/util/uiutil/event"
	"golang.org/x/image/draw"
)

type Window interface {
	// Events from uiutil/event, or errors. False after the window is closed.
	NextEvent() (any, bool)

	Close() error
	SetWindowName(string)

	Image() draw.Image
	PutImage(image.Rectangle) error
	ResizeImage(image.Rectangle) error

	SetCursor(event.Cursor)
}

type Options = xdriver.Options

func NewWindow(opt *Options) (Window, error) {
	return xdriver.NewWindow(opt)
}
