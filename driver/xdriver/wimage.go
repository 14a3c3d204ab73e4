package xdriver

import (
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

// Window image for drawing.
type WImage interface {
	Image() draw.Image
	PutImage(image.Rectangle) error
	Resize(image.Rectangle) error
	Close() error
}

type wimageOptions struct {
	Conn       *xgb.Conn
	Window     xproto.Window
	ScreenInfo *xproto.ScreenInfo
	GCtx       xproto.Gcontext
}

func newWImage(opt *wimageOptions, log logrus.FieldLogger) (WImage, error) {
	// shared memory (better performance)
	wimg, err := newShmWImage(opt)
	if err == nil {
		return wimg, nil
	}
	log.WithError(err).Warn("unable to use shm window image")

	// default method via copy to the window
	return newCopyWImage(opt)
}
