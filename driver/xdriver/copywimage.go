package xdriver

import (
	"image"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/editsurface/scrollbar/util/imageutil"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Sends the image data in put image requests.
type copyWImage struct {
	opt *wimageOptions
	img *imageutil.BGRA
}

func newCopyWImage(opt *wimageOptions) (*copyWImage, error) {
	wi := &copyWImage{opt: opt}
	if err := wi.Resize(image.Rect(0, 0, 1, 1)); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *copyWImage) Close() error {
	wi.img = imageutil.NewBGRA(image.Rectangle{})
	return nil
}

func (wi *copyWImage) Resize(r image.Rectangle) error {
	wi.img = imageutil.NewBGRA(r)
	return nil
}

func (wi *copyWImage) Image() draw.Image {
	return wi.img
}

func (wi *copyWImage) PutImage(r image.Rectangle) error {
	r = r.Intersect(wi.img.Bounds())
	if r.Empty() {
		return nil
	}
	chunks, err := putImageChunks(r, maxPutImageReqSize)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	for _, c := range chunks {
		wg.Add(1)
		go func(c image.Rectangle) {
			defer wg.Done()
			wi.send(c)
		}(c)
	}
	wg.Wait()
	return nil
}

func (wi *copyWImage) send(r image.Rectangle) {
	w := r.Dx() * 4
	data := make([]byte, w*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := (y - r.Min.Y) * w
		j := wi.img.PixOffset(r.Min.X, y)
		copy(data[i:i+w], wi.img.Pix[j:j+w])
	}
	// unchecked, errors arrive in the event loop
	_ = xproto.PutImage(
		wi.opt.Conn,
		xproto.ImageFormatZPixmap,
		xproto.Drawable(wi.opt.Window),
		wi.opt.GCtx,
		uint16(r.Dx()), uint16(r.Dy()),
		int16(r.Min.X), int16(r.Min.Y),
		0, // left pad, must be 0 for ZPixmap format
		wi.opt.ScreenInfo.RootDepth,
		data)
}

//----------

// X max request length = (2^16)*4 bytes
const maxPutImageReqSize = (1 << 16) * 4

// put image request header size
const putImageHeaderSize = 28

// Splits r in horizontal bands that fit in one request each (4 bytes per pixel).
func putImageChunks(r image.Rectangle, maxReqSize int) ([]image.Rectangle, error) {
	maxPixels := (maxReqSize - putImageHeaderSize) / 4
	if r.Dx() > maxPixels {
		return nil, errors.Errorf("put image: width too big: %v>%v", r.Dx(), maxPixels)
	}
	if r.Dx() <= 0 {
		return nil, nil
	}
	h := maxPixels / r.Dx()
	var u []image.Rectangle
	for y := r.Min.Y; y < r.Max.Y; y += h {
		c := image.Rect(r.Min.X, y, r.Max.X, y+h)
		u = append(u, c.Intersect(r))
	}
	return u, nil
}
