package xdriver

import (
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/editsurface/scrollbar/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

type Options struct {
	Width, Height int
	Log           logrus.FieldLogger // nil uses the standard logger
}

type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	Cursors *Cursors
	KMap    *KMap
	WImg    WImage

	closeOnce sync.Once
	events    chan any
	log       logrus.FieldLogger
}

func NewWindow(opt *Options) (*Window, error) {
	conn, err := xgb.NewConnDisplay(os.Getenv("DISPLAY"))
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}

	win := &Window{
		Conn:   conn,
		events: make(chan any, 8),
		log:    opt.Log,
	}
	if win.log == nil {
		win.log = logrus.StandardLogger()
	}

	if err := win.initialize(opt); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}

	go win.eventLoop()

	return win, nil
}

func (win *Window) initialize(opt *Options) error {
	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskLeaveWindow |
		xproto.EventMaskKeyPress |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwEventMask)
	values := []uint32{evMask}

	w, h := opt.Width, opt.Height
	if w <= 0 || h <= 0 {
		w, h = 500, 500
	}
	_ = xproto.CreateWindow(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, uint16(w), uint16(h),
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)

	_ = xproto.MapWindow(win.Conn, window)

	if err := LoadAtoms(win.Conn, &Atoms, false); err != nil {
		return err
	}
	if err := setupWMDeleteWindow(win.Conn, win.Window); err != nil {
		return errors.Wrap(err, "wm protocols")
	}

	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx
	c2 := xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), 0, nil)
	if err := c2.Check(); err != nil {
		return err
	}

	km, err := NewKMap(win.Conn)
	if err != nil {
		return err
	}
	win.KMap = km

	win.Cursors = NewCursors(win.Conn, win.Window)

	wopt := &wimageOptions{win.Conn, win.Window, win.Screen, win.GCtx}
	img, err := newWImage(wopt, win.log)
	if err != nil {
		return err
	}
	win.WImg = img

	return nil
}

func (win *Window) Close() error {
	var err error
	win.closeOnce.Do(func() {
		err = win.WImg.Close()
		win.Conn.Close()
	})
	return err
}

//----------

// Returns false after the connection is closed and all events were read.
func (win *Window) NextEvent() (any, bool) {
	ev, ok := <-win.events
	return ev, ok
}

func (win *Window) eventLoop() {
	defer close(win.events)
	for {
		ev, xerr := win.Conn.WaitForEvent()
		if ev == nil && xerr == nil {
			win.events <- &event.WindowClose{}
			return
		}
		if xerr != nil {
			win.events <- errors.Wrap(xerr, "x event")
			continue
		}
		if ev2 := win.translate(ev); ev2 != nil {
			win.events <- ev2
		}
	}
}

func (win *Window) translate(ev xgb.Event) any {
	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
		// must use (0,0)
		return &event.WindowResize{Rect: image.Rect(0, 0, int(t.Width), int(t.Height))}
	case xproto.ExposeEvent: // region needs paint
		// only the last expose of a sequence
		if t.Count > 0 {
			return nil
		}
		return &event.WindowExpose{}
	case xproto.MapNotifyEvent, xproto.ReparentNotifyEvent, shm.CompletionEvent:
		return nil
	case xproto.MappingNotifyEvent: // keyboard mapping
		if err := win.KMap.ReadMapping(); err != nil {
			return err
		}
		return nil

	case xproto.KeyPressEvent:
		return win.keyPress(&t)
	case xproto.ButtonPressEvent:
		return buttonPress(&t)
	case xproto.ButtonReleaseEvent:
		return buttonRelease(&t)
	case xproto.MotionNotifyEvent:
		return motionNotify(&t)
	case xproto.LeaveNotifyEvent:
		if u := leaveNotify(&t); u != nil {
			return u
		}
		return nil

	case xproto.ClientMessageEvent:
		if isWMDeleteWindow(&t) {
			return &event.WindowClose{}
		}
		return nil
	}
	win.log.WithField("event", fmt.Sprintf("%T", ev)).Debug("unhandled x event")
	return nil
}

//----------

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,
		Atoms.NetWMName,  // property
		Atoms.Utf8String, // target
		8,                // format
		uint32(len(b)),
		b)
}

func (win *Window) Image() draw.Image {
	return win.WImg.Image()
}

func (win *Window) PutImage(r image.Rectangle) error {
	return win.WImg.PutImage(r)
}

func (win *Window) ResizeImage(r image.Rectangle) error {
	if r.Eq(win.Image().Bounds()) {
		return nil
	}
	return win.WImg.Resize(r)
}

func (win *Window) SetCursor(c event.Cursor) {
	if err := win.Cursors.SetCursor(c); err != nil {
		win.log.WithError(err).Warn("set cursor")
	}
}
