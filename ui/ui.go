package ui

import (
	"image"
	"time"

	"github.com/editsurface/scrollbar/driver"
	"github.com/editsurface/scrollbar/util/fontutil"
	"github.com/editsurface/scrollbar/util/uiutil"
	"github.com/editsurface/scrollbar/util/uiutil/event"
	"github.com/editsurface/scrollbar/util/uiutil/widget"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

type Options struct {
	VScrollBarWidth  int // zero uses the widget default
	HScrollBarHeight int // zero uses the widget default
	FontSize         float64
	FrameRate        int // frames per second
}

const DefaultFrameRate = 37

//----------

// Runs the window events loop. Implements widget.Context.
type UI struct {
	Win     driver.Window
	Root    *widget.Rectangle
	Editor  *Editor
	OnError func(error)

	surface   *widget.Surface
	frames    widget.FrameQueue
	events    chan any
	done      chan struct{}
	frameRate int
	lastPaint time.Time
	paintWait bool // a wake up is scheduled
	cursor    event.Cursor
}

func NewUI(win driver.Window, opt *Options) (*UI, error) {
	face, err := fontutil.DefaultMonoFace(opt.FontSize)
	if err != nil {
		return nil, errors.Wrap(err, "font")
	}

	ui := &UI{
		Win:       win,
		events:    make(chan any, 64),
		done:      make(chan struct{}),
		frameRate: opt.FrameRate,
		cursor:    event.NoneCursor,
	}
	if ui.frameRate <= 0 {
		ui.frameRate = DefaultFrameRate
	}

	ui.Root = widget.NewRectangle(ui)
	ui.Root.SetWrapperForRoot(ui.Root)
	ui.surface = widget.NewSurface(ui.Root)

	ui.Editor = NewEditor(ui, face, opt)
	ui.Root.Append(ui.Editor)

	return ui, nil
}

//----------

// Returns when the window is closed.
func (ui *UI) EventLoop() {
	defer close(ui.done)
	go ui.forwardWindowEvents()
	for {
		ev := <-ui.events
		if _, ok := ev.(*event.WindowClose); ok {
			if err := ui.Win.Close(); err != nil {
				ui.onError(err)
			}
			return
		}
		ui.HandleEvent(ev)
		ui.PaintIfTime()
	}
}

func (ui *UI) forwardWindowEvents() {
	in := make(chan any, 64)
	defer close(in)
	go uiutil.MoveFilterLoop(in, ui.events, ui.done, ui.frameRate)
	for {
		ev, ok := ui.Win.NextEvent()
		if !ok {
			ev = &event.WindowClose{}
		}
		select {
		case in <- ev:
		case <-ui.done:
			return
		}
		if !ok {
			return
		}
	}
}

func (ui *UI) HandleEvent(ev any) {
	switch t := ev.(type) {
	case *event.WindowResize:
		ui.resize(t.Rect)
	case *event.WindowExpose:
		ui.Root.MarkNeedsPaint()
	case *event.WindowInput:
		ui.surface.Apply(t.Event, t.Point)
		ui.updateCursor()
	case *runFuncEvent:
		t.fn()
	case wakeUpEvent:
		ui.paintWait = false
	case error:
		ui.onError(t)
	default:
		ui.onError(errors.Errorf("unhandled event: %T", ev))
	}
}

func (ui *UI) resize(r image.Rectangle) {
	if err := ui.Win.ResizeImage(r); err != nil {
		ui.onError(err)
		return
	}
	if ui.Root.Bounds != r {
		ui.Root.Bounds = r
		ui.Root.MarkNeedsLayoutAndPaint()
	}
}

func (ui *UI) onError(err error) {
	if ui.OnError != nil {
		ui.OnError(err)
	}
}

//----------

// Paints, or schedules a wake up to respect the frame rate.
func (ui *UI) PaintIfTime() {
	if !ui.needsFrame() {
		return
	}
	now := time.Now()
	min := time.Second / time.Duration(ui.frameRate)
	if d := now.Sub(ui.lastPaint); d < min {
		if !ui.paintWait {
			ui.paintWait = true
			time.AfterFunc(min-d, func() {
				select {
				case ui.events <- wakeUpEvent{}:
				case <-ui.done:
				}
			})
		}
		return
	}
	ui.lastPaint = now
	ui.Frame()
}

func (ui *UI) needsFrame() bool {
	return ui.frames.Len() > 0 || ui.Root.TreeNeedsLayout() || ui.Root.TreeNeedsPaint()
}

// Runs the queued frame functions, lays out and paints the marked nodes, and puts the painted area in the window. Returns the painted area.
func (ui *UI) Frame() image.Rectangle {
	ui.frames.RunFrame()
	ui.Root.LayoutMarked()
	// layout can queue repaints of the bars
	ui.frames.RunFrame()
	ui.Root.LayoutMarked()

	r := ui.Root.PaintMarked()
	if r.Empty() {
		return r
	}
	if err := ui.Win.PutImage(r); err != nil {
		ui.onError(errors.Wrap(err, "put image"))
	}
	return r
}

func (ui *UI) updateCursor() {
	c := event.BeamCursor
	if !ui.Editor.Text.HasAnyMarks(widget.MarkPointerInside) {
		c = event.DefaultCursor
	}
	if ui.Editor.VBar.Dragging() {
		c = event.NSResizeCursor
	} else if ui.Editor.HBar.Dragging() {
		c = event.WEResizeCursor
	}
	if c != ui.cursor {
		ui.cursor = c
		ui.Win.SetCursor(c)
	}
}

//----------

// Can be called from other goroutines.
func (ui *UI) RunOnUIThread(fn func()) {
	select {
	case ui.events <- &runFuncEvent{fn}:
	case <-ui.done:
	}
}

//----------

// widget.Context

func (ui *UI) Image() draw.Image {
	return ui.Win.Image()
}

func (ui *UI) RequestFrame(fn func()) {
	ui.frames.RequestFrame(fn)
}

func (ui *UI) PointerSurface() *widget.Surface {
	return ui.surface
}

//----------

type runFuncEvent struct {
	fn func()
}

type wakeUpEvent struct{}
