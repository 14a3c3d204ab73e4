package ui

import (
	"image"
	"math"

	"github.com/editsurface/scrollbar/util/evreg"
	"github.com/editsurface/scrollbar/util/fontutil"
	"github.com/editsurface/scrollbar/util/uiutil/event"
	"github.com/editsurface/scrollbar/util/uiutil/widget"
)

// Text view with a vertical bar at the right and a horizontal bar at the bottom. Bars are shown only when the text overflows.
type Editor struct {
	widget.ENode
	Text *TextView
	VBar *widget.VScrollBar
	HBar *widget.HScrollBar

	unr evreg.Unregister
}

func NewEditor(ctx widget.Context, face *fontutil.FaceCache, opt *Options) *Editor {
	ed := &Editor{}
	ed.Text = NewTextView(ctx, face)
	ed.Append(ed.Text)

	ed.VBar = widget.NewVScrollBar(ctx, ed, &widget.ScrollBarOptions{Thickness: opt.VScrollBarWidth})
	ed.HBar = widget.NewHScrollBar(ctx, ed, &widget.ScrollBarOptions{Thickness: opt.HScrollBarHeight})

	// user scrolling on the bars moves the text
	ed.unr.Add(
		ed.VBar.Events.Add(widget.ScrollBarScrollEventId, func(ev any) {
			e := ev.(*widget.ScrollEvent)
			ed.Text.SetOffsetY(int(math.Round(e.Data)))
		}),
		ed.HBar.Events.Add(widget.ScrollBarScrollEventId, func(ev any) {
			e := ev.(*widget.ScrollEvent)
			ed.Text.SetOffsetX(int(math.Round(e.Data)))
		}),
	)
	return ed
}

// Stops listening to the bars.
func (ed *Editor) Close() {
	ed.unr.UnregisterAll()
}

//----------

func (ed *Editor) SetText(s string) {
	ed.Text.SetText(s)
	ed.MarkNeedsLayoutAndPaint()
}

//----------

func (ed *Editor) Layout() {
	b := ed.Bounds
	cs := ed.Text.ContentSize()

	// each bar takes space that can make the other one needed
	ed.VBar.SetVisible(cs.Y > b.Dy())
	ed.HBar.SetVisible(cs.X > b.Dx()-ed.VBar.GetWidth())
	if !ed.VBar.Visible() && cs.Y > b.Dy()-ed.HBar.GetHeight() {
		ed.VBar.SetVisible(true)
	}

	vw, hh := ed.VBar.GetWidth(), ed.HBar.GetHeight()
	tr := image.Rect(b.Min.X, b.Min.Y, b.Max.X-vw, b.Max.Y-hh).Intersect(b)
	ed.Text.Bounds = tr

	// bars are placed at their start, the setters give the length
	vr := image.Rect(tr.Max.X, b.Min.Y, b.Max.X, b.Min.Y)
	ed.VBar.Track.Bounds = vr
	ed.VBar.Box.Bounds = vr
	ed.VBar.SetHeight(tr.Dy())
	hr := image.Rect(b.Min.X, tr.Max.Y, b.Min.X, b.Max.Y)
	ed.HBar.Track.Bounds = hr
	ed.HBar.Box.Bounds = hr
	ed.HBar.SetWidth(tr.Dx())

	ed.VBar.SetScrollHeight(float64(cs.Y))
	ed.HBar.SetScrollWidth(float64(cs.X))

	// clamp the offsets to the new sizes
	ed.VBar.SetScrollTop(ed.VBar.ScrollTop())
	ed.HBar.SetScrollLeft(ed.HBar.ScrollLeft())
	ed.syncTextOffset()
}

func (ed *Editor) syncTextOffset() {
	x := int(math.Round(ed.HBar.ScrollLeft()))
	y := int(math.Round(ed.VBar.ScrollTop()))
	ed.Text.SetOffset(image.Point{x, y})
}

//----------

// Programmatic scrolling: the bars are updated, no scroll event is emitted.

func (ed *Editor) SetScrollTop(v float64) {
	ed.VBar.SetScrollTop(v)
	ed.syncTextOffset()
}

func (ed *Editor) SetScrollLeft(v float64) {
	ed.HBar.SetScrollLeft(v)
	ed.syncTextOffset()
}

func (ed *Editor) ScrollLines(n int) {
	ed.SetScrollTop(ed.VBar.ScrollTop() + float64(n*ed.Text.LineHeight()))
}

func (ed *Editor) ScrollColumns(n int) {
	ed.SetScrollLeft(ed.HBar.ScrollLeft() + float64(n*ed.Text.Advance()))
}

// Line index starts at zero.
func (ed *Editor) ScrollToLine(line int) {
	ed.SetScrollTop(float64(line * ed.Text.LineHeight()))
}

func (ed *Editor) ScrollPages(n int) {
	// keep one line of context
	lh := ed.Text.LineHeight()
	page := ed.Text.Bounds.Dy() - lh
	if page < lh {
		page = lh
	}
	ed.SetScrollTop(ed.VBar.ScrollTop() + float64(n*page))
}

//----------

const wheelLines = 3

func (ed *Editor) OnInputEvent(ev any, p image.Point) event.Handle {
	switch t := ev.(type) {
	case *event.MouseDown:
		switch t.Button {
		case event.ButtonWheelUp:
			ed.ScrollLines(-wheelLines)
		case event.ButtonWheelDown:
			ed.ScrollLines(wheelLines)
		case event.ButtonWheelLeft:
			ed.ScrollColumns(-wheelLines)
		case event.ButtonWheelRight:
			ed.ScrollColumns(wheelLines)
		default:
			return event.NotHandled
		}
		return event.Handled
	case *event.KeyDown:
		switch t.KeySym {
		case event.KSymUp:
			ed.ScrollLines(-1)
		case event.KSymDown:
			ed.ScrollLines(1)
		case event.KSymLeft:
			ed.ScrollColumns(-1)
		case event.KSymRight:
			ed.ScrollColumns(1)
		case event.KSymPageUp:
			ed.ScrollPages(-1)
		case event.KSymPageDown:
			ed.ScrollPages(1)
		case event.KSymHome:
			ed.ScrollToLine(0)
		case event.KSymEnd:
			ed.ScrollToLine(ed.Text.NLines())
		default:
			return event.NotHandled
		}
		return event.Handled
	}
	return event.NotHandled
}
