package widget

import (
	"image"
	"math"

	"github.com/editsurface/scrollbar/util/imageutil"
	"github.com/editsurface/scrollbar/util/uiutil/event"
)

// Not displayed. Holds the scroll state: the content length (Inner) and the offset into it.
type ScrollTrack struct {
	ENode
	Inner        *ScrollSpacer
	Size         image.Point // viewport
	ScrollOffset float64
	sb           *ScrollBar
}

func (st *ScrollTrack) Measure(hint image.Point) image.Point {
	return st.Size
}

func (st *ScrollTrack) Paint() {}

//----------

// Has the length of the content being scrolled.
type ScrollSpacer struct {
	ENode
	Length float64
}

//----------

// The visible bar.
type ScrollBox struct {
	ENode
	Size image.Point
	sb   *ScrollBar
}

func (sb *ScrollBox) Measure(hint image.Point) image.Point {
	return sb.Size
}

func (sb *ScrollBox) Paint() {
	c := sb.TreeThemePaletteColor("scrollbar_bg")
	imageutil.FillRectangle(sb.sb.ctx.Image(), sb.Bounds, c)
}

func (sb *ScrollBox) OnChildMarked(child Node, newMarks Marks) {
	// paint the background if the handle is getting painted
	if newMarks.HasAny(MarkNeedsPaint | MarkChildNeedsPaint) {
		sb.MarkNeedsPaint()
	}
}

func (sb *ScrollBox) OnInputEvent(ev any, p image.Point) event.Handle {
	if evt, ok := ev.(*event.MouseDown); ok {
		return sb.sb.onBoxMouseDown(evt)
	}
	return event.NotHandled
}

//----------

// Positions the handle from its size and position percentages.
type ScrollContainer struct {
	ENode
	sb *ScrollBar
}

// minimum handle size (stay visible)
const minHandleSize = 4

func (sc *ScrollContainer) Layout() {
	h := sc.sb.Handle
	xy := sc.sb.axis

	// calculate along the x axis
	r := xy.Rectangle(sc.Bounds)
	d := r.Dx()
	p := int(math.Ceil(float64(d) * h.posPercent))
	s := int(math.Ceil(float64(d) * h.sizePercent))
	if s < minHandleSize {
		s = minHandleSize
	}
	r2 := r
	r2.Min.X += p
	r2.Max.X = r2.Min.X + s
	r2 = r2.Intersect(r)

	h.Bounds = xy.Rectangle(r2)
}

//----------

// The thumb.
type ScrollHandle struct {
	ENode
	sb *ScrollBar

	sizePercent float64
	posPercent  float64
	inside      bool
}

func (sh *ScrollHandle) SizePercent() float64 {
	return sh.sizePercent
}
func (sh *ScrollHandle) PositionPercent() float64 {
	return sh.posPercent
}

func (sh *ScrollHandle) Paint() {
	var name string
	switch {
	case sh.sb.Dragging():
		name = "scrollhandle_select"
	case sh.inside:
		name = "scrollhandle_hover"
	default:
		name = "scrollhandle_normal"
	}
	c := sh.TreeThemePaletteColor(name)
	imageutil.FillRectangle(sh.sb.ctx.Image(), sh.Bounds, c)
}

func (sh *ScrollHandle) OnInputEvent(ev any, p image.Point) event.Handle {
	switch evt := ev.(type) {
	case *event.MouseDown:
		// continues to the box, that will ignore it
		sh.sb.onHandleMouseDown(evt)
	case *event.MouseEnter:
		sh.inside = true
		sh.MarkNeedsPaint()
	case *event.MouseLeave:
		sh.inside = false
		sh.MarkNeedsPaint()
	}
	return event.NotHandled
}
