package widget

import (
	"image"
	"math"

	"github.com/editsurface/scrollbar/util/evreg"
	"github.com/editsurface/scrollbar/util/mathutil"
)

// Event ids emitted in the scroll bars Events register.
const (
	ScrollBarScrollEventId = iota
)

// Emitted when the user changes the offset. Not emitted by the setters.
type ScrollEvent struct {
	Data float64 // new offset
}

//----------

type ScrollBarOptions struct {
	Thickness int // size across the axis
}

const (
	DefaultVScrollBarWidth  = 7
	DefaultHScrollBarHeight = 5

	// tolerance at the end of the vertical content
	vScrollOvershoot = 15
)

//----------

// Axis independent part of the vertical and horizontal scroll bars.
type axisBar struct {
	*ScrollBar
	Events evreg.Register

	thickness int
	overshoot float64

	pressPos    int
	pressOffset float64

	pendingRepaint bool
}

func newAxisBar(ctx Context, parent Node, axis XYAxis, thickness int, overshoot float64) *axisBar {
	ab := &axisBar{thickness: thickness, overshoot: overshoot}
	ab.ScrollBar = NewScrollBar(ctx, parent, axis)
	ab.OnMoveBegin = ab.onMoveBegin
	ab.OnMoving = ab.onMoving
	ab.OnPressScroll = ab.onPressScroll
	ab.OnWheel = ab.onWheel

	*ab.axis.CrossPtr(&ab.Track.Size) = thickness
	*ab.axis.CrossPtr(&ab.Box.Size) = thickness
	return ab
}

//----------

func (ab *axisBar) trackLen() int {
	return ab.axis.Along(ab.Box.Bounds.Size())
}
func (ab *axisBar) trackStart() int {
	return ab.axis.Along(ab.Box.Bounds.Min)
}
func (ab *axisBar) handleLen() int {
	return ab.axis.Along(ab.Handle.Bounds.Size())
}

//----------

func (ab *axisBar) offset() float64 {
	return ab.Track.ScrollOffset
}
func (ab *axisBar) extent() float64 {
	return ab.Track.Inner.Length
}

func (ab *axisBar) setExtent(v float64) {
	ab.Track.Inner.Length = v
	ab.scheduleRepaint()
}

func (ab *axisBar) setOffset(v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	tl := float64(ab.trackLen())
	if ext := ab.extent() + ab.overshoot; v+tl > ext {
		v = ext - tl
	}
	// after the upper limit, content smaller than the track gives zero
	if v < 0 {
		v = 0
	}
	if ab.offset() == v {
		return
	}
	ab.Track.ScrollOffset = v
	ab.scheduleRepaint()
}

// Along-axis length of the whole control. Resizes the track and box bounds from their start.
func (ab *axisBar) setLength(px int) {
	px = mathutil.Max(px, 0)
	*ab.axis.AlongPtr(&ab.Track.Size) = px
	*ab.axis.AlongPtr(&ab.Box.Size) = px
	for _, en := range []*EmbedNode{ab.Track.Embed(), ab.Box.Embed()} {
		r := en.Bounds
		*ab.axis.AlongPtr(&r.Max) = ab.axis.Along(r.Min) + px
		en.Bounds = r
	}
	ab.Box.MarkNeedsLayoutAndPaint()
	ab.scheduleRepaint()
}

//----------

func (ab *axisBar) onMoveBegin(p image.Point) {
	ab.pressPos = ab.axis.Along(p)
	ab.pressOffset = ab.offset()
}

func (ab *axisBar) onMoving(p image.Point) {
	tl := ab.trackLen()
	if tl == 0 {
		return
	}
	d := float64(ab.axis.Along(p)-ab.pressPos) * ab.extent() / float64(tl)
	ab.setOffset(ab.pressOffset + d)
	ab.emitScroll()
}

func (ab *axisBar) onPressScroll(p image.Point) {
	tl := ab.trackLen()
	if tl == 0 {
		return
	}
	u := float64(ab.axis.Along(p)-ab.trackStart()) - float64(ab.handleLen())/2
	ab.setOffset(u * ab.extent() / float64(tl))
	ab.emitScroll()
}

func (ab *axisBar) onWheel(up bool) {
	step := float64(ab.trackLen()) * 0.9
	if up {
		step = -step
	}
	ab.setOffset(ab.offset() + step)
	ab.emitScroll()
}

func (ab *axisBar) emitScroll() {
	ab.Events.RunCallbacks(ScrollBarScrollEventId, &ScrollEvent{Data: ab.offset()})
}

//----------

// At most one repaint queued per frame.
func (ab *axisBar) scheduleRepaint() {
	if ab.pendingRepaint {
		return
	}
	ab.pendingRepaint = true
	ab.ctx.RequestFrame(ab.repaint)
}

// Updates the handle from the current state and track bounds.
func (ab *axisBar) repaint() {
	ab.pendingRepaint = false

	tl := float64(ab.trackLen())
	den := mathutil.Max(ab.extent(), tl)
	ab.Handle.sizePercent = mathutil.SafeDiv(tl, den, 1)
	ab.Handle.posPercent = mathutil.SafeDiv(ab.offset(), den, 0)

	// container takes the box bounds
	ab.Box.LayoutTree()
	ab.Handle.MarkNeedsPaint()
}

//----------

// Size across the axis, zero if not visible.
func (ab *axisBar) crossSize(min int) int {
	v := 0
	if ab.visible {
		v = ab.thickness
	}
	return mathutil.Max(v, min)
}
