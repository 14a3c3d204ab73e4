package widget

import (
	"image"

	"github.com/editsurface/scrollbar/util/evreg"
	"github.com/editsurface/scrollbar/util/uiutil/event"
)

// Base of VScrollBar and HScrollBar. Owns the nodes and turns pointer events into move gestures.
//
// Nodes:
//   - Track: not displayed; holds the content length (Inner) and the offset (ScrollOffset).
//   - Box: the visible bar; parent of the Container, that is parent of the Handle (the thumb).
//
// Track and Box are appended to the parent as siblings.
type ScrollBar struct {
	Track     *ScrollTrack
	Box       *ScrollBox
	Container *ScrollContainer
	Handle    *ScrollHandle

	// Gesture callbacks. Nil callbacks are skipped.
	OnMoveBegin   func(p image.Point)
	OnMoving      func(p image.Point)
	OnMoveEnd     func(p image.Point)
	OnPressScroll func(p image.Point)
	OnWheel       func(up bool)

	ctx     Context
	axis    XYAxis
	visible bool

	session     *dragSession
	handlePress *event.MouseDown // press that originated on the handle
}

func NewScrollBar(ctx Context, parent Node, axis XYAxis) *ScrollBar {
	sb := &ScrollBar{ctx: ctx, axis: axis}

	sb.Track = &ScrollTrack{sb: sb}
	sb.Track.AddMarks(MarkNotPaintable)
	sb.Track.Inner = &ScrollSpacer{}
	sb.Track.Append(sb.Track.Inner)

	sb.Box = &ScrollBox{sb: sb}
	sb.Container = &ScrollContainer{sb: sb}
	sb.Handle = &ScrollHandle{sb: sb, sizePercent: 1}
	sb.Box.Append(sb.Container)
	sb.Container.Append(sb.Handle)

	parent.Embed().Append(sb.Track, sb.Box)

	sb.SetVisible(false)
	return sb
}

//----------

func (sb *ScrollBar) SetVisible(v bool) {
	sb.Track.SetMarks(MarkForceZeroBounds, !v) // display
	sb.Box.SetMarks(MarkNotPaintable, !v)      // visibility
	sb.visible = v
}

func (sb *ScrollBar) Visible() bool {
	return sb.visible
}

// A move gesture is in progress.
func (sb *ScrollBar) Dragging() bool {
	return sb.session != nil
}

//----------

func (sb *ScrollBar) onHandleMouseDown(ev *event.MouseDown) {
	if ev.Button != event.ButtonLeft {
		return
	}
	sb.handlePress = ev
	sb.beginMove(ev.Point)
}

func (sb *ScrollBar) onBoxMouseDown(ev *event.MouseDown) event.Handle {
	switch ev.Button {
	case event.ButtonLeft:
		if ev == sb.handlePress {
			sb.handlePress = nil
			return event.Handled
		}
		if sb.OnPressScroll != nil {
			sb.OnPressScroll(ev.Point)
		}
		// turn the press into a drag on the next frame
		p := ev.Point
		sb.ctx.RequestFrame(func() {
			// released before the frame ran
			if !sb.ctx.PointerSurface().Pressed().Has(event.ButtonLeft) {
				return
			}
			sb.beginMove(p)
		})
	case event.ButtonWheelUp, event.ButtonWheelDown:
		if sb.OnWheel != nil {
			sb.OnWheel(ev.Button == event.ButtonWheelUp)
		}
	}
	return event.Handled
}

//----------

func (sb *ScrollBar) beginMove(p image.Point) {
	// only one session at a time
	if sb.session != nil {
		return
	}
	sb.session = newDragSession(sb)
	sb.Handle.MarkNeedsPaint()
	if sb.OnMoveBegin != nil {
		sb.OnMoveBegin(p)
	}
}

func (sb *ScrollBar) moving(p image.Point) {
	if sb.OnMoving != nil {
		sb.OnMoving(p)
	}
}

func (sb *ScrollBar) endMove(p image.Point) {
	if sb.session == nil {
		return
	}
	sb.session.dispose()
	sb.session = nil
	sb.Handle.MarkNeedsPaint()
	if sb.OnMoveEnd != nil {
		sb.OnMoveEnd(p)
	}
}

//----------

// Pointer capture: listens to the whole surface while the gesture lasts.
type dragSession struct {
	unr evreg.Unregister
}

func newDragSession(sb *ScrollBar) *dragSession {
	evs := &sb.ctx.PointerSurface().Events
	ds := &dragSession{}
	ds.unr.Add(
		evs.Add(SurfaceMouseMoveEventId, func(ev any) {
			sb.moving(ev.(*event.MouseMove).Point)
		}),
		evs.Add(SurfaceMouseUpEventId, func(ev any) {
			// other buttons (ex: wheel ticks) keep the drag
			if evt := ev.(*event.MouseUp); evt.Button == event.ButtonLeft {
				sb.endMove(evt.Point)
			}
		}),
		evs.Add(SurfaceMouseLeaveWindowEventId, func(ev any) {
			sb.endMove(ev.(*event.MouseLeaveWindow).Point)
		}),
	)
	return ds
}

func (ds *dragSession) dispose() {
	ds.unr.UnregisterAll()
}
