package widget

import (
	"image"

	"github.com/editsurface/scrollbar/util/evreg"
	"github.com/editsurface/scrollbar/util/uiutil/event"
)

// Pointer events that can be listened to on the whole surface, regardless of the node under the pointer.
const (
	SurfaceMouseMoveEventId = iota
	SurfaceMouseUpEventId
	SurfaceMouseLeaveWindowEventId
)

// Routes the window pointer events. Mouse downs (and keys) go to the nodes under the pointer, deepest first, bubbling up to the parents until handled. Moves, ups and window leaves go to the listeners registered in Events.
type Surface struct {
	Root   Node
	Events evreg.Register

	pressed event.MouseButtons
}

func NewSurface(root Node) *Surface {
	return &Surface{Root: root}
}

//----------

func (s *Surface) Apply(ev any, p image.Point) {
	switch evt := ev.(type) {
	case *event.MouseDown:
		s.pressed |= event.MouseButtons(evt.Button)
		s.mouseEnterLeave(s.Root, p)
		s.depthFirstEv(s.Root, evt, p)
	case *event.MouseMove:
		s.mouseEnterLeave(s.Root, p)
		s.Events.RunCallbacks(SurfaceMouseMoveEventId, evt)
	case *event.MouseUp:
		s.pressed &^= event.MouseButtons(evt.Button)
		s.Events.RunCallbacks(SurfaceMouseUpEventId, evt)
		s.mouseEnterLeave(s.Root, p)
	case *event.MouseLeaveWindow:
		s.pressed = 0
		s.Events.RunCallbacks(SurfaceMouseLeaveWindowEventId, evt)
		// nothing is under the pointer
		s.mouseLeave(s.Root, image.Point{-1 << 30, -1 << 30})
	case *event.KeyDown:
		s.depthFirstEv(s.Root, evt, p)
	}
}

// Buttons currently pressed, as seen by this surface.
func (s *Surface) Pressed() event.MouseButtons {
	return s.pressed
}

//----------

func (s *Surface) depthFirstEv(node Node, ev any, p image.Point) event.Handle {
	ne := node.Embed()
	if !s.hits(ne, p) {
		return event.NotHandled
	}

	// later childs are drawn over previous ones, run loop backwards
	h := event.NotHandled
	ne.IterateWrappersReverse(func(c Node) bool {
		h = s.depthFirstEv(c, ev, p)
		return h == event.NotHandled
	})

	if !h {
		h = node.OnInputEvent(ev, p)
	}
	return h
}

func (s *Surface) hits(ne *EmbedNode, p image.Point) bool {
	if ne.HasAnyMarks(MarkForceZeroBounds | MarkNotPaintable) {
		return false
	}
	return p.In(ne.Bounds)
}

//----------

func (s *Surface) mouseEnterLeave(node Node, p image.Point) {
	s.mouseLeave(node, p) // run leave first
	s.mouseEnter(node, p)
}

func (s *Surface) mouseEnter(node Node, p image.Point) {
	ne := node.Embed()
	if !s.hits(ne, p) {
		return
	}
	ne.IterateWrappersReverse(func(c Node) bool {
		s.mouseEnter(c, p)
		return true
	})
	if !ne.HasAnyMarks(MarkPointerInside) {
		ne.AddMarks(MarkPointerInside)
		node.OnInputEvent(&event.MouseEnter{}, p)
	}
}

func (s *Surface) mouseLeave(node Node, p image.Point) {
	ne := node.Embed()
	ne.IterateWrappersReverse(func(c Node) bool {
		s.mouseLeave(c, p)
		return true
	})
	if ne.HasAnyMarks(MarkPointerInside) && !s.hits(ne, p) {
		ne.RemoveMarks(MarkPointerInside)
		node.OnInputEvent(&event.MouseLeave{}, p)
	}
}
