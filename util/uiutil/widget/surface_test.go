package widget

import (
	"image"
	"testing"

	"github.com/editsurface/scrollbar/util/uiutil/event"
)

type recNode struct {
	ENode
	name   string
	handle event.Handle
	log    *[]string
}

func (rn *recNode) OnInputEvent(ev any, p image.Point) event.Handle {
	switch ev.(type) {
	case *event.MouseDown:
		*rn.log = append(*rn.log, rn.name+":down")
		return rn.handle
	case *event.MouseEnter:
		*rn.log = append(*rn.log, rn.name+":enter")
	case *event.MouseLeave:
		*rn.log = append(*rn.log, rn.name+":leave")
	case *event.KeyDown:
		*rn.log = append(*rn.log, rn.name+":key")
		return rn.handle
	}
	return event.NotHandled
}

func newRecTree() (*Surface, *recNode, *recNode, *recNode, *[]string) {
	log := &[]string{}
	root := &recNode{name: "root", log: log}
	root.SetWrapperForRoot(root)
	root.Bounds = image.Rect(0, 0, 100, 100)
	a := &recNode{name: "a", log: log}
	b := &recNode{name: "b", log: log}
	root.Append(a, b)
	a.Bounds = image.Rect(0, 0, 50, 50)
	b.Bounds = image.Rect(25, 25, 75, 75)
	return NewSurface(root), root, a, b, log
}

func TestSurfaceMouseDownBubbles(t *testing.T) {
	s, _, _, _, log := newRecTree()
	p := image.Point{30, 30}
	s.Apply(&event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	// b is over a; nobody handles, siblings under the point also get it
	want := []string{"b:enter", "a:enter", "root:enter", "b:down", "a:down", "root:down"}
	if !equalStrings(*log, want) {
		t.Fatal(*log)
	}
}

func TestSurfaceMouseDownHandled(t *testing.T) {
	s, _, _, b, log := newRecTree()
	b.handle = event.Handled
	p := image.Point{30, 30}
	s.Apply(&event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	*log = (*log)[3:] // skip enters
	if !equalStrings(*log, []string{"b:down"}) {
		t.Fatal(*log)
	}
	if !s.Pressed().Has(event.ButtonLeft) {
		t.Fatal(s.Pressed())
	}
	s.Apply(&event.MouseUp{Point: p, Button: event.ButtonLeft}, p)
	if s.Pressed() != 0 {
		t.Fatal(s.Pressed())
	}
}

func TestSurfaceEnterLeave(t *testing.T) {
	s, _, a, b, log := newRecTree()
	s.Apply(&event.MouseMove{Point: image.Point{10, 10}}, image.Point{10, 10})
	if !a.HasAnyMarks(MarkPointerInside) || b.HasAnyMarks(MarkPointerInside) {
		t.Fatal("bad pointer inside marks")
	}
	*log = nil
	s.Apply(&event.MouseMove{Point: image.Point{60, 60}}, image.Point{60, 60})
	if !equalStrings(*log, []string{"a:leave", "b:enter"}) {
		t.Fatal(*log)
	}
	*log = nil
	s.Apply(&event.MouseLeaveWindow{}, image.Point{})
	if !equalStrings(*log, []string{"b:leave", "root:leave"}) {
		t.Fatal(*log)
	}
}

func TestSurfaceSkipsHidden(t *testing.T) {
	s, _, _, b, log := newRecTree()
	b.AddMarks(MarkNotPaintable)
	p := image.Point{30, 30}
	s.Apply(&event.KeyDown{Point: p, KeySym: event.KSymDown}, p)
	if !equalStrings(*log, []string{"a:key", "root:key"}) {
		t.Fatal(*log)
	}
}

func TestSurfaceCapture(t *testing.T) {
	s, _, _, _, _ := newRecTree()
	n := 0
	rg := s.Events.Add(SurfaceMouseMoveEventId, func(ev any) { n++ })
	p := image.Point{200, 200} // outside the root
	s.Apply(&event.MouseMove{Point: p}, p)
	rg.Unregister()
	s.Apply(&event.MouseMove{Point: p}, p)
	if n != 1 {
		t.Fatal(n)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
