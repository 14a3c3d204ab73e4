package xdriver

import (
	"image"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/editsurface/scrollbar/util/uiutil/event"
)

func TestTranslateButtons(t *testing.T) {
	if translateButton(1) != event.ButtonLeft || translateButton(5) != event.ButtonWheelDown {
		t.Fatal("bad button")
	}
	if translateButton(9) != event.ButtonNone {
		t.Fatal("expecting none")
	}
	bs := translateButtons(xproto.KeyButMaskButton1 | xproto.KeyButMaskShift)
	if !bs.Has(event.ButtonLeft) || bs.Has(event.ButtonRight) {
		t.Fatal(bs)
	}
	m := translateModifiers(xproto.KeyButMaskShift | xproto.KeyButMaskControl)
	if m != event.ModShift|event.ModCtrl {
		t.Fatal(m)
	}
}

func TestTranslateKeysym(t *testing.T) {
	if translateKeysym(0xff56) != event.KSymPageDown {
		t.Fatal("bad page down")
	}
	if translateKeysym(0xff97) != event.KSymUp {
		t.Fatal("bad keypad up")
	}
	if translateKeysym('a') != event.KSymNone {
		t.Fatal("expecting none")
	}
}

func TestKeysymsLookup(t *testing.T) {
	kss := []xproto.Keysym{'a', 'A', 0, 0}
	if keysymsLookup(kss, 0) != 'a' || keysymsLookup(kss, xproto.KeyButMaskShift) != 'A' {
		t.Fatal("bad lookup")
	}
	kss2 := []xproto.Keysym{0xff52, 0}
	if keysymsLookup(kss2, xproto.KeyButMaskShift) != 0xff52 {
		t.Fatal("bad shifted lookup")
	}
	if keysymsLookup(nil, 0) != 0 {
		t.Fatal("expecting zero")
	}
}

func TestLeaveNotify(t *testing.T) {
	ev := &xproto.LeaveNotifyEvent{EventX: 3, EventY: 4, Mode: xproto.NotifyModeNormal}
	u := leaveNotify(ev)
	if u == nil {
		t.Fatal("expecting leave")
	}
	if l, ok := u.Event.(*event.MouseLeaveWindow); !ok || l.Point != (image.Point{3, 4}) {
		t.Fatal(u.Event)
	}

	// dragging outside the window
	ev.State = xproto.KeyButMaskButton1
	if leaveNotify(ev) != nil {
		t.Fatal("not expecting leave while a button is pressed")
	}
}

func TestPutImageChunks(t *testing.T) {
	r := image.Rect(10, 10, 110, 1010)
	u, err := putImageChunks(r, 4*1000+putImageHeaderSize)
	if err != nil {
		t.Fatal(err)
	}
	// 1000 pixels per request, 10 rows per chunk
	if len(u) != 100 {
		t.Fatal(len(u))
	}
	var area int
	for _, c := range u {
		if !c.In(r) || c.Dy() > 10 {
			t.Fatal(c)
		}
		area += c.Dx() * c.Dy()
	}
	if area != r.Dx()*r.Dy() {
		t.Fatal(area)
	}

	if _, err := putImageChunks(image.Rect(0, 0, 2000, 1), 4*1000+putImageHeaderSize); err == nil {
		t.Fatal("expecting error")
	}
}

func TestCursorGlyph(t *testing.T) {
	g, ok := cursorGlyph(event.DefaultCursor)
	if !ok || g != xcNone {
		t.Fatal(g, ok)
	}
	g2, _ := cursorGlyph(event.NSResizeCursor)
	g3, _ := cursorGlyph(event.WEResizeCursor)
	if g2 == g3 || g2 == xcNone {
		t.Fatal(g2, g3)
	}
	if _, ok := cursorGlyph(event.Cursor(99)); ok {
		t.Fatal("unexpected glyph")
	}
}
