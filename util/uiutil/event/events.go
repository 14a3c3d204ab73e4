package event

import "image"

//----------

// Events sent by the window driver.

type WindowClose struct{}
type WindowResize struct{ Rect image.Rectangle }
type WindowExpose struct{ Rect image.Rectangle }
type WindowInput struct {
	Point image.Point
	Event any
}

//----------

type Handle bool

const (
	NotHandled Handle = false
	Handled    Handle = true
)

//----------

// Sent by the pointer surface to nodes when the pointer crosses their bounds.
type MouseEnter struct{}
type MouseLeave struct{}

type MouseDown struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseUp struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}

// The pointer left the window (ex: x11 LeaveNotify).
type MouseLeaveWindow struct {
	Point image.Point
}

//----------

type KeyDown struct {
	Point  image.Point
	KeySym KeySym
	Mods   KeyModifiers
}

//----------

type Cursor int

const (
	NoneCursor Cursor = iota
	DefaultCursor
	NSResizeCursor
	WEResizeCursor
	PointerCursor
	BeamCursor
)
