package xdriver

import (
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/editsurface/scrollbar/util/uiutil/event"
	"github.com/pkg/errors"
)

// $ man keymaps
// https://tronche.com/gui/x/xlib/input/keyboard-encoding.html

// Keyboard mapping: keycodes (physical keys) to keysyms.
type KMap struct {
	conn  *xgb.Conn
	si    *xproto.SetupInfo
	reply *xproto.GetKeyboardMappingReply
}

func NewKMap(conn *xgb.Conn) (*KMap, error) {
	km := &KMap{conn: conn}
	if err := km.ReadMapping(); err != nil {
		return nil, err
	}
	return km, nil
}

func (km *KMap) ReadMapping() error {
	si := xproto.Setup(km.conn)
	count := int(si.MaxKeycode) - int(si.MinKeycode) + 1
	if count <= 0 {
		return errors.Errorf("bad keycode count: %v", count)
	}
	reply, err := xproto.GetKeyboardMapping(km.conn, si.MinKeycode, byte(count)).Reply()
	if err != nil {
		return errors.Wrap(err, "keyboard mapping")
	}
	km.si = si
	km.reply = reply
	return nil
}

func (km *KMap) keycodeToKeysyms(kc xproto.Keycode) []xproto.Keysym {
	y := int(kc) - int(km.si.MinKeycode)
	n := int(km.si.MaxKeycode) - int(km.si.MinKeycode) + 1
	if y < 0 || y >= n {
		return nil
	}
	stride := int(km.reply.KeysymsPerKeycode)
	return km.reply.Keysyms[y*stride : (y+1)*stride]
}

// Keysym of the first group, shifted if the shift modifier is on.
func (km *KMap) Lookup(kc xproto.Keycode, state uint16) xproto.Keysym {
	return keysymsLookup(km.keycodeToKeysyms(kc), state)
}

func keysymsLookup(kss []xproto.Keysym, state uint16) xproto.Keysym {
	if len(kss) == 0 {
		return 0
	}
	if state&xproto.KeyButMaskShift != 0 && len(kss) > 1 && kss[1] != 0 {
		return kss[1]
	}
	return kss[0]
}

//----------

func (win *Window) keyPress(ev *xproto.KeyPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ks := translateKeysym(win.KMap.Lookup(ev.Detail, ev.State))
	m := translateModifiers(ev.State)
	return &event.WindowInput{Point: p, Event: &event.KeyDown{Point: p, KeySym: ks, Mods: m}}
}

func buttonPress(ev *xproto.ButtonPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ev2 := &event.MouseDown{
		Point:   p,
		Button:  translateButton(ev.Detail),
		Buttons: translateButtons(ev.State),
		Mods:    translateModifiers(ev.State),
	}
	return &event.WindowInput{Point: p, Event: ev2}
}

func buttonRelease(ev *xproto.ButtonReleaseEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ev2 := &event.MouseUp{
		Point:   p,
		Button:  translateButton(ev.Detail),
		Buttons: translateButtons(ev.State),
		Mods:    translateModifiers(ev.State),
	}
	return &event.WindowInput{Point: p, Event: ev2}
}

func motionNotify(ev *xproto.MotionNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ev2 := &event.MouseMove{
		Point:   p,
		Buttons: translateButtons(ev.State),
		Mods:    translateModifiers(ev.State),
	}
	return &event.WindowInput{Point: p, Event: ev2}
}

// While a button is pressed the window keeps receiving the pointer events (implicit grab), so only a leave without buttons ends the pointer interaction.
func leaveNotify(ev *xproto.LeaveNotifyEvent) *event.WindowInput {
	if ev.Mode != xproto.NotifyModeNormal || translateButtons(ev.State) != 0 {
		return nil
	}
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	return &event.WindowInput{Point: p, Event: &event.MouseLeaveWindow{Point: p}}
}

//----------

func translateButton(b xproto.Button) event.MouseButton {
	switch b {
	case 1:
		return event.ButtonLeft
	case 2:
		return event.ButtonMiddle
	case 3:
		return event.ButtonRight
	case 4:
		return event.ButtonWheelUp
	case 5:
		return event.ButtonWheelDown
	case 6:
		return event.ButtonWheelLeft
	case 7:
		return event.ButtonWheelRight
	}
	return event.ButtonNone
}

func translateButtons(v uint16) event.MouseButtons {
	type pair struct {
		a uint16
		b event.MouseButton
	}
	pairs := []pair{
		{xproto.KeyButMaskButton1, event.ButtonLeft},
		{xproto.KeyButMaskButton2, event.ButtonMiddle},
		{xproto.KeyButMaskButton3, event.ButtonRight},
		{xproto.KeyButMaskButton4, event.ButtonWheelUp},
		{xproto.KeyButMaskButton5, event.ButtonWheelDown},
	}
	var w event.MouseButtons
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= event.MouseButtons(p.b)
		}
	}
	return w
}

func translateModifiers(v uint16) event.KeyModifiers {
	type pair struct {
		a uint16
		b event.KeyModifiers
	}
	pairs := []pair{
		{xproto.KeyButMaskShift, event.ModShift},
		{xproto.KeyButMaskLock, event.ModLock},
		{xproto.KeyButMaskControl, event.ModCtrl},
		{xproto.KeyButMaskMod1, event.ModAlt},
	}
	var w event.KeyModifiers
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= p.b
		}
	}
	return w
}

func translateKeysym(xk xproto.Keysym) event.KeySym {
	switch xk {
	case 0xff52, 0xff97: // XK_Up, XK_KP_Up
		return event.KSymUp
	case 0xff54, 0xff99:
		return event.KSymDown
	case 0xff51, 0xff96:
		return event.KSymLeft
	case 0xff53, 0xff98:
		return event.KSymRight
	case 0xff55, 0xff9a: // XK_Prior
		return event.KSymPageUp
	case 0xff56, 0xff9b: // XK_Next
		return event.KSymPageDown
	case 0xff50, 0xff95:
		return event.KSymHome
	case 0xff57, 0xff9c:
		return event.KSymEnd
	}
	return event.KSymNone
}
