package xdriver

import (
	"encoding/binary"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// https://tronche.com/gui/x/icccm/sec-4.html#s-4.2.8.1

// Asks the window manager to send a client message instead of killing the connection when the window is closed.
func setupWMDeleteWindow(conn *xgb.Conn, win xproto.Window) error {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(Atoms.WMDeleteWindow))
	cookie := xproto.ChangePropertyChecked(
		conn,
		xproto.PropModeAppend,
		win,
		Atoms.WMProtocols, // property
		xproto.AtomAtom,   // type
		32,                // format
		uint32(len(data))/4,
		data)
	return cookie.Check()
}

func isWMDeleteWindow(ev *xproto.ClientMessageEvent) bool {
	if ev.Type != Atoms.WMProtocols || ev.Format != 32 {
		return false
	}
	for _, e := range ev.Data.Data32 {
		if xproto.Atom(e) == Atoms.WMDeleteWindow {
			return true
		}
	}
	return false
}
