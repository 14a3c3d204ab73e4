package xdriver

import (
	"image/color"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/editsurface/scrollbar/util/imageutil"
	"github.com/editsurface/scrollbar/util/uiutil/event"
)

// https://tronche.com/gui/x/xlib/appendix/b/

type Cursors struct {
	conn *xgb.Conn
	win  xproto.Window
	m    map[uint16]xproto.Cursor
}

func NewCursors(conn *xgb.Conn, win xproto.Window) *Cursors {
	return &Cursors{conn: conn, win: win, m: map[uint16]xproto.Cursor{}}
}

func (cs *Cursors) SetCursor(c event.Cursor) error {
	glyph, ok := cursorGlyph(c)
	if !ok {
		glyph = xcNone
	}
	xc, ok := cs.m[glyph]
	if !ok {
		xc2, err := cs.loadCursor(glyph, color.Black, color.White)
		if err != nil {
			return err
		}
		cs.m[glyph] = xc2
		xc = xc2
	}
	mask := uint32(xproto.CwCursor)
	values := []uint32{uint32(xc)}
	_ = xproto.ChangeWindowAttributes(cs.conn, cs.win, mask, values)
	return nil
}

func (cs *Cursors) loadCursor(glyph uint16, fg, bg color.Color) (xproto.Cursor, error) {
	// zero cursor uses the parent window cursor
	if glyph == xcNone {
		return 0, nil
	}
	fontId, err := xproto.NewFontId(cs.conn)
	if err != nil {
		return 0, err
	}
	cursor, err := xproto.NewCursorId(cs.conn)
	if err != nil {
		return 0, err
	}
	name := "cursor"
	if err := xproto.OpenFontChecked(cs.conn, fontId, uint16(len(name)), name).Check(); err != nil {
		return 0, err
	}

	ur, ug, ub, _ := imageutil.ColorUint16s(fg)
	vr, vg, vb, _ := imageutil.ColorUint16s(bg)

	err = xproto.CreateGlyphCursorChecked(
		cs.conn, cursor,
		fontId, fontId,
		glyph, glyph+1,
		ur, ug, ub,
		vr, vg, vb).Check()
	if err != nil {
		return 0, err
	}
	if err := xproto.CloseFontChecked(cs.conn, fontId).Check(); err != nil {
		return 0, err
	}
	return cursor, nil
}

//----------

// Value after the last x cursor glyph (152).
const xcNone = 200

func cursorGlyph(c event.Cursor) (uint16, bool) {
	switch c {
	case event.NoneCursor, event.DefaultCursor:
		return xcNone, true
	case event.NSResizeCursor:
		return xcursor.SBVDoubleArrow, true
	case event.WEResizeCursor:
		return xcursor.SBHDoubleArrow, true
	case event.PointerCursor:
		return xcursor.Hand2, true
	case event.BeamCursor:
		return xcursor.XTerm, true
	}
	return 0, false
}
