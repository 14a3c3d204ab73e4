package xdriver

import (
	"reflect"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

// Tags can be used with: `loadAtoms:"atomname"`.
// "st" should be a pointer to a struct with xproto.Atom fields.
// "onlyIfExists" asks the x server to assign a value only if the atom exists.
func LoadAtoms(conn *xgb.Conn, st any, onlyIfExists bool) error {
	// request all the atoms before waiting for the replies
	typ := reflect.Indirect(reflect.ValueOf(st)).Type()
	var cookies []xproto.InternAtomCookie
	var names []string
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		name := sf.Name
		if tag := sf.Tag.Get("loadAtoms"); tag != "" {
			name = tag
		}
		cookie := xproto.InternAtom(conn, onlyIfExists, uint16(len(name)), name)
		cookies = append(cookies, cookie)
		names = append(names, name)
	}

	val := reflect.Indirect(reflect.ValueOf(st))
	for i := 0; i < val.NumField(); i++ {
		reply, err := cookies[i].Reply()
		if err != nil {
			return errors.Wrapf(err, "atom %v", names[i])
		}
		val.Field(i).Set(reflect.ValueOf(reply.Atom))
	}
	return nil
}

//----------

var Atoms struct {
	NetWMName      xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	Utf8String     xproto.Atom `loadAtoms:"UTF8_STRING"`
	WMProtocols    xproto.Atom `loadAtoms:"WM_PROTOCOLS"`
	WMDeleteWindow xproto.Atom `loadAtoms:"WM_DELETE_WINDOW"`
}
