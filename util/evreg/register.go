package evreg

import "container/list"

// The zero register is empty and ready for use.
type Register struct {
	m map[int]*list.List
}

//----------

// Remove is done via *Regist.Unregister().
func (reg *Register) Add(evId int, fn func(any)) *Regist {
	return reg.AddCallback(evId, &Callback{F: fn})
}

func (reg *Register) AddCallback(evId int, cb *Callback) *Regist {
	if reg.m == nil {
		reg.m = map[int]*list.List{}
	}
	l, ok := reg.m[evId]
	if !ok {
		l = list.New()
		reg.m[evId] = l
	}
	l.PushBack(cb)
	return &Regist{evReg: reg, id: evId, cb: cb}
}

func (reg *Register) RemoveCallback(evId int, cb *Callback) {
	l, ok := reg.m[evId]
	if !ok {
		return
	}
	for e := l.Front(); e != nil; {
		next := e.Next()
		if e.Value.(*Callback) == cb {
			l.Remove(e)
		}
		e = next
	}
	if l.Len() == 0 {
		delete(reg.m, evId)
	}
}

//----------

// Returns number of callbacks done. Callbacks can unregister themselves (or others) while running.
func (reg *Register) RunCallbacks(evId int, ev any) int {
	l, ok := reg.m[evId]
	if !ok {
		return 0
	}

	// snapshot: the list can change while running the callbacks
	cbs := make([]*Callback, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		cbs = append(cbs, e.Value.(*Callback))
	}

	c := 0
	for _, cb := range cbs {
		if cb.removed {
			continue
		}
		cb.F(ev)
		c++
	}
	return c
}

// Number of registered callbacks for an event id.
func (reg *Register) NCallbacks(evId int) int {
	l, ok := reg.m[evId]
	if !ok {
		return 0
	}
	return l.Len()
}

//----------

type Callback struct {
	F func(ev any)

	removed bool
}

//----------

type Regist struct {
	evReg *Register
	id    int
	cb    *Callback
}

func (reg *Regist) Unregister() {
	reg.cb.removed = true
	reg.evReg.RemoveCallback(reg.id, reg.cb)
}

//----------

// Utility to unregister a group of regists at once.
type Unregister struct {
	v []*Regist
}

func (unr *Unregister) Add(u ...*Regist) {
	unr.v = append(unr.v, u...)
}

func (unr *Unregister) Len() int {
	return len(unr.v)
}

func (unr *Unregister) UnregisterAll() {
	for _, e := range unr.v {
		e.Unregister()
	}
	unr.v = nil
}
