package event

type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
	ButtonWheelLeft
	ButtonWheelRight
)

type MouseButtons int32

func (mb MouseButtons) Has(b MouseButton) bool {
	return int32(mb)&int32(b) > 0
}
func (mb MouseButtons) HasAny(bs MouseButtons) bool {
	return int32(mb)&int32(bs) > 0
}

//----------

type KeyModifiers uint16

const (
	ModShift KeyModifiers = 1 << iota
	ModLock
	ModCtrl
	ModAlt
)

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}

//----------

// Only the keys the scroll views care about.
type KeySym int

const (
	KSymNone KeySym = iota
	KSymUp
	KSymDown
	KSymLeft
	KSymRight
	KSymPageUp
	KSymPageDown
	KSymHome
	KSymEnd
)
