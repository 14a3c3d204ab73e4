package evreg

import "testing"

func TestRegister1(t *testing.T) {
	reg := &Register{}
	n := 0
	r1 := reg.Add(1, func(ev any) { n += ev.(int) })
	reg.Add(1, func(ev any) { n += ev.(int) * 10 })
	reg.Add(2, func(ev any) { n = -1 })

	if c := reg.RunCallbacks(1, 2); c != 2 {
		t.Fatal(c)
	}
	if n != 22 {
		t.Fatal(n)
	}

	r1.Unregister()
	if reg.NCallbacks(1) != 1 {
		t.Fatal(reg.NCallbacks(1))
	}
	reg.RunCallbacks(1, 1)
	if n != 32 {
		t.Fatal(n)
	}
}

func TestRegisterUnregisterWhileRunning(t *testing.T) {
	reg := &Register{}
	unr := &Unregister{}
	runs := 0
	for i := 0; i < 3; i++ {
		unr.Add(reg.Add(5, func(ev any) {
			runs++
			unr.UnregisterAll()
		}))
	}
	if c := reg.RunCallbacks(5, nil); c != 1 {
		t.Fatal(c)
	}
	if runs != 1 {
		t.Fatal(runs)
	}
	if reg.NCallbacks(5) != 0 {
		t.Fatal(reg.NCallbacks(5))
	}
	if unr.Len() != 0 {
		t.Fatal(unr.Len())
	}
	if c := reg.RunCallbacks(5, nil); c != 0 {
		t.Fatal(c)
	}
}

func TestRegisterZero(t *testing.T) {
	var reg Register
	if c := reg.RunCallbacks(1, nil); c != 0 {
		t.Fatal(c)
	}
	reg.RemoveCallback(1, &Callback{})
}
