package uiutil

import (
	"image"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/editsurface/scrollbar/util/uiutil/event"
)

func moveEv(x int) any {
	p := image.Point{x, 0}
	return &event.WindowInput{Point: p, Event: &event.MouseMove{Point: p}}
}

func TestMoveFilterLoop(t *testing.T) {
	in := make(chan any, 8)
	out := make(chan any, 8)
	done := make(chan struct{})
	defer close(done)
	ended := make(chan struct{})
	go func() {
		defer close(ended)
		MoveFilterLoop(in, out, done, 1) // one second frames
	}()

	in <- moveEv(1) // sent right away
	in <- moveEv(2) // dropped
	in <- moveEv(3) // kept, flushed by the next event
	in <- &event.WindowExpose{}
	close(in)

	select {
	case <-ended:
	case <-time.After(3 * time.Second):
		t.Fatal("loop didn't end")
	}
	close(out)

	got := []any{}
	for ev := range out {
		got = append(got, ev)
	}
	if len(got) != 3 {
		t.Fatal(spew.Sdump(got))
	}
	x := func(ev any) int { return ev.(*event.WindowInput).Point.X }
	if x(got[0]) != 1 || x(got[1]) != 3 {
		t.Fatal(spew.Sdump(got))
	}
	if _, ok := got[2].(*event.WindowExpose); !ok {
		t.Fatal(spew.Sdump(got))
	}
}

func TestMoveFilterLoopTimer(t *testing.T) {
	in := make(chan any, 8)
	out := make(chan any, 8)
	done := make(chan struct{})
	defer close(done)
	go MoveFilterLoop(in, out, done, 50)

	in <- moveEv(1)
	in <- moveEv(2)
	for _, want := range []int{1, 2} {
		select {
		case ev := <-out:
			if x := ev.(*event.WindowInput).Point.X; x != want {
				t.Fatal(x, want)
			}
		case <-time.After(3 * time.Second):
			t.Fatal("timeout", want)
		}
	}
}

func TestMoveFilterLoopDone(t *testing.T) {
	in := make(chan any)
	out := make(chan any) // never read
	done := make(chan struct{})
	ended := make(chan struct{})
	go func() {
		defer close(ended)
		MoveFilterLoop(in, out, done, 10)
	}()
	in <- &event.WindowExpose{}
	close(done)
	select {
	case <-ended:
	case <-time.After(3 * time.Second):
		t.Fatal("loop didn't end")
	}
}
