package uiutil

import (
	"time"

	"github.com/editsurface/scrollbar/util/uiutil/event"
)

// Forwards events from in to out, keeping only the latest pointer move for each frame duration. Any other event first flushes the kept move so the order is preserved. Returns when in is closed, after flushing, or when done is closed.
func MoveFilterLoop(in <-chan any, out chan<- any, done <-chan struct{}, fps int) {
	frameDur := time.Second / time.Duration(fps)

	var kept any
	var timer *time.Timer
	var timeToSend <-chan time.Time
	var lastSent time.Time

	send := func(ev any) bool {
		select {
		case out <- ev:
			return true
		case <-done:
			return false
		}
	}
	sendKept := func() bool {
		if timer == nil {
			return true
		}
		timer.Stop()
		timer, timeToSend = nil, nil
		lastSent = time.Now()
		ev := kept
		kept = nil
		return send(ev)
	}

	for {
		select {
		case <-done:
			return
		case <-timeToSend:
			timer, timeToSend = nil, nil
			lastSent = time.Now()
			ev := kept
			kept = nil
			if !send(ev) {
				return
			}
		case ev, ok := <-in:
			if !ok {
				sendKept()
				return
			}
			if !isMouseMove(ev) {
				if !sendKept() || !send(ev) {
					return
				}
				continue
			}
			if timer != nil {
				kept = ev
				continue
			}
			now := time.Now()
			if d := now.Sub(lastSent); d < frameDur {
				kept = ev
				timer = time.NewTimer(frameDur - d)
				timeToSend = timer.C
				continue
			}
			lastSent = now
			if !send(ev) {
				return
			}
		}
	}
}

func isMouseMove(ev any) bool {
	if wi, ok := ev.(*event.WindowInput); ok {
		_, ok := wi.Event.(*event.MouseMove)
		return ok
	}
	return false
}
