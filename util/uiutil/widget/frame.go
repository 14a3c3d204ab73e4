package widget

// Functions to run before the next paint. Not safe for concurrent use, it belongs to the ui goroutine.
type FrameQueue struct {
	q []func()
}

func (fq *FrameQueue) RequestFrame(fn func()) {
	fq.q = append(fq.q, fn)
}

func (fq *FrameQueue) Len() int {
	return len(fq.q)
}

// Runs the functions queued so far. Functions queued while running are left for the next frame.
func (fq *FrameQueue) RunFrame() int {
	q := fq.q
	fq.q = nil
	for _, fn := range q {
		fn()
	}
	return len(q)
}
