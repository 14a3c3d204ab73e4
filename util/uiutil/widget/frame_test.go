package widget

import (
	"image"
	"testing"
)

func TestFrameQueue(t *testing.T) {
	fq := FrameQueue{}
	s := ""
	fq.RequestFrame(func() {
		s += "a"
		// left for the next frame
		fq.RequestFrame(func() { s += "c" })
	})
	fq.RequestFrame(func() { s += "b" })
	if n := fq.RunFrame(); n != 2 || s != "ab" {
		t.Fatal(n, s)
	}
	if fq.Len() != 1 {
		t.Fatal(fq.Len())
	}
	if n := fq.RunFrame(); n != 1 || s != "abc" {
		t.Fatal(n, s)
	}
	if n := fq.RunFrame(); n != 0 {
		t.Fatal(n)
	}
}

func TestXYAxis(t *testing.T) {
	xy := XYAxis{YAxis: true}
	r := xy.Rectangle(xy.Rectangle(xyTestRect))
	if r != xyTestRect {
		t.Fatal(r)
	}
	sz := xyTestRect.Size()
	if xy.Along(sz) != sz.Y || xy.Cross(sz) != sz.X {
		t.Fatal(sz)
	}
	*xy.AlongPtr(&sz) = 1
	*xy.CrossPtr(&sz) = 2
	if sz.Y != 1 || sz.X != 2 {
		t.Fatal(sz)
	}
}

var xyTestRect = image.Rect(1, 2, 30, 40)
