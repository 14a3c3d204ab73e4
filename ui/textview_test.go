package ui

import (
	"image"
	"image/color"
	"testing"

	"github.com/editsurface/scrollbar/util/fontutil"
	"github.com/editsurface/scrollbar/util/imageutil"
	"github.com/editsurface/scrollbar/util/uiutil/widget"
	"golang.org/x/image/draw"
)

type imgCtx struct {
	img *image.RGBA
}

func (c *imgCtx) Image() draw.Image { return c.img }

func newTestTextView(t *testing.T, r image.Rectangle) (*TextView, *imgCtx) {
	t.Helper()
	face, err := fontutil.DefaultMonoFace(12)
	if err != nil {
		t.Fatal(err)
	}
	ctx := &imgCtx{img: image.NewRGBA(r)}
	tv := NewTextView(ctx, face)
	tv.SetWrapperForRoot(tv)
	tv.Bounds = r
	return tv, ctx
}

func TestExpandTabs(t *testing.T) {
	if s := expandTabs("a\tb", 8); s != "a       b" {
		t.Fatalf("%q", s)
	}
	if s := expandTabs("\t", 4); s != "    " {
		t.Fatalf("%q", s)
	}
	// wide runes take two columns
	if s := expandTabs("世\tx", 4); s != "世  x" {
		t.Fatalf("%q", s)
	}
}

func TestTextViewContentSize(t *testing.T) {
	tv, _ := newTestTextView(t, image.Rect(0, 0, 100, 100))
	tv.SetText("ab\n\tc\n世界\n")
	if tv.NLines() != 3 {
		t.Fatal(tv.NLines())
	}
	want := image.Point{9 * tv.Advance(), 3 * tv.LineHeight()}
	if cs := tv.ContentSize(); cs != want {
		t.Fatal(cs, want)
	}
	if tv.Measure(image.Point{}) != want {
		t.Fatal(tv.Measure(image.Point{}))
	}

	tv.SetText("")
	if tv.NLines() != 1 || tv.ContentSize().X != 0 {
		t.Fatal(tv.NLines(), tv.ContentSize())
	}
}

func TestTextViewPaint(t *testing.T) {
	r := image.Rect(0, 0, 100, 60)
	tv, ctx := newTestTextView(t, r)
	tv.SetText("MMMM\nMMMM")

	tv.PaintTree()
	bg := imageutil.RgbaColor(widget.DefaultPalette["bg"])
	if !hasNonBg(ctx.img, image.Rect(0, 0, 40, tv.LineHeight()), bg) {
		t.Fatal("first line not painted")
	}

	// scrolled past the text
	tv.SetOffsetY(10 * tv.LineHeight())
	tv.PaintTree()
	if hasNonBg(ctx.img, r, bg) {
		t.Fatal("expecting empty view")
	}

	// scrolled horizontally, glyphs don't leak outside the bounds
	tv.SetOffset(image.Point{2 * tv.Advance(), 0})
	tv.PaintTree()
	if !hasNonBg(ctx.img, image.Rect(0, 0, 2*tv.Advance(), tv.LineHeight()), bg) {
		t.Fatal("scrolled line not painted")
	}
}

func TestTextViewOffsetMarks(t *testing.T) {
	tv, _ := newTestTextView(t, image.Rect(0, 0, 10, 10))
	tv.PaintTree()
	tv.SetOffset(image.Point{})
	if tv.TreeNeedsPaint() {
		t.Fatal("same offset marked paint")
	}
	tv.SetOffsetX(3)
	if !tv.TreeNeedsPaint() || tv.Offset() != (image.Point{3, 0}) {
		t.Fatal(tv.Offset())
	}
}

func hasNonBg(img *image.RGBA, r image.Rectangle, bg color.RGBA) bool {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				return true
			}
		}
	}
	return false
}
