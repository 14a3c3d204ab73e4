package fontutil

import (
	"image"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestFaceCache(t *testing.T) {
	fc, err := DefaultMonoFace(12)
	if err != nil {
		t.Fatal(err)
	}
	if fc.LineHeight() <= 0 || fc.Ascent() <= 0 || fc.Ascent() > fc.LineHeight() {
		t.Fatal(fc.LineHeight(), fc.Ascent())
	}

	a1, ok := fc.GlyphAdvance('M')
	if !ok || a1 <= 0 {
		t.Fatal(a1, ok)
	}
	// monospaced
	a2, _ := fc.GlyphAdvance('i')
	if a1 != a2 {
		t.Fatal(a1, a2)
	}

	dot := fixed.P(10, 20)
	dr, mask, _, _, ok := fc.Glyph(dot, 'W')
	if !ok || mask == nil {
		t.Fatal("no glyph")
	}
	// cached glyph moves with the dot
	dr2, mask2, _, _, _ := fc.Glyph(fixed.P(15, 20), 'W')
	if dr2 != dr.Add(image.Point{5, 0}) || mask2 != mask {
		t.Fatal(dr, dr2)
	}
}

func TestFaceDefaultSize(t *testing.T) {
	fc, err := DefaultMonoFace(0)
	if err != nil {
		t.Fatal(err)
	}
	fc2, _ := DefaultMonoFace(12)
	if fc.LineHeight() != fc2.LineHeight() {
		t.Fatal(fc.LineHeight(), fc2.LineHeight())
	}
}
