package fontutil

import (
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// Monospaced face used by the text views.
func DefaultMonoFace(size float64) (*FaceCache, error) {
	return NewFace(gomono.TTF, size)
}

func NewFace(ttf []byte, size float64) (*FaceCache, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 12
	}
	opt := &truetype.Options{Size: size, Hinting: font.HintingFull}
	return NewFaceCache(truetype.NewFace(f, opt)), nil
}

//----------

// Caches glyphs and advances. Not safe for concurrent use.
type FaceCache struct {
	font.Face
	gc  map[rune]*glyphCache
	gac map[rune]glyphAdvance
}

func NewFaceCache(face font.Face) *FaceCache {
	return &FaceCache{
		Face: face,
		gc:   map[rune]*glyphCache{},
		gac:  map[rune]glyphAdvance{},
	}
}

func (fc *FaceCache) Glyph(dot fixed.Point26_6, ru rune) (
	dr image.Rectangle,
	mask image.Image,
	maskp image.Point,
	advance fixed.Int26_6,
	ok bool,
) {
	gc, ok := fc.gc[ru]
	if !ok {
		gc = newGlyphCache(fc.Face, ru)
		fc.gc[ru] = gc
	}
	p := image.Point{dot.X.Floor(), dot.Y.Floor()}
	return gc.dr.Add(p), gc.mask, gc.maskp, gc.advance, gc.ok
}

func (fc *FaceCache) GlyphAdvance(ru rune) (fixed.Int26_6, bool) {
	ga, ok := fc.gac[ru]
	if !ok {
		adv, ok2 := fc.Face.GlyphAdvance(ru)
		ga = glyphAdvance{adv, ok2}
		fc.gac[ru] = ga
	}
	return ga.advance, ga.ok
}

// Line height in pixels.
func (fc *FaceCache) LineHeight() int {
	m := fc.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

func (fc *FaceCache) Ascent() int {
	return fc.Metrics().Ascent.Ceil()
}

//----------

type glyphCache struct {
	dr      image.Rectangle
	mask    image.Image
	maskp   image.Point
	advance fixed.Int26_6
	ok      bool
}

func newGlyphCache(face font.Face, ru rune) *glyphCache {
	var zeroDot fixed.Point26_6 // always use zero
	dr, mask, maskp, adv, ok := face.Glyph(zeroDot, ru)
	// the truetype face reuses its mask buffer
	if ok {
		mask = copyMask(mask)
	}
	return &glyphCache{dr, mask, maskp, adv, ok}
}

type glyphAdvance struct {
	advance fixed.Int26_6
	ok      bool
}

func copyMask(mask image.Image) image.Image {
	alpha, ok := mask.(*image.Alpha)
	if !ok {
		return mask
	}
	u := *alpha
	u.Pix = make([]uint8, len(alpha.Pix))
	copy(u.Pix, alpha.Pix)
	return &u
}
