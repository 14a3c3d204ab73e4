package ui

import (
	"image"
	"strings"

	"github.com/editsurface/scrollbar/util/fontutil"
	"github.com/editsurface/scrollbar/util/imageutil"
	"github.com/editsurface/scrollbar/util/uiutil/widget"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

const tabWidth = 8

// Read-only lines of text, drawn in a monospaced face at a pixel offset.
type TextView struct {
	widget.ENode
	ctx  widget.ImageContext
	face *fontutil.FaceCache

	lines  []string // tabs expanded
	cols   int      // widest line
	offset image.Point
}

func NewTextView(ctx widget.ImageContext, face *fontutil.FaceCache) *TextView {
	return &TextView{ctx: ctx, face: face}
}

//----------

func (tv *TextView) SetText(s string) {
	s = strings.TrimSuffix(s, "\n")
	tv.lines = strings.Split(s, "\n")
	tv.cols = 0
	for i, l := range tv.lines {
		l = strings.TrimSuffix(l, "\r")
		l = expandTabs(l, tabWidth)
		tv.lines[i] = l
		if w := runewidth.StringWidth(l); w > tv.cols {
			tv.cols = w
		}
	}
	tv.MarkNeedsPaint()
}

func (tv *TextView) NLines() int {
	return len(tv.lines)
}

func (tv *TextView) LineHeight() int {
	return tv.face.LineHeight()
}

// Column width in pixels.
func (tv *TextView) Advance() int {
	adv, _ := tv.face.GlyphAdvance('M')
	return adv.Round()
}

// Size of the whole text in pixels.
func (tv *TextView) ContentSize() image.Point {
	return image.Point{tv.cols * tv.Advance(), len(tv.lines) * tv.LineHeight()}
}

func (tv *TextView) Measure(hint image.Point) image.Point {
	return tv.ContentSize()
}

//----------

func (tv *TextView) Offset() image.Point {
	return tv.offset
}

func (tv *TextView) SetOffset(p image.Point) {
	if p == tv.offset {
		return
	}
	tv.offset = p
	tv.MarkNeedsPaint()
}

func (tv *TextView) SetOffsetY(y int) {
	tv.SetOffset(image.Point{tv.offset.X, y})
}
func (tv *TextView) SetOffsetX(x int) {
	tv.SetOffset(image.Point{x, tv.offset.Y})
}

//----------

func (tv *TextView) Paint() {
	img := tv.ctx.Image()
	bg := tv.TreeThemePaletteColor("bg")
	imageutil.FillRectangle(img, tv.Bounds, bg)

	lh := tv.LineHeight()
	if lh <= 0 || len(tv.lines) == 0 {
		return
	}
	fg := tv.TreeThemePaletteColor("fg")
	adv := tv.Advance()
	ascent := tv.face.Ascent()
	clip := subImage(img, tv.Bounds)

	// only the visible lines
	first := tv.offset.Y / lh
	if first < 0 {
		first = 0
	}
	for i := first; i < len(tv.lines); i++ {
		y := tv.Bounds.Min.Y + i*lh - tv.offset.Y
		if y >= tv.Bounds.Max.Y {
			break
		}
		col := 0
		for _, ru := range tv.lines[i] {
			x := tv.Bounds.Min.X + col*adv - tv.offset.X
			col += runewidth.RuneWidth(ru)
			if x >= tv.Bounds.Max.X {
				break
			}
			if ru == ' ' || x+2*adv < tv.Bounds.Min.X {
				continue
			}
			dot := fixed.P(x, y+ascent)
			dr, mask, maskp, _, ok := tv.face.Glyph(dot, ru)
			if !ok {
				continue
			}
			imageutil.DrawUniformMask(clip, dr, fg, mask, maskp, draw.Over)
		}
	}
}

//----------

func expandTabs(s string, tw int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	sb := strings.Builder{}
	col := 0
	for _, ru := range s {
		if ru == '\t' {
			n := tw - col%tw
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(ru)
		col += runewidth.RuneWidth(ru)
	}
	return sb.String()
}

// Restricts drawing to r when the image supports it.
func subImage(img draw.Image, r image.Rectangle) draw.Image {
	switch t := img.(type) {
	case *imageutil.BGRA:
		return t.SubImage(r)
	case *image.RGBA:
		return t.SubImage(r).(*image.RGBA)
	}
	return img
}
