package widget

import (
	"image/color"

	"github.com/editsurface/scrollbar/util/imageutil"
)

type Palette map[string]color.Color

func (pal Palette) Copy() Palette {
	pal2 := Palette{}
	for k, v := range pal {
		pal2[k] = v
	}
	return pal2
}

//----------

var DefaultPalette = Palette{
	"fg": cint(0x0),
	"bg": cint(0xffffff),

	"scrollbar_bg":        imageutil.Shade(cint(0xffffff), 0.05),
	"scrollhandle_normal": imageutil.Shade(cint(0xffffff), 0.20),
	"scrollhandle_hover":  imageutil.Shade(cint(0xffffff), 0.30),
	"scrollhandle_select": imageutil.Shade(cint(0xffffff), 0.45),
}

// used if a color name is not found
var debugColor color.Color = cint(0xff0000)

//----------

// Looks for the color in the node palette, then in the parents, then in the default palette.
func (en *EmbedNode) TreeThemePaletteColor(name string) color.Color {
	for n := en; n != nil; n = n.Parent {
		if c, ok := n.Palette[name]; ok {
			return c
		}
	}
	if c, ok := DefaultPalette[name]; ok {
		return c
	}
	return debugColor
}

//----------

func cint(c int) color.RGBA {
	return imageutil.RgbaFromInt(c)
}
