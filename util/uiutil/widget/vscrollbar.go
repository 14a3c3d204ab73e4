package widget

// Vertical scroll bar. Listen to user scrolling with Events.Add(ScrollBarScrollEventId, ...).
type VScrollBar struct {
	*axisBar
	MinWidth int // GetWidth() is never smaller than this
}

func NewVScrollBar(ctx Context, parent Node, opt *ScrollBarOptions) *VScrollBar {
	w := DefaultVScrollBarWidth
	if opt != nil && opt.Thickness > 0 {
		w = opt.Thickness
	}
	ab := newAxisBar(ctx, parent, XYAxis{YAxis: true}, w, vScrollOvershoot)
	return &VScrollBar{axisBar: ab}
}

//----------

func (sb *VScrollBar) SetScrollHeight(h float64) {
	sb.setExtent(h)
}
func (sb *VScrollBar) ScrollHeight() float64 {
	return sb.extent()
}

// Clamped to [0, scrollHeight-trackHeight+overshoot].
func (sb *VScrollBar) SetScrollTop(v float64) {
	sb.setOffset(v)
}
func (sb *VScrollBar) ScrollTop() float64 {
	return sb.offset()
}

//----------

func (sb *VScrollBar) GetWidth() int {
	return sb.crossSize(sb.MinWidth)
}

func (sb *VScrollBar) SetHeight(px int) {
	sb.setLength(px)
}
