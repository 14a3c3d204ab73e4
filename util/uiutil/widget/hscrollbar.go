package widget

// Horizontal scroll bar. Unlike the vertical bar, the offset has no overshoot past the content end.
type HScrollBar struct {
	*axisBar
	MinHeight int
}

func NewHScrollBar(ctx Context, parent Node, opt *ScrollBarOptions) *HScrollBar {
	h := DefaultHScrollBarHeight
	if opt != nil && opt.Thickness > 0 {
		h = opt.Thickness
	}
	ab := newAxisBar(ctx, parent, XYAxis{}, h, 0)
	return &HScrollBar{axisBar: ab}
}

//----------

func (sb *HScrollBar) SetScrollWidth(w float64) {
	sb.setExtent(w)
}
func (sb *HScrollBar) ScrollWidth() float64 {
	return sb.extent()
}

// Clamped to [0, scrollWidth-trackWidth].
func (sb *HScrollBar) SetScrollLeft(v float64) {
	sb.setOffset(v)
}
func (sb *HScrollBar) ScrollLeft() float64 {
	return sb.offset()
}

//----------

func (sb *HScrollBar) GetHeight() int {
	return sb.crossSize(sb.MinHeight)
}

func (sb *HScrollBar) SetWidth(px int) {
	sb.setLength(px)
}
