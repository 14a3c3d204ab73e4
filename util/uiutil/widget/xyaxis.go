package widget

import "image"

// Allows calculations to be done X oriented, and have it translated to Y axis. Used by the scroll bars to share one implementation for both directions.
type XYAxis struct {
	YAxis bool
}

func (xy XYAxis) Point(p image.Point) image.Point {
	if xy.YAxis {
		return image.Point{p.Y, p.X}
	}
	return p
}

// The transform is its own inverse.
func (xy XYAxis) Rectangle(r image.Rectangle) image.Rectangle {
	if xy.YAxis {
		return image.Rect(r.Min.Y, r.Min.X, r.Max.Y, r.Max.X)
	}
	return r
}

//----------

// Component along the axis.
func (xy XYAxis) Along(p image.Point) int {
	return xy.Point(p).X
}
func (xy XYAxis) AlongPtr(p *image.Point) *int {
	if xy.YAxis {
		return &p.Y
	}
	return &p.X
}

// Component across the axis.
func (xy XYAxis) Cross(p image.Point) int {
	return xy.Point(p).Y
}
func (xy XYAxis) CrossPtr(p *image.Point) *int {
	if xy.YAxis {
		return &p.X
	}
	return &p.Y
}
