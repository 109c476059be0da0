// Package scale maps a square logical pixel buffer onto a physical buffer of
// arbitrary size using an integer nearest-neighbor multiplier and centered
// letterbox bars.
package scale

import "image"

// Layout describes where the scaled logical buffer lands on the physical
// surface. Before/after bars are measured in physical pixels.
type Layout struct {
	Width, Height int // physical surface size
	Logical       int // logical buffer edge length
	Multiplier    int // physical pixels per logical pixel, per axis

	Left, Right int // bars on the horizontal axis
	Top, Bottom int // bars on the vertical axis
}

// Compute returns the layout for a physical surface of width × height and a
// logical buffer of logical × logical pixels.
//
// The multiplier is floor(min(width/logical, height/logical)). Leftover
// space on each axis is split into a leading bar of ceil(bar/2) and a
// trailing bar of floor(bar/2). ok is false when the surface is smaller than
// the logical buffer in either dimension.
func Compute(width, height, logical int) (l Layout, ok bool) {
	if logical <= 0 || width <= 0 || height <= 0 {
		return Layout{}, false
	}
	m := min(width/logical, height/logical)
	if m == 0 {
		return Layout{}, false
	}

	barW := width - m*logical
	barH := height - m*logical
	return Layout{
		Width:      width,
		Height:     height,
		Logical:    logical,
		Multiplier: m,
		Left:       (barW + 1) / 2,
		Right:      barW / 2,
		Top:        (barH + 1) / 2,
		Bottom:     barH / 2,
	}, true
}

// Viewport returns the physical rectangle covered by the scaled logical
// buffer. Everything outside it belongs to the letterbox bars.
func (l Layout) Viewport() image.Rectangle {
	size := l.Logical * l.Multiplier
	return image.Rect(l.Left, l.Top, l.Left+size, l.Top+size)
}

// ToLogical maps a physical point to the logical pixel displayed there.
// ok is false for points on the bars or outside the surface.
func (l Layout) ToLogical(p image.Point) (image.Point, bool) {
	if l.Multiplier == 0 || !p.In(l.Viewport()) {
		return image.Point{}, false
	}
	return image.Pt((p.X-l.Left)/l.Multiplier, (p.Y-l.Top)/l.Multiplier), true
}

// ToPhysical returns the physical block that displays logical pixel p.
func (l Layout) ToPhysical(p image.Point) image.Rectangle {
	x := l.Left + p.X*l.Multiplier
	y := l.Top + p.Y*l.Multiplier
	return image.Rect(x, y, x+l.Multiplier, y+l.Multiplier)
}
