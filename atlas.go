package pixel

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Atlas is the shared, read-only sprite and glyph image every command samples
// from. Pixels are straight-alpha ARGB.
//
// An Atlas is never modified after construction and is safe for concurrent
// read access.
type Atlas struct {
	width  int
	height int
	pix    []uint32
}

// NewAtlas creates an atlas of width × height pixels from row-major ARGB data.
// The data is copied.
func NewAtlas(width, height int, pix []uint32) (*Atlas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("atlas %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if len(pix) < width*height {
		return nil, fmt.Errorf("atlas %dx%d with %d pixels: %w", width, height, len(pix), ErrDataTooSmall)
	}
	a := &Atlas{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
	copy(a.pix, pix)
	return a, nil
}

// AtlasFromImage converts img to an atlas. The image origin becomes atlas
// coordinate (0, 0).
func AtlasFromImage(img image.Image) (*Atlas, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("atlas from image %v: %w", b, ErrInvalidDimensions)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	w, h := b.Dx(), b.Dy()
	a := &Atlas{width: w, height: h, pix: make([]uint32, w*h)}
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			a.pix[y*w+x] = uint32(ARGB(p[3], p[0], p[1], p[2]))
		}
	}
	return a, nil
}

// Width returns the atlas width in pixels.
func (a *Atlas) Width() int {
	if a == nil {
		return 0
	}
	return a.width
}

// Height returns the atlas height in pixels.
func (a *Atlas) Height() int {
	if a == nil {
		return 0
	}
	return a.height
}

// Bounds returns the atlas rectangle.
func (a *Atlas) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.Width(), a.Height())
}

// At returns the pixel at (x, y). Coordinates outside the atlas, and any
// coordinate of a nil atlas, read as fully transparent.
func (a *Atlas) At(x, y int) Color {
	if a == nil || x < 0 || y < 0 || x >= a.width || y >= a.height {
		return 0
	}
	return Color(a.pix[y*a.width+x])
}

// span returns n atlas pixels of row y starting at column x. When the span is
// fully inside the atlas the atlas storage is returned directly; otherwise the
// pixels are assembled in scratch with transparent padding where the span
// leaves the atlas.
func (a *Atlas) span(y, x, n int, scratch []uint32) []uint32 {
	if a != nil && y >= 0 && y < a.height && x >= 0 && x+n <= a.width {
		base := y*a.width + x
		return a.pix[base : base+n]
	}

	buf := scratch[:n]
	clear(buf)
	if a == nil || y < 0 || y >= a.height {
		return buf
	}
	lo, hi := max(x, 0), min(x+n, a.width)
	if lo < hi {
		base := y * a.width
		copy(buf[lo-x:], a.pix[base+lo:base+hi])
	}
	return buf
}
