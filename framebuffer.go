package pixel

import (
	"fmt"
	"image"

	"github.com/gogpu/pixel/internal/scale"
)

// LogicalSize is the edge length of the logical (game-world) pixel grid.
// It is fixed for the lifetime of the process.
const LogicalSize = 128

// Default colors.
const (
	// DefaultBackground is the color the logical buffer is cleared to.
	DefaultBackground = Black

	// DefaultLetterbox is the color of freshly allocated physical buffers.
	DefaultLetterbox = Black
)

// Stats counts what Render did over the lifetime of a FrameBuffer.
type Stats struct {
	Rendered   uint64 // frames composited and blitted
	Skipped    uint64 // frames identical to the previous one
	Degenerate uint64 // frames skipped because the surface was too small
	Dropped    uint64 // zero-area commands discarded
	Reallocs   uint64 // physical buffer reallocations
}

// FrameBuffer is the render target of the pipeline. It owns the physical
// output buffer, the fixed logical buffer and the change detector state.
//
// A FrameBuffer is not safe for concurrent use; it belongs to the caller's
// frame loop.
type FrameBuffer struct {
	width  int
	height int
	pixels []uint32 // physical, width*height once Render has run

	// Dimensions pixels was allocated for. Bars are only written on
	// allocation, so any change of shape needs a new buffer.
	allocW, allocH int

	logical [LogicalSize * LogicalSize]uint32
	scratch [LogicalSize]uint32

	detector ChangeDetector
	opts     options
	stats    Stats
}

// NewFrameBuffer creates a frame buffer for a physical surface of
// width × height pixels. Sizes smaller than LogicalSize are accepted; Render
// reports "no redraw" for them until the surface grows.
func NewFrameBuffer(width, height int, opts ...Option) (*FrameBuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("frame buffer %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.detector == nil {
		o.detector = NewFrameHashDetector()
	}

	fb := &FrameBuffer{
		width:    width,
		height:   height,
		detector: o.detector,
		opts:     o,
	}
	fb.reallocate()
	return fb, nil
}

// Resize records new physical dimensions. The output buffer is reallocated
// by the next Render, which then always redraws.
func (fb *FrameBuffer) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("resize to %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	fb.width = width
	fb.height = height
	return nil
}

// Width returns the physical width.
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the physical height.
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// Pixels returns the physical ARGB buffer, row-major, Width() pixels per row.
// After Resize its contents are undefined until the next Render.
func (fb *FrameBuffer) Pixels() []uint32 {
	return fb.pixels
}

// Logical returns the logical buffer of the last redraw, row-major,
// LogicalSize pixels per row.
func (fb *FrameBuffer) Logical() []uint32 {
	return fb.logical[:]
}

// Stats returns the render counters.
func (fb *FrameBuffer) Stats() Stats {
	return fb.stats
}

// Layout returns the scaling layout for the current physical size.
// ok is false when the surface is smaller than the logical resolution.
func (fb *FrameBuffer) Layout() (scale.Layout, bool) {
	return scale.Compute(fb.width, fb.height, LogicalSize)
}

// Viewport returns the physical rectangle showing the logical buffer.
// It is empty when the surface is too small.
func (fb *FrameBuffer) Viewport() image.Rectangle {
	l, ok := fb.Layout()
	if !ok {
		return image.Rectangle{}
	}
	return l.Viewport()
}

// ToLogical maps a physical point (for example a mouse position) to the
// logical pixel displayed there. ok is false on the letterbox bars.
func (fb *FrameBuffer) ToLogical(p image.Point) (image.Point, bool) {
	l, ok := fb.Layout()
	if !ok {
		return image.Point{}, false
	}
	return l.ToLogical(p)
}

// Render turns cmds into a finished physical buffer.
//
// It returns true when the physical buffer was redrawn and false when it was
// left as is: either the frame is identical to the previous one (same
// commands, same dimensions) or the surface is smaller than the logical
// resolution. atlas may be shared between frame buffers; it is only read.
//
// Commands are painted in order onto a logical buffer cleared to the
// background color, then scaled onto the physical buffer. Zero-area commands
// are dropped.
func (fb *FrameBuffer) Render(atlas *Atlas, cmds []Command) bool {
	defer fb.detector.Swap()

	realloc := fb.ensureSize()
	changed := fb.detector.Changed(cmds, fb.width, fb.height)
	if !changed && !realloc {
		fb.stats.Skipped++
		Logger().Debug("pixel: frame unchanged", "commands", len(cmds))
		return false
	}

	l, ok := fb.Layout()
	if !ok {
		fb.stats.Degenerate++
		Logger().Warn("pixel: surface smaller than logical resolution",
			"width", fb.width, "height", fb.height, "logical", LogicalSize)
		assertf(false, "surface %dx%d smaller than %dx%d", fb.width, fb.height, LogicalSize, LogicalSize)
		return false
	}

	fb.compose(atlas, cmds)
	fb.blit(l)
	fb.stats.Rendered++
	Logger().Debug("pixel: frame rendered",
		"commands", len(cmds), "multiplier", l.Multiplier, "realloc", realloc)
	return true
}

// ensureSize reallocates the physical buffer when the declared dimensions
// differ from the allocated ones, even if the pixel count is the same.
// It reports whether it did.
func (fb *FrameBuffer) ensureSize() bool {
	if fb.allocW == fb.width && fb.allocH == fb.height {
		return false
	}
	fb.reallocate()
	fb.stats.Reallocs++
	Logger().Debug("pixel: physical buffer reallocated", "width", fb.width, "height", fb.height)
	return true
}

// reallocate creates a physical buffer filled with the letterbox color.
// This is the only place the bars are ever written.
func (fb *FrameBuffer) reallocate() {
	fb.pixels = make([]uint32, fb.width*fb.height)
	fb.allocW, fb.allocH = fb.width, fb.height
	lb := uint32(fb.opts.letterbox)
	if lb == 0 {
		return
	}
	for i := range fb.pixels {
		fb.pixels[i] = lb
	}
}
