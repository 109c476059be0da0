package pixel

import (
	"image"

	"github.com/gogpu/pixel/internal/blend"
)

// logicalBounds is the rectangle of the logical buffer.
var logicalBounds = image.Rect(0, 0, LogicalSize, LogicalSize)

// compose clears the logical buffer to the background color and paints cmds
// in order.
func (fb *FrameBuffer) compose(atlas *Atlas, cmds []Command) {
	bg := uint32(fb.opts.background)
	for i := range fb.logical {
		fb.logical[i] = bg
	}

	for i := range cmds {
		c := &cmds[i]
		if c.Empty() {
			fb.stats.Dropped++
			Logger().Warn("pixel: dropped zero-area command", "index", i, "rect", c.Rect)
			assertf(false, "command %d has zero-area rect %v", i, c.Rect)
			continue
		}
		drawCommand(fb.logical[:], atlas, c, fb.scratch[:])
	}
}

// drawCommand blends the atlas block of c onto the logical buffer dst.
// Only the part of c.Rect inside the logical buffer is visited; each row
// span is handed to the batched blender, which stores only in-span lanes.
func drawCommand(dst []uint32, atlas *Atlas, c *Command, scratch []uint32) {
	clip := c.Rect.Intersect(logicalBounds)
	if clip.Empty() {
		return
	}

	tint := uint32(c.Tint)
	n := clip.Dx()
	sx := c.Sprite.X + clip.Min.X - c.Rect.Min.X
	sy := c.Sprite.Y + clip.Min.Y - c.Rect.Min.Y
	for y := clip.Min.Y; y < clip.Max.Y; y, sy = y+1, sy+1 {
		off := y*LogicalSize + clip.Min.X
		src := atlas.span(sy, sx, n, scratch)
		blend.OverSpan(dst[off:off+n], src, tint)
	}
}
