package pixel

import (
	"image"

	"github.com/gogpu/pixel/internal/dirty"
)

// DefaultCellSize is the cell edge length used by NewGridDetector when the
// requested size is out of range.
const DefaultCellSize = 16

// GridDetector is a ChangeDetector that hashes the logical buffer per cell
// instead of per frame. Each cell hash covers, in submission order, the
// commands whose clipped rectangle touches the cell, so a command moving
// across one corner of the screen leaves the other cells clean and commands
// entirely outside the logical buffer never force a redraw.
//
// After Changed, DirtyRects lists the logical cells that differ from the
// previous frame, which a presenter can use to upload only part of a
// texture. Like the whole-frame hash it keeps two slots and rotates them on
// Swap.
type GridDetector struct {
	cells *dirty.Cells
	slots [2][]uint32
	dims  [2]image.Point
	flip  bool

	primed bool
}

// NewGridDetector returns a grid detector with square cells of size logical
// pixels. Sizes outside 1..LogicalSize fall back to DefaultCellSize.
func NewGridDetector(size int) *GridDetector {
	if size <= 0 || size > LogicalSize {
		size = DefaultCellSize
	}
	cells := dirty.New(LogicalSize, LogicalSize, size)
	return &GridDetector{
		cells: cells,
		slots: [2][]uint32{make([]uint32, cells.Len()), make([]uint32, cells.Len())},
	}
}

func (g *GridDetector) cur() int {
	if g.flip {
		return 1
	}
	return 0
}

// Changed hashes every cell of this frame and marks the cells that differ
// from the previous frame. A change of physical dimensions, and the first
// frame, mark every cell.
func (g *GridDetector) Changed(cmds []Command, width, height int) bool {
	ci := g.cur()
	cur, prev := g.slots[ci], g.slots[1-ci]
	for i := range cur {
		cur[i] = fnvOffset32
	}
	g.dims[ci] = image.Pt(width, height)

	for i := range cmds {
		c := &cmds[i]
		span := g.cells.Span(c.Rect.Intersect(logicalBounds))
		for cy := span.Min.Y; cy < span.Max.Y; cy++ {
			row := cy * g.cells.Cols()
			for cx := span.Min.X; cx < span.Max.X; cx++ {
				cur[row+cx] = hashCommand(cur[row+cx], c)
			}
		}
	}

	g.cells.Clear()
	if !g.primed || g.dims[ci] != g.dims[1-ci] {
		g.cells.MarkAll()
		return true
	}
	for i := range cur {
		if cur[i] != prev[i] {
			g.cells.MarkIndex(i)
		}
	}
	return !g.cells.IsEmpty()
}

// Swap rotates the slots: the current cell hashes become the previous ones.
func (g *GridDetector) Swap() {
	g.flip = !g.flip
	g.primed = true
}

// DirtyRects returns the logical rectangles of the cells found changed by
// the last call to Changed, in row-major order.
func (g *GridDetector) DirtyRects() []image.Rectangle {
	var rects []image.Rectangle
	g.cells.ForEach(func(cx, cy int) {
		rects = append(rects, g.cells.Rect(cx, cy).Intersect(logicalBounds))
	})
	return rects
}

// DirtyCount returns the number of cells found changed by the last call to
// Changed.
func (g *GridDetector) DirtyCount() int {
	return g.cells.Count()
}

// CellCount returns the number of cells in the grid.
func (g *GridDetector) CellCount() int {
	return g.cells.Len()
}

// CellSize returns the cell edge length in logical pixels.
func (g *GridDetector) CellSize() int {
	return g.cells.Size()
}
