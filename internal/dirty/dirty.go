// Package dirty tracks which cells of a square pixel grid changed between
// two frames.
package dirty

import (
	"image"
	"math/bits"
)

// Cells is a bitmap with one bit per grid cell, packed into uint64 words
// (64 cells per word). Cells are square, Size pixels on each edge; the grid
// covers a Cols*Size × Rows*Size pixel area starting at the origin.
//
// A Cells value is not safe for concurrent use.
type Cells struct {
	// Bit index = cy * cols + cx.
	words []uint64

	size int
	cols int
	rows int
}

// New creates a clean cell set covering width × height pixels with cells of
// size pixels. Partial cells at the right and bottom edges count as whole
// cells. Returns nil if any argument is zero or negative.
func New(width, height, size int) *Cells {
	if width <= 0 || height <= 0 || size <= 0 {
		return nil
	}
	cols := (width + size - 1) / size
	rows := (height + size - 1) / size
	return &Cells{
		words: make([]uint64, (cols*rows+63)/64),
		size:  size,
		cols:  cols,
		rows:  rows,
	}
}

// Mark marks cell (cx, cy) as dirty. Out-of-range cells are ignored.
func (c *Cells) Mark(cx, cy int) {
	if cx < 0 || cx >= c.cols || cy < 0 || cy >= c.rows {
		return
	}
	idx := cy*c.cols + cx
	c.words[idx/64] |= 1 << (idx & 63)
}

// MarkIndex marks the cell with row-major index i.
func (c *Cells) MarkIndex(i int) {
	if i < 0 || i >= c.Len() {
		return
	}
	c.words[i/64] |= 1 << (i & 63)
}

// Span returns the range of cells [min, max) intersecting the pixel
// rectangle r. The result is empty when r lies outside the grid.
func (c *Cells) Span(r image.Rectangle) image.Rectangle {
	r = r.Intersect(image.Rect(0, 0, c.cols*c.size, c.rows*c.size))
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		r.Min.X/c.size, r.Min.Y/c.size,
		(r.Max.X+c.size-1)/c.size, (r.Max.Y+c.size-1)/c.size,
	)
}

// MarkRect marks all cells intersecting the pixel rectangle r.
func (c *Cells) MarkRect(r image.Rectangle) {
	s := c.Span(r)
	for cy := s.Min.Y; cy < s.Max.Y; cy++ {
		for cx := s.Min.X; cx < s.Max.X; cx++ {
			c.Mark(cx, cy)
		}
	}
}

// MarkAll marks every cell.
func (c *Cells) MarkAll() {
	n := c.Len()
	full := n / 64
	for i := 0; i < full; i++ {
		c.words[i] = ^uint64(0)
	}
	if rem := n % 64; rem > 0 {
		c.words[full] = uint64(1)<<rem - 1
	}
}

// Clear marks every cell clean.
func (c *Cells) Clear() {
	clear(c.words)
}

// IsDirty reports whether cell (cx, cy) is dirty. Out-of-range cells are clean.
func (c *Cells) IsDirty(cx, cy int) bool {
	if cx < 0 || cx >= c.cols || cy < 0 || cy >= c.rows {
		return false
	}
	idx := cy*c.cols + cx
	return c.words[idx/64]&(1<<(idx&63)) != 0
}

// IsEmpty reports whether no cell is dirty.
func (c *Cells) IsEmpty() bool {
	for _, w := range c.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of dirty cells.
func (c *Cells) Count() int {
	n := 0
	for _, w := range c.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ForEach calls fn for each dirty cell in row-major order without clearing
// the set.
func (c *Cells) ForEach(fn func(cx, cy int)) {
	if fn == nil {
		return
	}
	total := c.Len()
	for wi, word := range c.words {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			idx := wi*64 + b
			if idx >= total {
				break
			}
			fn(idx%c.cols, idx/c.cols)
			word &^= 1 << b
		}
	}
}

// Rect returns the pixel rectangle of cell (cx, cy).
func (c *Cells) Rect(cx, cy int) image.Rectangle {
	x, y := cx*c.size, cy*c.size
	return image.Rect(x, y, x+c.size, y+c.size)
}

// Size returns the cell edge length in pixels.
func (c *Cells) Size() int { return c.size }

// Cols returns the number of cell columns.
func (c *Cells) Cols() int { return c.cols }

// Rows returns the number of cell rows.
func (c *Cells) Rows() int { return c.rows }

// Len returns the total number of cells.
func (c *Cells) Len() int { return c.cols * c.rows }
