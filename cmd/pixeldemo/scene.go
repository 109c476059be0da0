package main

import (
	"image"

	"github.com/gogpu/pixel"
)

// Palette used by the demo scene.
var (
	titleTint  = pixel.Hex("#ffec27")
	footerTint = pixel.Hex("#c2c3c7")
	shadowTint = pixel.Hex("#000000")
)

// scene produces the command list of each frame. The ball moves one logical
// pixel every other tick, so every second frame is identical to the previous
// one and exercises the change detector.
type scene struct {
	atlas *demoAtlas
	list  pixel.CommandList
	tick  int

	cursor    image.Point
	hasCursor bool
	paused    bool
}

func newScene(a *demoAtlas) *scene {
	return &scene{atlas: a}
}

// step advances the animation by one tick.
func (s *scene) step() {
	if !s.paused {
		s.tick++
	}
}

// setCursor records the logical cursor position; ok is false when the
// pointer is over the letterbox bars or outside the window.
func (s *scene) setCursor(p image.Point, ok bool) {
	s.cursor, s.hasCursor = p, ok
}

func (s *scene) frame() []pixel.Command {
	s.list.Reset()

	for y := 0; y < pixel.LogicalSize; y += 8 {
		for x := (y / 8 % 2) * 8; x < pixel.LogicalSize; x += 16 {
			s.list.Sprite(image.Rect(x, y, x+8, y+8), s.atlas.tile)
		}
	}

	bx := bounce(s.tick/2, pixel.LogicalSize-16)
	by := bounce(s.tick/3, pixel.LogicalSize-16)
	s.list.Sprite(image.Rect(bx, by, bx+16, by+16), s.atlas.ball)

	s.text(5, 5, "PIXEL", shadowTint)
	s.text(4, 4, "PIXEL", titleTint)
	s.text(4, pixel.LogicalSize-4-s.atlas.cellH, "128x128", footerTint)

	if s.hasCursor {
		c := s.cursor.Sub(image.Pt(2, 2))
		s.list.Sprite(image.Rect(c.X, c.Y, c.X+5, c.Y+5), s.atlas.cursor)
	}
	return s.list.Commands()
}

// text emits one tinted glyph command per rune.
func (s *scene) text(x, y int, str string, tint pixel.Color) {
	for _, r := range str {
		if r != ' ' {
			s.list.Tinted(image.Rect(x, y, x+s.atlas.cellW, y+s.atlas.cellH), s.atlas.glyph(r), tint)
		}
		x += s.atlas.cellW
	}
}

// bounce maps t onto a triangle wave between 0 and limit.
func bounce(t, limit int) int {
	if limit <= 0 {
		return 0
	}
	p := t % (2 * limit)
	if p > limit {
		return 2*limit - p
	}
	return p
}
