package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pixel"
)

// Printable ASCII range stored in the glyph grid.
const (
	firstGlyph = ' '
	lastGlyph  = '~'
	glyphCols  = 16
)

// demoAtlas is the sprite sheet used by the demo: a grid of white glyphs
// (alpha is coverage, so tinting recolors them) followed by a few sprites.
type demoAtlas struct {
	*pixel.Atlas

	cellW, cellH int // glyph cell size

	ball   image.Point // 16x16 shaded ball
	tile   image.Point // 8x8 opaque floor tile
	cursor image.Point // 5x5 cross
}

// loadFace returns basicfont's 7x13 face when path is empty, otherwise an
// OpenType face parsed from the file.
func loadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // font path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

func buildAtlas(face font.Face) (*demoAtlas, error) {
	m := face.Metrics()
	cellW := font.MeasureString(face, "M").Ceil()
	cellH := (m.Ascent + m.Descent).Ceil()
	rows := int(lastGlyph-firstGlyph+glyphCols) / glyphCols

	spritesY := rows * cellH
	width := max(glyphCols*cellW, 32)
	img := image.NewNRGBA(image.Rect(0, 0, width, spritesY+16))

	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for r := firstGlyph; r <= lastGlyph; r++ {
		i := int(r - firstGlyph)
		x, y := (i%glyphCols)*cellW, (i/glyphCols)*cellH
		d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + m.Ascent}
		d.DrawString(string(r))
	}

	a := &demoAtlas{
		cellW:  cellW,
		cellH:  cellH,
		ball:   image.Pt(0, spritesY),
		tile:   image.Pt(16, spritesY),
		cursor: image.Pt(24, spritesY),
	}
	drawBall(img, a.ball)
	drawTile(img, a.tile)
	drawCursor(img, a.cursor)

	atlas, err := pixel.AtlasFromImage(img)
	if err != nil {
		return nil, err
	}
	a.Atlas = atlas
	return a, nil
}

// glyph returns the atlas cell of r, or '?' for runes outside the grid.
func (a *demoAtlas) glyph(r rune) image.Point {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	i := int(r - firstGlyph)
	return image.Pt((i%glyphCols)*a.cellW, (i/glyphCols)*a.cellH)
}

func drawBall(img draw.Image, at image.Point) {
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			dx, dy := float64(x)-7.5, float64(y)-7.5
			d2 := dx*dx + dy*dy
			if d2 > 64 {
				continue
			}
			// Soft edge on the outermost ring, highlight towards the top left.
			alpha := uint8(255)
			if d2 > 49 {
				alpha = uint8(255 * (64 - d2) / 15)
			}
			shade := uint8(255 - min(160, 4*(x+y)))
			img.Set(at.X+x, at.Y+y, color.NRGBA{R: 255, G: shade / 2, B: shade / 4, A: alpha})
		}
	}
}

func drawTile(img draw.Image, at image.Point) {
	dark := color.NRGBA{R: 0x1d, G: 0x2b, B: 0x53, A: 255}
	light := color.NRGBA{R: 0x29, G: 0x36, B: 0x6f, A: 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := dark
			if x == 0 || y == 0 {
				c = light
			}
			img.Set(at.X+x, at.Y+y, c)
		}
	}
}

func drawCursor(img draw.Image, at image.Point) {
	c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for i := 0; i < 5; i++ {
		img.Set(at.X+i, at.Y+2, c)
		img.Set(at.X+2, at.Y+i, c)
	}
}
