package pixel

import (
	"image"
	"math/rand"
	"testing"

	"github.com/gogpu/pixel/internal/blend"
)

// referenceCompose paints cmds one pixel at a time with the scalar blend.
func referenceCompose(atlas *Atlas, cmds []Command, bg Color) []uint32 {
	out := make([]uint32, LogicalSize*LogicalSize)
	for i := range out {
		out[i] = uint32(bg)
	}
	for _, c := range cmds {
		if c.Empty() {
			continue
		}
		for y := c.Rect.Min.Y; y < c.Rect.Max.Y; y++ {
			for x := c.Rect.Min.X; x < c.Rect.Max.X; x++ {
				if !image.Pt(x, y).In(logicalBounds) {
					continue
				}
				src := uint32(atlas.At(c.Sprite.X+x-c.Rect.Min.X, c.Sprite.Y+y-c.Rect.Min.Y))
				src = blend.Tint(src, uint32(c.Tint))
				i := y*LogicalSize + x
				out[i] = blend.Over(src, out[i])
			}
		}
	}
	return out
}

func TestCompose_MatchesScalarReference(t *testing.T) {
	atlas := newTestAtlas(t)
	bg := Hex("#1d2b53")

	for seed := int64(0); seed < 8; seed++ {
		cmds := randomCommands(rand.New(rand.NewSource(seed)), 48)
		fb := newTestFrameBuffer(t, 128, 128, WithBackground(bg))
		fb.compose(atlas, cmds)

		want := referenceCompose(atlas, cmds, bg)
		for i, p := range fb.Logical() {
			if p != want[i] {
				t.Fatalf("seed %d: logical (%d,%d) = %#08x, want %#08x",
					seed, i%LogicalSize, i/LogicalSize, p, want[i])
			}
		}
	}
}

func TestCompose_PaintOrder(t *testing.T) {
	atlas := newTestAtlas(t)
	r := image.Rect(10, 10, 18, 18)

	fb := newTestFrameBuffer(t, 128, 128)
	fb.compose(atlas, []Command{Sprite(r, spriteSolid), Sprite(r, spriteRed)})
	if got := Color(fb.Logical()[10*LogicalSize+10]); got != colorRed {
		t.Errorf("later command should win: got %#08x", uint32(got))
	}

	fb.compose(atlas, []Command{Sprite(r, spriteRed), Sprite(r, spriteSolid)})
	if got := Color(fb.Logical()[10*LogicalSize+10]); got != colorSolid {
		t.Errorf("later command should win: got %#08x", uint32(got))
	}
}

func TestCompose_ClearsEveryFrame(t *testing.T) {
	atlas := newTestAtlas(t)
	fb := newTestFrameBuffer(t, 128, 128)
	fb.compose(atlas, []Command{Sprite(logicalBounds, spriteSolid)})
	fb.compose(atlas, nil)

	for i, p := range fb.Logical() {
		if Color(p) != DefaultBackground {
			t.Fatalf("logical pixel %d = %#08x, want background", i, p)
		}
	}
}

func TestCompose_OddWidths(t *testing.T) {
	// Widths that leave every possible tail length in the last lane batch.
	atlas := newTestAtlas(t)
	for w := 1; w <= 17; w++ {
		cmds := []Command{
			Sprite(image.Rect(3, 5, 3+w, 9), spriteNoise),
			Tinted(image.Rect(128-w, 20, 128+3, 22), spriteGlyph, 0xFF00E436),
		}
		fb := newTestFrameBuffer(t, 128, 128)
		fb.compose(atlas, cmds)

		want := referenceCompose(atlas, cmds, DefaultBackground)
		for i, p := range fb.Logical() {
			if p != want[i] {
				t.Fatalf("width %d: logical pixel %d = %#08x, want %#08x", w, i, p, want[i])
			}
		}
	}
}

func TestCompose_FullyOffscreen(t *testing.T) {
	fb := newTestFrameBuffer(t, 128, 128)
	fb.compose(newTestAtlas(t), []Command{
		Sprite(image.Rect(-8, 0, 0, 8), spriteRed),
		Sprite(image.Rect(128, 0, 136, 8), spriteRed),
		Sprite(image.Rect(0, 200, 8, 208), spriteRed),
	})
	for i, p := range fb.Logical() {
		if Color(p) != DefaultBackground {
			t.Fatalf("logical pixel %d written by off-screen command", i)
		}
	}
	if fb.Stats().Dropped != 0 {
		t.Error("off-screen commands are not zero-area and must not count as dropped")
	}
}
