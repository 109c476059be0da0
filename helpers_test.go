package pixel

import (
	"image"
	"math/rand"
	"testing"
)

// Test atlas regions.
var (
	spriteRed   = image.Pt(0, 0)   // 8x8 opaque red
	spriteGlyph = image.Pt(8, 0)   // 8x8 half-covered white
	spriteEmpty = image.Pt(16, 0)  // 8x8 fully transparent
	spriteSolid = image.Pt(128, 0) // 128x128 opaque 0xFF336699
	spriteNoise = image.Pt(0, 128) // 128x128 random alpha and color
)

const (
	colorRed   Color = 0xFFFF0000
	colorGlyph Color = 0x80FFFFFF
	colorSolid Color = 0xFF336699
)

// newTestAtlas builds a 256x256 atlas with the regions above.
func newTestAtlas(t testing.TB) *Atlas {
	t.Helper()

	const size = 256
	pix := make([]uint32, size*size)
	fill := func(r image.Rectangle, c Color) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				pix[y*size+x] = uint32(c)
			}
		}
	}
	fill(image.Rect(0, 0, 8, 8), colorRed)
	fill(image.Rect(8, 0, 16, 8), colorGlyph)
	fill(image.Rect(128, 0, 256, 128), colorSolid)

	r := rand.New(rand.NewSource(42))
	for y := 128; y < size; y++ {
		for x := 0; x < 128; x++ {
			pix[y*size+x] = r.Uint32()
		}
	}

	a, err := NewAtlas(size, size, pix)
	if err != nil {
		t.Fatalf("NewAtlas() error = %v", err)
	}
	return a
}

func newTestFrameBuffer(t testing.TB, w, h int, opts ...Option) *FrameBuffer {
	t.Helper()
	fb, err := NewFrameBuffer(w, h, opts...)
	if err != nil {
		t.Fatalf("NewFrameBuffer(%d, %d) error = %v", w, h, err)
	}
	return fb
}

// randomCommands returns n commands mixing all atlas regions, partially
// off-screen rectangles and tints.
func randomCommands(r *rand.Rand, n int) []Command {
	sprites := []image.Point{spriteRed, spriteGlyph, spriteEmpty, spriteSolid, spriteNoise}
	tints := []Color{NoTint, NoTint, 0xFF00FF00, 0xFF0000FF, 0x11223344}

	cmds := make([]Command, 0, n)
	for len(cmds) < n {
		x := r.Intn(160) - 16
		y := r.Intn(160) - 16
		w := r.Intn(40) + 1
		h := r.Intn(40) + 1
		cmds = append(cmds, Command{
			Rect:   image.Rect(x, y, x+w, y+h),
			Sprite: sprites[r.Intn(len(sprites))].Add(image.Pt(r.Intn(8), r.Intn(8))),
			Tint:   tints[r.Intn(len(tints))],
		})
	}
	return cmds
}

func snapshot(fb *FrameBuffer) []uint32 {
	return append([]uint32(nil), fb.Pixels()...)
}

// skipInDebug skips tests that exercise paths asserting in pixeldebug builds.
func skipInDebug(t *testing.T) {
	t.Helper()
	if debugAsserts {
		t.Skip("assertions panic in pixeldebug builds")
	}
}
