package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/pixel"
)

func newTestScene(t *testing.T) *scene {
	t.Helper()
	a, err := buildAtlas(basicfont.Face7x13)
	if err != nil {
		t.Fatalf("buildAtlas() error = %v", err)
	}
	return newScene(a)
}

func TestBuildAtlas(t *testing.T) {
	sc := newTestScene(t)
	a := sc.atlas

	if a.cellW != 7 || a.cellH != 13 {
		t.Errorf("cell = %dx%d, want 7x13", a.cellW, a.cellH)
	}
	if a.glyph('~') == a.glyph('?') {
		t.Error("'~' should have its own cell")
	}
	if a.glyph('é') != a.glyph('?') {
		t.Error("runes outside ASCII should fall back to '?'")
	}

	// Glyph pixels are white with coverage in alpha.
	var covered int
	g := a.glyph('M')
	for y := g.Y; y < g.Y+a.cellH; y++ {
		for x := g.X; x < g.X+a.cellW; x++ {
			c := a.At(x, y)
			if c.A() == 0 {
				continue
			}
			covered++
			if c.R() != 255 || c.G() != 255 || c.B() != 255 {
				t.Fatalf("glyph pixel (%d,%d) = %#08x, want white", x, y, uint32(c))
			}
		}
	}
	if covered == 0 {
		t.Error("glyph 'M' has no coverage")
	}

	if c := a.At(a.tile.X+3, a.tile.Y+3); c.A() != 255 {
		t.Errorf("tile pixel = %#08x, want opaque", uint32(c))
	}
	if c := a.At(a.ball.X, a.ball.Y); c.A() != 0 {
		t.Errorf("ball corner = %#08x, want transparent", uint32(c))
	}
}

func TestBounce(t *testing.T) {
	tests := []struct{ t, limit, want int }{
		{0, 10, 0},
		{7, 10, 7},
		{10, 10, 10},
		{13, 10, 7},
		{20, 10, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := bounce(tt.t, tt.limit); got != tt.want {
			t.Errorf("bounce(%d, %d) = %d, want %d", tt.t, tt.limit, got, tt.want)
		}
	}
}

func TestSceneSkipsStillFrames(t *testing.T) {
	sc := newTestScene(t)
	fb, err := pixel.NewFrameBuffer(256, 256)
	if err != nil {
		t.Fatal(err)
	}

	// tick 0 and 1 place the ball identically.
	if !fb.Render(sc.atlas.Atlas, sc.frame()) {
		t.Fatal("first frame not rendered")
	}
	sc.step()
	if fb.Render(sc.atlas.Atlas, sc.frame()) {
		t.Error("still frame rendered")
	}
	sc.step()
	if !fb.Render(sc.atlas.Atlas, sc.frame()) {
		t.Error("moved frame skipped")
	}

	sc.paused = true
	sc.step()
	if fb.Render(sc.atlas.Atlas, sc.frame()) {
		t.Error("paused frame rendered")
	}
}

func TestSceneCursor(t *testing.T) {
	sc := newTestScene(t)
	n := len(sc.frame())

	sc.setCursor(image.Pt(64, 64), true)
	if got := len(sc.frame()); got != n+1 {
		t.Errorf("commands with cursor = %d, want %d", got, n+1)
	}
	sc.setCursor(image.Point{}, false)
	if got := len(sc.frame()); got != n {
		t.Errorf("commands without cursor = %d, want %d", got, n)
	}
}

func TestRunPNG(t *testing.T) {
	sc := newTestScene(t)
	fb, err := pixel.NewFrameBuffer(300, 200)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	out := filepath.Join(dir, "demo.png")
	prev := filepath.Join(dir, "preview.png")
	if err := runPNG(fb, sc, 4, out, prev); err != nil {
		t.Fatalf("runPNG() error = %v", err)
	}
	for _, p := range []string{out, prev} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s not written: %v", p, err)
		}
	}
}

func TestRunPNG_TooSmall(t *testing.T) {
	sc := newTestScene(t)
	fb, err := pixel.NewFrameBuffer(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if err := runPNG(fb, sc, 1, filepath.Join(t.TempDir(), "x.png"), ""); err == nil {
		t.Error("runPNG() on a degenerate surface succeeded")
	}
}

func TestLoadFaceMissingFile(t *testing.T) {
	if _, err := loadFace(filepath.Join(t.TempDir(), "nope.ttf"), 8); err == nil {
		t.Error("loadFace() with missing file succeeded")
	}
	face, err := loadFace("", 8)
	if err != nil || face != basicfont.Face7x13 {
		t.Errorf("loadFace(\"\") = %v, %v; want basicfont", face, err)
	}
}
