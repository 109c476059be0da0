package main

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/pixel"
)

// windowGame presents frames in a resizable ebiten window. The physical
// frame buffer follows the window size, so scaling and letterboxing are done
// by the pipeline and ebiten only uploads the finished pixels.
type windowGame struct {
	fb    *pixel.FrameBuffer
	scene *scene

	offscreen *ebiten.Image
	rgba      []byte
}

func runWindow(fb *pixel.FrameBuffer, sc *scene, width, height int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("pixeldemo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(&windowGame{fb: fb, scene: sc})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *windowGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.paused = !g.scene.paused
	}

	x, y := ebiten.CursorPosition()
	g.scene.setCursor(g.fb.ToLogical(image.Pt(x, y)))
	g.scene.step()
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if err := g.fb.Resize(w, h); err != nil {
		panic(fmt.Sprintf("pixeldemo: %v", err))
	}

	if g.fb.Render(g.scene.atlas.Atlas, g.scene.frame()) {
		if g.offscreen == nil || g.offscreen.Bounds().Dx() != w || g.offscreen.Bounds().Dy() != h {
			g.offscreen = ebiten.NewImage(w, h)
			g.rgba = make([]byte, 4*w*h)
		}
		if err := g.fb.CopyRGBA(g.rgba); err == nil {
			g.offscreen.WritePixels(g.rgba)
		}
	}

	if g.offscreen != nil && g.offscreen.Bounds().Dx() == w && g.offscreen.Bounds().Dy() == h {
		screen.DrawImage(g.offscreen, nil)
	}
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
