package main

import (
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/pixel"
)

// runTerminal presents frames with tcell, two physical pixels per cell using
// the upper half block: foreground is the top pixel, background the bottom.
// The terminal needs at least 128 columns and 64 rows. Only the cells grid
// reports as changed are repainted.
func runTerminal(fb *pixel.FrameBuffer, sc *scene, grid *pixel.GridDetector, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
				if ev.Rune() == ' ' {
					sc.paused = !sc.paused
				}
			}

		case <-ticker.C:
			cols, rows := screen.Size()
			if err := fb.Resize(cols, rows*2); err != nil {
				return err
			}
			sc.step()
			if fb.Render(sc.atlas.Atlas, sc.frame()) {
				paintDirty(screen, fb, grid)
				screen.Show()
			} else if _, ok := fb.Layout(); !ok {
				screen.Clear()
				drawMessage(screen, fmt.Sprintf("terminal too small: %dx%d cells, need %dx%d",
					cols, rows, pixel.LogicalSize, pixel.LogicalSize/2))
				screen.Show()
			}
		}
	}
}

// paintDirty repaints the terminal cells covering the dirty logical
// rectangles, or the whole surface when grid is nil.
func paintDirty(screen tcell.Screen, fb *pixel.FrameBuffer, grid *pixel.GridDetector) {
	l, ok := fb.Layout()
	if !ok {
		return
	}
	if grid == nil {
		paintCells(screen, fb, image.Rect(0, 0, fb.Width(), fb.Height()))
		return
	}
	if grid.DirtyCount() == grid.CellCount() {
		// First frame or resize: the bars need painting too.
		paintCells(screen, fb, image.Rect(0, 0, fb.Width(), fb.Height()))
		return
	}
	for _, r := range grid.DirtyRects() {
		phys := l.ToPhysical(r.Min).Union(l.ToPhysical(r.Max.Sub(image.Pt(1, 1))))
		paintCells(screen, fb, phys)
	}
}

// paintCells repaints the terminal cells overlapping the physical rectangle r.
func paintCells(screen tcell.Screen, fb *pixel.FrameBuffer, r image.Rectangle) {
	px := fb.Pixels()
	w := fb.Width()
	r = r.Intersect(image.Rect(0, 0, w, fb.Height()))
	for y := r.Min.Y &^ 1; y < r.Max.Y && y+1 < fb.Height(); y += 2 {
		for x := r.Min.X; x < r.Max.X; x++ {
			top, bottom := pixel.Color(px[y*w+x]), pixel.Color(px[(y+1)*w+x])
			style := tcell.StyleDefault.
				Foreground(tcellColor(top)).
				Background(tcellColor(bottom))
			screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
}

func tcellColor(c pixel.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

func drawMessage(screen tcell.Screen, msg string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
	for i, r := range msg {
		screen.SetContent(i, 0, r, nil, style)
	}
}
