package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixel"
)

// runPNG simulates frames headless and saves the last one.
func runPNG(fb *pixel.FrameBuffer, sc *scene, frames int, output, preview string) error {
	for i := 0; i < max(frames, 1); i++ {
		sc.step()
		fb.Render(sc.atlas.Atlas, sc.frame())
	}
	if _, ok := fb.Layout(); !ok {
		return fmt.Errorf("surface %dx%d is smaller than %dx%d",
			fb.Width(), fb.Height(), pixel.LogicalSize, pixel.LogicalSize)
	}

	if err := fb.SavePNG(output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", output, fb.Width(), fb.Height())

	if preview == "" {
		return nil
	}
	if err := savePreview(fb, preview); err != nil {
		return fmt.Errorf("save preview %s: %w", preview, err)
	}
	log.Printf("Preview saved to %s\n", preview)
	return nil
}

// savePreview writes the logical buffer resampled with Catmull-Rom to the
// viewport size, for comparison with the nearest-neighbor output.
func savePreview(fb *pixel.FrameBuffer, path string) error {
	vp := fb.Viewport()
	dst := image.NewNRGBA(image.Rect(0, 0, vp.Dx(), vp.Dy()))
	src := fb.LogicalImage()
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, dst)
}
