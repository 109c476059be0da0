// Command pixeldemo demonstrates the pixel frame pipeline.
//
// By default it renders a few frames headless and saves the last one as a
// PNG. With -mode=window it opens a resizable window, with -mode=term it draws
// into the terminal using half-block characters.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/pixel"
)

func main() {
	var (
		mode       = flag.String("mode", "png", "presenter: png, window or term")
		width      = flag.Int("width", 800, "surface width (png and window modes)")
		height     = flag.Int("height", 600, "surface height (png and window modes)")
		output     = flag.String("output", "pixeldemo.png", "output file (png mode)")
		preview    = flag.String("preview", "", "also write a smoothly scaled preview (png mode)")
		frames     = flag.Int("frames", 60, "frames to simulate before saving (png mode)")
		fps        = flag.Int("fps", 30, "frame rate (term mode)")
		background = flag.String("background", "#1d2b53", "logical background color")
		letterbox  = flag.String("letterbox", "#000000", "letterbox bar color")
		fontPath   = flag.String("font", "", "TrueType/OpenType font for the glyph atlas (default: built-in 7x13)")
		fontSize   = flag.Float64("size", 8, "font size in logical pixels when -font is set")
		cell       = flag.Int("cell", 16, "change-detection cell size (term mode)")
		verbose    = flag.Bool("v", false, "log per-frame decisions")
	)
	flag.Parse()

	if *verbose {
		pixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	face, err := loadFace(*fontPath, *fontSize)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	atlas, err := buildAtlas(face)
	if err != nil {
		log.Fatalf("Failed to build atlas: %v", err)
	}
	sc := newScene(atlas)

	opts := []pixel.Option{
		pixel.WithBackground(pixel.Hex(*background)),
		pixel.WithLetterbox(pixel.Hex(*letterbox)),
	}
	// The terminal repaints only the cells that changed.
	var grid *pixel.GridDetector
	if *mode == "term" {
		grid = pixel.NewGridDetector(*cell)
		opts = append(opts, pixel.WithDetector(grid))
	}

	fb, err := pixel.NewFrameBuffer(*width, *height, opts...)
	if err != nil {
		log.Fatalf("Failed to create frame buffer: %v", err)
	}

	switch *mode {
	case "png":
		err = runPNG(fb, sc, *frames, *output, *preview)
	case "window":
		err = runWindow(fb, sc, *width, *height)
	case "term":
		err = runTerminal(fb, sc, grid, *fps)
	default:
		log.Fatalf("Unknown mode %q (want png, window or term)", *mode)
	}
	if err != nil {
		log.Fatalf("%s: %v", *mode, err)
	}

	st := fb.Stats()
	log.Printf("Frames: %d rendered, %d skipped, %d degenerate\n", st.Rendered, st.Skipped, st.Degenerate)
}
