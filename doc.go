// Package pixel provides the frame-rendering core of a fixed-resolution
// pixel-art engine.
//
// # Overview
//
// Game and UI code produce a list of draw commands every frame. Each command
// copies a rectangular block of a shared sprite atlas onto a 128×128 logical
// pixel grid. pixel turns that list into a finished ARGB buffer for an output
// surface of any size, and tells the caller whether anything changed.
//
// # Quick Start
//
//	import "github.com/gogpu/pixel"
//
//	atlas, err := pixel.AtlasFromImage(sheet)
//	fb, err := pixel.NewFrameBuffer(800, 600)
//
//	var frame pixel.CommandList
//	for {
//	    frame.Reset()
//	    frame.Sprite(image.Rect(10, 10, 18, 18), image.Pt(0, 0))
//	    if fb.Render(atlas, frame.Commands()) {
//	        present(fb.Pixels())
//	    }
//	}
//
// # Pipeline
//
// Render runs four stages, synchronously, in one call:
//
//   - Change detection: a 32-bit FNV-1a hash over the physical size and every
//     command field. A frame equal to the previous one returns false at once.
//     NewGridDetector tracks changes per logical cell instead.
//   - Compositing: the logical buffer is cleared to the background color and
//     every command is blended with the "over" operator in approximate linear
//     space (channels squared on decode, square-rooted on encode), 8 pixels
//     per batch.
//   - Scaling: the logical buffer is replicated onto the physical buffer with
//     the largest integer multiplier that fits, centered between letterbox
//     bars. Bars are filled once when the buffer is allocated.
//   - Signal: Render returns true when the physical buffer was redrawn.
//
// A surface smaller than 128×128 in either dimension is not an error: Render
// returns false and leaves the buffer alone. Build with -tags pixeldebug to
// turn this and zero-area commands into panics while developing.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rectangles include Min and exclude Max
//
// # Concurrency
//
// A FrameBuffer belongs to one goroutine. An Atlas is read-only and may be
// shared freely.
package pixel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
