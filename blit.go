package pixel

import "github.com/gogpu/pixel/internal/scale"

// blit scales the logical buffer onto the physical buffer. Bars are left
// untouched.
func (fb *FrameBuffer) blit(l scale.Layout) {
	// ensureSize guarantees the buffer matches the layout, so Blit cannot fail.
	if err := scale.Blit(fb.pixels, fb.logical[:], l); err != nil {
		assertf(false, "blit: %v", err)
	}
}
