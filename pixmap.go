package pixel

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Image returns a copy of the physical buffer as an image.NRGBA.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.width, fb.height))
	_ = fb.CopyRGBA(img.Pix)
	return img
}

// LogicalImage returns a copy of the logical buffer as an image.NRGBA.
func (fb *FrameBuffer) LogicalImage() *image.NRGBA {
	img := image.NewNRGBA(logicalBounds)
	copyRGBA(img.Pix, fb.logical[:])
	return img
}

// CopyRGBA writes the physical buffer into dst as R, G, B, A bytes per pixel,
// the layout expected by image.NRGBA and most texture uploads. dst must hold
// at least 4*Width()*Height() bytes.
//
// The logical buffer is always opaque, so inside the viewport the bytes are
// valid both as straight and as premultiplied alpha.
func (fb *FrameBuffer) CopyRGBA(dst []byte) error {
	n := fb.width * fb.height
	if len(dst) < n*4 {
		return fmt.Errorf("copy %d pixels into %d bytes: %w", n, len(dst), ErrDataTooSmall)
	}
	copyRGBA(dst, fb.pixels[:min(n, len(fb.pixels))])
	return nil
}

func copyRGBA(dst []byte, src []uint32) {
	for i, p := range src {
		o := i * 4
		dst[o+0] = uint8(p >> 16)
		dst[o+1] = uint8(p >> 8)
		dst[o+2] = uint8(p)
		dst[o+3] = uint8(p >> 24)
	}
}

// SavePNG saves the physical buffer to a PNG file.
func (fb *FrameBuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, fb.Image())
}
