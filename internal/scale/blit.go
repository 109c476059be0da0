package scale

import "errors"

// ErrBufferSize is returned when a buffer is smaller than its layout needs.
var ErrBufferSize = errors.New("scale: buffer too small for layout")

// Blit replicates every logical pixel of src into a Multiplier × Multiplier
// block of dst. dst is a row-major physical buffer of l.Width × l.Height
// pixels and src a row-major logical buffer of l.Logical × l.Logical pixels.
//
// Pixels on the letterbox bars are never written.
func Blit(dst, src []uint32, l Layout) error {
	if l.Multiplier <= 0 {
		return nil
	}
	if len(dst) < l.Width*l.Height || len(src) < l.Logical*l.Logical {
		return ErrBufferSize
	}

	m := l.Multiplier
	span := l.Logical * m
	for ly := 0; ly < l.Logical; ly++ {
		srcRow := src[ly*l.Logical : (ly+1)*l.Logical]

		y := l.Top + ly*m
		first := dst[y*l.Width+l.Left : y*l.Width+l.Left+span]
		expandRow(first, srcRow, m)

		// Remaining rows of the block are copies of the expanded one.
		for k := 1; k < m; k++ {
			off := (y+k)*l.Width + l.Left
			copy(dst[off:off+span], first)
		}
	}
	return nil
}

// expandRow writes each pixel of src m times into dst.
func expandRow(dst, src []uint32, m int) {
	if m == 1 {
		copy(dst, src)
		return
	}
	for i, v := range src {
		block := dst[i*m : i*m+m]
		for j := range block {
			block[j] = v
		}
	}
}
