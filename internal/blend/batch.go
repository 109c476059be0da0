package blend

import (
	"github.com/gogpu/pixel/internal/color"
	"github.com/gogpu/pixel/internal/wide"
)

var (
	zeroF  = wide.SplatF32(0)
	oneF   = wide.SplatF32(1)
	halfF  = wide.SplatF32(0.5)
	scaleF = wide.SplatF32(255)

	zeroU   = wide.SplatU32(0)
	opaqueU = wide.SplatU32(255)
)

// TintBatch applies Tint to every source lane of b.
func TintBatch(b *wide.PixelBatch, tint uint32) {
	if tint == NoTint {
		return
	}
	sa := b.Src.Channel(color.ShiftA)
	subst := sa.Eq(opaqueU).Not()

	var tinted wide.U32x8
	for i := range tinted {
		tinted[i] = b.Src[i]&^rgbMask | tint&rgbMask
	}
	b.Src = subst.SelectU32(tinted, b.Src)
}

// OverBatch composites the 8 source lanes of b over the destination lanes and
// returns the resulting pixels. Lanes with a clear Write mask are computed
// like any other lane; it is up to the caller to store only b.Write lanes.
//
// The per-lane operation sequence mirrors Over exactly.
func OverBatch(b *wide.PixelBatch) wide.U32x8 {
	lut := color.LinearLUT()
	alut := color.AlphaLUT()

	sa := b.Src.Lookup(alut, color.ShiftA)
	da := b.Dst.Lookup(alut, color.ShiftA)
	dw := da.Mul(oneF.Sub(sa))
	a := sa.Add(dw)
	ra := a.Recip()

	r := channelOver(b, lut, color.ShiftR, sa, dw, ra)
	g := channelOver(b, lut, color.ShiftG, sa, dw, ra)
	bl := channelOver(b, lut, color.ShiftB, sa, dw, ra)
	outA := a.Clamp(0, 1).Mul(scaleF).Add(halfF).Trunc()

	out := wide.PackARGB(outA, r, g, bl)

	sa8 := b.Src.Channel(color.ShiftA)
	keep := sa8.Eq(zeroU).Or(a.Gt(zeroF).Not())
	out = sa8.Eq(opaqueU).SelectU32(b.Src, out)
	return keep.SelectU32(b.Dst, out)
}

// channelOver blends one color channel and re-encodes it to bytes.
func channelOver(b *wide.PixelBatch, lut *[256]float32, shift uint, sa, dw, ra wide.F32x8) wide.U32x8 {
	s := b.Src.Lookup(lut, shift)
	d := b.Dst.Lookup(lut, shift)
	c := s.Mul(sa).Add(d.Mul(dw)).Mul(ra)
	return c.Clamp(0, 1).Sqrt().Mul(scaleF).Add(halfF).Trunc()
}

// OverSpan composites src over dst pixel by pixel, wide.Lanes pixels at a
// time, applying tint to every source pixel first. Both slices describe the
// same span; only min(len(dst), len(src)) pixels are written. The last batch
// is computed in full and stored through the write mask.
func OverSpan(dst, src []uint32, tint uint32) {
	n := min(len(dst), len(src))
	var b wide.PixelBatch
	for x := 0; x < n; x += wide.Lanes {
		b.Load(src[x:n], dst[x:n], n-x)
		TintBatch(&b, tint)
		b.Store(dst[x:n], OverBatch(&b))
	}
}

// OverSpanScalar is the scalar reference for OverSpan.
func OverSpanScalar(dst, src []uint32, tint uint32) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = Over(Tint(src[i], tint), dst[i])
	}
}
