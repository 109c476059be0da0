// Package blend implements the "over" compositing operator in approximate
// linear space.
//
// Pixels are straight-alpha ARGB (see package color). Color channels are
// decoded by squaring, composited, and re-encoded with a square root. Alpha is
// coverage and is never gamma-encoded.
//
// Over is the scalar reference. OverBatch and OverSpan process wide.Lanes
// pixels at a time and produce bit-identical results.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "github.com/gogpu/pixel/internal/color"

// NoTint is the sentinel tint value meaning "sample colors as they are".
const NoTint uint32 = 0

const rgbMask = 0x00FFFFFF

// Tint substitutes the RGB channels of src with those of tint when a tint is
// present and src is not fully opaque. The source alpha is kept as coverage,
// so antialiased or grayscale atlas regions (glyphs) can be recolored per
// draw while opaque atlas art is left alone. The alpha byte of tint is ignored.
func Tint(src, tint uint32) uint32 {
	if tint == NoTint || color.Alpha(src) == 255 {
		return src
	}
	return src&^rgbMask | tint&rgbMask
}

// Over composites src over dst and returns the new destination pixel.
//
// Formula (linear space, straight alpha):
//
//	a = Sa + Da*(1 - Sa)
//	c = (Sc*Sa + Dc*Da*(1 - Sa)) / a
//
// A transparent source returns dst unchanged and an opaque source returns src.
func Over(src, dst uint32) uint32 {
	switch color.Alpha(src) {
	case 0:
		return dst
	case 255:
		return src
	}

	s := color.ToLinearColor(color.Unpack(src))
	d := color.ToLinearColor(color.Unpack(dst))
	out, ok := overLinear(s, d)
	if !ok {
		return dst
	}
	return color.Pack(color.FromLinearColor(out))
}

// overLinear applies the operator to decoded colors. It reports false when
// the resulting coverage is zero, in which case the destination must be kept.
//
// Every product is converted to float32 explicitly so the result matches the
// lane implementation in OverBatch exactly.
func overLinear(s, d color.ColorF32) (color.ColorF32, bool) {
	inv := 1 - s.A
	dw := float32(d.A * inv)
	a := s.A + dw
	if !(a > 0) {
		return d, false
	}
	ra := 1 / a
	return color.ColorF32{
		R: float32((float32(s.R*s.A) + float32(d.R*dw)) * ra),
		G: float32((float32(s.G*s.A) + float32(d.G*dw)) * ra),
		B: float32((float32(s.B*s.A) + float32(d.B*dw)) * ra),
		A: a,
	}, true
}
