package color

import "math"

// ToLinear converts a gamma-encoded component to the approximate linear
// representation by squaring it. Input and output are in range [0,1].
//
// Squaring stands in for the sRGB EOTF (see SRGBToLinear). The largest
// deviation from the true curve is about 0.04 in the upper mid-tones, which is
// invisible at 8 bits per channel and avoids a pow per channel.
func ToLinear(s float32) float32 {
	return float32(s * s)
}

// FromLinear is the inverse of ToLinear. Input is clamped to [0,1].
func FromLinear(l float32) float32 {
	l = clamp01(l)
	return float32(math.Sqrt(float64(l)))
}

// EncodeU8 converts a linear component to a gamma-encoded byte.
//
// The operation order (clamp, sqrt, scale, add one half, truncate) is part of
// the numeric contract: the batched encoder in package blend performs exactly
// the same steps per lane.
func EncodeU8(l float32) uint8 {
	s := FromLinear(l)
	return uint8(float32(s*255) + 0.5)
}

// AlphaU8 converts a coverage value in [0,1] to a byte with rounding.
// Alpha is never gamma-encoded.
func AlphaU8(a float32) uint8 {
	a = clamp01(a)
	return uint8(float32(a*255) + 0.5)
}

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
//
// The compositor does not use this curve; it is kept as the reference the
// square approximation is measured against.
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// ToLinearColor converts a byte color to float32 with RGB in approximate
// linear space. Alpha is only normalized.
func ToLinearColor(c ColorU8) ColorF32 {
	return ColorF32{
		R: ToLinearFast(c.R),
		G: ToLinearFast(c.G),
		B: ToLinearFast(c.B),
		A: AlphaFast(c.A),
	}
}

// FromLinearColor converts a linear float32 color back to bytes.
func FromLinearColor(c ColorF32) ColorU8 {
	return ColorU8{
		R: EncodeU8(c.R),
		G: EncodeU8(c.G),
		B: EncodeU8(c.B),
		A: AlphaU8(c.A),
	}
}

// clamp01 clamps v to [0,1]. The comparison order matches wide.F32x8.Clamp.
func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
