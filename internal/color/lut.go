// Package color provides fast channel decoding using lookup tables.
//
// The lookup tables (LUT) provide O(1) byte → float conversions for the
// gamma-encoded color channels and the linear alpha channel. Both the scalar
// and the batched blenders read the same tables, so their inputs are
// bit-identical.
package color

// linearLUT maps a gamma-encoded byte to its squared normalized value.
// Pre-computed 256 entries, 1KB memory cost.
var linearLUT [256]float32

// alphaLUT maps an alpha byte to its normalized value in [0,1].
var alphaLUT [256]float32

func init() {
	for i := 0; i < 256; i++ {
		n := float32(i) / 255
		linearLUT[i] = ToLinear(n)
		alphaLUT[i] = n
	}
}

// ToLinearFast converts a gamma-encoded byte to linear float32 using the
// lookup table.
//
// Example:
//
//	r := ToLinearFast(128) // ~0.2520 (not 0.5!)
func ToLinearFast(s uint8) float32 {
	return linearLUT[s]
}

// AlphaFast converts an alpha byte to a coverage value in [0,1].
func AlphaFast(a uint8) float32 {
	return alphaLUT[a]
}

// LinearLUT returns the shared decode table for batched lookups.
// The table must not be modified.
func LinearLUT() *[256]float32 {
	return &linearLUT
}

// AlphaLUT returns the shared alpha table for batched lookups.
// The table must not be modified.
func AlphaLUT() *[256]float32 {
	return &alphaLUT
}

// ToLinearSlow converts a byte to linear using float64 math.
//
// This is the reference implementation used for testing and verification only.
func ToLinearSlow(s uint8) float32 {
	n := float64(s) / 255
	return float32(n * n)
}
