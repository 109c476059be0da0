// Package color provides the pixel format and the approximate gamma model
// used by the compositor.
//
// Pixels are packed 32-bit ARGB values with straight (non-premultiplied)
// alpha: alpha in the highest byte, then red, green, blue.
package color

// ColorF32 represents a color with float32 components in [0,1].
// RGB components are in the color space indicated by context.
// Alpha is always linear (never gamma-encoded).
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a color with uint8 components in [0,255].
// RGB components are gamma-encoded. Alpha is always linear.
type ColorU8 struct {
	R, G, B, A uint8
}

// Channel shifts of a packed ARGB pixel.
const (
	ShiftA = 24
	ShiftR = 16
	ShiftG = 8
	ShiftB = 0
)

// Unpack splits a packed ARGB pixel into channels.
func Unpack(p uint32) ColorU8 {
	return ColorU8{
		R: uint8(p >> ShiftR),
		G: uint8(p >> ShiftG),
		B: uint8(p >> ShiftB),
		A: uint8(p >> ShiftA),
	}
}

// Pack combines channels into a packed ARGB pixel.
func Pack(c ColorU8) uint32 {
	return uint32(c.A)<<ShiftA | uint32(c.R)<<ShiftR | uint32(c.G)<<ShiftG | uint32(c.B)<<ShiftB
}

// Alpha returns the alpha byte of a packed pixel.
func Alpha(p uint32) uint8 {
	return uint8(p >> ShiftA)
}
