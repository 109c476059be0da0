package pixel

import (
	"image/color"
	"testing"
)

func TestColor_Components(t *testing.T) {
	c := ARGB(0x11, 0x22, 0x33, 0x44)
	if c != 0x11223344 {
		t.Fatalf("ARGB() = %#08x, want 0x11223344", uint32(c))
	}
	if c.A() != 0x11 || c.R() != 0x22 || c.G() != 0x33 || c.B() != 0x44 {
		t.Errorf("components = (%#x, %#x, %#x, %#x)", c.A(), c.R(), c.G(), c.B())
	}
	if got := RGB(1, 2, 3); got != 0xFF010203 {
		t.Errorf("RGB(1, 2, 3) = %#08x, want 0xFF010203", uint32(got))
	}
	if got := c.Opaque(); got != 0xFF223344 {
		t.Errorf("Opaque() = %#08x, want 0xFF223344", uint32(got))
	}
}

func TestColor_NRGBA(t *testing.T) {
	c := ARGB(128, 10, 20, 30)
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 128}
	if got := c.NRGBA(); got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
	if got := FromColor(want); got != c {
		t.Errorf("FromColor() = %#08x, want %#08x", uint32(got), uint32(c))
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"opaque rgba", color.RGBA{R: 255, G: 128, B: 0, A: 255}, 0xFFFF8000},
		{"transparent", color.Transparent, 0},
		{"gray", color.Gray{Y: 100}, 0xFF646464},
		{"premultiplied half", color.RGBA{R: 64, A: 128}, 0x807F0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor(%v) = %#08x, want %#08x", tt.in, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"#000", Black},
		{"fff", White},
		{"#f008", 0x88FF0000},
		{"1d2b53", 0xFF1D2B53},
		{"#FF004D80", 0x80FF004D},
		{"", Black},
		{"12345", Black},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %#08x, want %#08x", tt.hex, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestNoTintIsZero(t *testing.T) {
	if NoTint != 0 {
		t.Errorf("NoTint = %#08x, want 0", uint32(NoTint))
	}
	if Sprite(logicalBounds, spriteRed).Tint != NoTint {
		t.Error("Sprite() sets a tint")
	}
}
