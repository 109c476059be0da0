package color

import (
	"math"
	"testing"
)

// TestToLinearAccuracy tests that the LUT matches the float64 reference.
func TestToLinearAccuracy(t *testing.T) {
	for i := 0; i < 256; i++ {
		fast := ToLinearFast(uint8(i))
		slow := ToLinearSlow(uint8(i))
		if diff := math.Abs(float64(fast - slow)); diff > 1e-6 {
			t.Errorf("byte %d: fast=%f, slow=%f, error=%g", i, fast, slow, diff)
		}
	}
}

func TestLUTEndpoints(t *testing.T) {
	if got := ToLinearFast(0); got != 0 {
		t.Errorf("ToLinearFast(0) = %v, want 0", got)
	}
	if got := ToLinearFast(255); got != 1 {
		t.Errorf("ToLinearFast(255) = %v, want 1", got)
	}
	if got := AlphaFast(255); got != 1 {
		t.Errorf("AlphaFast(255) = %v, want 1", got)
	}
}

func TestLUTMonotonic(t *testing.T) {
	for i := 1; i < 256; i++ {
		if ToLinearFast(uint8(i)) <= ToLinearFast(uint8(i-1)) {
			t.Errorf("linear LUT not increasing at %d", i)
		}
	}
}

func TestSharedTables(t *testing.T) {
	lut := LinearLUT()
	alpha := AlphaLUT()
	for i := 0; i < 256; i++ {
		if lut[i] != ToLinearFast(uint8(i)) {
			t.Errorf("LinearLUT()[%d] = %v, want %v", i, lut[i], ToLinearFast(uint8(i)))
		}
		if alpha[i] != AlphaFast(uint8(i)) {
			t.Errorf("AlphaLUT()[%d] = %v, want %v", i, alpha[i], AlphaFast(uint8(i)))
		}
	}
}

func BenchmarkToLinearFast(b *testing.B) {
	var result float32
	for i := 0; i < b.N; i++ {
		result = ToLinearFast(uint8(i))
	}
	_ = result
}

func BenchmarkEncodeU8(b *testing.B) {
	var result uint8
	for i := 0; i < b.N; i++ {
		result = EncodeU8(float32(i&1023) / 1023)
	}
	_ = result
}
