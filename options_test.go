package pixel

import (
	"image"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.background != DefaultBackground {
		t.Errorf("background = %#08x, want %#08x", uint32(o.background), uint32(DefaultBackground))
	}
	if o.letterbox != DefaultLetterbox {
		t.Errorf("letterbox = %#08x, want %#08x", uint32(o.letterbox), uint32(DefaultLetterbox))
	}
	if o.detector != nil {
		t.Error("detector should be nil until NewFrameBuffer fills it in")
	}
}

func TestNewFrameBufferDefaultDetector(t *testing.T) {
	fb := newTestFrameBuffer(t, 128, 128)
	if _, ok := fb.detector.(*hashState); !ok {
		t.Errorf("detector = %T, want *hashState", fb.detector)
	}

	fb = newTestFrameBuffer(t, 128, 128, WithDetector(nil))
	if _, ok := fb.detector.(*hashState); !ok {
		t.Errorf("WithDetector(nil): detector = %T, want *hashState", fb.detector)
	}
}

func TestWithBackground(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want Color
	}{
		{"opaque", RGB(29, 43, 83), RGB(29, 43, 83)},
		{"translucent forced opaque", ARGB(10, 1, 2, 3), RGB(1, 2, 3)},
		{"transparent black", 0, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := newTestFrameBuffer(t, 128, 128, WithBackground(tt.in))
			fb.Render(nil, nil)
			if got := Color(fb.Logical()[0]); got != tt.want {
				t.Errorf("background pixel = %#08x, want %#08x", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestWithLetterbox(t *testing.T) {
	lb := Hex("#29adff")
	fb := newTestFrameBuffer(t, 300, 128, WithLetterbox(lb))
	fb.Render(newTestAtlas(t), []Command{Sprite(image.Rect(0, 0, 8, 8), spriteRed)})

	// Multiplier 1, bars of 86 pixels on each side.
	px := fb.Pixels()
	if got := Color(px[0]); got != lb {
		t.Errorf("left bar = %#08x, want %#08x", uint32(got), uint32(lb))
	}
	if got := Color(px[299]); got != lb {
		t.Errorf("right bar = %#08x, want %#08x", uint32(got), uint32(lb))
	}
	if got := Color(px[86]); got != colorRed {
		t.Errorf("first viewport pixel = %#08x, want %#08x", uint32(got), uint32(colorRed))
	}
}

func TestMultipleOptions(t *testing.T) {
	d := &countingDetector{}
	fb := newTestFrameBuffer(t, 128, 128,
		WithBackground(White),
		WithLetterbox(Black),
		WithDetector(d))

	if fb.detector != d {
		t.Error("custom detector not installed")
	}
	if fb.opts.background != White || fb.opts.letterbox != Black {
		t.Errorf("options = %+v", fb.opts)
	}
}
