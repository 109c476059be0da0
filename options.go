package pixel

// Option configures a FrameBuffer during creation.
// Use functional options to customize FrameBuffer behavior.
//
// Example:
//
//	// Default black background and bars
//	fb, err := pixel.NewFrameBuffer(800, 600)
//
//	// Custom colors
//	fb, err := pixel.NewFrameBuffer(800, 600,
//	    pixel.WithBackground(pixel.Hex("#1d2b53")),
//	    pixel.WithLetterbox(pixel.Black))
type Option func(*options)

// options holds optional configuration for FrameBuffer creation.
type options struct {
	background Color
	letterbox  Color
	detector   ChangeDetector
}

// defaultOptions returns the default frame buffer options.
func defaultOptions() options {
	return options{
		background: DefaultBackground,
		letterbox:  DefaultLetterbox,
		detector:   nil, // Will be set to the whole-frame hash if nil
	}
}

// WithBackground sets the color the logical buffer is cleared to before
// every redraw. The logical buffer is always opaque, so alpha is forced to 255.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c.Opaque()
	}
}

// WithLetterbox sets the color the physical buffer is filled with when it is
// (re)allocated. Only the letterbox bars keep this color after a redraw.
func WithLetterbox(c Color) Option {
	return func(o *options) {
		o.letterbox = c
	}
}

// WithDetector replaces the whole-frame hash with a custom change detector.
// A nil detector keeps the default.
func WithDetector(d ChangeDetector) Option {
	return func(o *options) {
		o.detector = d
	}
}
