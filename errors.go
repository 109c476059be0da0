package pixel

import "errors"

// Common errors for frame buffer and atlas construction.
var (
	// ErrInvalidDimensions is returned when a width or height is out of range.
	ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

	// ErrDataTooSmall is returned when provided pixel data is smaller than required.
	ErrDataTooSmall = errors.New("pixel: data buffer too small")
)
