package chromakey

import "errors"

var (
	// ErrDimensionMismatch is returned when a keyer or compositor receives
	// a background whose size differs from the foreground. Backgrounds must
	// go through Fit first; mismatches are never stretched or letterboxed.
	ErrDimensionMismatch = errors.New("chromakey: foreground and background sizes differ")

	// ErrEmptyFrame is returned when an operation needs at least one pixel.
	ErrEmptyFrame = errors.New("chromakey: empty frame")

	// ErrInvalidPixels is returned when a pixel buffer does not hold
	// exactly width*height*4 samples.
	ErrInvalidPixels = errors.New("chromakey: pixel buffer does not match dimensions")

	// ErrUnknownKeyer is returned for an unrecognised keyer name.
	ErrUnknownKeyer = errors.New("chromakey: unknown keyer")
)
