package mobius

import "errors"

// Common errors.
var (
	// ErrInvalidConfig is returned by New when a constructor option or
	// the image size is out of range.
	ErrInvalidConfig = errors.New("mobius: invalid configuration")

	// ErrInvalidInput is returned by Apply when the sample is missing
	// its two spatial dimensions.
	ErrInvalidInput = errors.New("mobius: invalid input sample")
)
