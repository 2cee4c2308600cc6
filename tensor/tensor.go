// Package tensor provides the float image array that the mobius transform
// and the resampler operate on.
//
// An Array stores pixels as float64 values in the 0-255 range, laid out
// row-major with interleaved channels. Values may leave the 0-255 range
// during resampling; ToImage clamps on the way out.
package tensor

import "errors"

// Common errors for array construction.
var (
	// ErrInvalidDimensions is returned when height, width, or channels is non-positive.
	ErrInvalidDimensions = errors.New("tensor: invalid dimensions")
)

// Array is a height x width x channels pixel buffer backed by a flat
// float64 slice, row-major with interleaved channels.
//
// Thread safety: an Array is safe for concurrent read access. Writes
// require external synchronization.
type Array struct {
	height   int
	width    int
	channels int
	data     []float64
}

// New creates a zero-filled array with the given dimensions.
func New(height, width, channels int) (*Array, error) {
	if height <= 0 || width <= 0 || channels <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Array{
		height:   height,
		width:    width,
		channels: channels,
		data:     make([]float64, height*width*channels),
	}, nil
}

// Full creates an array with every element set to v.
func Full(height, width, channels int, v float64) (*Array, error) {
	a, err := New(height, width, channels)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = v
	}
	return a, nil
}

// Height returns the number of rows.
func (a *Array) Height() int { return a.height }

// Width returns the number of columns.
func (a *Array) Width() int { return a.width }

// Channels returns the number of channels per pixel.
func (a *Array) Channels() int { return a.channels }

// Data returns the backing slice. The layout is row-major with
// interleaved channels: index = (y*width + x)*channels + c.
func (a *Array) Data() []float64 { return a.data }

// At returns the value at row y, column x, channel c.
// Out-of-bounds coordinates return 0.
func (a *Array) At(y, x, c int) float64 {
	if y < 0 || y >= a.height || x < 0 || x >= a.width || c < 0 || c >= a.channels {
		return 0
	}
	return a.data[(y*a.width+x)*a.channels+c]
}

// Set sets the value at row y, column x, channel c.
// Out-of-bounds coordinates are ignored.
func (a *Array) Set(y, x, c int, v float64) {
	if y < 0 || y >= a.height || x < 0 || x >= a.width || c < 0 || c >= a.channels {
		return
	}
	a.data[(y*a.width+x)*a.channels+c] = v
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{
		height:   a.height,
		width:    a.width,
		channels: a.channels,
		data:     data,
	}
}

// SameShape reports whether b has identical dimensions.
func (a *Array) SameShape(b *Array) bool {
	return b != nil && a.height == b.height && a.width == b.width && a.channels == b.channels
}
