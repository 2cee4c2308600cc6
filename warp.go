package mobius

import (
	"fmt"
	"image"

	"github.com/pixelforge/mobius/resample"
	"github.com/pixelforge/mobius/tensor"
)

// Warp applies a randomly selected Möbius transformation to image samples.
//
// The eight coefficient sets are computed once at construction from the
// target image size. A Warp is immutable afterwards and safe for read-only
// sharing across goroutines, as long as its random Source is; the default
// source and those returned by NewSource are.
type Warp struct {
	height int
	width  int

	probability float64
	order       int
	mode        resample.Mode
	fill        float64

	coeffs    [numEffects]Coefficients
	source    Source
	resampler resample.Resampler
}

// New creates a Warp for images of the given size.
//
// Returns an ErrInvalidConfig-wrapped error if height or width is
// non-positive, the probability is outside [0, 1], the interpolation order
// is outside [0, 3], or the edge mode is unknown.
func New(height, width int, opts ...Option) (*Warp, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, height, width)
	}
	if o.probability < 0 || o.probability > 1 {
		return nil, fmt.Errorf("%w: probability %v outside [0, 1]", ErrInvalidConfig, o.probability)
	}
	if o.order < 0 || o.order > resample.MaxOrder {
		return nil, fmt.Errorf("%w: interpolation order %d outside [0, %d]", ErrInvalidConfig, o.order, resample.MaxOrder)
	}
	if !o.mode.Valid() {
		return nil, fmt.Errorf("%w: edge mode %d", ErrInvalidConfig, uint8(o.mode))
	}

	w := &Warp{
		height:      height,
		width:       width,
		probability: o.probability,
		order:       o.order,
		mode:        o.mode,
		fill:        o.fill,
		source:      o.source,
		resampler:   o.resampler,
	}
	for _, e := range Effects() {
		w.coeffs[e] = e.Coefficients(height, width)
	}
	return w, nil
}

// NewSquare creates a Warp for square images of the given side length.
func NewSquare(size int, opts ...Option) (*Warp, error) {
	return New(size, size, opts...)
}

// Size returns the image size the warp was built for.
func (w *Warp) Size() (height, width int) { return w.height, w.width }

// Probability returns the configured warp probability.
func (w *Warp) Probability() float64 { return w.probability }

// Coefficients returns the precomputed coefficients for an effect.
// The zero Coefficients value is returned for an invalid effect.
func (w *Warp) Coefficients(e Effect) Coefficients {
	if !e.Valid() {
		return Coefficients{}
	}
	return w.coeffs[e]
}

// Apply warps the sample with probability p, choosing one of the eight
// effects uniformly at random. With probability 1−p the input is returned
// unchanged and not copied; treat the result as read-only shared with the
// input in that case.
//
// Exactly one continuous and one discrete random draw are consumed when the
// warp fires; the skip path consumes only the continuous draw.
func (w *Warp) Apply(sample *tensor.Array) (*tensor.Array, error) {
	if sample == nil {
		return nil, fmt.Errorf("%w: nil sample", ErrInvalidInput)
	}
	// probability 0 disables the transform outright, with no draw.
	if w.probability == 0 || w.source.Uniform() > w.probability {
		Logger().Debug("mobius warp skipped", "probability", w.probability)
		return sample, nil
	}
	e := Effect(w.source.IntN(int(numEffects)))
	return w.warp(sample, e)
}

// ApplyEffect warps the sample with a specific effect, bypassing both
// random draws. Useful for reproducing a particular augmentation.
func (w *Warp) ApplyEffect(sample *tensor.Array, e Effect) (*tensor.Array, error) {
	if sample == nil {
		return nil, fmt.Errorf("%w: nil sample", ErrInvalidInput)
	}
	if !e.Valid() {
		return nil, fmt.Errorf("%w: effect %d", ErrInvalidConfig, int(e))
	}
	return w.warp(sample, e)
}

// ApplyImage is a convenience wrapper that converts an image.Image through
// the tensor representation, applies the warp, and converts back.
func (w *Warp) ApplyImage(img image.Image) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	out, err := w.Apply(tensor.FromImage(img))
	if err != nil {
		return nil, err
	}
	return out.ToImage(), nil
}

// warp delegates pixel resampling to the configured resampler using the
// inverse map of the chosen effect. Resampler errors propagate unchanged.
func (w *Warp) warp(sample *tensor.Array, e Effect) (*tensor.Array, error) {
	Logger().Debug("applying mobius warp",
		"effect", e.String(),
		"order", w.order,
		"mode", w.mode.String(),
	)
	return w.resampler.Transform(sample, w.coeffs[e].MapFunc(), resample.Options{
		Order: w.order,
		Mode:  w.mode,
		Fill:  w.fill,
	})
}
