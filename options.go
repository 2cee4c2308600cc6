package mobius

import "github.com/pixelforge/mobius/resample"

// Option configures a Warp during creation.
//
// Example:
//
//	// Defaults: p=0.6, quadratic interpolation, constant edge fill of 127.
//	w, err := mobius.New(224, 224)
//
//	// Always warp, bilinear, black fill:
//	w, err := mobius.New(224, 224,
//	    mobius.WithProbability(1),
//	    mobius.WithOrder(1),
//	    mobius.WithFillValue(0),
//	)
type Option func(*warpOptions)

// warpOptions holds optional configuration for Warp creation.
type warpOptions struct {
	probability float64
	order       int
	mode        resample.Mode
	fill        float64
	source      Source
	resampler   resample.Resampler
}

// defaultOptions returns the default warp options.
func defaultOptions() warpOptions {
	return warpOptions{
		probability: 0.6,
		order:       2,
		mode:        resample.ModeConstant,
		fill:        127,
		source:      globalSource{},
		resampler:   resample.CPU{},
	}
}

// WithProbability sets the fraction of Apply calls that perform the warp.
// Must be in [0, 1]; 0 disables the warp and 1 always applies it.
func WithProbability(p float64) Option {
	return func(o *warpOptions) { o.probability = p }
}

// WithOrder sets the interpolation order passed to the resampler:
// 0 nearest, 1 bilinear, 2 quadratic B-spline, 3 cubic B-spline.
// Smaller is faster; larger is smoother.
func WithOrder(order int) Option {
	return func(o *warpOptions) { o.order = order }
}

// WithEdgeMode sets how the resampler fills samples that map outside the
// image bounds.
func WithEdgeMode(mode resample.Mode) Option {
	return func(o *warpOptions) { o.mode = mode }
}

// WithFillValue sets the constant used when the edge mode is
// resample.ModeConstant, and for pixels whose inverse-mapped coordinate
// is non-finite.
func WithFillValue(v float64) Option {
	return func(o *warpOptions) { o.fill = v }
}

// WithRandSource injects the random source consumed by Apply. Use
// NewSource for a seeded, reproducible run, or supply a test double.
func WithRandSource(src Source) Option {
	return func(o *warpOptions) {
		if src != nil {
			o.source = src
		}
	}
}

// WithResampler injects a custom geometric resampler. The default is the
// built-in CPU implementation.
func WithResampler(r resample.Resampler) Option {
	return func(o *warpOptions) {
		if r != nil {
			o.resampler = r
		}
	}
}
