// Package resample implements the geometric resampler used by the mobius
// warp: for every output pixel it evaluates an inverse coordinate map,
// then interpolates the source array at the mapped (generally fractional,
// possibly out-of-bounds) location.
package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/pixelforge/mobius/tensor"
)

// Common errors.
var (
	// ErrUnsupportedOrder is returned for interpolation orders outside [0, 3].
	ErrUnsupportedOrder = errors.New("resample: unsupported interpolation order")

	// ErrUnknownMode is returned for an unrecognized edge mode.
	ErrUnknownMode = errors.New("resample: unknown edge mode")

	// ErrNilSource is returned when the source array is nil.
	ErrNilSource = errors.New("resample: nil source array")
)

// MaxOrder is the highest supported interpolation order.
const MaxOrder = 3

// MapFunc is an inverse coordinate map. Given an output pixel coordinate
// (x column, y row) it returns the source coordinate to sample from.
// It must be pure: the resampler calls it once per output pixel and may
// pass coordinates that map outside the source bounds. Non-finite results
// are treated as out-of-bounds.
type MapFunc func(x, y float64) (sx, sy float64)

// Options configures a resampling pass.
type Options struct {
	// Order is the interpolation order: 0 nearest, 1 bilinear,
	// 2 quadratic B-spline, 3 cubic B-spline.
	Order int

	// Mode selects the edge policy for out-of-bounds taps.
	Mode Mode

	// Fill is the constant used by ModeConstant and for non-finite
	// mapped coordinates.
	Fill float64
}

// Resampler transforms an array through an inverse coordinate map.
// The library ships a CPU implementation; the interface exists so callers
// can inject an instrumented or accelerated replacement.
type Resampler interface {
	Transform(src *tensor.Array, inv MapFunc, opts Options) (*tensor.Array, error)
}

// CPU is the default, single-threaded resampler.
type CPU struct{}

// Transform resamples src through inv using CPU{}.
func Transform(src *tensor.Array, inv MapFunc, opts Options) (*tensor.Array, error) {
	return CPU{}.Transform(src, inv, opts)
}

// Transform resamples src through the inverse map. The output has the same
// shape as the input. Every channel of an output pixel is sampled at the
// same mapped coordinate.
func (CPU) Transform(src *tensor.Array, inv MapFunc, opts Options) (*tensor.Array, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if opts.Order < 0 || opts.Order > MaxOrder {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedOrder, opts.Order)
	}
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(opts.Mode))
	}

	h, w, ch := src.Height(), src.Width(), src.Channels()
	samples := src.Data()
	if opts.Order >= 2 {
		samples = prefilter(src, opts.Order)
	}

	dst, err := tensor.New(h, w, ch)
	if err != nil {
		return nil, err
	}
	out := dst.Data()

	var wx, wy [4]float64
	acc := make([]float64, ch)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := inv(float64(x), float64(y))
			di := (y*w + x) * ch

			if !finite(sx) || !finite(sy) {
				for c := 0; c < ch; c++ {
					out[di+c] = opts.Fill
				}
				continue
			}

			baseX, nx := tapWeights(opts.Order, sx, &wx)
			baseY, ny := tapWeights(opts.Order, sy, &wy)

			for c := 0; c < ch; c++ {
				acc[c] = 0
			}
			for j := 0; j < ny; j++ {
				py, okY := foldIndex(baseY+j, h, opts.Mode)
				for i := 0; i < nx; i++ {
					px, okX := foldIndex(baseX+i, w, opts.Mode)
					weight := wx[i] * wy[j]
					if weight == 0 {
						continue
					}
					if !okX || !okY {
						for c := 0; c < ch; c++ {
							acc[c] += weight * opts.Fill
						}
						continue
					}
					si := (py*w + px) * ch
					for c := 0; c < ch; c++ {
						acc[c] += weight * samples[si+c]
					}
				}
			}
			copy(out[di:di+ch], acc)
		}
	}
	return dst, nil
}

// tapWeights fills w with the interpolation weights for sampling at
// coordinate s, returning the index of the first tap and the tap count.
func tapWeights(order int, s float64, w *[4]float64) (base, n int) {
	switch order {
	case 0:
		w[0] = 1
		return int(math.Floor(s + 0.5)), 1
	case 1:
		base = int(math.Floor(s))
		t := s - float64(base)
		w[0] = 1 - t
		w[1] = t
		return base, 2
	case 2:
		base = int(math.Floor(s+0.5)) - 1
		for i := 0; i < 3; i++ {
			w[i] = bspline2(s - float64(base+i))
		}
		return base, 3
	default:
		base = int(math.Floor(s)) - 1
		for i := 0; i < 4; i++ {
			w[i] = bspline3(s - float64(base+i))
		}
		return base, 4
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
