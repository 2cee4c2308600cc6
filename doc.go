// Package mobius implements a projective (Möbius) warp used as a
// training-time image-augmentation transform.
//
// # Overview
//
// A Möbius transformation f(z) = (a·z + b)/(c·z + d) on the complex plane
// maps circles and lines to circles and lines. Warping an image through one
// produces twist, spread, and inversion effects that preserve local shape,
// which makes the family useful for data augmentation. Eight fixed effects
// are predefined; each invocation either no-ops (with probability 1−p) or
// picks one effect at random and resamples the image through its inverse
// map.
//
// # Quick Start
//
//	w, err := mobius.New(224, 224, mobius.WithProbability(0.6))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sample := tensor.FromImage(img)
//	out, err := w.Apply(sample)
//
// # Coordinate System
//
// Pixel coordinates follow standard image conventions: origin (0,0) at the
// top-left, x increasing right, y increasing down. A coordinate (x, y) is
// treated as the complex number x + iy.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Warp, Effect, Coefficients, Source
//   - tensor: the float64 H×W×C image array and image.Image conversions
//   - resample: the geometric resampler (interpolation orders 0-3,
//     scipy-compatible edge modes)
//
// # Randomness
//
// Apply consumes two random draws per warped call. The random source is
// injectable via WithRandSource so pipelines can seed reproducible runs
// and tests can supply deterministic sequences.
package mobius

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
