package mobius

import (
	"fmt"
	"math"
)

// Effect identifies one of the eight predefined warps. Each effect is a
// fixed pair of control-point triples in the complex plane, derived from
// the image size; the triples pin down a unique Möbius transformation.
type Effect int

const (
	// Twist rotates the image content clockwise around an off-center pivot.
	Twist Effect = iota

	// HalfTwist is a gentler clockwise rotation.
	HalfTwist

	// Spread pushes content outward from the image center.
	Spread

	// SpreadTwist combines the outward push with a rotation.
	SpreadTwist

	// CounterTwist rotates counter-clockwise.
	CounterTwist

	// CounterHalfTwist is the gentler counter-clockwise variant.
	CounterHalfTwist

	// Inverse turns the image inside out across the vertical midline.
	Inverse

	// InverseSpread combines the inversion with an outward push.
	InverseSpread

	numEffects
)

// Effects returns all eight effects in selection order.
func Effects() []Effect {
	all := make([]Effect, numEffects)
	for i := range all {
		all[i] = Effect(i)
	}
	return all
}

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case Twist:
		return "twist"
	case HalfTwist:
		return "half-twist"
	case Spread:
		return "spread"
	case SpreadTwist:
		return "spread-twist"
	case CounterTwist:
		return "counter-twist"
	case CounterHalfTwist:
		return "counter-half-twist"
	case Inverse:
		return "inverse"
	case InverseSpread:
		return "inverse-spread"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// ParseEffect converts an effect name to an Effect.
func ParseEffect(s string) (Effect, error) {
	for e := Twist; e < numEffects; e++ {
		if e.String() == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown effect %q", ErrInvalidConfig, s)
}

// Valid reports whether e is one of the eight defined effects.
func (e Effect) Valid() bool { return e >= 0 && e < numEffects }

// ControlPoints returns the source and destination control-point triples
// for the effect, derived from the image size. The fractional offsets and
// trigonometric perturbations are fixed constants; the triples scale with
// the image so the visual effect is size-independent.
func (e Effect) ControlPoints(height, width int) (z, w [3]complex128) {
	h := float64(height)
	wd := float64(width)

	sin04 := math.Sin(0.4 * math.Pi)
	cos04 := math.Cos(0.4 * math.Pi)
	sin01 := math.Sin(0.1 * math.Pi)
	cos01 := math.Cos(0.1 * math.Pi)

	// Most effects warp the same source triple; spread variants use their own.
	twistSrc := [3]complex128{
		complex(1, 0.5*h),
		complex(0.5*wd, 0.8*h),
		complex(0.6*wd, 0.5*h),
	}
	halfTwistDst := [3]complex128{
		complex(0.5*wd, h-1),
		complex(0.5*wd+0.4*h, 0.5*h),
		complex(0.5*wd, 0.5*h-0.1*wd),
	}
	inverseDst := [3]complex128{
		complex(wd-1, 0.5*h),
		complex(0.5*wd, 0.1*h),
		complex(1, 0.5*h),
	}

	switch e {
	case Twist:
		z = twistSrc
		w = [3]complex128{
			complex(0.5*wd, h-1),
			complex(0.5*wd+0.3*sin04*h, 0.5*h+0.3*cos04*h),
			complex(0.5*wd+0.1*cos01*h, 0.5*h-0.1*sin01*wd),
		}
	case HalfTwist:
		z = twistSrc
		w = halfTwistDst
	case Spread:
		z = [3]complex128{
			complex(0.3*wd, 0.5*h),
			complex(0.5*wd, 0.7*h),
			complex(0.7*wd, 0.5*h),
		}
		w = [3]complex128{
			complex(0.2*wd, 0.5*h),
			complex(0.5*wd, 0.8*h),
			complex(0.8*wd, 0.5*h),
		}
	case SpreadTwist:
		z = [3]complex128{
			complex(0.3*wd, 0.3*h),
			complex(0.6*wd, 0.8*h),
			complex(0.7*wd, 0.3*h),
		}
		w = [3]complex128{
			complex(0.2*wd, 0.3*h),
			complex(0.6*wd, 0.9*h),
			complex(0.8*wd, 0.2*h),
		}
	case CounterTwist:
		// Shares HalfTwist's destination triple; kept as its own tag so
		// effect selection stays uniform over all eight entries.
		z = twistSrc
		w = halfTwistDst
	case CounterHalfTwist:
		// The last destination point perturbs its real part by the width
		// rather than the height, unlike Twist.
		z = twistSrc
		w = [3]complex128{
			complex(0.5*wd, h-1),
			complex(0.5*wd+0.3*sin04*h, 0.5*h+0.3*cos04*h),
			complex(0.5*wd+0.1*cos01*wd, 0.5*h-0.1*sin01*wd),
		}
	case Inverse:
		z = [3]complex128{
			complex(1, 0.5*h),
			complex(0.5*wd, 0.9*h),
			complex(wd-1, 0.5*h),
		}
		w = inverseDst
	case InverseSpread:
		z = [3]complex128{
			complex(0.1*wd, 0.5*h),
			complex(0.5*wd, 0.8*h),
			complex(0.9*wd, 0.5*h),
		}
		w = inverseDst
	}
	return z, w
}

// Coefficients computes the Möbius coefficients mapping the effect's source
// control points onto its destination points for the given image size.
func (e Effect) Coefficients(height, width int) Coefficients {
	z, w := e.ControlPoints(height, width)
	return SolveCoefficients(z, w)
}
