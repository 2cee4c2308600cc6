package resample

import "fmt"

// Mode selects how sample taps outside the source bounds are handled.
// The folding semantics match scipy.ndimage's boundary modes, which the
// original augmentation pipelines were written against.
type Mode uint8

const (
	// ModeConstant fills out-of-bounds taps with Options.Fill.
	ModeConstant Mode = iota

	// ModeNearest clamps out-of-bounds taps to the nearest edge pixel.
	ModeNearest

	// ModeReflect reflects about the edge of the last pixel:
	// (d c b a | a b c d | d c b a).
	ModeReflect

	// ModeWrap tiles the image periodically: (a b c d | a b c d | a b c d).
	ModeWrap

	// ModeMirror reflects about the center of the last pixel:
	// (d c b | a b c d | c b a).
	ModeMirror

	modeCount
)

// String returns the mode name used by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeConstant:
		return "constant"
	case ModeNearest:
		return "nearest"
	case ModeReflect:
		return "reflect"
	case ModeWrap:
		return "wrap"
	case ModeMirror:
		return "mirror"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	for m := ModeConstant; m < modeCount; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Valid reports whether m is one of the defined edge modes.
func (m Mode) Valid() bool { return m < modeCount }

// foldIndex maps a possibly out-of-bounds tap index into [0, n).
// The second return is false when the tap should use the fill value
// instead (ModeConstant only).
func foldIndex(i, n int, mode Mode) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch mode {
	case ModeConstant:
		return 0, false
	case ModeNearest:
		if i < 0 {
			return 0, true
		}
		return n - 1, true
	case ModeWrap:
		i %= n
		if i < 0 {
			i += n
		}
		return i, true
	case ModeReflect:
		// Period 2n: a b c d d c b a.
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i, true
	case ModeMirror:
		// Period 2n-2: a b c d c b. Degenerates to the single pixel for n=1.
		if n == 1 {
			return 0, true
		}
		period := 2*n - 2
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - i
		}
		return i, true
	default:
		return 0, false
	}
}
