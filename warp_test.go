package mobius

import (
	"errors"
	"fmt"
	"image"
	"math"
	"testing"

	"github.com/pixelforge/mobius/resample"
	"github.com/pixelforge/mobius/tensor"
)

// scriptedSource replays fixed random draws.
type scriptedSource struct {
	uniforms []float64
	ints     []int
	u, i     int
}

func (s *scriptedSource) Uniform() float64 {
	v := s.uniforms[s.u]
	s.u++
	return v
}

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[s.i]
	s.i++
	return v % n
}

// countingResampler counts Transform invocations and delegates to the CPU
// implementation.
type countingResampler struct {
	calls int
}

func (c *countingResampler) Transform(src *tensor.Array, inv resample.MapFunc, opts resample.Options) (*tensor.Array, error) {
	c.calls++
	return resample.CPU{}.Transform(src, inv, opts)
}

func rampSample(t *testing.T, h, w, ch int) *tensor.Array {
	t.Helper()
	a, err := tensor.New(h, w, ch)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Data() {
		a.Data()[i] = float64(i % 251)
	}
	return a
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		height int
		width  int
		opts   []Option
	}{
		{"zero height", 0, 10, nil},
		{"negative width", 10, -3, nil},
		{"probability below range", 10, 10, []Option{WithProbability(-0.1)}},
		{"probability above range", 10, 10, []Option{WithProbability(1.5)}},
		{"negative order", 10, 10, []Option{WithOrder(-1)}},
		{"order too high", 10, 10, []Option{WithOrder(4)}},
		{"unknown edge mode", 10, 10, []Option{WithEdgeMode(resample.Mode(200))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.height, tt.width, tt.opts...); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	w, err := NewSquare(224)
	if err != nil {
		t.Fatal(err)
	}
	if p := w.Probability(); p != 0.6 {
		t.Errorf("default probability = %v, want 0.6", p)
	}
	h, wd := w.Size()
	if h != 224 || wd != 224 {
		t.Errorf("Size() = %dx%d, want 224x224", h, wd)
	}
}

func TestIdentityAtZeroProbability(t *testing.T) {
	counter := &countingResampler{}
	w, err := NewSquare(8,
		WithProbability(0),
		WithResampler(counter),
	)
	if err != nil {
		t.Fatal(err)
	}
	sample := rampSample(t, 8, 8, 3)
	for i := 0; i < 20; i++ {
		out, err := w.Apply(sample)
		if err != nil {
			t.Fatal(err)
		}
		if out != sample {
			t.Fatal("p=0 did not return the input unchanged")
		}
	}
	if counter.calls != 0 {
		t.Errorf("resampler called %d times at p=0", counter.calls)
	}
}

func TestAlwaysWarpAtFullProbability(t *testing.T) {
	counter := &countingResampler{}
	w, err := NewSquare(8,
		WithProbability(1),
		WithOrder(1),
		WithResampler(counter),
		WithRandSource(NewSource(1)),
	)
	if err != nil {
		t.Fatal(err)
	}
	sample := rampSample(t, 8, 8, 1)
	const n = 25
	for i := 0; i < n; i++ {
		if _, err := w.Apply(sample); err != nil {
			t.Fatal(err)
		}
	}
	if counter.calls != n {
		t.Errorf("resampler called %d times over %d calls at p=1", counter.calls, n)
	}
}

func TestRandomDrawCount(t *testing.T) {
	t.Run("warp path consumes both draws", func(t *testing.T) {
		src := &scriptedSource{uniforms: []float64{0.5}, ints: []int{3}}
		w, err := NewSquare(8, WithProbability(0.6), WithOrder(0), WithRandSource(src))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Apply(rampSample(t, 8, 8, 1)); err != nil {
			t.Fatal(err)
		}
		if src.u != 1 || src.i != 1 {
			t.Errorf("consumed %d uniform and %d int draws, want 1 and 1", src.u, src.i)
		}
	})

	t.Run("skip path consumes only the uniform draw", func(t *testing.T) {
		src := &scriptedSource{uniforms: []float64{0.9}}
		w, err := NewSquare(8, WithProbability(0.6), WithRandSource(src))
		if err != nil {
			t.Fatal(err)
		}
		sample := rampSample(t, 8, 8, 1)
		out, err := w.Apply(sample)
		if err != nil {
			t.Fatal(err)
		}
		if out != sample {
			t.Error("skip path did not return the input")
		}
		if src.u != 1 || src.i != 0 {
			t.Errorf("consumed %d uniform and %d int draws, want 1 and 0", src.u, src.i)
		}
	})
}

func TestApplyInvalidInput(t *testing.T) {
	w, err := NewSquare(8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Apply(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Apply(nil) error = %v, want ErrInvalidInput", err)
	}
	if _, err := w.ApplyEffect(nil, Spread); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ApplyEffect(nil) error = %v, want ErrInvalidInput", err)
	}
	if _, err := w.ApplyEffect(rampSample(t, 8, 8, 1), Effect(42)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ApplyEffect(invalid effect) error = %v, want ErrInvalidConfig", err)
	}
	if _, err := w.ApplyImage(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ApplyImage(nil) error = %v, want ErrInvalidInput", err)
	}
}

func TestShapePreservation(t *testing.T) {
	sample := rampSample(t, 8, 6, 3)
	for order := 0; order <= resample.MaxOrder; order++ {
		w, err := New(8, 6, WithOrder(order))
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range Effects() {
			t.Run(fmt.Sprintf("order %d %s", order, e), func(t *testing.T) {
				out, err := w.ApplyEffect(sample, e)
				if err != nil {
					t.Fatal(err)
				}
				if !out.SameShape(sample) {
					t.Errorf("output shape %dx%dx%d, want %dx%dx%d",
						out.Height(), out.Width(), out.Channels(), 8, 6, 3)
				}
			})
		}
	}
}

func TestDeterminismWithFixedSeed(t *testing.T) {
	sample := rampSample(t, 16, 16, 3)

	run := func() *tensor.Array {
		w, err := NewSquare(16,
			WithProbability(0.7),
			WithOrder(2),
			WithRandSource(NewSource(42)),
		)
		if err != nil {
			t.Fatal(err)
		}
		var out *tensor.Array
		for i := 0; i < 5; i++ {
			var err error
			out, err = w.Apply(sample)
			if err != nil {
				t.Fatal(err)
			}
		}
		return out
	}

	a, b := run(), run()
	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			t.Fatalf("outputs differ at index %d: %v vs %v", i, a.Data()[i], b.Data()[i])
		}
	}
}

// The 4x4 constant-image case pins down end-to-end behavior: pixels whose
// inverse-mapped source stays inside the image keep the constant value, and
// pixels mapped entirely outside take the fill.
func TestEndToEndSpreadConstantImage(t *testing.T) {
	const v = 10.0
	sample, err := tensor.Full(4, 4, 1, v)
	if err != nil {
		t.Fatal(err)
	}

	w, err := New(4, 4,
		WithProbability(1),
		WithOrder(1),
		WithEdgeMode(resample.ModeConstant),
		WithFillValue(0),
	)
	if err != nil {
		t.Fatal(err)
	}
	out, err := w.ApplyEffect(sample, Spread)
	if err != nil {
		t.Fatal(err)
	}
	if !out.SameShape(sample) {
		t.Fatalf("output shape %dx%dx%d, want 4x4x1", out.Height(), out.Width(), out.Channels())
	}

	co := w.Coefficients(Spread)
	var sawInterior, sawFill bool
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := out.At(y, x, 0)
			sx, sy := co.Invert(float64(x), float64(y))
			switch {
			case sx >= 0 && sx <= 3 && sy >= 0 && sy <= 3:
				// Bilinear blend of equal neighbors collapses to the value.
				if math.Abs(got-v) > 1e-9 {
					t.Errorf("pixel (%d,%d) maps inside (%.2f, %.2f): got %v, want %v", x, y, sx, sy, got, v)
				}
				sawInterior = true
			case sx < -1 || sx > 4 || sy < -1 || sy > 4:
				if got != 0 {
					t.Errorf("pixel (%d,%d) maps outside (%.2f, %.2f): got %v, want 0", x, y, sx, sy, got)
				}
				sawFill = true
			default:
				// Straddling the border: a blend of value and fill.
				if got < 0 || got > v {
					t.Errorf("pixel (%d,%d) border blend out of range: %v", x, y, got)
				}
			}
		}
	}
	if !sawInterior {
		t.Error("no pixel mapped inside the source bounds")
	}
	_ = sawFill // the spread warp at 4x4 may or may not push pixels fully outside
}

func TestApplyImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 200
	}

	w, err := NewSquare(8, WithProbability(1), WithOrder(1), WithRandSource(NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	out, err := w.ApplyImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Errorf("output bounds = %v, want 8x8", got)
	}
	if _, ok := out.(*image.Gray); !ok {
		t.Errorf("output type = %T, want *image.Gray", out)
	}
}
