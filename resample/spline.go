package resample

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/pixelforge/mobius/tensor"
)

// Interpolation at orders 2 and 3 uses B-spline basis functions, which only
// interpolate the original samples after the data has been run through the
// classical recursive prefilter (Unser, "Splines: a perfect fit for signal
// and image processing"). This mirrors what scipy.ndimage does under the
// hood for order >= 2.

// splinePoles returns the filter poles for the given spline order.
func splinePoles(order int) []float64 {
	switch order {
	case 2:
		return []float64{math.Sqrt(8) - 3}
	case 3:
		return []float64{math.Sqrt(3) - 2}
	default:
		return nil
	}
}

// bspline2 evaluates the quadratic B-spline basis at t.
func bspline2(t float64) float64 {
	t = math.Abs(t)
	switch {
	case t < 0.5:
		return 0.75 - t*t
	case t < 1.5:
		d := 1.5 - t
		return 0.5 * d * d
	default:
		return 0
	}
}

// bspline3 evaluates the cubic B-spline basis at t.
func bspline3(t float64) float64 {
	t = math.Abs(t)
	switch {
	case t < 1:
		return 2.0/3.0 - t*t + 0.5*t*t*t
	case t < 2:
		d := 2 - t
		return d * d * d / 6.0
	default:
		return 0
	}
}

// prefilter converts sample values into B-spline coefficients for the given
// order, filtering every row and column of every channel independently.
// It returns a new flat buffer with the same layout as src.Data().
func prefilter(src *tensor.Array, order int) []float64 {
	poles := splinePoles(order)
	data := make([]float64, len(src.Data()))
	copy(data, src.Data())
	if poles == nil {
		return data
	}

	h, w, ch := src.Height(), src.Width(), src.Channels()
	line := make([]float64, max(h, w))

	for c := 0; c < ch; c++ {
		// Rows.
		for y := 0; y < h; y++ {
			row := line[:w]
			for x := 0; x < w; x++ {
				row[x] = data[(y*w+x)*ch+c]
			}
			filterLine(row, poles)
			for x := 0; x < w; x++ {
				data[(y*w+x)*ch+c] = row[x]
			}
		}
		// Columns.
		for x := 0; x < w; x++ {
			col := line[:h]
			for y := 0; y < h; y++ {
				col[y] = data[(y*w+x)*ch+c]
			}
			filterLine(col, poles)
			for y := 0; y < h; y++ {
				data[(y*w+x)*ch+c] = col[y]
			}
		}
	}
	return data
}

// filterLine runs the causal/anticausal recursive filter in place,
// using mirror boundary conditions.
func filterLine(c []float64, poles []float64) {
	n := len(c)
	if n == 1 {
		return
	}

	lambda := 1.0
	for _, z := range poles {
		lambda *= (1 - z) * (1 - 1/z)
	}
	floats.Scale(lambda, c)

	for _, z := range poles {
		c[0] = initialCausal(c, z)
		for i := 1; i < n; i++ {
			c[i] += z * c[i-1]
		}
		c[n-1] = initialAntiCausal(c, z)
		for i := n - 2; i >= 0; i-- {
			c[i] = z * (c[i+1] - c[i])
		}
	}
}

// initialCausal computes the starting value of the causal filter pass,
// truncating the geometric sum once added terms fall below tolerance.
func initialCausal(c []float64, z float64) float64 {
	const tol = 1e-15
	n := len(c)
	horizon := int(math.Ceil(math.Log(tol) / math.Log(math.Abs(z))))
	if horizon < n {
		zn := z
		sum := c[0]
		for i := 1; i < horizon; i++ {
			sum += zn * c[i]
			zn *= z
		}
		return sum
	}

	// Short signal: exact sum over the mirrored period.
	iz := 1 / z
	zn := z
	z2n := math.Pow(z, float64(n-1))
	sum := c[0] + z2n*c[n-1]
	z2n *= z2n * iz
	for i := 1; i <= n-2; i++ {
		sum += (zn + z2n) * c[i]
		zn *= z
		z2n *= iz
	}
	return sum / (1 - math.Pow(z, float64(2*n-2)))
}

// initialAntiCausal computes the starting value of the anticausal pass.
func initialAntiCausal(c []float64, z float64) float64 {
	n := len(c)
	return (z / (z*z - 1)) * (z*c[n-2] + c[n-1])
}
