package mobius

import "github.com/pixelforge/mobius/resample"

// Coefficients holds the four complex coefficients of a Möbius
// transformation f(z) = (A·z + B) / (C·z + D).
//
// Coefficients are projective: scaling all four by the same nonzero
// constant describes the same map, and no normalization (such as
// AD − BC = 1) is enforced.
type Coefficients struct {
	A, B, C, D complex128
}

// SolveCoefficients returns the coefficients of the Möbius transformation
// mapping z[i] to w[i] for i = 0, 1, 2, using the classical closed-form
// determinant solution. The three points of each triple must be distinct
// and non-degenerate; the predefined effect tables always are.
func SolveCoefficients(z, w [3]complex128) Coefficients {
	return Coefficients{
		A: det3(
			z[0]*w[0], w[0], 1,
			z[1]*w[1], w[1], 1,
			z[2]*w[2], w[2], 1,
		),
		B: det3(
			z[0]*w[0], z[0], w[0],
			z[1]*w[1], z[1], w[1],
			z[2]*w[2], z[2], w[2],
		),
		C: det3(
			z[0], w[0], 1,
			z[1], w[1], 1,
			z[2], w[2], 1,
		),
		D: det3(
			z[0]*w[0], z[0], 1,
			z[1]*w[1], z[1], 1,
			z[2]*w[2], z[2], 1,
		),
	}
}

// det3 computes the determinant of a 3x3 complex matrix given in row-major
// order, by cofactor expansion along the first row.
func det3(m00, m01, m02, m10, m11, m12, m20, m21, m22 complex128) complex128 {
	return m00*(m11*m22-m12*m21) -
		m01*(m10*m22-m12*m20) +
		m02*(m10*m21-m11*m20)
}

// Apply evaluates the forward map f(z) = (A·z + B) / (C·z + D).
// At the pole z = -D/C the result is non-finite.
func (co Coefficients) Apply(z complex128) complex128 {
	return (co.A*z + co.B) / (co.C*z + co.D)
}

// Invert evaluates the algebraic inverse of the forward map at the point
// x + iy and returns the real and imaginary parts of the result:
//
//	f⁻¹(z) = (D·z − B) / (−C·z + A)
//
// When the denominator vanishes the returned coordinates are non-finite;
// the resampler treats those as out-of-bounds.
func (co Coefficients) Invert(x, y float64) (float64, float64) {
	z := complex(x, y)
	w := (co.D*z - co.B) / (-co.C*z + co.A)
	return real(w), imag(w)
}

// Scale returns the coefficients multiplied by k. For any nonzero k the
// scaled coefficients describe the identical transformation.
func (co Coefficients) Scale(k complex128) Coefficients {
	return Coefficients{A: k * co.A, B: k * co.B, C: k * co.C, D: k * co.D}
}

// MapFunc binds the inverse map as a resampler coordinate function.
// The returned function is pure and safe for concurrent use.
func (co Coefficients) MapFunc() resample.MapFunc {
	return func(x, y float64) (float64, float64) {
		return co.Invert(x, y)
	}
}
