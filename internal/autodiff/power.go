package autodiff

import "github.com/spindle-math/spindle/internal/scalar"

// Power and root recording methods.

// Pow records v = x^y.
//
// Local partials: dv/dx = y·x^(y-1), dv/dy = x^y ln(x).
func (t *GradientTape[T]) Pow(x, y Variable[T]) Variable[T] {
	v := scalar.Pow(x.value, y.value)
	return t.binary(x, y, v,
		y.value*scalar.Pow(x.value, y.value-1), v*scalar.Ln(x.value))
}

// PowScalar records v = x^c for a constant exponent.
//
// Local partial: dv/dx = c·x^(c-1).
func (t *GradientTape[T]) PowScalar(x Variable[T], c T) Variable[T] {
	return t.unary(x, scalar.Pow(x.value, c), c*scalar.Pow(x.value, c-1))
}

// Sqrt records v = sqrt(x).
//
// Local partial: dv/dx = 1/(2 sqrt(x)).
func (t *GradientTape[T]) Sqrt(x Variable[T]) Variable[T] {
	v := scalar.Sqrt(x.value)
	return t.unary(x, v, 1/(2*v))
}

// Cbrt records v = cbrt(x).
//
// Local partial: dv/dx = 1/(3 cbrt(x)²).
func (t *GradientTape[T]) Cbrt(x Variable[T]) Variable[T] {
	v := scalar.Cbrt(x.value)
	return t.unary(x, v, 1/(3*v*v))
}

// Pow records v = x^y.
//
// Second partials: d²v/dx² = y(y-1)x^(y-2),
// d²v/dxdy = x^(y-1)(1 + y ln x), d²v/dy² = x^y (ln x)².
func (t *HessianTape[T]) Pow(x, y Variable[T]) Variable[T] {
	v := scalar.Pow(x.value, y.value)
	lnx := scalar.Ln(x.value)
	powm1 := scalar.Pow(x.value, y.value-1)
	return t.binary(x, y, v,
		y.value*powm1, v*lnx,
		y.value*(y.value-1)*scalar.Pow(x.value, y.value-2),
		powm1*(1+y.value*lnx),
		v*lnx*lnx)
}

// PowScalar records v = x^c for a constant exponent.
//
// Second partial: d²v/dx² = c(c-1)x^(c-2).
func (t *HessianTape[T]) PowScalar(x Variable[T], c T) Variable[T] {
	return t.unary(x, scalar.Pow(x.value, c),
		c*scalar.Pow(x.value, c-1), c*(c-1)*scalar.Pow(x.value, c-2))
}

// Sqrt records v = sqrt(x).
//
// Second partial: d²v/dx² = -1/(4 x^(3/2)).
func (t *HessianTape[T]) Sqrt(x Variable[T]) Variable[T] {
	v := scalar.Sqrt(x.value)
	return t.unary(x, v, 1/(2*v), -1/(4*v*v*v))
}

// Cbrt records v = cbrt(x).
//
// Second partial: d²v/dx² = -2/(9 x^(5/3)).
func (t *HessianTape[T]) Cbrt(x Variable[T]) Variable[T] {
	v := scalar.Cbrt(x.value)
	v2 := v * v
	return t.unary(x, v, 1/(3*v2), -2/(9*v2*v2*v))
}
