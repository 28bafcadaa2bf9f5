package autodiff

import "github.com/spindle-math/spindle/internal/scalar"

// Hyperbolic recording methods.

// Sinh records v = sinh(x).
//
// Local partial: dv/dx = cosh(x).
func (t *GradientTape[T]) Sinh(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Sinh(x.value), scalar.Cosh(x.value))
}

// Cosh records v = cosh(x).
//
// Local partial: dv/dx = sinh(x).
func (t *GradientTape[T]) Cosh(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Cosh(x.value), scalar.Sinh(x.value))
}

// Tanh records v = tanh(x).
//
// Local partial: dv/dx = 1 - tanh²(x).
func (t *GradientTape[T]) Tanh(x Variable[T]) Variable[T] {
	v := scalar.Tanh(x.value)
	return t.unary(x, v, 1-v*v)
}

// Asinh records v = asinh(x).
//
// Local partial: dv/dx = 1/sqrt(x² + 1).
func (t *GradientTape[T]) Asinh(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Asinh(x.value), 1/scalar.Sqrt(x.value*x.value+1))
}

// Acosh records v = acosh(x), defined for x > 1.
//
// Local partial: dv/dx = 1/sqrt(x² - 1).
func (t *GradientTape[T]) Acosh(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Acosh(x.value), 1/scalar.Sqrt(x.value*x.value-1))
}

// Atanh records v = atanh(x), defined for |x| < 1.
//
// Local partial: dv/dx = 1/(1 - x²).
func (t *GradientTape[T]) Atanh(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Atanh(x.value), 1/(1-x.value*x.value))
}

// Sinh records v = sinh(x).
func (t *HessianTape[T]) Sinh(x Variable[T]) Variable[T] {
	v := scalar.Sinh(x.value)
	return t.unary(x, v, scalar.Cosh(x.value), v)
}

// Cosh records v = cosh(x).
func (t *HessianTape[T]) Cosh(x Variable[T]) Variable[T] {
	v := scalar.Cosh(x.value)
	return t.unary(x, v, scalar.Sinh(x.value), v)
}

// Tanh records v = tanh(x).
//
// Second partial: d²v/dx² = -2 tanh(x)(1 - tanh²(x)).
func (t *HessianTape[T]) Tanh(x Variable[T]) Variable[T] {
	v := scalar.Tanh(x.value)
	d := 1 - v*v
	return t.unary(x, v, d, -2*v*d)
}

// Asinh records v = asinh(x).
//
// Second partial: d²v/dx² = -x/(x² + 1)^(3/2).
func (t *HessianTape[T]) Asinh(x Variable[T]) Variable[T] {
	d := 1 / scalar.Sqrt(x.value*x.value+1)
	return t.unary(x, scalar.Asinh(x.value), d, -x.value*d*d*d)
}

// Acosh records v = acosh(x), defined for x > 1.
//
// Second partial: d²v/dx² = -x/(x² - 1)^(3/2).
func (t *HessianTape[T]) Acosh(x Variable[T]) Variable[T] {
	d := 1 / scalar.Sqrt(x.value*x.value-1)
	return t.unary(x, scalar.Acosh(x.value), d, -x.value*d*d*d)
}

// Atanh records v = atanh(x), defined for |x| < 1.
//
// Second partial: d²v/dx² = 2x/(1 - x²)².
func (t *HessianTape[T]) Atanh(x Variable[T]) Variable[T] {
	d := 1 / (1 - x.value*x.value)
	return t.unary(x, scalar.Atanh(x.value), d, 2*x.value*d*d)
}
