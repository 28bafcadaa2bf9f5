package autodiff

import "github.com/spindle-math/spindle/internal/scalar"

// Exponential and logarithmic recording methods.

// Exp records v = e^x.
//
// Local partial: dv/dx = e^x = v.
func (t *GradientTape[T]) Exp(x Variable[T]) Variable[T] {
	v := scalar.Exp(x.value)
	return t.unary(x, v, v)
}

// Exp2 records v = 2^x.
//
// Local partial: dv/dx = 2^x ln 2.
func (t *GradientTape[T]) Exp2(x Variable[T]) Variable[T] {
	v := scalar.Exp2(x.value)
	return t.unary(x, v, v*scalar.Ln2)
}

// Exp10 records v = 10^x.
//
// Local partial: dv/dx = 10^x ln 10.
func (t *GradientTape[T]) Exp10(x Variable[T]) Variable[T] {
	v := scalar.Exp10(x.value)
	return t.unary(x, v, v*scalar.Ln10)
}

// Ln records v = ln(x).
//
// Local partial: dv/dx = 1/x.
func (t *GradientTape[T]) Ln(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Ln(x.value), 1/x.value)
}

// Log2 records v = log₂(x).
//
// Local partial: dv/dx = 1/(x ln 2).
func (t *GradientTape[T]) Log2(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Log2(x.value), 1/(x.value*scalar.Ln2))
}

// Log10 records v = log₁₀(x).
//
// Local partial: dv/dx = 1/(x ln 10).
func (t *GradientTape[T]) Log10(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Log10(x.value), 1/(x.value*scalar.Ln10))
}

// Exp records v = e^x.
func (t *HessianTape[T]) Exp(x Variable[T]) Variable[T] {
	v := scalar.Exp(x.value)
	return t.unary(x, v, v, v)
}

// Exp2 records v = 2^x.
//
// Second partial: d²v/dx² = 2^x (ln 2)².
func (t *HessianTape[T]) Exp2(x Variable[T]) Variable[T] {
	v := scalar.Exp2(x.value)
	d := v * scalar.Ln2
	return t.unary(x, v, d, d*scalar.Ln2)
}

// Exp10 records v = 10^x.
//
// Second partial: d²v/dx² = 10^x (ln 10)².
func (t *HessianTape[T]) Exp10(x Variable[T]) Variable[T] {
	v := scalar.Exp10(x.value)
	d := v * scalar.Ln10
	return t.unary(x, v, d, d*scalar.Ln10)
}

// Ln records v = ln(x).
//
// Second partial: d²v/dx² = -1/x².
func (t *HessianTape[T]) Ln(x Variable[T]) Variable[T] {
	inv := 1 / x.value
	return t.unary(x, scalar.Ln(x.value), inv, -inv*inv)
}

// Log2 records v = log₂(x).
//
// Second partial: d²v/dx² = -1/(x² ln 2).
func (t *HessianTape[T]) Log2(x Variable[T]) Variable[T] {
	d := 1 / (x.value * scalar.Ln2)
	return t.unary(x, scalar.Log2(x.value), d, -d/x.value)
}

// Log10 records v = log₁₀(x).
//
// Second partial: d²v/dx² = -1/(x² ln 10).
func (t *HessianTape[T]) Log10(x Variable[T]) Variable[T] {
	d := 1 / (x.value * scalar.Ln10)
	return t.unary(x, scalar.Log10(x.value), d, -d/x.value)
}
