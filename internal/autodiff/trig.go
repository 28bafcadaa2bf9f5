package autodiff

import "github.com/spindle-math/spindle/internal/scalar"

// Trigonometric recording methods.

// Sin records v = sin(x).
//
// Local partial: dv/dx = cos(x).
func (t *GradientTape[T]) Sin(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Sin(x.value), scalar.Cos(x.value))
}

// Cos records v = cos(x).
//
// Local partial: dv/dx = -sin(x).
func (t *GradientTape[T]) Cos(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Cos(x.value), -scalar.Sin(x.value))
}

// Tan records v = tan(x).
//
// Local partial: dv/dx = sec²(x) = 1 + tan²(x).
func (t *GradientTape[T]) Tan(x Variable[T]) Variable[T] {
	v := scalar.Tan(x.value)
	return t.unary(x, v, 1+v*v)
}

// Asin records v = asin(x).
//
// Local partial: dv/dx = 1/sqrt(1 - x²).
func (t *GradientTape[T]) Asin(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Asin(x.value), 1/scalar.Sqrt(1-x.value*x.value))
}

// Acos records v = acos(x).
//
// Local partial: dv/dx = -1/sqrt(1 - x²).
func (t *GradientTape[T]) Acos(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Acos(x.value), -1/scalar.Sqrt(1-x.value*x.value))
}

// Atan records v = atan(x).
//
// Local partial: dv/dx = 1/(1 + x²).
func (t *GradientTape[T]) Atan(x Variable[T]) Variable[T] {
	return t.unary(x, scalar.Atan(x.value), 1/(1+x.value*x.value))
}

// Atan2 records v = atan2(y, x), the two-argument arctangent.
//
// Local partials: dv/dy = x/(x² + y²), dv/dx = -y/(x² + y²).
func (t *GradientTape[T]) Atan2(y, x Variable[T]) Variable[T] {
	invR2 := 1 / (x.value*x.value + y.value*y.value)
	return t.binary(y, x, scalar.Atan2(y.value, x.value),
		x.value*invR2, -y.value*invR2)
}

// Sin records v = sin(x).
func (t *HessianTape[T]) Sin(x Variable[T]) Variable[T] {
	v := scalar.Sin(x.value)
	return t.unary(x, v, scalar.Cos(x.value), -v)
}

// Cos records v = cos(x).
func (t *HessianTape[T]) Cos(x Variable[T]) Variable[T] {
	v := scalar.Cos(x.value)
	return t.unary(x, v, -scalar.Sin(x.value), -v)
}

// Tan records v = tan(x).
//
// Second partial: d²v/dx² = 2 tan(x) sec²(x).
func (t *HessianTape[T]) Tan(x Variable[T]) Variable[T] {
	v := scalar.Tan(x.value)
	sec2 := 1 + v*v
	return t.unary(x, v, sec2, 2*v*sec2)
}

// Asin records v = asin(x).
//
// Second partial: d²v/dx² = x/(1 - x²)^(3/2).
func (t *HessianTape[T]) Asin(x Variable[T]) Variable[T] {
	d := 1 / scalar.Sqrt(1-x.value*x.value)
	return t.unary(x, scalar.Asin(x.value), d, x.value*d*d*d)
}

// Acos records v = acos(x).
//
// Second partial: d²v/dx² = -x/(1 - x²)^(3/2).
func (t *HessianTape[T]) Acos(x Variable[T]) Variable[T] {
	d := 1 / scalar.Sqrt(1-x.value*x.value)
	return t.unary(x, scalar.Acos(x.value), -d, -x.value*d*d*d)
}

// Atan records v = atan(x).
//
// Second partial: d²v/dx² = -2x/(1 + x²)².
func (t *HessianTape[T]) Atan(x Variable[T]) Variable[T] {
	d := 1 / (1 + x.value*x.value)
	return t.unary(x, scalar.Atan(x.value), d, -2*x.value*d*d)
}

// Atan2 records v = atan2(y, x), the two-argument arctangent.
//
// With r² = x² + y²: dv/dy = x/r², dv/dx = -y/r²,
// d²v/dy² = -2xy/r⁴, d²v/dydx = (y² - x²)/r⁴, d²v/dx² = 2xy/r⁴.
func (t *HessianTape[T]) Atan2(y, x Variable[T]) Variable[T] {
	invR2 := 1 / (x.value*x.value + y.value*y.value)
	invR4 := invR2 * invR2
	xy2 := 2 * x.value * y.value
	return t.binary(y, x, scalar.Atan2(y.value, x.value),
		x.value*invR2, -y.value*invR2,
		-xy2*invR4, (y.value*y.value-x.value*x.value)*invR4, xy2*invR4)
}
