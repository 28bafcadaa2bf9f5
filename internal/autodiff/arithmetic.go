package autodiff

import "github.com/spindle-math/spindle/internal/scalar"

// Arithmetic recording methods. Each computes the forward value, derives
// the local partials analytically and appends one node. The scalar-operand
// variants record unary nodes: the constant side carries no derivative.

// Add records v = x + y.
func (t *GradientTape[T]) Add(x, y Variable[T]) Variable[T] {
	return t.binary(x, y, x.value+y.value, 1, 1)
}

// AddScalar records v = x + c.
func (t *GradientTape[T]) AddScalar(x Variable[T], c T) Variable[T] {
	return t.unary(x, x.value+c, 1)
}

// Subtract records v = x - y.
func (t *GradientTape[T]) Subtract(x, y Variable[T]) Variable[T] {
	return t.binary(x, y, x.value-y.value, 1, -1)
}

// SubScalar records v = x - c.
func (t *GradientTape[T]) SubScalar(x Variable[T], c T) Variable[T] {
	return t.unary(x, x.value-c, 1)
}

// ScalarSub records v = c - x.
func (t *GradientTape[T]) ScalarSub(c T, x Variable[T]) Variable[T] {
	return t.unary(x, c-x.value, -1)
}

// Negate records v = -x.
func (t *GradientTape[T]) Negate(x Variable[T]) Variable[T] {
	return t.unary(x, -x.value, -1)
}

// Multiply records v = x*y.
//
// Local partials: dv/dx = y, dv/dy = x.
func (t *GradientTape[T]) Multiply(x, y Variable[T]) Variable[T] {
	return t.binary(x, y, x.value*y.value, y.value, x.value)
}

// MulScalar records v = c*x.
func (t *GradientTape[T]) MulScalar(x Variable[T], c T) Variable[T] {
	return t.unary(x, c*x.value, c)
}

// Divide records v = x/y.
//
// Local partials: dv/dx = 1/y, dv/dy = -x/y².
func (t *GradientTape[T]) Divide(x, y Variable[T]) Variable[T] {
	inv := 1 / y.value
	return t.binary(x, y, x.value*inv, inv, -x.value*inv*inv)
}

// DivScalar records v = x/c.
func (t *GradientTape[T]) DivScalar(x Variable[T], c T) Variable[T] {
	inv := 1 / c
	return t.unary(x, x.value*inv, inv)
}

// ScalarDiv records v = c/x.
//
// Local partial: dv/dx = -c/x².
func (t *GradientTape[T]) ScalarDiv(c T, x Variable[T]) Variable[T] {
	inv := 1 / x.value
	return t.unary(x, c*inv, -c*inv*inv)
}

// Modulo records v = x mod y (truncated division, math.Mod semantics).
//
// Local partials: dv/dx = 1, dv/dy = -trunc(x/y), away from the
// discontinuities at multiples of y.
func (t *GradientTape[T]) Modulo(x, y Variable[T]) Variable[T] {
	return t.binary(x, y, scalar.Mod(x.value, y.value),
		1, -scalar.Trunc(x.value/y.value))
}

// Add records v = x + y.
func (t *HessianTape[T]) Add(x, y Variable[T]) Variable[T] {
	return t.binary(x, y, x.value+y.value, 1, 1, 0, 0, 0)
}

// AddScalar records v = x + c.
func (t *HessianTape[T]) AddScalar(x Variable[T], c T) Variable[T] {
	return t.unary(x, x.value+c, 1, 0)
}

// Subtract records v = x - y.
func (t *HessianTape[T]) Subtract(x, y Variable[T]) Variable[T] {
	return t.binary(x, y, x.value-y.value, 1, -1, 0, 0, 0)
}

// SubScalar records v = x - c.
func (t *HessianTape[T]) SubScalar(x Variable[T], c T) Variable[T] {
	return t.unary(x, x.value-c, 1, 0)
}

// ScalarSub records v = c - x.
func (t *HessianTape[T]) ScalarSub(c T, x Variable[T]) Variable[T] {
	return t.unary(x, c-x.value, -1, 0)
}

// Negate records v = -x.
func (t *HessianTape[T]) Negate(x Variable[T]) Variable[T] {
	return t.unary(x, -x.value, -1, 0)
}

// Multiply records v = x*y.
//
// The only curvature is the cross term d²v/dxdy = 1.
func (t *HessianTape[T]) Multiply(x, y Variable[T]) Variable[T] {
	return t.binary(x, y, x.value*y.value, y.value, x.value, 0, 1, 0)
}

// MulScalar records v = c*x.
func (t *HessianTape[T]) MulScalar(x Variable[T], c T) Variable[T] {
	return t.unary(x, c*x.value, c, 0)
}

// Divide records v = x/y.
//
// Second partials: d²v/dx² = 0, d²v/dxdy = -1/y², d²v/dy² = 2x/y³.
func (t *HessianTape[T]) Divide(x, y Variable[T]) Variable[T] {
	inv := 1 / y.value
	inv2 := inv * inv
	return t.binary(x, y, x.value*inv,
		inv, -x.value*inv2,
		0, -inv2, 2*x.value*inv2*inv)
}

// DivScalar records v = x/c.
func (t *HessianTape[T]) DivScalar(x Variable[T], c T) Variable[T] {
	inv := 1 / c
	return t.unary(x, x.value*inv, inv, 0)
}

// ScalarDiv records v = c/x.
//
// Second partial: d²v/dx² = 2c/x³.
func (t *HessianTape[T]) ScalarDiv(c T, x Variable[T]) Variable[T] {
	inv := 1 / x.value
	inv2 := inv * inv
	return t.unary(x, c*inv, -c*inv2, 2*c*inv2*inv)
}

// Modulo records v = x mod y (truncated division, math.Mod semantics).
// All second partials vanish away from the discontinuities.
func (t *HessianTape[T]) Modulo(x, y Variable[T]) Variable[T] {
	return t.binary(x, y, scalar.Mod(x.value, y.value),
		1, -scalar.Trunc(x.value/y.value),
		0, 0, 0)
}
