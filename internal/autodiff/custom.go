package autodiff

// Custom operations let callers record functions outside the built-in set
// by supplying the forward function together with its derivatives evaluated
// at the operand values. The derivative callbacks run once, at recording
// time.

// CustomOperation records v = f(x) with derivative df.
func (t *GradientTape[T]) CustomOperation(x Variable[T], f, df func(T) T) Variable[T] {
	return t.unary(x, f(x.value), df(x.value))
}

// CustomOperation2 records v = f(x, y) with partials dfx = df/dx and
// dfy = df/dy.
func (t *GradientTape[T]) CustomOperation2(x, y Variable[T], f, dfx, dfy func(T, T) T) Variable[T] {
	return t.binary(x, y, f(x.value, y.value),
		dfx(x.value, y.value), dfy(x.value, y.value))
}

// CustomOperation records v = f(x) with first derivative df and second
// derivative d2f.
func (t *HessianTape[T]) CustomOperation(x Variable[T], f, df, d2f func(T) T) Variable[T] {
	return t.unary(x, f(x.value), df(x.value), d2f(x.value))
}

// CustomOperation2 records v = f(x, y) with first partials dfx, dfy and
// second partials dfxx, dfxy, dfyy.
func (t *HessianTape[T]) CustomOperation2(x, y Variable[T], f, dfx, dfy, dfxx, dfxy, dfyy func(T, T) T) Variable[T] {
	return t.binary(x, y, f(x.value, y.value),
		dfx(x.value, y.value), dfy(x.value, y.value),
		dfxx(x.value, y.value), dfxy(x.value, y.value), dfyy(x.value, y.value))
}
