package scalar

import "math"

// Elementary functions over any Float type. Forward values round-trip
// through float64, matching the precision the standard library provides.

// Sin computes sin(x).
func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

// Cos computes cos(x).
func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

// Tan computes tan(x).
func Tan[T Float](x T) T { return T(math.Tan(float64(x))) }

// Asin computes arcsin(x).
func Asin[T Float](x T) T { return T(math.Asin(float64(x))) }

// Acos computes arccos(x).
func Acos[T Float](x T) T { return T(math.Acos(float64(x))) }

// Atan computes arctan(x).
func Atan[T Float](x T) T { return T(math.Atan(float64(x))) }

// Atan2 computes atan(y/x) using the signs of both arguments to determine
// the quadrant.
func Atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Sinh computes sinh(x).
func Sinh[T Float](x T) T { return T(math.Sinh(float64(x))) }

// Cosh computes cosh(x).
func Cosh[T Float](x T) T { return T(math.Cosh(float64(x))) }

// Tanh computes tanh(x).
func Tanh[T Float](x T) T { return T(math.Tanh(float64(x))) }

// Asinh computes arsinh(x).
func Asinh[T Float](x T) T { return T(math.Asinh(float64(x))) }

// Acosh computes arcosh(x).
func Acosh[T Float](x T) T { return T(math.Acosh(float64(x))) }

// Atanh computes artanh(x).
func Atanh[T Float](x T) T { return T(math.Atanh(float64(x))) }

// Exp computes e^x.
func Exp[T Float](x T) T { return T(math.Exp(float64(x))) }

// Exp2 computes 2^x.
func Exp2[T Float](x T) T { return T(math.Exp2(float64(x))) }

// Exp10 computes 10^x.
func Exp10[T Float](x T) T { return T(math.Pow(10, float64(x))) }

// Ln computes the natural logarithm of x.
func Ln[T Float](x T) T { return T(math.Log(float64(x))) }

// Log2 computes the base-2 logarithm of x.
func Log2[T Float](x T) T { return T(math.Log2(float64(x))) }

// Log10 computes the base-10 logarithm of x.
func Log10[T Float](x T) T { return T(math.Log10(float64(x))) }

// Pow computes x^y.
func Pow[T Float](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

// Sqrt computes the square root of x.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Cbrt computes the cube root of x.
func Cbrt[T Float](x T) T { return T(math.Cbrt(float64(x))) }

// Mod computes the floating-point remainder of x/y with the sign of x.
func Mod[T Float](x, y T) T { return T(math.Mod(float64(x), float64(y))) }

// Trunc computes the integer part of x.
func Trunc[T Float](x T) T { return T(math.Trunc(float64(x))) }

// IsNaN reports whether x is an IEEE 754 NaN.
func IsNaN[T Float](x T) bool { return math.IsNaN(float64(x)) }

// IsInf reports whether x is an infinity of either sign.
func IsInf[T Float](x T) bool { return math.IsInf(float64(x), 0) }

// Base-conversion constants used by derivative rules for non-natural
// exponentials and logarithms.
const (
	Ln2  = math.Ln2
	Ln10 = math.Ln10
)
