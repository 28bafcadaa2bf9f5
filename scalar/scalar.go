// Copyright 2025 Spindle Math Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar exposes the floating-point constraint and the generic
// elementary functions shared by the differentiation tapes. The functions
// are handy when writing custom operations, where forward value and
// derivative callbacks must work for any tracked scalar type.
package scalar

import "github.com/spindle-math/spindle/internal/scalar"

// Float is the constraint satisfied by every scalar type the tapes track.
type Float = scalar.Float

// Base-conversion constants for non-natural exponentials and logarithms.
const (
	Ln2  = scalar.Ln2
	Ln10 = scalar.Ln10
)

// Abs returns the absolute value of x.
func Abs[T Float](x T) T { return scalar.Abs(x) }

// Sin computes sin(x).
func Sin[T Float](x T) T { return scalar.Sin(x) }

// Cos computes cos(x).
func Cos[T Float](x T) T { return scalar.Cos(x) }

// Tan computes tan(x).
func Tan[T Float](x T) T { return scalar.Tan(x) }

// Asin computes arcsin(x).
func Asin[T Float](x T) T { return scalar.Asin(x) }

// Acos computes arccos(x).
func Acos[T Float](x T) T { return scalar.Acos(x) }

// Atan computes arctan(x).
func Atan[T Float](x T) T { return scalar.Atan(x) }

// Atan2 computes atan(y/x) using the signs of both arguments to determine
// the quadrant.
func Atan2[T Float](y, x T) T { return scalar.Atan2(y, x) }

// Sinh computes sinh(x).
func Sinh[T Float](x T) T { return scalar.Sinh(x) }

// Cosh computes cosh(x).
func Cosh[T Float](x T) T { return scalar.Cosh(x) }

// Tanh computes tanh(x).
func Tanh[T Float](x T) T { return scalar.Tanh(x) }

// Asinh computes arsinh(x).
func Asinh[T Float](x T) T { return scalar.Asinh(x) }

// Acosh computes arcosh(x).
func Acosh[T Float](x T) T { return scalar.Acosh(x) }

// Atanh computes artanh(x).
func Atanh[T Float](x T) T { return scalar.Atanh(x) }

// Exp computes e^x.
func Exp[T Float](x T) T { return scalar.Exp(x) }

// Exp2 computes 2^x.
func Exp2[T Float](x T) T { return scalar.Exp2(x) }

// Exp10 computes 10^x.
func Exp10[T Float](x T) T { return scalar.Exp10(x) }

// Ln computes the natural logarithm of x.
func Ln[T Float](x T) T { return scalar.Ln(x) }

// Log2 computes the base-2 logarithm of x.
func Log2[T Float](x T) T { return scalar.Log2(x) }

// Log10 computes the base-10 logarithm of x.
func Log10[T Float](x T) T { return scalar.Log10(x) }

// Pow computes x^y.
func Pow[T Float](x, y T) T { return scalar.Pow(x, y) }

// Sqrt computes the square root of x.
func Sqrt[T Float](x T) T { return scalar.Sqrt(x) }

// Cbrt computes the cube root of x.
func Cbrt[T Float](x T) T { return scalar.Cbrt(x) }

// Mod computes the floating-point remainder of x/y with the sign of x.
func Mod[T Float](x, y T) T { return scalar.Mod(x, y) }

// Trunc computes the integer part of x.
func Trunc[T Float](x T) T { return scalar.Trunc(x) }

// IsNaN reports whether x is an IEEE 754 NaN.
func IsNaN[T Float](x T) bool { return scalar.IsNaN(x) }

// IsInf reports whether x is an infinity of either sign.
func IsInf[T Float](x T) bool { return scalar.IsInf(x) }
