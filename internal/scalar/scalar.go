// Package scalar defines the scalar value contract consumed by the rest of
// the library: a floating-point type-set constraint plus the generic
// elementary functions the differentiation tapes record.
//
// Every function here is a thin generic wrapper over the standard math
// package, rounding through float64. This keeps a single source of truth
// for forward values and lets derivative rules be written once for both
// float32 and float64.
package scalar

// Float is the constraint satisfied by every scalar type the tapes track.
type Float interface {
	~float32 | ~float64
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
