// Package optimize implements derivative-based minimization of scalar
// objectives, with all derivatives supplied by the differentiation tapes.
//
// This package provides:
//   - GradientDescent: first-order descent with optional momentum
//   - Newton: damped Newton iteration using exact Hessians
//
// Example usage:
//
//	rosenbrock := func(t *autodiff.GradientTape[float64], x []autodiff.Variable[float64]) autodiff.Variable[float64] {
//	    a := t.ScalarSub(1, x[0])
//	    b := t.Subtract(x[1], t.Multiply(x[0], x[0]))
//	    return t.Add(t.Multiply(a, a), t.MulScalar(t.Multiply(b, b), 100))
//	}
//
//	opt := optimize.NewGradientDescent(optimize.GradientDescentConfig[float64]{
//	    LearningRate: 1e-3,
//	    MaxSteps:     20000,
//	})
//	res, err := opt.Minimize(rosenbrock, []float64{-1.2, 1})
package optimize

import (
	"errors"

	"github.com/spindle-math/spindle/internal/autodiff"
	"github.com/spindle-math/spindle/internal/linalg"
	"github.com/spindle-math/spindle/internal/scalar"
)

// Common errors.
var (
	ErrNotConverged = errors.New("maximum steps reached before convergence")
	ErrConstant     = errors.New("objective does not depend on its variables")
)

// Objective is a scalar function recorded on a gradient tape. It is invoked
// once per step on a cleared tape and must record through the supplied
// variables.
type Objective[T scalar.Float] func(t *autodiff.GradientTape[T], x []autodiff.Variable[T]) autodiff.Variable[T]

// HessianObjective is a scalar function recorded on a Hessian tape.
type HessianObjective[T scalar.Float] func(t *autodiff.HessianTape[T], x []autodiff.Variable[T]) autodiff.Variable[T]

// Result reports the outcome of a minimization run. The fields describe the
// final point even when the run stopped on its step budget.
type Result[T scalar.Float] struct {
	X          []T  // Final point.
	Value      T    // Objective value at the final point.
	GradNorm   T    // Euclidean gradient norm at the final point.
	Iterations int  // Update steps taken.
	Converged  bool // Whether GradNorm reached the tolerance.
}

func gradientNorm[T scalar.Float](grad []T) T {
	return linalg.VectorOf(grad...).Norm()
}
