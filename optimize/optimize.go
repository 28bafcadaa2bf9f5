// Copyright 2025 Spindle Math Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optimize provides derivative-based minimization built on the
// differentiation tapes: gradient descent with optional momentum, and
// damped Newton iteration using exact Hessians.
//
// Example:
//
//	import (
//	    "github.com/spindle-math/spindle/autodiff"
//	    "github.com/spindle-math/spindle/optimize"
//	)
//
//	func main() {
//	    opt := optimize.NewNewton(optimize.NewtonConfig[float64]{})
//	    res, err := opt.Minimize(func(t *autodiff.HessianTape[float64], x []autodiff.Variable[float64]) autodiff.Variable[float64] {
//	        d := t.SubScalar(x[0], 3)
//	        return t.Multiply(d, d)
//	    }, []float64{10})
//	    if err != nil {
//	        panic(err)
//	    }
//	    _ = res.X // [3]
//	}
package optimize

import (
	"github.com/spindle-math/spindle/internal/optimize"
	"github.com/spindle-math/spindle/internal/scalar"
)

// Common errors.
var (
	ErrNotConverged = optimize.ErrNotConverged
	ErrConstant     = optimize.ErrConstant
)

// Objective is a scalar function recorded on a gradient tape.
type Objective[T scalar.Float] = optimize.Objective[T]

// HessianObjective is a scalar function recorded on a Hessian tape.
type HessianObjective[T scalar.Float] = optimize.HessianObjective[T]

// Result reports the outcome of a minimization run.
type Result[T scalar.Float] = optimize.Result[T]

// GradientDescent minimizes an objective by first-order descent.
type GradientDescent[T scalar.Float] = optimize.GradientDescent[T]

// GradientDescentConfig holds configuration for GradientDescent.
type GradientDescentConfig[T scalar.Float] = optimize.GradientDescentConfig[T]

// NewGradientDescent creates a GradientDescent optimizer, filling in
// defaults for zero config fields.
func NewGradientDescent[T scalar.Float](config GradientDescentConfig[T]) *GradientDescent[T] {
	return optimize.NewGradientDescent(config)
}

// Newton minimizes an objective by damped Newton iteration.
type Newton[T scalar.Float] = optimize.Newton[T]

// NewtonConfig holds configuration for Newton.
type NewtonConfig[T scalar.Float] = optimize.NewtonConfig[T]

// NewNewton creates a Newton optimizer, filling in defaults for zero config
// fields.
func NewNewton[T scalar.Float](config NewtonConfig[T]) *Newton[T] {
	return optimize.NewNewton(config)
}
