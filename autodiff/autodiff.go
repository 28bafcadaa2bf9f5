// Copyright 2025 Spindle Math Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Operations on scalar variables are recorded on a tape; one reverse sweep
// over the recording yields the gradient with respect to every variable.
// Hessian tapes additionally carry second-order weights, giving exact
// Hessian matrices. Vector calculus helpers (gradient, divergence, curl,
// Jacobian, Laplacian) are built on top of the tapes.
//
// Example:
//
//	import "github.com/spindle-math/spindle/autodiff"
//
//	func main() {
//	    tape := autodiff.NewGradientTape[float64]()
//	    x := tape.CreateVariable(1.23)
//	    y := tape.CreateVariable(0.66)
//
//	    // f = cos(x) / (x + y)
//	    f := tape.Divide(tape.Cos(x), tape.Add(x, y))
//
//	    grad := tape.ReverseAccumulate(f) // [df/dx, df/dy]
//	    _ = grad
//	}
package autodiff

import (
	"github.com/spindle-math/spindle/internal/autodiff"
	"github.com/spindle-math/spindle/internal/linalg"
	"github.com/spindle-math/spindle/internal/parallel"
	"github.com/spindle-math/spindle/internal/scalar"
)

// Variable is a value recorded on a tape, or an untracked constant.
type Variable[T scalar.Float] = autodiff.Variable[T]

// VariableVector3 groups three variables recorded on the same tape.
type VariableVector3[T scalar.Float] = autodiff.VariableVector3[T]

// GradientTape records first-order operations for reverse accumulation.
type GradientTape[T scalar.Float] = autodiff.GradientTape[T]

// HessianTape records first- and second-order operations for exact Hessians.
type HessianTape[T scalar.Float] = autodiff.HessianTape[T]

// CheckpointFunc is a deterministic recording segment that can be evicted
// and replayed during the reverse sweep. See GradientTape.Checkpoint.
type CheckpointFunc[T scalar.Float] = autodiff.CheckpointFunc[T]

// NewGradientTape creates an empty gradient tape with tracking enabled.
func NewGradientTape[T scalar.Float]() *GradientTape[T] {
	return autodiff.NewGradientTape[T]()
}

// NewHessianTape creates an empty Hessian tape with tracking enabled.
func NewHessianTape[T scalar.Float]() *HessianTape[T] {
	return autodiff.NewHessianTape[T]()
}

// ParallelConfig controls the worker pool of ReverseAccumulateParallel.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns worker settings based on CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// ScalarField is a scalar function of three variables recorded on a
// gradient tape.
type ScalarField[T scalar.Float] = autodiff.ScalarField[T]

// VectorField is a three-component function of three variables recorded on
// a gradient tape.
type VectorField[T scalar.Float] = autodiff.VectorField[T]

// HessianScalarField is a scalar function of three variables recorded on a
// Hessian tape.
type HessianScalarField[T scalar.Float] = autodiff.HessianScalarField[T]

// Gradient evaluates ∇f at (x, y, z).
func Gradient[T scalar.Float](f ScalarField[T], x, y, z T) [3]T {
	return autodiff.Gradient(f, x, y, z)
}

// DirectionalDerivative evaluates v·∇f at (x, y, z).
func DirectionalDerivative[T scalar.Float](v [3]T, f ScalarField[T], x, y, z T) T {
	return autodiff.DirectionalDerivative(v, f, x, y, z)
}

// Divergence evaluates ∇·F at (x, y, z).
func Divergence[T scalar.Float](f VectorField[T], x, y, z T) T {
	return autodiff.Divergence(f, x, y, z)
}

// Curl evaluates ∇×F at (x, y, z).
func Curl[T scalar.Float](f VectorField[T], x, y, z T) [3]T {
	return autodiff.Curl(f, x, y, z)
}

// Jacobian evaluates the 3×3 Jacobian of F at (x, y, z).
func Jacobian[T scalar.Float](f VectorField[T], x, y, z T) *linalg.Matrix[T] {
	return autodiff.Jacobian(f, x, y, z)
}

// JVP evaluates the Jacobian-vector product J_F·v at (x, y, z).
func JVP[T scalar.Float](f VectorField[T], v [3]T, x, y, z T) [3]T {
	return autodiff.JVP(f, v, x, y, z)
}

// VJP evaluates the vector-Jacobian product vᵀ·J_F at (x, y, z).
func VJP[T scalar.Float](v [3]T, f VectorField[T], x, y, z T) [3]T {
	return autodiff.VJP(v, f, x, y, z)
}

// Laplacian evaluates ∇²f at (x, y, z).
func Laplacian[T scalar.Float](f HessianScalarField[T], x, y, z T) T {
	return autodiff.Laplacian(f, x, y, z)
}
