// Copyright 2025 Spindle Math Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the dense vectors and matrices used alongside the
// differentiation tapes: Hessians, Jacobians, and the direct solver that
// backs Newton steps.
//
// Example:
//
//	import "github.com/spindle-math/spindle/linalg"
//
//	func main() {
//	    a, _ := linalg.MatrixFromRows([][]float64{
//	        {2, 1},
//	        {1, 3},
//	    })
//	    b := linalg.VectorOf(3.0, 5.0)
//
//	    x, err := linalg.Solve(a, b)
//	    if err != nil {
//	        panic(err)
//	    }
//	    _ = x
//	}
package linalg

import (
	"github.com/spindle-math/spindle/internal/linalg"
	"github.com/spindle-math/spindle/internal/scalar"
)

// Vector is a dense column vector.
type Vector[T scalar.Float] = linalg.Vector[T]

// Matrix is a dense row-major matrix.
type Matrix[T scalar.Float] = linalg.Matrix[T]

// NewVector creates a zero vector of length n.
func NewVector[T scalar.Float](n int) *Vector[T] {
	return linalg.NewVector[T](n)
}

// VectorOf creates a vector holding the given elements.
func VectorOf[T scalar.Float](elems ...T) *Vector[T] {
	return linalg.VectorOf(elems...)
}

// NewMatrix creates a zero matrix with the given dimensions.
func NewMatrix[T scalar.Float](rows, cols int) *Matrix[T] {
	return linalg.NewMatrix[T](rows, cols)
}

// MatrixFromRows creates a matrix from row slices, which must all have the
// same length.
func MatrixFromRows[T scalar.Float](rows [][]T) (*Matrix[T], error) {
	return linalg.MatrixFromRows(rows)
}

// Solve finds x such that a*x = b by Gaussian elimination with partial
// pivoting, leaving a and b untouched.
func Solve[T scalar.Float](a *Matrix[T], b *Vector[T]) (*Vector[T], error) {
	return linalg.Solve(a, b)
}
