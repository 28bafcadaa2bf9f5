// Package linalg provides the small dense containers the differentiation
// engine produces and consumes: vectors for gradients, matrices for
// Hessians and Jacobians, and a direct solver for Newton steps.
//
// The containers are deliberately minimal. They hold elements of any Float
// type, index in row-major order, and perform no broadcasting.
package linalg

import (
	"fmt"

	"github.com/spindle-math/spindle/internal/scalar"
)

// Vector is a dense column of scalars.
type Vector[T scalar.Float] struct {
	data []T
}

// NewVector creates a zero vector with n elements.
func NewVector[T scalar.Float](n int) *Vector[T] {
	return &Vector[T]{data: make([]T, n)}
}

// VectorOf creates a vector holding the given elements. The slice is copied.
func VectorOf[T scalar.Float](elems ...T) *Vector[T] {
	data := make([]T, len(elems))
	copy(data, elems)
	return &Vector[T]{data: data}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// At returns element i.
func (v *Vector[T]) At(i int) T {
	return v.data[i]
}

// Set assigns element i.
func (v *Vector[T]) Set(i int, x T) {
	v.data[i] = x
}

// Data returns the backing slice. Mutations are visible to the vector.
func (v *Vector[T]) Data() []T {
	return v.data
}

// Clone returns a copy that shares no storage with v.
func (v *Vector[T]) Clone() *Vector[T] {
	return VectorOf(v.data...)
}

// Dot returns the inner product of v and w.
func (v *Vector[T]) Dot(w *Vector[T]) (T, error) {
	if v.Len() != w.Len() {
		return 0, fmt.Errorf("dot: length mismatch %d vs %d", v.Len(), w.Len())
	}
	var sum T
	for i, x := range v.data {
		sum += x * w.data[i]
	}
	return sum, nil
}

// AddScaled accumulates alpha*w into v in place.
func (v *Vector[T]) AddScaled(alpha T, w *Vector[T]) error {
	if v.Len() != w.Len() {
		return fmt.Errorf("addScaled: length mismatch %d vs %d", v.Len(), w.Len())
	}
	for i := range v.data {
		v.data[i] += alpha * w.data[i]
	}
	return nil
}

// Norm returns the Euclidean norm of v.
func (v *Vector[T]) Norm() T {
	var sum T
	for _, x := range v.data {
		sum += x * x
	}
	return scalar.Sqrt(sum)
}

// String renders the vector for debugging.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("%v", v.data)
}
