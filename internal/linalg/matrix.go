package linalg

import (
	"fmt"

	"github.com/spindle-math/spindle/internal/scalar"
)

// Matrix is a dense row-major matrix of scalars.
type Matrix[T scalar.Float] struct {
	rows, cols int
	data       []T
}

// NewMatrix creates a zero matrix with the given dimensions.
func NewMatrix[T scalar.Float](rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("linalg: invalid matrix dimensions %dx%d", rows, cols))
	}
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// MatrixFromRows creates a matrix from row slices. All rows must have the
// same length. The data is copied.
func MatrixFromRows[T scalar.Float](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return &Matrix[T]{}, nil
	}
	cols := len(rows[0])
	m := NewMatrix[T](len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("matrixFromRows: row %d has %d elements, want %d", i, len(row), cols)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) T {
	return m.data[i*m.cols+j]
}

// Set assigns the element at row i, column j.
func (m *Matrix[T]) Set(i, j int, x T) {
	m.data[i*m.cols+j] = x
}

// Add accumulates x into the element at row i, column j.
func (m *Matrix[T]) Add(i, j int, x T) {
	m.data[i*m.cols+j] += x
}

// Data returns the backing row-major slice. Mutations are visible to the
// matrix.
func (m *Matrix[T]) Data() []T {
	return m.data
}

// Row returns row i as a view into the matrix storage.
func (m *Matrix[T]) Row(i int) []T {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Clone returns a copy that shares no storage with m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := NewMatrix[T](m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// MulVec computes m*v.
func (m *Matrix[T]) MulVec(v *Vector[T]) (*Vector[T], error) {
	if m.cols != v.Len() {
		return nil, fmt.Errorf("mulVec: %dx%d matrix against vector of length %d", m.rows, m.cols, v.Len())
	}
	out := NewVector[T](m.rows)
	for i := 0; i < m.rows; i++ {
		row := m.Row(i)
		var sum T
		for j, x := range row {
			sum += x * v.data[j]
		}
		out.data[i] = sum
	}
	return out, nil
}

// IsSymmetric reports whether m equals its transpose to within tol on each
// element pair.
func (m *Matrix[T]) IsSymmetric(tol T) bool {
	if m.rows != m.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.cols; j++ {
			if scalar.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}
	return true
}

// String renders the matrix for debugging, one row per line.
func (m *Matrix[T]) String() string {
	s := ""
	for i := 0; i < m.rows; i++ {
		s += fmt.Sprintf("%v\n", m.Row(i))
	}
	return s
}
