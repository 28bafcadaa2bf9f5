package linalg

import (
	"fmt"

	"github.com/spindle-math/spindle/internal/scalar"
)

// Solve finds x such that a*x = b using Gaussian elimination with partial
// pivoting. It operates on copies, leaving a and b untouched, and returns an
// error if a is not square, dimensions disagree, or a is singular to working
// precision.
func Solve[T scalar.Float](a *Matrix[T], b *Vector[T]) (*Vector[T], error) {
	n := a.Rows()
	if a.Cols() != n {
		return nil, fmt.Errorf("solve: matrix is %dx%d, want square", a.Rows(), a.Cols())
	}
	if b.Len() != n {
		return nil, fmt.Errorf("solve: vector length %d does not match %dx%d matrix", b.Len(), n, n)
	}

	m := a.Clone()
	x := b.Clone()

	for col := 0; col < n; col++ {
		// Partial pivot: bring the largest remaining entry in this column
		// onto the diagonal.
		pivot := col
		best := scalar.Abs(m.At(col, col))
		for r := col + 1; r < n; r++ {
			if mag := scalar.Abs(m.At(r, col)); mag > best {
				best = mag
				pivot = r
			}
		}
		if best == 0 {
			return nil, fmt.Errorf("solve: matrix is singular at column %d", col)
		}
		if pivot != col {
			swapRows(m, pivot, col)
			x.data[pivot], x.data[col] = x.data[col], x.data[pivot]
		}

		inv := 1 / m.At(col, col)
		for r := col + 1; r < n; r++ {
			factor := m.At(r, col) * inv
			if factor == 0 {
				continue
			}
			m.Set(r, col, 0)
			for c := col + 1; c < n; c++ {
				m.Add(r, c, -factor*m.At(col, c))
			}
			x.data[r] -= factor * x.data[col]
		}
	}

	// Back substitution.
	for row := n - 1; row >= 0; row-- {
		sum := x.data[row]
		for c := row + 1; c < n; c++ {
			sum -= m.At(row, c) * x.data[c]
		}
		x.data[row] = sum / m.At(row, row)
	}
	return x, nil
}

func swapRows[T scalar.Float](m *Matrix[T], i, j int) {
	ri, rj := m.Row(i), m.Row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
