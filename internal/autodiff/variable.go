package autodiff

import (
	"fmt"

	"github.com/spindle-math/spindle/internal/scalar"
)

// Variable is a lightweight handle to a value recorded on a tape: the
// forward value plus the index of the node that produced it. Variables are
// immutable and valid only for the tape instance that created them.
type Variable[T scalar.Float] struct {
	index int
	value T
}

// Value returns the forward value.
func (v Variable[T]) Value() T {
	return v.value
}

// Index returns the position of the producing node in the owning tape, or a
// negative value for untracked variables.
func (v Variable[T]) Index() int {
	return v.index
}

// Tracked reports whether the variable refers to a recorded node. Constants
// and results computed while tracking is off are untracked: they behave as
// plain values and receive no derivative.
func (v Variable[T]) Tracked() bool {
	return v.index >= 0
}

// String renders the variable for debugging.
func (v Variable[T]) String() string {
	if !v.Tracked() {
		return fmt.Sprintf("const(%v)", v.value)
	}
	return fmt.Sprintf("var[%d](%v)", v.index, v.value)
}

// VariableVector3 bundles three variables created together, preserving
// creation order (X first). It is the input form consumed by the vector
// calculus helpers.
type VariableVector3[T scalar.Float] struct {
	X, Y, Z Variable[T]
}

// Values returns the three forward values in creation order.
func (v VariableVector3[T]) Values() [3]T {
	return [3]T{v.X.value, v.Y.value, v.Z.value}
}
