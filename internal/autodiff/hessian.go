package autodiff

import (
	"fmt"
	"io"

	"github.com/spindle-math/spindle/internal/scalar"
)

// HessianTape records elementary operations together with their local
// second partials, enabling exact Hessians by reverse accumulation.
//
// Usage:
//
//	tape := NewHessianTape[float64]()
//	v := tape.CreateVariableVector3(1.0, 2.0, 3.0)
//	f := tape.Multiply(tape.Sin(v.X), v.Y)
//	grad, hess := tape.ReverseAccumulateHessian(f)
//
// The recording surface mirrors GradientTape. Checkpointing and the
// parallel sweep are not offered for Hessian tapes; the node table is a
// flat slice.
type HessianTape[T scalar.Float] struct {
	nodes    []hessianNode[T]
	roster   []int
	tracking bool
}

// NewHessianTape creates an empty tape with tracking enabled.
func NewHessianTape[T scalar.Float]() *HessianTape[T] {
	return &HessianTape[T]{tracking: true}
}

// CreateVariable appends a leaf node and registers it as an independent
// variable. Roster position equals call order and determines this
// variable's row/column in accumulated gradients and Hessians.
func (t *HessianTape[T]) CreateVariable(value T) Variable[T] {
	i := len(t.nodes)
	t.nodes = append(t.nodes, hessianNode[T]{parent0: i, parent1: i})
	t.roster = append(t.roster, i)
	return Variable[T]{index: i, value: value}
}

// CreateVariableVector3 creates three independent variables at once,
// rostered in X, Y, Z order.
func (t *HessianTape[T]) CreateVariableVector3(x, y, z T) VariableVector3[T] {
	return VariableVector3[T]{
		X: t.CreateVariable(x),
		Y: t.CreateVariable(y),
		Z: t.CreateVariable(z),
	}
}

// Constant returns an untracked variable holding c. Constants occupy no
// node and receive no derivative.
func (t *HessianTape[T]) Constant(c T) Variable[T] {
	return Variable[T]{index: untracked, value: c}
}

// IsTracking reports whether recording methods currently append nodes.
func (t *HessianTape[T]) IsTracking() bool {
	return t.tracking
}

// StopTracking disables recording: subsequent operations compute forward
// values only and return untracked variables.
func (t *HessianTape[T]) StopTracking() {
	t.tracking = false
}

// ResumeTracking re-enables recording.
func (t *HessianTape[T]) ResumeTracking() {
	t.tracking = true
}

// NodeCount returns the number of recorded nodes.
func (t *HessianTape[T]) NodeCount() int {
	return len(t.nodes)
}

// VariableCount returns the number of independent variables.
func (t *HessianTape[T]) VariableCount() int {
	return len(t.roster)
}

// PrintNodes writes the node table to w, one node per line, up to limit
// nodes (limit <= 0 prints all). Debugging aid.
func (t *HessianTape[T]) PrintNodes(w io.Writer, limit int) {
	n := len(t.nodes)
	if limit > 0 && limit < n {
		n = limit
	}
	for i := 0; i < n; i++ {
		nd := &t.nodes[i]
		fmt.Fprintf(w, "%d: parents (%d, %d), weights (%v, %v), second (%v, %v, %v)\n",
			i, nd.parent0, nd.parent1, nd.weight0, nd.weight1,
			nd.weight00, nd.weight01, nd.weight11)
	}
}

// Clear resets the tape for a fresh recording. Tracking state is preserved.
func (t *HessianTape[T]) Clear() {
	t.nodes = t.nodes[:0]
	t.roster = t.roster[:0]
}

// unary records value = op(x) with local partials dx and dxx.
func (t *HessianTape[T]) unary(x Variable[T], value, dx, dxx T) Variable[T] {
	checkOperand(x, len(t.nodes))
	if !t.tracking || !x.Tracked() {
		return Variable[T]{index: untracked, value: value}
	}
	i := len(t.nodes)
	t.nodes = append(t.nodes, hessianNode[T]{
		parent0:  x.index,
		parent1:  i,
		weight0:  dx,
		weight00: dxx,
	})
	return Variable[T]{index: i, value: value}
}

// binary records value = op(x, y) with first partials dx, dy and second
// partials dxx, dxy, dyy. An untracked operand's slot is recorded as a
// zero-weight self-parent with its second partials masked, so constants
// contribute neither gradient nor curvature.
func (t *HessianTape[T]) binary(x, y Variable[T], value, dx, dy, dxx, dxy, dyy T) Variable[T] {
	n := len(t.nodes)
	checkOperand(x, n)
	checkOperand(y, n)
	if !t.tracking || (!x.Tracked() && !y.Tracked()) {
		return Variable[T]{index: untracked, value: value}
	}
	i := n
	nd := hessianNode[T]{parent0: i, parent1: i}
	if x.Tracked() {
		nd.parent0, nd.weight0, nd.weight00 = x.index, dx, dxx
	}
	if y.Tracked() {
		nd.parent1, nd.weight1, nd.weight11 = y.index, dy, dyy
	}
	if x.Tracked() && y.Tracked() {
		nd.weight01 = dxy
	}
	t.nodes = append(t.nodes, nd)
	return Variable[T]{index: i, value: value}
}

// ReverseAccumulate computes the gradient of result with respect to every
// independent variable, in roster order, without touching second-order
// information. Equivalent to ReverseAccumulateSeeded with seed 1.
func (t *HessianTape[T]) ReverseAccumulate(result Variable[T]) []T {
	return t.ReverseAccumulateSeeded(result, 1)
}

// ReverseAccumulateSeeded runs the first-order reverse sweep with a
// caller-chosen seed adjoint at the result node.
func (t *HessianTape[T]) ReverseAccumulateSeeded(result Variable[T], seed T) []T {
	n := len(t.nodes)
	if result.index < 0 || result.index >= n {
		panic(fmt.Sprintf("autodiff: result variable (index %d) is not a tracked node of this tape (%d nodes)", result.index, n))
	}
	adjoint := make([]T, n)
	adjoint[result.index] = seed
	for i := n - 1; i >= 0; i-- {
		a := adjoint[i]
		if a == 0 {
			continue
		}
		nd := &t.nodes[i]
		adjoint[nd.parent0] += a * nd.weight0
		adjoint[nd.parent1] += a * nd.weight1
	}
	grad := make([]T, len(t.roster))
	for k, idx := range t.roster {
		grad[k] = adjoint[idx]
	}
	return grad
}
