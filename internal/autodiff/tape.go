package autodiff

import (
	"fmt"
	"io"

	"github.com/spindle-math/spindle/internal/scalar"
)

// GradientTape records elementary operations on tracked variables and
// computes first-order derivatives by reverse accumulation.
//
// Usage:
//
//	tape := NewGradientTape[float64]()
//	x := tape.CreateVariable(2.0)
//	y := tape.Multiply(x, x)
//	grad := tape.ReverseAccumulate(y) // [4.0]
//
// The tape owns its node table exclusively; recording and accumulation
// assume single-threaded access. Nodes may continue to be appended after an
// accumulation, and each accumulation answers for the full tape recorded so
// far.
type GradientTape[T scalar.Float] struct {
	nodes     nodeArena[T]
	roster    []int // node indices of independent variables, creation order
	segments  []segment[T]
	tracking  bool
	inSegment bool
	replay    replayState
}

// replayState pins recording to a checkpoint segment's original index range
// while the segment is being rematerialized.
type replayState struct {
	active bool
	next   int
	end    int
}

// NewGradientTape creates an empty tape with tracking enabled.
func NewGradientTape[T scalar.Float]() *GradientTape[T] {
	return &GradientTape[T]{tracking: true}
}

// CreateVariable appends a leaf node and registers it as an independent
// variable. Roster position equals call order and determines the position
// of this variable's entry in accumulated gradients.
//
// Variable creation always records, regardless of the tracking flag, and is
// not allowed inside checkpoint segments.
func (t *GradientTape[T]) CreateVariable(value T) Variable[T] {
	if t.inSegment || t.replay.active {
		panic("autodiff: CreateVariable inside a checkpoint segment")
	}
	i := t.nodes.len()
	t.nodes.append(gradientNode[T]{parent0: i, parent1: i})
	t.roster = append(t.roster, i)
	return Variable[T]{index: i, value: value}
}

// CreateVariableVector3 creates three independent variables at once,
// rostered in X, Y, Z order.
func (t *GradientTape[T]) CreateVariableVector3(x, y, z T) VariableVector3[T] {
	return VariableVector3[T]{
		X: t.CreateVariable(x),
		Y: t.CreateVariable(y),
		Z: t.CreateVariable(z),
	}
}

// Constant returns an untracked variable holding c. Constants occupy no
// node and receive no derivative; they may be mixed freely with tracked
// operands in any recording method.
func (t *GradientTape[T]) Constant(c T) Variable[T] {
	return Variable[T]{index: untracked, value: c}
}

// IsTracking reports whether recording methods currently append nodes.
func (t *GradientTape[T]) IsTracking() bool {
	return t.tracking
}

// StopTracking disables recording: subsequent operations compute forward
// values only and return untracked variables.
func (t *GradientTape[T]) StopTracking() {
	t.tracking = false
}

// ResumeTracking re-enables recording.
func (t *GradientTape[T]) ResumeTracking() {
	t.tracking = true
}

// NodeCount returns the number of recorded nodes.
func (t *GradientTape[T]) NodeCount() int {
	return t.nodes.len()
}

// VariableCount returns the number of independent variables.
func (t *GradientTape[T]) VariableCount() int {
	return len(t.roster)
}

// PrintNodes writes the node table to w, one node per line, up to limit
// nodes (limit <= 0 prints all). Nodes inside evicted checkpoint segments
// print as evicted. Debugging aid.
func (t *GradientTape[T]) PrintNodes(w io.Writer, limit int) {
	n := t.nodes.len()
	if limit > 0 && limit < n {
		n = limit
	}
	for i := 0; i < n; i++ {
		if !t.nodes.materialized(i) {
			fmt.Fprintf(w, "%d: (evicted)\n", i)
			continue
		}
		nd := t.nodes.at(i)
		fmt.Fprintf(w, "%d: parents (%d, %d), weights (%v, %v)\n",
			i, nd.parent0, nd.parent1, nd.weight0, nd.weight1)
	}
}

// Clear resets the tape for a fresh recording, dropping all nodes, roster
// entries and checkpoint segments. Tracking state is preserved.
func (t *GradientTape[T]) Clear() {
	if t.replay.active {
		panic("autodiff: Clear during checkpoint replay")
	}
	t.nodes.reset()
	t.roster = t.roster[:0]
	t.segments = t.segments[:0]
	t.inSegment = false
}

// nextIndex returns the index the next recorded node will occupy.
func (t *GradientTape[T]) nextIndex() int {
	if t.replay.active {
		return t.replay.next
	}
	return t.nodes.len()
}

// record stores nd and returns the variable referring to it. During
// checkpoint replay the node is written back into the segment's original
// index range instead of being appended.
func (t *GradientTape[T]) record(nd gradientNode[T], value T) Variable[T] {
	if t.replay.active {
		i := t.replay.next
		if i >= t.replay.end {
			panic(fmt.Sprintf("autodiff: checkpoint replay exceeded original segment length %d", t.replay.end))
		}
		t.nodes.set(i, nd)
		t.replay.next++
		return Variable[T]{index: i, value: value}
	}
	return Variable[T]{index: t.nodes.append(nd), value: value}
}

// unary records value = op(x) with local partial dx. Untracked operands
// yield untracked results; with tracking off the value passes through
// unrecorded.
func (t *GradientTape[T]) unary(x Variable[T], value, dx T) Variable[T] {
	checkOperand(x, t.nodes.len())
	if (!t.tracking && !t.replay.active) || !x.Tracked() {
		return Variable[T]{index: untracked, value: value}
	}
	i := t.nextIndex()
	return t.record(gradientNode[T]{
		parent0: x.index,
		parent1: i,
		weight0: dx,
	}, value)
}

// binary records value = op(x, y) with local partials dx, dy. An untracked
// operand's slot is recorded as a zero-weight self-parent, so constants
// flow through without contributing adjoints.
func (t *GradientTape[T]) binary(x, y Variable[T], value, dx, dy T) Variable[T] {
	n := t.nodes.len()
	checkOperand(x, n)
	checkOperand(y, n)
	if (!t.tracking && !t.replay.active) || (!x.Tracked() && !y.Tracked()) {
		return Variable[T]{index: untracked, value: value}
	}
	i := t.nextIndex()
	nd := gradientNode[T]{parent0: i, parent1: i}
	if x.Tracked() {
		nd.parent0, nd.weight0 = x.index, dx
	}
	if y.Tracked() {
		nd.parent1, nd.weight1 = y.index, dy
	}
	return t.record(nd, value)
}
