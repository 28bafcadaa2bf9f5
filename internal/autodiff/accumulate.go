package autodiff

import "fmt"

// ReverseAccumulate computes the gradient of result with respect to every
// independent variable, in roster (creation) order. Equivalent to
// ReverseAccumulateSeeded with seed 1.
func (t *GradientTape[T]) ReverseAccumulate(result Variable[T]) []T {
	return t.ReverseAccumulateSeeded(result, 1)
}

// ReverseAccumulateSeeded runs the reverse sweep with a caller-chosen seed
// adjoint at the result node, scaling every gradient entry by seed.
//
// The sweep allocates a dense adjoint array over the current node table,
// seeds adjoint[result], then walks indices from high to low adding
// a·weight into each parent's adjoint. Because parent indices are always
// smaller than the node's own index, one descending pass finalizes every
// adjoint after all of its dependents. Nodes with a zero adjoint are
// skipped: nothing downstream of them can contribute.
//
// The tape may keep growing afterwards; each call answers for the nodes
// recorded so far.
func (t *GradientTape[T]) ReverseAccumulateSeeded(result Variable[T], seed T) []T {
	n := t.nodes.len()
	if result.index < 0 || result.index >= n {
		panic(fmt.Sprintf("autodiff: result variable (index %d) is not a tracked node of this tape (%d nodes)", result.index, n))
	}
	adjoint := make([]T, n)
	adjoint[result.index] = seed
	t.sweep(adjoint)
	return t.gradientOf(adjoint)
}

// sweep runs the descending adjoint pass over the whole tape,
// rematerializing checkpointed segments on demand.
func (t *GradientTape[T]) sweep(adjoint []T) {
	hi := len(adjoint)
	for s := len(t.segments) - 1; s >= 0; s-- {
		seg := &t.segments[s]
		t.sweepRange(adjoint, hi, seg.end)
		// A segment whose entire adjoint range is zero contributes nothing
		// and is not worth rematerializing.
		if anyNonzero(adjoint[seg.start:seg.end]) {
			t.rematerialize(seg)
			t.sweepRange(adjoint, seg.end, seg.start)
			t.nodes.evict(seg.start, seg.end)
		}
		hi = seg.start
	}
	t.sweepRange(adjoint, hi, 0)
}

// sweepRange applies the adjoint recurrence to indices [lo, hi), descending.
func (t *GradientTape[T]) sweepRange(adjoint []T, hi, lo int) {
	for i := hi - 1; i >= lo; i-- {
		a := adjoint[i]
		if a == 0 {
			continue
		}
		nd := t.nodes.at(i)
		adjoint[nd.parent0] += a * nd.weight0
		adjoint[nd.parent1] += a * nd.weight1
	}
}

// gradientOf reads the roster entries out of a finished adjoint array.
func (t *GradientTape[T]) gradientOf(adjoint []T) []T {
	grad := make([]T, len(t.roster))
	for k, idx := range t.roster {
		grad[k] = adjoint[idx]
	}
	return grad
}
