package autodiff

import (
	"fmt"

	"github.com/spindle-math/spindle/internal/scalar"
)

// CheckpointFunc records a section of a computation on the given tape,
// reading only the supplied inputs, and returns the variables that later
// recording may use. It must be pure and deterministic: the backward sweep
// re-runs it to rebuild the segment's nodes, and a replay that diverges
// from the original recording produces wrong gradients (detected only when
// the node count diverges).
type CheckpointFunc[T scalar.Float] func(t *GradientTape[T], inputs []Variable[T]) []Variable[T]

// segment is one checkpointed range of the node table. Between the forward
// pass and its use in a backward sweep, the nodes in [start, end) are
// evicted; fn together with the saved inputs is enough to rebuild them.
type segment[T scalar.Float] struct {
	start, end int
	fn         CheckpointFunc[T]
	inputs     []Variable[T]
}

// Checkpoint records fn(inputs) and then evicts the recorded node range,
// bounding peak memory for long recordings. The returned outputs stay
// usable in later recording; during reverse accumulation the segment is
// rematerialized by re-running fn, swept, and evicted again. A segment
// whose whole adjoint range is zero is skipped without rematerialization.
//
// Segments may not create independent variables and may not nest; both are
// enforced. Purity of fn is the caller's obligation and is not checked.
func (t *GradientTape[T]) Checkpoint(fn CheckpointFunc[T], inputs ...Variable[T]) []Variable[T] {
	if t.replay.active {
		panic("autodiff: Checkpoint called during checkpoint replay")
	}
	if t.inSegment {
		panic("autodiff: checkpoint segments may not nest")
	}
	if !t.tracking {
		panic("autodiff: Checkpoint requires a tracking tape")
	}
	n := t.nodes.len()
	for _, in := range inputs {
		checkOperand(in, n)
	}

	in := append([]Variable[T](nil), inputs...)
	start := t.nodes.len()
	t.inSegment = true
	defer func() { t.inSegment = false }()
	outputs := fn(t, in)
	end := t.nodes.len()
	if end == start {
		return outputs
	}

	t.segments = append(t.segments, segment[T]{
		start:  start,
		end:    end,
		fn:     fn,
		inputs: in,
	})
	t.nodes.evict(start, end)
	return outputs
}

// rematerialize re-runs a segment's function with recording pinned to the
// segment's original index range. Determinism of fn makes the rebuilt
// nodes identical to the originals.
func (t *GradientTape[T]) rematerialize(seg *segment[T]) {
	t.replay = replayState{active: true, next: seg.start, end: seg.end}
	defer func() { t.replay = replayState{} }()
	seg.fn(t, seg.inputs)
	if t.replay.next != seg.end {
		panic(fmt.Sprintf("autodiff: checkpoint replay produced %d nodes, original segment had %d",
			t.replay.next-seg.start, seg.end-seg.start))
	}
}

// SegmentCount returns the number of recorded checkpoint segments.
func (t *GradientTape[T]) SegmentCount() int {
	return len(t.segments)
}

// MaterializedChunks reports how many node-storage chunks are currently
// resident. Exposed for memory accounting: after a Checkpoint call, chunks
// fully covered by the segment are released.
func (t *GradientTape[T]) MaterializedChunks() int {
	return t.nodes.materializedChunks()
}
