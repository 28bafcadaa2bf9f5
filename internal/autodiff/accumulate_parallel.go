package autodiff

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/spindle-math/spindle/internal/parallel"
)

// adjointStripes is the number of mutexes guarding shared adjoint slots in
// the parallel sweep. Power of two so the stripe index is a mask.
const adjointStripes = 64

// ReverseAccumulateParallel computes the same gradient as ReverseAccumulate
// using multiple goroutines. Nodes are processed in waves: a node becomes
// ready once every node that references it as a parent has contributed, so
// each contribution is applied exactly once. Writes to shared adjoint slots
// are serialized through striped locks.
//
// Accepted trade-off: goroutines apply additions into an adjoint slot in
// nondeterministic order, and floating-point addition is not associative,
// so results agree with the sequential sweep to rounding, not bitwise.
//
// Falls back to the sequential sweep when cfg disables parallelism, when
// the tape is too small to amortize scheduling, or when the tape carries
// checkpoint segments (segment replay is inherently sequential).
func (t *GradientTape[T]) ReverseAccumulateParallel(result Variable[T], cfg parallel.Config) []T {
	n := t.nodes.len()
	if result.index < 0 || result.index >= n {
		panic(fmt.Sprintf("autodiff: result variable (index %d) is not a tracked node of this tape (%d nodes)", result.index, n))
	}
	if len(t.segments) > 0 || cfg.Workers(n) == 1 {
		return t.ReverseAccumulateSeeded(result, 1)
	}

	adjoint := make([]T, n)
	adjoint[result.index] = 1

	// dependents[i] counts the nodes that reference i as a parent.
	// Self-parent edges (leaves, unused unary slots) are structural filler
	// and excluded.
	dependents := make([]int32, n)
	for i := 0; i < n; i++ {
		nd := t.nodes.at(i)
		if nd.parent0 != i {
			dependents[nd.parent0]++
		}
		if nd.parent1 != i {
			dependents[nd.parent1]++
		}
	}

	var stripes [adjointStripes]sync.Mutex

	// First wave: nodes nothing depends on (the result node and any dead
	// ends). Later waves are produced by count-down.
	wave := make([]int, 0, 64)
	for i := 0; i < n; i++ {
		if dependents[i] == 0 {
			wave = append(wave, i)
		}
	}

	var mu sync.Mutex
	for len(wave) > 0 {
		next := make([]int, 0, len(wave))
		parallel.For(len(wave), func(k int) {
			i := wave[k]
			// Every dependent finished before i entered this wave, so the
			// adjoint is final and safe to read unlocked.
			a := adjoint[i]
			nd := t.nodes.at(i)
			parents := [2]int{nd.parent0, nd.parent1}
			weights := [2]T{nd.weight0, nd.weight1}
			for e := 0; e < 2; e++ {
				p := parents[e]
				if p == i {
					continue
				}
				if amount := a * weights[e]; amount != 0 {
					s := &stripes[p&(adjointStripes-1)]
					s.Lock()
					adjoint[p] += amount
					s.Unlock()
				}
				if atomic.AddInt32(&dependents[p], -1) == 0 {
					mu.Lock()
					next = append(next, p)
					mu.Unlock()
				}
			}
		}, cfg)
		wave = next
	}

	return t.gradientOf(adjoint)
}
