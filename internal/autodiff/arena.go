package autodiff

import (
	"fmt"

	"github.com/spindle-math/spindle/internal/scalar"
)

const (
	chunkShift = 12
	chunkCap   = 1 << chunkShift // nodes per chunk
	chunkMask  = chunkCap - 1
)

// nodeArena stores gradient nodes in fixed-size chunks so that checkpointed
// segments can be evicted: a chunk fully covered by an evicted segment is
// released to the garbage collector and reallocated only if the segment is
// replayed. Indices are stable across eviction.
type nodeArena[T scalar.Float] struct {
	chunks []*[chunkCap]gradientNode[T]
	n      int
}

func (a *nodeArena[T]) len() int {
	return a.n
}

func (a *nodeArena[T]) chunkFor(i int) *[chunkCap]gradientNode[T] {
	c := i >> chunkShift
	for c >= len(a.chunks) {
		a.chunks = append(a.chunks, nil)
	}
	if a.chunks[c] == nil {
		a.chunks[c] = new([chunkCap]gradientNode[T])
	}
	return a.chunks[c]
}

// append stores nd at the next free index and returns that index.
func (a *nodeArena[T]) append(nd gradientNode[T]) int {
	i := a.n
	a.chunkFor(i)[i&chunkMask] = nd
	a.n++
	return i
}

// at returns the node at index i. The chunk must be materialized; reading
// an evicted node is a sweep-logic bug, not a caller error.
func (a *nodeArena[T]) at(i int) *gradientNode[T] {
	c := a.chunks[i>>chunkShift]
	if c == nil {
		panic(fmt.Sprintf("autodiff: node %d read from evicted checkpoint segment", i))
	}
	return &c[i&chunkMask]
}

// set writes the node at index i, rematerializing its chunk if evicted.
// Used by checkpoint replay, which writes back into the original range.
func (a *nodeArena[T]) set(i int, nd gradientNode[T]) {
	a.chunkFor(i)[i&chunkMask] = nd
}

// evict releases every chunk fully contained in [start, end). Chunks
// partially covered at either edge keep their storage since they hold live
// neighboring nodes.
func (a *nodeArena[T]) evict(start, end int) {
	first := (start + chunkMask) >> chunkShift
	last := end >> chunkShift
	for c := first; c < last; c++ {
		a.chunks[c] = nil
	}
}

// materialized reports whether index i's chunk is backed by storage.
func (a *nodeArena[T]) materialized(i int) bool {
	c := i >> chunkShift
	return c < len(a.chunks) && a.chunks[c] != nil
}

// materializedChunks counts chunks currently backed by storage.
func (a *nodeArena[T]) materializedChunks() int {
	m := 0
	for _, c := range a.chunks {
		if c != nil {
			m++
		}
	}
	return m
}

// reset drops all nodes and storage.
func (a *nodeArena[T]) reset() {
	a.chunks = nil
	a.n = 0
}
