package autodiff

import (
	"fmt"

	"github.com/spindle-math/spindle/internal/linalg"
)

// ReverseAccumulateHessian computes both the gradient and the Hessian of
// result with respect to the independent variables, indexed in roster
// order.
//
// The algorithm propagates curvature with per-node leaf-gradient rows. An
// ascending pass computes G[i] = dv_i/dleaf for every node (leaf rows are
// unit vectors; an interior row is weight0·G[parent0] + weight1·G[parent1]).
// The descending pass then runs the ordinary adjoint sweep and, at every
// node with a nonzero adjoint and any nonzero second partial, adds the
// second-order chain rule term
//
//	a · (w00·g0⊗g0 + w01·(g0⊗g1 + g1⊗g0) + w11·g1⊗g1)
//
// into H, where g0, g1 are the parents' leaf-gradient rows. Each term is
// symmetric, so H is symmetric by construction; repeated leaf use
// accumulates. Memory is O(nodes × leaves).
func (t *HessianTape[T]) ReverseAccumulateHessian(result Variable[T]) ([]T, *linalg.Matrix[T]) {
	n := len(t.nodes)
	if result.index < 0 || result.index >= n {
		panic(fmt.Sprintf("autodiff: result variable (index %d) is not a tracked node of this tape (%d nodes)", result.index, n))
	}
	leaves := len(t.roster)

	// rosterPos[i] is the roster position of leaf node i, or -1.
	rosterPos := make([]int, n)
	for i := range rosterPos {
		rosterPos[i] = -1
	}
	for k, idx := range t.roster {
		rosterPos[idx] = k
	}

	// Ascending pass: leaf-gradient rows, flat row-major.
	leafGrad := make([]T, n*leaves)
	for i := 0; i < n; i++ {
		row := leafGrad[i*leaves : (i+1)*leaves]
		if k := rosterPos[i]; k >= 0 {
			row[k] = 1
			continue
		}
		nd := &t.nodes[i]
		if nd.weight0 != 0 {
			g := leafGrad[nd.parent0*leaves : nd.parent0*leaves+leaves]
			for k := range row {
				row[k] += nd.weight0 * g[k]
			}
		}
		if nd.weight1 != 0 {
			g := leafGrad[nd.parent1*leaves : nd.parent1*leaves+leaves]
			for k := range row {
				row[k] += nd.weight1 * g[k]
			}
		}
	}

	// Descending pass: adjoint sweep plus second-order contributions.
	adjoint := make([]T, n)
	adjoint[result.index] = 1
	hess := linalg.NewMatrix[T](leaves, leaves)
	h := hess.Data()
	for i := n - 1; i >= 0; i-- {
		a := adjoint[i]
		if a == 0 {
			continue
		}
		nd := &t.nodes[i]
		adjoint[nd.parent0] += a * nd.weight0
		adjoint[nd.parent1] += a * nd.weight1
		if nd.weight00 == 0 && nd.weight01 == 0 && nd.weight11 == 0 {
			continue
		}
		g0 := leafGrad[nd.parent0*leaves : nd.parent0*leaves+leaves]
		g1 := leafGrad[nd.parent1*leaves : nd.parent1*leaves+leaves]
		for j := 0; j < leaves; j++ {
			// Row j of the rank-two update, folded so each H entry costs
			// two multiplies: c0·g0[k] + c1·g1[k].
			c0 := a * (nd.weight00*g0[j] + nd.weight01*g1[j])
			c1 := a * (nd.weight01*g0[j] + nd.weight11*g1[j])
			if c0 == 0 && c1 == 0 {
				continue
			}
			hrow := h[j*leaves : (j+1)*leaves]
			for k := 0; k < leaves; k++ {
				hrow[k] += c0*g0[k] + c1*g1[k]
			}
		}
	}

	grad := make([]T, leaves)
	for k, idx := range t.roster {
		grad[k] = adjoint[idx]
	}
	return grad, hess
}
