// Package autodiff implements reverse-mode automatic differentiation over
// append-only tapes.
//
// A tape records every elementary operation performed on tracked variables
// as a node carrying the operand indices and the local partial derivatives
// ("weights") computed analytically at recording time. Because nodes are
// appended in creation order, the node table is already topologically
// sorted, and a single descending sweep propagates adjoints from the result
// back to the independent variables.
//
// Two tape kinds are provided:
//   - GradientTape: first-order nodes, gradient accumulation, optional
//     checkpointing and a parallel sweep variant.
//   - HessianTape: nodes additionally carry local second partials, enabling
//     exact Hessians in one extra pass.
//
// Usage:
//
//	tape := autodiff.NewGradientTape[float64]()
//	x := tape.CreateVariable(1.23)
//	y := tape.CreateVariable(0.66)
//	f := tape.Multiply(tape.Sin(x), tape.Exp(y))
//	grad := tape.ReverseAccumulate(f) // [df/dx, df/dy]
package autodiff

import (
	"fmt"

	"github.com/spindle-math/spindle/internal/scalar"
)

// untracked marks a Variable that carries a value but no tape node:
// constants, and results produced while tracking is off. Untracked operands
// contribute no adjoint flow.
const untracked = -1

// checkOperand panics if x cannot belong to a tape with n recorded nodes.
// Foreign variables with indices below n are indistinguishable from local
// ones and remain the caller's responsibility.
func checkOperand[T scalar.Float](x Variable[T], n int) {
	if x.index >= n {
		panic(fmt.Sprintf("autodiff: variable index %d out of range for tape with %d nodes (foreign tape?)", x.index, n))
	}
}

func anyNonzero[T scalar.Float](xs []T) bool {
	for _, x := range xs {
		if x != 0 {
			return true
		}
	}
	return false
}
