package autodiff

import "github.com/spindle-math/spindle/internal/scalar"

// gradientNode is one recorded elementary operation: the indices of its two
// operands and the local partial derivative with respect to each. Parent
// indices are always strictly less than the node's own index, so creation
// order is a topological order of the DAG.
//
// Leaf nodes (independent variables) are self-parented with zero weights,
// and so are the unused operand slots of unary operations: the reverse
// sweep's inner loop never branches on arity, and a self-contribution with
// zero weight is harmless.
type gradientNode[T scalar.Float] struct {
	parent0, parent1 int
	weight0, weight1 T // dv/dparent0, dv/dparent1
}

// hessianNode extends gradientNode with the local second partials needed to
// propagate curvature: d²v/dparent0², d²v/dparent0 dparent1, d²v/dparent1².
type hessianNode[T scalar.Float] struct {
	parent0, parent1 int
	weight0, weight1 T
	weight00         T // d²v/dparent0²
	weight01         T // d²v/dparent0 dparent1
	weight11         T // d²v/dparent1²
}
