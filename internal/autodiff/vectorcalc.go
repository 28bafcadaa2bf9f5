package autodiff

import (
	"github.com/spindle-math/spindle/internal/linalg"
	"github.com/spindle-math/spindle/internal/scalar"
)

// ScalarField is a scalar function of three variables recorded on a
// gradient tape. Fields must derive their result from the supplied point
// only.
type ScalarField[T scalar.Float] func(t *GradientTape[T], p VariableVector3[T]) Variable[T]

// VectorField is a function of three variables with three components,
// recorded on a shared gradient tape. A component that does not depend on
// the coordinates may be returned as an untracked constant.
type VectorField[T scalar.Float] func(t *GradientTape[T], p VariableVector3[T]) (fx, fy, fz Variable[T])

// HessianScalarField is a scalar field recorded on a Hessian tape, for
// helpers that need second derivatives.
type HessianScalarField[T scalar.Float] func(t *HessianTape[T], p VariableVector3[T]) Variable[T]

// Gradient evaluates ∇f at (x, y, z) with one recording and one reverse
// sweep.
func Gradient[T scalar.Float](f ScalarField[T], x, y, z T) [3]T {
	tape := NewGradientTape[T]()
	p := tape.CreateVariableVector3(x, y, z)
	g := tape.ReverseAccumulate(f(tape, p))
	return [3]T{g[0], g[1], g[2]}
}

// DirectionalDerivative evaluates ∇f · v at (x, y, z). The direction v is
// not normalized.
func DirectionalDerivative[T scalar.Float](v [3]T, f ScalarField[T], x, y, z T) T {
	g := Gradient(f, x, y, z)
	return v[0]*g[0] + v[1]*g[1] + v[2]*g[2]
}

// jacobianRows records F once and runs one reverse sweep per component,
// returning the three gradient rows of the Jacobian. An untracked component
// is constant over the coordinates, so its row is zero.
func jacobianRows[T scalar.Float](f VectorField[T], x, y, z T) (g0, g1, g2 []T) {
	tape := NewGradientTape[T]()
	p := tape.CreateVariableVector3(x, y, z)
	fx, fy, fz := f(tape, p)
	row := func(c Variable[T]) []T {
		if !c.Tracked() {
			return make([]T, tape.VariableCount())
		}
		return tape.ReverseAccumulate(c)
	}
	return row(fx), row(fy), row(fz)
}

// Divergence evaluates ∇·F at (x, y, z).
func Divergence[T scalar.Float](f VectorField[T], x, y, z T) T {
	g0, g1, g2 := jacobianRows(f, x, y, z)
	return g0[0] + g1[1] + g2[2]
}

// Curl evaluates ∇×F at (x, y, z).
func Curl[T scalar.Float](f VectorField[T], x, y, z T) [3]T {
	g0, g1, g2 := jacobianRows(f, x, y, z)
	return [3]T{
		g2[1] - g1[2],
		g0[2] - g2[0],
		g1[0] - g0[1],
	}
}

// Jacobian evaluates the 3×3 Jacobian of F at (x, y, z); row i holds the
// gradient of component i.
func Jacobian[T scalar.Float](f VectorField[T], x, y, z T) *linalg.Matrix[T] {
	g0, g1, g2 := jacobianRows(f, x, y, z)
	m := linalg.NewMatrix[T](3, 3)
	for k := 0; k < 3; k++ {
		m.Set(0, k, g0[k])
		m.Set(1, k, g1[k])
		m.Set(2, k, g2[k])
	}
	return m
}

// JVP evaluates the Jacobian-vector product J_F·v at (x, y, z).
func JVP[T scalar.Float](f VectorField[T], v [3]T, x, y, z T) [3]T {
	g0, g1, g2 := jacobianRows(f, x, y, z)
	dot := func(g []T) T { return g[0]*v[0] + g[1]*v[1] + g[2]*v[2] }
	return [3]T{dot(g0), dot(g1), dot(g2)}
}

// VJP evaluates the vector-Jacobian product vᵀ·J_F at (x, y, z).
func VJP[T scalar.Float](v [3]T, f VectorField[T], x, y, z T) [3]T {
	g0, g1, g2 := jacobianRows(f, x, y, z)
	var out [3]T
	for k := 0; k < 3; k++ {
		out[k] = v[0]*g0[k] + v[1]*g1[k] + v[2]*g2[k]
	}
	return out
}

// Laplacian evaluates ∇²f at (x, y, z) as the trace of the Hessian.
func Laplacian[T scalar.Float](f HessianScalarField[T], x, y, z T) T {
	tape := NewHessianTape[T]()
	p := tape.CreateVariableVector3(x, y, z)
	_, hess := tape.ReverseAccumulateHessian(f(tape, p))
	return hess.At(0, 0) + hess.At(1, 1) + hess.At(2, 2)
}
