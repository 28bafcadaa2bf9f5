package optimize

import (
	"fmt"

	"github.com/spindle-math/spindle/internal/autodiff"
	"github.com/spindle-math/spindle/internal/linalg"
	"github.com/spindle-math/spindle/internal/scalar"
)

// Newton minimizes an objective by damped Newton iteration, solving the
// exact Hessian system at every step:
//
//	H(x) d = ∇f(x)
//	x = x - damping * d
//
// Near a minimum with a positive-definite Hessian the iteration converges
// quadratically. Far from one it can diverge or walk into saddle points;
// the step solve also fails outright on a singular Hessian. Both failure
// modes surface as errors rather than silent bad steps.
type Newton[T scalar.Float] struct {
	damping   T
	maxSteps  int
	tolerance T
}

// NewtonConfig holds configuration for Newton.
type NewtonConfig[T scalar.Float] struct {
	Damping   T   // Step scale in (0, 1] (default: 1, full Newton steps)
	MaxSteps  int // Update budget before giving up (default: 50)
	Tolerance T   // Gradient norm that counts as stationary (default: 1e-10)
}

// NewNewton creates a Newton optimizer, filling in defaults for zero config
// fields.
func NewNewton[T scalar.Float](config NewtonConfig[T]) *Newton[T] {
	if config.Damping == 0 {
		config.Damping = 1
	}
	if config.MaxSteps == 0 {
		config.MaxSteps = 50
	}
	if config.Tolerance == 0 {
		config.Tolerance = 1e-10
	}
	return &Newton[T]{
		damping:   config.Damping,
		maxSteps:  config.MaxSteps,
		tolerance: config.Tolerance,
	}
}

// Minimize runs Newton iteration from x0 until the gradient norm falls
// under the tolerance or the step budget runs out. The returned result
// describes the final point in both cases; the budget case also returns
// ErrNotConverged, and a singular Hessian aborts with the solver's error.
func (n *Newton[T]) Minimize(f HessianObjective[T], x0 []T) (*Result[T], error) {
	if len(x0) == 0 {
		return nil, fmt.Errorf("newton: empty starting point")
	}

	x := append([]T(nil), x0...)
	tape := autodiff.NewHessianTape[T]()
	res := &Result[T]{X: x}

	for steps := 0; ; steps++ {
		tape.Clear()
		vars := make([]autodiff.Variable[T], len(x))
		for i, v := range x {
			vars[i] = tape.CreateVariable(v)
		}
		fv := f(tape, vars)
		if !fv.Tracked() {
			return nil, fmt.Errorf("newton: %w", ErrConstant)
		}
		grad, hess := tape.ReverseAccumulateHessian(fv)

		res.Value = fv.Value()
		res.GradNorm = gradientNorm(grad)
		res.Iterations = steps
		if res.GradNorm <= n.tolerance {
			res.Converged = true
			return res, nil
		}
		if steps == n.maxSteps {
			return res, fmt.Errorf("newton: %w after %d steps (gradient norm %v)",
				ErrNotConverged, steps, res.GradNorm)
		}

		dir, err := linalg.Solve(hess, linalg.VectorOf(grad...))
		if err != nil {
			return res, fmt.Errorf("newton: step %d: %w", steps+1, err)
		}
		for i := range x {
			x[i] -= n.damping * dir.At(i)
		}
	}
}
