package optimize

import (
	"fmt"

	"github.com/spindle-math/spindle/internal/autodiff"
	"github.com/spindle-math/spindle/internal/scalar"
)

// GradientDescent minimizes an objective by first-order descent.
//
// Update rule without momentum:
//
//	x = x - lr * ∇f(x)
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + ∇f(x)
//	x = x - lr * velocity
type GradientDescent[T scalar.Float] struct {
	learningRate T
	momentum     T
	maxSteps     int
	tolerance    T
}

// GradientDescentConfig holds configuration for GradientDescent.
type GradientDescentConfig[T scalar.Float] struct {
	LearningRate T   // Step size (default: 0.01)
	Momentum     T   // Momentum factor, range [0, 1) (default: 0)
	MaxSteps     int // Update budget before giving up (default: 1000)
	Tolerance    T   // Gradient norm that counts as stationary (default: 1e-8)
}

// NewGradientDescent creates a GradientDescent optimizer, filling in
// defaults for zero config fields.
func NewGradientDescent[T scalar.Float](config GradientDescentConfig[T]) *GradientDescent[T] {
	if config.LearningRate == 0 {
		config.LearningRate = 0.01
	}
	if config.MaxSteps == 0 {
		config.MaxSteps = 1000
	}
	if config.Tolerance == 0 {
		config.Tolerance = 1e-8
	}
	return &GradientDescent[T]{
		learningRate: config.LearningRate,
		momentum:     config.Momentum,
		maxSteps:     config.MaxSteps,
		tolerance:    config.Tolerance,
	}
}

// Minimize runs descent from x0 until the gradient norm falls under the
// tolerance or the step budget runs out. The returned result describes the
// final point in both cases; the budget case also returns ErrNotConverged.
func (g *GradientDescent[T]) Minimize(f Objective[T], x0 []T) (*Result[T], error) {
	if len(x0) == 0 {
		return nil, fmt.Errorf("gradient descent: empty starting point")
	}

	x := append([]T(nil), x0...)
	velocity := make([]T, len(x))
	tape := autodiff.NewGradientTape[T]()
	res := &Result[T]{X: x}

	for steps := 0; ; steps++ {
		tape.Clear()
		vars := make([]autodiff.Variable[T], len(x))
		for i, v := range x {
			vars[i] = tape.CreateVariable(v)
		}
		fv := f(tape, vars)
		if !fv.Tracked() {
			return nil, fmt.Errorf("gradient descent: %w", ErrConstant)
		}
		grad := tape.ReverseAccumulate(fv)

		res.Value = fv.Value()
		res.GradNorm = gradientNorm(grad)
		res.Iterations = steps
		if res.GradNorm <= g.tolerance {
			res.Converged = true
			return res, nil
		}
		if steps == g.maxSteps {
			return res, fmt.Errorf("gradient descent: %w after %d steps (gradient norm %v)",
				ErrNotConverged, steps, res.GradNorm)
		}

		for i := range x {
			velocity[i] = g.momentum*velocity[i] + grad[i]
			x[i] -= g.learningRate * velocity[i]
		}
	}
}
