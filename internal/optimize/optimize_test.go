package optimize_test

import (
	"errors"
	"math"
	"testing"

	"github.com/spindle-math/spindle/internal/autodiff"
	"github.com/spindle-math/spindle/internal/optimize"
)

// Helper to check float equality with tolerance.
func closeTo(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// bowl is f(x, y) = (x-3)² + 2(y+1)², minimized at (3, -1).
func bowl(t *autodiff.GradientTape[float64], x []autodiff.Variable[float64]) autodiff.Variable[float64] {
	dx := t.SubScalar(x[0], 3)
	dy := t.AddScalar(x[1], 1)
	return t.Add(t.Multiply(dx, dx), t.MulScalar(t.Multiply(dy, dy), 2))
}

func hessianBowl(t *autodiff.HessianTape[float64], x []autodiff.Variable[float64]) autodiff.Variable[float64] {
	dx := t.SubScalar(x[0], 3)
	dy := t.AddScalar(x[1], 1)
	return t.Add(t.Multiply(dx, dx), t.MulScalar(t.Multiply(dy, dy), 2))
}

// TestGradientDescent_SingleStep tests one descent update on f(x) = x².
func TestGradientDescent_SingleStep(t *testing.T) {
	opt := optimize.NewGradientDescent(optimize.GradientDescentConfig[float64]{
		LearningRate: 0.1,
		MaxSteps:     1,
		Tolerance:    1e-15,
	})

	res, err := opt.Minimize(func(tp *autodiff.GradientTape[float64], x []autodiff.Variable[float64]) autodiff.Variable[float64] {
		return tp.Multiply(x[0], x[0])
	}, []float64{2.0})

	if !errors.Is(err, optimize.ErrNotConverged) {
		t.Fatalf("Expected ErrNotConverged, got %v", err)
	}
	// x_1 = x_0 - lr * f'(x_0) = 2.0 - 0.1 * 4.0
	if want := 2.0 - 0.1*4.0; res.X[0] != want {
		t.Errorf("After one step x = %v, want %v", res.X[0], want)
	}
	if res.Iterations != 1 || res.Converged {
		t.Errorf("Result = %+v, want 1 non-converged step", res)
	}
}

// TestGradientDescent_WithMomentum tests two momentum updates on f(x) = x,
// whose gradient is constantly one.
func TestGradientDescent_WithMomentum(t *testing.T) {
	opt := optimize.NewGradientDescent(optimize.GradientDescentConfig[float64]{
		LearningRate: 0.1,
		Momentum:     0.9,
		MaxSteps:     2,
		Tolerance:    1e-15,
	})

	res, err := opt.Minimize(func(tp *autodiff.GradientTape[float64], x []autodiff.Variable[float64]) autodiff.Variable[float64] {
		return x[0]
	}, []float64{1.0})

	if !errors.Is(err, optimize.ErrNotConverged) {
		t.Fatalf("Expected ErrNotConverged, got %v", err)
	}
	// Step 1: v = 1.0,  x = 1.0 - 0.1*1.0 = 0.9
	// Step 2: v = 1.9,  x = 0.9 - 0.1*1.9 = 0.71
	if !closeTo(res.X[0], 0.71, 1e-12) {
		t.Errorf("After two momentum steps x = %v, want 0.71", res.X[0])
	}
}

func TestGradientDescent_ConvergesOnQuadratic(t *testing.T) {
	opt := optimize.NewGradientDescent(optimize.GradientDescentConfig[float64]{
		LearningRate: 0.4,
		Tolerance:    1e-10,
	})

	res, err := opt.Minimize(bowl, []float64{0, 0})
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if !res.Converged {
		t.Fatal("Expected convergence")
	}
	if !closeTo(res.X[0], 3, 1e-8) || !closeTo(res.X[1], -1, 1e-8) {
		t.Errorf("Minimum at (%v, %v), want (3, -1)", res.X[0], res.X[1])
	}
	if res.Value > 1e-16 {
		t.Errorf("Objective at minimum = %v, want ~0", res.Value)
	}
	if res.Iterations == 0 {
		t.Error("Expected at least one step from a non-stationary start")
	}
}

func TestGradientDescent_StartsAtMinimum(t *testing.T) {
	opt := optimize.NewGradientDescent(optimize.GradientDescentConfig[float64]{})

	res, err := opt.Minimize(bowl, []float64{3, -1})
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if !res.Converged || res.Iterations != 0 {
		t.Errorf("Result = %+v, want immediate convergence with zero steps", res)
	}
}

func TestGradientDescent_ConstantObjective(t *testing.T) {
	opt := optimize.NewGradientDescent(optimize.GradientDescentConfig[float64]{})

	_, err := opt.Minimize(func(tp *autodiff.GradientTape[float64], x []autodiff.Variable[float64]) autodiff.Variable[float64] {
		return tp.Constant(5)
	}, []float64{1})

	if !errors.Is(err, optimize.ErrConstant) {
		t.Fatalf("Expected ErrConstant, got %v", err)
	}
}

func TestGradientDescent_EmptyStart(t *testing.T) {
	opt := optimize.NewGradientDescent(optimize.GradientDescentConfig[float64]{})
	if _, err := opt.Minimize(bowl, nil); err == nil {
		t.Fatal("Expected error for empty starting point")
	}
}

func TestGradientDescent_Float32(t *testing.T) {
	opt := optimize.NewGradientDescent(optimize.GradientDescentConfig[float32]{
		LearningRate: 0.25,
		Tolerance:    1e-6,
	})

	res, err := opt.Minimize(func(tp *autodiff.GradientTape[float32], x []autodiff.Variable[float32]) autodiff.Variable[float32] {
		d := tp.SubScalar(x[0], 1)
		return tp.Multiply(d, d)
	}, []float32{4})

	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if !closeTo(float64(res.X[0]), 1, 1e-5) {
		t.Errorf("Minimum at %v, want 1", res.X[0])
	}
}

// TestNewton_QuadraticSingleStep tests that one full Newton step lands
// exactly on the minimum of a quadratic.
func TestNewton_QuadraticSingleStep(t *testing.T) {
	opt := optimize.NewNewton(optimize.NewtonConfig[float64]{})

	res, err := opt.Minimize(hessianBowl, []float64{8, 4})
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if !res.Converged || res.Iterations != 1 {
		t.Fatalf("Result = %+v, want convergence in exactly one step", res)
	}
	// The Hessian is diagonal and constant, so the solve is exact.
	if res.X[0] != 3 || res.X[1] != -1 {
		t.Errorf("Minimum at (%v, %v), want (3, -1)", res.X[0], res.X[1])
	}
	if res.GradNorm != 0 {
		t.Errorf("Gradient norm = %v, want exactly 0", res.GradNorm)
	}
}

// TestNewton_Rosenbrock tests full Newton steps on the classic banana
// valley from the standard starting point.
func TestNewton_Rosenbrock(t *testing.T) {
	rosenbrock := func(tp *autodiff.HessianTape[float64], x []autodiff.Variable[float64]) autodiff.Variable[float64] {
		a := tp.ScalarSub(1, x[0])
		b := tp.Subtract(x[1], tp.Multiply(x[0], x[0]))
		return tp.Add(tp.Multiply(a, a), tp.MulScalar(tp.Multiply(b, b), 100))
	}

	opt := optimize.NewNewton(optimize.NewtonConfig[float64]{
		MaxSteps:  50,
		Tolerance: 1e-10,
	})
	res, err := opt.Minimize(rosenbrock, []float64{-1.2, 1})
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if !res.Converged {
		t.Fatal("Expected convergence")
	}
	if !closeTo(res.X[0], 1, 1e-6) || !closeTo(res.X[1], 1, 1e-6) {
		t.Errorf("Minimum at (%v, %v), want (1, 1)", res.X[0], res.X[1])
	}
	if res.Iterations >= 50 {
		t.Errorf("Took %d steps, expected far fewer", res.Iterations)
	}
}

func TestNewton_SingularHessian(t *testing.T) {
	opt := optimize.NewNewton(optimize.NewtonConfig[float64]{})

	// A linear objective has a zero Hessian everywhere.
	res, err := opt.Minimize(func(tp *autodiff.HessianTape[float64], x []autodiff.Variable[float64]) autodiff.Variable[float64] {
		return x[0]
	}, []float64{1})

	if err == nil {
		t.Fatal("Expected solver error for singular Hessian")
	}
	if errors.Is(err, optimize.ErrNotConverged) {
		t.Fatal("Singular Hessian should not report ErrNotConverged")
	}
	if res == nil || res.Converged {
		t.Fatalf("Result = %+v, want non-converged state at the failure point", res)
	}
}

func TestNewton_StepBudget(t *testing.T) {
	opt := optimize.NewNewton(optimize.NewtonConfig[float64]{
		MaxSteps:  1,
		Tolerance: 1e-12,
	})

	// cosh has a positive Hessian everywhere but needs several Newton
	// steps from x = 5.
	res, err := opt.Minimize(func(tp *autodiff.HessianTape[float64], x []autodiff.Variable[float64]) autodiff.Variable[float64] {
		return tp.Cosh(x[0])
	}, []float64{5})

	if !errors.Is(err, optimize.ErrNotConverged) {
		t.Fatalf("Expected ErrNotConverged, got %v", err)
	}
	if res.Iterations != 1 {
		t.Errorf("Iterations = %d, want 1", res.Iterations)
	}
}
