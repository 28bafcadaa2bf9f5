package autodiff_test

import (
	"math"
	"strings"
	"testing"

	"github.com/spindle-math/spindle/internal/autodiff"
)

// TestTape_CreateVariable tests leaf creation and roster bookkeeping.
func TestTape_CreateVariable(t *testing.T) {
	tape := autodiff.NewGradientTape[float64]()

	x := tape.CreateVariable(1.5)
	y := tape.CreateVariable(-2.0)

	if x.Value() != 1.5 || y.Value() != -2.0 {
		t.Errorf("values = %v, %v, want 1.5, -2.0", x.Value(), y.Value())
	}
	if x.Index() != 0 || y.Index() != 1 {
		t.Errorf("indices = %d, %d, want 0, 1", x.Index(), y.Index())
	}
	if tape.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", tape.NodeCount())
	}
	if tape.VariableCount() != 2 {
		t.Errorf("VariableCount() = %d, want 2", tape.VariableCount())
	}
	if !x.Tracked() {
		t.Error("created variable should be tracked")
	}
}

// TestTape_CreateVariableVector3 tests bundled leaf creation order.
func TestTape_CreateVariableVector3(t *testing.T) {
	tape := autodiff.NewGradientTape[float64]()
	v := tape.CreateVariableVector3(1.0, 2.0, 3.0)

	if v.X.Index() != 0 || v.Y.Index() != 1 || v.Z.Index() != 2 {
		t.Errorf("indices = %d, %d, %d, want 0, 1, 2", v.X.Index(), v.Y.Index(), v.Z.Index())
	}
	if v.Values() != [3]float64{1.0, 2.0, 3.0} {
		t.Errorf("Values() = %v, want [1 2 3]", v.Values())
	}
	if tape.VariableCount() != 3 {
		t.Errorf("VariableCount() = %d, want 3", tape.VariableCount())
	}
}

// TestTape_Constant tests that constants are untracked and contribute no
// gradient.
func TestTape_Constant(t *testing.T) {
	tape := autodiff.NewGradientTape[float64]()
	x := tape.CreateVariable(3.0)
	c := tape.Constant(2.0)

	if c.Tracked() {
		t.Error("constant should be untracked")
	}
	before := tape.NodeCount()
	y := tape.Multiply(c, x) // 2x
	if tape.NodeCount() != before+1 {
		t.Errorf("constant operand should record a single node, added %d", tape.NodeCount()-before)
	}
	if y.Value() != 6.0 {
		t.Errorf("value = %v, want 6", y.Value())
	}

	grad := tape.ReverseAccumulate(y)
	if grad[0] != 2.0 {
		t.Errorf("d(2x)/dx = %v, want 2", grad[0])
	}
}

// TestTape_Tracking tests the tracking toggle.
func TestTape_Tracking(t *testing.T) {
	tape := autodiff.NewGradientTape[float64]()
	x := tape.CreateVariable(2.0)

	if !tape.IsTracking() {
		t.Error("tape should be tracking initially")
	}

	tape.StopTracking()
	if tape.IsTracking() {
		t.Error("tape should not be tracking after StopTracking()")
	}

	before := tape.NodeCount()
	y := tape.Multiply(x, x)
	if tape.NodeCount() != before {
		t.Error("operations should not record while tracking is off")
	}
	if y.Tracked() {
		t.Error("result should be untracked while tracking is off")
	}
	if y.Value() != 4.0 {
		t.Errorf("untracked result value = %v, want 4", y.Value())
	}

	tape.ResumeTracking()
	if !tape.IsTracking() {
		t.Error("tape should be tracking after ResumeTracking()")
	}
	z := tape.Multiply(x, x)
	if !z.Tracked() {
		t.Error("result should be tracked after ResumeTracking()")
	}
}

// TestTape_Clear tests tape clearing.
func TestTape_Clear(t *testing.T) {
	tape := autodiff.NewGradientTape[float64]()
	x := tape.CreateVariable(1.0)
	tape.Sin(x)

	if tape.NodeCount() == 0 {
		t.Error("tape should have recorded nodes")
	}

	tape.Clear()

	if tape.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d after Clear(), want 0", tape.NodeCount())
	}
	if tape.VariableCount() != 0 {
		t.Errorf("VariableCount() = %d after Clear(), want 0", tape.VariableCount())
	}
	if !tape.IsTracking() {
		t.Error("tracking state should be preserved across Clear()")
	}
}

// TestTape_ForeignVariablePanics tests fail-fast on a variable whose index
// cannot belong to the tape.
func TestTape_ForeignVariablePanics(t *testing.T) {
	big := autodiff.NewGradientTape[float64]()
	for i := 0; i < 10; i++ {
		big.CreateVariable(float64(i))
	}
	foreign := big.Sin(big.CreateVariable(1.0))

	small := autodiff.NewGradientTape[float64]()
	small.CreateVariable(1.0)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for foreign variable")
		}
	}()
	small.Sin(foreign)
}

// TestTape_AccumulateUntrackedPanics tests that accumulation rejects an
// untracked result.
func TestTape_AccumulateUntrackedPanics(t *testing.T) {
	tape := autodiff.NewGradientTape[float64]()
	tape.CreateVariable(1.0)
	c := tape.Constant(5.0)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for untracked result")
		}
	}()
	tape.ReverseAccumulate(c)
}

// TestTape_Float32 tests that the tape works for the float32 instantiation.
func TestTape_Float32(t *testing.T) {
	tape := autodiff.NewGradientTape[float32]()
	x := tape.CreateVariable(float32(2.0))
	y := tape.Multiply(x, tape.Sin(x))

	grad := tape.ReverseAccumulate(y)
	want := math.Sin(2.0) + 2.0*math.Cos(2.0)
	if math.Abs(float64(grad[0])-want) > 1e-6 {
		t.Errorf("d(x sin x)/dx = %v, want %v", grad[0], want)
	}
}

// TestVariable_String tests the debug rendering.
func TestVariable_String(t *testing.T) {
	tape := autodiff.NewGradientTape[float64]()
	x := tape.CreateVariable(1.5)
	c := tape.Constant(2.0)

	if got := x.String(); got != "var[0](1.5)" {
		t.Errorf("String() = %q, want %q", got, "var[0](1.5)")
	}
	if got := c.String(); got != "const(2)" {
		t.Errorf("String() = %q, want %q", got, "const(2)")
	}
}

// TestTape_PrintNodes tests the node table dump.
func TestTape_PrintNodes(t *testing.T) {
	tape := autodiff.NewGradientTape[float64]()
	x := tape.CreateVariable(2.0)
	tape.Multiply(x, x)

	var b strings.Builder
	tape.PrintNodes(&b, 0)
	want := "0: parents (0, 0), weights (0, 0)\n" +
		"1: parents (0, 0), weights (2, 2)\n"
	if b.String() != want {
		t.Errorf("PrintNodes output:\n%swant:\n%s", b.String(), want)
	}

	b.Reset()
	tape.PrintNodes(&b, 1)
	if got := strings.Count(b.String(), "\n"); got != 1 {
		t.Errorf("PrintNodes with limit 1 wrote %d lines, want 1", got)
	}
}

// TestHessianTape_PrintNodes tests the second-order node table dump.
func TestHessianTape_PrintNodes(t *testing.T) {
	tape := autodiff.NewHessianTape[float64]()
	x := tape.CreateVariable(2.0)
	tape.Multiply(x, x)

	var b strings.Builder
	tape.PrintNodes(&b, 0)
	want := "0: parents (0, 0), weights (0, 0), second (0, 0, 0)\n" +
		"1: parents (0, 0), weights (2, 2), second (0, 1, 0)\n"
	if b.String() != want {
		t.Errorf("PrintNodes output:\n%swant:\n%s", b.String(), want)
	}
}

// TestTape_CustomOperationMatchesBuiltin tests that a user-supplied
// operation reproduces its built-in equivalent.
func TestTape_CustomOperationMatchesBuiltin(t *testing.T) {
	builtin := autodiff.NewGradientTape[float64]()
	bx := builtin.CreateVariable(0.7)
	bg := builtin.ReverseAccumulate(builtin.Sin(bx))

	custom := autodiff.NewGradientTape[float64]()
	cx := custom.CreateVariable(0.7)
	cs := custom.CustomOperation(cx, math.Sin, math.Cos)
	cg := custom.ReverseAccumulate(cs)

	if bg[0] != cg[0] {
		t.Errorf("custom sin gradient = %v, builtin = %v", cg[0], bg[0])
	}

	builtin2 := autodiff.NewGradientTape[float64]()
	b2x := builtin2.CreateVariable(1.2)
	b2y := builtin2.CreateVariable(3.4)
	bg2 := builtin2.ReverseAccumulate(builtin2.Multiply(b2x, b2y))

	custom2 := autodiff.NewGradientTape[float64]()
	c2x := custom2.CreateVariable(1.2)
	c2y := custom2.CreateVariable(3.4)
	prod := custom2.CustomOperation2(c2x, c2y,
		func(a, b float64) float64 { return a * b },
		func(a, b float64) float64 { return b },
		func(a, b float64) float64 { return a },
	)
	cg2 := custom2.ReverseAccumulate(prod)

	if bg2[0] != cg2[0] || bg2[1] != cg2[1] {
		t.Errorf("custom multiply gradient = %v, builtin = %v", cg2, bg2)
	}
}
