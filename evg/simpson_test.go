package evg

import (
	"math"
	"testing"

	"github.com/evgen-sim/evgen-sim/evg/internal/testutil"
)

func newTestSimpson(t *testing.T) Integrator {
	t.Helper()
	integ, err := NewIntegrator(IntegratorSpec{Name: "adaptive-simpson"})
	if err != nil {
		t.Fatal(err)
	}
	return integ
}

// constFunc2D is an integrand that returns a constant over 2 dims.
type constFunc2D struct{ v float64 }

func (f constFunc2D) NDim() int                { return 2 }
func (f constFunc2D) Eval(x []float64) float64 { return f.v }

func TestAdaptiveSimpson_ZeroFunctionIntegratesToZero(t *testing.T) {
	integ := newTestSimpson(t)
	got, err := integ.Integrate(ScalarFunc1D(func(x float64) float64 { return 0 }),
		[]VarRange{{Name: "x", Range: Range{Min: 0, Max: 1}}})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("integral of zero function = %v, want 0", got)
	}
}

func TestAdaptiveSimpson_Polynomial(t *testing.T) {
	integ := newTestSimpson(t)
	// Integral of 3x^2 over [0, 2] is 8.
	got, err := integ.Integrate(ScalarFunc1D(func(x float64) float64 { return 3 * x * x }),
		[]VarRange{{Name: "x", Range: Range{Min: 0, Max: 2}}})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertFloat64Equal(t, "integral of 3x^2", 8, got, 1e-4)
}

func TestAdaptiveSimpson_EmptyRangeIsZeroNotError(t *testing.T) {
	integ := newTestSimpson(t)
	got, err := integ.Integrate(ScalarFunc1D(func(x float64) float64 { return 1 }),
		[]VarRange{{Name: "y", Range: Range{Min: 1, Max: 0}}})
	if err != nil {
		t.Fatalf("inverted range must not error, got %v", err)
	}
	if got != 0 {
		t.Errorf("integral over empty range = %v, want 0", got)
	}
}

func TestAdaptiveSimpson_EndpointSingularity(t *testing.T) {
	integ := newTestSimpson(t)
	// 1/sqrt(x) diverges at x=0 but integrates to 2 over [0, 1]; the
	// edge epsilon keeps quadrature nodes off the singular point.
	got, err := integ.Integrate(ScalarFunc1D(func(x float64) float64 { return 1 / math.Sqrt(x) }),
		[]VarRange{{Name: "x", Range: Range{Min: 0, Max: 1}}})
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("integral = %v, want finite", got)
	}
	testutil.AssertFloat64Equal(t, "integral of 1/sqrt(x)", 2, got, 0.05)
}

func TestAdaptiveSimpson_LogEndpoint(t *testing.T) {
	integ := newTestSimpson(t)
	// Integral of ln(1-y) over [0, 1] is -1, with a log divergence at 1.
	got, err := integ.Integrate(ScalarFunc1D(func(y float64) float64 { return math.Log(1 - y) }),
		[]VarRange{{Name: "y", Range: Range{Min: 0, Max: 1}}})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertFloat64Equal(t, "integral of ln(1-y)", -1, got, 0.05)
}

func TestAdaptiveSimpson_2D(t *testing.T) {
	integ := newTestSimpson(t)
	got, err := integ.Integrate(constFunc2D{v: 3},
		[]VarRange{
			{Name: "x", Range: Range{Min: 0, Max: 2}},
			{Name: "y", Range: Range{Min: 0, Max: 0.5}},
		})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertFloat64Equal(t, "2-D constant integral", 3, got, 1e-4)
}

func TestAdaptiveSimpson_DimensionMismatch(t *testing.T) {
	integ := newTestSimpson(t)
	_, err := integ.Integrate(ScalarFunc1D(func(x float64) float64 { return 1 }),
		[]VarRange{
			{Name: "x", Range: Range{Min: 0, Max: 1}},
			{Name: "y", Range: Range{Min: 0, Max: 1}},
		})
	if err == nil {
		t.Error("range/dimension mismatch must error")
	}
}

func TestAdaptiveSimpson_NaNSamplesDoNotPropagate(t *testing.T) {
	integ := newTestSimpson(t)
	got, err := integ.Integrate(ScalarFunc1D(func(x float64) float64 {
		if x > 0.4 && x < 0.6 {
			return math.NaN()
		}
		return 1
	}), []VarRange{{Name: "x", Range: Range{Min: 0, Max: 1}}})
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(got) {
		t.Error("NaN integrand samples must not poison the result")
	}
}

func TestAdaptiveSimpson_Reentrant(t *testing.T) {
	// Repeated calls with different functions/ranges must not interact.
	integ := newTestSimpson(t)
	dims := []VarRange{{Name: "x", Range: Range{Min: 0, Max: 1}}}

	first, _ := integ.Integrate(ScalarFunc1D(func(x float64) float64 { return x }), dims)
	_, _ = integ.Integrate(ScalarFunc1D(func(x float64) float64 { return 100 * x * x }),
		[]VarRange{{Name: "x", Range: Range{Min: -3, Max: 7}}})
	again, _ := integ.Integrate(ScalarFunc1D(func(x float64) float64 { return x }), dims)

	if first != again {
		t.Errorf("repeated identical integration differs: %v != %v", first, again)
	}
}

func TestNewIntegrator_UnknownNameFails(t *testing.T) {
	if _, err := NewIntegrator(IntegratorSpec{Name: "monte-carlo-vegas"}); err == nil {
		t.Error("unknown integrator name must be a setup error")
	}
}

func TestNewIntegrator_DefaultIsAdaptiveSimpson(t *testing.T) {
	integ, err := NewIntegrator(IntegratorSpec{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := integ.(*AdaptiveSimpson); !ok {
		t.Errorf("default integrator = %T, want *AdaptiveSimpson", integ)
	}
}
