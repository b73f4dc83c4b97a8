package evg

import (
	"math"
	"testing"

	"github.com/evgen-sim/evgen-sim/evg/internal/testutil"
)

func newTestGauss(t *testing.T) Integrator {
	t.Helper()
	integ, err := NewIntegrator(IntegratorSpec{Name: "gauss-legendre"})
	if err != nil {
		t.Fatal(err)
	}
	return integ
}

func TestGaussLegendre_ZeroFunctionIntegratesToZero(t *testing.T) {
	integ := newTestGauss(t)
	got, err := integ.Integrate(ScalarFunc1D(func(x float64) float64 { return 0 }),
		[]VarRange{{Name: "x", Range: Range{Min: -5, Max: 5}}})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("integral of zero function = %v, want 0", got)
	}
}

func TestGaussLegendre_Exponential(t *testing.T) {
	integ := newTestGauss(t)
	// Integral of e^x over [0, 1] is e-1.
	got, err := integ.Integrate(ScalarFunc1D(math.Exp),
		[]VarRange{{Name: "x", Range: Range{Min: 0, Max: 1}}})
	if err != nil {
		t.Fatal(err)
	}
	// Tolerance accounts for the edge-epsilon domain shrink.
	testutil.AssertFloat64Equal(t, "integral of e^x", math.E-1, got, 1e-5)
}

func TestGaussLegendre_EmptyRangeIsZeroNotError(t *testing.T) {
	integ := newTestGauss(t)
	got, err := integ.Integrate(ScalarFunc1D(func(x float64) float64 { return 1 }),
		[]VarRange{{Name: "y", Range: Range{Min: 2, Max: 1}}})
	if err != nil {
		t.Fatalf("inverted range must not error, got %v", err)
	}
	if got != 0 {
		t.Errorf("integral over empty range = %v, want 0", got)
	}
}

func TestGaussLegendre_AgreesWithSimpsonOnSmoothIntegrand(t *testing.T) {
	gauss := newTestGauss(t)
	simpson := newTestSimpson(t)
	dims := []VarRange{{Name: "x", Range: Range{Min: 0, Max: math.Pi}}}
	f := ScalarFunc1D(math.Sin)

	a, err := gauss.Integrate(f, dims)
	if err != nil {
		t.Fatal(err)
	}
	b, err := simpson.Integrate(f, dims)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertFloat64Equal(t, "gauss vs simpson on sin", a, b, 1e-4)
	testutil.AssertFloat64Equal(t, "integral of sin over [0,pi]", 2, a, 1e-5)
}

func TestGaussLegendre_2D(t *testing.T) {
	integ := newTestGauss(t)
	// Integral of x*y over [0,1]x[0,2] is 1.
	got, err := integ.Integrate(prodFunc2D{},
		[]VarRange{
			{Name: "x", Range: Range{Min: 0, Max: 1}},
			{Name: "y", Range: Range{Min: 0, Max: 2}},
		})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertFloat64Equal(t, "2-D integral of x*y", 1, got, 1e-5)
}

type prodFunc2D struct{}

func (prodFunc2D) NDim() int                { return 2 }
func (prodFunc2D) Eval(x []float64) float64 { return x[0] * x[1] }
