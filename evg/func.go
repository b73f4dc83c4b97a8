package evg

// ScalarFunc is a real-valued function of a fixed-size numeric vector.
// It is the shape every integrand takes before being handed to an
// Integrator.
//
// Contract: Eval must return exactly 0 (never an error, never NaN) for
// any input that maps to a kinematically disallowed point. Integration
// then treats invalid regions as contributing zero probability without
// special-casing.
type ScalarFunc interface {
	// NDim returns the declared input dimension.
	NDim() int

	// Eval evaluates the function at x, which has NDim elements.
	Eval(x []float64) float64
}

// ScalarFunc1D adapts a plain func(float64) float64 to the ScalarFunc
// interface for 1-D integrands built inline (e.g. inside models).
type ScalarFunc1D func(x float64) float64

func (f ScalarFunc1D) NDim() int { return 1 }

func (f ScalarFunc1D) Eval(x []float64) float64 { return f(x[0]) }
