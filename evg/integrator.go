package evg

import (
	"fmt"
	"math"
)

// VarRange declares the integration bounds of one named free variable.
// Order matches the input vector of the ScalarFunc being integrated.
type VarRange struct {
	Name string
	Range
}

// Integrator computes the definite integral of a ScalarFunc over
// declared per-variable ranges. Implementations are stateless and
// reentrant: repeated calls with different functions or ranges must not
// interact. Strategies must tolerate integrands with removable or
// boundary singularities by shrinking the domain by a small epsilon
// rather than failing, and must never propagate NaN.
type Integrator interface {
	Integrate(f ScalarFunc, dims []VarRange) (float64, error)
}

// IntegratorSpec selects and tunes a quadrature strategy by name.
// The zero value means adaptive Simpson with defaults.
type IntegratorSpec struct {
	Name        string  `yaml:"name"`         // "adaptive-simpson" (default) or "gauss-legendre"
	Tolerance   float64 `yaml:"tolerance"`    // adaptive-simpson relative tolerance
	MaxDepth    int     `yaml:"max_depth"`    // adaptive-simpson recursion limit
	Nodes       int     `yaml:"nodes"`        // gauss-legendre nodes per dimension
	EdgeEpsilon float64 `yaml:"edge_epsilon"` // fraction of each range excluded at both ends
}

// Defaults applied by NewIntegrator when spec fields are zero.
const (
	defaultTolerance   = 1e-6
	defaultMaxDepth    = 20
	defaultNodes       = 64
	defaultEdgeEpsilon = 1e-6
)

// NewIntegrator creates the quadrature strategy named by the spec. An
// unknown name is a configuration fault reported at setup, not deferred
// to integration time.
func NewIntegrator(spec IntegratorSpec) (Integrator, error) {
	tol := spec.Tolerance
	if tol <= 0 {
		tol = defaultTolerance
	}
	depth := spec.MaxDepth
	if depth <= 0 {
		depth = defaultMaxDepth
	}
	nodes := spec.Nodes
	if nodes <= 0 {
		nodes = defaultNodes
	}
	eps := spec.EdgeEpsilon
	if eps <= 0 {
		eps = defaultEdgeEpsilon
	}

	switch spec.Name {
	case "", "adaptive-simpson":
		return &AdaptiveSimpson{Tolerance: tol, MaxDepth: depth, EdgeEpsilon: eps}, nil
	case "gauss-legendre":
		return &GaussLegendre{Nodes: nodes, EdgeEpsilon: eps}, nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", spec.Name)
	}
}

// checkDims validates that the declared ranges match the integrand's
// dimension and reports whether the whole domain is empty. Only 1-D and
// 2-D integrands appear in this generator.
func checkDims(f ScalarFunc, dims []VarRange) (empty bool, err error) {
	if f == nil {
		return false, fmt.Errorf("integrate: nil integrand")
	}
	if len(dims) != f.NDim() {
		return false, fmt.Errorf("integrate: %d ranges declared for %d-dim integrand", len(dims), f.NDim())
	}
	if f.NDim() < 1 || f.NDim() > 2 {
		return false, fmt.Errorf("integrate: unsupported dimension %d", f.NDim())
	}
	for _, d := range dims {
		if d.Empty() || d.Width() == 0 {
			return true, nil
		}
	}
	return false, nil
}

// finiteOrZero maps NaN and infinities to 0 so a stray singular sample
// cannot poison a quadrature sum.
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
