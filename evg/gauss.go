package evg

import "gonum.org/v1/gonum/integrate/quad"

// GaussLegendre integrates with fixed-order Gauss-Legendre quadrature
// from gonum. Interior nodes only, so endpoint singularities are never
// sampled; EdgeEpsilon additionally pulls the bounds inward the same way
// AdaptiveSimpson does, keeping the two strategies interchangeable on
// cut domains.
type GaussLegendre struct {
	Nodes       int     // quadrature nodes per dimension
	EdgeEpsilon float64 // fraction of each range excluded at both ends
}

// Integrate implements the Integrator interface for 1-D and 2-D
// integrands. 2-D integrals nest a fixed-order rule per dimension.
func (g *GaussLegendre) Integrate(f ScalarFunc, dims []VarRange) (float64, error) {
	empty, err := checkDims(f, dims)
	if err != nil {
		return 0, err
	}
	if empty {
		return 0, nil
	}

	switch f.NDim() {
	case 1:
		r := dims[0].Shrink(g.EdgeEpsilon)
		fn := func(x float64) float64 { return finiteOrZero(f.Eval([]float64{x})) }
		return quad.Fixed(fn, r.Min, r.Max, g.Nodes, quad.Legendre{}, 0), nil
	default:
		outer := dims[0].Shrink(g.EdgeEpsilon)
		inner := dims[1].Shrink(g.EdgeEpsilon)
		fn := func(x float64) float64 {
			in := func(y float64) float64 { return finiteOrZero(f.Eval([]float64{x, y})) }
			return quad.Fixed(in, inner.Min, inner.Max, g.Nodes, quad.Legendre{}, 0)
		}
		return quad.Fixed(fn, outer.Min, outer.Max, g.Nodes, quad.Legendre{}, 0), nil
	}
}
