package evg

import "math"

// AdaptiveSimpson integrates by recursive interval bisection with the
// classic Simpson error estimate. Each declared range is shrunk inward
// by EdgeEpsilon before any evaluation, so integrands with endpoint
// singularities (log or inverse-sqrt divergences) are sampled only in
// the interior.
type AdaptiveSimpson struct {
	Tolerance   float64 // relative tolerance on each subinterval
	MaxDepth    int     // recursion limit; reached intervals keep their estimate
	EdgeEpsilon float64 // fraction of each range excluded at both ends
}

// Integrate implements the Integrator interface for 1-D and 2-D
// integrands. 2-D integrals are computed as iterated 1-D integrals with
// the first declared range outermost.
func (s *AdaptiveSimpson) Integrate(f ScalarFunc, dims []VarRange) (float64, error) {
	empty, err := checkDims(f, dims)
	if err != nil {
		return 0, err
	}
	if empty {
		return 0, nil
	}

	switch f.NDim() {
	case 1:
		r := dims[0].Shrink(s.EdgeEpsilon)
		g := func(x float64) float64 { return finiteOrZero(f.Eval([]float64{x})) }
		return s.integrate1D(g, r.Min, r.Max), nil
	default:
		outer := dims[0].Shrink(s.EdgeEpsilon)
		inner := dims[1].Shrink(s.EdgeEpsilon)
		g := func(x float64) float64 {
			h := func(y float64) float64 { return finiteOrZero(f.Eval([]float64{x, y})) }
			return s.integrate1D(h, inner.Min, inner.Max)
		}
		return s.integrate1D(g, outer.Min, outer.Max), nil
	}
}

func (s *AdaptiveSimpson) integrate1D(g func(float64) float64, a, b float64) float64 {
	c := 0.5 * (a + b)
	fa, fb, fc := g(a), g(b), g(c)
	whole := simpsonRule(a, b, fa, fc, fb)
	return s.refine(g, a, b, fa, fb, fc, whole, s.MaxDepth)
}

func (s *AdaptiveSimpson) refine(g func(float64) float64, a, b, fa, fb, fc, whole float64, depth int) float64 {
	c := 0.5 * (a + b)
	lc := 0.5 * (a + c)
	rc := 0.5 * (c + b)
	flc, frc := g(lc), g(rc)

	left := simpsonRule(a, c, fa, flc, fc)
	right := simpsonRule(c, b, fc, frc, fb)
	delta := left + right - whole

	// Richardson error estimate: |delta|/15 against a tolerance scaled
	// to the magnitude of the running estimate.
	scale := math.Max(math.Abs(left+right), 1e-300)
	if depth <= 0 || math.Abs(delta) <= 15*s.Tolerance*scale {
		return left + right + delta/15
	}
	return s.refine(g, a, c, fa, fc, flc, left, depth-1) +
		s.refine(g, c, b, fc, fb, frc, right, depth-1)
}

// simpsonRule is Simpson's 1/3 rule over [a, b] with midpoint value fm.
func simpsonRule(a, b, fa, fm, fb float64) float64 {
	return (b - a) / 6 * (fa + 4*fm + fb)
}
