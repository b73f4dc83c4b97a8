package evg

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// XSecCuts restricts the integration phase space to a sub-region before
// bounds are handed to the quadrature strategy. Nil members mean no cut
// on that variable.
type XSecCuts struct {
	W  *Range // hadronic invariant mass window
	Q2 *Range // momentum transfer window
}

// XSecIntegrator reduces a multi-dimensional differential cross-section
// model to one total value for a given interaction. It decides which
// adapter variant to construct from the process's free kinematic
// variables, intersects the physical limits with any declared cuts, and
// delegates to the configured quadrature strategy.
type XSecIntegrator struct {
	integrator Integrator
	cuts       XSecCuts
}

// NewXSecIntegrator binds a quadrature strategy and optional phase-space
// cuts. A nil integrator is a fatal configuration error caught here, at
// setup, rather than at run time.
func NewXSecIntegrator(integ Integrator, cuts XSecCuts) (*XSecIntegrator, error) {
	if integ == nil {
		return nil, fmt.Errorf("xsec integrator: no quadrature strategy bound")
	}
	if cuts.W != nil && cuts.W.Empty() {
		return nil, fmt.Errorf("xsec integrator: inverted W cut [%g, %g]", cuts.W.Min, cuts.W.Max)
	}
	if cuts.Q2 != nil && cuts.Q2.Empty() {
		return nil, fmt.Errorf("xsec integrator: inverted Q2 cut [%g, %g]", cuts.Q2.Min, cuts.Q2.Max)
	}
	return &XSecIntegrator{integrator: integ, cuts: cuts}, nil
}

// Integrate returns the total cross section (>= 0) of the model for the
// interaction. An interaction with no valid kinematic region yields 0,
// never an error; errors are reserved for misuse (nil model, dimension
// mismatches).
func (x *XSecIntegrator) Integrate(model XSecModel, in *Interaction) (float64, error) {
	if model == nil {
		return 0, fmt.Errorf("xsec integrator: nil model")
	}
	if in == nil {
		return 0, fmt.Errorf("xsec integrator: nil interaction")
	}
	if !model.ValidProcess(in) {
		logrus.Debugf("xsec: model does not handle %s, weight=0", in)
		return 0, nil
	}

	ps := in.PhaseSpace()

	switch in.Proc.Scattering {
	case ScatteringQEL:
		r := ps.Limits(KvQ2)
		if x.cuts.Q2 != nil {
			r = r.Intersect(*x.cuts.Q2)
		}
		if r.Empty() {
			return 0, nil
		}
		return x.run(NewDXSecDQ2(model, in), []VarRange{{Name: "Q2", Range: r}})

	case ScatteringIMD:
		r := ps.Limits(KvY)
		if r.Empty() {
			return 0, nil
		}
		return x.run(NewDXSecDy(model, in), []VarRange{{Name: "y", Range: r}})

	case ScatteringDIS, ScatteringRES:
		xr := ps.Limits(KvX)
		yr := ps.Limits(KvY)
		if xr.Empty() || yr.Empty() {
			return 0, nil
		}
		// W cut feasibility: below the production threshold the whole
		// (x, y) domain maps outside the W window.
		if wl := ps.Limits(KvW); wl.Empty() {
			return 0, nil
		}
		dims := []VarRange{{Name: "x", Range: xr}, {Name: "y", Range: yr}}
		if x.cuts.W != nil || x.cuts.Q2 != nil {
			wCut, q2Cut := x.effectiveCuts(ps)
			if wCut.Empty() || q2Cut.Empty() {
				return 0, nil
			}
			return x.run(NewD2XSecDxDyWithCuts(model, in, wCut, q2Cut), dims)
		}
		return x.run(NewD2XSecDxDy(model, in), dims)

	default:
		return 0, fmt.Errorf("xsec integrator: unhandled scattering type %s", in.Proc.Scattering)
	}
}

// effectiveCuts intersects the declared W/Q2 cuts with the physical
// limits; an absent cut falls back to the full physical window.
func (x *XSecIntegrator) effectiveCuts(ps PhaseSpace) (w, q2 Range) {
	w = ps.Limits(KvW)
	if x.cuts.W != nil {
		w = w.Intersect(*x.cuts.W)
	}
	q2 = ps.Limits(KvQ2)
	if x.cuts.Q2 != nil {
		q2 = q2.Intersect(*x.cuts.Q2)
	}
	return w, q2
}

// run delegates to the bound strategy and clamps tiny negative results
// from quadrature cancellation back to zero.
func (x *XSecIntegrator) run(f ScalarFunc, dims []VarRange) (float64, error) {
	v, err := x.integrator.Integrate(f, dims)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		logrus.Debugf("xsec: clamping negative quadrature result %g to 0", v)
		return 0, nil
	}
	return v, nil
}
