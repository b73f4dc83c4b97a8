package record

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/evgen-sim/evgen-sim/evg"
)

// BindingEnergyFunc returns the separation energy (GeV) of the most
// loosely bound nucleon of the target. It depends on the target only,
// not on the specific nucleon being corrected.
type BindingEnergyFunc func(tgt evg.Target) float64

// BindingCorrector subtracts nuclear binding energy from final-state
// nucleons that originated inside a nucleus. For each corrected nucleon
// it appends one massless bookkeeping particle (the "bindino") carrying
// the complementary momentum, so the record's total 4-momentum is
// conserved exactly.
type BindingCorrector struct {
	bindingEnergy BindingEnergyFunc
}

// NewBindingCorrector builds a corrector; a nil function falls back to
// the semi-empirical mass formula estimate.
func NewBindingCorrector(f BindingEnergyFunc) *BindingCorrector {
	if f == nil {
		f = SemiEmpiricalBindingEnergy
	}
	return &BindingCorrector{bindingEnergy: f}
}

// Apply visits every stable final-state nucleon whose mother chain
// leads back to an ion (nucleon-target mother, ion grandmother) and
// applies the correction:
//
//	E'    = E - b
//	scale = sqrt(max(0, E'^2 - m^2)) / |p|
//	p'    = scale * p
//
// plus one bindino with momentum (1-scale)*p and energy b. Free-nucleon
// targets and particles without the full mother chain are untouched.
func (c *BindingCorrector) Apply(rec *EventRecord, tgt evg.Target) {
	if !tgt.IsNucleus() {
		return
	}

	// Appending while visiting is safe: bindinos go past the snapshot.
	n := rec.Len()
	for i := 0; i < n; i++ {
		p, _ := rec.Particle(i)
		if !IsNeutronOrProton(p.PDG) || p.Status != StatusStableFinalState {
			continue
		}
		if _, ok := c.motherNucleus(rec, i); !ok {
			continue
		}

		b := c.bindingEnergy(tgt)
		if b <= 0 {
			continue
		}

		pmagOld := p.P4.P()
		if pmagOld == 0 {
			logrus.Warnf("binding correction: nucleon %d at rest, skipping", i)
			continue
		}

		en := p.P4.E - b
		pmagNew := math.Sqrt(math.Max(0, en*en-p.Mass*p.Mass))
		scale := pmagNew / pmagOld

		logrus.Debugf("binding correction: nucleon %d, b=%g GeV, scale=%g", i, b, scale)

		bindino := Particle{
			PDG:    PdgBindino,
			Status: StatusStableFinalState,
			P4: evg.FourVector{
				E:  b,
				Px: (1 - scale) * p.P4.Px,
				Py: (1 - scale) * p.P4.Py,
				Pz: (1 - scale) * p.P4.Pz,
			},
			Mass:   0,
			Mother: -1,
		}

		p.P4.E = en
		p.P4.Px *= scale
		p.P4.Py *= scale
		p.P4.Pz *= scale

		rec.Append(bindino)
	}
}

// motherNucleus checks whether particle i descends from a nucleus:
// its mother must be a nucleon-target entry and the grandmother an ion.
// Returns the grandmother's index when found.
func (c *BindingCorrector) motherNucleus(rec *EventRecord, i int) (int, bool) {
	p, ok := rec.Particle(i)
	if !ok || p.Mother < 0 {
		return 0, false
	}
	mother, ok := rec.Particle(p.Mother)
	if !ok || mother.Status != StatusNucleonTarget {
		return 0, false
	}
	if mother.Mother < 0 {
		return 0, false
	}
	grandmother, ok := rec.Particle(mother.Mother)
	if !ok || !IsIon(grandmother.PDG) {
		return 0, false
	}
	return mother.Mother, true
}

// Semi-empirical mass formula coefficients, in GeV.
const (
	semfVolume    = 0.01585
	semfSurface   = 0.01834
	semfCoulomb   = 0.00071
	semfAsymmetry = 0.02321
)

// SemiEmpiricalBindingEnergy estimates the per-nucleon binding energy
// of the target from the Bethe-Weizsaecker formula (pairing term
// omitted). Free nucleons bind nothing.
func SemiEmpiricalBindingEnergy(tgt evg.Target) float64 {
	if tgt.A <= 1 {
		return 0
	}
	a := float64(tgt.A)
	z := float64(tgt.Z)
	total := semfVolume*a -
		semfSurface*math.Pow(a, 2.0/3.0) -
		semfCoulomb*z*(z-1)/math.Cbrt(a) -
		semfAsymmetry*(a-2*z)*(a-2*z)/a
	return math.Max(0, total/a)
}
