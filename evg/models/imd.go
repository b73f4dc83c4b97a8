package models

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/evgen-sim/evgen-sim/evg"
)

// dilogEps keeps the dilogarithm integration nodes away from t=0
// (removable 0/0) and t=1 (log divergence for z near 1).
const dilogEps = 1e-3

// yEdgeEps caps the allowed inelasticity just below 1 to avoid the
// log(1-y) endpoint in the radiative term.
const yEdgeEps = 1e-5

// IMDModel is the inverse muon decay cross section dxsec/dy
// (nu_mu + e- -> mu- + nu_e): a flat leading-order term with a small
// dilogarithm radiative correction. The dilogarithm is computed through
// the injected quadrature strategy, so this model exercises the
// integrator from inside a weight provider.
type IMDModel struct {
	integrator evg.Integrator
}

// NewIMDModel binds the quadrature strategy used for the internal
// dilogarithm integral. A nil integrator is a setup fault.
func NewIMDModel(integ evg.Integrator) (*IMDModel, error) {
	if integ == nil {
		return nil, fmt.Errorf("imd model: no integrator bound")
	}
	return &IMDModel{integrator: integ}, nil
}

// ValidProcess accepts only muon neutrinos in the IMD-CC channel.
func (m *IMDModel) ValidProcess(in *evg.Interaction) bool {
	return in.Proc.Scattering == evg.ScatteringIMD &&
		in.Proc.Current == evg.CurrentCC &&
		in.Probe == evg.PdgNuMu
}

// ValidKinematics requires the probe-electron invariant mass to clear
// the muon production threshold: s = m_e^2 + 2*m_e*E >= m_mu^2.
func (m *IMDModel) ValidKinematics(in *evg.Interaction) bool {
	if in.ProbeE <= 0 {
		return false
	}
	s := evg.ElectronMass*evg.ElectronMass + 2*evg.ElectronMass*in.ProbeE
	if s < evg.MuonMass*evg.MuonMass {
		logrus.Debugf("imd: E=%g below threshold (s=%g < m_mu^2)", in.ProbeE, s)
		return false
	}
	return true
}

// Weight returns dxsec/dy at the interaction's current y. Out-of-range
// y and below-threshold energies yield 0.
func (m *IMDModel) Weight(in *evg.Interaction) float64 {
	if !m.ValidProcess(in) || !m.ValidKinematics(in) {
		return 0
	}
	y, ok := in.Kine.Get(evg.KvY)
	if !ok {
		return 0
	}

	e := in.ProbeE
	s := evg.ElectronMass*evg.ElectronMass + 2*evg.ElectronMass*e
	rm := evg.MuonMass * evg.MuonMass / s

	yMax := math.Min(1-rm, 1-yEdgeEps)
	if y < 0 || y > yMax {
		return 0
	}

	sig0 := evg.GF2 * 2 * evg.ElectronMass * e / math.Pi
	dsig := sig0 * (1 - rm) * (1 + evg.Aem/math.Pi*m.li2(y))

	// One scattering center per atomic electron.
	if in.Target.Z > 1 {
		dsig *= float64(in.Target.Z)
	}
	return math.Max(0, dsig)
}

// li2 evaluates the dilogarithm Li2(z) = -Int_0^1 ln(1-z*t)/t dt via
// the bound quadrature strategy over [dilogEps, 1-dilogEps].
func (m *IMDModel) li2(z float64) float64 {
	if z <= 0 {
		return 0
	}
	f := evg.ScalarFunc1D(func(t float64) float64 {
		if t == 0 || z*t >= 1 {
			return 0
		}
		return math.Log(1-z*t) / t
	})
	dims := []evg.VarRange{{Name: "t", Range: evg.Range{Min: dilogEps, Max: 1 - dilogEps}}}
	v, err := m.integrator.Integrate(f, dims)
	if err != nil {
		logrus.Warnf("imd: dilog integration failed: %v", err)
		return 0
	}
	return -v
}
