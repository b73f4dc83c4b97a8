package models

import (
	"math"

	"github.com/evgen-sim/evgen-sim/evg"
)

// DISModel is a toy deep-inelastic d2xsec/dxdy: the usual
// (1+(1-y)^2)/2 inelasticity shape times a valence-like x distribution
// (1-x)^3/sqrt(x). The 1/sqrt(x) endpoint divergence is integrable and
// exists on purpose, to exercise the integrator's edge handling. W and
// Q2 are derived from (x, y, E), so region cuts bite.
type DISModel struct {
	// Norm scales the cross section; channel-consistent arbitrary units.
	Norm float64
}

// NewDISModel returns the toy DIS model with the given normalization.
func NewDISModel(norm float64) *DISModel {
	return &DISModel{Norm: norm}
}

// ValidProcess accepts any DIS interaction on a nucleon target.
func (m *DISModel) ValidProcess(in *evg.Interaction) bool {
	return in.Proc.Scattering == evg.ScatteringDIS
}

// ValidKinematics requires the probe energy to open the inelastic
// threshold W >= M + m_pi somewhere in phase space.
func (m *DISModel) ValidKinematics(in *evg.Interaction) bool {
	if in.ProbeE <= 0 {
		return false
	}
	return !in.PhaseSpace().Limits(evg.KvW).Empty()
}

// Weight returns d2xsec/dxdy at the interaction's current (x, y).
// Points below the hadronic threshold evaluate to 0.
func (m *DISModel) Weight(in *evg.Interaction) float64 {
	if !m.ValidProcess(in) || !m.ValidKinematics(in) {
		return 0
	}
	x, okx := in.Kine.Get(evg.KvX)
	y, oky := in.Kine.Get(evg.KvY)
	if !okx || !oky {
		return 0
	}
	if x <= 0 || x >= 1 || y <= 0 || y > 1 {
		return 0
	}

	w, _ := evg.WQ2FromXY(in.ProbeE, evg.ProtonMass, x, y)
	if w < evg.ProtonMass+evg.PionMass {
		return 0
	}

	sig0 := evg.GF2 * evg.ProtonMass * in.ProbeE / math.Pi
	shape := (1 + (1-y)*(1-y)) / 2 * math.Pow(1-x, 3) / math.Sqrt(x)
	return math.Max(0, m.Norm*sig0*shape)
}
