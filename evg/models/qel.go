package models

import (
	"math"

	"github.com/evgen-sim/evgen-sim/evg"
)

// QELModel is a toy quasi-elastic dxsec/dQ2 with a dipole falloff
// 1/(1+Q2/MA^2)^4.
type QELModel struct {
	Norm float64 // overall scale, channel-consistent arbitrary units
	MA   float64 // axial mass in GeV; <=0 falls back to 1.0
}

// NewQELModel returns the toy QEL model.
func NewQELModel(norm float64) *QELModel {
	return &QELModel{Norm: norm, MA: 1.0}
}

// ValidProcess accepts any QEL interaction.
func (m *QELModel) ValidProcess(in *evg.Interaction) bool {
	return in.Proc.Scattering == evg.ScatteringQEL
}

// ValidKinematics requires the probe to clear the muon production
// threshold for CC scattering off a nucleon at rest.
func (m *QELModel) ValidKinematics(in *evg.Interaction) bool {
	if in.ProbeE <= 0 {
		return false
	}
	if in.Proc.Current == evg.CurrentNC {
		return true
	}
	mp := evg.ProtonMass
	eThr := evg.MuonMass + evg.MuonMass*evg.MuonMass/(2*mp)
	return in.ProbeE >= eThr
}

// Weight returns dxsec/dQ2 at the interaction's current Q2. Values
// outside the physical Q2 window evaluate to 0.
func (m *QELModel) Weight(in *evg.Interaction) float64 {
	if !m.ValidProcess(in) || !m.ValidKinematics(in) {
		return 0
	}
	q2, ok := in.Kine.Get(evg.KvQ2)
	if !ok {
		return 0
	}
	if !in.PhaseSpace().Limits(evg.KvQ2).Contains(q2) {
		return 0
	}

	ma := m.MA
	if ma <= 0 {
		ma = 1.0
	}
	dipole := 1 / math.Pow(1+q2/(ma*ma), 4)
	return math.Max(0, m.Norm*evg.GF2/(2*math.Pi)*dipole)
}
