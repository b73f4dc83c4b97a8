package evg

import "math"

// PhaseSpace computes the physically allowed range of each kinematic
// variable for one interaction. Ranges can come out empty (Min > Max)
// when the probe energy is below threshold; callers treat an empty
// range as zero weight, never as an error.
type PhaseSpace struct {
	in *Interaction
}

// PhaseSpace returns a view over the interaction's kinematic limits.
func (in *Interaction) PhaseSpace() PhaseSpace {
	return PhaseSpace{in: in}
}

// S returns the squared invariant mass of the probe-target system,
// s = M^2 + 2*M*E for a target at rest.
func (ps PhaseSpace) S() float64 {
	m := ps.targetMass()
	return m*m + 2*m*ps.in.ProbeE
}

// Limits returns the allowed closed interval for variable v.
func (ps PhaseSpace) Limits(v KineVar) Range {
	switch v {
	case KvX:
		return Range{Min: 0, Max: 1}
	case KvY:
		return Range{Min: 0, Max: 1}
	case KvW:
		return ps.wLimits()
	case KvQ2:
		return ps.q2Limits()
	default:
		return Range{Min: 0, Max: -1}
	}
}

// wLimits is the hadronic invariant mass window: production threshold
// M+m_pi up to sqrt(s) minus the final-state lepton mass.
func (ps PhaseSpace) wLimits() Range {
	m := ps.targetMass()
	wMax := math.Sqrt(ps.S()) - ps.finalLeptonMass()
	return Range{Min: m + PionMass, Max: wMax}
}

// q2Limits is a loose momentum-transfer window [0, s-M^2]. Models apply
// their own tighter validity checks point by point.
func (ps PhaseSpace) q2Limits() Range {
	m := ps.targetMass()
	return Range{Min: 0, Max: ps.S() - m*m}
}

// targetMass is the struck-object mass entering the kinematic limits:
// the nucleon mass for scattering off a nucleon inside a nucleus, the
// electron mass for leptonic processes like IMD.
func (ps PhaseSpace) targetMass() float64 {
	if ps.in.Proc.Scattering == ScatteringIMD {
		return ElectronMass
	}
	return ProtonMass
}

// finalLeptonMass is the outgoing lepton mass: the charged partner for
// CC, the (massless here) neutrino for NC.
func (ps PhaseSpace) finalLeptonMass() float64 {
	if ps.in.Proc.Current == CurrentNC {
		return 0
	}
	return MuonMass
}

// WQ2FromXY maps Bjorken (x, y) at probe energy e on a nucleon of mass
// m to (W, Q2):
//
//	Q2 = 2*m*e*x*y
//	W^2 = m^2 + 2*m*e*y*(1-x)
//
// A negative W^2 from floating-point cancellation is clamped to zero.
func WQ2FromXY(e, m, x, y float64) (w, q2 float64) {
	q2 = 2 * m * e * x * y
	w2 := m*m + 2*m*e*y*(1-x)
	return math.Sqrt(math.Max(0, w2)), q2
}
