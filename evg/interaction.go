package evg

import (
	"fmt"
	"math"
)

// === Kinematic variables ===

// KineVar identifies one coordinate of the interaction phase space.
type KineVar int

const (
	// KvX is Bjorken x.
	KvX KineVar = iota
	// KvY is the inelasticity y = (Ev-El)/Ev.
	KvY
	// KvQ2 is the momentum transfer squared, in GeV^2.
	KvQ2
	// KvW is the hadronic invariant mass, in GeV.
	KvW
)

func (v KineVar) String() string {
	switch v {
	case KvX:
		return "x"
	case KvY:
		return "y"
	case KvQ2:
		return "Q2"
	case KvW:
		return "W"
	default:
		return fmt.Sprintf("KineVar(%d)", int(v))
	}
}

// Kinematics holds the current phase-space point of an interaction as a
// sparse variable -> value assignment. Variables a process does not use
// are simply absent.
type Kinematics map[KineVar]float64

// NewKinematics returns an empty assignment.
func NewKinematics() Kinematics {
	return make(Kinematics)
}

// Get returns the value of v and whether it has been assigned.
func (k Kinematics) Get(v KineVar) (float64, bool) {
	val, ok := k[v]
	return val, ok
}

// Clone returns an independent copy.
func (k Kinematics) Clone() Kinematics {
	out := make(Kinematics, len(k))
	for v, val := range k {
		out[v] = val
	}
	return out
}

// === Process identity ===

// ScatteringType labels the physical process class of a channel.
type ScatteringType int

const (
	ScatteringQEL ScatteringType = iota // quasi-elastic
	ScatteringRES                       // resonance production
	ScatteringDIS                       // deep inelastic scattering
	ScatteringIMD                       // inverse muon decay
)

func (s ScatteringType) String() string {
	switch s {
	case ScatteringQEL:
		return "QEL"
	case ScatteringRES:
		return "RES"
	case ScatteringDIS:
		return "DIS"
	case ScatteringIMD:
		return "IMD"
	default:
		return fmt.Sprintf("ScatteringType(%d)", int(s))
	}
}

// CurrentType labels the exchanged boson current.
type CurrentType int

const (
	CurrentCC CurrentType = iota // charged current
	CurrentNC                    // neutral current
)

func (c CurrentType) String() string {
	if c == CurrentNC {
		return "NC"
	}
	return "CC"
}

// Process pairs a scattering type with a current.
type Process struct {
	Scattering ScatteringType
	Current    CurrentType
}

func (p Process) String() string {
	return p.Scattering.String() + "-" + p.Current.String()
}

// === Target ===

// Target describes the struck nucleus (or free nucleon for A=1).
type Target struct {
	Z int // proton number
	A int // mass number
}

// IsNucleus reports whether the target is a bound nucleus rather than a
// free nucleon.
func (t Target) IsNucleus() bool {
	return t.A > 1
}

// Mass returns the approximate target rest mass in GeV.
func (t Target) Mass() float64 {
	if t.A <= 1 {
		return ProtonMass
	}
	return float64(t.A) * AMU
}

func (t Target) String() string {
	return fmt.Sprintf("Z=%d,A=%d", t.Z, t.A)
}

// === Four-vectors ===

// FourVector is an (E, px, py, pz) Lorentz vector in GeV.
type FourVector struct {
	E  float64
	Px float64
	Py float64
	Pz float64
}

// P returns the 3-momentum magnitude.
func (v FourVector) P() float64 {
	return math.Sqrt(v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
}

// M2 returns the invariant mass squared (may be slightly negative from
// floating-point cancellation).
func (v FourVector) M2() float64 {
	return v.E*v.E - v.Px*v.Px - v.Py*v.Py - v.Pz*v.Pz
}

// M returns the invariant mass, clamped at zero.
func (v FourVector) M() float64 {
	return math.Sqrt(math.Max(0, v.M2()))
}

// Add returns the component-wise sum v+o.
func (v FourVector) Add(o FourVector) FourVector {
	return FourVector{E: v.E + o.E, Px: v.Px + o.Px, Py: v.Py + o.Py, Pz: v.Pz + o.Pz}
}

// === Interaction ===

// Interaction is the immutable description of one candidate process:
// probe, target, process class and the current phase-space point. The
// generator that produced it owns it until it is handed to the selector;
// the core never mutates a caller's Interaction (adapters clone first).
type Interaction struct {
	Probe  int     // PDG code of the incoming probe
	ProbeE float64 // lab-frame probe energy in GeV
	Target Target
	Proc   Process
	Kine   Kinematics
}

// NewInteraction builds an Interaction with an empty kinematic assignment.
func NewInteraction(probe int, probeE float64, tgt Target, proc Process) *Interaction {
	return &Interaction{
		Probe:  probe,
		ProbeE: probeE,
		Target: tgt,
		Proc:   proc,
		Kine:   NewKinematics(),
	}
}

// Clone returns a deep copy whose kinematics can be mutated freely.
func (in *Interaction) Clone() *Interaction {
	out := *in
	out.Kine = in.Kine.Clone()
	return &out
}

func (in *Interaction) String() string {
	return fmt.Sprintf("%s probe=%d E=%.3gGeV tgt=[%s]", in.Proc, in.Probe, in.ProbeE, in.Target)
}
