package models

import "github.com/evgen-sim/evgen-sim/evg"

// The bundled interaction generators propose one candidate Interaction
// per (probe, target) query. They encode applicability only — whether
// the channel makes sense for this probe at all; kinematic suppression
// is the model's job and shows up as a zero weight instead.

// ProcessGenerator proposes interactions of one fixed process class for
// a configured probe species.
type ProcessGenerator struct {
	probe int
	proc  evg.Process
}

// NewProcessGenerator builds a generator for the given probe PDG code
// and process.
func NewProcessGenerator(probe int, proc evg.Process) *ProcessGenerator {
	return &ProcessGenerator{probe: probe, proc: proc}
}

// GenerateInteraction implements evg.InteractionGenerator. Probes with
// non-positive energy produce no candidate.
func (g *ProcessGenerator) GenerateInteraction(p4 evg.FourVector, tgt evg.Target) *evg.Interaction {
	if p4.E <= 0 {
		return nil
	}
	return evg.NewInteraction(g.probe, p4.E, tgt, g.proc)
}

// NewQELGenerator proposes charged-current quasi-elastic interactions.
func NewQELGenerator(probe int) *ProcessGenerator {
	return NewProcessGenerator(probe, evg.Process{Scattering: evg.ScatteringQEL, Current: evg.CurrentCC})
}

// NewDISGenerator proposes charged-current deep-inelastic interactions.
func NewDISGenerator(probe int) *ProcessGenerator {
	return NewProcessGenerator(probe, evg.Process{Scattering: evg.ScatteringDIS, Current: evg.CurrentCC})
}

// NewIMDGenerator proposes inverse-muon-decay interactions.
func NewIMDGenerator(probe int) *ProcessGenerator {
	return NewProcessGenerator(probe, evg.Process{Scattering: evg.ScatteringIMD, Current: evg.CurrentCC})
}
