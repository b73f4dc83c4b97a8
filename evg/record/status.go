package record

import "fmt"

// Status marks a particle's role in the generated record.
type Status int

const (
	StatusInitialState Status = iota
	StatusStableFinalState
	StatusIntermediateState
	StatusDecayedState
	StatusNucleonTarget
)

func (s Status) String() string {
	switch s {
	case StatusInitialState:
		return "initial-state"
	case StatusStableFinalState:
		return "stable-final-state"
	case StatusIntermediateState:
		return "intermediate-state"
	case StatusDecayedState:
		return "decayed-state"
	case StatusNucleonTarget:
		return "nucleon-target"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
