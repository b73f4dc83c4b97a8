package record

import (
	"github.com/google/uuid"

	"github.com/evgen-sim/evgen-sim/evg"
)

// Particle is one entry of the event record. Mother is an integer index
// into the owning record (-1 when unset); the grandmother is reached by
// following the mother's Mother.
type Particle struct {
	PDG    int
	Status Status
	P4     evg.FourVector
	Mass   float64
	Mother int
}

// EventRecord is the arena of particles produced for one event. Indices
// returned by Append are stable for the record's lifetime.
type EventRecord struct {
	ID        string
	particles []Particle
}

// NewEventRecord returns an empty record with a fresh event ID.
func NewEventRecord() *EventRecord {
	return &EventRecord{ID: uuid.NewString()}
}

// Append adds a particle and returns its index.
func (r *EventRecord) Append(p Particle) int {
	r.particles = append(r.particles, p)
	return len(r.particles) - 1
}

// Particle returns a mutable reference to the i-th entry, or ok=false
// when the index is out of range. An invalid mother index is therefore
// detected by the same check during traversal.
func (r *EventRecord) Particle(i int) (*Particle, bool) {
	if i < 0 || i >= len(r.particles) {
		return nil, false
	}
	return &r.particles[i], true
}

// Len returns the number of particles in the record.
func (r *EventRecord) Len() int {
	return len(r.particles)
}

// TotalP4 sums the 4-momenta of all stable final-state particles.
func (r *EventRecord) TotalP4() evg.FourVector {
	var sum evg.FourVector
	for i := range r.particles {
		if r.particles[i].Status == StatusStableFinalState {
			sum = sum.Add(r.particles[i].P4)
		}
	}
	return sum
}
