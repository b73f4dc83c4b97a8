package evg

import (
	"hash/fnv"
	"math/rand"
)

// === RunKey ===

// RunKey uniquely identifies a reproducible generator run. Two runs with
// the same RunKey and identical configuration MUST produce bit-for-bit
// identical event streams.
type RunKey int64

// NewRunKey creates a RunKey from a seed value.
func NewRunKey(seed int64) RunKey {
	return RunKey(seed)
}

// === Subsystem constants ===

const (
	// SubsystemSelector feeds the channel-selection draw. The selector
	// consumes exactly one value from this stream per Select call.
	SubsystemSelector = "selector"

	// SubsystemKinematics feeds downstream kinematics sampling.
	SubsystemKinematics = "kinematics"
)

// === EventRNG ===

// EventRNG provides deterministic, isolated RNG streams per subsystem.
// Each subsystem seed is derived as masterSeed XOR fnv1a64(name), so
// drawing from one subsystem never perturbs another.
//
// Thread-safety: NOT thread-safe. The generation pipeline is
// single-threaded by design.
type EventRNG struct {
	key        RunKey
	subsystems map[string]*rand.Rand
}

// NewEventRNG creates an EventRNG from a RunKey.
func NewEventRNG(key RunKey) *EventRNG {
	return &EventRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same name always returns the same *rand.Rand instance.
// Never returns nil.
func (g *EventRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := g.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(g.key) ^ fnv1a64(name)))
	g.subsystems[name] = rng
	return rng
}

// Key returns the RunKey used to create this EventRNG.
func (g *EventRNG) Key() RunKey {
	return g.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
