package evg

import "fmt"

// ChannelID names one candidate interaction process (e.g. "dis-cc").
type ChannelID string

// InteractionGenerator produces a candidate interaction description for
// a given probe and target. Returning nil means the channel does not
// apply to this probe at all; the selector then assigns it zero weight.
type InteractionGenerator interface {
	GenerateInteraction(p4 FourVector, tgt Target) *Interaction
}

// Channel bundles the three collaborators of one interaction channel:
// the generator that proposes interactions, the opaque cross-section
// model, and the integrator that reduces the model to a total weight.
type Channel struct {
	Gen   InteractionGenerator
	Model XSecModel
	XSec  *XSecIntegrator
}

// GeneratorMap maps channel identifiers to their Channel bundles.
// Iteration order is the registration order and is stable within a run,
// so cumulative-weight bucket boundaries are deterministic.
type GeneratorMap struct {
	order    []ChannelID
	channels map[ChannelID]Channel
}

// NewGeneratorMap returns an empty map.
func NewGeneratorMap() *GeneratorMap {
	return &GeneratorMap{channels: make(map[ChannelID]Channel)}
}

// Register adds a channel under id. Duplicate identifiers and missing
// collaborators are setup faults reported immediately.
func (m *GeneratorMap) Register(id ChannelID, ch Channel) error {
	if id == "" {
		return fmt.Errorf("generator map: empty channel id")
	}
	if _, exists := m.channels[id]; exists {
		return fmt.Errorf("generator map: duplicate channel %q", id)
	}
	if ch.Gen == nil {
		return fmt.Errorf("generator map: channel %q has no interaction generator", id)
	}
	if ch.Model == nil {
		return fmt.Errorf("generator map: channel %q has no cross-section model", id)
	}
	if ch.XSec == nil {
		return fmt.Errorf("generator map: channel %q has no cross-section integrator", id)
	}
	m.order = append(m.order, id)
	m.channels[id] = ch
	return nil
}

// Channels returns the channel identifiers in registration order.
func (m *GeneratorMap) Channels() []ChannelID {
	out := make([]ChannelID, len(m.order))
	copy(out, m.order)
	return out
}

// Channel looks up the bundle registered under id.
func (m *GeneratorMap) Channel(id ChannelID) (Channel, bool) {
	ch, ok := m.channels[id]
	return ch, ok
}

// Len returns the number of registered channels.
func (m *GeneratorMap) Len() int {
	return len(m.order)
}
