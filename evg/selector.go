package evg

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ErrNoInteraction reports the recoverable outcome that no channel is
// kinematically allowed for a probe/target pair (all weights zero).
// Callers should skip event generation for that probe, not abort.
var ErrNoInteraction = errors.New("no interaction possible for this probe/target")

// SelectorState tracks the selection state machine:
// Idle -> WeightsComputed -> Selected | Failed.
type SelectorState int

const (
	SelectorIdle SelectorState = iota
	SelectorWeightsComputed
	SelectorSelected
	SelectorFailed
)

func (s SelectorState) String() string {
	switch s {
	case SelectorIdle:
		return "Idle"
	case SelectorWeightsComputed:
		return "WeightsComputed"
	case SelectorSelected:
		return "Selected"
	case SelectorFailed:
		return "Failed"
	default:
		return fmt.Sprintf("SelectorState(%d)", int(s))
	}
}

// SelectorConfig tunes weight acquisition. With UseTabulatedXSec set,
// channel weights come from the read-only Table instead of being
// recomputed by integration on every call.
type SelectorConfig struct {
	UseTabulatedXSec bool
	Table            *XSecTable
}

// EventSeed is the outcome of a successful selection: the chosen
// channel's interaction plus the probe 4-momentum, sufficient for a
// downstream event builder. Ownership transfers to the caller.
type EventSeed struct {
	Channel     ChannelID
	Interaction *Interaction
	ProbeP4     FourVector
}

// Selector performs probability-weighted random selection of one
// interaction channel per probe. Unbiased sampling proportional to the
// physical cross section is the statistical backbone of the simulation,
// and the selection must be bit-reproducible: the same seed and the
// same ordered weight table always pick the same channel.
type Selector struct {
	gmap  *GeneratorMap
	rng   *rand.Rand
	cfg   SelectorConfig
	state SelectorState
}

// NewSelector wires the selector graph. Missing collaborators are fatal
// configuration errors detected here, not at run time.
func NewSelector(gmap *GeneratorMap, rng *EventRNG, cfg SelectorConfig) (*Selector, error) {
	if gmap == nil || gmap.Len() == 0 {
		return nil, fmt.Errorf("selector: no interaction channels registered")
	}
	if rng == nil {
		return nil, fmt.Errorf("selector: no random source bound")
	}
	if cfg.UseTabulatedXSec && cfg.Table == nil {
		return nil, fmt.Errorf("selector: tabulated cross sections requested but no table loaded")
	}
	return &Selector{
		gmap:  gmap,
		rng:   rng.ForSubsystem(SubsystemSelector),
		cfg:   cfg,
		state: SelectorIdle,
	}, nil
}

// State returns the terminal state of the most recent Select call
// (SelectorIdle before the first call).
func (s *Selector) State() SelectorState {
	return s.state
}

// Select computes one weight per channel in stable registration order,
// builds the cumulative table, and draws exactly one uniform value to
// pick the channel. The draw happens on every call, including ones that
// end in Failed, so the number of consumed random values depends only on
// the number of Select calls, never on their outcomes or on how many
// channels exist.
func (s *Selector) Select(p4 FourVector, tgt Target) (*EventSeed, error) {
	s.state = SelectorIdle

	entries := make([]WeightEntry, 0, s.gmap.Len())
	candidates := make(map[ChannelID]*Interaction, s.gmap.Len())

	for _, id := range s.gmap.Channels() {
		ch, _ := s.gmap.Channel(id)
		in := ch.Gen.GenerateInteraction(p4, tgt)
		w, err := s.channelWeight(id, ch, in)
		if err != nil {
			s.state = SelectorFailed
			return nil, fmt.Errorf("selector: channel %q: %w", id, err)
		}
		logrus.Debugf("selector: channel %q weight=%g", id, w)
		entries = append(entries, WeightEntry{Channel: id, Weight: w})
		candidates[id] = in
	}

	table := NewWeightTable(entries)
	s.state = SelectorWeightsComputed

	// One draw per call, unconditionally, to keep the random stream
	// aligned across runs regardless of outcome.
	u := s.rng.Float64() * table.Total()

	i, ok := table.Pick(u)
	if !ok {
		logrus.Debugf("selector: total weight %g, no channel allowed for %v on [%s]", table.Total(), p4, tgt)
		s.state = SelectorFailed
		return nil, ErrNoInteraction
	}

	chosen := table.Entry(i).Channel
	logrus.Debugf("selector: picked channel %q (u=%g, total=%g)", chosen, u, table.Total())

	s.state = SelectorSelected
	return &EventSeed{
		Channel:     chosen,
		Interaction: candidates[chosen],
		ProbeP4:     p4,
	}, nil
}

// channelWeight obtains the total cross section for one channel, either
// from the tabulation or by integrating the channel's model.
func (s *Selector) channelWeight(id ChannelID, ch Channel, in *Interaction) (float64, error) {
	if in == nil {
		// Channel does not apply to this probe.
		return 0, nil
	}
	if s.cfg.UseTabulatedXSec {
		w, ok := s.cfg.Table.XSec(id, in.ProbeE)
		if !ok {
			logrus.Debugf("selector: channel %q not tabulated at E=%g, weight=0", id, in.ProbeE)
			return 0, nil
		}
		return w, nil
	}
	return ch.XSec.Integrate(ch.Model, in)
}
