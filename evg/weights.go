package evg

import (
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// WeightEntry is one (channel, weight) pair of a selection table.
type WeightEntry struct {
	Channel ChannelID
	Weight  float64
}

// WeightTable is an ordered sequence of non-negative channel weights
// plus their running cumulative sum. It is built fresh per selection
// call. Selection is piecewise-constant inverse-CDF sampling: Pick
// returns the first cumulative bucket exceeding the draw, so when
// zero-weight channels sit next to each other the first-match-wins rule
// by enumeration order applies. That tie-break is an explicit invariant,
// not floating-point chance.
type WeightTable struct {
	entries []WeightEntry
	cum     []float64
}

// NewWeightTable builds the cumulative table. Negative weights violate
// the cross-section contract and are clamped to 0 with a warning rather
// than corrupting the cumulative sum.
func NewWeightTable(entries []WeightEntry) *WeightTable {
	t := &WeightTable{
		entries: make([]WeightEntry, len(entries)),
		cum:     make([]float64, len(entries)),
	}
	copy(t.entries, entries)

	raw := make([]float64, len(entries))
	for i, e := range t.entries {
		if e.Weight < 0 {
			logrus.Warnf("weight table: clamping negative weight %g for channel %q to 0", e.Weight, e.Channel)
			t.entries[i].Weight = 0
		}
		raw[i] = t.entries[i].Weight
	}
	if len(raw) > 0 {
		floats.CumSum(t.cum, raw)
	}
	return t
}

// Len returns the number of entries.
func (t *WeightTable) Len() int {
	return len(t.entries)
}

// Entry returns the i-th (channel, weight) pair in enumeration order.
func (t *WeightTable) Entry(i int) WeightEntry {
	return t.entries[i]
}

// Total returns the cumulative sum of all weights. A total <= 0 means
// no channel is kinematically allowed.
func (t *WeightTable) Total() float64 {
	if len(t.cum) == 0 {
		return 0
	}
	return t.cum[len(t.cum)-1]
}

// Pick returns the index of the first bucket whose cumulative weight
// strictly exceeds u, for u in [0, Total()). Buckets are half-open, so
// a zero-weight channel can never win. Returns ok=false when the table
// is empty, the total is non-positive, or u falls outside the range.
func (t *WeightTable) Pick(u float64) (int, bool) {
	total := t.Total()
	if total <= 0 || u < 0 || u >= total {
		return 0, false
	}
	i := sort.Search(len(t.cum), func(i int) bool { return t.cum[i] > u })
	if i >= len(t.cum) {
		return 0, false
	}
	return i, true
}
