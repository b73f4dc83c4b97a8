package evg

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// tabulation.go holds precomputed total cross sections on a per-channel
// energy grid. When a Selector runs with UseTabulatedXSec set it reads
// weights from here instead of integrating, trading accuracy at off-grid
// energies (linear interpolation) for speed. The table is read-only
// shared state for the duration of a run.

// XSecPoint is one (energy, cross section) sample of a channel's grid.
type XSecPoint struct {
	E    float64 `yaml:"e"`
	XSec float64 `yaml:"xsec"`
}

type xsecTableFile struct {
	Channels map[string][]XSecPoint `yaml:"channels"`
}

// XSecTable maps channel identifiers to tabulated total cross sections.
type XSecTable struct {
	channels map[ChannelID][]XSecPoint
}

// NewXSecTable builds a table from in-memory grids, validating each
// grid the same way LoadXSecTable does.
func NewXSecTable(channels map[ChannelID][]XSecPoint) (*XSecTable, error) {
	t := &XSecTable{channels: make(map[ChannelID][]XSecPoint, len(channels))}
	for id, pts := range channels {
		if err := validateGrid(id, pts); err != nil {
			return nil, err
		}
		grid := make([]XSecPoint, len(pts))
		copy(grid, pts)
		t.channels[id] = grid
	}
	return t, nil
}

// LoadXSecTable reads a YAML tabulation file:
//
//	channels:
//	  dis-cc:
//	    - {e: 1.0, xsec: 0.52}
//	    - {e: 5.0, xsec: 2.61}
func LoadXSecTable(path string) (*XSecTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("xsec table: %w", err)
	}
	var file xsecTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("xsec table %s: %w", path, err)
	}
	channels := make(map[ChannelID][]XSecPoint, len(file.Channels))
	for name, pts := range file.Channels {
		channels[ChannelID(name)] = pts
	}
	return NewXSecTable(channels)
}

func validateGrid(id ChannelID, pts []XSecPoint) error {
	if len(pts) == 0 {
		return fmt.Errorf("xsec table: channel %q has no points", id)
	}
	for i, p := range pts {
		if p.XSec < 0 {
			return fmt.Errorf("xsec table: channel %q has negative cross section at e=%g", id, p.E)
		}
		if i > 0 && pts[i-1].E >= p.E {
			return fmt.Errorf("xsec table: channel %q energies not strictly increasing at index %d", id, i)
		}
	}
	return nil
}

// XSec returns the linearly interpolated cross section for the channel
// at the given probe energy. Energies below the first grid point or
// channels absent from the table yield (0, false); energies above the
// last point clamp to the last value.
func (t *XSecTable) XSec(id ChannelID, energy float64) (float64, bool) {
	grid, ok := t.channels[id]
	if !ok {
		return 0, false
	}
	if energy < grid[0].E {
		return 0, false
	}
	last := grid[len(grid)-1]
	if energy >= last.E {
		return last.XSec, true
	}
	// First point with E > energy; its predecessor anchors the segment.
	i := sort.Search(len(grid), func(i int) bool { return grid[i].E > energy })
	lo, hi := grid[i-1], grid[i]
	frac := (energy - lo.E) / (hi.E - lo.E)
	return lo.XSec + frac*(hi.XSec-lo.XSec), true
}

// Channels returns the tabulated channel identifiers in sorted order.
func (t *XSecTable) Channels() []ChannelID {
	out := make([]ChannelID, 0, len(t.channels))
	for id := range t.channels {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
