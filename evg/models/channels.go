package models

import (
	"fmt"

	"github.com/evgen-sim/evgen-sim/evg"
)

// Default normalizations chosen so the toy channels compete at a few
// GeV rather than one drowning out the others.
const (
	defaultQELNorm = 1.0
	defaultDISNorm = 1.0
)

// StandardChannels builds the bundled channel set (qel-cc, dis-cc,
// imd-cc) for the given probe, wiring every channel to the same
// quadrature strategy and phase-space cuts.
func StandardChannels(integ evg.Integrator, cuts evg.XSecCuts, probe int) (*evg.GeneratorMap, error) {
	xsec, err := evg.NewXSecIntegrator(integ, cuts)
	if err != nil {
		return nil, err
	}
	imd, err := NewIMDModel(integ)
	if err != nil {
		return nil, err
	}

	gmap := evg.NewGeneratorMap()
	channels := []struct {
		id evg.ChannelID
		ch evg.Channel
	}{
		{"qel-cc", evg.Channel{Gen: NewQELGenerator(probe), Model: NewQELModel(defaultQELNorm), XSec: xsec}},
		{"dis-cc", evg.Channel{Gen: NewDISGenerator(probe), Model: NewDISModel(defaultDISNorm), XSec: xsec}},
		{"imd-cc", evg.Channel{Gen: NewIMDGenerator(probe), Model: imd, XSec: xsec}},
	}
	for _, c := range channels {
		if err := gmap.Register(c.id, c.ch); err != nil {
			return nil, fmt.Errorf("standard channels: %w", err)
		}
	}
	return gmap, nil
}
