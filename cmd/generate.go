package cmd

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evgen-sim/evgen-sim/evg"
	"github.com/evgen-sim/evgen-sim/evg/models"
)

var (
	numEvents   int     // number of probes to process
	probeEnergy float64 // lab-frame probe energy in GeV
)

// generateCmd runs the selection pipeline for a batch of identical
// probes and reports how the channels were populated.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate events by weighted channel selection",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		integ, err := evg.NewIntegrator(cfg.Integrator)
		if err != nil {
			logrus.Fatalf("Could not build integrator: %v", err)
		}
		gmap, err := models.StandardChannels(integ, cfg.Cuts(), probePdg)
		if err != nil {
			logrus.Fatalf("Could not build channels: %v", err)
		}

		selCfg := evg.SelectorConfig{UseTabulatedXSec: cfg.UseTabulatedXSec}
		if cfg.UseTabulatedXSec {
			table, err := evg.LoadXSecTable(cfg.XSecTablePath)
			if err != nil {
				logrus.Fatalf("Could not load cross-section table: %v", err)
			}
			selCfg.Table = table
		}

		rng := evg.NewEventRNG(evg.NewRunKey(cfg.Seed))
		selector, err := evg.NewSelector(gmap, rng, selCfg)
		if err != nil {
			logrus.Fatalf("Could not build selector: %v", err)
		}

		tgt := evg.Target{Z: targetZ, A: targetA}
		p4 := evg.FourVector{E: probeEnergy, Pz: probeEnergy}

		logrus.Infof("Generating %d events: probe=%d E=%gGeV target=[%s] seed=%d",
			numEvents, probePdg, probeEnergy, tgt, cfg.Seed)
		start := time.Now()

		counts := make(map[evg.ChannelID]int)
		failed := 0
		for i := 0; i < numEvents; i++ {
			seed, err := selector.Select(p4, tgt)
			if errors.Is(err, evg.ErrNoInteraction) {
				failed++
				continue
			}
			if err != nil {
				logrus.Fatalf("Selection failed: %v", err)
			}
			counts[seed.Channel]++
		}

		ids := make([]evg.ChannelID, 0, len(counts))
		for id := range counts {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		fmt.Printf("events: %d (no-interaction: %d) in %s\n", numEvents, failed, time.Since(start).Round(time.Millisecond))
		for _, id := range ids {
			fmt.Printf("  %-8s %7d  (%.1f%%)\n", id, counts[id], 100*float64(counts[id])/float64(numEvents))
		}
	},
}

func init() {
	generateCmd.Flags().IntVar(&numEvents, "events", 1000, "Number of probes to process")
	generateCmd.Flags().Float64Var(&probeEnergy, "energy", 5.0, "Probe energy in GeV")
}
