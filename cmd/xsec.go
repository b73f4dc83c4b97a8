package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evgen-sim/evgen-sim/evg"
	"github.com/evgen-sim/evgen-sim/evg/models"
)

var (
	scanEMin  float64 // scan start energy in GeV
	scanEMax  float64 // scan end energy in GeV
	scanSteps int     // number of scan points
)

// xsecCmd integrates every channel's total cross section over an
// energy scan. Useful both for inspection and for producing the numbers
// behind a tabulation file.
var xsecCmd = &cobra.Command{
	Use:   "xsec",
	Short: "Print total cross sections per channel over an energy scan",
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

		if scanSteps < 1 {
			logrus.Fatalf("Scan requires at least one step")
		}
		tgt := evg.Target{Z: targetZ, A: targetA}

		fmt.Printf("%-10s", "E[GeV]")
		for _, id := range gmap.Channels() {
			fmt.Printf(" %14s", id)
		}
		fmt.Println()

		for i := 0; i < scanSteps; i++ {
			e := scanEMin
			if scanSteps > 1 {
				e += (scanEMax - scanEMin) * float64(i) / float64(scanSteps-1)
			}
			p4 := evg.FourVector{E: e, Pz: e}

			fmt.Printf("%-10.3f", e)
			for _, id := range gmap.Channels() {
				ch, _ := gmap.Channel(id)
				in := ch.Gen.GenerateInteraction(p4, tgt)
				var xs float64
				if in != nil {
					xs, err = ch.XSec.Integrate(ch.Model, in)
					if err != nil {
						logrus.Fatalf("Integration failed for %q at E=%g: %v", id, e, err)
					}
				}
				fmt.Printf(" %14.6g", xs)
			}
			fmt.Println()
		}
	},
}

func init() {
	xsecCmd.Flags().Float64Var(&scanEMin, "emin", 1.0, "Scan start energy in GeV")
	xsecCmd.Flags().Float64Var(&scanEMax, "emax", 20.0, "Scan end energy in GeV")
	xsecCmd.Flags().IntVar(&scanSteps, "steps", 10, "Number of scan points")
}
