package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evgen-sim/evgen-sim/evg"
)

var (
	// Persistent CLI flags
	logLevel   string // log verbosity level
	configPath string // optional YAML generator configuration
	seed       int64  // master seed; overrides the config file value when set
	probePdg   int    // PDG code of the incoming probe
	targetZ    int    // target proton number
	targetA    int    // target mass number
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "evgen-sim",
	Short: "Particle-interaction event generator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "loglevel", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML generator configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Master seed (overrides config when non-zero)")
	rootCmd.PersistentFlags().IntVar(&probePdg, "probe", evg.PdgNuMu, "Probe PDG code")
	rootCmd.PersistentFlags().IntVar(&targetZ, "target-z", 26, "Target proton number Z")
	rootCmd.PersistentFlags().IntVar(&targetA, "target-a", 56, "Target mass number A")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(xsecCmd)
}

// loadConfig resolves the generator configuration from --config and the
// --seed override.
func loadConfig() evg.GeneratorConfig {
	cfg := evg.DefaultGeneratorConfig()
	if configPath != "" {
		loaded, err := evg.LoadGeneratorConfig(configPath)
		if err != nil {
			logrus.Fatalf("Could not load config: %v", err)
		}
		cfg = *loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
