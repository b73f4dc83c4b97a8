package evg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GeneratorConfig is the run-level configuration of the generation
// pipeline, loaded from YAML. Zero values fall back to defaults; all
// validation happens up front so misconfiguration fails at setup.
type GeneratorConfig struct {
	Seed             int64          `yaml:"seed"`
	Integrator       IntegratorSpec `yaml:"integrator"`
	WCut             *Range         `yaml:"w_cut"`
	Q2Cut            *Range         `yaml:"q2_cut"`
	UseTabulatedXSec bool           `yaml:"use_tabulated_xsec"`
	XSecTablePath    string         `yaml:"xsec_table_path"`
}

// DefaultGeneratorConfig returns the configuration used when no file is
// given: seed 1, adaptive Simpson with library defaults, no cuts, no
// tabulation.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{Seed: 1}
}

// LoadGeneratorConfig reads and validates a YAML configuration file.
func LoadGeneratorConfig(path string) (*GeneratorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("generator config: %w", err)
	}
	cfg := DefaultGeneratorConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("generator config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generator config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks for configuration faults that must fail fast: unknown
// integrator names, inverted cut windows, tabulation without a table.
func (c *GeneratorConfig) Validate() error {
	if _, err := NewIntegrator(c.Integrator); err != nil {
		return err
	}
	if c.WCut != nil && c.WCut.Empty() {
		return fmt.Errorf("inverted w_cut [%g, %g]", c.WCut.Min, c.WCut.Max)
	}
	if c.Q2Cut != nil && c.Q2Cut.Empty() {
		return fmt.Errorf("inverted q2_cut [%g, %g]", c.Q2Cut.Min, c.Q2Cut.Max)
	}
	if c.UseTabulatedXSec && c.XSecTablePath == "" {
		return fmt.Errorf("use_tabulated_xsec set but xsec_table_path missing")
	}
	return nil
}

// Cuts returns the configured phase-space cuts in XSecCuts form.
func (c *GeneratorConfig) Cuts() XSecCuts {
	return XSecCuts{W: c.WCut, Q2: c.Q2Cut}
}
