/*
PURPOSE:
  Defines the experiment configuration structure and loading logic for the
  PMR-QMC I/O toolkit. One config describes a beta sweep and where its
  artifacts live.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the measurement mode, the beta sweep, run step
    counts, checkpoint toggles and output locations.

  Implementation-discovered:
  - Needs YAML parsing.
  - Step counts left unset must fall back to the mode's run defaults (the
    all-observables mode carries a much larger equilibration default).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if a config file is invalid.
  - A missing file falls back to defaults when no path was given.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible for a quick susceptibility sweep.

USAGE:
  cfg, err := config.Load("pmrqmc.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Default()
    plus RunConfigFor().

RELATED FILES:
  - internal/cli/root.go
  - internal/model/types.go

MAINTENANCE:
  - Update when adding new sweep parameters.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/naezzell/advmeaPMRQMC/internal/model"
)

// Config represents one experiment: a measurement mode, a beta sweep, and
// the output locations for generated parameter files and collected results.
type Config struct {
	Mode   string    `yaml:"mode"` // none, diag, offdiag or all
	Betas  []float64 `yaml:"betas"`
	Tau    float64   `yaml:"tau"`    // ignored by the susceptibility modes
	Fidsus bool      `yaml:"fidsus"` // susceptibility modes only

	// Step counts of 0 mean "use the mode's default".
	Tsteps              int  `yaml:"tsteps"`
	Steps               int  `yaml:"steps"`
	StepsPerMeasurement int  `yaml:"steps_per_measurement"`
	Parity              int  `yaml:"parity"`
	Save                bool `yaml:"save"`
	Restart             bool `yaml:"restart"`

	// SweepDir receives one parameters_b<beta>.hpp per sweep point.
	SweepDir string `yaml:"sweep_dir"`
	// Reports are the engine report files (or globs) to collect.
	Reports []string `yaml:"reports"`
	// Collected results land in OutputDir/CSVFile and OutputDir/JSONFile.
	OutputDir string `yaml:"output_dir"`
	CSVFile   string `yaml:"csv_file"`
	JSONFile  string `yaml:"json_file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Mode:      string(model.ModeDiag),
		Betas:     []float64{0.5, 1.0, 2.0},
		Tau:       0.0,
		Fidsus:    true,
		Save:      true,
		SweepDir:  "sweep",
		Reports:   []string{"runs/*/temp.txt"},
		OutputDir: ".",
		CSVFile:   "qmc_results.csv",
		JSONFile:  "qmc_results.jsonl",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file is found, returns the default config.
func Load(path string) (*Config, error) {
	cfg := Default()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		defaults := []string{"pmrqmc.yaml", "pmrqmc_io.yaml", "experiment.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// ModeValue returns the parsed measurement mode.
func (c *Config) ModeValue() (model.Mode, error) {
	return model.ParseMode(c.Mode)
}

// RunConfigFor builds the run configuration for one sweep point, starting
// from the mode's defaults and applying any explicitly-set step counts.
func (c *Config) RunConfigFor(mode model.Mode, beta float64) model.RunConfig {
	var run model.RunConfig
	if mode == model.ModeAll {
		run = model.DefaultAllObservablesRunConfig(beta, c.Tau)
	} else {
		run = model.DefaultRunConfig(beta, c.Tau)
	}
	if c.Tsteps > 0 {
		run.Tsteps = c.Tsteps
	}
	if c.Steps > 0 {
		run.Steps = c.Steps
	}
	if c.StepsPerMeasurement > 0 {
		run.StepsPerMeasurement = c.StepsPerMeasurement
	}
	run.Parity = c.Parity
	run.Save = c.Save
	run.Restart = c.Restart
	return run
}
