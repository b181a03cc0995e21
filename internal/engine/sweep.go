/*
PURPOSE:
  Generates the parameter files for a beta sweep.
  One parameters_b<beta>.hpp per sweep point, ready for the engine's build
  step.

REQUIREMENTS:
  User-specified:
  - Emit every sweep point's parameter file in one pass.
  - Catch engine-rejecting configurations before a simulation is paid for.

  Implementation-discovered:
  - Needs to report progress to the CLI.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/config, internal/params, internal/output

ERROR HANDLING:
  - Validation and write failures abort the sweep; a half-written sweep
    directory is easier to reason about than a silently sparse one.

IMPLEMENTATION RULES:
  - This toolkit never builds or runs the engine binary; it stops at the
    textual artifact.

USAGE:
  err := engine.GenerateSweep(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/collect.go
  - internal/params/params.go

MAINTENANCE:
  - Update the filename scheme only together with whatever scripts feed the
    files to the engine build.
*/

package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/naezzell/advmeaPMRQMC/internal/config"
	"github.com/naezzell/advmeaPMRQMC/internal/output"
	"github.com/naezzell/advmeaPMRQMC/internal/params"
)

// SweepFileName returns the parameter filename for one sweep point.
func SweepFileName(beta float64) string {
	return fmt.Sprintf("parameters_b%v.hpp", beta)
}

// GenerateSweep writes one parameter file per configured beta.
func GenerateSweep(cfg *config.Config) error {
	mode, err := cfg.ModeValue()
	if err != nil {
		return err
	}
	if len(cfg.Betas) == 0 {
		return fmt.Errorf("no betas configured; nothing to generate")
	}

	if err := os.MkdirAll(cfg.SweepDir, 0755); err != nil {
		return fmt.Errorf("failed to create sweep directory %s: %w", cfg.SweepDir, err)
	}

	for _, beta := range cfg.Betas {
		run := cfg.RunConfigFor(mode, beta)
		if err := run.Validate(); err != nil {
			return fmt.Errorf("sweep point beta=%v: %w", beta, err)
		}

		text := params.Build(mode, run, cfg.Fidsus)
		path := filepath.Join(cfg.SweepDir, SweepFileName(beta))
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		output.Logger.Info("Wrote parameter file",
			"path", path,
			"mode", string(mode),
			"beta", beta,
			"tsteps", run.Tsteps,
			"steps", run.Steps,
		)
	}

	output.Logger.Info("Sweep generation complete", "points", len(cfg.Betas), "dir", cfg.SweepDir)
	return nil
}
