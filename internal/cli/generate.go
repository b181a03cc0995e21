/*
PURPOSE:
  Defines the 'generate' subcommand.
  Builds a single parameters.hpp from flags and writes it out.

REQUIREMENTS:
  User-specified:
  - Produce one parameter file without needing an experiment config.
  - Refuse engine-rejecting values before anything touches disk.

  Implementation-discovered:
  - "-o -" streams the artifact on stdout for piping into build scripts;
    the logger stays on stderr so the two never mix.

ARCHITECTURE INTEGRATION:
  - Calls: internal/params via internal/model defaults
  - Uses: internal/output for logging

ERROR HANDLING:
  - Returns validation and write errors to the root command.

IMPLEMENTATION RULES:
  - Unset step-count flags fall back to the mode's defaults, including the
    larger all-observables equilibration default.

USAGE:
  pmrqmc-io generate --mode diag --beta 1.0
  pmrqmc-io generate --mode all --beta 1.0 --tau 0.5 -o build/parameters.hpp

SELF-HEALING INSTRUCTIONS:
  - Check flag names against model.RunConfig fields.

RELATED FILES:
  - internal/params/params.go

MAINTENANCE:
  - Update when adding new run parameters.
*/

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/naezzell/advmeaPMRQMC/internal/model"
	"github.com/naezzell/advmeaPMRQMC/internal/output"
	"github.com/naezzell/advmeaPMRQMC/internal/params"
)

var (
	genModeStr string
	genBeta    float64
	genTau     float64
	genTsteps  int
	genSteps   int
	genSPM     int
	genParity  int
	genSave    bool
	genRestart bool
	genFidsus  bool
	genOut     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one parameters.hpp for the engine's build step",
	Long: `Builds the parameter-file text for a single run and writes it to a file
(or stdout with -o -). The measurement mode selects which observable
declarations the file carries:

  none      no standard observables (requires an explicit --tau)
  diag      <H_diag> and its time integral (tau is forced to 0)
  offdiag   <H_offdiag> and its time integral (tau is forced to 0)
  all       the full standard observable set

The susceptibility modes add the fidelity-susceptibility integral unless
--fidsus=false.`,
	Example: `  # Diagonal susceptibility run at beta = 1
  pmrqmc-io generate --mode diag --beta 1.0 -o parameters.hpp

  # Full observable set, longer default equilibration, restartable
  pmrqmc-io generate --mode all --beta 0.5 --tau 0.25 --restart

  # Pipe straight into the engine build tree
  pmrqmc-io generate --mode offdiag --beta 2.0 -o - > PMRQMC/parameters.hpp`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := model.ParseMode(genModeStr)
		if err != nil {
			return err
		}

		run := runFromFlags(cmd, mode)
		if err := run.Validate(); err != nil {
			return err
		}

		text := params.Build(mode, run, genFidsus)

		if genOut == "-" {
			_, err := fmt.Fprint(os.Stdout, text)
			return err
		}
		if err := os.WriteFile(genOut, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", genOut, err)
		}
		output.Logger.Info("Wrote parameter file", "path", genOut, "mode", string(mode), "beta", run.Beta)
		return nil
	},
}

// runFromFlags assembles a RunConfig from the generate flags, falling back
// to the mode's defaults for any step count left unset.
func runFromFlags(cmd *cobra.Command, mode model.Mode) model.RunConfig {
	var run model.RunConfig
	if mode == model.ModeAll {
		run = model.DefaultAllObservablesRunConfig(genBeta, genTau)
	} else {
		run = model.DefaultRunConfig(genBeta, genTau)
	}
	if cmd.Flags().Changed("tsteps") {
		run.Tsteps = genTsteps
	}
	if cmd.Flags().Changed("steps") {
		run.Steps = genSteps
	}
	if cmd.Flags().Changed("steps-per-measurement") {
		run.StepsPerMeasurement = genSPM
	}
	run.Parity = genParity
	run.Save = genSave
	run.Restart = genRestart
	return run
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genModeStr, "mode", "diag", "Measurement mode: none, diag, offdiag or all")
	generateCmd.Flags().Float64Var(&genBeta, "beta", 1.0, "Inverse temperature")
	generateCmd.Flags().Float64Var(&genTau, "tau", 0.0, "Imaginary propagation time (ignored by the susceptibility modes)")
	generateCmd.Flags().IntVar(&genTsteps, "tsteps", 0, "Equilibration updates (default depends on mode)")
	generateCmd.Flags().IntVar(&genSteps, "steps", 0, "Monte-Carlo updates (default 1000000)")
	generateCmd.Flags().IntVar(&genSPM, "steps-per-measurement", 0, "Updates per measurement (default 10)")
	generateCmd.Flags().IntVar(&genParity, "parity", 0, "Parity subspace selector")
	generateCmd.Flags().BoolVar(&genSave, "save", true, "Enable checkpoint saving")
	generateCmd.Flags().BoolVar(&genRestart, "restart", false, "Enable resuming from checkpoint data")
	generateCmd.Flags().BoolVar(&genFidsus, "fidsus", true, "Include the fidelity-susceptibility integral (susceptibility modes)")
	generateCmd.Flags().StringVarP(&genOut, "output", "o", "parameters.hpp", "Output path, or - for stdout")
}
