/*
PURPOSE:
  Defines the 'instruments' subcommand.
  Helps audit which measurement macros a mode declares.

REQUIREMENTS:
  User-specified:
  - List the instrument tokens a generated parameter file will carry.

  Implementation-discovered:
  - Useful sanity check before committing to a long sweep, and when matching
    an old report back to the mode that produced it.

ARCHITECTURE INTEGRATION:
  - Calls: internal/params.Instruments()

ERROR HANDLING:
  - Errors on an unknown mode.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  pmrqmc-io instruments --mode all

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/params/observables.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naezzell/advmeaPMRQMC/internal/model"
	"github.com/naezzell/advmeaPMRQMC/internal/params"
)

var (
	instModeStr string
	instFidsus  bool
)

var instrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "List the measurement macros a mode declares",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := model.ParseMode(instModeStr)
		if err != nil {
			return err
		}

		toks := params.Instruments(mode, instFidsus)
		if len(toks) == 0 {
			fmt.Printf("mode %s declares no standard observables\n", mode)
			return nil
		}
		for _, tok := range toks {
			fmt.Printf("- %s\n", tok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(instrumentsCmd)

	instrumentsCmd.Flags().StringVar(&instModeStr, "mode", "all", "Measurement mode: none, diag, offdiag or all")
	instrumentsCmd.Flags().BoolVar(&instFidsus, "fidsus", true, "Include the fidelity-susceptibility integral (susceptibility modes)")
}
