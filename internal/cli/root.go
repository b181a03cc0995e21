/*
PURPOSE:
  Defines the root Cobra command for the PMR-QMC I/O CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/pmrqmc-io/main.go
  - Calls: Child commands (generate, sweep, parse, collect, instruments)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep logic in subcommands; Root only wires them together.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/pmrqmc-io/main.go

MAINTENANCE:
  - Update when adding new global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the experiment config (if specified via flag)
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "pmrqmc-io",
		Short: "Parameter-file generation and report parsing for the PMR-QMC engine",
		Long: `I/O companion for the PMR-QMC simulation engine. It writes the parameters.hpp
text the engine's build step consumes and extracts typed results from the
engine's fixed-layout reports. It never builds or runs the engine itself.`,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "experiment config file (default is ./pmrqmc.yaml)")
}
