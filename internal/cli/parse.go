// PURPOSE:
//   Defines the 'parse' subcommand.
//   One-off parsing of explicit report files, layout-driven rather than
//   config-driven.
//
// REQUIREMENTS:
//   User-specified:
//   - Parse ad-hoc report files, including the correlator layout that the
//     config-driven collect pass never produces.
//
//   Implementation-discovered:
//   - A bad file is logged and skipped so a long argument list still yields the
//     good records.
//
// ARCHITECTURE INTEGRATION:
//   - Calls: internal/report parsers directly
//   - Uses: internal/output writers
//
// ERROR HANDLING:
//   - Setup errors abort; per-file parse errors are logged and counted.
//   - Exits non-zero when nothing could be parsed.
//
// IMPLEMENTATION RULES:
//   - Layout selects the parser variant; --mode is only a record annotation.
//
// USAGE:
//   pmrqmc-io parse --layout standard runs/*/temp.txt
//   pmrqmc-io parse --layout correlator -o results corr_run/temp.txt
//
// SELF-HEALING INSTRUCTIONS:
//   - A parse failing at line 2 usually means the file is not an engine report
//     at all.
//
// RELATED FILES:
//   - internal/report/report.go
//   - internal/output/csv.go
//
// MAINTENANCE:
//   - Update the layout switch when new parser variants appear.

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/naezzell/advmeaPMRQMC/internal/model"
	"github.com/naezzell/advmeaPMRQMC/internal/output"
	"github.com/naezzell/advmeaPMRQMC/internal/report"
)

var (
	parseLayout    string
	parseFidsus    bool
	parseModeStr   string
	parseOutputDir string
)

var parseCmd = &cobra.Command{
	Use:   "parse [report files]",
	Short: "Parse engine report files into CSV and JSON-lines tables",
	Long: `Parses the given report files with a fixed layout:

  standard        six observable groups (all-observables runs)
  susceptibility  two groups, or three with --fidsus (diag/offdiag runs)
  correlator      two groups, <O> and <O(tau)O>

Which layout a report has is not recorded in the file; it follows from the
parameter file the run was built with. Records land in qmc_results.csv and
qmc_results.jsonl inside the output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parseFile, err := layoutParser(parseLayout, parseFidsus)
		if err != nil {
			return err
		}

		var mode model.Mode
		if parseModeStr != "" {
			if mode, err = model.ParseMode(parseModeStr); err != nil {
				return err
			}
		}

		if err := os.MkdirAll(parseOutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", parseOutputDir, err)
		}
		csvWriter, err := output.NewCSVWriter(filepath.Join(parseOutputDir, "qmc_results.csv"))
		if err != nil {
			return err
		}
		defer csvWriter.Close()
		jsonWriter, err := output.NewJSONWriter(filepath.Join(parseOutputDir, "qmc_results.jsonl"))
		if err != nil {
			return err
		}
		defer jsonWriter.Close()

		written := 0
		for _, file := range args {
			rec, err := parseFile(file)
			if err != nil {
				output.Logger.Error("Failed to parse report", "file", file, "error", err)
				continue
			}
			rec.Mode = mode

			if err := csvWriter.Write(rec); err != nil {
				output.Logger.Error("Failed to write result to CSV", "file", file, "error", err)
			}
			if err := jsonWriter.Write(rec); err != nil {
				output.Logger.Error("Failed to write result to JSON", "file", file, "error", err)
			}
			written++
		}

		output.Logger.Info("Parse complete", "reports", len(args), "records", written)
		if written == 0 {
			return fmt.Errorf("no report could be parsed")
		}
		return nil
	},
}

// layoutParser maps a layout name to its parser variant.
func layoutParser(layout string, fidsus bool) (func(string) (model.Report, error), error) {
	switch layout {
	case "standard":
		return report.ParseStandard, nil
	case "susceptibility":
		return func(path string) (model.Report, error) {
			return report.ParseSusceptibility(path, fidsus)
		}, nil
	case "correlator":
		return report.ParseCorrelator, nil
	}
	return nil, fmt.Errorf("unknown layout %q (want standard, susceptibility or correlator)", layout)
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseLayout, "layout", "standard", "Report layout: standard, susceptibility or correlator")
	parseCmd.Flags().BoolVar(&parseFidsus, "fidsus", true, "Susceptibility layout includes the fidelity-susceptibility integral")
	parseCmd.Flags().StringVar(&parseModeStr, "mode", "", "Annotate records with a measurement mode")
	parseCmd.Flags().StringVarP(&parseOutputDir, "output-dir", "o", ".", "Output directory for results (CSV/JSON)")
}
