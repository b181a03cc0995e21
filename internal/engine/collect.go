/*
PURPOSE:
  Collects finished engine reports into tabulated results.
  Globs the configured report paths, parses each with the variant the
  experiment's mode implies, and appends records to CSV and JSON-lines files.

REQUIREMENTS:
  User-specified:
  - Tabulate an entire sweep's reports in one pass.
  - A single bad report must not sink the rest of the sweep.

  Implementation-discovered:
  - Which parser variant applies is an external contract carried by the
    experiment config, not readable from the report itself.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/config, internal/report, internal/output

ERROR HANDLING:
  - Logs per-file parse failures and continues (resilience); setup failures
    (bad mode, unwritable output) abort.

IMPLEMENTATION RULES:
  - Iterate globs in config order so result rows are reproducible.

USAGE:
  err := engine.Collect(cfg)

SELF-HEALING INSTRUCTIONS:
  - If every file fails at the same line index, the mode in the config does
    not match the mode the runs were generated with.

RELATED FILES:
  - internal/engine/sweep.go
  - internal/report/report.go

MAINTENANCE:
  - Update when new parser variants appear.
*/

package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/naezzell/advmeaPMRQMC/internal/config"
	"github.com/naezzell/advmeaPMRQMC/internal/model"
	"github.com/naezzell/advmeaPMRQMC/internal/output"
	"github.com/naezzell/advmeaPMRQMC/internal/report"
)

// Collect parses every configured report and writes the records to the
// configured CSV and JSON-lines outputs. It returns the number of records
// written.
func Collect(cfg *config.Config) (int, error) {
	mode, err := cfg.ModeValue()
	if err != nil {
		return 0, err
	}
	if mode == model.ModeNone {
		return 0, fmt.Errorf("mode none declares no observables; there is no report layout to collect")
	}

	files, err := expandReports(cfg.Reports)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		output.Logger.Warn("No report files matched", "patterns", cfg.Reports)
		return 0, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	csvPath := filepath.Join(cfg.OutputDir, cfg.CSVFile)
	csvWriter, err := output.NewCSVWriter(csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to init CSV writer at %s: %w", csvPath, err)
	}
	defer csvWriter.Close()

	jsonPath := filepath.Join(cfg.OutputDir, cfg.JSONFile)
	jsonWriter, err := output.NewJSONWriter(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("failed to init JSON writer at %s: %w", jsonPath, err)
	}
	defer jsonWriter.Close()

	written := 0
	for _, file := range files {
		rec, err := parseByMode(file, mode, cfg.Fidsus)
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

		output.Logger.Info("Collected report",
			"file", file,
			"sign", rec.Emergent.Sign,
			"groups", len(rec.Values),
			"duration_s", rec.Duration,
		)
	}

	output.Logger.Info("Collection complete", "reports", len(files), "records", written)
	return written, nil
}

// parseByMode selects the parser variant the experiment's mode implies.
func parseByMode(path string, mode model.Mode, fidsus bool) (model.Report, error) {
	switch mode {
	case model.ModeAll:
		return report.ParseStandard(path)
	case model.ModeDiag, model.ModeOffdiag:
		return report.ParseSusceptibility(path, fidsus)
	default:
		return model.Report{}, fmt.Errorf("no report layout for mode %q", mode)
	}
}

// expandReports resolves the configured report patterns to concrete files,
// preserving pattern order. A literal path without glob metacharacters is
// kept as-is so a missing file surfaces as a parse error instead of
// disappearing from the run.
func expandReports(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad report pattern %q: %w", pattern, err)
		}
		if matches == nil && !hasGlobMeta(pattern) {
			files = append(files, pattern)
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}

func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '\\':
			return true
		}
	}
	return false
}
