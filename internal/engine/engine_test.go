package engine

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naezzell/advmeaPMRQMC/internal/config"
)

func sweepConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.SweepDir = filepath.Join(dir, "sweep")
	cfg.OutputDir = filepath.Join(dir, "out")
	return cfg
}

func TestGenerateSweep(t *testing.T) {
	cfg := sweepConfig(t)
	cfg.Mode = "offdiag"
	cfg.Betas = []float64{0.5, 1.0}

	require.NoError(t, GenerateSweep(cfg))

	for _, beta := range cfg.Betas {
		path := filepath.Join(cfg.SweepDir, SweepFileName(beta))
		data, err := os.ReadFile(path)
		require.NoError(t, err, "missing sweep point file")
		text := string(data)
		assert.Contains(t, text, fmt.Sprintf("#define beta %v ", beta))
		assert.Contains(t, text, "#define MEASURE_HOFFDIAG ")
		assert.Contains(t, text, "#define MEASURE_HOFFDIAG_FINT")
	}
}

func TestGenerateSweepRespectsStepOverrides(t *testing.T) {
	cfg := sweepConfig(t)
	cfg.Mode = "all"
	cfg.Betas = []float64{2.0}
	cfg.Steps = 5000

	require.NoError(t, GenerateSweep(cfg))

	data, err := os.ReadFile(filepath.Join(cfg.SweepDir, SweepFileName(2.0)))
	require.NoError(t, err)
	text := string(data)
	// Explicit override wins; unset Tsteps keeps the all-observables default.
	assert.Contains(t, text, "#define steps 5000 ")
	assert.Contains(t, text, "#define Tsteps 10000000 ")
}

func TestGenerateSweepRejectsInvalidPoint(t *testing.T) {
	cfg := sweepConfig(t)
	cfg.Betas = []float64{math.NaN()}

	err := GenerateSweep(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid parameter beta")
}

func TestGenerateSweepRejectsUnknownMode(t *testing.T) {
	cfg := sweepConfig(t)
	cfg.Mode = "sideways"
	require.Error(t, GenerateSweep(cfg))
}

// writeSusceptibilityReport writes a minimal fidsus-enabled report.
func writeSusceptibilityReport(t *testing.T, path string) {
	t.Helper()
	lines := []string{
		"Parameters: beta = 1.0",
		"",
		"Mean sign: 0.97",
		"Std. dev. of sign: 0.002",
		"Mean q: 4.2",
		"Max q: 9.0",
	}
	for j := 1; j <= 3; j++ {
		lines = append(lines, "Observable:", fmt.Sprintf("0.%d", j), fmt.Sprintf("0.00%d", j))
	}
	lines = append(lines, "wall-clock time: 12.5 seconds")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
}

func TestCollect(t *testing.T) {
	cfg := sweepConfig(t)
	cfg.Mode = "diag"
	cfg.Fidsus = true

	runDir := filepath.Join(filepath.Dir(cfg.SweepDir), "runs")
	require.NoError(t, os.MkdirAll(runDir, 0755))
	writeSusceptibilityReport(t, filepath.Join(runDir, "b0.5.txt"))
	writeSusceptibilityReport(t, filepath.Join(runDir, "b1.0.txt"))
	// A truncated report must be skipped, not abort the collection.
	require.NoError(t, os.WriteFile(filepath.Join(runDir, "b2.0.txt"), []byte("x\ny\n"), 0644))
	cfg.Reports = []string{filepath.Join(runDir, "*.txt")}

	written, err := Collect(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	csvData, err := os.ReadFile(filepath.Join(cfg.OutputDir, cfg.CSVFile))
	require.NoError(t, err)
	csvLines := strings.Split(strings.TrimRight(string(csvData), "\n"), "\n")
	assert.Len(t, csvLines, 3, "header plus one row per good report")
	assert.Contains(t, csvLines[1], "diag")
	assert.Contains(t, csvLines[1], "0.1;0.2;0.3")

	jsonData, err := os.ReadFile(filepath.Join(cfg.OutputDir, cfg.JSONFile))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(string(jsonData), "\n"), "\n"), 2)
}

func TestCollectNoMatches(t *testing.T) {
	cfg := sweepConfig(t)
	cfg.Reports = []string{filepath.Join(t.TempDir(), "*.txt")}

	written, err := Collect(cfg)
	require.NoError(t, err)
	assert.Zero(t, written)
}

func TestCollectRefusesModeNone(t *testing.T) {
	cfg := sweepConfig(t)
	cfg.Mode = "none"
	_, err := Collect(cfg)
	require.Error(t, err)
}
