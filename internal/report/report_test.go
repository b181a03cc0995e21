package report

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naezzell/advmeaPMRQMC/internal/model"
)

func writeReport(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temp.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

// syntheticReport builds a report with the engine's layout: two header lines,
// the emergent quartet, then one labelled (value, std) group per entry, then
// the duration line.
func syntheticReport(emergent [4]string, values, stds []float64, dur float64) []string {
	lines := []string{"x", "y"}
	lines = append(lines,
		"Mean sign: "+emergent[0],
		"Std. dev. of sign: "+emergent[1],
		"Mean q: "+emergent[2],
		"Max q: "+emergent[3],
	)
	for i := range values {
		lines = append(lines,
			"Observable:",
			fmt.Sprintf("%v", values[i]),
			fmt.Sprintf("%v", stds[i]),
		)
	}
	lines = append(lines, fmt.Sprintf("wall-clock time: %v seconds", dur))
	return lines
}

func TestOffsetMapping(t *testing.T) {
	assert.Equal(t, 7, lineForGroup(1))
	assert.Equal(t, 10, lineForGroup(2))
	assert.Equal(t, 22, lineForGroup(6))
	assert.Equal(t, 12, durationLine(2))
	assert.Equal(t, 15, durationLine(3))
	assert.Equal(t, 24, durationLine(6))
}

func TestParseStandard(t *testing.T) {
	values := []float64{-1.25, 1.75, -0.5, 0.625, 3.0e-4, 42}
	stds := []float64{0.01, 0.02, 0.03, 0.04, 0.05, 0.06}
	lines := syntheticReport([4]string{"0.98", "0.01", "1.5", "2.0"}, values, stds, 532.7)
	require.Len(t, lines, 25)

	rec, err := ParseStandard(writeReport(t, lines))
	require.NoError(t, err)

	// Emergent quantities stay textual, exactly as printed.
	assert.Equal(t, model.Emergent{Sign: "0.98", SignStd: "0.01", MeanQ: "1.5", MaxQ: "2.0"}, rec.Emergent)
	assert.Equal(t, values, rec.Values)
	assert.Equal(t, stds, rec.Stds)
	assert.Equal(t, 532.7, rec.Duration)
	assert.False(t, rec.Timestamp.IsZero())
}

func TestParseStandardTruncated(t *testing.T) {
	lines := syntheticReport([4]string{"0.98", "0.01", "1.5", "2.0"},
		[]float64{1, 2, 3, 4, 5, 6}, []float64{1, 2, 3, 4, 5, 6}, 1.0)
	truncated := lines[:len(lines)-1] // drop the duration line

	_, err := ParseStandard(writeReport(t, truncated))
	var malformed *MalformedReportError
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
	assert.Equal(t, 24, malformed.Line)
	assert.Contains(t, err.Error(), malformed.Path)
}

func TestParseStandardNonNumericLine(t *testing.T) {
	lines := syntheticReport([4]string{"0.98", "0.01", "1.5", "2.0"},
		[]float64{1, 2, 3, 4, 5, 6}, []float64{1, 2, 3, 4, 5, 6}, 1.0)
	lines[lineForGroup(3)] = "### corrupted ###"

	_, err := ParseStandard(writeReport(t, lines))
	var malformed *MalformedReportError
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, err, ErrNoNumericToken)
	assert.Equal(t, lineForGroup(3), malformed.Line)
}

func TestParseSusceptibilityFidsusReadsExtraGroup(t *testing.T) {
	// Two otherwise identical reports; the second carries one extra group,
	// as a fidsus-enabled run would.
	emergent := [4]string{"0.9", "0.05", "3.1", "7.0"}
	values := []float64{-0.75, 0.125, 2.5}
	stds := []float64{0.01, 0.02, 0.03}
	base := writeReport(t, syntheticReport(emergent, values[:2], stds[:2], 60.5))
	extended := writeReport(t, syntheticReport(emergent, values, stds, 60.5))

	without, err := ParseSusceptibility(base, false)
	require.NoError(t, err)
	assert.Equal(t, values[:2], without.Values)
	assert.Equal(t, stds[:2], without.Stds)
	assert.Equal(t, 60.5, without.Duration)

	with, err := ParseSusceptibility(extended, true)
	require.NoError(t, err)
	assert.Equal(t, values, with.Values)
	assert.Equal(t, stds, with.Stds)
	assert.Equal(t, 60.5, with.Duration)

	assert.Len(t, with.Values, len(without.Values)+1)
}

func TestParseSusceptibilityTruncated(t *testing.T) {
	lines := syntheticReport([4]string{"0.9", "0.05", "3.1", "7.0"},
		[]float64{1, 2}, []float64{0.1, 0.2}, 9.0)
	path := writeReport(t, lines)

	// Two groups satisfy fidsus=false but not fidsus=true.
	_, err := ParseSusceptibility(path, false)
	require.NoError(t, err)

	_, err = ParseSusceptibility(path, true)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
}

func TestParseCorrelator(t *testing.T) {
	values := []float64{0.5, -0.25}
	stds := []float64{0.001, 0.002}
	rec, err := ParseCorrelator(writeReport(t, syntheticReport(
		[4]string{"1.0", "0.0", "2.0", "4.0"}, values, stds, 17.25)))
	require.NoError(t, err)
	assert.Equal(t, values, rec.Values)
	assert.Equal(t, stds, rec.Stds)
	assert.Equal(t, 17.25, rec.Duration)
}

func TestParseNanTokens(t *testing.T) {
	lines := syntheticReport([4]string{"0.98", "nan", "1.5", "2.0"},
		[]float64{1, 2}, []float64{3, 4}, 5.0)
	lines[lineForGroup(1)+1] = "nan"

	rec, err := ParseCorrelator(writeReport(t, lines))
	require.NoError(t, err)
	// Emergent "nan" survives as text; a group "nan" becomes a float NaN.
	assert.Equal(t, "nan", rec.Emergent.SignStd)
	assert.True(t, math.IsNaN(rec.Stds[0]))
	assert.Equal(t, 4.0, rec.Stds[1])
}

func TestParseMissingFile(t *testing.T) {
	_, err := ParseStandard(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	var malformed *MalformedReportError
	assert.False(t, errors.As(err, &malformed))
}
