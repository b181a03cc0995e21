package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, s := range []string{"none", "diag", "offdiag", "all"} {
		mode, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), mode)
	}

	_, err := ParseMode("susceptibility")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "susceptibility")
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, DefaultRunConfig(1.0, 0.5).Validate())
	require.NoError(t, DefaultAllObservablesRunConfig(1.0, 0.5).Validate())
	// tau = 0.0 is a legal "not applicable" sentinel.
	require.NoError(t, DefaultRunConfig(1.0, 0.0).Validate())
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RunConfig)
		field  string
	}{
		{"zero Tsteps", func(c *RunConfig) { c.Tsteps = 0 }, "Tsteps"},
		{"negative steps", func(c *RunConfig) { c.Steps = -1 }, "steps"},
		{"zero steps per measurement", func(c *RunConfig) { c.StepsPerMeasurement = 0 }, "stepsPerMeasurement"},
		{"nan beta", func(c *RunConfig) { c.Beta = math.NaN() }, "beta"},
		{"infinite beta", func(c *RunConfig) { c.Beta = math.Inf(1) }, "beta"},
		{"infinite tau", func(c *RunConfig) { c.Tau = math.Inf(-1) }, "tau"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunConfig(1.0, 0.5)
			tc.mutate(&cfg)

			err := cfg.Validate()
			var invalid *InvalidParameterError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.field, invalid.Name)
		})
	}
}
