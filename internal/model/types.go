/*
PURPOSE:
  Defines the core data structures used throughout the PMR-QMC I/O toolkit.
  These models represent run configurations and parsed engine reports.

REQUIREMENTS:
  User-specified:
  - Record inverse temperature, propagation time, step counts, parity and
    checkpoint flags for a run.
  - Record parsed emergent quantities, observable estimates and errors, and
    the run's wall-clock duration.

  Implementation-discovered:
  - Need JSON tags for the JSON-lines result writer.
  - Emergent quantities stay textual while observable arrays are numeric;
    downstream notebooks depend on that shape.

ARCHITECTURE INTEGRATION:
  - Used by: internal/params, internal/report, internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - Validate() reports the first engine-rejecting parameter; everything else
    is pure data.

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Builders must stay usable with unvalidated configs; validation is the
    orchestrator's call, not the serializer's.

USAGE:
  cfg := model.DefaultRunConfig(1.0, 0.5)

SELF-HEALING INSTRUCTIONS:
  - If new observables are added, extend Mode handling in internal/params and
    the parser variant table in internal/report together.

RELATED FILES:
  - internal/params/params.go
  - internal/report/report.go

MAINTENANCE:
  - Update when the engine grows new adjustable parameters.
*/

package model

import (
	"fmt"
	"math"
	"time"
)

// Mode selects which optional measurement instruments a generated parameter
// file declares, and which report layout a later parse expects.
type Mode string

const (
	// ModeNone declares no standard observables.
	ModeNone Mode = "none"
	// ModeDiag declares the diagonal-energy susceptibility family.
	ModeDiag Mode = "diag"
	// ModeOffdiag declares the off-diagonal-energy susceptibility family.
	ModeOffdiag Mode = "offdiag"
	// ModeAll declares the full set of standard observables.
	ModeAll Mode = "all"
)

// ParseMode converts a user-supplied mode string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNone, ModeDiag, ModeOffdiag, ModeAll:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want none, diag, offdiag or all)", s)
}

// RunConfig holds the adjustable parameters of a single engine run.
// Beta and Tau are interpolated into the parameter file verbatim; Tau may be
// 0.0 as a "not applicable" sentinel for the susceptibility modes.
type RunConfig struct {
	Beta                float64 `json:"beta"`
	Tau                 float64 `json:"tau"`
	Tsteps              int     `json:"tsteps"`
	Steps               int     `json:"steps"`
	StepsPerMeasurement int     `json:"steps_per_measurement"`
	Parity              int     `json:"parity"`
	Save                bool    `json:"save"`
	Restart             bool    `json:"restart"`
}

// DefaultRunConfig returns the run defaults shared by the no-observable and
// susceptibility modes.
func DefaultRunConfig(beta, tau float64) RunConfig {
	return RunConfig{
		Beta:                beta,
		Tau:                 tau,
		Tsteps:              100000,
		Steps:               1000000,
		StepsPerMeasurement: 10,
		Parity:              0,
		Save:                true,
		Restart:             false,
	}
}

// DefaultAllObservablesRunConfig returns the run defaults for the
// all-observables mode. Its equilibration default is deliberately much larger
// than the other modes'; the engine expects the longer warm-up when every
// instrument is active.
func DefaultAllObservablesRunConfig(beta, tau float64) RunConfig {
	cfg := DefaultRunConfig(beta, tau)
	cfg.Tsteps = 10000000
	return cfg
}

// InvalidParameterError reports a run parameter the engine would reject.
type InvalidParameterError struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Name, e.Value, e.Reason)
}

// Validate reports the first engine-rejecting parameter, or nil.
// The serializer itself never validates; callers that are about to pay for a
// simulation should.
func (c RunConfig) Validate() error {
	if c.Tsteps <= 0 {
		return &InvalidParameterError{Name: "Tsteps", Value: c.Tsteps, Reason: "must be strictly positive"}
	}
	if c.Steps <= 0 {
		return &InvalidParameterError{Name: "steps", Value: c.Steps, Reason: "must be strictly positive"}
	}
	if c.StepsPerMeasurement <= 0 {
		return &InvalidParameterError{Name: "stepsPerMeasurement", Value: c.StepsPerMeasurement, Reason: "must be strictly positive"}
	}
	if math.IsNaN(c.Beta) || math.IsInf(c.Beta, 0) {
		return &InvalidParameterError{Name: "beta", Value: c.Beta, Reason: "must be finite"}
	}
	if math.IsNaN(c.Tau) || math.IsInf(c.Tau, 0) {
		return &InvalidParameterError{Name: "tau", Value: c.Tau, Reason: "must be finite"}
	}
	return nil
}

// Emergent is the quartet of run-level statistics present in every report.
// Fields are kept as the raw report text (the engine emits "nan" for
// undefined sign errors and downstream tooling handles that string itself).
type Emergent struct {
	Sign    string `json:"sign"`
	SignStd string `json:"sign_std"`
	MeanQ   string `json:"mean_q"`
	MaxQ    string `json:"max_q"`
}

// Report is the parsed result of one engine run.
type Report struct {
	File      string    `json:"file"`
	Mode      Mode      `json:"mode"`
	Emergent  Emergent  `json:"emergent"`
	Values    []float64 `json:"values"`
	Stds      []float64 `json:"stds"`
	Duration  float64   `json:"duration_s"`
	Timestamp time.Time `json:"timestamp"`
}
