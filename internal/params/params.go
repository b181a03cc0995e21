/*
PURPOSE:
  Serializes a run configuration into the parameters.hpp text the engine's
  build step consumes. Four public variants differ only in which optional
  measurement block they insert and which run defaults they pair with.

REQUIREMENTS:
  User-specified:
  - Emit the header (citation/license preamble + interpolated parameters),
    an optional standard-observables block, and the footer (implementation
    constants + checkpoint toggles), in that order.
  - Reproduce the literal text byte-for-byte, comments and all; the engine's
    build step keys off the macro tokens and humans read the comments.

  Implementation-discovered:
  - Integer parameters must render without a fractional suffix; reals use
    Go's default shortest representation. No width or precision is enforced.
  - The susceptibility variants force tau to 0.0; they are temperature-only.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli
  - Consumes: internal/model.RunConfig

ERROR HANDLING:
  - None. Values are interpolated uninspected; callers that want to catch
    engine-rejecting configs run RunConfig.Validate() first.

IMPLEMENTATION RULES:
  - Pure text construction. No file I/O here; writing the artifact to disk is
    the orchestrator's job.
  - The save and restart footer blocks are independent toggles.

USAGE:
  text := params.AllObservables(model.DefaultAllObservablesRunConfig(1.0, 0.5))

SELF-HEALING INSTRUCTIONS:
  - If generated files stop compiling against the engine, diff the literal
    blocks against the engine's reference parameters.hpp before touching
    interpolation.

RELATED FILES:
  - internal/params/observables.go
  - internal/model/types.go

MAINTENANCE:
  - Any change to the literal text is a wire-contract change; coordinate with
    the engine side.
*/

package params

import (
	"fmt"

	"github.com/naezzell/advmeaPMRQMC/internal/model"
)

const headerPreamble = `
//
// This program implements Permutation Matrix Representation Quantum Monte Carlo for arbitrary spin-1/2 Hamiltonians.
//
// This program is introduced in the paper:
// Lev Barash, Arman Babakhani, Itay Hen, A quantum Monte Carlo algorithm for arbitrary spin-1/2 Hamiltonians, Physical Review Research 6, 013281 (2024).
//
// Various advanced measurement capabilities were added as part of the
// work introduced in the papers:
// * Nic Ezzell, Lev Barash, Itay Hen, Exact and universal quantum Monte Carlo estimators for energy susceptibility and fidelity susceptibility, arXiv:2408.03924 (2024).
// * Nic Ezzell and Itay Hen, Advanced measurement techniques in quantum Monte Carlo: The permutation matrix representation approach, arXiv:2504.07295 (2025).
//
// This program is licensed under a Creative Commons Attribution 4.0 International License:
// http://creativecommons.org/licenses/by/4.0/
//
// ExExFloat datatype and calculation of divided differences are described in the paper:
// L. Gupta, L. Barash, I. Hen, Calculating the divided differences of the exponential function by addition and removal of inputs, Computer Physics Communications 254, 107385 (2020)
//

//
// Below are the parameter values:
//
    `

const footerConstants = `
//
// Below are the implementation parameters:
//

#define qmax     1000                // upper bound for the maximal length of the sequence of permutation operators
#define Nbins    250                 // number of bins for the error estimation via binning analysis
#define EXHAUSTIVE_CYCLE_SEARCH      // comment this line for a more restrictive cycle search
#define GAPS_GEOMETRIC_PARAMETER 0.8 // parameter of geometric distribution for the length of gaps in the cycle completion update
#define COMPOSITE_UPDATE_BREAK_PROBABILITY  0.9   // exit composite update at each step with this probability

// #define ABS_WEIGHTS                  // uncomment this line to employ absolute values of weights rather than real parts of weights
// #define EXACTLY_REPRODUCIBLE         // uncomment this to always employ the same RNG seeds and reproduce exactly the same results

//
// Uncomment or comment the macros below to enable or disable the ability to checkpoint and restart
//
`

const saveBlock = `
#define SAVE_COMPLETED_CALCULATION   // save detailed data to "qmc_data_*.dat" when calculaiton is completed
#define SAVE_UNFINISHED_CALCULATION  // save calculation state to the files "qmc_data_*.dat" prior to exiting when SIGTERM signal is detected
#define HURRY_ON_SIGTERM             // uncomment this line to break composite update on SIGTERM signal to speed up the process
    `

const restartBlock = `
#define RESUME_CALCULATION           // attempt to read data from "qmc_data_*.dat" to resume the previous calculation
        `

// header emits the fixed preamble followed by the interpolated parameter
// block. Field order is fixed: Tsteps, steps, stepsPerMeasurement, beta, tau,
// parity_cond.
func header(cfg model.RunConfig) string {
	return headerPreamble + fmt.Sprintf(`
#define Tsteps %d // number of Monte-Carlo initial equilibration updates
#define steps %d // number of Monte-Carlo updates
#define stepsPerMeasurement %d // number of Monte-Carlo updates per measurement
#define beta %v // inverse temperature
#define tau %v //imaginary propogation time
#define parity_cond %d // controls parity subspace measurement 
`, cfg.Tsteps, cfg.Steps, cfg.StepsPerMeasurement, cfg.Beta, cfg.Tau, cfg.Parity)
}

// footer emits the implementation constants plus the optional checkpoint
// blocks. save and restart are independent; all four combinations are valid.
func footer(save, restart bool) string {
	s := footerConstants
	if save {
		s += saveBlock
	}
	if restart {
		s += restartBlock
	}
	return s
}

// NoObservables builds a parameter file with no standard observables.
// Unlike the susceptibility variants, cfg.Tau is used as given.
func NoObservables(cfg model.RunConfig) string {
	return header(cfg) + footer(cfg.Save, cfg.Restart)
}

// DiagSusceptibility builds a parameter file measuring the diagonal energy
// and its time integral, plus the fidelity-susceptibility integral when
// fidsus is true. Tau is forced to 0.0: this variant is temperature-only.
func DiagSusceptibility(cfg model.RunConfig, fidsus bool) string {
	cfg.Tau = 0.0
	s := header(cfg) + diagBody
	if fidsus {
		s += "#define " + MeasureHdiagFint + "\n"
	}
	return s + footer(cfg.Save, cfg.Restart)
}

// OffdiagSusceptibility is the off-diagonal-energy counterpart of
// DiagSusceptibility.
func OffdiagSusceptibility(cfg model.RunConfig, fidsus bool) string {
	cfg.Tau = 0.0
	s := header(cfg) + offdiagBody
	if fidsus {
		s += "#define " + MeasureHoffdiagFint + "\n"
	}
	return s + footer(cfg.Save, cfg.Restart)
}

// AllObservables builds a parameter file declaring the full set of standard
// observables. cfg.Tau is used as given; pair with
// model.DefaultAllObservablesRunConfig for the expected longer equilibration.
func AllObservables(cfg model.RunConfig) string {
	return header(cfg) + allBody + footer(cfg.Save, cfg.Restart)
}
