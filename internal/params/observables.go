/*
PURPOSE:
  Names the measurement macro tokens and holds the literal observable blocks
  each builder variant inserts between header and footer.

REQUIREMENTS:
  User-specified:
  - Token names are a wire contract with the engine's build step; reproduce
    them verbatim, trailing comments included.

  Implementation-discovered:
  - The off-diagonal block's trailing comment still reads <H_{diag}>; that is
    how the engine repository ships it, so it stays.

ARCHITECTURE INTEGRATION:
  - Used by: internal/params builders, internal/cli (instruments command),
    package tests.

ERROR HANDLING:
  - None (pure data).

IMPLEMENTATION RULES:
  - Instruments() must list exactly the tokens a variant declares, in file
    order, so it can audit generated text.

USAGE:
  toks := params.Instruments(model.ModeDiag, true)

SELF-HEALING INSTRUCTIONS:
  - When the engine adds a measurement macro, add the constant, extend the
    relevant body block and Instruments(), and cover it in params_test.go.

RELATED FILES:
  - internal/params/params.go

MAINTENANCE:
  - Keep constants and body blocks in lockstep.
*/

package params

import "github.com/naezzell/advmeaPMRQMC/internal/model"

// Measurement macro tokens understood by the engine's build step.
const (
	MeasureH              = "MEASURE_H"
	MeasureH2             = "MEASURE_H2"
	MeasureHdiag          = "MEASURE_HDIAG"
	MeasureHdiag2         = "MEASURE_HDIAG2"
	MeasureHoffdiag       = "MEASURE_HOFFDIAG"
	MeasureHoffdiag2      = "MEASURE_HOFFDIAG2"
	MeasureZMagnetization = "MEASURE_Z_MAGNETIZATION"
	MeasureHdiagCorr      = "MEASURE_HDIAG_CORR"
	MeasureHdiagEint      = "MEASURE_HDIAG_EINT"
	MeasureHdiagFint      = "MEASURE_HDIAG_FINT"
	MeasureHoffdiagCorr   = "MEASURE_HOFFDIAG_CORR"
	MeasureHoffdiagEint   = "MEASURE_HOFFDIAG_EINT"
	MeasureHoffdiagFint   = "MEASURE_HOFFDIAG_FINT"
)

const diagBody = `
//
// Below is the list of standard observables:
//

#define MEASURE_HDIAG                // <H_{diag}>      is measured when this line is not commented
#define MEASURE_HDIAG_EINT

`

const offdiagBody = `
//
// Below is the list of standard observables:
//

#define MEASURE_HOFFDIAG                // <H_{diag}>      is measured when this line is not commented
#define MEASURE_HOFFDIAG_EINT

`

const allBody = `
//
// Below is the list of standard observables:
//

#define MEASURE_H                    // <H>             is measured when this line is not commented
#define MEASURE_H2                   // <H^2>           is measured when this line is not commented
#define MEASURE_HDIAG                // <H_{diag}>      is measured when this line is not commented
#define MEASURE_HDIAG2               // <H_{diag}^2>    is measured when this line is not commented
#define MEASURE_HOFFDIAG             // <H_{offdiag}>   is measured when this line is not commented
#define MEASURE_HOFFDIAG2            // <H_{offdiag}^2> is measured when this line is not commented
#define MEASURE_Z_MAGNETIZATION      // Z-magnetization is measured when this line is not commented
#define MEASURE_HDIAG_CORR
#define MEASURE_HDIAG_EINT
#define MEASURE_HDIAG_FINT
#define MEASURE_HOFFDIAG_CORR
#define MEASURE_HOFFDIAG_EINT
#define MEASURE_HOFFDIAG_FINT
`

// Instruments returns the measurement tokens a mode declares, in the order
// they appear in the generated file. fidsus only affects the susceptibility
// modes.
func Instruments(mode model.Mode, fidsus bool) []string {
	switch mode {
	case model.ModeDiag:
		toks := []string{MeasureHdiag, MeasureHdiagEint}
		if fidsus {
			toks = append(toks, MeasureHdiagFint)
		}
		return toks
	case model.ModeOffdiag:
		toks := []string{MeasureHoffdiag, MeasureHoffdiagEint}
		if fidsus {
			toks = append(toks, MeasureHoffdiagFint)
		}
		return toks
	case model.ModeAll:
		return []string{
			MeasureH, MeasureH2,
			MeasureHdiag, MeasureHdiag2,
			MeasureHoffdiag, MeasureHoffdiag2,
			MeasureZMagnetization,
			MeasureHdiagCorr, MeasureHdiagEint, MeasureHdiagFint,
			MeasureHoffdiagCorr, MeasureHoffdiagEint, MeasureHoffdiagFint,
		}
	default:
		return nil
	}
}

// Build dispatches to the variant selected by mode. It exists so the
// orchestrator can treat mode as data.
func Build(mode model.Mode, cfg model.RunConfig, fidsus bool) string {
	switch mode {
	case model.ModeDiag:
		return DiagSusceptibility(cfg, fidsus)
	case model.ModeOffdiag:
		return OffdiagSusceptibility(cfg, fidsus)
	case model.ModeAll:
		return AllObservables(cfg)
	default:
		return NoObservables(cfg)
	}
}
