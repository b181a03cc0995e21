/*
PURPOSE:
  Tolerant scalar-number recognizer shared by the report parsers.
  Extracts numeric tokens from free-form report lines.

REQUIREMENTS:
  User-specified:
  - Recognize signed/unsigned integers, decimals, exponent notation.
  - Recognize the literal token "nan" (lowercase only) emitted by the engine
    for undefined estimates.

  Implementation-discovered:
  - The engine pads lines with labels and units; tokens must be pulled out of
    arbitrary surrounding text, in left-to-right order.

ARCHITECTURE INTEGRATION:
  - Used by: internal/report (line destructuring), internal/params tests
    (round-trip checks on generated headers).
  - Depends on: regexp only.

ERROR HANDLING:
  - None. A line with no numeric content yields an empty result; callers decide
    whether that is an error.

IMPLEMENTATION RULES:
  - Stateless. One compiled regexp, safe for concurrent use.
  - Do not normalize or coerce tokens here; callers own conversion.

USAGE:
  toks := scan.Numbers("sign = -3.2e-5 +/- nan")

SELF-HEALING INSTRUCTIONS:
  - If the engine ever emits "inf" or uppercase "NAN", extend the pattern and
    add a fixture line to scan_test.go.

RELATED FILES:
  - internal/report/report.go

MAINTENANCE:
  - The pattern is a contract with the engine's report formatting; change it
    only in lockstep with the engine.
*/

package scan

import "regexp"

// numberPattern matches an optional sign, digits with an optional fractional
// part (a bare leading decimal point is allowed), an optional exponent
// suffix, or the literal token "nan".
var numberPattern = regexp.MustCompile(`[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?|nan`)

// Numbers returns every numeric token in line, in left-to-right order.
// The result is nil when the line contains no numeric content.
func Numbers(line string) []string {
	return numberPattern.FindAllString(line, -1)
}

// First returns the first numeric token in line, or ("", false) when the line
// contains none.
func First(line string) (string, bool) {
	tok := numberPattern.FindString(line)
	if tok == "" {
		return "", false
	}
	return tok, true
}
