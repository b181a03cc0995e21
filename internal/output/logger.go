/*
PURPOSE:
  Provides the structured logger for the PMR-QMC I/O toolkit.
  Wraps slog for consistent output across commands.

REQUIREMENTS:
  User-specified:
  - Readable CLI output; results go to result files, diagnostics to the log.

  Implementation-discovered:
  - Needs Info/Warn/Error levels; per-file parse failures are warnings, not
    aborts.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/cli.

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).
  - Log to stderr so generated artifacts can go to stdout unmixed.

USAGE:
  output.Logger.Info("message", "key", "value")

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/sweep.go
  - internal/engine/collect.go

MAINTENANCE:
  - Configurable log levels?
*/

package output

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	// Text handler on stderr; `generate -o -` streams the artifact on stdout.
	Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// SetLogger allows overriding the default logger (e.g. for testing)
func SetLogger(l *slog.Logger) {
	Logger = l
}
