/*
PURPOSE:
  Writes parsed report records to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Tabulate parsed runs for spreadsheet-side analysis.
  - Keep the file handle open and flush per record; collection over a long
    sweep must survive an interrupt with everything parsed so far on disk.

  Implementation-discovered:
  - The observable group count varies by mode, so the value and std arrays go
    into single semicolon-joined cells rather than a variable column set.
  - Emergent cells carry the raw report text and observable cells may be NaN;
    both must reach the file unmangled.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli
  - Consumes: internal/model.Report

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.
  - Use Mutex; the orchestrator may parse files concurrently.

USAGE:
  w, err := output.NewCSVWriter("results.csv")
  w.Write(rec)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If the column set changes, update header and record conversion together.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Write() mapping when Report changes.
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/naezzell/advmeaPMRQMC/internal/model"
)

// CSVWriter handles writing report records to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)

	header := []string{
		"file", "mode", "timestamp",
		"sign", "sign_std", "mean_q", "max_q",
		"values", "stds", "duration_s",
	}
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single record to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(r model.Report) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		r.File,
		string(r.Mode),
		r.Timestamp.Format(time.RFC3339),
		r.Emergent.Sign,
		r.Emergent.SignStd,
		r.Emergent.MeanQ,
		r.Emergent.MaxQ,
		joinFloats(r.Values),
		joinFloats(r.Stds),
		strconv.FormatFloat(r.Duration, 'g', -1, 64),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}

// joinFloats renders a variable-length observable array as one CSV cell.
// strconv keeps NaN printable, which encoding/json would reject.
func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ";")
}
