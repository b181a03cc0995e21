/*
PURPOSE:
  Writes parsed report records to a JSON Lines file (NDJSON).
  Optimized for machine parsing and notebook ingestion.

REQUIREMENTS:
  User-specified:
  - JSON output for easier downstream analysis.

  Implementation-discovered:
  - JSON Lines is better for streaming/logging than a single large array
    (append-friendly).
  - encoding/json rejects NaN, which a report's observable arrays can carry;
    NaN entries are written as null and the raw emergent text keeps the
    original "nan" token.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli
  - Consumes: internal/model.Report

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.

USAGE:
  w, err := output.NewJSONWriter("results.jsonl")
  w.Write(rec)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update jsonReport when Report changes.
*/

package output

import (
	"encoding/json"
	"math"
	"os"
	"sync"
	"time"

	"github.com/naezzell/advmeaPMRQMC/internal/model"
)

// JSONWriter handles writing records to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// jsonReport mirrors model.Report with nullable observable entries, since
// encoding/json cannot represent NaN.
type jsonReport struct {
	File      string         `json:"file"`
	Mode      model.Mode     `json:"mode"`
	Emergent  model.Emergent `json:"emergent"`
	Values    []*float64     `json:"values"`
	Stds      []*float64     `json:"stds"`
	Duration  *float64       `json:"duration_s"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single record as a JSON line.
func (jw *JSONWriter) Write(r model.Report) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(jsonReport{
		File:      r.File,
		Mode:      r.Mode,
		Emergent:  r.Emergent,
		Values:    nullableFloats(r.Values),
		Stds:      nullableFloats(r.Stds),
		Duration:  nullableFloat(r.Duration),
		Timestamp: r.Timestamp,
	})
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}

func nullableFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func nullableFloats(vals []float64) []*float64 {
	out := make([]*float64, len(vals))
	for i := range vals {
		if math.IsNaN(vals[i]) {
			continue
		}
		v := vals[i]
		out[i] = &v
	}
	return out
}
