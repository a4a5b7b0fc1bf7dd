package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/blaise-mibeck/XRF-Data-Manager/engine"
)

// ============================================================================
// ASSAY CSV HELPER — parses measurement CSV into []engine.Sample
// ============================================================================
// Consumers read the CSV from wherever it lives (file, export pipeline) and
// hand the raw bytes here. The expected shape is long format, one
// measurement per row:
//
//	sample_id,element,concentration,unit,scan,signal
//	24-0917A,Si,65.2,%,Si12,184.2
//	24-0917A,Zn,120,ppm,Zn3,
//
// Column order is free; headers are matched case-insensitively after
// snake-casing. scan and signal are optional. Malformed rows are isolated as
// diagnostics — one bad measurement never sinks the batch.
// ============================================================================

// Diagnostic records one skipped row and why.
type Diagnostic struct {
	Line     int    `json:"line"`
	SampleID string `json:"sampleId,omitempty"`
	Reason   string `json:"reason"`
}

// ParseAssayCSV parses long-format measurement CSV into samples, preserving
// the order samples first appear and the order of measurements within each
// sample. Rows that cannot be parsed are skipped and reported as
// diagnostics; only a missing or empty header is a hard error.
func ParseAssayCSV(data []byte) ([]engine.Sample, []Diagnostic, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	col := mapColumns(headers)
	if col.sampleID < 0 || col.element < 0 || col.concentration < 0 || col.unit < 0 {
		return nil, nil, fmt.Errorf("assay CSV needs sample_id, element, concentration and unit columns, got %v", headers)
	}

	var (
		samples     []engine.Sample
		index       = make(map[string]int) // sample id → samples index
		diagnostics []Diagnostic
		line        = 1
	)

	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{Line: line, Reason: err.Error()})
			continue
		}

		sampleID := strings.TrimSpace(field(row, col.sampleID))
		if sampleID == "" {
			diagnostics = append(diagnostics, Diagnostic{Line: line, Reason: "missing sample id"})
			continue
		}

		m, reason := parseMeasurement(row, col)
		if reason != "" {
			diagnostics = append(diagnostics, Diagnostic{Line: line, SampleID: sampleID, Reason: reason})
			continue
		}

		i, ok := index[sampleID]
		if !ok {
			i = len(samples)
			index[sampleID] = i
			samples = append(samples, engine.Sample{SampleID: sampleID})
		}
		samples[i].Measurements = append(samples[i].Measurements, m)
	}

	return samples, diagnostics, nil
}

type columns struct {
	sampleID, element, concentration, unit, scan, signal int
}

func mapColumns(headers []string) columns {
	col := columns{sampleID: -1, element: -1, concentration: -1, unit: -1, scan: -1, signal: -1}
	for i, h := range headers {
		switch toSnakeCase(strings.TrimSpace(h)) {
		case "sample_id", "sample":
			col.sampleID = i
		case "element", "symbol":
			col.element = i
		case "concentration", "value":
			col.concentration = i
		case "unit":
			col.unit = i
		case "scan", "omnian", "omnian_scan":
			col.scan = i
		case "signal":
			col.signal = i
		}
	}
	return col
}

// parseMeasurement builds one measurement from a row. A non-empty reason
// means the row is unusable.
func parseMeasurement(row []string, col columns) (engine.Measurement, string) {
	element := strings.TrimSpace(field(row, col.element))
	if element == "" {
		return engine.Measurement{}, "missing element symbol"
	}

	conc, err := strconv.ParseFloat(strings.TrimSpace(field(row, col.concentration)), 64)
	if err != nil {
		return engine.Measurement{}, fmt.Sprintf("bad concentration %q", field(row, col.concentration))
	}

	unit := engine.Unit(strings.TrimSpace(field(row, col.unit)))
	switch unit {
	case engine.UnitPercent, engine.UnitPPM, engine.UnitKCPS:
	default:
		return engine.Measurement{}, fmt.Sprintf("unknown unit %q", field(row, col.unit))
	}

	m := engine.Measurement{
		Element:       element,
		Concentration: conc,
		Unit:          unit,
		Scan:          strings.TrimSpace(field(row, col.scan)),
	}
	if raw := strings.TrimSpace(field(row, col.signal)); raw != "" {
		if sig, err := strconv.ParseFloat(raw, 64); err == nil {
			m.Signal = sig
		}
	}
	return m, ""
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// toSnakeCase converts "Sample ID" → "sample_id".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, ".", "")
	return s
}
