// Package export renders generated concentration tables and raw batches for
// downstream reporting tools. Writers emit values only — fonts, colors, and
// chart styling belong to the reporting templates, not here.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/blaise-mibeck/XRF-Data-Manager/engine"
	"github.com/blaise-mibeck/XRF-Data-Manager/lookup"
	"github.com/blaise-mibeck/XRF-Data-Manager/periodic"
)

// ============================================================================
// FLAT EXPORT — one row per measurement, long format
// ============================================================================
// The concatenated layout feeds spreadsheet pivoting and the ternary data
// extractor: every concentration-bearing measurement becomes one row with
// sample identity, atomic number, wt% equivalent, and oxide equivalent.
// ============================================================================

// FlatRow is one measurement flattened with its sample identity and derived
// values.
type FlatRow struct {
	Line               int
	SampleID           string
	NotebookID         string
	ClientID           string
	ReportAbbreviation string
	Z                  int
	Element            string
	Concentration      float64
	Unit               engine.Unit
	WtPercent          float64
	Scan               string
	Oxide              string  // empty when the element has no oxide form
	OxideWtPercent     float64 // only meaningful when Oxide is set
}

// Flatten turns raw samples into flat rows. Signal-rate readings and
// non-positive concentrations are dropped; identity fields come from the
// lookup table with the usual sample-id echo for absent entries.
func Flatten(ref *periodic.Reference, samples []engine.Sample, table lookup.Table) []FlatRow {
	var rows []FlatRow

	for _, s := range samples {
		id := table.ByID(s.SampleID)

		for _, m := range s.Measurements {
			if !m.Unit.IsConcentration() || m.Concentration <= 0 {
				continue
			}

			row := FlatRow{
				Line:               len(rows) + 1,
				SampleID:           id.SampleID,
				NotebookID:         id.NotebookID,
				ClientID:           id.ClientID,
				ReportAbbreviation: id.ReportAbbreviation,
				Z:                  ref.AtomicNumber(m.Element),
				Element:            m.Element,
				Concentration:      m.Concentration,
				Unit:               m.Unit,
				WtPercent:          m.PercentValue(),
				Scan:               m.Scan,
			}
			if entry, ok := ref.Oxide(m.Element); ok {
				row.Oxide = entry.Formula
				row.OxideWtPercent = row.WtPercent * entry.Factor
			}

			rows = append(rows, row)
		}
	}

	return rows
}

var flatHeader = []string{
	"Line", "Sample ID", "Notebook ID", "Client ID", "Report Abbreviation",
	"Z", "Element", "Concentration", "Unit", "Wt.%", "Scan", "Oxide", "OxideConc.wt%",
}

// WriteFlatCSV writes flat rows as CSV with the canonical column header.
func WriteFlatCSV(w io.Writer, rows []FlatRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(flatHeader); err != nil {
		return fmt.Errorf("write flat CSV header: %w", err)
	}

	for _, r := range rows {
		oxide, oxideConc := "", ""
		if r.Oxide != "" {
			oxide = r.Oxide
			oxideConc = formatValue(r.OxideWtPercent)
		}
		record := []string{
			fmt.Sprintf("%d", r.Line),
			r.SampleID,
			r.NotebookID,
			r.ClientID,
			r.ReportAbbreviation,
			fmt.Sprintf("%d", r.Z),
			r.Element,
			formatValue(r.Concentration),
			string(r.Unit),
			formatValue(r.WtPercent),
			r.Scan,
			oxide,
			oxideConc,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write flat CSV row %d: %w", r.Line, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatValue renders a concentration without trailing zero noise.
func formatValue(v float64) string {
	return fmt.Sprintf("%g", v)
}
