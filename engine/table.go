package engine

import (
	"strings"
)

// ============================================================================
// CONCENTRATION TABLE — rows of one classification and basis
// ============================================================================
// Rows are keyed by element or oxide symbol and sorted ascending by atomic
// number; synthetic summary rows (Trace, Balance, Total) always come last,
// in that relative order. Columns follow the input sample order.
// ============================================================================

// Summary row labels, appended in this fixed relative order when present.
const (
	RowTrace   = "Trace"
	RowBalance = "Balance"
	RowTotal   = "Total"
)

// Cell is one table value. Valid=false means "no measurement for this
// sample", which is distinct from a true zero.
type Cell struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Row is one table row: an element/oxide symbol with one cell per sample
// column. Summary rows carry Summary=true and a blank atomic number.
type Row struct {
	Symbol  string `json:"symbol"`
	Z       int    `json:"z"`
	Summary bool   `json:"summary,omitempty"`
	Cells   []Cell `json:"cells"`
}

// Table is one assembled concentration table.
type Table struct {
	Key     TableKey `json:"key"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// DataRows returns the non-summary rows.
func (t Table) DataRows() []Row {
	out := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if !r.Summary {
			out = append(out, r)
		}
	}
	return out
}

// SummaryRows returns the synthetic summary rows, in table order.
func (t Table) SummaryRows() []Row {
	out := make([]Row, 0, 3)
	for _, r := range t.Rows {
		if r.Summary {
			out = append(out, r)
		}
	}
	return out
}

// Row returns the row with the given symbol (data or summary).
func (t Table) Row(symbol string) (Row, bool) {
	for _, r := range t.Rows {
		if r.Symbol == symbol {
			return r, true
		}
	}
	return Row{}, false
}

// ColumnSums sums the data rows per column. Missing cells contribute
// nothing — they are absent, not zero.
func (t Table) ColumnSums() []float64 {
	sums := make([]float64, len(t.Columns))
	for _, r := range t.Rows {
		if r.Summary {
			continue
		}
		for i, c := range r.Cells {
			if c.Valid && i < len(sums) {
				sums[i] += c.Value
			}
		}
	}
	return sums
}

// TableNames lists the fixed output vocabulary in generation order.
func TableNames() []string {
	keys := []TableKey{
		{Absolute, Trace, BasisElement},
		{Relative, Trace, BasisElement},
		{Absolute, Major, BasisElement},
		{Relative, Major, BasisElement},
		{Absolute, Major, BasisOxide},
		{Absolute, Trace, BasisOxide},
		{Relative, Major, BasisOxide},
		{Relative, Trace, BasisOxide},
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.Name()
	}
	return names
}

// ParseTableName recovers the tagged variant from a fixed-vocabulary table
// name such as "relative_trace_oxides".
func ParseTableName(name string) (TableKey, error) {
	parts := strings.Split(name, "_")
	if len(parts) != 3 {
		return TableKey{}, ErrUnknownTableName
	}
	key := TableKey{
		Type:  ConcentrationType(parts[0]),
		Class: Classification(parts[1]),
		Basis: Basis(parts[2]),
	}
	if (key.Type != Absolute && key.Type != Relative) ||
		(key.Class != Major && key.Class != Trace) ||
		(key.Basis != BasisElement && key.Basis != BasisOxide) {
		return TableKey{}, ErrUnknownTableName
	}
	return key, nil
}
