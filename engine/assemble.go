package engine

import (
	"math"
	"sort"

	"github.com/blaise-mibeck/XRF-Data-Manager/periodic"
)

// ============================================================================
// TABLE ASSEMBLER — builds one ConcentrationTable
// ============================================================================
// Input is one classification's measurements per sample (already filtered,
// and already normalized for relative tables). The assembler is
// variant-agnostic: it only knows major vs trace, absolute vs relative,
// element vs oxide, and whether a trace sum was handed to it.
//
// Pipeline:
//   1. Discover the union of element/oxide symbols across samples
//   2. Fill a sparse symbol × sample matrix (missing ≠ zero)
//   3. Resolve atomic numbers and sort rows ascending by Z
//   4. Round the full column range per the decimal policy
//   5. Append summary rows (Trace, Balance, Total) per variant
// ============================================================================

// Assemble builds a table for one classification and basis. columns and
// perSample run in parallel: perSample[i] holds the filtered measurements
// backing column i. traceSum, when non-nil, is the per-column trace total in
// wt% injected into major summary rows; pass nil when not applicable.
//
// An empty sample set yields an empty table, never an error.
func Assemble(
	ref *periodic.Reference,
	key TableKey,
	columns []string,
	perSample [][]Measurement,
	policy DecimalPolicy,
	traceSum []float64,
) Table {
	t := Table{Key: key, Columns: columns}
	if len(columns) == 0 {
		return t
	}

	// 1+2. Symbol discovery and sparse matrix fill in one pass.
	// Zero and negative concentrations never enter the table.
	cells := make(map[string][]Cell)
	for si, ms := range perSample {
		if si >= len(columns) {
			break
		}
		for _, m := range ms {
			symbol, value, ok := resolveCell(ref, key.Basis, m)
			if !ok {
				continue
			}
			row, exists := cells[symbol]
			if !exists {
				row = make([]Cell, len(columns))
				cells[symbol] = row
			}
			row[si] = Cell{Value: value, Valid: true}
		}
	}

	// 3. Rows with atomic numbers, sorted ascending by Z. An unresolved
	// symbol gets Z=0 and sorts first rather than failing the assembly.
	rows := make([]Row, 0, len(cells))
	for symbol, cs := range cells {
		rows = append(rows, Row{
			Symbol: symbol,
			Z:      ref.AtomicNumber(ref.BaseElement(symbol)),
			Cells:  cs,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Z != rows[j].Z {
			return rows[i].Z < rows[j].Z
		}
		return rows[i].Symbol < rows[j].Symbol
	})

	// 4. Rounding, applied uniformly to every cell.
	round := roundFunc(key.Class, policy)
	for _, r := range rows {
		for i := range r.Cells {
			if r.Cells[i].Valid {
				r.Cells[i].Value = round(r.Cells[i].Value)
			}
		}
	}
	t.Rows = rows

	// 5. Summary rows.
	appendSummaryRows(&t, traceSum)
	return t
}

// resolveCell maps a measurement to its table symbol and value for the
// requested basis. Reports false for dropped values: non-positive
// concentrations, and (on the oxide basis) elements with no oxide form.
func resolveCell(ref *periodic.Reference, basis Basis, m Measurement) (string, float64, bool) {
	if m.Concentration <= 0 || !m.Unit.IsConcentration() {
		return "", 0, false
	}
	if basis == BasisOxide {
		ox, ok := ToOxide(ref, m)
		if !ok {
			return "", 0, false
		}
		return ox.Formula, ox.Concentration, true
	}
	return m.Element, m.Concentration, true
}

// roundFunc returns the rounding applied to one table's cells: major tables
// keep a fixed number of decimals, trace tables round to the nearest step.
func roundFunc(class Classification, policy DecimalPolicy) func(float64) float64 {
	if class == Major {
		pow := math.Pow(10, float64(policy.MajorDecimals))
		return func(v float64) float64 { return math.Round(v*pow) / pow }
	}
	step := float64(policy.TraceStep)
	if step <= 0 {
		step = 1
	}
	return func(v float64) float64 { return math.Round(v/step) * step }
}

// appendSummaryRows adds the synthetic rows for the table's variant:
//
//	absolute major: [Trace] Balance Total(=100), Balance clamped at 0
//	relative major: [Trace] Total(=sum of all rows incl. Trace)
//	trace (any):    Total(=sum of trace rows)
func appendSummaryRows(t *Table, traceSum []float64) {
	n := len(t.Columns)
	sums := t.ColumnSums()

	constRow := func(symbol string, value float64) Row {
		r := Row{Symbol: symbol, Summary: true, Cells: make([]Cell, n)}
		for i := range r.Cells {
			r.Cells[i] = Cell{Value: value, Valid: true}
		}
		return r
	}
	valueRow := func(symbol string, values []float64) Row {
		r := Row{Symbol: symbol, Summary: true, Cells: make([]Cell, n)}
		for i := range r.Cells {
			r.Cells[i] = Cell{Value: values[i], Valid: true}
		}
		return r
	}

	switch {
	case t.Key.Class == Trace:
		t.Rows = append(t.Rows, valueRow(RowTotal, sums))

	case t.Key.Type == Absolute: // absolute major
		balance := make([]float64, n)
		for i := range balance {
			total := sums[i]
			if traceSum != nil {
				total += traceSum[i]
			}
			balance[i] = math.Max(0, 100-total)
		}
		if traceSum != nil {
			t.Rows = append(t.Rows, valueRow(RowTrace, traceSum))
		}
		t.Rows = append(t.Rows, valueRow(RowBalance, balance))
		t.Rows = append(t.Rows, constRow(RowTotal, 100))

	default: // relative major
		totals := make([]float64, n)
		copy(totals, sums)
		if traceSum != nil {
			for i := range totals {
				totals[i] += traceSum[i]
			}
			t.Rows = append(t.Rows, valueRow(RowTrace, traceSum))
		}
		t.Rows = append(t.Rows, valueRow(RowTotal, totals))
	}
}
