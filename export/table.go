package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/blaise-mibeck/XRF-Data-Manager/engine"
)

// ============================================================================
// TABLE EXPORT — one concentration table as CSV / text
// ============================================================================

// tableHeader builds the column header for one table: Z, Element (or Oxide),
// then the sample columns.
func tableHeader(t engine.Table) []string {
	label := "Element"
	if t.Key.Basis == engine.BasisOxide {
		label = "Oxide"
	}
	return append([]string{"Z", label}, t.Columns...)
}

// WriteTableCSV writes one table as CSV. Summary rows render a blank Z;
// missing cells render empty, preserving the missing-vs-zero distinction.
func WriteTableCSV(w io.Writer, t engine.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(tableHeader(t)); err != nil {
		return fmt.Errorf("write table header: %w", err)
	}

	for _, row := range t.Rows {
		record := make([]string, 0, len(t.Columns)+2)
		if row.Summary {
			record = append(record, "", row.Symbol)
		} else {
			record = append(record, fmt.Sprintf("%d", row.Z), row.Symbol)
		}
		for _, c := range row.Cells {
			if c.Valid {
				record = append(record, formatValue(c.Value))
			} else {
				record = append(record, "")
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write table row %s: %w", row.Symbol, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// orderedNames returns table names in the fixed vocabulary's generation
// order, with anything unexpected sorted after.
func orderedNames(tables map[string]engine.Table) []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	order := make(map[string]int)
	for i, n := range engine.TableNames() {
		order[n] = i
	}
	sort.Slice(names, func(i, j int) bool {
		oi, iok := order[names[i]]
		oj, jok := order[names[j]]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return names[i] < names[j]
	})
	return names
}

// Summarize renders a short human-readable digest of a generated table set,
// in generation order.
func Summarize(tables map[string]engine.Table) string {
	var b strings.Builder
	names := orderedNames(tables)
	for _, name := range names {
		t := tables[name]
		fmt.Fprintf(&b, "%s: %d rows × %d samples", name, len(t.DataRows()), len(t.Columns))
		if s := t.SummaryRows(); len(s) > 0 {
			labels := make([]string, len(s))
			for i, r := range s {
				labels[i] = r.Symbol
			}
			fmt.Fprintf(&b, " (+%s)", strings.Join(labels, ", "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
