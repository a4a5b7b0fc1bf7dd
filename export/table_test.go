package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaise-mibeck/XRF-Data-Manager/engine"
)

// ============================================================================
// TABLE EXPORT TESTS
// ============================================================================

func tableFixture() engine.Table {
	return engine.Table{
		Key:     engine.TableKey{Type: engine.Absolute, Class: engine.Major, Basis: engine.BasisElement},
		Columns: []string{"Core 1", "Core 2"},
		Rows: []engine.Row{
			{Symbol: "Si", Z: 14, Cells: []engine.Cell{
				{Value: 65.2, Valid: true}, {Value: 58.9, Valid: true},
			}},
			{Symbol: "Fe", Z: 26, Cells: []engine.Cell{
				{Value: 9.5, Valid: true}, {Valid: false},
			}},
			{Symbol: engine.RowBalance, Summary: true, Cells: []engine.Cell{
				{Value: 25.3, Valid: true}, {Value: 41.1, Valid: true},
			}},
			{Symbol: engine.RowTotal, Summary: true, Cells: []engine.Cell{
				{Value: 100, Valid: true}, {Value: 100, Valid: true},
			}},
		},
	}
}

// TestWriteTableCSV checks header shape, blank Z on summary rows, and empty
// cells for missing measurements.
func TestWriteTableCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTableCSV(&buf, tableFixture()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.Equal(t, []string{"Z", "Element", "Core 1", "Core 2"}, records[0])
	assert.Equal(t, []string{"14", "Si", "65.2", "58.9"}, records[1])

	// Missing cell renders empty, not "0".
	assert.Equal(t, []string{"26", "Fe", "9.5", ""}, records[2])

	// Summary rows carry no atomic number.
	assert.Equal(t, []string{"", "Balance", "25.3", "41.1"}, records[3])
	assert.Equal(t, []string{"", "Total", "100", "100"}, records[4])
}

// TestWriteTableCSVOxideHeader switches the symbol column label on the oxide
// basis.
func TestWriteTableCSVOxideHeader(t *testing.T) {
	table := tableFixture()
	table.Key.Basis = engine.BasisOxide

	var buf bytes.Buffer
	require.NoError(t, WriteTableCSV(&buf, table))
	assert.True(t, strings.HasPrefix(buf.String(), "Z,Oxide,"))
}

// TestSummarize renders one digest line per table in generation order.
func TestSummarize(t *testing.T) {
	tables := map[string]engine.Table{
		"absolute_major_elements": tableFixture(),
		"absolute_trace_elements": {
			Key:     engine.TableKey{Type: engine.Absolute, Class: engine.Trace, Basis: engine.BasisElement},
			Columns: []string{"Core 1", "Core 2"},
			Rows: []engine.Row{
				{Symbol: "Zn", Z: 30, Cells: []engine.Cell{{Value: 120, Valid: true}, {Valid: false}}},
				{Symbol: engine.RowTotal, Summary: true, Cells: []engine.Cell{
					{Value: 120, Valid: true}, {Value: 0, Valid: true},
				}},
			},
		},
	}

	out := Summarize(tables)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	// Trace comes before major in the vocabulary's generation order.
	assert.Equal(t, "absolute_trace_elements: 1 rows × 2 samples (+Total)", lines[0])
	assert.Equal(t, "absolute_major_elements: 2 rows × 2 samples (+Balance, Total)", lines[1])
}
