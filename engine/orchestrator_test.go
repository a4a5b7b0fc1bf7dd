package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaise-mibeck/XRF-Data-Manager/periodic"
)

// ============================================================================
// ORCHESTRATOR TESTS
// ============================================================================

func fullRequest() Request {
	return Request{Absolute: true, Relative: true, Major: true, Trace: true, IncludeOxides: true}
}

// TestGenerateAllProducesAllVariants runs the full matrix and checks every
// vocabulary name is present exactly once.
func TestGenerateAllProducesAllVariants(t *testing.T) {
	samples := []Sample{{
		SampleID: "S-1",
		Measurements: []Measurement{
			{Element: "Si", Concentration: 65.2, Unit: UnitPercent},
			{Element: "Zn", Concentration: 120, Unit: UnitPPM},
		},
	}}

	tables, err := GenerateAll(periodic.Default(), samples, fullRequest())
	require.NoError(t, err)
	require.Len(t, tables, 8)
	for _, name := range TableNames() {
		table, ok := tables[name]
		require.True(t, ok, "missing table %s", name)
		assert.Equal(t, name, table.Key.Name())
		assert.Equal(t, []string{"S-1"}, table.Columns)
	}
}

// TestGenerateAllTraceHandOff replays a two-sample batch and checks the
// absolute major table's summary rows end to end: the trace sum crosses over
// from the trace table in wt%, the balance absorbs the remainder, and the
// total is pinned at 100.
func TestGenerateAllTraceHandOff(t *testing.T) {
	samples := []Sample{
		{
			SampleID: "S-1",
			Measurements: []Measurement{
				{Element: "Si", Concentration: 65.2, Unit: UnitPercent},
				{Element: "Zn", Concentration: 120, Unit: UnitPPM},
			},
		},
		{
			SampleID: "S-2",
			Measurements: []Measurement{
				{Element: "Si", Concentration: 58.9, Unit: UnitPercent},
			},
		},
	}

	tables, err := GenerateAll(periodic.Default(), samples,
		Request{Absolute: true, Major: true, Trace: true})
	require.NoError(t, err)
	require.Len(t, tables, 2)

	traceTable := tables["absolute_trace_elements"]
	zn, ok := traceTable.Row("Zn")
	require.True(t, ok)
	assert.True(t, zn.Cells[0].Valid)
	assert.False(t, zn.Cells[1].Valid)
	total, _ := traceTable.Row(RowTotal)
	assert.InDelta(t, 120.0, total.Cells[0].Value, 1e-12)
	assert.InDelta(t, 0.0, total.Cells[1].Value, 1e-12)

	majorTable := tables["absolute_major_elements"]
	si, ok := majorTable.Row("Si")
	require.True(t, ok)
	assert.InDelta(t, 65.2, si.Cells[0].Value, 1e-12)
	assert.InDelta(t, 58.9, si.Cells[1].Value, 1e-12)

	traceRow, ok := majorTable.Row(RowTrace)
	require.True(t, ok)
	assert.InDelta(t, 0.012, traceRow.Cells[0].Value, 1e-9)
	assert.InDelta(t, 0.0, traceRow.Cells[1].Value, 1e-12)

	balance, _ := majorTable.Row(RowBalance)
	assert.InDelta(t, 34.788, balance.Cells[0].Value, 1e-9)
	assert.InDelta(t, 41.1, balance.Cells[1].Value, 1e-9)

	total, _ = majorTable.Row(RowTotal)
	assert.InDelta(t, 100.0, total.Cells[0].Value, 1e-12)
	assert.InDelta(t, 100.0, total.Cells[1].Value, 1e-12)
}

// TestGenerateAllRelativeCloses checks the relative major table sums to 100
// within rounding error, with the trace share injected.
func TestGenerateAllRelativeCloses(t *testing.T) {
	samples := []Sample{{
		SampleID: "S-1",
		Measurements: []Measurement{
			{Element: "Si", Concentration: 40.0, Unit: UnitPercent},
			{Element: "Fe", Concentration: 9.5, Unit: UnitPercent},
			{Element: "Zn", Concentration: 500, Unit: UnitPPM},
		},
	}}

	tables, err := GenerateAll(periodic.Default(), samples,
		Request{Relative: true, Major: true, Trace: true})
	require.NoError(t, err)

	total, ok := tables["relative_major_elements"].Row(RowTotal)
	require.True(t, ok)
	assert.InDelta(t, 100.0, total.Cells[0].Value, 0.05)
}

// TestGenerateAllClassifiesOnRawValues: a 500 ppm reading stays trace even
// though normalization pushes it over the raw threshold.
func TestGenerateAllClassifiesOnRawValues(t *testing.T) {
	samples := []Sample{{
		SampleID: "S-1",
		Measurements: []Measurement{
			{Element: "Si", Concentration: 10.0, Unit: UnitPercent},
			{Element: "Zn", Concentration: 500, Unit: UnitPPM},
		},
	}}

	tables, err := GenerateAll(periodic.Default(), samples,
		Request{Relative: true, Major: true, Trace: true})
	require.NoError(t, err)

	// Normalized Zn ≈ 4975 ppm, still in the trace table.
	zn, ok := tables["relative_trace_elements"].Row("Zn")
	require.True(t, ok)
	assert.True(t, zn.Cells[0].Valid)
	assert.Greater(t, zn.Cells[0].Value, 1000.0)

	_, inMajor := tables["relative_major_elements"].Row("Zn")
	assert.False(t, inMajor)
}

// TestGenerateAllOxideBasis checks the oxide sibling of the major table:
// converted formula, base element's Z, stoichiometric value.
func TestGenerateAllOxideBasis(t *testing.T) {
	samples := []Sample{{
		SampleID: "S-1",
		Measurements: []Measurement{
			{Element: "Al", Concentration: 8.0, Unit: UnitPercent},
		},
	}}

	tables, err := GenerateAll(periodic.Default(), samples,
		Request{Absolute: true, Major: true, IncludeOxides: true})
	require.NoError(t, err)

	oxide := tables["absolute_major_oxides"]
	rows := oxide.DataRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Al2O3", rows[0].Symbol)
	assert.Equal(t, 13, rows[0].Z)
	assert.InDelta(t, 15.12, rows[0].Cells[0].Value, 1e-12)

	// Oxide major tables take no trace hand-off.
	_, hasTrace := oxide.Row(RowTrace)
	assert.False(t, hasTrace)
}

// TestGenerateAllIgnoredElements: an ignored symbol disappears from every
// table and from the normalization denominator.
func TestGenerateAllIgnoredElements(t *testing.T) {
	samples := []Sample{{
		SampleID: "S-1",
		Measurements: []Measurement{
			{Element: "Si", Concentration: 50.0, Unit: UnitPercent},
			{Element: "Rh", Concentration: 2.0, Unit: UnitPercent},
		},
	}}

	tables, err := GenerateAll(periodic.Default(), samples, fullRequest(),
		WithIgnoredElements([]string{"Rh"}))
	require.NoError(t, err)

	for name, table := range tables {
		_, ok := table.Row("Rh")
		assert.False(t, ok, "Rh leaked into %s", name)
	}

	// Denominator excludes Rh, so Si normalizes to 100.
	si, ok := tables["relative_major_elements"].Row("Si")
	require.True(t, ok)
	assert.InDelta(t, 100.0, si.Cells[0].Value, 1e-9)
}

// TestGenerateAllSkipsEmptySamples: a sample with only signal-rate readings
// contributes no column but does not fail the batch.
func TestGenerateAllSkipsEmptySamples(t *testing.T) {
	samples := []Sample{
		{
			SampleID: "S-dead",
			Measurements: []Measurement{
				{Element: "Rh", Concentration: 80, Unit: UnitKCPS},
			},
		},
		{
			SampleID: "S-1",
			Measurements: []Measurement{
				{Element: "Si", Concentration: 50.0, Unit: UnitPercent},
			},
		},
	}

	tables, err := GenerateAll(periodic.Default(), samples,
		Request{Absolute: true, Major: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"S-1"}, tables["absolute_major_elements"].Columns)
}

// TestGenerateAllColumnLabels: report abbreviations take precedence over raw
// sample ids in column headers.
func TestGenerateAllColumnLabels(t *testing.T) {
	samples := []Sample{{
		SampleID:    "TCL-9041-03",
		ReportLabel: "Well 14 @ 3200ft",
		Measurements: []Measurement{
			{Element: "Si", Concentration: 50.0, Unit: UnitPercent},
		},
	}}

	tables, err := GenerateAll(periodic.Default(), samples,
		Request{Absolute: true, Major: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Well 14 @ 3200ft"}, tables["absolute_major_elements"].Columns)
}

// TestGenerateAllErrNoVariants: both toggle axes must enable something.
func TestGenerateAllErrNoVariants(t *testing.T) {
	samples := []Sample{{
		SampleID: "S-1",
		Measurements: []Measurement{
			{Element: "Si", Concentration: 50.0, Unit: UnitPercent},
		},
	}}

	_, err := GenerateAll(periodic.Default(), samples, Request{Major: true, Trace: true})
	assert.ErrorIs(t, err, ErrNoVariants)

	_, err = GenerateAll(periodic.Default(), samples, Request{Absolute: true, Relative: true})
	assert.ErrorIs(t, err, ErrNoVariants)

	_, err = GenerateAll(periodic.Default(), samples, Request{})
	assert.ErrorIs(t, err, ErrNoVariants)
}

// TestGenerateAllErrNoSamples: a batch whose every sample filters to empty
// fails as a unit.
func TestGenerateAllErrNoSamples(t *testing.T) {
	_, err := GenerateAll(periodic.Default(), nil, fullRequest())
	assert.ErrorIs(t, err, ErrNoSamples)

	samples := []Sample{{
		SampleID: "S-dead",
		Measurements: []Measurement{
			{Element: "Rh", Concentration: 80, Unit: UnitKCPS},
		},
	}}
	_, err = GenerateAll(periodic.Default(), samples, fullRequest())
	assert.ErrorIs(t, err, ErrNoSamples)
}
