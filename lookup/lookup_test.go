package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaise-mibeck/XRF-Data-Manager/engine"
)

// TestFromSampleIDs builds a skeleton table in input order.
func TestFromSampleIDs(t *testing.T) {
	table := FromSampleIDs([]string{"S-2", "S-1"})
	require.Len(t, table, 2)
	assert.Equal(t, Entry{SampleID: "S-2"}, table[0])
	assert.Equal(t, Entry{SampleID: "S-1"}, table[1])
}

// TestMerge keeps filled entries, adds blanks for new ids, and drops ids no
// longer present.
func TestMerge(t *testing.T) {
	table := Table{
		{SampleID: "S-1", NotebookID: "NB-7", ReportAbbreviation: "Core 1"},
		{SampleID: "S-gone", NotebookID: "NB-8"},
	}

	merged := table.Merge([]string{"S-1", "S-new"})
	require.Len(t, merged, 2)
	assert.Equal(t, "NB-7", merged[0].NotebookID)
	assert.Equal(t, "Core 1", merged[0].ReportAbbreviation)
	assert.Equal(t, Entry{SampleID: "S-new"}, merged[1])
}

// TestByID echoes the sample id as report abbreviation for absent entries.
func TestByID(t *testing.T) {
	table := Table{{SampleID: "S-1", ClientID: "C-42"}}

	assert.Equal(t, "C-42", table.ByID("S-1").ClientID)

	missing := table.ByID("S-9")
	assert.Equal(t, "S-9", missing.SampleID)
	assert.Equal(t, "S-9", missing.ReportAbbreviation)
	assert.Empty(t, missing.ClientID)
}

// TestApply copies identity fields onto samples in place.
func TestApply(t *testing.T) {
	table := Table{{
		SampleID:           "S-1",
		NotebookID:         "NB-7",
		ClientID:           "C-42",
		ReportAbbreviation: "Core 1",
	}}
	samples := []engine.Sample{{SampleID: "S-1"}, {SampleID: "S-2"}}

	out := table.Apply(samples)

	assert.Equal(t, "NB-7", out[0].NotebookID)
	assert.Equal(t, "C-42", out[0].ClientID)
	assert.Equal(t, "Core 1", out[0].ReportLabel)
	assert.Equal(t, "Core 1", out[0].ColumnLabel())

	// Unmatched sample echoes its own id.
	assert.Equal(t, "S-2", out[1].ReportLabel)
}
