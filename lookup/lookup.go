// Package lookup maintains the sample identity table: notebook id, client
// id, and report abbreviation per sample id. How the table is persisted is
// the caller's concern — this package only models and merges it.
package lookup

import "github.com/blaise-mibeck/XRF-Data-Manager/engine"

// Entry is the identity record for one sample.
type Entry struct {
	SampleID           string `json:"sampleId"`
	NotebookID         string `json:"notebookId"`
	ClientID           string `json:"clientId"`
	ReportAbbreviation string `json:"reportAbbreviation"`
}

// Table is an ordered sample lookup table.
type Table []Entry

// FromSampleIDs creates a table with only sample ids filled in.
func FromSampleIDs(sampleIDs []string) Table {
	t := make(Table, len(sampleIDs))
	for i, id := range sampleIDs {
		t[i] = Entry{SampleID: id}
	}
	return t
}

// Merge returns a table covering exactly the given sample ids, keeping
// existing entries where present and creating blank ones for new ids.
func (t Table) Merge(sampleIDs []string) Table {
	existing := make(map[string]Entry, len(t))
	for _, e := range t {
		existing[e.SampleID] = e
	}

	merged := make(Table, 0, len(sampleIDs))
	for _, id := range sampleIDs {
		if e, ok := existing[id]; ok {
			merged = append(merged, e)
		} else {
			merged = append(merged, Entry{SampleID: id})
		}
	}
	return merged
}

// ByID returns the entry for a sample id. Absent entries default to empty
// identity fields with the sample id echoed as the report abbreviation.
func (t Table) ByID(sampleID string) Entry {
	for _, e := range t {
		if e.SampleID == sampleID {
			return e
		}
	}
	return Entry{SampleID: sampleID, ReportAbbreviation: sampleID}
}

// Apply copies identity fields onto samples, matching by sample id. Samples
// without an entry keep empty identity fields and echo their id as the
// report label. The input slice is modified in place and returned.
func (t Table) Apply(samples []engine.Sample) []engine.Sample {
	for i := range samples {
		e := t.ByID(samples[i].SampleID)
		samples[i].NotebookID = e.NotebookID
		samples[i].ClientID = e.ClientID
		samples[i].ReportLabel = e.ReportAbbreviation
	}
	return samples
}
