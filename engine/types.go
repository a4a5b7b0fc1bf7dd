package engine

import "github.com/blaise-mibeck/XRF-Data-Manager/periodic"

// ============================================================================
// ENGINE TYPES — Samples, Measurements, Units
// ============================================================================
// A Sample is one physical specimen with an ordered list of per-element
// measurements as reported by the spectrometer. Samples are never mutated by
// the engine; derived values (normalization) are always new copies.
// ============================================================================

// Unit is the reporting unit of a measurement.
type Unit string

const (
	UnitPercent Unit = "%"
	UnitPPM     Unit = "ppm"

	// UnitKCPS is a raw signal rate (kilocounts per second). It carries no
	// concentration information and is excluded from every concentration
	// computation.
	UnitKCPS Unit = "kcps"
)

// IsConcentration reports whether the unit carries concentration data.
func (u Unit) IsConcentration() bool {
	return u == UnitPercent || u == UnitPPM
}

// Measurement is a single elemental reading from one sample.
type Measurement struct {
	Element       string  `json:"element"`
	Concentration float64 `json:"concentration"`
	Unit          Unit    `json:"unit"`

	// Scan is the provenance tag from the instrument export (e.g. "Na5"),
	// empty when unknown.
	Scan string `json:"scan,omitempty"`

	// Signal is the raw signal reading when one was reported, 0 otherwise.
	Signal float64 `json:"signal,omitempty"`
}

// PercentValue returns the concentration expressed in weight percent.
// Only meaningful for concentration-bearing units; kcps yields 0.
func (m Measurement) PercentValue() float64 {
	switch m.Unit {
	case UnitPPM:
		return m.Concentration * periodic.PPMToPercent
	case UnitPercent:
		return m.Concentration
	default:
		return 0
	}
}

// Sample is one specimen: identity fields plus its measurements, in the
// order the instrument reported them.
type Sample struct {
	SampleID     string        `json:"sampleId"`
	NotebookID   string        `json:"notebookId,omitempty"`
	ClientID     string        `json:"clientId,omitempty"`
	ReportLabel  string        `json:"reportLabel,omitempty"`
	Measurements []Measurement `json:"measurements"`
}

// ColumnLabel returns the label used for this sample's table column: the
// report abbreviation when set, otherwise the sample id.
func (s Sample) ColumnLabel() string {
	if s.ReportLabel != "" {
		return s.ReportLabel
	}
	return s.SampleID
}

// ============================================================================
// TABLE IDENTITY — tagged variant instead of name string matching
// ============================================================================

// Classification labels a measurement (and a table) as major or trace.
type Classification string

const (
	Major Classification = "major"
	Trace Classification = "trace"
)

// Basis is the reporting basis of a table: raw elements or conventional
// oxides.
type Basis string

const (
	BasisElement Basis = "elements"
	BasisOxide   Basis = "oxides"
)

// ConcentrationType distinguishes as-measured values from values rescaled to
// a 100% budget.
type ConcentrationType string

const (
	Absolute ConcentrationType = "absolute"
	Relative ConcentrationType = "relative"
)

// TableKey identifies one output table variant. It is carried alongside
// every table so consumers never re-derive semantics from the table name.
type TableKey struct {
	Type  ConcentrationType `json:"type"`
	Class Classification    `json:"class"`
	Basis Basis             `json:"basis"`
}

// Name returns the fixed vocabulary name, e.g. "absolute_major_elements".
func (k TableKey) Name() string {
	return string(k.Type) + "_" + string(k.Class) + "_" + string(k.Basis)
}
