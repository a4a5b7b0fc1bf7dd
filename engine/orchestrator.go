package engine

import (
	"log"

	"github.com/blaise-mibeck/XRF-Data-Manager/periodic"
)

// ============================================================================
// TABLE ORCHESTRATOR — drives the full matrix of requested tables
// ============================================================================
// Entry point: GenerateAll(ref, samples, request, opts...)
//
// Ordering matters: element-basis trace tables are generated before their
// sibling major tables because a major table's summary rows consume the
// trace table's per-sample column sums (ppm → wt% by the 0.0001 factor).
// Oxide-basis variants are independent siblings generated last; they take no
// trace hand-off.
//
// One invocation processes one batch to completion. No shared mutable state
// survives the call; the Reference is read-only.
// ============================================================================

// Request selects which table variants to generate. At least one
// concentration type AND one classification must be enabled.
type Request struct {
	Absolute      bool `json:"absolute"`
	Relative      bool `json:"relative"`
	Major         bool `json:"major"`
	Trace         bool `json:"trace"`
	IncludeOxides bool `json:"includeOxides"`
}

// prepared holds one usable sample's pre-filtered measurement sets, computed
// once and reused across every requested variant.
type prepared struct {
	column string
	abs    map[Classification][]Measurement
	rel    map[Classification][]Measurement
}

// GenerateAll produces every requested table, keyed by its fixed vocabulary
// name. It returns a complete mapping or a single error — never a partial
// result. Samples with no usable measurements are skipped with a diagnostic;
// if none survive, the run fails with ErrNoSamples.
func GenerateAll(ref *periodic.Reference, samples []Sample, req Request, opts ...Option) (map[string]Table, error) {
	cfg := applyOptions(opts)

	if (!req.Absolute && !req.Relative) || (!req.Major && !req.Trace) {
		return nil, ErrNoVariants
	}

	columns, preps := prepareSamples(ref, samples, req, cfg)
	if len(preps) == 0 {
		return nil, ErrNoSamples
	}

	log.Printf("🧪 Engine: processing %d samples (%d skipped, %d ignored symbols)",
		len(preps), len(samples)-len(preps), len(cfg.Ignored))

	tables := make(map[string]Table)
	emit := func(t Table) {
		tables[t.Key.Name()] = t
	}

	gather := func(class Classification, rel bool) [][]Measurement {
		out := make([][]Measurement, len(preps))
		for i, p := range preps {
			if rel {
				out[i] = p.rel[class]
			} else {
				out[i] = p.abs[class]
			}
		}
		return out
	}

	// Element-basis trace tables first — their column sums feed the major
	// tables' summary rows.
	var absTraceSum, relTraceSum []float64
	if req.Trace {
		if req.Absolute {
			t := Assemble(ref, TableKey{Absolute, Trace, BasisElement}, columns, gather(Trace, false), cfg.Policy, nil)
			emit(t)
			absTraceSum = traceSumPercent(t)
		}
		if req.Relative {
			t := Assemble(ref, TableKey{Relative, Trace, BasisElement}, columns, gather(Trace, true), cfg.Policy, nil)
			emit(t)
			relTraceSum = traceSumPercent(t)
		}
	}

	if req.Major {
		if req.Absolute {
			emit(Assemble(ref, TableKey{Absolute, Major, BasisElement}, columns, gather(Major, false), cfg.Policy, absTraceSum))
		}
		if req.Relative {
			emit(Assemble(ref, TableKey{Relative, Major, BasisElement}, columns, gather(Major, true), cfg.Policy, relTraceSum))
		}
	}

	// Oxide-basis variants: independent of the trace hand-off.
	if req.IncludeOxides {
		if req.Major && req.Absolute {
			emit(Assemble(ref, TableKey{Absolute, Major, BasisOxide}, columns, gather(Major, false), cfg.Policy, nil))
		}
		if req.Trace && req.Absolute {
			emit(Assemble(ref, TableKey{Absolute, Trace, BasisOxide}, columns, gather(Trace, false), cfg.Policy, nil))
		}
		if req.Major && req.Relative {
			emit(Assemble(ref, TableKey{Relative, Major, BasisOxide}, columns, gather(Major, true), cfg.Policy, nil))
		}
		if req.Trace && req.Relative {
			emit(Assemble(ref, TableKey{Relative, Trace, BasisOxide}, columns, gather(Trace, true), cfg.Policy, nil))
		}
	}

	log.Printf("📋 Engine: generated %d tables for %d samples", len(tables), len(preps))
	return tables, nil
}

// prepareSamples filters each sample once per classification and computes
// the relative (normalized) copies. Samples whose entire budget is filtered
// away contribute no column.
func prepareSamples(ref *periodic.Reference, samples []Sample, req Request, cfg *config) ([]string, []prepared) {
	var columns []string
	var preps []prepared

	for _, s := range samples {
		full := concentrationBearing(s.Measurements, cfg.Ignored)
		if len(full) == 0 {
			log.Printf("⚠️ Engine: sample %s has no usable measurements, skipping", s.SampleID)
			continue
		}

		p := prepared{
			column: s.ColumnLabel(),
			abs:    make(map[Classification][]Measurement, 2),
			rel:    make(map[Classification][]Measurement, 2),
		}
		for _, class := range classesFor(req) {
			subset := selectClass(s.Measurements, class, cfg.Ignored)
			p.abs[class] = subset
			if req.Relative {
				p.rel[class] = normalizedCopies(subset, s.Measurements, cfg.Ignored)
			}
		}

		columns = append(columns, p.column)
		preps = append(preps, p)
	}

	return columns, preps
}

func classesFor(req Request) []Classification {
	classes := make([]Classification, 0, 2)
	if req.Major {
		classes = append(classes, Major)
	}
	if req.Trace {
		classes = append(classes, Trace)
	}
	return classes
}

// normalizedCopies runs the Normalizer and condenses the result back into
// measurement copies whose Concentration is the normalized value in the
// original unit. The raw sample is left untouched.
func normalizedCopies(subset, full []Measurement, ignored map[string]bool) []Measurement {
	normalized := Normalize(subset, full, ignored)
	out := make([]Measurement, len(normalized))
	for i, n := range normalized {
		m := n.Measurement
		m.Concentration = n.NormalizedOriginal
		out[i] = m
	}
	return out
}

// traceSumPercent converts a trace table's per-column sums from ppm to wt%
// for injection into the sibling major table's summary rows.
func traceSumPercent(t Table) []float64 {
	sums := t.ColumnSums()
	for i := range sums {
		sums[i] *= periodic.PPMToPercent
	}
	return sums
}
