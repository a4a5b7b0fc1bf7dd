package periodic

import "regexp"

// ============================================================================
// CHEMISTRY REFERENCE — Static lookup data for the engine
// ============================================================================
// Atomic numbers, oxide stoichiometry factors, and classification constants.
// The Reference is read-only after construction and safe to share across
// goroutines. Every engine call takes it as an explicit argument — there is
// no package-global lookup state.
// ============================================================================

// Unit-conversion and classification constants. These are the single source
// of truth for the whole system — the classifier, normalizer, and
// orchestrator all reference them here.
const (
	// PPMToPercent converts a ppm concentration to weight percent (1 ppm = 0.0001 %).
	PPMToPercent = 0.0001

	// PercentToPPM converts weight percent back to ppm.
	PercentToPPM = 10000.0

	// TraceThresholdPPM is the trace/major boundary for ppm measurements.
	// At or below this value an element is trace.
	TraceThresholdPPM = 1000.0

	// TraceThresholdPercent is the trace/major boundary for percent
	// measurements (the ppm threshold expressed in wt%).
	TraceThresholdPercent = 0.1
)

// OxideEntry holds the conventional oxide form of an element: the oxide
// formula and the multiplicative factor mapping elemental wt% (or ppm) to
// oxide wt% (or ppm). The unit is preserved by the conversion.
type OxideEntry struct {
	Formula string
	Factor  float64
}

// Reference bundles the static chemistry lookup tables.
// Construct with Default(); the zero value is not usable.
type Reference struct {
	atomicNumbers map[string]int
	oxides        map[string]OxideEntry
}

// Default returns the built-in reference covering H through Og and the
// standard oxide stoichiometry table.
func Default() *Reference {
	return &Reference{
		atomicNumbers: atomicNumbers,
		oxides:        oxideFactors,
	}
}

// AtomicNumber returns the atomic number for an element symbol, or 0 when
// the symbol is unknown. Callers sort unknown symbols first rather than
// treating the miss as an error.
func (r *Reference) AtomicNumber(symbol string) int {
	return r.atomicNumbers[symbol]
}

// Oxide returns the oxide entry for an element symbol. The second return is
// false for elements not conventionally reported as oxides.
func (r *Reference) Oxide(symbol string) (OxideEntry, bool) {
	e, ok := r.oxides[symbol]
	return e, ok
}

// OxideSymbols returns the element symbols that have an oxide entry.
func (r *Reference) OxideSymbols() []string {
	out := make([]string, 0, len(r.oxides))
	for sym := range r.oxides {
		out = append(out, sym)
	}
	return out
}

var leadingElement = regexp.MustCompile(`^([A-Z][a-z]?)`)

// BaseElement resolves a row symbol back to its base element: plain element
// symbols pass through, oxide formulas ("Al2O3", "Pr6O11") reduce to their
// leading element symbol. Returns "" when no symbol can be extracted.
func (r *Reference) BaseElement(symbol string) string {
	if _, ok := r.atomicNumbers[symbol]; ok {
		return symbol
	}
	if m := leadingElement.FindString(symbol); m != "" {
		return m
	}
	return ""
}
