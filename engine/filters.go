package engine

// ============================================================================
// FILTERS — per-sample measurement selection
// ============================================================================
// Single pass per sample: ignored symbols and non-concentration units are
// dropped, then the classification constraint is applied. Element symbols
// are case-significant ("Co" is cobalt, not carbon+oxygen) so matching is
// exact.
// ============================================================================

// concentrationBearing returns the measurements carrying concentration data
// (% or ppm), excluding ignored symbols. This is the normalization
// denominator set.
func concentrationBearing(ms []Measurement, ignored map[string]bool) []Measurement {
	out := make([]Measurement, 0, len(ms))
	for _, m := range ms {
		if ignored[m.Element] || !m.Unit.IsConcentration() {
			continue
		}
		out = append(out, m)
	}
	return out
}

// selectClass returns the concentration-bearing measurements of one
// classification, excluding ignored symbols. Classification is always
// decided on the raw (un-normalized) value.
func selectClass(ms []Measurement, class Classification, ignored map[string]bool) []Measurement {
	out := make([]Measurement, 0, len(ms))
	for _, m := range ms {
		if ignored[m.Element] || !m.Unit.IsConcentration() {
			continue
		}
		if Classify(m) == class {
			out = append(out, m)
		}
	}
	return out
}
