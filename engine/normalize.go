package engine

import "github.com/blaise-mibeck/XRF-Data-Manager/periodic"

// ============================================================================
// NORMALIZER — rescale a sample's budget to sum to 100%
// ============================================================================
// The denominator is always the sample's ENTIRE measured budget (major and
// trace together), even when the caller only reports one classification —
// otherwise sibling major and trace relative tables would not close to 100%
// when combined.
// ============================================================================

// NormalizedMeasurement is a measurement copy carrying the derived
// normalization fields. The embedded Measurement is untouched.
type NormalizedMeasurement struct {
	Measurement

	// PercentEquivalent is the raw concentration expressed in wt%.
	PercentEquivalent float64

	// NormalizedPercent is PercentEquivalent rescaled so the sample's full
	// measured budget sums to 100%.
	NormalizedPercent float64

	// NormalizedOriginal is NormalizedPercent converted back to the
	// measurement's original unit (identical to NormalizedPercent for
	// percent measurements).
	NormalizedOriginal float64
}

// NormalizationFactor computes the rescaling factor for one sample:
// 100 / totalPercent over every non-ignored concentration-bearing
// measurement. A degenerate sample with zero total gets factor 1 so nothing
// is rescaled.
func NormalizationFactor(full []Measurement, ignored map[string]bool) float64 {
	var total float64
	for _, m := range full {
		if ignored[m.Element] || !m.Unit.IsConcentration() {
			continue
		}
		total += m.PercentValue()
	}
	if total <= 0 {
		return 1
	}
	return 100 / total
}

// Normalize rescales the requested subset of a sample's measurements against
// the full sample budget. Ignored symbols and signal-rate readings are
// dropped from both the denominator and the output. Input slices are never
// mutated; the result holds fresh copies.
func Normalize(subset, full []Measurement, ignored map[string]bool) []NormalizedMeasurement {
	factor := NormalizationFactor(full, ignored)

	out := make([]NormalizedMeasurement, 0, len(subset))
	for _, m := range subset {
		if ignored[m.Element] || !m.Unit.IsConcentration() {
			continue
		}

		n := NormalizedMeasurement{Measurement: m}
		n.PercentEquivalent = m.PercentValue()
		n.NormalizedPercent = n.PercentEquivalent * factor
		if m.Unit == UnitPPM {
			n.NormalizedOriginal = n.NormalizedPercent * periodic.PercentToPPM
		} else {
			n.NormalizedOriginal = n.NormalizedPercent
		}
		out = append(out, n)
	}
	return out
}
