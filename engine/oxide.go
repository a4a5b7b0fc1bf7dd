package engine

import "github.com/blaise-mibeck/XRF-Data-Manager/periodic"

// ============================================================================
// OXIDE CONVERTER — elemental ↔ oxide basis
// ============================================================================

// OxideValue is a measurement re-expressed on the oxide basis. The unit is
// the measurement's original unit — stoichiometry never changes units.
type OxideValue struct {
	Formula       string
	Concentration float64
	Unit          Unit
}

// ToOxide converts an elemental measurement to its conventional oxide form.
// Returns false when the element has no oxide entry or the measurement is a
// raw signal rate — both are ordinary data conditions, not errors.
func ToOxide(ref *periodic.Reference, m Measurement) (OxideValue, bool) {
	if !m.Unit.IsConcentration() {
		return OxideValue{}, false
	}
	entry, ok := ref.Oxide(m.Element)
	if !ok {
		return OxideValue{}, false
	}
	return OxideValue{
		Formula:       entry.Formula,
		Concentration: m.Concentration * entry.Factor,
		Unit:          m.Unit,
	}, true
}

// OxideToElement inverts ToOxide for datasets already reported on the oxide
// basis: dividing an oxide concentration by the element's stoichiometric
// factor recovers the elemental concentration (same unit). Returns false
// when the element has no oxide entry.
func OxideToElement(ref *periodic.Reference, element string, oxideConcentration float64) (float64, bool) {
	entry, ok := ref.Oxide(element)
	if !ok {
		return 0, false
	}
	return oxideConcentration / entry.Factor, true
}
