package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// CLASSIFICATION TESTS
// ============================================================================

// TestClassifyPPMThreshold verifies the 1000 ppm boundary: at or below is
// trace, above is major.
func TestClassifyPPMThreshold(t *testing.T) {
	assert.Equal(t, Trace, Classify(Measurement{Element: "Zn", Concentration: 120, Unit: UnitPPM}))
	assert.Equal(t, Trace, Classify(Measurement{Element: "Zn", Concentration: 1000, Unit: UnitPPM}))
	assert.Equal(t, Major, Classify(Measurement{Element: "Zn", Concentration: 1000.1, Unit: UnitPPM}))
	assert.Equal(t, Major, Classify(Measurement{Element: "Fe", Concentration: 45000, Unit: UnitPPM}))
}

// TestClassifyPercentThreshold verifies the 0.1 wt% boundary, the percent
// analogue of 1000 ppm.
func TestClassifyPercentThreshold(t *testing.T) {
	assert.Equal(t, Trace, Classify(Measurement{Element: "Mn", Concentration: 0.05, Unit: UnitPercent}))
	assert.Equal(t, Trace, Classify(Measurement{Element: "Mn", Concentration: 0.1, Unit: UnitPercent}))
	assert.Equal(t, Major, Classify(Measurement{Element: "Si", Concentration: 0.11, Unit: UnitPercent}))
	assert.Equal(t, Major, Classify(Measurement{Element: "Si", Concentration: 65.2, Unit: UnitPercent}))
}

// TestClassifyZeroIsTrace confirms a reported zero still classifies (as
// trace); filtering zeros is the assembler's job, not the classifier's.
func TestClassifyZeroIsTrace(t *testing.T) {
	assert.Equal(t, Trace, Classify(Measurement{Element: "Pb", Concentration: 0, Unit: UnitPPM}))
}

// TestClassifySignalRatePanics confirms passing a kcps reading is treated as
// a programming error, not a data condition.
func TestClassifySignalRatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Classify(Measurement{Element: "Rh", Concentration: 14.2, Unit: UnitKCPS})
	})
}
