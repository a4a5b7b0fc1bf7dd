package engine

import (
	"fmt"

	"github.com/blaise-mibeck/XRF-Data-Manager/periodic"
)

// Classify labels a measurement as major or trace.
//
// ppm readings are trace at or below periodic.TraceThresholdPPM; percent
// readings are trace at or below periodic.TraceThresholdPercent. A kcps
// measurement has no classification — callers must filter signal-rate
// readings out first, and passing one here is a programming error.
func Classify(m Measurement) Classification {
	switch m.Unit {
	case UnitPPM:
		if m.Concentration <= periodic.TraceThresholdPPM {
			return Trace
		}
		return Major
	case UnitPercent:
		if m.Concentration <= periodic.TraceThresholdPercent {
			return Trace
		}
		return Major
	default:
		panic(fmt.Sprintf("engine: Classify called on non-concentration unit %q (element %s)", m.Unit, m.Element))
	}
}
