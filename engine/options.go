package engine

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// ============================================================================
// ENGINE OPTIONS — Functional options for GenerateAll()
// ============================================================================

// DecimalPolicy controls table rounding: decimal places for major tables and
// rounding granularity for trace tables.
type DecimalPolicy struct {
	// MajorDecimals is the number of decimal places kept in major tables.
	MajorDecimals int

	// TraceStep is the trace rounding granularity: 10 rounds to the nearest
	// ten units, 1 to the nearest unit.
	TraceStep int
}

// DefaultDecimalPolicy returns the reporting defaults: 2 decimal places for
// major values, nearest 10 for trace values.
func DefaultDecimalPolicy() DecimalPolicy {
	return DecimalPolicy{MajorDecimals: 2, TraceStep: 10}
}

// ParseDecimalPolicy builds a DecimalPolicy from the loose string knobs the
// table-options form exposes: a major step of "0.01" or "0.001" and a trace
// step of "10" or "1". Empty strings keep the defaults.
func ParseDecimalPolicy(majorStep, traceStep string) (DecimalPolicy, error) {
	p := DefaultDecimalPolicy()

	if majorStep != "" {
		step, err := cast.ToFloat64E(majorStep)
		if err != nil || step <= 0 || step > 1 {
			return p, fmt.Errorf("invalid major decimal step %q", majorStep)
		}
		p.MajorDecimals = int(math.Round(-math.Log10(step)))
	}

	if traceStep != "" {
		step, err := cast.ToIntE(traceStep)
		if err != nil || (step != 10 && step != 1) {
			return p, fmt.Errorf("invalid trace rounding step %q", traceStep)
		}
		p.TraceStep = step
	}

	return p, nil
}

// Option configures orchestrator behavior via functional options pattern.
type Option func(*config)

type config struct {
	Ignored map[string]bool // element symbols excluded from everything
	Policy  DecimalPolicy
}

// WithIgnoredElements excludes element symbols (typically the instrument's
// tube elements) from classification, conversion, and normalization.
func WithIgnoredElements(symbols []string) Option {
	return func(c *config) {
		for _, s := range symbols {
			if s != "" {
				c.Ignored[s] = true
			}
		}
	}
}

// WithDecimalPolicy overrides the default rounding policy.
func WithDecimalPolicy(p DecimalPolicy) Option {
	return func(c *config) {
		c.Policy = p
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Ignored: make(map[string]bool),
		Policy:  DefaultDecimalPolicy(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
