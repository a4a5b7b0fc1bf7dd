package engine

import "errors"

// Sentinel errors returned by the orchestrator. Callers match with errors.Is.
var (
	// ErrNoVariants means the request enabled no table variant at all
	// (every concentration-type or classification toggle off).
	ErrNoVariants = errors.New("engine: no table variants requested")

	// ErrNoSamples means every input sample was filtered to empty — no
	// concentration-bearing, non-ignored measurement survived anywhere.
	ErrNoSamples = errors.New("engine: no usable samples")

	// ErrUnknownTableName means a table name is outside the fixed vocabulary.
	ErrUnknownTableName = errors.New("engine: unknown table name")
)
