// Package xrf provides the concentration table engine behind the XRF Data
// Manager: element classification, oxide stoichiometry conversion,
// relative-concentration normalization, and assembly of reporting tables.
//
// Usage:
//
//	import (
//	    "github.com/blaise-mibeck/XRF-Data-Manager/engine"
//	    "github.com/blaise-mibeck/XRF-Data-Manager/periodic"
//	)
//
//	tables, err := engine.GenerateAll(periodic.Default(), samples,
//	    engine.Request{Absolute: true, Relative: true, Major: true, Trace: true},
//	    engine.WithIgnoredElements(tubeElements),
//	)
//
// The engine takes parsed sample records (element, concentration, unit) and
// returns a mapping of table name to engine.Table, ready for the exporters
// in the export and ternary packages.
//
// File ingestion is handled separately by the helpers package. The engine
// never touches the filesystem — all computation is local and synchronous.
package xrf
