package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/blaise-mibeck/XRF-Data-Manager/engine"
	"github.com/blaise-mibeck/XRF-Data-Manager/export"
	"github.com/blaise-mibeck/XRF-Data-Manager/helpers"
	"github.com/blaise-mibeck/XRF-Data-Manager/lookup"
	"github.com/blaise-mibeck/XRF-Data-Manager/periodic"
	"github.com/blaise-mibeck/XRF-Data-Manager/project"
	"github.com/blaise-mibeck/XRF-Data-Manager/store"
	"github.com/blaise-mibeck/XRF-Data-Manager/ternary"
)

// ============================================================================
// XRFDM CLI — Concentration tables from XRF assay exports
// ============================================================================

const version = "0.3.0"

// instruments is the built-in spectrometer catalog: instrument name → tube
// (anode) elements, which come from the excitation source rather than the
// sample.
var instruments = project.Instruments{
	"Epsilon 4": {"Rh"},
	"Axios":     {"Rh"},
	"S8 Tiger":  {"Rh"},
}

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	filePath := flag.String("file", "", "Path to assay CSV file (required)")
	absolute := flag.Bool("absolute", true, "Generate absolute (as-measured) tables")
	relative := flag.Bool("relative", true, "Generate relative (normalized) tables")
	major := flag.Bool("major", true, "Generate major element tables")
	trace := flag.Bool("trace", true, "Generate trace element tables")
	oxides := flag.Bool("oxides", true, "Generate oxide-basis tables")
	ignore := flag.String("ignore", "", "Comma-separated element symbols excluded from normalization (e.g. Rh,Ar)")
	instrument := flag.String("instrument", "", "Instrument name; its tube elements join the ignore list")
	majorStep := flag.String("major-step", "", "Major rounding step, e.g. 0.01 or 0.001")
	traceStep := flag.String("trace-step", "", "Trace rounding step in ppm: 10 or 1")
	format := flag.String("format", "json", "Output format: json, pretty, text, csv, xlsx")
	flatOut := flag.String("flat", "", "Also write the flattened long-format CSV to this path")
	ternarySys := flag.String("ternary", "", "Extract ternary points for the named system (e.g. CaO-Al2O3-SiO2)")
	storePath := flag.String("store", "", "Archive the parsed batch into this SQLite database")
	batchLabel := flag.String("label", "", "Batch label used when archiving (defaults to the input filename)")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `xrfdm — XRF concentration table engine

Usage:
  xrfdm --file assay.csv --format xlsx --out tables.xlsx
  xrfdm --file assay.csv --relative=false --format csv
  xrfdm --file assay.csv --instrument "Epsilon 4" --trace-step 1 --format pretty
  xrfdm --file assay.csv --store batches.db --label "Well 14 cuttings"

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Formats:
  json      Full table set as JSON (default)
  pretty    Pretty-printed JSON
  text      Human-readable digest of every table
  csv       All tables as CSV blocks (ready for Sheets/Excel)
  xlsx      Excel workbook, one sheet per table

Examples:
  # Full workbook with every variant
  xrfdm --file assay.csv --format xlsx --out tables.xlsx

  # Absolute major elements only, rounded to 3 decimals
  xrfdm --file assay.csv --relative=false --trace=false --oxides=false --major-step 0.001

  # Ternary points from the absolute major oxide table
  xrfdm --file assay.csv --ternary CaO-Al2O3-SiO2 --format pretty
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("xrfdm %s\n", version)
		os.Exit(0)
	}

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		flag.Usage()
		os.Exit(1)
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Read data ─────────────────────────────────────────────────────────
	data, err := os.ReadFile(*filePath)
	if err != nil {
		fatalf("Failed to read file: %v", err)
	}

	samples, diags, err := helpers.ParseAssayCSV(data)
	if err != nil {
		fatalf("Failed to parse assay CSV: %v", err)
	}
	for _, d := range diags {
		log.Printf("⚠️ Line %d (%s): %s", d.Line, d.SampleID, d.Reason)
	}
	log.Printf("📋 Parsed %d samples from %s", len(samples), *filePath)

	if info := project.ExtractInfoFromPath(filepath.Dir(*filePath)); info.ProjectNumber != "" {
		log.Printf("📁 Project %s %q (client %q)", info.ProjectNumber, info.ProjectName, info.ClientName)
	}

	// Identity fields come from a lookup table; the CLI has no edited table
	// to merge, so columns fall back to raw sample ids.
	ids := make([]string, len(samples))
	for i, s := range samples {
		ids[i] = s.SampleID
	}
	samples = lookup.FromSampleIDs(ids).Apply(samples)

	// ── Archive (optional) ────────────────────────────────────────────────
	if *storePath != "" {
		label := *batchLabel
		if label == "" {
			label = *filePath
		}
		st, err := store.Open(*storePath)
		if err != nil {
			fatalf("Failed to open store: %v", err)
		}
		batch, err := st.SaveBatch(context.Background(), label, *instrument, samples)
		st.Close()
		if err != nil {
			fatalf("Failed to archive batch: %v", err)
		}
		log.Printf("💾 Archived batch %s (%q, %d samples)", batch.ID, batch.Label, batch.Samples)
	}

	// ── Generate tables ───────────────────────────────────────────────────
	policy, err := engine.ParseDecimalPolicy(*majorStep, *traceStep)
	if err != nil {
		fatalf("Invalid rounding step: %v", err)
	}

	req := engine.Request{
		Absolute:      *absolute,
		Relative:      *relative,
		Major:         *major,
		Trace:         *trace,
		IncludeOxides: *oxides,
	}

	ignored := splitList(*ignore)
	if tube := instruments.TubeElements(*instrument); len(tube) > 0 {
		log.Printf("🔬 %s: ignoring tube elements %s", *instrument, strings.Join(tube, ", "))
		ignored = append(ignored, tube...)
	}

	ref := periodic.Default()
	tables, err := engine.GenerateAll(ref, samples, req,
		engine.WithIgnoredElements(ignored),
		engine.WithDecimalPolicy(policy),
	)
	if err != nil {
		fatalf("Table generation failed: %v", err)
	}

	// ── Flat export (optional) ────────────────────────────────────────────
	if *flatOut != "" {
		f, err := os.Create(*flatOut)
		if err != nil {
			fatalf("Failed to create flat CSV file: %v", err)
		}
		rows := export.Flatten(ref, samples, nil)
		if err := export.WriteFlatCSV(f, rows); err != nil {
			f.Close()
			fatalf("Failed to write flat CSV: %v", err)
		}
		f.Close()
		log.Printf("📄 Flat CSV written to %s (%d rows)", *flatOut, len(rows))
	}

	// ── Ternary mode ──────────────────────────────────────────────────────
	if *ternarySys != "" {
		writeTernary(writer, tables, *ternarySys, *format)
		return
	}

	// ── Render output ─────────────────────────────────────────────────────
	switch *format {
	case "csv":
		writeAllCSV(writer, tables)
		if *outFile != "" {
			log.Printf("📄 CSV written to %s", *outFile)
		}
	case "xlsx":
		if err := export.WriteWorkbook(writer, tables); err != nil {
			fatalf("Failed to write workbook: %v", err)
		}
		if *outFile != "" {
			log.Printf("📄 Workbook written to %s", *outFile)
		}
	case "text":
		fmt.Fprint(writer, export.Summarize(tables))
	default:
		writeJSON(writer, tables, *format)
	}
}

// ============================================================================
// TERNARY OUTPUT
// ============================================================================

func writeTernary(w *os.File, tables map[string]engine.Table, name, format string) {
	sys, err := ternary.SystemByName(name)
	if err != nil {
		fatalf("%v", err)
	}

	// Ternary systems are defined over major oxides; fall back to major
	// elements when oxide tables were not requested.
	src, ok := tables[engine.TableKey{
		Type:  engine.Absolute,
		Class: engine.Major,
		Basis: engine.BasisOxide,
	}.Name()]
	if !ok {
		src, ok = tables[engine.TableKey{
			Type:  engine.Absolute,
			Class: engine.Major,
			Basis: engine.BasisElement,
		}.Name()]
	}
	if !ok {
		fatalf("Ternary extraction needs an absolute major table (--absolute --major)")
	}

	points := ternary.Extract(src, sys)
	log.Printf("🔺 %s: %d of %d samples plottable", sys.Name, len(points), len(src.Columns))
	writeJSON(w, points, format)
}

// ============================================================================
// CSV OUTPUT — every table as a labelled block
// ============================================================================

func writeAllCSV(w *os.File, tables map[string]engine.Table) {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# %s\n", name)
		if err := export.WriteTableCSV(w, tables[name]); err != nil {
			fatalf("Failed to write CSV for %s: %v", name, err)
		}
	}
}

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

// ============================================================================
// HELPERS
// ============================================================================

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
