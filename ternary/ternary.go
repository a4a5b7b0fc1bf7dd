// Package ternary extracts plot-ready ternary diagram data from generated
// concentration tables. It produces normalized (A, B, C) points only —
// rendering belongs to the plotting frontend.
package ternary

import (
	"fmt"
	"strings"

	"github.com/blaise-mibeck/XRF-Data-Manager/engine"
)

// ============================================================================
// TERNARY SYSTEMS — three-apex compositional diagrams
// ============================================================================
// Each apex names one or more table symbols (oxides or elements) whose
// values are summed into that apex. Per-sample values are normalized so each
// point sums to 100.
// ============================================================================

// Apex is one corner of a ternary diagram.
type Apex struct {
	Label      string   `json:"label"`
	Components []string `json:"components"`
}

// System is a named three-apex diagram definition.
type System struct {
	Name   string  `json:"name"`
	Apexes [3]Apex `json:"apexes"`
}

// Point is one sample's normalized position: A+B+C = 100.
type Point struct {
	Sample string  `json:"sample"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	C      float64 `json:"c"`
}

// DefaultSystems returns the built-in diagram catalog.
func DefaultSystems() []System {
	return []System{
		NewSystem("SiO2-Al2O3-Fe2O3", "SiO2", "Al2O3", "Fe2O3"),
		{
			Name: "AFM (Na2O+K2O-FeO+Fe2O3-MgO)",
			Apexes: [3]Apex{
				{Label: "Na2O+K2O", Components: []string{"Na2O", "K2O"}},
				{Label: "FeO+Fe2O3", Components: []string{"FeO", "Fe2O3"}},
				{Label: "MgO", Components: []string{"MgO"}},
			},
		},
		NewSystem("Fe-Ti-O", "Fe", "Ti", "O"),
		NewSystem("CaO-Al2O3-SiO2", "CaO", "Al2O3", "SiO2"),
		NewSystem("CaO-Al2O3-Fe2O3", "CaO", "Al2O3", "Fe2O3"),
	}
}

// NewSystem builds a system with one component per apex.
func NewSystem(name, a, b, c string) System {
	return System{
		Name: name,
		Apexes: [3]Apex{
			{Label: a, Components: []string{a}},
			{Label: b, Components: []string{b}},
			{Label: c, Components: []string{c}},
		},
	}
}

// SystemByName finds a system in the default catalog.
func SystemByName(name string) (System, error) {
	systems := DefaultSystems()
	available := make([]string, 0, len(systems))
	for _, s := range systems {
		if s.Name == name {
			return s, nil
		}
		available = append(available, s.Name)
	}
	return System{}, fmt.Errorf("unknown ternary system %q (available: %s)", name, strings.Join(available, ", "))
}

// Extract computes one point per sample column of a concentration table.
// Samples missing every component of any apex, or whose three apex values
// sum to zero, are skipped — a ternary position is undefined for them.
// Summary rows never contribute.
func Extract(t engine.Table, sys System) []Point {
	var points []Point

	for col, sample := range t.Columns {
		var values [3]float64
		var present [3]bool

		for ai, apex := range sys.Apexes {
			for _, component := range apex.Components {
				row, ok := t.Row(component)
				if !ok || row.Summary || col >= len(row.Cells) {
					continue
				}
				if c := row.Cells[col]; c.Valid && c.Value > 0 {
					values[ai] += c.Value
					present[ai] = true
				}
			}
		}

		if !present[0] || !present[1] || !present[2] {
			continue
		}
		total := values[0] + values[1] + values[2]
		if total <= 0 {
			continue
		}

		points = append(points, Point{
			Sample: sample,
			A:      values[0] / total * 100,
			B:      values[1] / total * 100,
			C:      values[2] / total * 100,
		})
	}

	return points
}
