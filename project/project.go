// Package project derives project metadata from the conventional XRF folder
// layout and models per-instrument configuration.
package project

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Info is project metadata recovered from a folder path.
type Info struct {
	ClientName    string `json:"clientName"`
	ProjectNumber string `json:"projectNumber"`
	ProjectName   string `json:"projectName"`
}

// Metadata describes one processing run.
type Metadata struct {
	Info
	Instrument string `json:"instrument,omitempty"`
	Operator   string `json:"operator,omitempty"`
	Date       string `json:"date,omitempty"`
}

var projectFolder = regexp.MustCompile(`^(\d+)(?:_(.+))?$`)

// ExtractInfoFromPath recovers client and project identity from a path of
// the conventional shape ClientName/Projects/#####_ProjectName/Data/XRF.
// Fields that cannot be recovered stay empty; the function never fails.
func ExtractInfoFromPath(xrfFolder string) Info {
	var info Info

	parts := strings.Split(filepath.ToSlash(filepath.Clean(xrfFolder)), "/")

	xrfIndex := -1
	for i, part := range parts {
		if strings.EqualFold(part, "xrf") {
			xrfIndex = i
			break
		}
	}
	if xrfIndex <= 0 {
		return info
	}

	// #####_ProjectName sits two levels above XRF (XRF/Data/Project).
	if xrfIndex >= 2 {
		if m := projectFolder.FindStringSubmatch(parts[xrfIndex-2]); m != nil {
			info.ProjectNumber = m[1]
			info.ProjectName = m[2]
		}
	}

	// Client name sits four levels above XRF (above the Projects folder).
	if xrfIndex >= 4 {
		info.ClientName = parts[xrfIndex-4]
	}

	return info
}

// Instruments maps an instrument name to its tube element symbols — the
// elements that originate from the excitation source rather than the sample
// and are excluded from analysis when the caller opts in.
type Instruments map[string][]string

// TubeElements returns the tube elements for an instrument, or nil for an
// unknown instrument.
func (in Instruments) TubeElements(instrument string) []string {
	if instrument == "" {
		return nil
	}
	return in[instrument]
}
