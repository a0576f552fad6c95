package output

import (
	"bytes"
	"encoding/csv"

	"github.com/sambabib/depwatch/pkg/audit"
)

// Options controls the CSV column headers and the marker written for stale
// packages.
type Options struct {
	NameHeader    string
	VersionHeader string
	WarningHeader string
	StaleMarker   string
}

// DefaultOptions returns the stock report layout
func DefaultOptions() Options {
	return Options{
		NameHeader:    "name",
		VersionHeader: "version",
		WarningHeader: "warning",
		StaleMarker:   "×",
	}
}

// GenerateCSVReport renders audit records as CSV: a header row followed by
// one row per record, with the stale marker in the warning column for
// packages that have not moved past their requested version
func GenerateCSVReport(records []audit.Record, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{opts.NameHeader, opts.VersionHeader, opts.WarningHeader}); err != nil {
		return nil, err
	}
	for _, r := range records {
		warning := ""
		if r.Stale {
			warning = opts.StaleMarker
		}
		if err := w.Write([]string{r.Name, r.Installed, warning}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
