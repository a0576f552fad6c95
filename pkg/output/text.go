package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sambabib/depwatch/pkg/audit"
)

// WriteTextReport writes the audit records in a tabular text format
func WriteTextReport(w io.Writer, records []audit.Record) error {
	// Initialize tabwriter
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) // minwidth, tabwidth, padding, padchar, flags

	// Print header
	fmt.Fprintln(tw, "NAME\tINSTALLED\tREQUESTED\tSTALE")
	fmt.Fprintln(tw, "----\t---------\t---------\t-----")

	// Print data rows
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n",
			r.Name,
			r.Installed,
			r.Requested,
			r.Stale,
		)
	}

	// Flush the writer to print the table
	return tw.Flush()
}
