package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"survey-labeler/internal/reconcile"
)

// NotFound marks columns labeled with their raw name.
const NotFound = "not found"

// WriteReport writes the reconciliation report as an aligned table followed
// by a summary line.
func WriteReport(w io.Writer, report reconcile.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "COLUMN\tRAW\tSTATUS\tVALUES\tLABEL")

	for _, e := range report {
		status := e.Source.String()
		if !e.Found {
			status = NotFound
		}

		values := "-"
		if e.HasValueLabels {
			values = strconv.Itoa(e.ValueCount)
		}

		label := e.Label

		switch {
		case e.Ambiguous:
			label += " (ambiguous: " + strings.Join(e.Suggestions, ", ") + ")"
		case len(e.Suggestions) > 0:
			label += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Name, e.Raw, strings.ToLower(status), values, label)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", report.Summary()); err != nil {
		return fmt.Errorf("failed to write report summary: %w", err)
	}

	return nil
}
