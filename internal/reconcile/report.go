package reconcile

import (
	"fmt"
)

// Entry is the reconciliation outcome of one kept column.
type Entry struct {
	// Name is the canonical column name.
	Name string `json:"name"`
	// Raw is the column name as exported.
	Raw string `json:"raw"`
	// Label is the label to export. Never empty; the raw name is used when
	// no label was found.
	Label string `json:"label"`
	// Found is false when Label is the raw-name fallback.
	Found bool `json:"found"`
	// Source tells how the label was found.
	Source LabelSource `json:"source"`
	// Variable is the matched syntax variable, if any. It names the variable
	// giving the label, or the one giving the codes when no label matched.
	Variable string `json:"variable,omitempty"`
	// ValueVariable is the syntax variable the code dictionary comes from.
	ValueVariable string `json:"value_variable,omitempty"`
	// HasValueLabels is true when the column has a code dictionary.
	HasValueLabels bool `json:"has_value_labels"`
	// ValueCount is the number of labeled codes.
	ValueCount int `json:"value_count,omitempty"`
	// Suggestions are unused syntax variables with a similar name.
	Suggestions []string `json:"suggestions,omitempty"`
	// Ambiguous is true when the best suggestions score too close to pick one.
	Ambiguous bool `json:"ambiguous,omitempty"`
}

// Report lists one entry per kept column, in dataset order.
type Report []Entry

// Summary counts the outcomes of a report.
type Summary struct {
	Columns         int `json:"columns"`
	Labeled         int `json:"labeled"`
	NotFound        int `json:"not_found"`
	WithValueLabels int `json:"with_value_labels"`
}

// Summary counts labeled, unlabeled and coded columns.
func (r Report) Summary() Summary {
	s := Summary{Columns: len(r)}

	for _, e := range r {
		if e.Found {
			s.Labeled++
		} else {
			s.NotFound++
		}

		if e.HasValueLabels {
			s.WithValueLabels++
		}
	}

	return s
}

// NotFound returns the entries whose label is the raw-name fallback.
func (r Report) NotFound() Report {
	var out Report

	for _, e := range r {
		if !e.Found {
			out = append(out, e)
		}
	}

	return out
}

// Entry returns the entry of a canonical column name.
func (r Report) Entry(name string) (Entry, bool) {
	for _, e := range r {
		if e.Name == name {
			return e, true
		}
	}

	return Entry{}, false
}

// String formats the summary as a single line.
func (s Summary) String() string {
	return fmt.Sprintf("%d columns: %d labeled, %d not found, %d with value labels",
		s.Columns, s.Labeled, s.NotFound, s.WithValueLabels)
}
