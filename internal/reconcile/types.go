package reconcile

import (
	"fmt"
	"strings"

	"survey-labeler/internal/diagnostic"
	"survey-labeler/internal/mapping"
	"survey-labeler/internal/match"
	"survey-labeler/internal/syntax"
)

//go:generate go tool stringer -type=LabelSource -trimprefix=Source -output=labelsource_string.go

// LabelSource tells how the label of a column was found.
type LabelSource int

const (
	// SourceNone - no label was found; the raw column name is used.
	SourceNone LabelSource = iota
	// SourceOverride - pinned in the override file.
	SourceOverride
	// SourceExact - the syntax names the column exactly as the dataset does.
	SourceExact
	// SourceCanonical - the canonical names of both sides are equal.
	SourceCanonical
	// SourceFolded - the canonical names are equal ignoring case.
	SourceFolded
)

// MarshalText encodes the source in lower case.
func (s LabelSource) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

// UnmarshalText decodes a lower-case source name.
func (s *LabelSource) UnmarshalText(text []byte) error {
	for src := SourceNone; src <= SourceFolded; src++ {
		if strings.EqualFold(src.String(), string(text)) {
			*s = src
			return nil
		}
	}

	return fmt.Errorf("unknown label source %q", text)
}

// Options tunes a reconciliation pass.
type Options struct {
	// Overrides pins renames, drops and labels. May be nil.
	Overrides *mapping.File
	// MaxSuggestions caps the suggestions listed for an unmatched column.
	MaxSuggestions int
	// SuggestionThreshold is the minimum similarity of a suggestion (0-1).
	SuggestionThreshold float64
}

// DefaultOptions returns options without overrides and the default
// suggestion tuning.
func DefaultOptions() Options {
	return Options{
		MaxSuggestions:      match.DefaultMaxSuggestions,
		SuggestionThreshold: match.DefaultSuggestionThreshold,
	}
}

// Column is one kept dataset column.
type Column struct {
	// Raw is the column name as exported by the survey platform.
	Raw string `json:"raw"`
	// Name is the unique canonical name.
	Name string `json:"name"`
	// Pinned is true when the name comes from an override rename.
	Pinned bool `json:"pinned,omitempty"`
}

// Result is the outcome of one reconciliation pass. All maps are keyed by
// canonical column names.
type Result struct {
	// Columns lists the kept columns in dataset order.
	Columns []Column `json:"columns"`
	// Dropped lists the raw names of the columns excluded by the overrides.
	Dropped []string `json:"dropped,omitempty"`
	// Renames maps raw names to canonical names for every column whose name
	// changed. Raw names occurring more than once are left out; Columns
	// holds their positional names.
	Renames map[string]string `json:"renames"`
	// VariableLabels holds the labels found for the columns.
	VariableLabels syntax.VariableLabels `json:"variable_labels"`
	// ValueLabels holds the code dictionaries found for the columns.
	ValueLabels syntax.ValueLabelMap `json:"value_labels"`
	// Report has exactly one entry per kept column.
	Report Report `json:"report"`
	// Diagnostics contains warnings about unmatched and unused names.
	Diagnostics diagnostic.Diagnostics `json:"diagnostics"`
}

// Names returns the canonical names of the kept columns in dataset order.
func (r *Result) Names() []string {
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Name
	}

	return names
}

// Column returns the kept column with the given canonical name.
func (r *Result) Column(name string) (Column, bool) {
	for _, c := range r.Columns {
		if c.Name == name {
			return c, true
		}
	}

	return Column{}, false
}

// LabelFor returns the label of a column, falling back to its raw name and
// then to the name itself. The result is never empty for a non-empty name.
func (r *Result) LabelFor(name string) string {
	if label, ok := r.VariableLabels[name]; ok && label != "" {
		return label
	}

	if c, ok := r.Column(name); ok && strings.TrimSpace(c.Raw) != "" {
		return c.Raw
	}

	return name
}

// ColumnLabels returns a label for every kept column.
func (r *Result) ColumnLabels() map[string]string {
	labels := make(map[string]string, len(r.Columns))
	for _, c := range r.Columns {
		labels[c.Name] = r.LabelFor(c.Name)
	}

	return labels
}
