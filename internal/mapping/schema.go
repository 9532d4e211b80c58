package mapping

import (
	"sort"

	"survey-labeler/internal/syntax"
)

// CurrentVersion is the only supported file version.
const CurrentVersion = "1"

// File is an override file.
type File struct {
	Version     string                       `json:"version"                yaml:"version"`
	Rename      map[string]string            `json:"rename,omitempty"       yaml:"rename,omitempty"`
	Drop        []string                     `json:"drop,omitempty"         yaml:"drop,omitempty"`
	Labels      map[string]string            `json:"labels,omitempty"       yaml:"labels,omitempty"`
	ValueLabels map[string]map[string]string `json:"value_labels,omitempty" yaml:"value_labels,omitempty"`
}

// RenameFor returns the pinned name of a raw column.
func (f *File) RenameFor(raw string) (string, bool) {
	if f == nil {
		return "", false
	}

	name, ok := f.Rename[raw]

	return name, ok
}

// IsDropped reports whether a raw column is excluded from the export.
func (f *File) IsDropped(raw string) bool {
	if f == nil {
		return false
	}

	for _, d := range f.Drop {
		if d == raw {
			return true
		}
	}

	return false
}

// DropSet returns the dropped raw columns as a set.
func (f *File) DropSet() map[string]struct{} {
	if f == nil || len(f.Drop) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(f.Drop))
	for _, d := range f.Drop {
		set[d] = struct{}{}
	}

	return set
}

// LabelFor returns the pinned label of a canonical column name.
func (f *File) LabelFor(name string) (string, bool) {
	if f == nil {
		return "", false
	}

	label, ok := f.Labels[name]

	return label, ok
}

// ValueLabelSet converts the pinned dictionary of a canonical column name.
// Numeric codes come first in ascending order, then string codes by text.
func (f *File) ValueLabelSet(name string) *syntax.ValueLabels {
	if f == nil {
		return nil
	}

	raw, ok := f.ValueLabels[name]
	if !ok || len(raw) == 0 {
		return nil
	}

	codes := make([]syntax.Code, 0, len(raw))
	for token := range raw {
		codes = append(codes, syntax.ParseCode(token))
	}

	sort.Slice(codes, func(i, j int) bool {
		a, b := codes[i], codes[j]
		if a.IsNumeric() != b.IsNumeric() {
			return a.IsNumeric()
		}

		if a.IsNumeric() && a.Num != b.Num {
			return a.Num < b.Num
		}

		return a.Raw < b.Raw
	})

	set := syntax.NewValueLabels()
	for _, code := range codes {
		set.Set(code, raw[code.Raw])
	}

	return set
}
