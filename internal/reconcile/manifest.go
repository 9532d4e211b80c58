package reconcile

import (
	"survey-labeler/internal/mapping"
)

// Manifest converts the result to an override file that pins every
// decision of this pass: renames, drops, one label per kept column and the
// code dictionaries. Editing and feeding it back makes a rerun reproduce the
// operator's choices.
func (r *Result) Manifest() *mapping.File {
	f := &mapping.File{
		Version: mapping.CurrentVersion,
		Labels:  r.ColumnLabels(),
	}

	if len(r.Renames) > 0 {
		f.Rename = make(map[string]string, len(r.Renames))
		for raw, name := range r.Renames {
			f.Rename[raw] = name
		}
	}

	if len(r.Dropped) > 0 {
		f.Drop = append([]string(nil), r.Dropped...)
	}

	if len(r.ValueLabels) > 0 {
		f.ValueLabels = make(map[string]map[string]string, len(r.ValueLabels))
		for name, values := range r.ValueLabels {
			f.ValueLabels[name] = values.Strings()
		}
	}

	return f
}
