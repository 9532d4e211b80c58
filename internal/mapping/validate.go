package mapping

import (
	"fmt"
	"sort"
	"strings"

	"survey-labeler/internal/diagnostic"
	"survey-labeler/internal/match"
)

// Validate checks an override file for conflicting or empty entries.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("mapping_is_nil", "override file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("version %q is not supported (want %q)", f.Version, CurrentVersion), "", "")
	}

	validateRenames(res, f)
	validateLabels(res, f)

	return res
}

func validateRenames(res *diagnostic.Diagnostics, f *File) {
	targets := map[string][]string{}

	for _, raw := range sortedKeys(f.Rename) {
		target := f.Rename[raw]

		switch {
		case strings.TrimSpace(target) == "":
			res.AddError("empty_rename", "rename target is empty", "", raw)
			continue
		case match.IsReserved(target):
			res.AddWarning("reserved_rename",
				fmt.Sprintf("%q is reserved and will be written as %q", target, match.Canonical(target)), "", raw)
		case match.Canonical(target) != target:
			res.AddInfo("rename_normalized",
				fmt.Sprintf("rename target %q will be used as %q", target, match.Canonical(target)), "", raw)
		}

		key := strings.ToLower(match.Canonical(target))
		targets[key] = append(targets[key], raw)
	}

	for _, key := range sortedKeys(targets) {
		if raws := targets[key]; len(raws) > 1 {
			res.AddError("duplicate_rename",
				fmt.Sprintf("columns %s are all renamed to %q", strings.Join(raws, ", "), key), "", key)
		}
	}

	for _, raw := range f.Drop {
		if _, ok := f.Rename[raw]; ok {
			res.AddWarning("rename_of_dropped", "column is both renamed and dropped", "", raw)
		}
	}
}

func validateLabels(res *diagnostic.Diagnostics, f *File) {
	dropped := map[string]struct{}{}
	for _, raw := range f.Drop {
		dropped[match.Canonical(raw)] = struct{}{}
	}

	for _, name := range sortedKeys(f.Labels) {
		if strings.TrimSpace(f.Labels[name]) == "" {
			res.AddWarning("empty_label", "label is empty; the column name will be used", "", name)
		}

		if _, ok := dropped[name]; ok {
			res.AddWarning("label_for_dropped", "label given for a dropped column", "", name)
		}
	}

	for _, name := range sortedKeys(f.ValueLabels) {
		codes := f.ValueLabels[name]
		if len(codes) == 0 {
			res.AddWarning("empty_value_labels", "value label dictionary is empty", "", name)
			continue
		}

		for code := range codes {
			if strings.TrimSpace(code) == "" {
				res.AddError("empty_code", "value label code is empty", "", name)
			}
		}

		if _, ok := dropped[name]; ok {
			res.AddWarning("label_for_dropped", "value labels given for a dropped column", "", name)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
