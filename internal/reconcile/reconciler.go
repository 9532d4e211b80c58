package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"survey-labeler/internal/common"
	"survey-labeler/internal/diagnostic"
	"survey-labeler/internal/match"
	"survey-labeler/internal/syntax"
)

// Reconcile joins a syntax document with the raw column names of a dataset.
// A nil document reconciles every column as unmatched.
func Reconcile(doc *syntax.Document, columns []string, opts Options) *Result {
	if doc == nil {
		doc = &syntax.Document{}
	}

	r := &reconciler{
		doc:    doc,
		opts:   opts,
		labels: newIndex("variable label"),
		values: newIndex("value labels"),
		used:   map[string]struct{}{},
		result: &Result{
			Columns:        []Column{},
			Renames:        map[string]string{},
			VariableLabels: syntax.VariableLabels{},
			ValueLabels:    syntax.ValueLabelMap{},
			Report:         Report{},
			Diagnostics:    diagnostic.Diagnostics{},
		},
	}

	r.indexSyntax()
	r.nameColumns(columns)

	for _, c := range r.result.Columns {
		r.resolveColumn(c)
	}

	r.suggest()
	r.reportUnused()

	return r.result
}

type reconciler struct {
	doc  *syntax.Document
	opts Options

	// names lists the syntax variables in document order.
	names []string
	// labels and values index the variables defining a label or a code
	// dictionary. A column resolves against each on its own.
	labels *index
	values *index
	used   map[string]struct{}

	result *Result
}

// syntaxNames lists the variables of doc in order of first appearance,
// followed by labeled names missing from doc.Variables in sorted order.
func syntaxNames(doc *syntax.Document) []string {
	seen := make(map[string]struct{}, len(doc.Variables))
	names := make([]string, 0, len(doc.Variables))

	for _, name := range doc.Variables {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	var extra []string

	for name := range doc.VariableLabels {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			extra = append(extra, name)
		}
	}

	for name := range doc.ValueLabels {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			extra = append(extra, name)
		}
	}

	sort.Strings(extra)

	return append(names, extra...)
}

func (r *reconciler) indexSyntax() {
	r.names = syntaxNames(r.doc)

	for _, name := range r.names {
		if strings.TrimSpace(r.doc.VariableLabels[name]) != "" {
			r.register(r.labels, name)
		}

		if r.doc.ValueLabels[name].Len() > 0 {
			r.register(r.values, name)
		}
	}
}

func (r *reconciler) register(ix *index, name string) {
	prev, canonical, taken := ix.add(name)
	if !taken {
		return
	}

	r.result.Diagnostics.AddWarning("canonical_collision",
		fmt.Sprintf("syntax variables %q and %q share the canonical name %q; the %s of %q is used",
			prev, name, canonical, ix.kind, prev),
		"", name)
}

func (r *reconciler) nameColumns(columns []string) {
	overrides := r.opts.Overrides
	drop := overrides.DropSet()
	namer := match.NewNamer()

	counts := make(map[string]int, len(columns))
	for _, raw := range columns {
		counts[raw]++
	}

	for _, raw := range columns {
		if _, ok := drop[raw]; ok {
			r.result.Dropped = common.AppendUnique(r.result.Dropped, raw)
			continue
		}

		col := Column{Raw: raw}
		wanted := match.Canonical(raw)

		if pinned, ok := overrides.RenameFor(raw); ok && strings.TrimSpace(pinned) != "" {
			col.Name = namer.AssignAs(pinned)
			col.Pinned = true
			wanted = match.Canonical(pinned)
		} else {
			col.Name = namer.Assign(raw)
		}

		if col.Name != wanted {
			r.result.Diagnostics.AddWarning("duplicate_name",
				fmt.Sprintf("column %q is named %q because %q is already taken", raw, col.Name, wanted),
				"", col.Name)
		}

		if col.Name != raw && counts[raw] == 1 {
			r.result.Renames[raw] = col.Name
		}

		r.result.Columns = append(r.result.Columns, col)
	}

	if overrides == nil {
		return
	}

	for _, raw := range overrides.Drop {
		if counts[raw] == 0 {
			r.result.Diagnostics.AddInfo("unknown_drop", "dropped column is not in the dataset", "", raw)
		}
	}

	for raw := range overrides.Rename {
		if counts[raw] == 0 {
			r.result.Diagnostics.AddInfo("unknown_rename", "renamed column is not in the dataset", "", raw)
		}
	}
}

func (r *reconciler) resolveColumn(c Column) {
	overrides := r.opts.Overrides
	variable, source := r.labels.lookup(c)
	valueVariable, _ := r.values.lookup(c)

	for _, name := range []string{variable, valueVariable} {
		if name != "" {
			r.used[name] = struct{}{}
		}
	}

	entry := Entry{Name: c.Name, Raw: c.Raw, Variable: variable, ValueVariable: valueVariable}
	if entry.Variable == "" {
		entry.Variable = valueVariable
	}

	switch label, ok := overrides.LabelFor(c.Name); {
	case ok && strings.TrimSpace(label) != "":
		entry.Label = label
		entry.Source = SourceOverride
	case variable != "":
		entry.Label = r.doc.VariableLabels[variable]
		entry.Source = source
	}

	if entry.Label != "" {
		entry.Found = true
		r.result.VariableLabels[c.Name] = entry.Label
	} else {
		entry.Label = r.result.LabelFor(c.Name)
		entry.Source = SourceNone
	}

	var values *syntax.ValueLabels
	if valueVariable != "" {
		values = r.doc.ValueLabels[valueVariable].Clone()
	}

	if pinned := overrides.ValueLabelSet(c.Name); pinned != nil {
		if values == nil {
			values = syntax.NewValueLabels()
		}

		values.Merge(pinned)
	}

	if values.Len() > 0 {
		r.result.ValueLabels[c.Name] = values
		entry.HasValueLabels = true
		entry.ValueCount = values.Len()
	}

	r.result.Report = append(r.result.Report, entry)
}

// suggest fills suggestions for unmatched columns from the syntax variables
// no column claimed.
func (r *reconciler) suggest() {
	pool := r.unused()

	for i := range r.result.Report {
		entry := &r.result.Report[i]
		if entry.Found {
			continue
		}

		if entry.Variable == "" {
			entry.Suggestions, entry.Ambiguous = match.Suggest(entry.Raw, pool,
				r.opts.MaxSuggestions, r.opts.SuggestionThreshold)
		}

		message := "no label found; the raw column name is used"
		if entry.Ambiguous {
			message += "; several syntax variables match equally well"
		}

		r.result.Diagnostics.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityWarning,
			Code:        "label_not_found",
			Message:     message,
			Variable:    entry.Name,
			Suggestions: entry.Suggestions,
		})
	}
}

func (r *reconciler) unused() []string {
	return common.Without(r.names, r.used)
}

func (r *reconciler) reportUnused() {
	for _, name := range r.unused() {
		r.result.Diagnostics.AddInfo("unused_syntax_variable", "syntax variable matches no column", "", name)
	}
}
