package reconcile

import (
	"strings"

	"survey-labeler/internal/match"
)

// index resolves columns to the syntax variables that define one kind of
// entry, a variable label or a code dictionary.
type index struct {
	kind        string
	exact       map[string]struct{}
	byCanonical map[string]string
	byFolded    map[string]string
}

func newIndex(kind string) *index {
	return &index{
		kind:        kind,
		exact:       map[string]struct{}{},
		byCanonical: map[string]string{},
		byFolded:    map[string]string{},
	}
}

// add registers name. When another variable already holds the canonical
// form of name, it returns that variable and true; the first one keeps it.
func (ix *index) add(name string) (string, string, bool) {
	ix.exact[name] = struct{}{}

	canonical := match.Canonical(name)

	prev, taken := ix.byCanonical[canonical]
	if !taken {
		ix.byCanonical[canonical] = name
	}

	folded := strings.ToLower(canonical)
	if _, ok := ix.byFolded[folded]; !ok {
		ix.byFolded[folded] = name
	}

	return prev, canonical, taken
}

// lookup finds the variable for a column: exact raw name first, then the
// canonical name, then the case-folded canonical name. A suffixed column
// (edad_2) also tries the canonical name of its raw name unless it is pinned.
func (ix *index) lookup(c Column) (string, LabelSource) {
	if _, ok := ix.exact[c.Raw]; ok {
		return c.Raw, SourceExact
	}

	keys := []string{c.Name}
	if base := match.Canonical(c.Raw); !c.Pinned && base != c.Name {
		keys = append(keys, base)
	}

	for _, key := range keys {
		if name, ok := ix.byCanonical[key]; ok {
			return name, SourceCanonical
		}
	}

	for _, key := range keys {
		if name, ok := ix.byFolded[strings.ToLower(key)]; ok {
			return name, SourceFolded
		}
	}

	return "", SourceNone
}
