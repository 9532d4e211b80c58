package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Plain names pass through
		{"edad", "edad"},
		{"Edad", "Edad"},
		{"_uuid", "_uuid"},

		// Group paths keep the leaf
		{"grupo/pregunta", "pregunta"},
		{"g1/g2/p1", "p1"},
		{" grupo / p1 ", "p1"},
		{"grupo/", "grupo"},

		// Separators inside the leaf
		{"p 1", "p_1"},
		{"p1-a.b:c", "p1_a_b_c"},
		{"Q1[SQ001]", "Q1_SQ001"},
		{"grupo/Q1[SQ001]", "Q1_SQ001"},

		// Reserved names
		{"index", "v_index"},
		{"INDEX", "v_index"},
		{"grupo/index", "v_index"},

		// Nothing left
		{"", "var"},
		{"/", "var"},
		{"]", "var"},

		// Unicode composition
		{"año", "año"},
		{"región", "región"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Canonical(tt.input))
		})
	}
}

func TestCanonical_Idempotent(t *testing.T) {
	inputs := []string{
		"edad", "grupo/pregunta", "p 1", "Q1[SQ001]", "index", "v_index",
		"", "/", "a//b", "año", "x-y.z", "_submission_time",
	}

	for _, in := range inputs {
		once := Canonical(in)
		assert.Equal(t, once, Canonical(once), "input %q", in)
	}
}

func TestCanonical_NeverReserved(t *testing.T) {
	for _, in := range []string{"index", "Index", "INDEX", "g/index", " index "} {
		out := Canonical(in)
		assert.False(t, IsReserved(out), "input %q produced reserved %q", in, out)
	}
}

func TestCanonicalColumns(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "group collision",
			input:    []string{"g1/p1", "g2/p1"},
			expected: []string{"p1", "p1_2"},
		},
		{
			name:     "suffix already taken",
			input:    []string{"p1", "p1_2", "g/p1"},
			expected: []string{"p1", "p1_2", "p1_3"},
		},
		{
			name:     "case-insensitive",
			input:    []string{"Edad", "edad"},
			expected: []string{"Edad", "edad_2"},
		},
		{
			name:     "exact duplicates",
			input:    []string{"a", "a", "a"},
			expected: []string{"a", "a_2", "a_3"},
		},
		{
			name:     "reserved alias collides with real column",
			input:    []string{"index", "v_index"},
			expected: []string{"v_index", "v_index_2"},
		},
		{
			name:     "empty",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalColumns(tt.input))
		})
	}
}

func TestCanonicalColumns_Unique(t *testing.T) {
	raws := []string{"g/a", "a", "A", "h/a", "a_2", "index", "INDEX", "v_index", "", "/"}
	names := CanonicalColumns(raws)
	require.Len(t, names, len(raws))

	seen := map[string]string{}
	for i, name := range names {
		key := strings.ToLower(name)
		if prev, ok := seen[key]; ok {
			t.Fatalf("%q (from %q) collides with a name from %q", name, raws[i], prev)
		}

		seen[key] = raws[i]
	}

	assert.Equal(t, []string{"a", "a_2", "A_3", "a_4", "a_2_2", "v_index", "v_index_2", "v_index_3", "var", "var_2"}, names)
}

func TestNamer_AssignAs(t *testing.T) {
	n := NewNamer()

	assert.Equal(t, "edad", n.AssignAs("edad"))
	assert.Equal(t, "edad_2", n.Assign("grupo/edad"))
	assert.Equal(t, "v_index", n.AssignAs("index"))
	assert.True(t, n.Taken("EDAD"))
	assert.False(t, n.Taken("sexo"))
}
