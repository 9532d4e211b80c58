package syntax

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		token    string
		wantKind CodeKind
		wantNum  float64
		wantText string
	}{
		{"1", CodeNumeric, 1, "1"},
		{"01", CodeNumeric, 1, "1"},
		{"1.0", CodeNumeric, 1, "1"},
		{"-9", CodeNumeric, -9, "-9"},
		{"+2", CodeNumeric, 2, "2"},
		{".5", CodeNumeric, 0.5, "0.5"},
		{"1e3", CodeNumeric, 1000, "1000"},
		{" 7 ", CodeNumeric, 7, "7"},
		{"NS", CodeString, 0, "NS"},
		{"NaN", CodeString, 0, "NaN"},
		{"Inf", CodeString, 0, "Inf"},
		{"1a", CodeString, 0, "1a"},
		{"", CodeString, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			code := ParseCode(tt.token)
			assert.Equal(t, tt.wantKind, code.Kind)
			assert.Equal(t, tt.wantNum, code.Num)
			assert.Equal(t, tt.wantText, code.String())
			assert.Equal(t, tt.token, code.Raw)
		})
	}
}

func TestCodeKind_String(t *testing.T) {
	assert.Equal(t, "Numeric", CodeNumeric.String())
	assert.Equal(t, "String", CodeString.String())
	assert.Equal(t, "CodeKind(0)", CodeKind(0).String())
}

func TestValueLabels(t *testing.T) {
	v := NewValueLabels()
	v.Set(ParseCode("1"), "Sí")
	v.Set(ParseCode("2"), "No")
	v.Set(ParseCode("1.0"), "Si")
	v.Set(StringCode("NS"), "No sabe")

	assert.Equal(t, 3, v.Len())
	assert.False(t, v.AllNumeric())

	entries := v.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Si", entries[0].Label, "redefined code keeps its position")
	assert.Equal(t, "No", entries[1].Label)
	assert.Equal(t, "No sabe", entries[2].Label)

	assert.Equal(t, map[float64]string{1: "Si", 2: "No"}, v.Numeric())
	assert.Equal(t, map[string]string{"1": "Si", "2": "No", "NS": "No sabe"}, v.Strings())

	label, ok := v.Lookup("NS")
	require.True(t, ok)
	assert.Equal(t, "No sabe", label)

	_, ok = v.Lookup("3")
	assert.False(t, ok)
}

func TestValueLabels_Nil(t *testing.T) {
	var v *ValueLabels

	assert.Zero(t, v.Len())
	assert.Nil(t, v.Entries())
	assert.True(t, v.AllNumeric())

	_, ok := v.Lookup("1")
	assert.False(t, ok)

	assert.Equal(t, 0, v.Clone().Len())
	assert.True(t, v.Equal(NewValueLabels()))
}

func TestValueLabels_ZeroValueSet(t *testing.T) {
	var v ValueLabels
	v.Set(NumericCode(1), "x")

	label, ok := v.Get(NumericCode(1))
	require.True(t, ok)
	assert.Equal(t, "x", label)
}

func TestValueLabels_CloneAndMerge(t *testing.T) {
	a := NewValueLabels()
	a.Set(NumericCode(1), "x")

	b := a.Clone()
	b.Set(NumericCode(2), "y")
	assert.Equal(t, 1, a.Len())
	assert.False(t, a.Equal(b))

	a.Merge(b)
	assert.True(t, a.Equal(b))
}

func TestValueLabels_MarshalJSON(t *testing.T) {
	v := NewValueLabels()
	v.Set(NumericCode(2), "Mujer")
	v.Set(NumericCode(1), "Hombre")
	v.Set(StringCode(`"q"`), "quoted")

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"2":"Mujer","1":"Hombre","\"q\"":"quoted"}`, string(data))

	data, err = json.Marshal(ValueLabelMap{"sexo": v})
	require.NoError(t, err)
	assert.JSONEq(t, `{"sexo":{"1":"Hombre","2":"Mujer","\"q\"":"quoted"}}`, string(data))
}

func TestValueLabels_UnmarshalJSON(t *testing.T) {
	var v ValueLabels

	require.NoError(t, json.Unmarshal([]byte(`{"2": "Mujer", "1": "Hombre", "NS": "No sabe"}`), &v))

	entries := v.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Mujer", entries[0].Label)
	assert.Equal(t, "Hombre", entries[1].Label)
	assert.True(t, entries[1].Code.IsNumeric())
	assert.False(t, entries[2].Code.IsNumeric())

	data, err := json.Marshal(&v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2": "Mujer", "1": "Hombre", "NS": "No sabe"}`, string(data))

	require.Error(t, json.Unmarshal([]byte(`["1"]`), &v))
	require.Error(t, json.Unmarshal([]byte(`{"1": 2}`), &v))
}
