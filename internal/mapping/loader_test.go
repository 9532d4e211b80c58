package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
rename:
  "grupo_datos/p1": edad
drop:
  - start
  - end
labels:
  edad: "Edad en años"
value_labels:
  sexo:
    1: Hombre
    "2": Mujer
    NS: No sabe
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)

	name, ok := f.RenameFor("grupo_datos/p1")
	require.True(t, ok)
	assert.Equal(t, "edad", name)

	assert.True(t, f.IsDropped("start"))
	assert.False(t, f.IsDropped("edad"))
	assert.Len(t, f.DropSet(), 2)

	label, ok := f.LabelFor("edad")
	require.True(t, ok)
	assert.Equal(t, "Edad en años", label)

	set := f.ValueLabelSet("sexo")
	require.NotNil(t, set)
	require.Equal(t, 3, set.Len())

	entries := set.Entries()
	assert.Equal(t, "Hombre", entries[0].Label)
	assert.Equal(t, "Mujer", entries[1].Label)
	assert.Equal(t, "No sabe", entries[2].Label)
	assert.True(t, entries[0].Code.IsNumeric())
	assert.False(t, entries[2].Code.IsNumeric())

	assert.Nil(t, f.ValueLabelSet("edad"))
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("labels:\n  edad: Edad\n"))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)
	assert.Nil(t, f.DropSet())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("labels: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse override YAML")
}

func TestNilFile(t *testing.T) {
	var f *File

	_, ok := f.RenameFor("x")
	assert.False(t, ok)
	assert.False(t, f.IsDropped("x"))
	assert.Nil(t, f.DropSet())

	_, ok = f.LabelFor("x")
	assert.False(t, ok)
	assert.Nil(t, f.ValueLabelSet("x"))
}

func TestWriteFileAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.yaml")

	f := &File{
		Version: CurrentVersion,
		Labels:  map[string]string{"edad": "Edad en años"},
		ValueLabels: map[string]map[string]string{
			"sexo": {"1": "Hombre", "2": "Mujer"},
		},
		Drop: []string{"start"},
	}

	require.NoError(t, WriteFile(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Edad en años")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read override file")
}
