package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survey-labeler/internal/mapping"
	"survey-labeler/internal/syntax"
)

const testSyntax = `* Etiquetas de la encuesta.
VARIABLE LABELS /edad 'Edad en años' /sexo 'Sexo'.
VALUE LABELS /sexo 1 'Hombre' 2 'Mujer'.
`

// execute runs the root command and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeInputs(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	syntaxPath := filepath.Join(dir, "labels.sps")
	datasetPath := filepath.Join(dir, "export.csv")

	require.NoError(t, os.WriteFile(syntaxPath, []byte(testSyntax), 0o600))
	require.NoError(t, os.WriteFile(datasetPath, []byte("start;datos/edad;sexo;ciudad\n1;2;3;4\n"), 0o600))

	return syntaxPath, datasetPath
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "survey-labeler version 0.1.0 (build: dev)\n", out)
}

func TestParseCommand(t *testing.T) {
	syntaxPath, _ := writeInputs(t)

	out, _, err := execute(t, "parse", syntaxPath)
	require.NoError(t, err)

	var doc struct {
		VariableLabels map[string]string `json:"variable_labels"`
		Variables      []string          `json:"variables"`
	}

	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Edad en años", doc.VariableLabels["edad"])
	assert.Equal(t, []string{"edad", "sexo"}, doc.Variables)
}

func TestParseCommand_MissingFile(t *testing.T) {
	_, _, err := execute(t, "parse", filepath.Join(t.TempDir(), "missing.sps"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read syntax file")
}

func TestReconcileCommand(t *testing.T) {
	syntaxPath, datasetPath := writeInputs(t)
	dir := t.TempDir()
	metadataPath := filepath.Join(dir, "metadata.json")
	manifestPath := filepath.Join(dir, "labels.yaml")

	out, logs, err := execute(t, "reconcile", syntaxPath, datasetPath,
		"--metadata", metadataPath, "--manifest", manifestPath)
	require.NoError(t, err)

	assert.Contains(t, out, "4 columns: 2 labeled, 2 not found, 1 with value labels")
	assert.Regexp(t, `ciudad\s+ciudad\s+not found`, out)
	assert.Contains(t, logs, "label_not_found")

	data, err := os.ReadFile(metadataPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"datos/edad": "edad"`)

	manifest, err := mapping.LoadFile(manifestPath)
	require.NoError(t, err)
	assert.Equal(t, "Edad en años", manifest.Labels["edad"])
	assert.Equal(t, "start", manifest.Labels["start"])
}

func TestReconcileCommand_Overrides(t *testing.T) {
	syntaxPath, datasetPath := writeInputs(t)

	overrides := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(overrides, []byte(`
version: "1"
drop: [start]
labels:
  ciudad: Ciudad de residencia
`), 0o600))

	out, _, err := execute(t, "reconcile", syntaxPath, datasetPath, "--overrides", overrides, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "3 columns: 3 labeled, 0 not found, 1 with value labels")
	assert.NotContains(t, out, "start")
}

func TestReconcileCommand_InvalidOverrides(t *testing.T) {
	syntaxPath, datasetPath := writeInputs(t)

	overrides := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(overrides, []byte("version: \"9\"\n"), 0o600))

	_, _, err := execute(t, "reconcile", syntaxPath, datasetPath, "--overrides", overrides)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported_version")
}

func TestSyntaxCommand(t *testing.T) {
	syntaxPath, datasetPath := writeInputs(t)
	outPath := filepath.Join(t.TempDir(), "out.sps")

	_, _, err := execute(t, "syntax", syntaxPath, datasetPath, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), syntax.Header))

	doc := syntax.Parse(string(data))
	assert.Equal(t, syntax.VariableLabels{
		"start":  "start",
		"edad":   "Edad en años",
		"sexo":   "Sexo",
		"ciudad": "ciudad",
	}, doc.VariableLabels)
	assert.Equal(t, []string{"start", "edad", "sexo", "ciudad"}, doc.Variables)
}

func TestDictionaryCommand(t *testing.T) {
	syntaxPath, datasetPath := writeInputs(t)

	out, _, err := execute(t, "dictionary", syntaxPath, datasetPath)
	require.NoError(t, err)
	assert.Equal(t, "variable,code,label\nsexo,1,Hombre\nsexo,2,Mujer\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "version", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("match:\n  suggestion_threshold: 2\n"), 0o600))

	_, _, err := execute(t, "version", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "match.suggestion_threshold")
}
