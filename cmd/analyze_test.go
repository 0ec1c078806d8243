package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/finhealth/internal/model"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfileDocsSingleJSON(t *testing.T) {
	path := writeTempFile(t, "profile.json", `{"age": 28, "salary": 1200000}`)

	docs, single, err := loadProfileDocs(path)
	require.NoError(t, err)
	assert.True(t, single)
	require.Len(t, docs, 1)
	assert.JSONEq(t, `{"age": 28, "salary": 1200000}`, string(docs[0]))
}

func TestLoadProfileDocsJSONArray(t *testing.T) {
	path := writeTempFile(t, "profiles.json", `[{"age": 28}, {"age": 45}]`)

	docs, single, err := loadProfileDocs(path)
	require.NoError(t, err)
	assert.False(t, single)
	assert.Len(t, docs, 2)
}

func TestLoadProfileDocsYAML(t *testing.T) {
	content := `
- age: 28
  salary: 1200000
  insurance: Health
- age: 52
  salary: 800000
  insurance: None
`
	path := writeTempFile(t, "profiles.yaml", content)

	docs, single, err := loadProfileDocs(path)
	require.NoError(t, err)
	assert.False(t, single)
	require.Len(t, docs, 2)

	// YAML converts cleanly into the shared JSON decode path.
	var partial struct {
		Age       int                     `json:"age"`
		Insurance model.InsuranceCoverage `json:"insurance"`
	}
	require.NoError(t, json.Unmarshal(docs[0], &partial))
	assert.Equal(t, 28, partial.Age)
	assert.Equal(t, model.InsuranceHealth, partial.Insurance)
}

func TestLoadProfileDocsSingleYAML(t *testing.T) {
	path := writeTempFile(t, "profile.yml", "age: 30\nsalary: 900000\n")

	docs, single, err := loadProfileDocs(path)
	require.NoError(t, err)
	assert.True(t, single)
	assert.Len(t, docs, 1)
}

func TestLoadProfileDocsErrors(t *testing.T) {
	_, _, err := loadProfileDocs(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeTempFile(t, "bad.json", `"just a string"`)
	_, _, err = loadProfileDocs(path)
	assert.Error(t, err)
}
