package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with a config path that does not exist,
// so every run starts from the defaults.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	cfg := filepath.Join(t.TempDir(), "calk.json")
	rootCmd.SetArgs(append([]string{"--config", cfg, "--no-color"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestElectricityJSON(t *testing.T) {
	out, err := execute(t, "electricity", "--category", "general", "--consumption", "1000", "--format", "json")
	require.NoError(t, err, out)

	var report struct {
		Calculator string `json:"calculator"`
		Total      string `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "electricity", report.Calculator)
	assert.Equal(t, "1187", report.Total)
}

func TestCalculatorInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salary.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"gross": 50000, "htp": false}`), 0644))

	out, err := execute(t, "salary", "--input", path, "--format", "json")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"calculator": "salary"`)
}

func TestCalculatorErrors(t *testing.T) {
	_, err := execute(t, "tourist-fee", "--city", "atlantis", "--format", "cli")
	assert.Error(t, err)

	_, err = execute(t, "gas", "--consumption", "ten", "--format", "cli")
	assert.Error(t, err)

	_, err = execute(t, "social-fund", "--gross", "100", "--format", "yaml")
	assert.Error(t, err)
}

func TestTariffsValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.hcl")
	require.NoError(t, os.WriteFile(good, []byte("gas \"residential\" {\n  rate = 15.20\n}\n"), 0644))
	bad := filepath.Join(dir, "bad.hcl")
	require.NoError(t, os.WriteFile(bad, []byte("electricity \"general\" {\n  limit = 700\n  rates = [0.77]\n}\n"), 0644))

	out, err := execute(t, "tariffs", "validate", good)
	require.NoError(t, err, out)
	assert.Contains(t, out, "1 overrides")

	_, err = execute(t, "tariffs", "validate", bad)
	assert.Error(t, err)
}

func TestGenerateStaticMissingTemplate(t *testing.T) {
	_, err := execute(t, "generate-static", "--dist", filepath.Join(t.TempDir(), "dist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index.html not found")
}

func TestCatalogJSON(t *testing.T) {
	out, err := execute(t, "catalog", "--format", "json")
	require.NoError(t, err, out)

	var pages []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &pages))
	assert.Len(t, pages, 36)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "calk version "+Version+"\n", out)
}
