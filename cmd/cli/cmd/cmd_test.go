package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goalerrors "goalgraph/internal/errors"
)

const validGoals = `
goal "emergency" {
  title    = "Emergency fund"
  category = "emergency_fund"
  priority = "essential"
  target_amount = "5000"
}

goal "house" {
  title    = "House deposit"
  category = "home"
  priority = "important"
  target_amount = "40000"
}

dependency {
  source = "emergency"
  target = "house"
  type   = "sequential"
}
`

const cyclicGoals = `
goal "a" {
  title    = "A"
  category = "other"
  priority = "essential"
}

goal "b" {
  title    = "B"
  category = "other"
  priority = "essential"
}

dependency {
  source = "a"
  target = "b"
  type   = "sequential"
}

dependency {
  source = "b"
  target = "a"
  type   = "sequential"
}
`

// execute runs the root command with fresh flag state and an isolated config
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	outputFormat, strict, noColor, forceInit, verbose = "", false, false, false, false
	cfgFile = ""

	full := append([]string{"--config", filepath.Join(t.TempDir(), "config.json")}, args...)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(full)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeGoals(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goals.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "goalgraph version "+Version+"\n", out)
}

func TestValidateCLI(t *testing.T) {
	out, err := execute(t, "validate", "--no-color", writeGoals(t, validGoals))
	require.NoError(t, err)

	assert.Contains(t, out, "✓ No issues found")
	assert.Contains(t, out, "emergency → house")
}

func TestValidateJSON(t *testing.T) {
	path := writeGoals(t, validGoals)
	out, err := execute(t, "validate", "--format", "json", path)
	require.NoError(t, err)

	var doc struct {
		Metadata struct {
			RunID   string   `json:"run_id"`
			Sources []string `json:"sources"`
		} `json:"metadata"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.NotEmpty(t, doc.Metadata.RunID)
	assert.Equal(t, []string{path}, doc.Metadata.Sources)
	assert.Equal(t, "acceptable", doc.Status)
}

func TestValidateStrict(t *testing.T) {
	path := writeGoals(t, cyclicGoals)

	out, err := execute(t, "validate", "--no-color", path)
	require.NoError(t, err)
	assert.Contains(t, out, "circular dependency")

	_, err = execute(t, "validate", "--no-color", "--strict", path)
	require.Error(t, err)
	assert.True(t, goalerrors.IsType(err, goalerrors.TypeValidation))
}

func TestValidateUnknownFormat(t *testing.T) {
	_, err := execute(t, "validate", "--format", "html", writeGoals(t, validGoals))
	assert.True(t, goalerrors.IsType(err, goalerrors.TypeNotSupported))
}

func TestValidateMissingPath(t *testing.T) {
	_, err := execute(t, "validate", filepath.Join(t.TempDir(), "missing.hcl"))
	assert.True(t, goalerrors.IsType(err, goalerrors.TypeNotFound))
}

func TestPlan(t *testing.T) {
	out, err := execute(t, "plan", "--no-color", writeGoals(t, validGoals))
	require.NoError(t, err)

	assert.Contains(t, out, "Critical Path")
	assert.Contains(t, out, "45000.00 USD")
	assert.NotContains(t, out, "No issues found")

	out, err = execute(t, "plan", "--no-color", writeGoals(t, cyclicGoals))
	require.NoError(t, err)
	assert.Contains(t, out, "no plan can be computed")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goalgraph.json")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, err = execute(t, "--config", path, "config", "init")
	assert.True(t, goalerrors.IsType(err, goalerrors.TypeConfig))

	_, err = execute(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)
}
