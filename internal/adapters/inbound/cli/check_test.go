package cli_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakebuild/bakecheck/internal/adapters/inbound/cli"
	"github.com/bakebuild/bakecheck/internal/domain"
)

var projectRoot = filepath.Join("..", "..", "..", "..")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCheckCommand_AllFixturesPass(t *testing.T) {
	out, err := execute(t, "check", "--path", projectRoot)
	require.NoError(t, err)
	assert.Contains(t, out, "=== Project Configuration (bake.yml) ===")
	assert.Contains(t, out, "=== Recipe Template (test-template.yml) ===")
	assert.Contains(t, out, "Passed: 4/4")
	assert.Contains(t, out, "All schema validations passed!")
}

func TestCheckCommand_JSON(t *testing.T) {
	out, err := execute(t, "check", "--path", projectRoot, "--json")
	require.NoError(t, err)

	var summary domain.SuiteSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary), "output should be valid JSON")
	assert.Equal(t, 4, summary.Passed)
	assert.Equal(t, 4, summary.Total)
	require.Len(t, summary.Results, 4)
	assert.Equal(t, domain.OutcomePass, summary.Results[0].Outcome)
}

func TestCheckCommand_MissingSchemaDirFailsWithExitError(t *testing.T) {
	out, err := execute(t, "check",
		"--path", projectRoot,
		"--schemas", filepath.Join(projectRoot, "no-such-dir"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 of 4 checks failed")
	assert.Contains(t, out, "Schema Missing")
	assert.Contains(t, out, "Passed: 0/4")
}

func TestValidateCommand_Pass(t *testing.T) {
	out, err := execute(t, "validate",
		filepath.Join(projectRoot, "schemas", "cookbook.schema.json"),
		filepath.Join(projectRoot, "resources", "tests", "valid", "foo", "cookbook.yml"),
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Passed: 1/1")
}

func TestValidateCommand_FailReportsFirstViolation(t *testing.T) {
	out, err := execute(t, "validate",
		filepath.Join(projectRoot, "schemas", "bake-project.schema.json"),
		filepath.Join(projectRoot, "resources", "tests", "invalid", "bake.yml"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 checks failed")
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "Path:  document root")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bakecheck")
}
