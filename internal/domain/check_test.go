package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/bakebuild/bakecheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuiteSummary_CountsPassedChecks(t *testing.T) {
	summary := domain.NewSuiteSummary([]domain.CheckResult{
		{Outcome: domain.OutcomePass},
		{Outcome: domain.OutcomeFail},
		{Outcome: domain.OutcomePass},
		{Outcome: domain.OutcomeSchemaMissing},
	})
	assert.Equal(t, 2, summary.Passed)
	assert.Equal(t, 4, summary.Total)
	assert.False(t, summary.AllPassed())
}

func TestNewSuiteSummary_EmptySuiteIsVacuouslyAllPass(t *testing.T) {
	summary := domain.NewSuiteSummary(nil)
	assert.Equal(t, 0, summary.Passed)
	assert.Equal(t, 0, summary.Total)
	assert.True(t, summary.AllPassed())
}

func TestCheckResult_Passed(t *testing.T) {
	tests := []struct {
		outcome domain.Outcome
		passed  bool
	}{
		{domain.OutcomePass, true},
		{domain.OutcomeFail, false},
		{domain.OutcomeSchemaMissing, false},
		{domain.OutcomeDocumentMissing, false},
		{domain.OutcomeLoadError, false},
		{domain.OutcomeError, false},
	}
	for _, tt := range tests {
		r := domain.CheckResult{Outcome: tt.outcome}
		assert.Equal(t, tt.passed, r.Passed(), "outcome %s", tt.outcome)
	}
}

func TestCheckResult_FirstViolation(t *testing.T) {
	r := domain.CheckResult{
		Outcome: domain.OutcomeFail,
		Violations: []domain.Violation{
			{Message: "first"},
			{Message: "second"},
		},
	}
	assert.Equal(t, "first", r.FirstViolation().Message)

	empty := domain.CheckResult{Outcome: domain.OutcomePass}
	assert.Empty(t, empty.FirstViolation().Message)
}

func TestDefaultSuite_FourChecksInReportOrder(t *testing.T) {
	checks := domain.DefaultSuite("schemas", filepath.Join("resources", "tests", "valid"))
	require.Len(t, checks, 4)

	assert.Equal(t, "Project Configuration (bake.yml)", checks[0].Description)
	assert.Equal(t, filepath.Join("schemas", "bake-project.schema.json"), checks[0].SchemaPath)
	assert.Equal(t, filepath.Join("resources", "tests", "valid", "bake.yml"), checks[0].DocumentPath)

	assert.Equal(t, "Cookbook Configuration (foo/cookbook.yml)", checks[1].Description)
	assert.Equal(t, filepath.Join("schemas", "cookbook.schema.json"), checks[1].SchemaPath)

	// Both templates validate against the same schema.
	assert.Equal(t, checks[2].SchemaPath, checks[3].SchemaPath)
	assert.Contains(t, checks[2].DocumentPath, "build-template.yml")
	assert.Contains(t, checks[3].DocumentPath, "test-template.yml")
}
