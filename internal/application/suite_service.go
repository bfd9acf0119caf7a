package application

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/bakebuild/bakecheck/internal/domain"
)

// SuiteService runs an ordered list of schema checks and aggregates the
// outcomes. Checks are independent: every failure mode is recorded on
// its own CheckResult and the suite always runs to completion.
type SuiteService struct {
	schemas   domain.SchemaLoader
	documents domain.DocumentLoader
}

// NewSuiteService creates a SuiteService with the given loaders.
func NewSuiteService(schemas domain.SchemaLoader, documents domain.DocumentLoader) *SuiteService {
	return &SuiteService{schemas: schemas, documents: documents}
}

// Run evaluates each check in list order and returns the summary.
// Nothing propagates past this method; an empty check list yields a
// vacuously all-pass summary.
func (s *SuiteService) Run(checks []domain.Check) *domain.SuiteSummary {
	results := make([]domain.CheckResult, 0, len(checks))
	for _, check := range checks {
		results = append(results, s.runCheck(check))
	}
	return domain.NewSuiteSummary(results)
}

// runCheck evaluates a single check. The recover boundary converts any
// panic below the loaders or the validation engine into a generic
// failure outcome so one broken check cannot take the suite down.
func (s *SuiteService) runCheck(check domain.Check) (result domain.CheckResult) {
	result = domain.CheckResult{Check: check}

	defer func() {
		if r := recover(); r != nil {
			result.Outcome = domain.OutcomeError
			result.Detail = fmt.Sprintf("unexpected error: %v", r)
		}
	}()

	schema, err := s.schemas.Load(check.SchemaPath)
	if err != nil {
		result.Outcome = classifyLoadError(err, domain.OutcomeSchemaMissing)
		result.Detail = err.Error()
		return result
	}

	doc, err := s.documents.Load(check.DocumentPath)
	if err != nil {
		result.Outcome = classifyLoadError(err, domain.OutcomeDocumentMissing)
		result.Detail = err.Error()
		return result
	}

	violations, err := schema.Validate(doc)
	if err != nil {
		result.Outcome = domain.OutcomeError
		result.Detail = fmt.Sprintf("validating %s: %v", check.DocumentPath, err)
		return result
	}

	if len(violations) > 0 {
		result.Outcome = domain.OutcomeFail
		result.Violations = violations
		return result
	}

	result.Outcome = domain.OutcomePass
	return result
}

// classifyLoadError maps a loader error to the missing-resource outcome
// when the file did not exist, and to LoadError otherwise.
func classifyLoadError(err error, missing domain.Outcome) domain.Outcome {
	if errors.Is(err, fs.ErrNotExist) {
		return missing
	}
	return domain.OutcomeLoadError
}
