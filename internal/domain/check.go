package domain

import "path/filepath"

// Outcome is the terminal state of a single check. A check passes only
// when validation ran to completion and produced zero violations; every
// other outcome records why it did not.
type Outcome string

const (
	OutcomePass            Outcome = "Pass"
	OutcomeFail            Outcome = "Fail"
	OutcomeSchemaMissing   Outcome = "SchemaMissing"
	OutcomeDocumentMissing Outcome = "DocumentMissing"
	OutcomeLoadError       Outcome = "LoadError"
	OutcomeError           Outcome = "Error"
)

// Check is one (schema, document, description) triple evaluated by the
// suite.
type Check struct {
	Description  string `json:"description"`
	SchemaPath   string `json:"schema_path"`
	DocumentPath string `json:"document_path"`
}

// CheckResult is the immutable record of one evaluated check.
// Violations is populated only for OutcomeFail; Detail carries the load
// or runtime error text for the non-validation failure outcomes.
type CheckResult struct {
	Check      Check       `json:"check"`
	Outcome    Outcome     `json:"outcome"`
	Violations []Violation `json:"violations,omitempty"`
	Detail     string      `json:"detail,omitempty"`
}

// Passed reports whether the check ran to completion without violations.
func (r CheckResult) Passed() bool { return r.Outcome == OutcomePass }

// FirstViolation returns the first violation in traversal order, or a
// zero Violation when there is none.
func (r CheckResult) FirstViolation() Violation {
	if len(r.Violations) == 0 {
		return Violation{}
	}
	return r.Violations[0]
}

// SuiteSummary aggregates the results of one suite invocation.
type SuiteSummary struct {
	Results []CheckResult `json:"results"`
	Passed  int           `json:"passed"`
	Total   int           `json:"total"`
}

// NewSuiteSummary counts passed checks over the ordered result list.
func NewSuiteSummary(results []CheckResult) *SuiteSummary {
	passed := 0
	for _, r := range results {
		if r.Passed() {
			passed++
		}
	}
	return &SuiteSummary{Results: results, Passed: passed, Total: len(results)}
}

// AllPassed reports whether every check passed. An empty suite is
// vacuously all-pass.
func (s *SuiteSummary) AllPassed() bool { return s.Passed == s.Total }

// DefaultSuite builds the standard bake configuration checks: the
// project manifest, the foo cookbook and the two recipe templates, in
// the order they are reported. The caller decides where schemas and
// test resources live; nothing here touches the filesystem.
func DefaultSuite(schemasDir, resourcesDir string) []Check {
	return []Check{
		{
			Description:  "Project Configuration (bake.yml)",
			SchemaPath:   filepath.Join(schemasDir, "bake-project.schema.json"),
			DocumentPath: filepath.Join(resourcesDir, "bake.yml"),
		},
		{
			Description:  "Cookbook Configuration (foo/cookbook.yml)",
			SchemaPath:   filepath.Join(schemasDir, "cookbook.schema.json"),
			DocumentPath: filepath.Join(resourcesDir, "foo", "cookbook.yml"),
		},
		{
			Description:  "Recipe Template (build-template.yml)",
			SchemaPath:   filepath.Join(schemasDir, "recipe-template.schema.json"),
			DocumentPath: filepath.Join(resourcesDir, ".bake", "templates", "build-template.yml"),
		},
		{
			Description:  "Recipe Template (test-template.yml)",
			SchemaPath:   filepath.Join(schemasDir, "recipe-template.schema.json"),
			DocumentPath: filepath.Join(resourcesDir, ".bake", "templates", "test-template.yml"),
		},
	}
}
