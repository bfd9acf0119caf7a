package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bakebuild/bakecheck/internal/adapters/outbound/document"
	"github.com/bakebuild/bakecheck/internal/adapters/outbound/gitinfo"
	"github.com/bakebuild/bakecheck/internal/adapters/outbound/schema"
	"github.com/bakebuild/bakecheck/internal/adapters/outbound/tui"
	"github.com/bakebuild/bakecheck/internal/application"
	"github.com/bakebuild/bakecheck/internal/domain"
)

func newCheckCmd() *cobra.Command {
	var (
		jsonOutput bool
		path       string
		schemasDir string
		resources  string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the bake configuration schema validation suite",
		Long:  "Validate the project manifest, cookbook and recipe template fixtures against their JSON Schemas and report a pass/fail summary.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if schemasDir == "" {
				schemasDir = filepath.Join(path, "schemas")
			}
			if resources == "" {
				resources = filepath.Join(path, "resources", "tests", "valid")
			}

			checks := domain.DefaultSuite(schemasDir, resources)
			return runSuite(cmd, path, checks, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&path, "path", ".", "Project root containing schemas/ and resources/")
	cmd.Flags().StringVar(&schemasDir, "schemas", "", "Schema directory (defaults to <path>/schemas)")
	cmd.Flags().StringVar(&resources, "resources", "", "Fixture directory (defaults to <path>/resources/tests/valid)")

	return cmd
}

// runSuite drives the suite service and rendering shared by the check
// and validate commands. A non-nil error signals the non-zero exit.
func runSuite(cmd *cobra.Command, projectPath string, checks []domain.Check, jsonOutput bool) error {
	svc := application.NewSuiteService(schema.New(), document.New())
	summary := svc.Run(checks)

	if jsonOutput {
		if err := renderSummaryJSON(cmd, summary); err != nil {
			return err
		}
	} else {
		repo, hasRepo := gitinfo.New().Describe(projectPath)
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderSuite(summary, repo, hasRepo))
	}

	if !summary.AllPassed() {
		return fmt.Errorf("%d of %d checks failed", summary.Total-summary.Passed, summary.Total)
	}
	return nil
}

func renderSummaryJSON(cmd *cobra.Command, summary *domain.SuiteSummary) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
