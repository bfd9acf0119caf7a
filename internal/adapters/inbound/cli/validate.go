package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bakebuild/bakecheck/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate <schema> <document>",
		Short: "Validate a single document against a schema",
		Long:  "Validate one configuration file against one JSON Schema, with the same reporting and exit policy as the full suite.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaPath, documentPath := args[0], args[1]
			checks := []domain.Check{{
				Description:  filepath.Base(documentPath),
				SchemaPath:   schemaPath,
				DocumentPath: documentPath,
			}}
			return runSuite(cmd, filepath.Dir(documentPath), checks, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
