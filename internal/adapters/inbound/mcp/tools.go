package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bakebuild/bakecheck/internal/adapters/outbound/document"
	"github.com/bakebuild/bakecheck/internal/adapters/outbound/schema"
	"github.com/bakebuild/bakecheck/internal/application"
	"github.com/bakebuild/bakecheck/internal/domain"
)

// registerTools registers the bakecheck MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. bakecheck_run_suite
	s.AddTool(
		mcplib.NewTool("bakecheck_run_suite",
			mcplib.WithDescription("Run the full bake configuration schema validation suite and return the summary as JSON"),
		),
		handleRunSuite(projectPath),
	)

	// 2. bakecheck_validate_file
	s.AddTool(
		mcplib.NewTool("bakecheck_validate_file",
			mcplib.WithDescription("Validate a single configuration file against one of the shipped schemas"),
			mcplib.WithString("schema",
				mcplib.Required(),
				mcplib.Description("Schema name (bake-project, cookbook or recipe-template) or a path to a schema file"),
			),
			mcplib.WithString("document",
				mcplib.Required(),
				mcplib.Description("Path to the configuration file, relative to the project root"),
			),
		),
		handleValidateFile(projectPath),
	)
}

func newSuiteService() *application.SuiteService {
	return application.NewSuiteService(schema.New(), document.New())
}

func handleRunSuite(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		checks := domain.DefaultSuite(
			filepath.Join(projectPath, "schemas"),
			filepath.Join(projectPath, "resources", "tests", "valid"),
		)
		summary := newSuiteService().Run(checks)
		return jsonResult(summary)
	}
}

func handleValidateFile(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		schemaArg, err := request.RequireString("schema")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		documentArg, err := request.RequireString("document")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		check := domain.Check{
			Description:  filepath.Base(documentArg),
			SchemaPath:   resolveSchemaPath(projectPath, schemaArg),
			DocumentPath: filepath.Join(projectPath, documentArg),
		}
		summary := newSuiteService().Run([]domain.Check{check})
		return jsonResult(summary.Results[0])
	}
}

// resolveSchemaPath accepts either a bare schema name like "cookbook"
// or an explicit file path.
func resolveSchemaPath(projectPath, name string) string {
	if filepath.Ext(name) == ".json" {
		return filepath.Join(projectPath, name)
	}
	return filepath.Join(projectPath, "schemas", name+".schema.json")
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
