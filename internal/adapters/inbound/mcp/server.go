package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewBakecheckMCPServer creates a new MCP server with the bakecheck
// tools registered. The projectPath is the root directory containing
// the schemas/ and resources/ trees.
func NewBakecheckMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"bakecheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
