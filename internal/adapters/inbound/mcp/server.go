package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewStyleToolsMCPServer creates an MCP server with the styletools tools and
// resources registered. projectPath is where .styletools.yaml is looked up.
func NewStyleToolsMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"styletools",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
