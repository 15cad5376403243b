package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cppgm/styletools/internal/adapters/outbound/config"
	"github.com/cppgm/styletools/internal/domain"
)

const formattersURI = "styletools://formatters"

// registerResources registers the styletools MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			formattersURI,
			"Formatters",
			mcplib.WithResourceDescription("Formatter binaries and the extension table used to plan commands"),
			mcplib.WithMIMEType("application/json"),
		),
		handleFormattersResource(projectPath),
	)
}

type formatterTable struct {
	TargetPrefix string                          `json:"target_prefix"`
	Formatters   map[domain.FormatterKind]string `json:"formatters"`
	Extensions   map[string]domain.FormatterKind `json:"extensions"`
}

func handleFormattersResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(filepath.Join(projectPath, config.FileName))
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		opts := cfg.PlanOptions(false)
		table := formatterTable{
			TargetPrefix: opts.TargetPrefix,
			Formatters:   make(map[domain.FormatterKind]string, len(opts.Formatters)),
			Extensions:   opts.Rules,
		}
		for kind, f := range opts.Formatters {
			table.Formatters[kind] = f.Binary
		}

		data, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling formatters: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      formattersURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
