package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cppgm/styletools/internal/adapters/outbound/config"
	"github.com/cppgm/styletools/internal/adapters/outbound/diffparser"
	"github.com/cppgm/styletools/internal/adapters/outbound/linediff"
	"github.com/cppgm/styletools/internal/application"
	"github.com/cppgm/styletools/internal/domain"
)

// registerTools registers the styletools MCP tools on the given server.
// Neither tool runs a subprocess.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("plan_format_commands",
			mcplib.WithDescription("Turn a unified diff into clang-format/yapf invocations, one per formattable file"),
			mcplib.WithString("diff",
				mcplib.Required(),
				mcplib.Description("Unified diff text, e.g. the output of git show or git diff"),
			),
			mcplib.WithBoolean("modified_only", mcplib.Description("Restrict each command to the changed line ranges")),
		),
		handlePlan(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("compare_token_streams",
			mcplib.WithDescription("Compare two tokenizer outputs, ignoring whitespace-sequence tokens and new-line token values"),
			mcplib.WithString("from", mcplib.Required(), mcplib.Description("Expected tokenizer output")),
			mcplib.WithString("to", mcplib.Required(), mcplib.Description("Actual tokenizer output")),
		),
		handleCompare(),
	)
}

type planResult struct {
	Commands []domain.FormatCommand `json:"commands"`
	Lines    []string               `json:"lines"`
	Skipped  []domain.SkippedPatch  `json:"skipped,omitempty"`
}

func handlePlan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		diffText, err := request.RequireString("diff")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		modifiedOnly, _ := request.GetArguments()["modified_only"].(bool)

		cfg, err := config.New().Load(filepath.Join(projectPath, config.FileName))
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}

		svc := application.NewPlanService(diffparser.New(), nil, nil)
		plan, err := svc.Plan(diffText, cfg.PlanOptions(modifiedOnly))
		if err != nil {
			return errorResult(fmt.Sprintf("planning failed: %v", err)), nil
		}
		return jsonResult(planResult{Commands: plan.Commands, Lines: plan.Lines(), Skipped: plan.Skipped})
	}
}

func handleCompare() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		from, err := request.RequireString("from")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		to, err := request.RequireString("to")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		fromLines, err := application.ReadLines(strings.NewReader(from))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		toLines, err := application.ReadLines(strings.NewReader(to))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewCompareService(linediff.New())
		cmp := svc.Compare(
			domain.TokenStream{Name: "from", Lines: fromLines},
			domain.TokenStream{Name: "to", Lines: toLines},
		)
		return jsonResult(cmp)
	}
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
