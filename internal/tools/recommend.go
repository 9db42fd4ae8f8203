package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"umx/internal/flow"
)

// RecommendTool handles the umx_recommend MCP tool: it runs the decision
// engine on a requirements file and returns the selection report without
// writing anything.
type RecommendTool struct {
	gen *flow.Generator
}

// NewRecommendTool creates a RecommendTool with its dependencies.
func NewRecommendTool(gen *flow.Generator) *RecommendTool {
	return &RecommendTool{gen: gen}
}

// Definition returns the MCP tool definition for registration.
func (t *RecommendTool) Definition() mcp.Tool {
	return mcp.NewTool("umx_recommend",
		mcp.WithDescription(
			"Score the six delivery combos against a requirements file and return "+
				"the selection report: per-combo scores, the recommended primary and "+
				"secondary combo, the complexity tier, and the planned document manifest. "+
				"Nothing is written to disk — use umx_generate to emit the pack.",
		),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("Path to the requirements file (JSON, or YAML by extension)."),
		),
		mcp.WithString("mode",
			mcp.Description("Force the doc mode: minimal, standard, full, or single-file. Default: auto."),
		),
		mcp.WithBoolean("allow_placeholder",
			mcp.Description("Bypass the input quality gate for draft requirements."),
		),
	)
}

// Handle processes the umx_recommend tool call.
func (t *RecommendTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.gen.Generate(flow.GenerateOptions{
		InputPath:        req.GetString("input", ""),
		Mode:             req.GetString("mode", "auto"),
		PrintOnly:        true,
		AllowPlaceholder: req.GetBool("allow_placeholder", false),
	})
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Report), nil
}
