package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"umx/internal/config"
	"umx/internal/flow"
)

// GenerateTool handles the umx_generate MCP tool: the full pipeline from
// requirements file to doc pack on disk.
type GenerateTool struct {
	gen *flow.Generator
	cfg *config.Config
}

// NewGenerateTool creates a GenerateTool with its dependencies.
func NewGenerateTool(gen *flow.Generator, cfg *config.Config) *GenerateTool {
	return &GenerateTool{gen: gen, cfg: cfg}
}

// Definition returns the MCP tool definition for registration.
func (t *GenerateTool) Definition() mcp.Tool {
	return mcp.NewTool("umx_generate",
		mcp.WithDescription(
			"Generate the project doc pack from a requirements file. Runs the "+
				"quality gate, scores the six combos, classifies complexity, resolves "+
				"the doc mode, and writes the planned documents plus the selection "+
				"report under the output root. Single-file mode writes one "+
				"self-contained pack instead.",
		),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("Path to the requirements file (JSON, or YAML by extension)."),
		),
		mcp.WithString("output",
			mcp.Description("Output directory root. Default: the configured UMX_OUTPUT."),
		),
		mcp.WithString("combo",
			mcp.Description("Force the primary combo: c1..c6. Default: auto."),
		),
		mcp.WithString("mode",
			mcp.Description("Force the doc mode: minimal, standard, full, or single-file. Default: auto."),
		),
		mcp.WithString("project_slug",
			mcp.Description("Override the output folder slug derived from the project name."),
		),
		mcp.WithBoolean("flat",
			mcp.Description("Write files directly into the output root without a slug folder."),
		),
		mcp.WithBoolean("print_only",
			mcp.Description("Plan and return the report without writing files."),
		),
		mcp.WithBoolean("allow_placeholder",
			mcp.Description("Bypass the input quality gate for draft requirements."),
		),
	)
}

// Handle processes the umx_generate tool call.
func (t *GenerateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.gen.Generate(flow.GenerateOptions{
		InputPath:        req.GetString("input", ""),
		OutputRoot:       req.GetString("output", t.cfg.OutputRoot),
		FallbackRoot:     t.cfg.FallbackRoot,
		Combo:            req.GetString("combo", "auto"),
		Mode:             req.GetString("mode", "auto"),
		ProjectSlug:      req.GetString("project_slug", ""),
		Flat:             req.GetBool("flat", false),
		PrintOnly:        req.GetBool("print_only", false),
		AllowPlaceholder: req.GetBool("allow_placeholder", false),
	})
	if err != nil {
		return toolError(err)
	}

	if result.Root == "" {
		return mcp.NewToolResultText(result.Report), nil
	}
	return mcp.NewToolResultText(joinLines(result.Summary())), nil
}
