package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"umx/internal/config"
	"umx/internal/flow"
)

// FlowTool handles the umx_flow MCP tool: the routed entry that can ask,
// recommend, write traditional docs first, or generate directly.
type FlowTool struct {
	gen *flow.Generator
	cfg *config.Config
}

// NewFlowTool creates a FlowTool with its dependencies.
func NewFlowTool(gen *flow.Generator, cfg *config.Config) *FlowTool {
	return &FlowTool{gen: gen, cfg: cfg}
}

// Definition returns the MCP tool definition for registration.
func (t *FlowTool) Definition() mcp.Tool {
	return mcp.NewTool("umx_flow",
		mcp.WithDescription(
			"Run the routed doc flow. Routes: ask (returns the interactive entry "+
				"text), traditional-first (writes the selected traditional documents "+
				"before the doc pack), direct (doc pack only). A chat-style command "+
				"like '/umx direct --combo auto --mode single-file' or an acceptance "+
				"phrase overrides the other arguments.",
		),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("Path to the requirements file (JSON, or YAML by extension)."),
		),
		mcp.WithString("path",
			mcp.Description("Route: ask, traditional-first, or direct. Default: ask."),
		),
		mcp.WithString("command",
			mcp.Description("Raw command overriding the other arguments, e.g. '/umx traditional --docs prd,api'."),
		),
		mcp.WithString("output",
			mcp.Description("Output directory root. Default: the configured UMX_OUTPUT."),
		),
		mcp.WithString("traditional_docs",
			mcp.Description("Comma list of traditional docs: prd, architecture, api, database (aliases accepted)."),
		),
		mcp.WithString("combo",
			mcp.Description("Force the primary combo: c1..c6. Default: auto."),
		),
		mcp.WithString("mode",
			mcp.Description("Force the doc mode: minimal, standard, full, or single-file. Default: single-file."),
		),
		mcp.WithBoolean("print_only",
			mcp.Description("Plan and return the report without writing files."),
		),
		mcp.WithBoolean("allow_placeholder",
			mcp.Description("Bypass the input quality gate for draft requirements."),
		),
	)
}

// Handle processes the umx_flow tool call.
func (t *FlowTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.gen.Run(flow.FlowOptions{
		InputPath:        req.GetString("input", ""),
		OutputRoot:       req.GetString("output", t.cfg.OutputRoot),
		FallbackRoot:     t.cfg.FallbackRoot,
		Path:             req.GetString("path", ""),
		Combo:            req.GetString("combo", "auto"),
		Mode:             req.GetString("mode", "single-file"),
		TraditionalDocs:  req.GetString("traditional_docs", ""),
		Command:          req.GetString("command", ""),
		PrintOnly:        req.GetBool("print_only", false),
		AllowPlaceholder: req.GetBool("allow_placeholder", false),
	})
	if err != nil {
		return toolError(err)
	}

	switch {
	case result.Ask != "":
		return mcp.NewToolResultText(result.Ask), nil
	case result.Root == "":
		return mcp.NewToolResultText(result.Report), nil
	default:
		return mcp.NewToolResultText(joinLines(result.Summary())), nil
	}
}
