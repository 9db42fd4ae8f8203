// Package prompts implements the MCP prompt handlers.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"umx/internal/flow"
)

// StartPrompt handles the umx-start MCP prompt. It walks the user through
// the routed doc flow: traditional docs first, direct generation, or an
// automatic recommendation.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("umx-start",
		mcp.WithPromptDescription(
			"Start a doc-pack run for a project. Walks through the route choice "+
				"(traditional docs first, or straight to the combo-driven pack), the "+
				"combo recommendation, and generation.",
		),
		mcp.WithArgument("input",
			mcp.ArgumentDescription("Path to the requirements file (JSON or YAML)"),
		),
	)
}

// Handle processes the umx-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	input := "./requirements.json"
	if args := req.Params.Arguments; args != nil {
		if path, ok := args["input"]; ok && path != "" {
			input = path
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Start a doc-pack run for %s", input),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to generate the project doc pack from '%s'.\n\n"+
						"Please:\n"+
						"1. Show me the entry questions below and collect my answers\n"+
						"2. If I want a recommendation first, run `umx_recommend` with input='%s' and walk me through the report\n"+
						"3. When I accept (or answer directly), run `umx_flow` with input='%s' and the route, docs, combo, and mode I chose\n"+
						"4. Summarize what was generated and where\n\n"+
						"%s",
					input, input, input, flow.AskText(),
				)),
			},
		},
	}, nil
}
