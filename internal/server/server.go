// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools and prompts that depend on abstractions.
// No business logic lives here — only wiring.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"umx/internal/config"
	"umx/internal/flow"
	"umx/internal/logging"
	"umx/internal/prompts"
	"umx/internal/templates"
	"umx/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools and prompts
// registered. This is the single place where dependencies are resolved.
func New(cfg *config.Config, log logging.Logger) (*server.MCPServer, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating template renderer: %w", err)
	}

	gen := flow.New(renderer, log)

	s := server.NewMCPServer(
		"umx",
		Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	recommendTool := tools.NewRecommendTool(gen)
	s.AddTool(recommendTool.Definition(), recommendTool.Handle)

	generateTool := tools.NewGenerateTool(gen, cfg)
	s.AddTool(generateTool.Definition(), generateTool.Handle)

	flowTool := tools.NewFlowTool(gen, cfg)
	s.AddTool(flowTool.Definition(), flowTool.Handle)

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	return s, nil
}

// serverInstructions returns the system instructions that tell the AI how
// to drive the doc-pack engine.
func serverInstructions() string {
	return `You have access to UMX, a delivery-methodology decision engine that
generates project documentation packs.

## What UMX Does

Given a requirements file (project name, goal, users, team size, module
count, complexity signals), UMX:
1. Scores six delivery combos (c1 Requirement Canvas, c2 Story Mapping,
   c3 Scenario & Contract, c4 Design Driven, c5 Lean MVP, c6 Lean DDD)
2. Classifies project complexity (S/M/L/XL)
3. Resolves a documentation mode (single-file/minimal/standard/full)
4. Writes the planned markdown documents plus a selection report

Every pack sits on the same fixed execution base:
Epic Map -> Feature Story Map -> Core Spec.

## Workflow

1. Help the user write a concrete requirements file. The quality gate
   rejects empty, placeholder, or template text in project_name,
   project_goal, and target_users — insist on real content before
   generating. Never suggest allow_placeholder except for throwaway
   drafts.
2. Call umx_recommend to show the scoring and the recommended combo.
   Walk the user through the reasons.
3. When the user accepts, call umx_flow (route direct, or
   traditional-first when they want classic PRD/architecture/API/database
   docs before the pack) or umx_generate for the pack alone.
4. Report what was generated and where. Encourage the user to fill in
   the open items before driving implementation from the pack.

## Rules

- Forced combo must be c1..c6; forced mode must be minimal, standard,
  full, or single-file. "auto" lets the engine decide.
- single-file mode produces one self-contained document — suggest it for
  quick starts and small teams.
- The engine is deterministic: the same requirements always produce the
  same recommendation. Re-running after editing the requirements file is
  the intended iteration loop.`
}
