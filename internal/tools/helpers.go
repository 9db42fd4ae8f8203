// Package tools implements the MCP tool handlers for the doc-pack engine.
//
// Each tool is a struct that receives its dependencies at construction and
// exposes a Definition for registration plus a Handle compatible with
// mcp-go's CallToolRequest signature. Tools hold no state of their own —
// every call is an independent run.
package tools

import (
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"umx/internal/emit"
	"umx/internal/requirement"
)

// toolError maps a run failure to the MCP error convention: problems the
// caller can fix by changing inputs become tool-result errors, server
// faults propagate as Go errors.
func toolError(err error) (*mcp.CallToolResult, error) {
	var gateErr *requirement.GateError
	if errors.As(err, &gateErr) {
		return mcp.NewToolResultError(
			gateErr.Error() +
				"\nTip: this guardrail reduces hallucination, context loss, and bug loops in follow-up AI coding. " +
				"Set allow_placeholder=true only for temporary drafts."), nil
	}
	if errors.Is(err, emit.ErrNoWritableRoot) {
		return nil, err
	}
	return mcp.NewToolResultError(err.Error()), nil
}

// joinLines renders operator summary lines as one text block.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
