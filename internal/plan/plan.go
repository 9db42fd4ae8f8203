// Package plan owns the document catalogs and builds the ordered manifest
// of planning documents for a combo and mode.
//
// The catalogs are process-wide constant tables. Ordering is a deliverable
// contract: baseline docs precede combo-specific docs precede tier-gated
// docs, and identical inputs always produce the identical manifest. The
// planner owns no rendering — bodies live in internal/templates.
package plan

import "umx/internal/decision"

// Document is one entry of the manifest: an output filename plus its
// human-readable title.
type Document struct {
	Filename string
	Title    string
}

// BaselineDocs are the fixed execution base, present in every multi-file
// pack.
var BaselineDocs = []Document{
	{"00-epic-map.md", "Epic Map"},
	{"01-feature-story-map.md", "Feature Story Map"},
	{"02-core-spec.md", "Core Spec"},
}

// BaseDocs are the decision/milestone/prompt layer, also always present.
var BaseDocs = []Document{
	{"03-combo-decision.md", "Combo Decision Record"},
	{"04-milestone-plan.md", "Milestone Plan"},
	{"05-ai-prompt-pack.md", "AI Prompt Pack"},
}

// ComboMinDocs are the per-combo minimum documents, keyed by combo code.
var ComboMinDocs = map[string][]Document{
	"c1": {
		{"30-requirement-canvas.md", "Requirement Canvas"},
		{"31-prototype-brief.md", "Prototype Brief"},
	},
	"c2": {
		{"30-iteration-slice.md", "Iteration Slice Plan"},
		{"31-iteration-backlog.md", "Iteration Backlog"},
	},
	"c3": {
		{"30-scenario-list.md", "Scenario List"},
		{"31-api-contract-priority.md", "API Contract Priority"},
		{"32-data-model.md", "Data Model"},
	},
	"c4": {
		{"30-ui-flow-map.md", "UI Flow & Design Constraints"},
		{"31-figma-to-prompt-map.md", "Figma-to-Prompt Map"},
	},
	"c5": {
		{"30-mvp-hypothesis.md", "MVP Hypothesis"},
		{"31-feedback-loop.md", "Feedback Loop"},
	},
	"c6": {
		{"30-domain-map.md", "Domain Map"},
		{"31-ubiquitous-language.md", "Ubiquitous Language"},
		{"32-service-boundary.md", "Application Service Boundaries"},
	},
}

// StandardDocs are added in standard and full modes.
var StandardDocs = []Document{
	{"10-prd-lite.md", "PRD Lite"},
	{"11-architecture-lite.md", "Architecture Lite"},
	{"12-api-spec.md", "API Spec"},
	{"13-database-design.md", "Database Design"},
	{"14-risk-checklist.md", "Risk & Regression Checklist"},
}

// FullDocs are added in full mode only.
var FullDocs = []Document{
	{"20-module-spec-index.md", "Module Spec Index"},
	{"21-test-regression-plan.md", "Test & Regression Plan"},
	{"22-ops-runbook.md", "Ops Runbook"},
	{"23-change-log-governance.md", "Change Governance"},
}

// SingleFileDoc is the sole manifest entry in single-file mode.
var SingleFileDoc = Document{"00-single-file-pack.md", "Single-File Doc Pack"}

// ReportDoc is the selection report written alongside multi-file packs.
var ReportDoc = Document{"selection-report.md", "Selection Report"}

// Docs returns the ordered manifest for the primary combo and mode.
// Single-file mode collapses to exactly one document; otherwise the order
// is baseline -> base -> combo minimum -> standard (standard/full modes)
// -> full (full mode only).
func Docs(primaryCombo string, mode decision.Mode) []Document {
	if mode == decision.ModeSingleFile {
		return []Document{SingleFileDoc}
	}

	docs := make([]Document, 0, 16)
	docs = append(docs, BaselineDocs...)
	docs = append(docs, BaseDocs...)
	docs = append(docs, ComboMinDocs[primaryCombo]...)
	if mode == decision.ModeStandard || mode == decision.ModeFull {
		docs = append(docs, StandardDocs...)
	}
	if mode == decision.ModeFull {
		docs = append(docs, FullDocs...)
	}
	return docs
}
