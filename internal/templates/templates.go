// Package templates renders the markdown bodies of the doc pack.
//
// Bodies are embedded text/template files keyed by the output document's
// filename. The engine never calls into this package — rendering is an
// external collaborator that consumes the Requirement, the Selection, and
// the Mode as plain data.
package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

// Template name constants for the non-document templates.
const (
	Report           = "selection-report.md.tmpl"
	SingleFile       = "00-single-file-pack.md.tmpl"
	Generic          = "generic-doc.md.tmpl"
	RouteSummary     = "route-summary.md.tmpl"
	TraditionalIndex = "00-traditional-index.md.tmpl"

	TraditionalPRD          = "traditional-prd.md.tmpl"
	TraditionalArchitecture = "traditional-architecture.md.tmpl"
	TraditionalAPI          = "traditional-api.md.tmpl"
	TraditionalDatabase     = "traditional-database.md.tmpl"
)

// DocData is the data shape every document body template renders from.
// It is assembled once per run from the Requirement and the engine result.
type DocData struct {
	Name  string
	Goal  string
	Users string
	Date  string

	PrimaryCode     string
	PrimaryName     string
	PrimaryPipeline string
	PrimaryFit      string

	// SecondaryLabel is "<code> <name>" or "none".
	SecondaryLabel string

	Mode string
	Tier string

	Reasons []string
	Focus   string

	// Title is used by the generic body for documents without a
	// dedicated template.
	Title string
}

// ScoreRow is one line of the report's score table, already sorted the way
// the selection resolver sorts.
type ScoreRow struct {
	Code     string
	Pipeline string
	Score    int
}

// DocRow is one manifest line of the report.
type DocRow struct {
	Filename string
	Title    string
}

// ReportData feeds the selection report template.
type ReportData struct {
	DocData

	TeamSize          int
	ModuleCount       int
	UIPriority        string
	BackendComplexity string
	DomainComplexity  string
	ComplianceLevel   string

	Rows []ScoreRow
	Docs []DocRow
}

// TraditionalData feeds the traditional-first document set.
type TraditionalData struct {
	Name  string
	Goal  string
	Users string
	Date  string
}

// RouteData feeds the route summary.
type RouteData struct {
	Name            string
	Goal            string
	Route           string
	Combo           string
	Mode            string
	TraditionalDocs string
}

// Renderer renders a named template with the given data.
type Renderer interface {
	Render(name string, data any) (string, error)
	Has(name string) bool
}

// embedRenderer serves templates parsed once from the embedded FS.
type embedRenderer struct {
	tmpl *template.Template
}

// NewRenderer parses every embedded template. Parse failures are
// programmer errors surfaced at startup, not at render time.
func NewRenderer() (Renderer, error) {
	tmpl, err := template.New("docs").ParseFS(templateFS, "templates/*.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing embedded templates: %w", err)
	}
	return &embedRenderer{tmpl: tmpl}, nil
}

func (r *embedRenderer) Render(name string, data any) (string, error) {
	t := r.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("unknown template: %s", name)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return strings.TrimRight(sb.String(), "\n") + "\n", nil
}

func (r *embedRenderer) Has(name string) bool {
	return r.tmpl.Lookup(name) != nil
}

// RenderDoc renders the body for one manifest document, falling back to
// the generic body when no dedicated template exists (the combo-minimum
// documents share the generic shape).
func RenderDoc(r Renderer, filename string, data DocData) (string, error) {
	name := filename + ".tmpl"
	if !r.Has(name) {
		name = Generic
	}
	return r.Render(name, data)
}
