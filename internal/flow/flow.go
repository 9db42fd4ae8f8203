// Package flow orchestrates a full run: load and gate the requirement,
// run the decision engine, plan the manifest, render bodies, and emit the
// pack. The engine packages stay pure; everything with side effects meets
// here.
package flow

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"umx/internal/config"
	"umx/internal/decision"
	"umx/internal/emit"
	"umx/internal/logging"
	"umx/internal/plan"
	"umx/internal/requirement"
	"umx/internal/templates"
)

// Generator bundles the collaborators a run needs. Construct with New;
// the zero value is not usable.
type Generator struct {
	renderer templates.Renderer
	log      logging.Logger
	now      func() time.Time
}

// New builds a Generator around the given renderer and logger.
func New(renderer templates.Renderer, log logging.Logger) *Generator {
	return &Generator{
		renderer: renderer,
		log:      log,
		now:      time.Now,
	}
}

// GenerateOptions configures one doc-pack generation run. Zero values
// mean "decide automatically" for Combo and Mode and "use the configured
// defaults" for the roots.
type GenerateOptions struct {
	InputPath    string
	OutputRoot   string
	FallbackRoot string

	// Combo is "", "auto", or a valid combo code.
	Combo string
	// Mode is "", "auto", or a valid mode (aliases accepted).
	Mode string

	// ProjectSlug overrides the slug derived from the project name.
	ProjectSlug string
	// Flat writes files directly into the output root without a slug
	// folder.
	Flat bool
	// PrintOnly plans and renders the report without touching the
	// filesystem.
	PrintOnly bool
	// AllowPlaceholder bypasses the input quality gate.
	AllowPlaceholder bool
}

// GenerateResult reports what a run decided and wrote.
type GenerateResult struct {
	Requirement requirement.Requirement
	Decision    decision.Result
	Docs        []plan.Document

	// Report is the rendered selection report, present on every run.
	Report string

	// Root is the directory files were written to; empty on print-only
	// runs.
	Root string
	// Files is the number of files written.
	Files int
	// UsedFallback marks that the requested root rejected writes.
	UsedFallback bool
}

// Summary returns the operator-facing result lines.
func (r *GenerateResult) Summary() []string {
	if r.Root == "" {
		return nil
	}
	primary := decision.Combos[r.Decision.Selection.Primary]
	lines := []string{
		fmt.Sprintf("Generated: %s", r.Root),
		fmt.Sprintf("Primary combo: %s %s", primary.Code, primary.Name),
		fmt.Sprintf("Secondary combo: %s", secondaryLabel(r.Decision.Selection.Secondary)),
		fmt.Sprintf("Complexity: %s", r.Decision.Tier),
		fmt.Sprintf("Doc mode: %s", r.Decision.Mode),
		"Baseline: 00-epic-map.md -> 01-feature-story-map.md -> 02-core-spec.md",
		fmt.Sprintf("Files: %d", r.Files),
	}
	return lines
}

// resolveOverrides validates the raw combo and mode arguments. "auto" and
// "" mean no override; anything else must be a known value.
func resolveOverrides(comboArg, modeArg string) (decision.Overrides, error) {
	var ov decision.Overrides

	combo := strings.ToLower(strings.TrimSpace(comboArg))
	if combo != "" && combo != "auto" {
		if !decision.ValidCombo(combo) {
			return ov, fmt.Errorf("invalid combo: %s", comboArg)
		}
		ov.Combo = combo
	}

	mode := strings.ToLower(strings.TrimSpace(modeArg))
	if mode != "" && mode != "auto" {
		normalized := decision.NormalizeMode(mode)
		if !decision.ValidMode(normalized) {
			return ov, fmt.Errorf("invalid mode: %s", modeArg)
		}
		ov.Mode = normalized
	}

	return ov, nil
}

// Generate runs the whole pipeline for one requirements file.
func (g *Generator) Generate(opts GenerateOptions) (*GenerateResult, error) {
	ov, err := resolveOverrides(opts.Combo, opts.Mode)
	if err != nil {
		return nil, err
	}

	req, err := requirement.LoadFile(opts.InputPath)
	if err != nil {
		return nil, err
	}
	if err := requirement.Gate(&req, opts.AllowPlaceholder); err != nil {
		return nil, err
	}

	res := decision.Decide(&req, ov)
	docs := plan.Docs(res.Selection.Primary, res.Mode)

	report, err := g.renderer.Render(templates.Report, g.reportData(&req, res, docs))
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Requirement: req,
		Decision:    res,
		Docs:        docs,
		Report:      report,
	}
	if opts.PrintOnly {
		return result, nil
	}

	outputRoot := opts.OutputRoot
	if outputRoot == "" {
		outputRoot = config.DefaultOutputRoot
	}
	fallbackRoot := opts.FallbackRoot
	if fallbackRoot == "" {
		fallbackRoot = config.DefaultFallbackRoot
	}

	root, err := emit.EnsureWritableRoot(outputRoot, fallbackRoot)
	if err != nil {
		return nil, err
	}
	if root != outputRoot {
		result.UsedFallback = true
		g.log.Warn("output root not writable, using fallback", "requested", outputRoot, "fallback", root)
	}

	outDir := root
	if !opts.Flat {
		slug := strings.TrimSpace(opts.ProjectSlug)
		if slug == "" {
			slug = emit.RunSlug(req.ProjectName)
		}
		outDir = filepath.Join(root, slug)
	}

	written, err := g.writePack(outDir, &req, res, docs, report)
	if err != nil {
		return nil, err
	}

	result.Root = outDir
	result.Files = written
	g.log.Info("doc pack generated",
		"root", outDir,
		"primary", res.Selection.Primary,
		"mode", string(res.Mode),
		"files", written)
	return result, nil
}

// writePack emits either the single-file pack or the report plus every
// manifest document.
func (g *Generator) writePack(outDir string, req *requirement.Requirement, res decision.Result, docs []plan.Document, report string) (int, error) {
	if res.Mode == decision.ModeSingleFile {
		body, err := g.renderer.Render(templates.SingleFile, g.docData(req, res, plan.SingleFileDoc.Title))
		if err != nil {
			return 0, err
		}
		if err := emit.WriteDoc(outDir, plan.SingleFileDoc.Filename, body); err != nil {
			return 0, err
		}
		return 1, nil
	}

	if err := emit.WriteDoc(outDir, plan.ReportDoc.Filename, report); err != nil {
		return 0, err
	}
	written := 1
	for _, doc := range docs {
		body, err := templates.RenderDoc(g.renderer, doc.Filename, g.docData(req, res, doc.Title))
		if err != nil {
			return written, err
		}
		if err := emit.WriteDoc(outDir, doc.Filename, body); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func (g *Generator) docData(req *requirement.Requirement, res decision.Result, title string) templates.DocData {
	primary := decision.Combos[res.Selection.Primary]
	return templates.DocData{
		Name:  req.ProjectName,
		Goal:  req.ProjectGoal,
		Users: req.TargetUsers,
		Date:  g.now().Format("2006-01-02"),

		PrimaryCode:     primary.Code,
		PrimaryName:     primary.Name,
		PrimaryPipeline: primary.Pipeline,
		PrimaryFit:      primary.Fit,

		SecondaryLabel: secondaryLabel(res.Selection.Secondary),

		Mode: string(res.Mode),
		Tier: string(res.Tier),

		Reasons: decision.Reasons(req, primary.Code),
		Focus:   decision.Focus(primary),

		Title: title,
	}
}

func (g *Generator) reportData(req *requirement.Requirement, res decision.Result, docs []plan.Document) templates.ReportData {
	data := templates.ReportData{
		DocData:           g.docData(req, res, plan.ReportDoc.Title),
		TeamSize:          req.TeamSize,
		ModuleCount:       req.ModuleCount,
		UIPriority:        string(req.UIPriority),
		BackendComplexity: string(req.BackendComplexity),
		DomainComplexity:  string(req.DomainComplexity),
		ComplianceLevel:   string(req.ComplianceLevel),
	}

	codes := decision.ComboCodes()
	sort.SliceStable(codes, func(i, j int) bool {
		si, sj := res.Scores[codes[i]], res.Scores[codes[j]]
		if si != sj {
			return si > sj
		}
		return codes[i] < codes[j]
	})
	for _, code := range codes {
		data.Rows = append(data.Rows, templates.ScoreRow{
			Code:     code,
			Pipeline: decision.Combos[code].Pipeline,
			Score:    res.Scores[code],
		})
	}

	for _, doc := range docs {
		data.Docs = append(data.Docs, templates.DocRow{Filename: doc.Filename, Title: doc.Title})
	}
	return data
}

func secondaryLabel(code string) string {
	if code == "" {
		return "none"
	}
	combo := decision.Combos[code]
	return combo.Code + " " + combo.Name
}
