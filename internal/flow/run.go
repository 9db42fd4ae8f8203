package flow

import (
	"fmt"
	"path/filepath"
	"strings"

	"umx/internal/command"
	"umx/internal/config"
	"umx/internal/emit"
	"umx/internal/requirement"
	"umx/internal/templates"
)

// Subdirectory names under the flow output root.
const (
	traditionalDir = "traditional-docs"
	vibeDir        = "vibe-docs"
)

// traditionalFiles maps a canonical doc name to its output filename and
// template.
var traditionalFiles = map[string]struct {
	Filename string
	Template string
}{
	"prd":          {"01-prd-lite.md", templates.TraditionalPRD},
	"architecture": {"02-architecture-lite.md", templates.TraditionalArchitecture},
	"api":          {"03-api-spec.md", templates.TraditionalAPI},
	"database":     {"04-database-design.md", templates.TraditionalDatabase},
}

// FlowOptions configures one routed run. Command, when present, is parsed
// and its fields override the rest.
type FlowOptions struct {
	InputPath    string
	OutputRoot   string
	FallbackRoot string

	// Path is one of the command.Route* values.
	Path string
	// Combo and Mode pass through to generation.
	Combo string
	Mode  string
	// TraditionalDocs is a comma list of doc names or aliases.
	TraditionalDocs string
	// Command is a raw chat-style command overriding the other fields.
	Command string

	PrintOnly        bool
	AllowPlaceholder bool
}

// FlowResult reports what the routed run produced. Exactly one of Ask,
// Report (recommend), or Root is the primary payload.
type FlowResult struct {
	Route string

	// Ask is the interactive entry text, set on the ask route.
	Ask string
	// Report is the print-only selection report, set for recommend and
	// print-only runs.
	Report string

	// Root is the flow output root; empty when nothing was written.
	Root string
	// TraditionalFiles lists the filenames written under traditional-docs.
	TraditionalFiles []string
	// Generate is the nested doc-pack result for writing routes.
	Generate *GenerateResult
}

// Summary returns the operator-facing lines for a writing run.
func (r *FlowResult) Summary() []string {
	if r.Root == "" {
		return nil
	}
	lines := []string{
		fmt.Sprintf("Generated root: %s", r.Root),
		fmt.Sprintf("Route: %s", r.Route),
	}
	if len(r.TraditionalFiles) > 0 {
		lines = append(lines,
			fmt.Sprintf("Traditional files: %d", len(r.TraditionalFiles)),
			"Traditional dir: "+traditionalDir+"/")
	}
	lines = append(lines, "Vibe dir: "+vibeDir+"/")
	if r.Generate != nil {
		lines = append(lines, r.Generate.Summary()...)
	}
	return lines
}

// AskText is the interactive entry prompt shown on the ask route.
func AskText() string {
	return `# UMX Interactive Entry

Please confirm first:

1) Generate traditional docs first? (yes/no)
2) If yes, which docs? (prd,architecture,api,database)
3) If no, go straight to combo selection?
4) Accept the automatically recommended combo?
5) Start with single-file mode?

Command examples:
- /umx traditional --docs prd,architecture,api,database --combo auto --mode minimal
- /umx direct --combo auto --mode single-file
`
}

// Run executes one routed flow: ask prints the entry text, recommend
// plans without writing, traditional-first writes the traditional set
// before the doc pack, and direct writes the doc pack alone.
func (g *Generator) Run(opts FlowOptions) (*FlowResult, error) {
	route := opts.Path
	combo := opts.Combo
	mode := opts.Mode
	outputRoot := opts.OutputRoot
	docsArg := opts.TraditionalDocs
	recommend := false

	if cmd := command.Parse(opts.Command); !cmd.IsZero() {
		if cmd.Path != "" {
			route = cmd.Path
		}
		if cmd.Combo != "" {
			combo = cmd.Combo
		}
		if cmd.Mode != "" {
			mode = cmd.Mode
		}
		if cmd.Output != "" {
			outputRoot = cmd.Output
		}
		if cmd.TraditionalDocs != "" {
			docsArg = cmd.TraditionalDocs
		}
		recommend = cmd.Recommend
	}

	if route == "" {
		route = command.RouteAsk
	}
	if !command.ValidRoute(route) {
		return nil, fmt.Errorf("invalid path: %s", route)
	}

	if route == command.RouteAsk && !recommend {
		return &FlowResult{Route: route, Ask: AskText()}, nil
	}

	if recommend {
		gen, err := g.Generate(GenerateOptions{
			InputPath:        opts.InputPath,
			Combo:            "auto",
			Mode:             mode,
			PrintOnly:        true,
			AllowPlaceholder: opts.AllowPlaceholder,
		})
		if err != nil {
			return nil, err
		}
		return &FlowResult{Route: route, Report: gen.Report, Generate: gen}, nil
	}

	req, err := requirement.LoadFile(opts.InputPath)
	if err != nil {
		return nil, err
	}

	if outputRoot == "" {
		outputRoot = config.DefaultOutputRoot
	}
	fallbackRoot := opts.FallbackRoot
	if fallbackRoot == "" {
		fallbackRoot = config.DefaultFallbackRoot
	}

	docs := command.NormalizeDocs(docsArg)

	if opts.PrintOnly {
		gen, err := g.Generate(GenerateOptions{
			InputPath:        opts.InputPath,
			Combo:            combo,
			Mode:             mode,
			PrintOnly:        true,
			AllowPlaceholder: opts.AllowPlaceholder,
		})
		if err != nil {
			return nil, err
		}
		return &FlowResult{Route: route, Report: gen.Report, Generate: gen}, nil
	}

	root, err := emit.EnsureWritableRoot(outputRoot, fallbackRoot)
	if err != nil {
		return nil, err
	}
	if root != outputRoot {
		g.log.Warn("output root not writable, using fallback", "requested", outputRoot, "fallback", root)
	}

	result := &FlowResult{Route: route, Root: root}

	if err := g.writeRouteSummary(root, &req, route, combo, mode, docs); err != nil {
		return nil, err
	}

	if route == command.RouteTraditionalFirst {
		written, err := g.writeTraditionalDocs(filepath.Join(root, traditionalDir), &req, docs)
		if err != nil {
			return nil, err
		}
		result.TraditionalFiles = written
	}

	gen, err := g.Generate(GenerateOptions{
		InputPath:        opts.InputPath,
		OutputRoot:       filepath.Join(root, vibeDir),
		FallbackRoot:     filepath.Join(root, vibeDir),
		Combo:            combo,
		Mode:             mode,
		Flat:             true,
		AllowPlaceholder: opts.AllowPlaceholder,
	})
	if err != nil {
		return nil, err
	}
	result.Generate = gen

	g.log.Info("flow complete", "route", route, "root", root, "traditional_files", len(result.TraditionalFiles))
	return result, nil
}

func (g *Generator) writeRouteSummary(root string, req *requirement.Requirement, route, combo, mode string, docs []string) error {
	traditional := "none"
	if route == command.RouteTraditionalFirst {
		traditional = strings.Join(docs, ",")
	}
	if combo == "" {
		combo = "auto"
	}
	if mode == "" {
		mode = "auto"
	}

	body, err := g.renderer.Render(templates.RouteSummary, templates.RouteData{
		Name:            req.ProjectName,
		Goal:            req.ProjectGoal,
		Route:           route,
		Combo:           combo,
		Mode:            mode,
		TraditionalDocs: traditional,
	})
	if err != nil {
		return err
	}
	return emit.WriteDoc(root, "route-summary.md", body)
}

// writeTraditionalDocs emits the index plus the selected traditional
// documents, returning the filenames in write order.
func (g *Generator) writeTraditionalDocs(dir string, req *requirement.Requirement, docs []string) ([]string, error) {
	data := templates.TraditionalData{
		Name:  req.ProjectName,
		Goal:  req.ProjectGoal,
		Users: req.TargetUsers,
		Date:  g.now().Format("2006-01-02"),
	}

	index, err := g.renderer.Render(templates.TraditionalIndex, data)
	if err != nil {
		return nil, err
	}
	if err := emit.WriteDoc(dir, "00-traditional-index.md", index); err != nil {
		return nil, err
	}
	written := []string{"00-traditional-index.md"}

	for _, doc := range docs {
		entry, ok := traditionalFiles[doc]
		if !ok {
			continue
		}
		body, err := g.renderer.Render(entry.Template, data)
		if err != nil {
			return written, err
		}
		if err := emit.WriteDoc(dir, entry.Filename, body); err != nil {
			return written, err
		}
		written = append(written, entry.Filename)
	}
	return written, nil
}
