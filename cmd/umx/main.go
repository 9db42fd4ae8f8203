// UMX: delivery-methodology decision engine and doc-pack generator.
//
// Scores six delivery combos against a requirements file, classifies
// project complexity, and generates a markdown documentation pack.
// Also runs as an MCP server (stdio transport) for AI coding tools.
//
// Usage:
//
//	umx generate --input requirements.json   # Generate the doc pack
//	umx recommend --input requirements.json  # Print the selection report
//	umx flow --input requirements.json       # Routed flow (ask/traditional-first/direct)
//	umx watch --input requirements.json      # Regenerate on file changes
//	umx serve                                # Start the MCP server
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"umx/internal/config"
	"umx/internal/flow"
	"umx/internal/logging"
	"umx/internal/requirement"
	umxserver "umx/internal/server"
	"umx/internal/templates"
)

func main() {
	// Best-effort .env load; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(cfg, log, os.Args[2:])
	case "recommend":
		err = runRecommend(cfg, log, os.Args[2:])
	case "flow":
		err = runFlow(cfg, log, os.Args[2:])
	case "watch":
		err = runWatch(cfg, log, os.Args[2:])
	case "serve":
		err = runServe(cfg, log)
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("umx v%s\n", umxserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		var gateErr *requirement.GateError
		if errors.As(err, &gateErr) {
			fmt.Fprintf(os.Stderr, "%s\n", gateErr.Error())
			fmt.Fprintln(os.Stderr, "Tip: this guardrail reduces hallucination, context loss, and bug loops in follow-up AI coding. Use --allow-placeholder only for temporary drafts.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newGenerator(log logging.Logger) (*flow.Generator, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	return flow.New(renderer, log), nil
}

func runGenerate(cfg *config.Config, log logging.Logger, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	input := fs.String("input", "", "Path to requirements file (JSON or YAML)")
	output := fs.String("output", cfg.OutputRoot, "Output directory root")
	combo := fs.String("combo", "auto", "auto or one of c1..c6")
	mode := fs.String("mode", "auto", "auto, minimal, standard, full, or single-file")
	slug := fs.String("project-slug", "", "Optional output folder slug")
	flat := fs.Bool("flat", false, "Write files directly into the output root")
	printOnly := fs.Bool("print-only", false, "Print the plan without writing files")
	allowPlaceholder := fs.Bool("allow-placeholder", false, "Allow placeholder values in key requirement fields")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return errors.New("--input is required")
	}

	gen, err := newGenerator(log)
	if err != nil {
		return err
	}

	result, err := gen.Generate(flow.GenerateOptions{
		InputPath:        *input,
		OutputRoot:       *output,
		FallbackRoot:     cfg.FallbackRoot,
		Combo:            *combo,
		Mode:             *mode,
		ProjectSlug:      *slug,
		Flat:             *flat,
		PrintOnly:        *printOnly,
		AllowPlaceholder: *allowPlaceholder,
	})
	if err != nil {
		return err
	}

	if *printOnly {
		fmt.Println(result.Report)
		return nil
	}
	for _, line := range result.Summary() {
		fmt.Println(line)
	}
	return nil
}

func runRecommend(cfg *config.Config, log logging.Logger, args []string) error {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	input := fs.String("input", "", "Path to requirements file (JSON or YAML)")
	mode := fs.String("mode", "auto", "auto, minimal, standard, full, or single-file")
	allowPlaceholder := fs.Bool("allow-placeholder", false, "Allow placeholder values in key requirement fields")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return errors.New("--input is required")
	}

	gen, err := newGenerator(log)
	if err != nil {
		return err
	}

	result, err := gen.Generate(flow.GenerateOptions{
		InputPath:        *input,
		Mode:             *mode,
		PrintOnly:        true,
		AllowPlaceholder: *allowPlaceholder,
	})
	if err != nil {
		return err
	}
	fmt.Println(result.Report)
	return nil
}

func runFlow(cfg *config.Config, log logging.Logger, args []string) error {
	fs := flag.NewFlagSet("flow", flag.ExitOnError)
	input := fs.String("input", "", "Path to requirements file (JSON or YAML)")
	output := fs.String("output", cfg.OutputRoot, "Root output directory")
	path := fs.String("path", "ask", "ask, traditional-first, or direct")
	docs := fs.String("traditional-docs", "prd,architecture,api,database", "Comma list of traditional docs")
	combo := fs.String("combo", "auto", "auto or one of c1..c6")
	mode := fs.String("mode", "single-file", "minimal, standard, full, or single-file")
	command := fs.String("command", "", "Command mode input, e.g. '/umx direct --mode single-file'")
	printOnly := fs.Bool("print-only", false, "Plan only")
	allowPlaceholder := fs.Bool("allow-placeholder", false, "Allow placeholder values in key requirement fields")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return errors.New("--input is required")
	}

	gen, err := newGenerator(log)
	if err != nil {
		return err
	}

	result, err := gen.Run(flow.FlowOptions{
		InputPath:        *input,
		OutputRoot:       *output,
		FallbackRoot:     cfg.FallbackRoot,
		Path:             *path,
		Combo:            *combo,
		Mode:             *mode,
		TraditionalDocs:  *docs,
		Command:          *command,
		PrintOnly:        *printOnly,
		AllowPlaceholder: *allowPlaceholder,
	})
	if err != nil {
		return err
	}

	switch {
	case result.Ask != "":
		fmt.Println(result.Ask)
	case result.Root == "":
		fmt.Println(result.Report)
	default:
		for _, line := range result.Summary() {
			fmt.Println(line)
		}
	}
	return nil
}

func runWatch(cfg *config.Config, log logging.Logger, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	input := fs.String("input", "", "Path to requirements file (JSON or YAML)")
	output := fs.String("output", cfg.OutputRoot, "Output directory root")
	combo := fs.String("combo", "auto", "auto or one of c1..c6")
	mode := fs.String("mode", "auto", "auto, minimal, standard, full, or single-file")
	slug := fs.String("project-slug", "", "Optional output folder slug")
	flat := fs.Bool("flat", false, "Write files directly into the output root")
	allowPlaceholder := fs.Bool("allow-placeholder", false, "Allow placeholder values in key requirement fields")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return errors.New("--input is required")
	}

	gen, err := newGenerator(log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = gen.Watch(ctx, flow.GenerateOptions{
		InputPath:        *input,
		OutputRoot:       *output,
		FallbackRoot:     cfg.FallbackRoot,
		Combo:            *combo,
		Mode:             *mode,
		ProjectSlug:      *slug,
		Flat:             *flat,
		AllowPlaceholder: *allowPlaceholder,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runServe(cfg *config.Config, log logging.Logger) error {
	s, err := umxserver.New(cfg, log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	return mcpserver.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `UMX v%s — delivery-methodology decision engine

Usage:
  umx generate   Generate the doc pack from a requirements file
  umx recommend  Print the selection report without writing files
  umx flow       Routed flow: ask, traditional-first, or direct
  umx watch      Regenerate the pack whenever the requirements change
  umx serve      Start the MCP server (stdio transport)

Environment:
  UMX_OUTPUT           Output root (default ./umx-doc-pack)
  UMX_FALLBACK_OUTPUT  Fallback root when the output is not writable
  LOG_LEVEL            debug, info, warn, error (default info)

MCP configuration:

  {
    "mcpServers": {
      "umx": {
        "command": "umx",
        "args": ["serve"]
      }
    }
  }
`, umxserver.Version)
}
