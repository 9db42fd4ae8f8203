package flow

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"umx/internal/command"
)

// --- Run: ask ---

func TestRun_AskRoute(t *testing.T) {
	g := newTestGenerator(t)

	result, err := g.Run(FlowOptions{
		InputPath: writeRequirements(t, validInput),
		Path:      command.RouteAsk,
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(result.Ask, "/umx direct --combo auto --mode single-file") {
		t.Error("ask text missing the command examples")
	}
	if result.Root != "" {
		t.Error("ask route must not write anything")
	}
}

func TestRun_DefaultRouteIsAsk(t *testing.T) {
	g := newTestGenerator(t)

	result, err := g.Run(FlowOptions{InputPath: writeRequirements(t, validInput)})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Route != command.RouteAsk || result.Ask == "" {
		t.Errorf("route = %s, want ask with entry text", result.Route)
	}
}

func TestRun_InvalidRoute(t *testing.T) {
	g := newTestGenerator(t)

	_, err := g.Run(FlowOptions{
		InputPath: writeRequirements(t, validInput),
		Path:      "sideways",
	})
	if err == nil || !strings.Contains(err.Error(), "invalid path") {
		t.Fatalf("err = %v, want invalid path", err)
	}
}

// --- Run: recommend ---

func TestRun_RecommendCommand(t *testing.T) {
	g := newTestGenerator(t)

	result, err := g.Run(FlowOptions{
		InputPath: writeRequirements(t, validInput),
		Command:   "/umx recommend --mode full",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(result.Report, "# Selection & Doc Pack Report") {
		t.Error("recommend did not produce the report")
	}
	if result.Root != "" {
		t.Error("recommend must not write anything")
	}
	if result.Generate == nil || result.Generate.Decision.Mode != "full" {
		t.Error("recommend did not honor the forced mode")
	}
}

// --- Run: direct ---

func TestRun_DirectRoute(t *testing.T) {
	g := newTestGenerator(t)
	out := t.TempDir()

	result, err := g.Run(FlowOptions{
		InputPath:  writeRequirements(t, validInput),
		OutputRoot: out,
		Path:       command.RouteDirect,
		Combo:      "auto",
		Mode:       "single-file",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if result.Root != out {
		t.Errorf("root = %s, want %s", result.Root, out)
	}
	if len(result.TraditionalFiles) != 0 {
		t.Error("direct route wrote traditional docs")
	}
	if _, err := os.Stat(filepath.Join(out, "route-summary.md")); err != nil {
		t.Errorf("route summary missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, vibeDir, "00-single-file-pack.md")); err != nil {
		t.Errorf("vibe docs missing: %v", err)
	}

	summary, err := os.ReadFile(filepath.Join(out, "route-summary.md"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Route: direct", "Traditional docs: none"} {
		if !strings.Contains(string(summary), want) {
			t.Errorf("route summary missing %q", want)
		}
	}
}

// --- Run: traditional-first ---

func TestRun_TraditionalFirstRoute(t *testing.T) {
	g := newTestGenerator(t)
	out := t.TempDir()

	result, err := g.Run(FlowOptions{
		InputPath:       writeRequirements(t, validInput),
		OutputRoot:      out,
		Path:            command.RouteTraditionalFirst,
		TraditionalDocs: "prd,db",
		Mode:            "minimal",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := []string{"00-traditional-index.md", "01-prd-lite.md", "04-database-design.md"}
	if len(result.TraditionalFiles) != len(want) {
		t.Fatalf("traditional files = %v, want %v", result.TraditionalFiles, want)
	}
	for i, name := range want {
		if result.TraditionalFiles[i] != name {
			t.Errorf("traditional file %d = %s, want %s", i, result.TraditionalFiles[i], name)
		}
		if _, err := os.Stat(filepath.Join(out, traditionalDir, name)); err != nil {
			t.Errorf("expected %s on disk: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, vibeDir, "00-epic-map.md")); err != nil {
		t.Errorf("vibe docs missing: %v", err)
	}
}

// --- Run: command overrides ---

func TestRun_CommandOverridesFlags(t *testing.T) {
	g := newTestGenerator(t)
	out := t.TempDir()

	result, err := g.Run(FlowOptions{
		InputPath:  writeRequirements(t, validInput),
		OutputRoot: out,
		Path:       command.RouteTraditionalFirst,
		Mode:       "full",
		Command:    "/umx direct --combo c5 --mode single-file",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if result.Route != command.RouteDirect {
		t.Errorf("route = %s, want direct from command", result.Route)
	}
	if result.Generate.Decision.Selection.Primary != "c5" {
		t.Errorf("primary = %s, want c5 from command", result.Generate.Decision.Selection.Primary)
	}
	if result.Generate.Decision.Mode != "single-file" {
		t.Errorf("mode = %s, want single-file from command", result.Generate.Decision.Mode)
	}
}

func TestRun_AcceptancePhrase(t *testing.T) {
	g := newTestGenerator(t)
	out := t.TempDir()

	result, err := g.Run(FlowOptions{
		InputPath:  writeRequirements(t, validInput),
		OutputRoot: out,
		Command:    "接受推荐",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Route != command.RouteDirect {
		t.Errorf("route = %s, want direct", result.Route)
	}
	if _, err := os.Stat(filepath.Join(out, vibeDir, "00-single-file-pack.md")); err != nil {
		t.Errorf("acceptance phrase did not produce the single-file pack: %v", err)
	}
}

// --- Run: print-only ---

func TestRun_PrintOnly(t *testing.T) {
	g := newTestGenerator(t)
	out := t.TempDir()

	result, err := g.Run(FlowOptions{
		InputPath:  writeRequirements(t, validInput),
		OutputRoot: out,
		Path:       command.RouteDirect,
		PrintOnly:  true,
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Report == "" {
		t.Error("print-only flow missing the report")
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("print-only flow wrote files: %v", entries)
	}
}

// --- Summary ---

func TestFlowResult_Summary(t *testing.T) {
	g := newTestGenerator(t)
	out := t.TempDir()

	result, err := g.Run(FlowOptions{
		InputPath:       writeRequirements(t, validInput),
		OutputRoot:      out,
		Path:            command.RouteTraditionalFirst,
		TraditionalDocs: "prd",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	summary := strings.Join(result.Summary(), "\n")
	for _, want := range []string{
		"Generated root: " + out,
		"Route: traditional-first",
		"Traditional files: 2",
		"Vibe dir: vibe-docs/",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}
