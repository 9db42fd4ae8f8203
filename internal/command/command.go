// Package command parses the chat-style command vocabulary that drives
// the flow runner, e.g. "/umx traditional --docs prd,api --mode minimal".
//
// Parsing is lenient on purpose: an unrecognized command yields the zero
// Command and the caller keeps its defaults, mirroring how the vocabulary
// behaves inside a chat session where noise is common.
package command

import "strings"

// Route names accepted by the flow runner.
const (
	RouteAsk              = "ask"
	RouteTraditionalFirst = "traditional-first"
	RouteDirect           = "direct"
)

// ValidRoute reports whether route is one of the three flow routes.
func ValidRoute(route string) bool {
	switch route {
	case RouteAsk, RouteTraditionalFirst, RouteDirect:
		return true
	}
	return false
}

// AllDocs is the canonical traditional-doc order. NormalizeDocs always
// returns a subsequence of this slice.
var AllDocs = []string{"prd", "architecture", "api", "database"}

var docAlias = map[string]string{
	"prd":          "prd",
	"product":      "prd",
	"architecture": "architecture",
	"arch":         "architecture",
	"api":          "api",
	"database":     "database",
	"db":           "database",
}

// acceptPhrases are natural-language acceptance shortcuts. Any of them
// collapses to the direct route with auto combo and single-file mode.
var acceptPhrases = map[string]bool{
	"接受推荐":   true,
	"确认":     true,
	"确认推荐":   true,
	"确认方案":   true,
	"开始生成":   true,
	"开始生成文档": true,
	"接受":     true,
}

// Command is the parsed result. Empty fields mean "not specified"; the
// caller layers it over its own defaults.
type Command struct {
	Path            string
	Combo           string
	Mode            string
	Output          string
	TraditionalDocs string
	Recommend       bool
}

// IsZero reports whether the command carries nothing.
func (c Command) IsZero() bool {
	return c == Command{}
}

// Parse interprets one raw command line. Recognized actions after an
// optional "/umx" or "umx" prefix: start, traditional, direct, recommend,
// and accept/accepted/accept-recommend. Flag pairs --docs, --combo,
// --mode, --output, and --path bind their next token; stray tokens are
// skipped. Anything else returns the zero Command.
func Parse(raw string) Command {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return Command{}
	}

	if acceptPhrases[cleaned] {
		return Command{Path: RouteDirect, Combo: "auto", Mode: "single-file"}
	}

	tokens := strings.Fields(cleaned)
	if tokens[0] == "/umx" || tokens[0] == "umx" {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return Command{}
	}

	var cmd Command
	switch strings.ToLower(tokens[0]) {
	case "start":
		return Command{Path: RouteAsk}
	case "traditional":
		cmd.Path = RouteTraditionalFirst
	case "direct":
		cmd.Path = RouteDirect
	case "recommend":
		cmd.Recommend = true
	case "accept", "accepted", "accept-recommend":
		cmd.Path = RouteDirect
		cmd.Combo = "auto"
		cmd.Mode = "single-file"
	default:
		return Command{}
	}

	for i := 1; i < len(tokens); {
		key := tokens[i]
		if !strings.HasPrefix(key, "--") || i+1 >= len(tokens) {
			i++
			continue
		}
		val := tokens[i+1]
		switch key {
		case "--docs":
			cmd.TraditionalDocs = val
		case "--combo":
			cmd.Combo = val
		case "--mode":
			cmd.Mode = val
		case "--output":
			cmd.Output = val
		case "--path":
			cmd.Path = val
		}
		i += 2
	}

	return cmd
}

// NormalizeDocs resolves a comma list of doc names and aliases into the
// canonical subset. Unknown names drop out; an empty or fully-unknown
// list means all four docs.
func NormalizeDocs(raw string) []string {
	picked := map[string]bool{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if key, ok := docAlias[item]; ok {
			picked[key] = true
		}
	}

	if len(picked) == 0 {
		return append([]string(nil), AllDocs...)
	}

	out := make([]string, 0, len(picked))
	for _, doc := range AllDocs {
		if picked[doc] {
			out = append(out, doc)
		}
	}
	return out
}
