package requirement

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// placeholderHints are substrings that mark a narrative field as unfilled
// placeholder or example text. The set includes the local-language tokens
// the stock requirement templates ship with.
var placeholderHints = []string{
	"待补充",
	"todo",
	"tbd",
	"to be determined",
	"new project",
	"example",
	"示例",
	"unknown",
	"未定",
}

// requiredFields lists the narrative fields the gate inspects, with their
// operator-facing labels. Order is fixed so issue lists are deterministic.
var requiredFields = []struct {
	label string
	value func(*Requirement) string
	goal  bool
}{
	{"project name", func(r *Requirement) string { return r.ProjectName }, false},
	{"project goal", func(r *Requirement) string { return r.ProjectGoal }, true},
	{"target users", func(r *Requirement) string { return r.TargetUsers }, false},
}

// minGoalRunes is the shortest project goal the gate accepts. Counted in
// runes so non-ASCII goals are measured by characters, not bytes.
const minGoalRunes = 8

// GateError is returned when the quality gate rejects a requirement. It
// carries every issue found so the operator can fix them in one pass.
type GateError struct {
	Issues []string
}

func (e *GateError) Error() string {
	return fmt.Sprintf("requirement quality check failed: %s", strings.Join(e.Issues, "; "))
}

// QualityIssues inspects the three required narrative fields and returns a
// human-readable issue per offending field. An empty slice signals a pass.
//
// Per field the checks short-circuit: the first matching problem is
// reported and the rest are skipped. The goal-length check only applies to
// the project goal and only when no placeholder check matched first.
// Whether to enforce the result is the caller's decision, not the gate's.
func QualityIssues(req *Requirement) []string {
	var issues []string

	for _, field := range requiredFields {
		raw := strings.TrimSpace(field.value(req))
		lowered := strings.ToLower(raw)

		if raw == "" {
			issues = append(issues, fmt.Sprintf("%s is empty", field.label))
			continue
		}

		// Unfilled <...> template tokens.
		if strings.ContainsAny(raw, "<>") {
			issues = append(issues, fmt.Sprintf("%s still contains a template placeholder", field.label))
			continue
		}

		if hint := matchHint(lowered); hint != "" {
			issues = append(issues, fmt.Sprintf("%s still looks like placeholder/example text: %s", field.label, raw))
			continue
		}

		if field.goal && utf8.RuneCountInString(raw) < minGoalRunes {
			issues = append(issues, "project goal is too short; state the business outcome and the acceptance bar")
		}
	}

	return issues
}

// Gate runs QualityIssues and wraps a non-empty result in a GateError.
// bypass skips the check entirely (operator opt-out).
func Gate(req *Requirement, bypass bool) error {
	if bypass {
		return nil
	}
	if issues := QualityIssues(req); len(issues) > 0 {
		return &GateError{Issues: issues}
	}
	return nil
}

func matchHint(lowered string) string {
	for _, hint := range placeholderHints {
		if strings.Contains(lowered, hint) {
			return hint
		}
	}
	return ""
}
