// Package requirement defines the canonical project requirement record and
// its normalization from untyped input.
//
// Normalize is deliberately forgiving: every field is coerced into its
// enumerated or bounded domain, substituting documented defaults on bad
// input. Downstream components (scoring, classification, planning) never
// observe an out-of-domain value. The flip side is the quality gate in
// quality.go, which catches records that still look like unfilled
// placeholders.
package requirement

import (
	"strconv"
	"strings"
)

// Level is an ordinal low/medium/high enum.
type Level string

// Speed is an ordinal slow/normal/fast enum.
type Speed string

// DesignSource describes where UI design input comes from.
type DesignSource string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"

	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"

	DesignNone      DesignSource = "none"
	DesignWireframe DesignSource = "wireframe"
	DesignFigma     DesignSource = "figma"
)

// Ord returns the ordinal rank of a level (low=0, medium=1, high=2).
func (l Level) Ord() int {
	switch l {
	case LevelMedium:
		return 1
	case LevelHigh:
		return 2
	default:
		return 0
	}
}

// Ord returns the ordinal rank of a speed (slow=0, normal=1, fast=2).
func (s Speed) Ord() int {
	switch s {
	case SpeedNormal:
		return 1
	case SpeedFast:
		return 2
	default:
		return 0
	}
}

// Placeholder defaults for the narrative fields. These intentionally trip
// the quality gate so an untouched requirements file cannot silently
// produce a doc pack.
const (
	DefaultProjectName = "New Project"
	DefaultProjectGoal = "TBD: describe the project goal"
	DefaultTargetUsers = "TBD: describe the target users"
)

// Requirement is the normalized input record for one run. After Normalize,
// every field is present and in-domain.
type Requirement struct {
	ProjectName string `json:"project_name" yaml:"project_name"`
	ProjectGoal string `json:"project_goal" yaml:"project_goal"`
	TargetUsers string `json:"target_users" yaml:"target_users"`

	TeamSize    int `json:"team_size" yaml:"team_size"`
	ModuleCount int `json:"module_count" yaml:"module_count"`

	UIPriority        Level `json:"ui_priority" yaml:"ui_priority"`
	BackendComplexity Level `json:"backend_complexity" yaml:"backend_complexity"`
	DomainComplexity  Level `json:"domain_complexity" yaml:"domain_complexity"`
	ComplianceLevel   Level `json:"compliance_level" yaml:"compliance_level"`

	DesignSource DesignSource `json:"design_source" yaml:"design_source"`

	FrontendBackendSeparation bool `json:"frontend_backend_separation" yaml:"frontend_backend_separation"`
	NeedFastValidation        bool `json:"need_fast_validation" yaml:"need_fast_validation"`

	IterationSpeed Speed `json:"iteration_speed" yaml:"iteration_speed"`
}

// Normalize coerces a raw untyped mapping (typically decoded JSON or YAML)
// into a Requirement. It never fails: unparseable or missing values fall
// back to their documented defaults.
func Normalize(raw map[string]any) Requirement {
	return Requirement{
		ProjectName: normalizeText(raw["project_name"], DefaultProjectName),
		ProjectGoal: normalizeText(raw["project_goal"], DefaultProjectGoal),
		TargetUsers: normalizeText(raw["target_users"], DefaultTargetUsers),

		TeamSize:    normalizeCount(raw["team_size"], 2),
		ModuleCount: normalizeCount(raw["module_count"], 3),

		UIPriority:        normalizeLevel(raw["ui_priority"], LevelMedium),
		BackendComplexity: normalizeLevel(raw["backend_complexity"], LevelMedium),
		DomainComplexity:  normalizeLevel(raw["domain_complexity"], LevelLow),
		ComplianceLevel:   normalizeLevel(raw["compliance_level"], LevelLow),

		DesignSource: normalizeDesign(raw["design_source"], DesignNone),

		FrontendBackendSeparation: normalizeBool(raw["frontend_backend_separation"], false),
		NeedFastValidation:        normalizeBool(raw["need_fast_validation"], true),

		IterationSpeed: normalizeSpeed(raw["iteration_speed"], SpeedNormal),
	}
}

// normalizeText trims a string value, substituting the default when absent
// or blank.
func normalizeText(value any, def string) string {
	s, ok := value.(string)
	if !ok {
		return def
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// normalizeCount parses an integer with a floor of 1. JSON numbers decode
// as float64, YAML as int; numeric strings are accepted too.
func normalizeCount(value any, def int) int {
	n := def
	switch v := value.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		n = int(v)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			n = parsed
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

func normalizeEnumText(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeLevel(value any, def Level) Level {
	switch Level(normalizeEnumText(value)) {
	case LevelLow:
		return LevelLow
	case LevelMedium:
		return LevelMedium
	case LevelHigh:
		return LevelHigh
	default:
		return def
	}
}

func normalizeSpeed(value any, def Speed) Speed {
	switch Speed(normalizeEnumText(value)) {
	case SpeedSlow:
		return SpeedSlow
	case SpeedNormal:
		return SpeedNormal
	case SpeedFast:
		return SpeedFast
	default:
		return def
	}
}

func normalizeDesign(value any, def DesignSource) DesignSource {
	switch DesignSource(normalizeEnumText(value)) {
	case DesignNone:
		return DesignNone
	case DesignWireframe:
		return DesignWireframe
	case DesignFigma:
		return DesignFigma
	default:
		return def
	}
}

// normalizeBool recognizes a fixed token set, case-insensitively.
// Anything unrecognized falls back to the default.
func normalizeBool(value any, def bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "y":
			return true
		case "false", "0", "no", "n":
			return false
		}
	}
	return def
}
