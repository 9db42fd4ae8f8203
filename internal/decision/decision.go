package decision

import "umx/internal/requirement"

// Result bundles everything the engine derives from one requirement.
// All fields are value objects; nothing is shared across runs.
type Result struct {
	Scores    ScoreTable
	Tier      Tier
	Mode      Mode
	Selection Selection
}

// Overrides carries the operator-forced choices. Empty fields mean
// "decide automatically". Callers validate forced values before calling
// Decide; the resolvers treat invalid values as absent.
type Overrides struct {
	Combo string
	Mode  Mode
}

// Decide runs the full engine: score, classify, select, resolve mode.
// Pure function of its inputs — identical requirement and overrides always
// produce an identical result.
func Decide(req *requirement.Requirement, ov Overrides) Result {
	scores := Score(req)
	tier := Classify(req)
	return Result{
		Scores:    scores,
		Tier:      tier,
		Mode:      ResolveMode(req, tier, ov.Mode),
		Selection: ResolveSelection(scores, ov.Combo),
	}
}

// baselineReason opens every reason list: the execution base is fixed
// regardless of combo.
const baselineReason = "Every combo runs on the same execution base: Epic -> Feature/Story -> Core Spec"

// Reasons explains why a combo fits the requirement, capped at four lines.
// The first line is always the fixed baseline statement.
func Reasons(req *requirement.Requirement, comboCode string) []string {
	reasons := []string{baselineReason}

	switch comboCode {
	case "c1":
		if req.TeamSize <= 2 {
			reasons = append(reasons, "Small team: a requirement canvas and prototype keep communication cost low")
		}
		if req.ModuleCount <= 3 {
			reasons = append(reasons, "Few modules: well suited to shipping a runnable version quickly")
		}
	case "c2":
		reasons = append(reasons, "The project needs continuous iteration; story slices deliver steadily")
		if req.ModuleCount >= 3 {
			reasons = append(reasons, "Medium module count fits batch-by-iteration delivery")
		}
	case "c3":
		reasons = append(reasons, "Clear frontend/backend separation or contract needs; contract-first is safer")
		if req.BackendComplexity != requirement.LevelLow {
			reasons = append(reasons, "Backend complexity is elevated; fixing the API first cuts integration cost")
		}
	case "c4":
		reasons = append(reasons,
			"The project leads with visuals and interaction; a design-driven path is more efficient",
			"Mapping design files to prompts avoids merely reproducing the visuals")
	case "c5":
		reasons = append(reasons,
			"The current goal is validation; an MVP route minimizes the cost of being wrong",
			"A feedback loop drives the next iteration quickly")
	case "c6":
		reasons = append(reasons,
			"Complex domain or high compliance; drawing domain boundaries first is safer",
			"A lean DDD skeleton reduces structural rework later")
	}

	if len(reasons) > 4 {
		reasons = reasons[:4]
	}
	return reasons
}

// Focus returns the one-line execution emphasis for the primary combo.
func Focus(primary Combo) string {
	switch primary.Code {
	case "c1":
		return "Focus on clarifying requirements with the canvas and prototype so a fast start stays on track."
	case "c2":
		return "Focus on slicing by story so every iteration delivers a verifiable result."
	case "c3":
		return "Focus on pinning scenarios and API contracts first to control integration cost."
	case "c4":
		return "Focus on aligning design files with implementation constraints, not just reproducing visuals."
	case "c5":
		return "Focus on MVP hypotheses and the feedback loop to validate value fast."
	case "c6":
		return "Focus on drawing domain boundaries first so the system stays extensible and governable."
	}
	return "Focus execution around the primary combo."
}
