package decision

import "umx/internal/requirement"

// ScoreTable maps each combo code to its integer suitability score for one
// requirement. Built fresh per run, never mutated afterwards.
type ScoreTable map[string]int

// baselineScore is the common starting score for every combo. Rules only
// add or subtract small deltas on top of it.
const baselineScore = 2

// Score computes the suitability score of every combo for the given
// requirement. Rules are independent per combo: no rule reads another
// combo's score, so the result is deterministic and order-free.
//
// The deltas model genuine tension between goals — e.g. a very complex
// domain slightly penalizes the fast-validation combos (c4, c5) while
// strongly favoring the domain-driven one (c6).
func Score(req *requirement.Requirement) ScoreTable {
	team := req.TeamSize
	modules := req.ModuleCount
	ui := req.UIPriority.Ord()
	backend := req.BackendComplexity.Ord()
	domain := req.DomainComplexity.Ord()
	compliance := req.ComplianceLevel.Ord()
	design := req.DesignSource
	separation := req.FrontendBackendSeparation
	fast := req.NeedFastValidation
	speed := req.IterationSpeed.Ord()

	scores := ScoreTable{}
	for _, code := range ComboCodes() {
		scores[code] = baselineScore
	}

	// c1 Requirement Canvas: small team, few modules, fast start.
	if team <= 2 {
		scores["c1"] += 2
	}
	if modules <= 3 {
		scores["c1"] += 2
	}
	if fast {
		scores["c1"] += 2
	}
	if design == requirement.DesignNone || design == requirement.DesignWireframe {
		scores["c1"]++
	}
	if domain == 0 {
		scores["c1"]++
	}
	if compliance >= 1 {
		scores["c1"]--
	}

	// c2 Story Mapping: mid-size team, steady iteration.
	if team >= 2 && team <= 5 {
		scores["c2"] += 2
	}
	if modules >= 3 && modules <= 8 {
		scores["c2"] += 2
	}
	if speed >= 1 {
		scores["c2"] += 2
	}
	if domain >= 1 {
		scores["c2"]++
	}
	if fast {
		scores["c2"]++
	}

	// c3 Scenario & Contract: separation and backend weight dominate.
	if separation {
		scores["c3"] += 3
	}
	if backend >= 1 {
		scores["c3"] += 2
	}
	if modules >= 4 {
		scores["c3"] += 2
	}
	if compliance >= 1 {
		scores["c3"]++
	}

	// c4 Design Driven: a Figma source is the strongest single signal.
	if design == requirement.DesignFigma {
		scores["c4"] += 4
	}
	if ui == 2 {
		scores["c4"] += 3
	}
	if fast {
		scores["c4"]++
	}
	if domain == 2 {
		scores["c4"]--
	}

	// c5 Lean MVP: validation speed above all.
	if fast {
		scores["c5"] += 3
	}
	if team <= 3 {
		scores["c5"] += 2
	}
	if speed == 2 {
		scores["c5"] += 2
	}
	if modules <= 5 {
		scores["c5"]++
	}
	if domain == 2 {
		scores["c5"]--
	}

	// c6 Lean DDD: domain complexity and governance pressure.
	if domain == 2 {
		scores["c6"] += 4
	}
	if compliance >= 1 {
		scores["c6"] += 2
	}
	if team >= 5 {
		scores["c6"] += 2
	}
	if modules >= 6 {
		scores["c6"] += 2
	}
	if fast {
		scores["c6"]--
	}

	return scores
}
