package decision

import "sort"

// Selection is the chosen primary combo plus an optional secondary.
// Secondary is empty when no runner-up is worth surfacing.
type Selection struct {
	Primary   string
	Secondary string
}

// secondaryMargin is the largest score gap at which the runner-up is still
// surfaced. A small gap signals genuine ambiguity; a larger one means the
// recommendation is confident and a secondary would be noise.
const secondaryMargin = 2

// ResolveSelection picks the primary and secondary combo from the score
// table. Codes are ordered by descending score with ascending code as the
// tie-break, so equal scores always resolve the same way.
//
// A valid forced code becomes primary regardless of its score; the
// secondary is then the top-ranked code (or the second-ranked one when the
// forced code already ranks first). Without a forced code the top-ranked
// code wins and the runner-up is surfaced only within secondaryMargin.
func ResolveSelection(scores ScoreTable, forced string) Selection {
	ordered := make([]string, 0, len(scores))
	for code := range scores {
		ordered = append(ordered, code)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if scores[ordered[i]] != scores[ordered[j]] {
			return scores[ordered[i]] > scores[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})

	if ValidCombo(forced) {
		sel := Selection{Primary: forced}
		if len(ordered) > 0 && ordered[0] != forced {
			sel.Secondary = ordered[0]
		} else if len(ordered) > 1 {
			sel.Secondary = ordered[1]
		}
		return sel
	}

	sel := Selection{Primary: ordered[0]}
	if len(ordered) > 1 && scores[ordered[0]]-scores[ordered[1]] <= secondaryMargin {
		sel.Secondary = ordered[1]
	}
	return sel
}
