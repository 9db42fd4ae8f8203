package decision

import "umx/internal/requirement"

// Tier is the coarse project complexity band.
type Tier string

const (
	TierS  Tier = "S"
	TierM  Tier = "M"
	TierL  Tier = "L"
	TierXL Tier = "XL"
)

// Rank returns the ordinal position of a tier (S=0 .. XL=3).
func (t Tier) Rank() int {
	switch t {
	case TierM:
		return 1
	case TierL:
		return 2
	case TierXL:
		return 3
	default:
		return 0
	}
}

// Classify scalarizes six requirement inputs into a single complexity tier.
// Team size and module count contribute banded points; the three ordinal
// levels contribute their raw rank; separation adds one. The mapping is
// monotonic: raising any input never lowers the tier. Threshold boundaries
// are inclusive, so a total sitting exactly on a boundary resolves to the
// lower tier.
func Classify(req *requirement.Requirement) Tier {
	score := 0

	switch {
	case req.TeamSize <= 2:
		// 0
	case req.TeamSize <= 5:
		score++
	case req.TeamSize <= 8:
		score += 2
	default:
		score += 3
	}

	switch {
	case req.ModuleCount <= 3:
		// 0
	case req.ModuleCount <= 6:
		score++
	case req.ModuleCount <= 10:
		score += 2
	default:
		score += 3
	}

	score += req.DomainComplexity.Ord()
	score += req.ComplianceLevel.Ord()
	score += req.BackendComplexity.Ord()
	if req.FrontendBackendSeparation {
		score++
	}

	switch {
	case score <= 4:
		return TierS
	case score <= 7:
		return TierM
	case score <= 10:
		return TierL
	default:
		return TierXL
	}
}
