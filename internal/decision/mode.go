package decision

import (
	"strings"

	"umx/internal/requirement"
)

// Mode controls how many planning documents the pack contains.
type Mode string

const (
	ModeMinimal    Mode = "minimal"
	ModeStandard   Mode = "standard"
	ModeFull       Mode = "full"
	ModeSingleFile Mode = "single-file"
)

// modeAliases maps accepted spellings to canonical modes. Lookup is
// case-insensitive (callers lower-case via NormalizeMode).
var modeAliases = map[string]Mode{
	"single":      ModeSingleFile,
	"single_file": ModeSingleFile,
	"single-file": ModeSingleFile,
	"minimal":     ModeMinimal,
	"standard":    ModeStandard,
	"full":        ModeFull,
}

// NormalizeMode lowercases and de-aliases a raw mode token. The result is
// not guaranteed valid — unknown tokens pass through so callers can reject
// them with the original spelling intact.
func NormalizeMode(raw string) Mode {
	token := strings.ToLower(strings.TrimSpace(raw))
	if mode, ok := modeAliases[token]; ok {
		return mode
	}
	return Mode(token)
}

// ValidMode reports whether m is one of the four canonical modes.
func ValidMode(m Mode) bool {
	switch m {
	case ModeMinimal, ModeStandard, ModeFull, ModeSingleFile:
		return true
	}
	return false
}

// ResolveMode picks the documentation mode. Branches are checked in strict
// priority order and exactly one fires:
//
//  1. a valid forced mode wins unconditionally;
//  2. tier S with a fast-validation need gets minimal;
//  3. tier XL, or compliance at its highest rank, gets full;
//  4. everything else gets standard.
//
// The order matters because the conditions overlap: XL + fast-validation
// must land on full, which holds because rule 2 requires tier S.
func ResolveMode(req *requirement.Requirement, tier Tier, forced Mode) Mode {
	if ValidMode(forced) {
		return forced
	}
	if tier == TierS && req.NeedFastValidation {
		return ModeMinimal
	}
	if tier == TierXL || req.ComplianceLevel.Ord() == 2 {
		return ModeFull
	}
	return ModeStandard
}
