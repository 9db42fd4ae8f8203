package decision

import (
	"testing"
)

// --- NormalizeMode / ValidMode ---

func TestNormalizeMode_Aliases(t *testing.T) {
	tests := []struct {
		raw  string
		want Mode
	}{
		{"single", ModeSingleFile},
		{"single_file", ModeSingleFile},
		{"SINGLE-FILE", ModeSingleFile},
		{"  Full  ", ModeFull},
		{"minimal", ModeMinimal},
		{"standard", ModeStandard},
		{"bogus", Mode("bogus")},
	}

	for _, tt := range tests {
		if got := NormalizeMode(tt.raw); got != tt.want {
			t.Errorf("NormalizeMode(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestValidMode(t *testing.T) {
	for _, m := range []Mode{ModeMinimal, ModeStandard, ModeFull, ModeSingleFile} {
		if !ValidMode(m) {
			t.Errorf("ValidMode(%s) = false", m)
		}
	}
	if ValidMode(Mode("auto")) || ValidMode(Mode("")) {
		t.Error("auto and empty are not valid modes")
	}
}

// --- ResolveMode ---

func TestResolveMode_ForcedWins(t *testing.T) {
	// XL + high compliance would auto-resolve to full; forced minimal wins.
	req := reqFrom(t, map[string]any{
		"team_size": 9, "module_count": 12,
		"domain_complexity": "high", "compliance_level": "high",
	})
	tier := Classify(req)

	if got := ResolveMode(req, tier, ModeMinimal); got != ModeMinimal {
		t.Errorf("forced minimal should win, got %s", got)
	}
	if got := ResolveMode(req, tier, ModeSingleFile); got != ModeSingleFile {
		t.Errorf("forced single-file should win, got %s", got)
	}
}

func TestResolveMode_InvalidForcedIgnored(t *testing.T) {
	req := reqFrom(t, map[string]any{"team_size": 2, "module_count": 2, "need_fast_validation": true})

	if got := ResolveMode(req, TierS, Mode("turbo")); got != ModeMinimal {
		t.Errorf("invalid forced mode should fall through to auto, got %s", got)
	}
}

func TestResolveMode_SmallAndFastIsMinimal(t *testing.T) {
	req := reqFrom(t, map[string]any{"need_fast_validation": true})

	if got := ResolveMode(req, TierS, ""); got != ModeMinimal {
		t.Errorf("S + fast validation = %s, want minimal", got)
	}
}

func TestResolveMode_XLBeatsFastValidation(t *testing.T) {
	// Rule 2 requires tier S, so XL + fast validation lands on full.
	req := reqFrom(t, map[string]any{"need_fast_validation": true})

	if got := ResolveMode(req, TierXL, ""); got != ModeFull {
		t.Errorf("XL + fast validation = %s, want full", got)
	}
}

func TestResolveMode_HighComplianceIsFull(t *testing.T) {
	req := reqFrom(t, map[string]any{"compliance_level": "high", "need_fast_validation": false})

	if got := ResolveMode(req, TierM, ""); got != ModeFull {
		t.Errorf("high compliance = %s, want full", got)
	}
}

func TestResolveMode_DefaultIsStandard(t *testing.T) {
	req := reqFrom(t, map[string]any{"need_fast_validation": false})

	if got := ResolveMode(req, TierM, ""); got != ModeStandard {
		t.Errorf("default mode = %s, want standard", got)
	}
}
