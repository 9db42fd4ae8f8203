package decision

import (
	"testing"
)

// --- Decide: end-to-end scenarios ---

func TestDecide_LightweightProject(t *testing.T) {
	req := reqFrom(t, map[string]any{
		"team_size":            2,
		"module_count":         2,
		"need_fast_validation": true,
		"design_source":        "none",
		"domain_complexity":    "low",
		"compliance_level":     "low",
	})

	result := Decide(req, Overrides{})

	if result.Tier != TierS {
		t.Errorf("Tier = %s, want S", result.Tier)
	}
	if result.Mode != ModeMinimal {
		t.Errorf("Mode = %s, want minimal", result.Mode)
	}
	if result.Selection.Primary != "c1" {
		t.Errorf("Primary = %s, want c1 (requirement canvas)", result.Selection.Primary)
	}
}

func TestDecide_ContractHeavyProject(t *testing.T) {
	req := reqFrom(t, map[string]any{
		"team_size":                   4,
		"module_count":                7,
		"frontend_backend_separation": true,
		"backend_complexity":          "high",
		"need_fast_validation":        false,
		"design_source":               "none",
		"domain_complexity":           "low",
		"compliance_level":            "low",
	})

	result := Decide(req, Overrides{})

	if result.Selection.Primary != "c3" {
		t.Errorf("Primary = %s, want c3 (scenario & contract)", result.Selection.Primary)
	}
	if result.Tier.Rank() < TierM.Rank() {
		t.Errorf("Tier = %s, want at least M", result.Tier)
	}
}

func TestDecide_RegulatedXLProject(t *testing.T) {
	req := reqFrom(t, map[string]any{
		"domain_complexity":    "high",
		"compliance_level":     "high",
		"team_size":            9,
		"module_count":         12,
		"need_fast_validation": true,
	})

	result := Decide(req, Overrides{})

	if result.Tier != TierXL {
		t.Errorf("Tier = %s, want XL", result.Tier)
	}
	if result.Mode != ModeFull {
		t.Errorf("Mode = %s, want full regardless of fast validation", result.Mode)
	}
	if result.Selection.Primary != "c6" {
		t.Errorf("Primary = %s, want c6 (lean DDD)", result.Selection.Primary)
	}
}

// --- Decide: overrides ---

func TestDecide_ForcedOverrides(t *testing.T) {
	req := reqFrom(t, map[string]any{"team_size": 2, "module_count": 2})

	result := Decide(req, Overrides{Combo: "c6", Mode: ModeSingleFile})

	if result.Selection.Primary != "c6" {
		t.Errorf("Primary = %s, want forced c6", result.Selection.Primary)
	}
	if result.Mode != ModeSingleFile {
		t.Errorf("Mode = %s, want forced single-file", result.Mode)
	}
}

// --- Decide: determinism ---

func TestDecide_Deterministic(t *testing.T) {
	raw := map[string]any{
		"team_size": 5, "module_count": 6,
		"domain_complexity": "medium", "compliance_level": "medium",
		"frontend_backend_separation": true,
	}
	ov := Overrides{Mode: ModeStandard}

	first := Decide(reqFrom(t, raw), ov)
	for range 5 {
		got := Decide(reqFrom(t, raw), ov)
		if got.Tier != first.Tier || got.Mode != first.Mode || got.Selection != first.Selection {
			t.Fatalf("Decide not deterministic: %+v vs %+v", got, first)
		}
		for code := range first.Scores {
			if got.Scores[code] != first.Scores[code] {
				t.Fatalf("score[%s] differs: %d vs %d", code, got.Scores[code], first.Scores[code])
			}
		}
	}
}

// --- Reasons / Focus ---

func TestReasons_CappedAtFourWithBaselineFirst(t *testing.T) {
	req := reqFrom(t, map[string]any{"team_size": 1, "module_count": 2})

	for _, code := range ComboCodes() {
		reasons := Reasons(req, code)
		if len(reasons) == 0 || len(reasons) > 4 {
			t.Errorf("Reasons(%s) has %d entries, want 1-4", code, len(reasons))
		}
		if reasons[0] != baselineReason {
			t.Errorf("Reasons(%s)[0] = %q, want the fixed baseline line", code, reasons[0])
		}
	}
}

func TestFocus_CoversEveryCombo(t *testing.T) {
	seen := map[string]bool{}
	for _, code := range ComboCodes() {
		focus := Focus(Combos[code])
		if focus == "" {
			t.Errorf("Focus(%s) is empty", code)
		}
		if seen[focus] {
			t.Errorf("Focus(%s) duplicates another combo's focus", code)
		}
		seen[focus] = true
	}
}

// --- Catalog ---

func TestCombos_ClosedCatalog(t *testing.T) {
	codes := ComboCodes()
	want := []string{"c1", "c2", "c3", "c4", "c5", "c6"}

	if len(codes) != len(want) {
		t.Fatalf("ComboCodes = %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("ComboCodes[%d] = %s, want %s", i, codes[i], want[i])
		}
	}
	if ValidCombo("c7") || ValidCombo("") || ValidCombo("auto") {
		t.Error("ValidCombo should reject codes outside the catalog")
	}
}
