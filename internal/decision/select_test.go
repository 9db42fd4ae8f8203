package decision

import "testing"

// --- ResolveSelection: automatic ---

func TestResolveSelection_TopScoreWins(t *testing.T) {
	scores := ScoreTable{"c1": 3, "c2": 9, "c3": 5, "c4": 2, "c5": 4, "c6": 6}

	sel := ResolveSelection(scores, "")
	if sel.Primary != "c2" {
		t.Errorf("Primary = %s, want c2", sel.Primary)
	}
	// Gap 9-6 = 3 > margin, so no secondary.
	if sel.Secondary != "" {
		t.Errorf("Secondary = %s, want none for a confident gap", sel.Secondary)
	}
}

func TestResolveSelection_SmallGapSurfacesSecondary(t *testing.T) {
	scores := ScoreTable{"c1": 3, "c2": 9, "c3": 7, "c4": 2, "c5": 4, "c6": 6}

	sel := ResolveSelection(scores, "")
	if sel.Primary != "c2" || sel.Secondary != "c3" {
		t.Errorf("Selection = %+v, want c2 primary with c3 secondary", sel)
	}
}

func TestResolveSelection_GapOfExactlyTwoStillSurfaces(t *testing.T) {
	scores := ScoreTable{"c1": 9, "c2": 7, "c3": 1, "c4": 1, "c5": 1, "c6": 1}

	sel := ResolveSelection(scores, "")
	if sel.Secondary != "c2" {
		t.Errorf("Secondary = %s, want c2 (margin is inclusive)", sel.Secondary)
	}
}

// --- ResolveSelection: tie-break ---

func TestResolveSelection_TieBreaksByAscendingCode(t *testing.T) {
	scores := ScoreTable{"c1": 5, "c2": 5, "c3": 5, "c4": 5, "c5": 5, "c6": 5}

	sel := ResolveSelection(scores, "")
	if sel.Primary != "c1" {
		t.Errorf("Primary = %s, want c1 (lexicographically smallest)", sel.Primary)
	}
	if sel.Secondary != "c2" {
		t.Errorf("Secondary = %s, want c2", sel.Secondary)
	}
}

func TestResolveSelection_Deterministic(t *testing.T) {
	scores := ScoreTable{"c1": 4, "c2": 8, "c3": 8, "c4": 4, "c5": 8, "c6": 2}

	first := ResolveSelection(scores, "")
	for range 10 {
		if got := ResolveSelection(scores, ""); got != first {
			t.Fatalf("selection not deterministic: %+v vs %+v", got, first)
		}
	}
	if first.Primary != "c2" || first.Secondary != "c3" {
		t.Errorf("Selection = %+v, want c2/c3", first)
	}
}

// --- ResolveSelection: forced ---

func TestResolveSelection_ForcedBecomesPrimary(t *testing.T) {
	// c4 scores last; forcing it must still make it primary.
	scores := ScoreTable{"c1": 9, "c2": 6, "c3": 5, "c4": 1, "c5": 4, "c6": 3}

	sel := ResolveSelection(scores, "c4")
	if sel.Primary != "c4" {
		t.Errorf("Primary = %s, want forced c4", sel.Primary)
	}
	if sel.Secondary != "c1" {
		t.Errorf("Secondary = %s, want top-ranked c1", sel.Secondary)
	}
}

func TestResolveSelection_ForcedIsAlsoTopRanked(t *testing.T) {
	scores := ScoreTable{"c1": 9, "c2": 6, "c3": 5, "c4": 1, "c5": 4, "c6": 3}

	sel := ResolveSelection(scores, "c1")
	if sel.Primary != "c1" {
		t.Errorf("Primary = %s, want c1", sel.Primary)
	}
	if sel.Secondary != "c2" {
		t.Errorf("Secondary = %s, want second-ranked c2", sel.Secondary)
	}
}

func TestResolveSelection_InvalidForcedIgnored(t *testing.T) {
	scores := ScoreTable{"c1": 9, "c2": 6, "c3": 5, "c4": 1, "c5": 4, "c6": 3}

	sel := ResolveSelection(scores, "c9")
	if sel.Primary != "c1" {
		t.Errorf("Primary = %s, want automatic c1", sel.Primary)
	}
}
