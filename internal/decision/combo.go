// Package decision implements the methodology decision engine: scoring the
// six delivery combos against a normalized requirement, deriving the
// complexity tier, resolving the documentation mode, and selecting the
// primary/secondary combo.
//
// Everything in this package is a pure, total function of its inputs. The
// rule tables are the intellectual core of the system — they encode the
// selection policy as data, not as scattered conditionals.
package decision

import "sort"

// Combo is one of the six statically defined delivery methodologies.
// The catalog is closed: combos never change at runtime.
type Combo struct {
	Code     string
	Name     string
	Pipeline string
	Fit      string
}

// Combos is the closed catalog keyed by code.
var Combos = map[string]Combo{
	"c1": {"c1", "Requirement Canvas", "Requirement canvas -> prototype -> AI build", "personal tools, lightweight projects, quick starts"},
	"c2": {"c2", "Story Mapping", "Story mapping -> task breakdown -> AI iteration", "small/medium projects, continuous iteration, multi-person teams"},
	"c3": {"c3", "Scenario & Contract", "Scenario-driven spec -> API contracts -> parallel frontend/backend", "separated frontend/backend, contract collaboration, costly integration"},
	"c4": {"c4", "Design Driven", "Figma -> prompt -> AI full stack", "UI/interaction-led projects, design first"},
	"c5": {"c5", "Lean MVP", "Lean MVP -> feedback -> fast AI iteration", "idea validation, rapid trial and error"},
	"c6": {"c6", "Lean DDD", "Lean DDD -> skeleton -> AI fill-in", "complex domains, team delivery, long-term maintenance"},
}

// ComboCodes returns the six codes in ascending code order.
func ComboCodes() []string {
	codes := make([]string, 0, len(Combos))
	for code := range Combos {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ValidCombo reports whether code names a known combo.
func ValidCombo(code string) bool {
	_, ok := Combos[code]
	return ok
}
