// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/pdiddy/transfer-engine/internal/articulation"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

func option(codes ...string) types.ConjunctionGroup {
	g := types.ConjunctionGroup{}
	for _, c := range codes {
		g.Courses = append(g.Courses, types.CourseRequirement{CourseLetters: c})
	}
	return g
}

func honorsOption(code string) types.ConjunctionGroup {
	return types.ConjunctionGroup{Courses: []types.CourseRequirement{
		{CourseLetters: code, Honors: true},
	}}
}

func block(opts ...types.ConjunctionGroup) types.LogicBlock {
	return types.LogicBlock{Options: opts}
}

func TestBinaryBanners(t *testing.T) {
	yes := Binary(true, "CSE 8A", "Complete match.")
	if !strings.HasPrefix(yes, "Yes, based on official articulation. - CSE 8A") {
		t.Errorf("unexpected yes banner: %q", yes)
	}
	if !strings.Contains(yes, "\n\nComplete match.") {
		t.Error("banner and body must be separated by a blank line")
	}

	no := Binary(false, "", "")
	if no != "No, based on verified articulation logic." {
		t.Errorf("unexpected no banner: %q", no)
	}
}

func TestNoArticulation(t *testing.T) {
	out := NoArticulation("Must be completed at the receiving institution.")
	if !strings.Contains(out, "no sending-institution equivalent") {
		t.Errorf("missing terminal text: %q", out)
	}
	if !strings.Contains(out, "Reason: Must be completed at the receiving institution.") {
		t.Errorf("missing reason line: %q", out)
	}

	if !strings.Contains(NoArticulation(""), "Reason: No articulation available") {
		t.Error("empty reason must fall back to the default")
	}
}

func TestExplainCompleteMatch(t *testing.T) {
	logic := block(option("CIS 22A"))
	res := articulation.Evaluate(logic, []string{"CIS 22A"})

	out := Explain(logic, res)
	if !strings.Contains(out, "Complete match. Satisfied with: CIS 22A.") {
		t.Errorf("unexpected explanation: %q", out)
	}
}

func TestExplainPartialMatch(t *testing.T) {
	logic := block(option("MATH 1A", "MATH 1B"))
	res := articulation.Evaluate(logic, []string{"MATH 1A"})

	out := Explain(logic, res)
	if !strings.Contains(out, "Partial match (50%)") {
		t.Errorf("expected 50%% partial match: %q", out)
	}
	if !strings.Contains(out, "Option A") || !strings.Contains(out, "MATH 1B") {
		t.Errorf("expected best option and missing course: %q", out)
	}
}

func TestExplainNoMatchListsOptions(t *testing.T) {
	logic := block(option("CIS 22A"), option("CIS 35A", "CIS 36B"))
	res := articulation.Evaluate(logic, nil)

	out := Explain(logic, res)
	if !strings.Contains(out, "No matching courses taken.") {
		t.Errorf("expected no-match preamble: %q", out)
	}
	if !strings.Contains(out, "- Option A: CIS 22A") {
		t.Errorf("expected option A listing: %q", out)
	}
	if !strings.Contains(out, "- Option B: CIS 35A, CIS 36B") {
		t.Errorf("expected option B listing: %q", out)
	}
}

func TestExplainHonorsRequiredNote(t *testing.T) {
	logic := block(honorsOption("CIS 22AH"))
	res := articulation.Evaluate(logic, nil)

	out := Explain(logic, res)
	if !strings.Contains(out, "Only honors courses will satisfy this requirement.") {
		t.Errorf("expected honors warning: %q", out)
	}
}

func TestExplainRedundancyNote(t *testing.T) {
	logic := block(option("CIS 35A"), option("CIS 36A"))
	res := articulation.Evaluate(logic, []string{"CIS 35A", "CIS 36A"})

	out := Explain(logic, res)
	if !strings.Contains(out, "CIS 35A and CIS 36A are equivalent for this requirement") {
		t.Errorf("expected redundancy note: %q", out)
	}
}

func TestLogicVerbosityTiers(t *testing.T) {
	doc := types.RequirementDocument{
		ReceivingCourse: "CSE 8A",
		ReceivingTitle:  "Introduction to Programming 1",
		Logic:           block(option("CIS 22A"), honorsOption("CIS 22AH")),
	}

	minimal := Logic(doc, types.VerbosityMinimal, nil)
	if minimal != "CSE 8A: 2 articulation option(s), minimum 1 course(s)." {
		t.Errorf("unexpected minimal rendering: %q", minimal)
	}

	standard := Logic(doc, types.VerbosityStandard, nil)
	if !strings.Contains(standard, "Option A (complete): CIS 22A") {
		t.Errorf("expected option A line: %q", standard)
	}
	if !strings.Contains(standard, "Option B (complete): CIS 22AH (honors)") {
		t.Errorf("expected honors marker on option B: %q", standard)
	}
	if !strings.Contains(standard, "Honors courses accepted: CIS 22AH.") {
		t.Errorf("expected honors note: %q", standard)
	}

	lookup := func(code string) (types.CatalogEntry, bool) {
		return types.CatalogEntry{Code: code, Title: "A Title"}, true
	}
	detailed := Logic(doc, types.VerbosityDetailed, lookup)
	if !strings.Contains(detailed, "Available options: 2 (0 requiring multiple courses)") {
		t.Errorf("expected option summary: %q", detailed)
	}
	if !strings.Contains(detailed, "CIS 22A: A Title") {
		t.Errorf("expected catalog title enrichment: %q", detailed)
	}
}

func TestLogicMultiCourseOption(t *testing.T) {
	doc := types.RequirementDocument{
		ReceivingCourse: "CSE 11",
		Logic:           block(option("CIS 35A", "CIS 36B")),
	}

	out := Logic(doc, types.VerbosityStandard, nil)
	if !strings.Contains(out, "Option A (complete): CIS 35A, CIS 36B (complete all)") {
		t.Errorf("expected complete-all tag: %q", out)
	}
}

func TestLogicNoArticulation(t *testing.T) {
	doc := types.RequirementDocument{
		ReceivingCourse: "CSE 21",
		Logic:           types.LogicBlock{NoArticulation: true, NoArticulationReason: "Not offered."},
	}

	out := Logic(doc, types.VerbosityStandard, nil)
	if !strings.Contains(out, "Reason: Not offered.") {
		t.Errorf("expected reason: %q", out)
	}
}

func TestHonorsEquivalenceNamesHonorsFirst(t *testing.T) {
	want := "MATH 1AH and MATH 1A are equivalent for UC transfer credit. You may choose either."
	if got := HonorsEquivalence("MATH 1A", "MATH 1AH"); got != want {
		t.Errorf("HonorsEquivalence(plain, honors) = %q, want %q", got, want)
	}
	if got := HonorsEquivalence("MATH 1AH", "MATH 1A"); got != want {
		t.Errorf("HonorsEquivalence(honors, plain) = %q, want %q", got, want)
	}
}

func TestDescribeAttachesExplanation(t *testing.T) {
	logic := block(option("CIS 22A"))
	res := articulation.Evaluate(logic, []string{"CIS 22A"})

	described := Describe(logic, res)
	if described.Explanation == "" {
		t.Error("expected an explanation on the described result")
	}
	if res.Explanation != "" {
		t.Error("Describe must not mutate its input")
	}
}
