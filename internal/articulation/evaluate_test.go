// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package articulation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pdiddy/transfer-engine/pkg/types"
)

// option builds a conjunction group from plain (non-honors) course codes.
func option(codes ...string) types.ConjunctionGroup {
	g := types.ConjunctionGroup{}
	for _, c := range codes {
		g.Courses = append(g.Courses, types.CourseRequirement{CourseLetters: c})
	}
	return g
}

// honorsOption builds a single-course honors conjunction group.
func honorsOption(code string) types.ConjunctionGroup {
	return types.ConjunctionGroup{Courses: []types.CourseRequirement{
		{CourseLetters: code, Honors: true},
	}}
}

func block(opts ...types.ConjunctionGroup) types.LogicBlock {
	return types.LogicBlock{Options: opts}
}

func TestEvaluateDirectMatch(t *testing.T) {
	logic := block(option("CIS 22A"))

	res := Evaluate(logic, []string{"CIS 22A"})

	if !res.Satisfied {
		t.Fatal("expected direct match to satisfy")
	}
	if res.MatchPercent != 100 {
		t.Errorf("MatchPercent = %d, want 100", res.MatchPercent)
	}
	if diff := cmp.Diff([]string{"CIS 22A"}, res.SatisfiedOptions); diff != "" {
		t.Errorf("SatisfiedOptions mismatch (-want +got):\n%s", diff)
	}
	if len(res.Missing) != 0 {
		t.Errorf("Missing = %v, want empty", res.Missing)
	}
}

func TestEvaluateNormalizesCompletedCodes(t *testing.T) {
	logic := block(option("CIS 21JA"))

	res := Evaluate(logic, []string{"cis-21ja:"})

	if !res.Satisfied {
		t.Error("expected raw completed code to normalize and match")
	}
}

func TestEvaluatePartialConjunction(t *testing.T) {
	logic := block(option("MATH 1A", "MATH 1B"))

	res := Evaluate(logic, []string{"MATH 1A"})

	if res.Satisfied {
		t.Fatal("half-completed conjunction must not satisfy")
	}
	if res.MatchPercent != 50 {
		t.Errorf("MatchPercent = %d, want 50", res.MatchPercent)
	}
	want := map[string][]string{"A": {"MATH 1B"}}
	if diff := cmp.Diff(want, res.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateNoArticulation(t *testing.T) {
	blocks := map[string]types.LogicBlock{
		"explicit":      {NoArticulation: true},
		"empty options": {},
	}
	for name, logic := range blocks {
		t.Run(name, func(t *testing.T) {
			res := Evaluate(logic, []string{"CIS 22A", "MATH 1A"})
			if res.Satisfied {
				t.Error("no-articulation block must never satisfy")
			}
			if res.MatchPercent != 0 {
				t.Errorf("MatchPercent = %d, want 0", res.MatchPercent)
			}
			if len(res.Missing) != 0 {
				t.Errorf("Missing = %v, want empty", res.Missing)
			}
			if res.HonorsRequired {
				t.Error("no-articulation block cannot be honors-required")
			}
		})
	}
}

func TestEvaluateFirstSatisfiedOptionWins(t *testing.T) {
	logic := block(option("CIS 22A"), option("CIS 22AH"))

	res := Evaluate(logic, []string{"CIS 22AH", "CIS 22A"})

	if !res.Satisfied {
		t.Fatal("expected satisfaction")
	}
	if diff := cmp.Diff([]string{"CIS 22A"}, res.SatisfiedOptions); diff != "" {
		t.Errorf("expected the first option in document order to win (-want +got):\n%s", diff)
	}
}

func TestEvaluateHonorsFlagDoesNotGateMatching(t *testing.T) {
	// The leaf's honors flag is display metadata; matching is by code.
	logic := block(honorsOption("CIS 22AH"))

	if !Evaluate(logic, []string{"CIS 22AH"}).Satisfied {
		t.Error("completed honors course must match honors leaf")
	}
	if Evaluate(logic, []string{"CIS 22A"}).Satisfied {
		t.Error("non-honors code must not match a distinct honors code")
	}
}

func TestEvaluateBestPercentAcrossOptions(t *testing.T) {
	logic := block(
		option("MATH 1A", "MATH 1B", "MATH 1C"),
		option("MATH 10A", "MATH 10B"),
	)

	res := Evaluate(logic, []string{"MATH 10A"})

	if res.MatchPercent != 50 {
		t.Errorf("MatchPercent = %d, want 50 (best option)", res.MatchPercent)
	}
	want := map[string][]string{
		"A": {"MATH 1A", "MATH 1B", "MATH 1C"},
		"B": {"MATH 10B"},
	}
	if diff := cmp.Diff(want, res.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateHonorsRequired(t *testing.T) {
	allHonors := block(honorsOption("CIS 22AH"), honorsOption("MATH 1AH"))
	mixed := block(honorsOption("CIS 22AH"), option("CIS 22A"))

	if !Evaluate(allHonors, nil).HonorsRequired {
		t.Error("block with only honors options must be honors-required")
	}
	if Evaluate(mixed, nil).HonorsRequired {
		t.Error("block with an honors-free option must not be honors-required")
	}
}

// Adding completed courses can only improve an evaluation, never break it.
func TestEvaluateMonotonic(t *testing.T) {
	logic := block(
		option("CIS 22A"),
		option("MATH 1A", "MATH 1B"),
	)

	completed := []string{"MATH 1A"}
	base := Evaluate(logic, completed)

	extras := []string{"MATH 1B", "CIS 22A", "PHYS 4A"}
	for i := range extras {
		grown := append(append([]string(nil), completed...), extras[:i+1]...)
		res := Evaluate(logic, grown)
		if base.Satisfied && !res.Satisfied {
			t.Fatalf("adding %v broke satisfaction", extras[:i+1])
		}
		if res.MatchPercent < base.MatchPercent {
			t.Fatalf("adding %v lowered match percent from %d to %d",
				extras[:i+1], base.MatchPercent, res.MatchPercent)
		}
		base = res
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		logic types.LogicBlock
		want  types.LogicSummary
	}{
		{
			name:  "no articulation",
			logic: types.LogicBlock{NoArticulation: true},
			want:  types.LogicSummary{NoArticulation: true},
		},
		{
			name:  "single direct option",
			logic: block(option("CIS 22A")),
			want:  types.LogicSummary{OptionCount: 1, MinCoursesRequired: 1},
		},
		{
			name:  "mixed sizes with honors",
			logic: block(option("MATH 1A", "MATH 1B"), honorsOption("MATH 1AH")),
			want: types.LogicSummary{
				OptionCount:        2,
				MultiCourseOptions: 1,
				MinCoursesRequired: 1,
				HasHonorsOptions:   true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Summarize(tt.logic)); diff != "" {
				t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
