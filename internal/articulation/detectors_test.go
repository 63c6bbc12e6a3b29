// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package articulation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pdiddy/transfer-engine/pkg/types"
)

func TestHonorsInfo(t *testing.T) {
	logic := block(
		option("MATH 1A", "MATH 1B"),
		honorsOption("MATH 1AH"),
		honorsOption("CIS 22AH"),
	)

	honors, nonHonors := HonorsInfo(logic)

	if diff := cmp.Diff([]string{"CIS 22AH", "MATH 1AH"}, honors); diff != "" {
		t.Errorf("honors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"MATH 1A", "MATH 1B"}, nonHonors); diff != "" {
		t.Errorf("non-honors mismatch (-want +got):\n%s", diff)
	}
}

func TestRedundantSingleCourseOptions(t *testing.T) {
	// Each completed course alone satisfies the block, so completing both
	// is redundant.
	logic := block(option("CIS 35A"), option("CIS 36A"))

	got := Redundant([]string{"CIS 36A", "CIS 35A"}, logic)

	want := [][]string{{"CIS 35A", "CIS 36A"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Redundant mismatch (-want +got):\n%s", diff)
	}
}

func TestRedundantIgnoresComboContributors(t *testing.T) {
	// MATH 1B only contributes inside a conjunction; it is not redundant
	// with the direct match.
	logic := block(option("CIS 22A"), option("MATH 1A", "MATH 1B"))

	if got := Redundant([]string{"CIS 22A", "MATH 1B"}, logic); len(got) != 0 {
		t.Errorf("Redundant = %v, want none", got)
	}
}

func TestRedundantHonorsPair(t *testing.T) {
	logic := block(option("CIS 22A"), honorsOption("CIS 22AH"))

	got := Redundant([]string{"CIS 22AH", "CIS 22A"}, logic)

	want := [][]string{{"CIS 22A", "CIS 22AH"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Redundant mismatch (-want +got):\n%s", diff)
	}
}

func TestRedundantEmptyInputs(t *testing.T) {
	logic := block(option("CIS 22A"))

	if got := Redundant(nil, logic); got != nil {
		t.Errorf("Redundant(nil) = %v, want nil", got)
	}
	if got := Redundant([]string{"CIS 22A"}, types.LogicBlock{NoArticulation: true}); got != nil {
		t.Errorf("Redundant on no-articulation = %v, want nil", got)
	}
}

func TestHonorsPairInBlock(t *testing.T) {
	logic := block(option("CIS 22A"), honorsOption("CIS 22AH"))

	if !HonorsPairInBlock(logic, "CIS 22A", "CIS 22AH") {
		t.Error("expected pair to be recognized")
	}
	if HonorsPairInBlock(logic, "CIS 22A", "CIS 22B") {
		t.Error("CIS 22A / CIS 22B is not an honors pair")
	}
	if HonorsPairInBlock(block(option("CIS 22A")), "CIS 22A", "CIS 22AH") {
		t.Error("pair requires both codes as single-course options")
	}
}
