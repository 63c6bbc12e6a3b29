// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/pdiddy/transfer-engine/pkg/types"
)

func TestComboValidationTable(t *testing.T) {
	results := map[string]types.SatisfactionResult{
		"CSE 8B": {
			Missing: map[string][]string{"A": {"CIS 22B"}},
		},
		"CSE 8A": {
			Satisfied:        true,
			SatisfiedOptions: []string{"CIS 22A"},
		},
	}

	out := ComboValidation(results)
	lines := strings.Split(out, "\n")

	if lines[0] != "Some supplied courses are not satisfied." {
		t.Errorf("unexpected summary: %q", lines[0])
	}
	if !strings.Contains(out, "| Course | Status | Missing | Satisfied By |") {
		t.Error("missing table header")
	}

	// Rows sorted by course code.
	rowA := "| CSE 8A | satisfied | None | CIS 22A |"
	rowB := "| CSE 8B | not satisfied | CIS 22B | None |"
	if !strings.Contains(out, rowA) {
		t.Errorf("missing row %q in:\n%s", rowA, out)
	}
	if !strings.Contains(out, rowB) {
		t.Errorf("missing row %q in:\n%s", rowB, out)
	}
	if strings.Index(out, rowA) > strings.Index(out, rowB) {
		t.Error("rows must be sorted by course code")
	}
}

func TestComboValidationAllSatisfied(t *testing.T) {
	results := map[string]types.SatisfactionResult{
		"CSE 8A": {Satisfied: true, SatisfiedOptions: []string{"CIS 22A"}},
	}

	out := ComboValidation(results)
	if !strings.HasPrefix(out, "All supplied courses are satisfied.") {
		t.Errorf("unexpected summary: %q", out)
	}
}

func TestComboValidationEmpty(t *testing.T) {
	if out := ComboValidation(nil); out != "No validation results to display." {
		t.Errorf("unexpected empty rendering: %q", out)
	}
}
