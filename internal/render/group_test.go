// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/pdiddy/transfer-engine/pkg/types"
)

func TestGroupSummaryChooseOneSection(t *testing.T) {
	docs := []types.RequirementDocument{
		{
			ReceivingCourse: "CSE 11",
			Group:           "1",
			GroupTitle:      "Computer Science Core",
			GroupLogicType:  types.GroupChooseOneSection,
			Section:         "B",
			Logic:           block(option("CIS 35A", "CIS 36B")),
		},
		{
			ReceivingCourse: "CSE 8A",
			Group:           "1",
			GroupTitle:      "Computer Science Core",
			GroupLogicType:  types.GroupChooseOneSection,
			Section:         "A",
			Logic:           block(option("CIS 22A")),
		},
	}

	out := GroupSummary(docs, types.VerbosityStandard, nil)

	if !strings.HasPrefix(out, "Group 1: Computer Science Core") {
		t.Errorf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "choose exactly one section") {
		t.Errorf("expected choose-one-section instruction: %q", out)
	}
	sectionA := strings.Index(out, "Section A")
	sectionB := strings.Index(out, "Section B")
	if sectionA < 0 || sectionB < 0 || sectionA > sectionB {
		t.Errorf("expected section headers in order A then B:\n%s", out)
	}
}

func TestGroupSummarySelectN(t *testing.T) {
	docs := []types.RequirementDocument{
		{
			ReceivingCourse: "CSE 8A",
			Group:           "2",
			GroupLogicType:  types.GroupSelectNCourses,
			NCourses:        2,
			Logic:           block(option("CIS 22A")),
		},
	}

	out := GroupSummary(docs, types.VerbosityStandard, nil)
	if !strings.Contains(out, "Select 2 courses") {
		t.Errorf("expected select-n instruction: %q", out)
	}
}

func TestGroupSummaryEmpty(t *testing.T) {
	if out := GroupSummary(nil, types.VerbosityStandard, nil); out != "No articulation documents found for this group." {
		t.Errorf("unexpected empty rendering: %q", out)
	}
}
