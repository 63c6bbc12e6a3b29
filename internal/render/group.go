// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/transfer-engine/pkg/types"
)

// GroupSummary renders every articulation document of one requirement
// group: a header, the instruction matching the group's combination rule,
// then each document's options, organized by section for
// choose_one_section groups. Documents are sorted by section then
// receiving course.
func GroupSummary(docs []types.RequirementDocument, verbosity types.Verbosity, lookup types.CatalogLookup) string {
	if len(docs) == 0 {
		return "No articulation documents found for this group."
	}

	sorted := append([]types.RequirementDocument(nil), docs...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Section != sorted[j].Section {
			return sorted[i].Section < sorted[j].Section
		}
		return sorted[i].ReceivingCourse < sorted[j].ReceivingCourse
	})

	first := sorted[0]
	var b strings.Builder
	b.WriteString("Group " + first.Group)
	if first.GroupTitle != "" {
		b.WriteString(": " + first.GroupTitle)
	}
	b.WriteString("\n" + groupInstruction(first.GroupLogicType, first.NCourses) + "\n")

	if first.GroupLogicType == types.GroupChooseOneSection {
		currentSection := ""
		for _, doc := range sorted {
			section := doc.Section
			if section == "" {
				section = "A"
			}
			if section != currentSection {
				currentSection = section
				fmt.Fprintf(&b, "\nSection %s (complete all of its courses):\n", section)
			}
			b.WriteString("\n" + Logic(doc, verbosity, lookup) + "\n")
		}
	} else {
		for _, doc := range sorted {
			b.WriteString("\n" + Logic(doc, verbosity, lookup) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// groupInstruction states what the student must do for the group's rule.
func groupInstruction(logicType types.GroupLogicType, n int) string {
	switch logicType {
	case types.GroupChooseOneSection:
		return "Complete one full section: choose exactly one section and complete all of its courses. Do not mix courses between sections."
	case types.GroupSelectNCourses:
		noun := "course"
		if n != 1 {
			noun = "courses"
		}
		return fmt.Sprintf("Select %d %s from the list below and complete the articulation requirements for each.", n, noun)
	case types.GroupAllRequired:
		return "Complete all courses: every course listed below must be satisfied."
	default:
		return "Complete the articulation requirements as specified below."
	}
}
