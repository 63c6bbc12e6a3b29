// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package articulation

import (
	"sort"

	"github.com/pdiddy/transfer-engine/internal/coursecode"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

// ValidateGroup checks a completed course set against a whole requirement
// group. All documents must belong to the same group; the combination rule
// and course count are read from the first document. Each receiving course
// is satisfied when Evaluate satisfies its block, then the rule decides:
//
//   - all_required: every receiving course satisfied
//   - select_n_courses: at least NCourses receiving courses satisfied
//   - choose_one_section: exactly one section with all of its courses
//     satisfied (two complete sections is an ambiguous mix, not a pass)
//
// An unknown or empty rule falls back to all_required.
func ValidateGroup(completed []string, docs []types.RequirementDocument) types.GroupValidation {
	v := types.GroupValidation{SectionMatches: map[string][]string{}}
	if len(docs) == 0 {
		return v
	}

	logicType := docs[0].GroupLogicType
	v.RequiredCount = docs[0].NCourses

	sectionSizes := map[string]int{}
	for _, doc := range docs {
		section := doc.Section
		if section == "" {
			section = "A"
		}
		sectionSizes[section]++

		if Evaluate(doc.Logic, completed).Satisfied {
			v.SatisfiedCourses = append(v.SatisfiedCourses, doc.ReceivingCourse)
			v.SectionMatches[section] = append(v.SectionMatches[section], doc.ReceivingCourse)
		} else {
			v.UnsatisfiedCourses = append(v.UnsatisfiedCourses, doc.ReceivingCourse)
		}
	}
	sort.Strings(v.SatisfiedCourses)
	sort.Strings(v.UnsatisfiedCourses)
	v.SatisfiedCount = len(v.SatisfiedCourses)

	switch logicType {
	case types.GroupSelectNCourses:
		v.FullySatisfied = v.RequiredCount > 0 && v.SatisfiedCount >= v.RequiredCount
	case types.GroupChooseOneSection:
		var complete []string
		for section, matched := range v.SectionMatches {
			if len(matched) == sectionSizes[section] {
				complete = append(complete, section)
			}
		}
		if len(complete) == 1 {
			v.FullySatisfied = true
			v.SatisfiedSection = complete[0]
		}
	default: // all_required
		v.FullySatisfied = len(v.UnsatisfiedCourses) == 0
	}

	v.PartiallySatisfied = v.SatisfiedCount > 0 && !v.FullySatisfied
	return v
}

// ValidateSelection checks whether a set of receiving courses can all be
// articulated within a single section of the group: some section must
// contain every requested course, each with at least one articulation
// option. The first option's sending courses are reported per match.
func ValidateSelection(receiving []string, docs []types.RequirementDocument) types.SelectionValidation {
	requested := map[string]bool{}
	for _, rc := range receiving {
		requested[coursecode.Normalize(rc)] = true
	}
	if len(requested) == 0 {
		return types.SelectionValidation{}
	}

	bySection := map[string][]types.RequirementDocument{}
	for _, doc := range docs {
		section := doc.Section
		if section == "" {
			section = "A"
		}
		bySection[section] = append(bySection[section], doc)
	}

	var sections []string
	for s := range bySection {
		sections = append(sections, s)
	}
	sort.Strings(sections)

	for _, section := range sections {
		inSection := map[string]types.LogicBlock{}
		for _, doc := range bySection[section] {
			code := coursecode.Normalize(doc.ReceivingCourse)
			if requested[code] {
				inSection[code] = doc.Logic
			}
		}
		if len(inSection) != len(requested) {
			continue
		}

		matched := map[string][]string{}
		satisfied := true
		for code, logic := range inSection {
			if logic.IsNoArticulation() {
				satisfied = false
				break
			}
			matched[code] = coursecode.NormalizeAll(logic.Options[0].Codes())
		}
		if satisfied {
			return types.SelectionValidation{
				FullySatisfied: true,
				Section:        section,
				MatchedOptions: matched,
			}
		}
	}

	missing := sortedKeys(requested)
	return types.SelectionValidation{MissingCourses: missing}
}
