// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package articulation

import "github.com/pdiddy/transfer-engine/pkg/types"

// Summarize condenses a logic block's shape: option counts, the smallest
// option size, and honors availability. No-articulation blocks summarize to
// the zero counts with NoArticulation set.
func Summarize(logic types.LogicBlock) types.LogicSummary {
	if logic.IsNoArticulation() {
		return types.LogicSummary{NoArticulation: true}
	}

	s := types.LogicSummary{}
	minCourses := 0
	for _, opt := range logic.Options {
		s.OptionCount++
		n := len(opt.Courses)
		if n > 1 {
			s.MultiCourseOptions++
		}
		if minCourses == 0 || (n > 0 && n < minCourses) {
			minCourses = n
		}
		for _, req := range opt.Courses {
			if req.Honors {
				s.HasHonorsOptions = true
			}
		}
	}
	s.MinCoursesRequired = minCourses
	s.HonorsRequired = HonorsRequired(logic)
	return s
}
