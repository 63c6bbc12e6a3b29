// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package articulation decides whether completed sending-institution courses
// satisfy receiving-institution requirements. It covers single-block
// evaluation, honors and redundancy detection, cross-referencing a course
// against a document collection, and group-level validation. Every function
// is a pure transformation of its inputs: malformed or empty logic degrades
// to an unsatisfied result rather than an error.
package articulation

import (
	"sort"

	"github.com/pdiddy/transfer-engine/internal/coursecode"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

// Evaluate checks a completed course set against one logic block. Completed
// codes are normalized on entry, so callers may pass raw strings. The result
// carries structured data only; render.Explain turns it into text.
//
// An option is satisfied when every one of its courses is in the completed
// set. The honors flag on a leaf never gates matching — honors and
// non-honors codes that normalize identically are the same course for
// credit purposes — but honors availability is reported for display.
func Evaluate(logic types.LogicBlock, completed []string) types.SatisfactionResult {
	res := types.SatisfactionResult{Missing: map[string][]string{}}

	if logic.IsNoArticulation() {
		return res
	}

	set := coursecode.Set(completed)
	bestPercent := 0

	for i, opt := range logic.Options {
		if len(opt.Courses) == 0 {
			continue
		}

		var matched, missing []string
		for _, req := range opt.Courses {
			code := coursecode.Normalize(req.CourseLetters)
			if set[code] {
				matched = append(matched, code)
			} else {
				missing = append(missing, code)
			}
		}

		if len(missing) == 0 {
			// First satisfied option wins, by document order.
			if !res.Satisfied {
				res.Satisfied = true
				res.SatisfiedOptions = matched
			}
			continue
		}

		sort.Strings(missing)
		res.Missing[types.OptionLabel(i)] = missing
		if pct := len(matched) * 100 / len(opt.Courses); pct > bestPercent {
			bestPercent = pct
		}
	}

	if res.Satisfied {
		res.MatchPercent = 100
	} else {
		res.MatchPercent = bestPercent
	}
	res.HonorsRequired = HonorsRequired(logic)
	res.RedundantGroups = Redundant(completed, logic)
	return res
}
