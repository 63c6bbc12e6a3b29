// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package articulation

import (
	"sort"

	"github.com/pdiddy/transfer-engine/internal/coursecode"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

// HonorsRequired reports whether only honors courses can satisfy the block:
// it has at least one option and every option contains an honors-flagged
// course. A block with any honors-free option, or with no articulation at
// all, is not honors-required.
func HonorsRequired(logic types.LogicBlock) bool {
	if logic.IsNoArticulation() {
		return false
	}
	for _, opt := range logic.Options {
		optionHasHonors := false
		for _, req := range opt.Courses {
			if req.Honors {
				optionHasHonors = true
				break
			}
		}
		if !optionHasHonors {
			return false
		}
	}
	return true
}

// HonorsInfo partitions the block's leaf courses into honors and non-honors
// lists by their declared flags, each sorted and deduplicated.
func HonorsInfo(logic types.LogicBlock) (honors, nonHonors []string) {
	honorsSet := map[string]bool{}
	nonHonorsSet := map[string]bool{}

	for _, opt := range logic.Options {
		for _, req := range opt.Courses {
			code := coursecode.Normalize(req.CourseLetters)
			if code == "" {
				continue
			}
			if req.Honors {
				honorsSet[code] = true
			} else {
				nonHonorsSet[code] = true
			}
		}
	}

	return sortedKeys(honorsSet), sortedKeys(nonHonorsSet)
}

// Redundant finds groups of completed courses that are mutually redundant
// for the block: courses that each alone satisfy it as single-course
// options, plus honors/non-honors pairs the option scan missed. Each
// returned group is sorted.
func Redundant(completed []string, logic types.LogicBlock) [][]string {
	if len(completed) == 0 || logic.IsNoArticulation() {
		return nil
	}

	selected := coursecode.NormalizeAll(completed)
	selectedSet := coursecode.Set(completed)

	// Courses that appear as single-course options each satisfy the block
	// alone, so completing more than one of them is redundant.
	aloneSatisfies := map[string]bool{}
	for _, opt := range logic.Options {
		if len(opt.Courses) != 1 {
			continue
		}
		code := coursecode.Normalize(opt.Courses[0].CourseLetters)
		if code != "" && selectedSet[code] {
			aloneSatisfies[code] = true
		}
	}

	var groups [][]string
	grouped := map[string]bool{}
	if len(aloneSatisfies) > 1 {
		codes := sortedKeys(aloneSatisfies)
		groups = append(groups, codes)
		for _, c := range codes {
			grouped[c] = true
		}
	}

	// Honors/non-honors pairs among the remaining selections.
	for i, a := range selected {
		if grouped[a] {
			continue
		}
		for _, b := range selected[i+1:] {
			if grouped[b] || !coursecode.IsHonorsPair(a, b) {
				continue
			}
			pair := []string{a, b}
			sort.Strings(pair)
			groups = append(groups, pair)
			grouped[a] = true
			grouped[b] = true
			break
		}
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups
}

// HonorsPairInBlock reports whether two codes are honors/non-honors variants
// of each other and both appear as single-course options of the block.
func HonorsPairInBlock(logic types.LogicBlock, a, b string) bool {
	if !coursecode.IsHonorsPair(a, b) {
		return false
	}

	inBlock := map[string]bool{}
	for _, opt := range logic.Options {
		if len(opt.Courses) == 1 {
			inBlock[coursecode.Normalize(opt.Courses[0].CourseLetters)] = true
		}
	}
	return inBlock[coursecode.Normalize(a)] && inBlock[coursecode.Normalize(b)]
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
