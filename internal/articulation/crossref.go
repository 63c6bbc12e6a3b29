// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package articulation

import (
	"sort"

	"github.com/pdiddy/transfer-engine/internal/coursecode"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

// Matches reports how one completed sending course contributes across a
// document collection. Direct and Combo never share a receiving course:
// direct satisfiability takes precedence in reporting.
type Matches struct {
	// Count is the number of distinct direct matches.
	Count int `json:"count" yaml:"count"`

	// Direct lists receiving courses the code satisfies alone, sorted.
	Direct []string `json:"direct" yaml:"direct"`

	// Combo lists receiving courses the code contributes to only as part
	// of a multi-course option, sorted.
	Combo []string `json:"combo" yaml:"combo"`
}

// CrossReference finds the requirements a single sending course satisfies
// outright and those it partially contributes to. Document encounter order
// is not a reporting guarantee; both lists are sorted for determinism.
func CrossReference(code string, docs []types.RequirementDocument) Matches {
	target := coursecode.Normalize(code)
	if target == "" {
		return Matches{}
	}

	directSet := map[string]bool{}
	comboSet := map[string]bool{}

	for _, doc := range docs {
		if doc.Logic.IsNoArticulation() || doc.ReceivingCourse == "" {
			continue
		}
		for _, opt := range doc.Logic.Options {
			if len(opt.Courses) == 1 {
				if coursecode.Normalize(opt.Courses[0].CourseLetters) == target {
					directSet[doc.ReceivingCourse] = true
				}
				continue
			}
			for _, req := range opt.Courses {
				if coursecode.Normalize(req.CourseLetters) == target {
					comboSet[doc.ReceivingCourse] = true
					break
				}
			}
		}
	}

	// A direct match anywhere in a document removes it from the combo list.
	for rc := range directSet {
		delete(comboSet, rc)
	}

	m := Matches{
		Direct: sortedKeys(directSet),
		Combo:  sortedKeys(comboSet),
	}
	m.Count = len(m.Direct)
	return m
}

// DocumentsMentioning returns the documents whose logic contains the code
// anywhere, sorted by receiving course. Used for reverse lookups where the
// direct/combo distinction does not matter.
func DocumentsMentioning(code string, docs []types.RequirementDocument) []types.RequirementDocument {
	target := coursecode.Normalize(code)
	if target == "" {
		return nil
	}

	var out []types.RequirementDocument
	for _, doc := range docs {
		if doc.Logic.IsNoArticulation() {
			continue
		}
		for _, leaf := range doc.LeafCodes() {
			if coursecode.Normalize(leaf) == target {
				out = append(out, doc)
				break
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ReceivingCourse < out[j].ReceivingCourse })
	return out
}
