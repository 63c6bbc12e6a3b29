// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the transfer-engine:
// articulation logic trees, requirement documents, evaluation results,
// and stage configuration.
package types

import "strconv"

// CourseRequirement is one leaf of an articulation logic tree: a single
// sending-institution course that must be completed. The honors flag is a
// declared property of the leaf, independent of the code's suffix — a code
// may look honors-like yet be flagged false, and the two are kept separately
// testable.
type CourseRequirement struct {
	// CourseLetters is the course code (e.g. "CIS 22A"). Stored in
	// canonical form; compared via coursecode.Normalize either way.
	CourseLetters string `json:"course_letters" yaml:"course_letters"`

	// Honors marks the leaf as an honors course.
	Honors bool `json:"honors" yaml:"honors"`
}

// ConjunctionGroup is one articulation option: an ordered, non-empty list of
// course requirements that must all be completed together. Display labels
// ("A", "B", …) are assigned by position at render time and are never stored.
type ConjunctionGroup struct {
	Courses []CourseRequirement `json:"courses" yaml:"courses"`
}

// Codes returns the course codes of the group's requirements, in document order.
func (g ConjunctionGroup) Codes() []string {
	codes := make([]string, 0, len(g.Courses))
	for _, c := range g.Courses {
		codes = append(codes, c.CourseLetters)
	}
	return codes
}

// LogicBlock is the articulation logic for one receiving-institution course:
// either a no-articulation terminal, or a disjunction of conjunction groups
// (satisfying any single group satisfies the block). A block with zero
// options evaluates identically to an explicit no-articulation terminal.
type LogicBlock struct {
	// NoArticulation marks the terminal state: no sending-institution
	// course combination grants credit for this requirement.
	NoArticulation bool `json:"no_articulation,omitempty" yaml:"no_articulation,omitempty"`

	// NoArticulationReason optionally explains the terminal state.
	NoArticulationReason string `json:"no_articulation_reason,omitempty" yaml:"no_articulation_reason,omitempty"`

	// Options lists the articulation options in document order.
	Options []ConjunctionGroup `json:"options,omitempty" yaml:"options,omitempty"`
}

// IsNoArticulation reports whether the block grants no transfer credit,
// either explicitly or because it carries no options.
func (b LogicBlock) IsNoArticulation() bool {
	return b.NoArticulation || len(b.Options) == 0
}

// LeafCodes returns every course code appearing in the block, in document
// order, without deduplication.
func (b LogicBlock) LeafCodes() []string {
	var codes []string
	for _, opt := range b.Options {
		codes = append(codes, opt.Codes()...)
	}
	return codes
}

// OptionLabel returns the positional display label for the option at index i:
// "A" through "Z", then the 1-based option number. Labels are a rendering
// concern and never part of an option's identity.
func OptionLabel(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}
	return strconv.Itoa(i + 1)
}
