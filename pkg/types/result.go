// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SatisfactionResult is the structured outcome of evaluating a completed
// course set against one logic block. Results are created fresh per
// evaluation and never mutated after construction.
type SatisfactionResult struct {
	// Satisfied reports whether at least one option is fully satisfied.
	Satisfied bool `json:"is_satisfied" yaml:"is_satisfied"`

	// Explanation is the rendered explanation text. The evaluator leaves it
	// empty; render.Explain composes it from the structured fields.
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`

	// SatisfiedOptions lists the courses of the first satisfied option, in
	// document order. Empty when unsatisfied.
	SatisfiedOptions []string `json:"satisfied_options,omitempty" yaml:"satisfied_options,omitempty"`

	// Missing maps each unsatisfied option's positional label ("A", "B", …)
	// to its unmet course codes, sorted.
	Missing map[string][]string `json:"missing" yaml:"missing"`

	// HonorsRequired reports that every option contains an honors-flagged
	// course, so only the honors track clears the requirement.
	HonorsRequired bool `json:"honors_required" yaml:"honors_required"`

	// MatchPercent is 100 when satisfied, otherwise the best option's
	// matched/required percentage (0 when nothing matched).
	MatchPercent int `json:"match_percentage" yaml:"match_percentage"`

	// RedundantGroups lists sets of completed courses that are mutually
	// redundant for this block (each satisfies the same option, or the pair
	// is an honors/non-honors variant).
	RedundantGroups [][]string `json:"redundant_courses,omitempty" yaml:"redundant_courses,omitempty"`
}

// LogicSummary condenses a logic block's shape for rendering and triage.
type LogicSummary struct {
	// OptionCount is the number of articulation options.
	OptionCount int `json:"option_count" yaml:"option_count"`

	// MultiCourseOptions counts options requiring more than one course.
	MultiCourseOptions int `json:"multi_course_options" yaml:"multi_course_options"`

	// MinCoursesRequired is the size of the smallest option.
	MinCoursesRequired int `json:"min_courses_required" yaml:"min_courses_required"`

	// HonorsRequired reports that no honors-free option exists.
	HonorsRequired bool `json:"honors_required" yaml:"honors_required"`

	// HasHonorsOptions reports that at least one honors course appears.
	HasHonorsOptions bool `json:"has_honors_options" yaml:"has_honors_options"`

	// NoArticulation reports the terminal no-articulation state.
	NoArticulation bool `json:"no_articulation" yaml:"no_articulation"`
}

// GroupValidation is the outcome of validating a completed course set
// against a whole requirement group.
type GroupValidation struct {
	// FullySatisfied reports that the group's combination rule is met.
	FullySatisfied bool `json:"is_fully_satisfied" yaml:"is_fully_satisfied"`

	// PartiallySatisfied reports progress short of full satisfaction.
	PartiallySatisfied bool `json:"partially_satisfied" yaml:"partially_satisfied"`

	// SatisfiedCourses lists receiving courses satisfied by the set, sorted.
	SatisfiedCourses []string `json:"satisfied_courses" yaml:"satisfied_courses"`

	// UnsatisfiedCourses lists receiving courses not satisfied, sorted.
	UnsatisfiedCourses []string `json:"unsatisfied_courses" yaml:"unsatisfied_courses"`

	// RequiredCount is the target count for select_n_courses groups.
	RequiredCount int `json:"required_count" yaml:"required_count"`

	// SatisfiedCount is the number of satisfied receiving courses.
	SatisfiedCount int `json:"satisfied_count" yaml:"satisfied_count"`

	// SatisfiedSection is the section label cleared by a
	// choose_one_section group, empty otherwise.
	SatisfiedSection string `json:"satisfied_section,omitempty" yaml:"satisfied_section,omitempty"`

	// SectionMatches maps section labels to the receiving courses satisfied
	// within them.
	SectionMatches map[string][]string `json:"validation_by_section" yaml:"validation_by_section"`
}

// SelectionValidation is the outcome of checking whether a set of
// receiving courses can all be articulated within a single group section.
type SelectionValidation struct {
	// FullySatisfied reports that one section covers every requested course
	// with at least one articulation option each.
	FullySatisfied bool `json:"is_fully_satisfied" yaml:"is_fully_satisfied"`

	// Section is the covering section's label when satisfied.
	Section string `json:"satisfied_section,omitempty" yaml:"satisfied_section,omitempty"`

	// MissingCourses lists requested courses no single section could cover.
	MissingCourses []string `json:"missing_courses,omitempty" yaml:"missing_courses,omitempty"`

	// MatchedOptions maps each requested receiving course to the sending
	// courses of its first articulation option.
	MatchedOptions map[string][]string `json:"matched_options,omitempty" yaml:"matched_options,omitempty"`
}
