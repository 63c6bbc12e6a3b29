// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GroupLogicType selects how a requirement group's documents combine.
type GroupLogicType string

const (
	// GroupAllRequired means every receiving course in the group must be satisfied.
	GroupAllRequired GroupLogicType = "all_required"

	// GroupChooseOneSection means all receiving courses of exactly one
	// section must be satisfied, without mixing sections.
	GroupChooseOneSection GroupLogicType = "choose_one_section"

	// GroupSelectNCourses means NCourses receiving courses from the group
	// must be satisfied.
	GroupSelectNCourses GroupLogicType = "select_n_courses"
)

// RequirementDocument associates one receiving-institution course with its
// articulation logic and group metadata. Documents are produced by the
// external document repository and treated as read-only input; optional
// metadata fields may be empty.
type RequirementDocument struct {
	// ReceivingCourse is the receiving-institution course code (e.g. "CSE 8A").
	ReceivingCourse string `json:"receiving_course" yaml:"receiving_course"`

	// ReceivingTitle is the receiving course's catalog title.
	ReceivingTitle string `json:"receiving_title,omitempty" yaml:"receiving_title,omitempty"`

	// Logic is the articulation logic block for this course.
	Logic LogicBlock `json:"logic_block" yaml:"logic_block"`

	// Group is the requirement group number this document belongs to (e.g. "2").
	Group string `json:"group,omitempty" yaml:"group,omitempty"`

	// GroupTitle is the requirement group's display title.
	GroupTitle string `json:"group_title,omitempty" yaml:"group_title,omitempty"`

	// GroupLogicType selects the group's combination rule.
	GroupLogicType GroupLogicType `json:"group_logic_type,omitempty" yaml:"group_logic_type,omitempty"`

	// NCourses is the required course count for select_n_courses groups.
	NCourses int `json:"n_courses,omitempty" yaml:"n_courses,omitempty"`

	// Section is the section label within the group (e.g. "A").
	Section string `json:"section,omitempty" yaml:"section,omitempty"`

	// SendingCourses lists every sending-institution course code appearing
	// in Logic, for indexing. May be empty; LeafCodes falls back to the block.
	SendingCourses []string `json:"sending_courses,omitempty" yaml:"sending_courses,omitempty"`
}

// LeafCodes returns the document's sending-course codes, preferring the
// indexed metadata list and falling back to a walk of the logic block.
func (d RequirementDocument) LeafCodes() []string {
	if len(d.SendingCourses) > 0 {
		return d.SendingCourses
	}
	return d.Logic.LeafCodes()
}

// CatalogEntry is one course catalog record, used by the renderer for
// display enrichment only — never for evaluation logic.
type CatalogEntry struct {
	// Code is the canonical course code.
	Code string `json:"code" yaml:"code"`

	// Title is the catalog title.
	Title string `json:"title" yaml:"title"`

	// IsHonors marks the honors variant.
	IsHonors bool `json:"is_honors,omitempty" yaml:"is_honors,omitempty"`

	// Units is the course's credit units, when known.
	Units float64 `json:"units,omitempty" yaml:"units,omitempty"`
}

// CatalogLookup resolves a course code to its catalog entry. The boolean is
// false when the code is unknown; callers must tolerate missing entries.
type CatalogLookup func(code string) (CatalogEntry, bool)
