// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns articulation logic and evaluation results into
// display text at three verbosity tiers. Rendering is presentation only:
// nothing here influences evaluation, and the optional catalog lookup is
// used purely for display enrichment.
package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/transfer-engine/internal/articulation"
	"github.com/pdiddy/transfer-engine/internal/coursecode"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

const (
	yesBanner = "Yes, based on official articulation."
	noBanner  = "No, based on verified articulation logic."

	noArticulationText = "This course has no sending-institution equivalent and must be completed at the receiving institution."
	defaultReason      = "No articulation available"
)

// Binary renders a yes/no answer: the fixed banner, optionally tagged with
// the receiving course, then a blank line and the explanation body. Banner
// and body are never merged into one sentence.
func Binary(satisfied bool, course, explanation string) string {
	banner := yesBanner
	if !satisfied {
		banner = noBanner
	}
	if course != "" {
		banner += " - " + course
	}
	if strings.TrimSpace(explanation) == "" {
		return banner
	}
	return banner + "\n\n" + strings.TrimSpace(explanation)
}

// NoArticulation renders the no-articulation terminal with its reason.
func NoArticulation(reason string) string {
	if strings.TrimSpace(reason) == "" {
		reason = defaultReason
	}
	return noArticulationText + "\nReason: " + reason
}

// Explain composes the explanation body for an evaluation result:
// the satisfied option, the best partial option with its match percentage,
// or the candidate requirements when nothing matched. Redundancy notes are
// appended when present.
func Explain(logic types.LogicBlock, res types.SatisfactionResult) string {
	if logic.IsNoArticulation() {
		return NoArticulation(logic.NoArticulationReason)
	}

	var b strings.Builder

	switch {
	case res.Satisfied:
		fmt.Fprintf(&b, "Complete match. Satisfied with: %s.", strings.Join(res.SatisfiedOptions, ", "))
	case len(res.Missing) > 0 && res.MatchPercent > 0:
		label, missing := bestPartial(res.Missing, logic)
		fmt.Fprintf(&b, "Partial match (%d%%). Best option is Option %s; still missing: %s.",
			res.MatchPercent, label, strings.Join(missing, ", "))
	default:
		b.WriteString("No matching courses taken. You need one of these combinations:")
		for i, opt := range logic.Options {
			if len(opt.Courses) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n- Option %s: %s", types.OptionLabel(i),
				strings.Join(coursecode.NormalizeAll(opt.Codes()), ", "))
		}
	}

	for _, group := range res.RedundantGroups {
		fmt.Fprintf(&b, "\nNote: %s are equivalent for this requirement; only one is needed.",
			strings.Join(group, " and "))
	}
	if res.HonorsRequired {
		b.WriteString("\nOnly honors courses will satisfy this requirement.")
	}
	return b.String()
}

// bestPartial picks the unsatisfied option with the highest matched
// fraction, breaking ties by position, mirroring how the evaluator computed
// the match percentage.
func bestPartial(missing map[string][]string, logic types.LogicBlock) (string, []string) {
	best, bestPct := "", -1
	for i, opt := range logic.Options {
		label := types.OptionLabel(i)
		unmet, ok := missing[label]
		if !ok || len(opt.Courses) == 0 {
			continue
		}
		pct := (len(opt.Courses) - len(unmet)) * 100 / len(opt.Courses)
		if pct > bestPct {
			best, bestPct = label, pct
		}
	}
	return best, missing[best]
}

// Logic renders a requirement document's articulation options. Minimal
// verbosity produces a single summary line; standard lists every option
// with honors markers and notes; detailed adds catalog titles and the
// option-count summary.
func Logic(doc types.RequirementDocument, verbosity types.Verbosity, lookup types.CatalogLookup) string {
	if doc.Logic.IsNoArticulation() {
		return NoArticulation(doc.Logic.NoArticulationReason)
	}

	summary := articulation.Summarize(doc.Logic)

	if verbosity == types.VerbosityMinimal {
		return fmt.Sprintf("%s: %d articulation option(s), minimum %d course(s).",
			doc.ReceivingCourse, summary.OptionCount, summary.MinCoursesRequired)
	}

	var b strings.Builder
	if doc.ReceivingCourse != "" {
		b.WriteString(doc.ReceivingCourse)
		if doc.ReceivingTitle != "" {
			b.WriteString(" - " + doc.ReceivingTitle)
		}
		b.WriteString("\n")
	}
	if verbosity == types.VerbosityDetailed {
		fmt.Fprintf(&b, "Available options: %d (%d requiring multiple courses)\n",
			summary.OptionCount, summary.MultiCourseOptions)
	}

	for i, opt := range doc.Logic.Options {
		if len(opt.Courses) == 0 {
			continue
		}
		b.WriteString(optionLine(i, opt, verbosity, lookup) + "\n")
	}

	b.WriteString(honorsNotes(doc.Logic))
	return strings.TrimRight(b.String(), "\n")
}

// optionLine renders one option: "Option A (complete): CIS 22A" or, for
// multi-course options, the member codes joined and tagged "complete all".
func optionLine(i int, opt types.ConjunctionGroup, verbosity types.Verbosity, lookup types.CatalogLookup) string {
	parts := make([]string, 0, len(opt.Courses))
	for _, req := range opt.Courses {
		code := coursecode.Normalize(req.CourseLetters)
		if req.Honors {
			code += " (honors)"
		}
		if verbosity == types.VerbosityDetailed && lookup != nil {
			if entry, ok := lookup(req.CourseLetters); ok && entry.Title != "" {
				code += ": " + entry.Title
			}
		}
		parts = append(parts, code)
	}

	line := fmt.Sprintf("Option %s (complete): %s", types.OptionLabel(i), strings.Join(parts, ", "))
	if len(opt.Courses) > 1 {
		line += " (complete all)"
	}
	return line
}

// honorsNotes renders the consolidated honors lines: both accepted kinds
// when both exist, or the standalone warning when only the honors track
// clears the requirement.
func honorsNotes(logic types.LogicBlock) string {
	honors, nonHonors := articulation.HonorsInfo(logic)

	var b strings.Builder
	if len(honors) > 0 && len(nonHonors) > 0 {
		fmt.Fprintf(&b, "Honors courses accepted: %s.\n", strings.Join(honors, ", "))
		fmt.Fprintf(&b, "Non-honors courses also accepted: %s.\n", strings.Join(nonHonors, ", "))
	}
	if articulation.HonorsRequired(logic) {
		b.WriteString("Only honors courses will satisfy this requirement.\n")
	}
	return b.String()
}

// HonorsEquivalence renders the equivalence note for an honors/non-honors
// pair. The honors code is always named first, regardless of argument
// order; inputs that are not such a pair render as a plain equivalence.
func HonorsEquivalence(a, b string) string {
	first, second := coursecode.Normalize(a), coursecode.Normalize(b)
	if coursecode.IsHonors(second) && !coursecode.IsHonors(first) {
		first, second = second, first
	}
	return fmt.Sprintf("%s and %s are equivalent for UC transfer credit. You may choose either.", first, second)
}

// Describe attaches the rendered explanation to a copy of the result, for
// callers that hand the struct to programmatic consumers.
func Describe(logic types.LogicBlock, res types.SatisfactionResult) types.SatisfactionResult {
	res.Explanation = Explain(logic, res)
	return res
}
