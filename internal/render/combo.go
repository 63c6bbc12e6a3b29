// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"sort"
	"strings"

	"github.com/pdiddy/transfer-engine/pkg/types"
)

// ComboValidation renders a markdown table summarizing the validation of
// several receiving courses at once, keyed by receiving course code, with a
// leading one-line verdict on whether all supplied courses are satisfied.
// Rows are sorted by course code for deterministic output.
func ComboValidation(results map[string]types.SatisfactionResult) string {
	if len(results) == 0 {
		return "No validation results to display."
	}

	courses := make([]string, 0, len(results))
	for c := range results {
		courses = append(courses, c)
	}
	sort.Strings(courses)

	rows := []string{
		"| Course | Status | Missing | Satisfied By |",
		"|--------|--------|---------|--------------|",
	}

	allSatisfied := true
	for _, course := range courses {
		res := results[course]
		status, missing, satisfiedBy := "satisfied", "None", "None"
		if res.Satisfied {
			if len(res.SatisfiedOptions) > 0 {
				satisfiedBy = strings.Join(res.SatisfiedOptions, ", ")
			}
		} else {
			allSatisfied = false
			status = "not satisfied"
			missing = missingSummary(res.Missing)
		}
		rows = append(rows, "| "+course+" | "+status+" | "+missing+" | "+satisfiedBy+" |")
	}

	summary := "All supplied courses are satisfied."
	if !allSatisfied {
		summary = "Some supplied courses are not satisfied."
	}
	return summary + "\n\n" + strings.Join(rows, "\n")
}

// missingSummary flattens the per-option missing map into one sorted,
// deduplicated list for the table cell.
func missingSummary(missing map[string][]string) string {
	set := map[string]bool{}
	for _, codes := range missing {
		for _, c := range codes {
			set[c] = true
		}
	}
	if len(set) == 0 {
		return "None"
	}
	codes := make([]string, 0, len(set))
	for c := range set {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return strings.Join(codes, ", ")
}
