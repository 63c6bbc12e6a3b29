// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transfer-engine/internal/articulation"
	"github.com/pdiddy/transfer-engine/internal/render"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

var groupsCmd = &cobra.Command{
	Use:   "groups [group]",
	Short: "Summarize or validate a requirement group",
	Long: `Groups renders every articulation document of a requirement group with
the group's combination rule. With --completed, the group is validated
against the completed courses instead; with --select, a set of receiving
courses is checked for coverage within a single section.`,
	Args: cobra.ExactArgs(1),
	RunE: runGroups,
}

func runGroups(cmd *cobra.Command, args []string) error {
	section, _ := cmd.Flags().GetString("section")
	completed, _ := cmd.Flags().GetStringSlice("completed")
	selection, _ := cmd.Flags().GetStringSlice("select")
	asJSON, _ := cmd.Flags().GetBool("json")
	group := args[0]

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	var docs []types.RequirementDocument
	if section != "" {
		docs, err = store.FindBySection(ctx, group, section)
	} else {
		docs, err = store.FindByGroup(ctx, group)
	}
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no articulation documents found for group %s", group)
	}

	switch {
	case len(selection) > 0:
		v := articulation.ValidateSelection(selection, docs)
		if asJSON {
			return printJSON(v)
		}
		printSelectionValidation(v)
	case len(completed) > 0:
		v := articulation.ValidateGroup(completed, docs)
		if asJSON {
			return printJSON(v)
		}
		printGroupValidation(group, v)
	default:
		fmt.Println(render.GroupSummary(docs, verbosityFromFlags(cmd), store.LookupFunc(ctx)))
	}
	return nil
}

func printGroupValidation(group string, v types.GroupValidation) {
	switch {
	case v.FullySatisfied:
		fmt.Printf("Group %s is fully satisfied.\n", group)
	case v.PartiallySatisfied:
		fmt.Printf("Group %s is partially satisfied.\n", group)
	default:
		fmt.Printf("Group %s is not satisfied.\n", group)
	}
	if len(v.SatisfiedCourses) > 0 {
		fmt.Printf("Satisfied: %s\n", strings.Join(v.SatisfiedCourses, ", "))
	}
	if len(v.UnsatisfiedCourses) > 0 {
		fmt.Printf("Not satisfied: %s\n", strings.Join(v.UnsatisfiedCourses, ", "))
	}
	if v.RequiredCount > 0 {
		fmt.Printf("Progress: %d of %d required.\n", v.SatisfiedCount, v.RequiredCount)
	}
	if v.SatisfiedSection != "" {
		fmt.Printf("Completed section: %s\n", v.SatisfiedSection)
	}
}

func printSelectionValidation(v types.SelectionValidation) {
	if v.FullySatisfied {
		fmt.Printf("Selection is articulable within section %s.\n", v.Section)
		courses := make([]string, 0, len(v.MatchedOptions))
		for course := range v.MatchedOptions {
			courses = append(courses, course)
		}
		sort.Strings(courses)
		for _, course := range courses {
			fmt.Printf("  %s via %s\n", course, strings.Join(v.MatchedOptions[course], ", "))
		}
		return
	}
	fmt.Println("Selection is not articulable within a single section.")
	if len(v.MissingCourses) > 0 {
		fmt.Printf("No coverage for: %s\n", strings.Join(v.MissingCourses, ", "))
	}
}

func init() {
	groupsCmd.Flags().String("section", "", "restrict to one section of the group")
	groupsCmd.Flags().StringSlice("completed", nil, "completed sending course(s) to validate against the group")
	groupsCmd.Flags().StringSlice("select", nil, "receiving course(s) to check for single-section coverage")
	groupsCmd.Flags().String("verbosity", "standard", "rendering detail: minimal, standard, detailed")
	groupsCmd.Flags().Bool("json", false, "output validation as JSON")

	rootCmd.AddCommand(groupsCmd)
}
