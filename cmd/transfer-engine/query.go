// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transfer-engine/internal/articulation"
	"github.com/pdiddy/transfer-engine/internal/queryfilter"
	"github.com/pdiddy/transfer-engine/internal/render"
	"github.com/pdiddy/transfer-engine/internal/repository"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Answer a free-text articulation question",
	Long: `Query extracts course codes and group/section references from a
free-text question, then routes to the matching operation: validation when
both sending and receiving courses are mentioned, articulation display for
receiving courses, cross-reference for sending courses, and group or
section summaries for group mentions. Questions matching nothing fall back
to full-text search over receiving courses and titles.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	question := strings.Join(args, " ")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	sending, receiving, err := store.Catalogs(ctx)
	if err != nil {
		return err
	}

	filters := queryfilter.NewExtractor(nil).Filters(question, sending, receiving)
	if asJSON {
		return printJSON(filters)
	}

	docs, err := store.All(ctx)
	if err != nil {
		return err
	}

	verbosity := verbosityFromFlags(cmd)
	lookup := store.LookupFunc(ctx)

	// Group and section references take precedence over course mentions.
	if sectionDocs := queryfilter.SectionMatches(question, docs); len(sectionDocs) > 0 {
		fmt.Println(render.GroupSummary(sectionDocs, verbosity, lookup))
		return nil
	}
	if groupDocs := queryfilter.GroupMatches(question, docs); len(groupDocs) > 0 {
		if len(filters.SendingCourses) > 0 {
			printGroupValidation(groupDocs[0].Group, articulation.ValidateGroup(filters.SendingCourses, groupDocs))
			return nil
		}
		fmt.Println(render.GroupSummary(groupDocs, verbosity, lookup))
		return nil
	}

	switch {
	case len(filters.ReceivingCourses) > 0 && len(filters.SendingCourses) > 0:
		return queryValidate(ctx, store, filters)
	case len(filters.ReceivingCourses) > 0:
		return queryArticulation(ctx, store, filters.ReceivingCourses, verbosity, lookup)
	case len(filters.SendingCourses) > 0:
		return queryCrossReference(filters.SendingCourses, docs)
	}

	// Nothing recognized: fall back to full-text search.
	found, err := store.Search(ctx, question)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Println("No course codes or requirements recognized in the question.")
		return nil
	}
	for _, doc := range found {
		fmt.Println(render.Logic(doc, types.VerbosityMinimal, lookup))
	}
	return nil
}

// queryValidate evaluates the mentioned sending courses against each
// mentioned receiving course.
func queryValidate(ctx context.Context, store *repository.Store, filters queryfilter.Filters) error {
	results := make(map[string]types.SatisfactionResult, len(filters.ReceivingCourses))
	noArticulation := map[string]string{}
	for _, course := range filters.ReceivingCourses {
		doc, err := store.FindByReceivingCourse(ctx, course)
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("no articulation document found for %s", course)
		}
		if doc.Logic.IsNoArticulation() {
			noArticulation[course] = doc.Logic.NoArticulationReason
			continue
		}
		res := articulation.Evaluate(doc.Logic, filters.SendingCourses)
		results[course] = render.Describe(doc.Logic, res)
	}

	for course, reason := range noArticulation {
		fmt.Println(render.NoArticulation(reason) + " - " + course)
	}
	if len(results) > 1 {
		fmt.Println(render.ComboValidation(results))
		return nil
	}
	for course, res := range results {
		fmt.Println(render.Binary(res.Satisfied, course, res.Explanation))
	}
	return nil
}

// queryArticulation shows each receiving course's articulation options.
func queryArticulation(ctx context.Context, store *repository.Store, courses []string, verbosity types.Verbosity, lookup types.CatalogLookup) error {
	for _, course := range courses {
		doc, err := store.FindByReceivingCourse(ctx, course)
		if err != nil {
			return err
		}
		if doc == nil {
			fmt.Printf("No articulation document found for %s.\n", course)
			continue
		}
		fmt.Println(render.Logic(*doc, verbosity, lookup))
	}
	return nil
}

// queryCrossReference reports where each sending course appears.
func queryCrossReference(courses []string, docs []types.RequirementDocument) error {
	for _, course := range courses {
		m := articulation.CrossReference(course, docs)
		if m.Count == 0 && len(m.Combo) == 0 {
			fmt.Printf("%s does not appear in any articulation requirement.\n", course)
			continue
		}
		fmt.Printf("%s articulates directly to %d receiving course(s).\n", course, m.Count)
		if len(m.Direct) > 0 {
			fmt.Printf("Direct: %s\n", strings.Join(m.Direct, ", "))
		}
		if len(m.Combo) > 0 {
			fmt.Printf("In combination only: %s\n", strings.Join(m.Combo, ", "))
		}
	}
	return nil
}

func init() {
	queryCmd.Flags().String("verbosity", "standard", "rendering detail: minimal, standard, detailed")
	queryCmd.Flags().Bool("json", false, "output the extracted filters as JSON")

	rootCmd.AddCommand(queryCmd)
}
