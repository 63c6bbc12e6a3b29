// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transfer-engine/internal/articulation"
	"github.com/pdiddy/transfer-engine/internal/coursecode"
	"github.com/pdiddy/transfer-engine/internal/render"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check completed courses against receiving requirements",
	Long: `Validate evaluates a set of completed sending-institution courses
against the articulation logic of one or more receiving courses.

A single receiving course produces a yes/no verdict with an explanation.
Multiple receiving courses produce a combined validation table.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	courses, _ := cmd.Flags().GetStringSlice("course")
	completed, _ := cmd.Flags().GetStringSlice("completed")
	asJSON, _ := cmd.Flags().GetBool("json")

	if len(courses) == 0 {
		return fmt.Errorf("at least one --course is required")
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	results := make(map[string]types.SatisfactionResult, len(courses))
	blocks := make(map[string]types.LogicBlock, len(courses))
	for _, course := range courses {
		code := coursecode.Normalize(course)
		doc, err := store.FindByReceivingCourse(ctx, code)
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("no articulation document found for %s", code)
		}
		res := articulation.Evaluate(doc.Logic, completed)
		results[code] = render.Describe(doc.Logic, res)
		blocks[code] = doc.Logic
	}

	if asJSON {
		return printJSON(results)
	}

	if len(courses) > 1 {
		fmt.Println(render.ComboValidation(results))
		return nil
	}

	for code, res := range results {
		if blocks[code].IsNoArticulation() {
			fmt.Println(render.NoArticulation(blocks[code].NoArticulationReason))
			continue
		}
		fmt.Println(render.Binary(res.Satisfied, code, res.Explanation))
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	validateCmd.Flags().StringSlice("course", nil, "receiving course(s) to validate (repeatable)")
	validateCmd.Flags().StringSlice("completed", nil, "completed sending course(s)")
	validateCmd.Flags().Bool("json", false, "output structured results as JSON")

	rootCmd.AddCommand(validateCmd)
}
