// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transfer-engine/internal/articulation"
	"github.com/pdiddy/transfer-engine/internal/coursecode"
)

var matchesCmd = &cobra.Command{
	Use:   "matches [sending course]",
	Short: "Cross-reference a sending course against all requirements",
	Long: `Matches reports every receiving course a sending course articulates to,
split into direct matches (the course alone suffices) and combination
matches (the course contributes to a multi-course option).`,
	Args: cobra.ExactArgs(1),
	RunE: runMatches,
}

func runMatches(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	code := coursecode.Normalize(args[0])

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	docs, err := store.FindBySendingCourse(ctx, code)
	if err != nil {
		return err
	}

	m := articulation.CrossReference(code, docs)
	if asJSON {
		return printJSON(m)
	}

	if m.Count == 0 && len(m.Combo) == 0 {
		fmt.Printf("%s does not appear in any articulation requirement.\n", code)
		return nil
	}

	fmt.Printf("%s articulates directly to %d receiving course(s).\n", code, m.Count)
	if len(m.Direct) > 0 {
		fmt.Printf("Direct: %s\n", strings.Join(m.Direct, ", "))
	}
	if len(m.Combo) > 0 {
		fmt.Printf("In combination only: %s\n", strings.Join(m.Combo, ", "))
	}
	return nil
}

func init() {
	matchesCmd.Flags().Bool("json", false, "output matches as JSON")

	rootCmd.AddCommand(matchesCmd)
}
