// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transfer-engine/internal/coursecode"
	"github.com/pdiddy/transfer-engine/internal/render"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [course]",
	Short: "Resolve a course code against the ingested catalogs",
	Long: `Lookup normalizes a course code and resolves it against the sending and
receiving catalogs, reporting title, honors status, and units. When an
honors/non-honors counterpart exists, the equivalence is noted.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	code := coursecode.Normalize(args[0])

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	entry, err := store.Lookup(ctx, code)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("course %s not found in any catalog", code)
	}

	if asJSON {
		return printJSON(entry)
	}

	fmt.Printf("%s", entry.Code)
	if entry.Title != "" {
		fmt.Printf(": %s", entry.Title)
	}
	if entry.IsHonors {
		fmt.Printf(" (Honors)")
	}
	if entry.Units > 0 {
		fmt.Printf(" [%.1f units]", entry.Units)
	}
	fmt.Println()

	// Note honors equivalence when the counterpart is also in a catalog.
	counterpart := coursecode.Base(code)
	if !coursecode.IsHonors(code) {
		counterpart = code + "H"
	}
	if counterpart != code {
		if other, err := store.Lookup(ctx, counterpart); err == nil && other != nil {
			if coursecode.IsHonors(code) {
				fmt.Println(render.HonorsEquivalence(code, counterpart))
			} else {
				fmt.Println(render.HonorsEquivalence(counterpart, code))
			}
		}
	}
	return nil
}

func init() {
	lookupCmd.Flags().Bool("json", false, "output the catalog entry as JSON")

	rootCmd.AddCommand(lookupCmd)
}
