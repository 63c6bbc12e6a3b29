// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Ingest articulation documents and catalogs into the store",
	Long: `Store reads articulation document YAML files from <data-dir>/documents/
and course catalogs from <data-dir>/catalog/, ingesting them into a SQLite
database with FTS5 indexing. Unchanged files are skipped on subsequent runs.`,
	RunE: runStore,
}

func runStore(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed indexing", summary.Failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(storeCmd)
}
