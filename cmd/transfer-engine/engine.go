// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/transfer-engine/internal/repository"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

// repositoryConfig resolves the store configuration from flags, config
// file, and environment. Flags win over the config file.
func repositoryConfig(cmd *cobra.Command) types.RepositoryConfig {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if !cmd.Flags().Changed("data-dir") && viper.IsSet("data_dir") {
		dataDir = viper.GetString("data_dir")
	}

	maxResults := viper.GetInt("max_results")

	return types.RepositoryConfig{DataDir: dataDir, MaxResults: maxResults}
}

// openStore opens the articulation store for the invocation's data
// directory.
func openStore(cmd *cobra.Command) (*repository.Store, error) {
	store, err := repository.NewStore(repositoryConfig(cmd.Root()))
	if err != nil {
		return nil, fmt.Errorf("opening articulation store: %w", err)
	}
	return store, nil
}

// verbosityFromFlags maps the --verbosity flag to a rendering verbosity,
// defaulting to standard on unknown values.
func verbosityFromFlags(cmd *cobra.Command) types.Verbosity {
	v, _ := cmd.Flags().GetString("verbosity")
	switch types.Verbosity(v) {
	case types.VerbosityMinimal, types.VerbosityStandard, types.VerbosityDetailed:
		return types.Verbosity(v)
	default:
		return types.VerbosityStandard
	}
}
