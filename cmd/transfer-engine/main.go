// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the transfer-engine CLI.
// Subcommands cover store ingestion, articulation validation,
// cross-reference matching, free-text queries, catalog lookup, and
// group summaries.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the transfer-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "transfer-engine",
	Short: "Articulation satisfaction and cross-reference engine",
	Long: `transfer-engine decides whether completed sending-institution courses
satisfy receiving-institution requirements expressed as articulation logic,
and answers cross-reference questions about where a course appears.

Each operation is a subcommand: store ingests articulation documents and
catalogs into the local database; validate checks completed courses against
a requirement; matches cross-references a sending course; query answers a
free-text question; lookup resolves catalog entries; groups summarizes
requirement groups.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./transfer-engine.yaml or ~/.config/transfer-engine/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "data", "base directory for articulation data (contains documents/, catalog/, index/)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("transfer-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "transfer-engine"))
		}
	}

	viper.SetEnvPrefix("TRANSFER_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
