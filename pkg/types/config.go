// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Verbosity selects how much detail the renderer produces.
type Verbosity string

const (
	// VerbosityMinimal renders the binary yes/no banner only.
	VerbosityMinimal Verbosity = "minimal"

	// VerbosityStandard renders the full per-option breakdown.
	VerbosityStandard Verbosity = "standard"

	// VerbosityDetailed adds catalog titles and the logic summary.
	VerbosityDetailed Verbosity = "detailed"
)

// RepositoryConfig holds settings for the articulation document store.
type RepositoryConfig struct {
	// DataDir is the base data directory (contains documents/, catalog/, index/).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// QueryConfig holds settings for query handling and rendering.
type QueryConfig struct {
	// Verbosity selects the rendering detail level (default standard).
	Verbosity Verbosity `json:"verbosity" yaml:"verbosity"`
}

// EngineConfig groups all stage configurations for the engine CLI.
type EngineConfig struct {
	Repository RepositoryConfig `json:"repository" yaml:"repository"`
	Query      QueryConfig      `json:"query" yaml:"query"`
}
