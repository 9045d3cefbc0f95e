package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that talk to NCBI.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with requests
	// (e.g. "pharma-finder/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the PubMed fetch stage (ESearch + EFetch).
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults caps how many PMIDs ESearch returns (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// BatchSize is the number of PMIDs per EFetch request (default 100).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// RequestDelay is the pause between consecutive EFetch batches
	// (default 350ms; NCBI allows 3 requests/second without an API key).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// APIKey is an optional NCBI API key for a higher rate limit.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Email identifies the caller to NCBI, per E-utilities usage policy.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// CacheConfig holds settings for the SQLite article cache.
type CacheConfig struct {
	// Dir is the directory holding the cache database (default "cache").
	Dir string `json:"dir" yaml:"dir"`

	// Disabled turns the cache off entirely.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// PipelineConfig groups the stage configurations.
type PipelineConfig struct {
	Fetch FetchConfig `json:"fetch" yaml:"fetch"`
	Cache CacheConfig `json:"cache" yaml:"cache"`
}
