package model

import (
	"runtime"
	"time"
)

// Config holds the complete callsift configuration.
type Config struct {
	Table       TableConfig       `yaml:"table"`
	Ingest      IngestConfig      `yaml:"ingest"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Wordlist    WordlistConfig    `yaml:"wordlist"`
	Output      OutputConfig      `yaml:"output"`
}

// TableConfig configures the relevance table source.
type TableConfig struct {
	Path      string `yaml:"path"`
	Delimiter string `yaml:"delimiter"` // delimited-text tables only; single character
}

// IngestConfig configures transcript ingestion.
type IngestConfig struct {
	Format      string        `yaml:"format"` // txt, csv, nuance, google, spraak
	Delimiter   string        `yaml:"delimiter"`
	Columns     ColumnMapping `yaml:"columns"`
	TabularPath string        `yaml:"tabular_path,omitempty"` // read this file instead of the transcript's own location
}

// ScoringConfig configures the scoring engine.
type ScoringConfig struct {
	Correction string `yaml:"correction"` // duration, logduration, wordcount, none
}

// CacheConfig configures the relevance-table cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// ConcurrencyConfig configures batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitConfig throttles batch ingestion. Zero disables throttling.
type RateLimitConfig struct {
	FilesPerSecond float64 `yaml:"files_per_second"`
	BurstSize      int     `yaml:"burst_size"`
}

// WordlistConfig configures wordlist export.
type WordlistConfig struct {
	Dir      string   `yaml:"dir"`
	UseCats  []string `yaml:"use_cats,omitempty"`
	SkipCats []string `yaml:"skip_cats,omitempty"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	JSON    string `yaml:"json,omitempty"`
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults. Flags, environment variables
// and the config file override these.
func DefaultConfig() *Config {
	return &Config{
		Table: TableConfig{
			Delimiter: ",",
		},
		Ingest: IngestConfig{
			Format:    "txt",
			Delimiter: ",",
			Columns:   DefaultColumnMapping(),
		},
		Scoring: ScoringConfig{
			Correction: "duration",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     30 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		RateLimit: RateLimitConfig{
			FilesPerSecond: 0,
			BurstSize:      5,
		},
		Wordlist: WordlistConfig{
			Dir: "./wordlists",
		},
		Output: OutputConfig{},
	}
}
