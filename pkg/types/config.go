package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "aidaily/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FeedConfig holds settings for the feed query stage.
type FeedConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults bounds the candidate set fetched per category (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// StorageConfig holds the on-disk layout of the data directory.
// DataDir contains papers/, index.json, rotation.txt, and catalog.db.
type StorageConfig struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// SummaryConfig holds settings for the summarization stage.
type SummaryConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the generative model identifier (default "gemini-2.5-pro").
	Model string `json:"model" yaml:"model"`

	// MaxChars truncates extracted text before prompting (default 8000).
	MaxChars int `json:"max_chars" yaml:"max_chars"`
}

// ServerConfig holds settings for the HTTP server and daily scheduler.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// FetchHour is the local hour (0-23) of the daily scheduled fetch
	// (default 8).
	FetchHour int `json:"fetch_hour" yaml:"fetch_hour"`

	// LogLevel selects the slog level: debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Config groups all stage configurations for the application.
type Config struct {
	// Categories is the ordered, fixed list of feed query strings the
	// daily rotation walks (e.g. "cat:cs.AI"). Order defines the
	// rotation sequence; changing it invalidates the persisted cursor.
	Categories []string `json:"categories" yaml:"categories"`

	Feed    FeedConfig    `json:"feed" yaml:"feed"`
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Summary SummaryConfig `json:"summary" yaml:"summary"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}
