package model

import "time"

// Config is the complete crosscheck configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Search      SearchConfig      `yaml:"search"`
	Reasoner    ReasonerConfig    `yaml:"reasoner"`
	Forensics   ForensicsConfig   `yaml:"forensics"`
	Store       StoreConfig       `yaml:"store"`
	Recheck     RecheckConfig     `yaml:"recheck"`
	Thresholds  ThresholdConfig   `yaml:"thresholds"`
	Cache       CacheConfig       `yaml:"cache"`
	Output      OutputConfig      `yaml:"output"`
	Credibility CredibilityConfig `yaml:"credibility"`
}

// HTTPConfig controls outbound HTTP behavior shared by retrieval backends
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	RatePerHost  float64       `yaml:"rate_per_host"` // Requests per second per domain
	RateBurst    int           `yaml:"rate_burst"`
}

// SearchConfig controls the evidence gatherers
type SearchConfig struct {
	MaxWebResults    int `yaml:"max_web_results"`
	MaxNewsResults   int `yaml:"max_news_results"`
	MaxSocialResults int `yaml:"max_social_results"`
	ContextItems     int `yaml:"context_items"` // Evidence items enumerated in the reasoning context
}

// ReasonerConfig configures the verdict reasoner backend
type ReasonerConfig struct {
	Provider  string `yaml:"provider"` // "openai" or "" to disable
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// ForensicsConfig points at the media forensics and text extraction services
type ForensicsConfig struct {
	DetectorURL  string        `yaml:"detector_url"`  // Deepfake / voice-clone detector endpoint
	ExtractorURL string        `yaml:"extractor_url"` // OCR / transcription endpoint
	Timeout      time.Duration `yaml:"timeout"`
}

// StoreConfig selects and configures the claims store backend
type StoreConfig struct {
	Backend string `yaml:"backend"` // "memory" or "sqlite"
	Path    string `yaml:"path"`    // SQLite database path
}

// RecheckConfig controls the pending-claims re-verification sweep
type RecheckConfig struct {
	InterClaimDelay time.Duration `yaml:"inter_claim_delay"`
	Schedule        string        `yaml:"schedule"` // Cron expression for --watch mode
}

// ThresholdConfig carries the tunable decision constants.
// Resolution (0.65) gates persistence; Recommendation (0.6) only changes
// recommendation wording. The two are deliberately not unified.
type ThresholdConfig struct {
	Resolution     float64 `yaml:"resolution"`
	Recommendation float64 `yaml:"recommendation"`
}

// CacheConfig controls the search-result cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// OutputConfig controls CLI output
type OutputConfig struct {
	Verbose bool   `yaml:"verbose"`
	JSON    string `yaml:"json,omitempty"` // Report output path
}

// CredibilityConfig holds the allow-list of authoritative domains
type CredibilityConfig struct {
	Domains []string `yaml:"domains"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      15 * time.Second,
			UserAgent:    "crosscheck/0.1 (+https://github.com/ppiankov/crosscheck)",
			MaxBodyBytes: 2_000_000,
			RatePerHost:  2,
			RateBurst:    5,
		},
		Search: SearchConfig{
			MaxWebResults:    30,
			MaxNewsResults:   20,
			MaxSocialResults: 20,
			ContextItems:     10,
		},
		Reasoner: ReasonerConfig{
			Provider:  "openai",
			Model:     "",
			Timeout:   30,
			MaxTokens: 1500,
		},
		Forensics: ForensicsConfig{
			Timeout: 60 * time.Second,
		},
		Store: StoreConfig{
			Backend: "sqlite",
			Path:    "claims.db",
		},
		Recheck: RecheckConfig{
			InterClaimDelay: 2 * time.Second,
			Schedule:        "0 */24 * * *",
		},
		Thresholds: ThresholdConfig{
			Resolution:     0.65,
			Recommendation: 0.6,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     30 * time.Minute,
		},
		Credibility: CredibilityConfig{
			Domains: DefaultCredibleDomains(),
		},
	}
}

// DefaultCredibleDomains is the built-in allow-list of authoritative
// outlets. Subdomains of a listed domain are also considered credible.
func DefaultCredibleDomains() []string {
	return []string{
		"reuters.com", "apnews.com", "bbc.com", "bbc.co.uk",
		"nytimes.com", "washingtonpost.com", "theguardian.com",
		"npr.org", "aljazeera.com", "afp.com", "bloomberg.com",
		"factcheck.org", "politifact.com", "snopes.com",
		"who.int", "nasa.gov", "nature.com", "science.org",
	}
}
