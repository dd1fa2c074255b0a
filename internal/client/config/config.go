package config

import "time"

// Config holds runtime settings for the CineIA CLI.
//
// Units: every interval is a time.Duration. RateLimit is requests per
// second; zero disables pacing.
type Config struct {
	ServerURL   string
	TLSInsecure bool
	DBPath      string

	RequestTimeout        time.Duration
	RecommendationTimeout time.Duration
	SearchDebounce        time.Duration
	OnlineCheckInterval   time.Duration

	RateLimit float64
	RateBurst int

	BreakerFailures    uint32
	BreakerOpenTimeout time.Duration

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "https://127.0.0.1:8081"
	c.TLSInsecure = false
	c.DBPath = "cineia.db"
	c.RequestTimeout = 10 * time.Second
	c.RecommendationTimeout = 15 * time.Second
	c.SearchDebounce = 300 * time.Millisecond
	c.OnlineCheckInterval = 3 * time.Second
	c.RateLimit = 10
	c.RateBurst = 5
	c.BreakerFailures = 3
	c.BreakerOpenTimeout = time.Minute
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (optionally seeded from a .env file)
// and command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
