package config

import (
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/dmitrijs2005/cineia/internal/flagx"
	"github.com/dmitrijs2005/cineia/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// zero-value fields that are absent from the file leave Config untouched.
type JsonConfig struct {
	ServerURL             string         `json:"server_url"`
	TLSInsecure           *bool          `json:"tls_insecure"`
	DBPath                string         `json:"db_path"`
	RequestTimeout        timex.Duration `json:"request_timeout"`
	RecommendationTimeout timex.Duration `json:"recommendation_timeout"`
	SearchDebounce        timex.Duration `json:"search_debounce"`
	OnlineCheckInterval   timex.Duration `json:"online_check_interval"`
	RateLimit             *float64       `json:"rate_limit"`
	RateBurst             int            `json:"rate_burst"`
	BreakerFailures       uint32         `json:"breaker_failures"`
	BreakerOpenTimeout    timex.Duration `json:"breaker_open_timeout"`
	LogLevel              string         `json:"log_level"`
	LogFormat             string         `json:"log_format"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag it does nothing. Read or decode errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerURL, jc.ServerURL)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setDuration(&cfg.RequestTimeout, jc.RequestTimeout)
	setDuration(&cfg.RecommendationTimeout, jc.RecommendationTimeout)
	setDuration(&cfg.SearchDebounce, jc.SearchDebounce)
	setDuration(&cfg.OnlineCheckInterval, jc.OnlineCheckInterval)
	setDuration(&cfg.BreakerOpenTimeout, jc.BreakerOpenTimeout)
	if jc.TLSInsecure != nil {
		cfg.TLSInsecure = *jc.TLSInsecure
	}
	if jc.RateLimit != nil {
		cfg.RateLimit = *jc.RateLimit
	}
	if jc.RateBurst > 0 {
		cfg.RateBurst = jc.RateBurst
	}
	if jc.BreakerFailures > 0 {
		cfg.BreakerFailures = jc.BreakerFailures
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration > 0 {
		*dst = v.Duration
	}
}
