package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/cineia/internal/flagx"
)

// EnvPrefix namespaces every environment variable the CLI reads.
const EnvPrefix = "CINEIA_"

const defaultEnvFile = ".env"

// loadEnvFile seeds the process environment from the file named by -e or
// -env, or from ./.env when present. Variables already set win over the
// file. A missing explicit file panics; a missing ./.env is ignored.
func loadEnvFile() {
	path := flagx.EnvFileFlags()
	if path == "" {
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		return
	}
	if err := godotenv.Load(path); err != nil {
		panic(err)
	}
}

// parseEnv overlays Config with CINEIA_* variables. Malformed values panic.
func parseEnv(cfg *Config) {
	loadEnvFile()

	envString("SERVER_URL", &cfg.ServerURL)
	envString("DB_PATH", &cfg.DBPath)
	envString("LOG_LEVEL", &cfg.LogLevel)
	envString("LOG_FORMAT", &cfg.LogFormat)
	envBool("TLS_INSECURE", &cfg.TLSInsecure)
	envDuration("REQUEST_TIMEOUT", &cfg.RequestTimeout)
	envDuration("RECOMMENDATION_TIMEOUT", &cfg.RecommendationTimeout)
	envDuration("SEARCH_DEBOUNCE", &cfg.SearchDebounce)
	envDuration("ONLINE_CHECK_INTERVAL", &cfg.OnlineCheckInterval)
	envDuration("BREAKER_OPEN_TIMEOUT", &cfg.BreakerOpenTimeout)

	if v, ok := lookup("RATE_LIMIT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			panic(fmt.Errorf("%sRATE_LIMIT: %w", EnvPrefix, err))
		}
		cfg.RateLimit = f
	}
	if v, ok := lookup("RATE_BURST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("%sRATE_BURST: %w", EnvPrefix, err))
		}
		cfg.RateBurst = n
	}
	if v, ok := lookup("BREAKER_FAILURES"); ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			panic(fmt.Errorf("%sBREAKER_FAILURES: %w", EnvPrefix, err))
		}
		cfg.BreakerFailures = uint32(n)
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func envString(key string, dst *string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func envBool(key string, dst *bool) {
	if v, ok := lookup(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
		}
		*dst = b
	}
}

func envDuration(key string, dst *time.Duration) {
	if v, ok := lookup(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
		}
		*dst = d
	}
}
