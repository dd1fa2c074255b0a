// Package config loads runtime configuration for the CineIA CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed CINEIA_ (see parseEnv). A .env file
//     named by -e or -env, or ./.env, is loaded first with godotenv;
//     variables already present in the environment are not overwritten.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     backend base URL
//	-d string     local SQLite database path
//	-t duration   per-request timeout
//	-r duration   recommendation timeout
//	-i int        online status check interval (seconds)
//	-l string     log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_url": "https://127.0.0.1:8081",
//	  "tls_insecure": true,
//	  "db_path": "cineia.db",
//	  "request_timeout": "10s",
//	  "recommendation_timeout": "15s",
//	  "search_debounce": "300ms",
//	  "rate_limit": 10,
//	  "log_level": "debug"
//	}
//
// # Environment
//
//	CINEIA_SERVER_URL, CINEIA_TLS_INSECURE, CINEIA_DB_PATH,
//	CINEIA_REQUEST_TIMEOUT, CINEIA_RECOMMENDATION_TIMEOUT,
//	CINEIA_SEARCH_DEBOUNCE, CINEIA_ONLINE_CHECK_INTERVAL,
//	CINEIA_RATE_LIMIT, CINEIA_RATE_BURST, CINEIA_BREAKER_FAILURES,
//	CINEIA_BREAKER_OPEN_TIMEOUT, CINEIA_LOG_LEVEL, CINEIA_LOG_FORMAT
//
// Malformed values in any source panic; the CLI fails fast on bad config.
package config
