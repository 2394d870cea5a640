// Package config loads runtime configuration for the neatdog terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config; ".yaml"/".yml"
//     files are read as YAML, anything else as JSON.
//  3. A ".env" file in the working directory, then NEATDOG_* environment
//     variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     API base URL, e.g. http://localhost:8000/api/v1
//	-s string     credential store path
//	-l string     log level: debug, info, warn or error
//	-t duration   per-request timeout, e.g. 15s (0 disables)
//
// Environment
//
//	NEATDOG_SERVER_URL, NEATDOG_STORE_PATH, NEATDOG_STORE_SECRET,
//	NEATDOG_LOG_LEVEL, NEATDOG_REQUEST_TIMEOUT
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "15s" or integer
// nanoseconds:
//
//	server_url: http://localhost:8000/api/v1
//	store_path: /home/me/.config/neatdog/credentials.db
//	log_level: info
//	request_timeout: 15s
//
// The store secret is deliberately not accepted as a flag.
package config
