// Package config loads runtime configuration for the CubiHealth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string     SQLite database path
//	-s string     score store: sqlite, postgres or memory
//	-p string     PostgreSQL DSN
//	-k string     session token signing key
//	-t duration   session token validity
//	-i duration   identity provider timeout
//	-latency duration  simulated identity provider latency
//	-l string     log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "3s" or
// integer nanoseconds. Keys that are absent keep their earlier value:
//
//	{
//	  "database_path": "cubihealth.db",
//	  "score_store": "postgres",
//	  "postgres_dsn": "postgres://localhost:5432/cubihealth",
//	  "secret_key": "change-me",
//	  "token_validity": "1h",
//	  "identity_timeout": "10s",
//	  "provider_latency": "500ms",
//	  "log_level": "info"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
