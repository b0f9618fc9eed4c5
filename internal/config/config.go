package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the CubiHealth CLI.
//
// Fields:
//   - DatabasePath: SQLite file backing the score store and local metadata.
//   - ScoreStore: sqlite, postgres or memory.
//   - PostgresDSN: connection string used when ScoreStore is postgres.
//   - SecretKey: HS256 key for session tokens; empty means a random key per run.
//   - TokenValidity: lifetime of a session token.
//   - IdentityTimeout: upper bound for one identity provider call.
//   - ProviderLatency: artificial delay of the simulated identity provider.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DatabasePath    string
	ScoreStore      string
	PostgresDSN     string
	SecretKey       string
	TokenValidity   time.Duration
	IdentityTimeout time.Duration
	ProviderLatency time.Duration
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "cubihealth.db"
	c.ScoreStore = "sqlite"
	c.PostgresDSN = ""
	c.SecretKey = ""
	c.TokenValidity = time.Hour
	c.IdentityTimeout = 10 * time.Second
	c.ProviderLatency = 0
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.ScoreStore {
	case "sqlite", "memory":
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("score store postgres requires a DSN (-p)")
		}
	default:
		return fmt.Errorf("unknown score store %q", c.ScoreStore)
	}
	if c.TokenValidity <= 0 {
		return fmt.Errorf("token validity must be positive, got %s", c.TokenValidity)
	}
	if c.IdentityTimeout < 0 || c.ProviderLatency < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}
