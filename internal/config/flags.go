package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/cubihealth/internal/flagx"
)

var knownFlags = []string{"-d", "-s", "-p", "-k", "-t", "-i", "-latency", "-l"}

// parseFlags populates Config fields from the flags in args. Only the flags
// listed in knownFlags are considered (see flagx.FilterArgs), so -c/-config
// and anything meant for other components pass through untouched.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("cubihealth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.ScoreStore, "s", cfg.ScoreStore, "score store: sqlite, postgres or memory")
	fs.StringVar(&cfg.PostgresDSN, "p", cfg.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "session token signing key")
	fs.DurationVar(&cfg.TokenValidity, "t", cfg.TokenValidity, "session token validity")
	fs.DurationVar(&cfg.IdentityTimeout, "i", cfg.IdentityTimeout, "identity provider timeout")
	fs.DurationVar(&cfg.ProviderLatency, "latency", cfg.ProviderLatency, "simulated identity provider latency")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
