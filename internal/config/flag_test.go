package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{
			name: "all flags",
			args: []string{"-d", "x.db", "-s", "postgres", "-p", "dsn", "-k", "key", "-t", "2h", "-i", "3s", "-latency", "250ms", "-l", "debug"},
			expected: &Config{
				DatabasePath: "x.db", ScoreStore: "postgres", PostgresDSN: "dsn", SecretKey: "key",
				TokenValidity: 2 * time.Hour, IdentityTimeout: 3 * time.Second, ProviderLatency: 250 * time.Millisecond,
				LogLevel: "debug",
			},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"-c", "cfg.json", "-x", "1", "-l=info"},
			expected: &Config{LogLevel: "info"},
		},
		{name: "incorrect timeout", args: []string{"-i", "abc"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			err := parseFlags(config, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
