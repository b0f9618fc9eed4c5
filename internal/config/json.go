package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/cubihealth/internal/flagx"
	"github.com/dmitrijs2005/cubihealth/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from an empty value.
type JsonConfig struct {
	DatabasePath    *string         `json:"database_path"`
	ScoreStore      *string         `json:"score_store"`
	PostgresDSN     *string         `json:"postgres_dsn"`
	SecretKey       *string         `json:"secret_key"`
	TokenValidity   *timex.Duration `json:"token_validity"`
	IdentityTimeout *timex.Duration `json:"identity_timeout"`
	ProviderLatency *timex.Duration `json:"provider_latency"`
	LogLevel        *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without such a flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	jsonConfigFile := flagx.ConfigFilePath(args)
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.ScoreStore, jc.ScoreStore)
	setString(&cfg.PostgresDSN, jc.PostgresDSN)
	setString(&cfg.SecretKey, jc.SecretKey)
	setString(&cfg.LogLevel, jc.LogLevel)
	setDuration(&cfg.TokenValidity, jc.TokenValidity)
	setDuration(&cfg.IdentityTimeout, jc.IdentityTimeout)
	setDuration(&cfg.ProviderLatency, jc.ProviderLatency)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
