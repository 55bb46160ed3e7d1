package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config holds application settings.
type Config struct {
	// Currency is the ISO code applied to amounts entered without one.
	Currency string `mapstructure:"currency"`
	// MileageRate is the default per-mile deduction rate for new trips.
	MileageRate float64 `mapstructure:"mileage_rate"`
	// StaleDays is the default staleness threshold.
	StaleDays int `mapstructure:"stale_days"`
	// Ledger is the path to the JSONL ledger file.
	Ledger string `mapstructure:"ledger"`
	// SyncURL is the address 'flp pull' fetches a marketplace export from.
	SyncURL string `mapstructure:"sync_url"`
}

// Load reads settings from file and env. Env var overrides use prefix FLIPLOG_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("currency", "USD")
	v.SetDefault("mileage_rate", 0.67)
	v.SetDefault("stale_days", 30)
	v.SetDefault("ledger", "fliplog.jsonl")
	v.SetDefault("sync_url", "")

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("FLIPLOG_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "fliplog"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FLIPLOG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

var (
	settings     Config
	settingsOnce sync.Once
)

// Settings returns the application settings, loaded once per run.
func Settings() Config {
	settingsOnce.Do(func() {
		var err error
		settings, err = Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: invalid configuration, using defaults: %v\n", err)
			settings = Config{Currency: "USD", MileageRate: 0.67, StaleDays: 30, Ledger: "fliplog.jsonl"}
		}
	})
	return settings
}
