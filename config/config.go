/*
Package config manages the TOML tunables for the suggestion service.
*/
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Ranking RankingConfig `toml:"ranking"`
	History HistoryConfig `toml:"history"`
	Suggest SuggestConfig `toml:"suggest"`
}

// RankingConfig weights the blend of frequency and recency in rank scores.
type RankingConfig struct {
	FrequencyWeight float64 `toml:"frequency_weight"`
	RecencyWeight   float64 `toml:"recency_weight"`
}

// HistoryConfig bounds per-user storage.
type HistoryConfig struct {
	MaxPerUser int `toml:"max_per_user"`
}

// SuggestConfig holds suggestion query options.
type SuggestConfig struct {
	DefaultLimit      int `toml:"default_limit"`
	MinQueryLength    int `toml:"min_query_length"`
	FrequentThreshold int `toml:"frequent_threshold"`
	RecentWindowDays  int `toml:"recent_window_days"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Ranking: RankingConfig{
			FrequencyWeight: 0.6,
			RecencyWeight:   0.4,
		},
		History: HistoryConfig{
			MaxPerUser: 50,
		},
		Suggest: SuggestConfig{
			DefaultLimit:      4,
			MinQueryLength:    3,
			FrequentThreshold: 2,
			RecentWindowDays:  7,
		},
	}
}

// Load reads a TOML config file over the defaults. A missing or unreadable
// file falls back to builtin defaults rather than failing startup.
func Load(path string) *Config {
	cfg := Default()
	if path == "" {
		return cfg
	}
	if _, err := os.Stat(path); err != nil {
		log.Warnf("Config file not found at %s: %v. Using builtin defaults.", path, err)
		return Default()
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		log.Warnf("Failed to parse config from %s: %v. Using builtin defaults.", path, err)
		return Default()
	}
	cfg.clamp()
	return cfg
}

// clamp keeps loaded values inside usable ranges.
func (c *Config) clamp() {
	if c.History.MaxPerUser < 1 {
		c.History.MaxPerUser = Default().History.MaxPerUser
	}
	if c.Suggest.DefaultLimit < 1 {
		c.Suggest.DefaultLimit = Default().Suggest.DefaultLimit
	}
	if c.Suggest.MinQueryLength < 1 {
		c.Suggest.MinQueryLength = Default().Suggest.MinQueryLength
	}
	if c.Suggest.RecentWindowDays < 0 {
		c.Suggest.RecentWindowDays = Default().Suggest.RecentWindowDays
	}
	if c.Ranking.FrequencyWeight < 0 || c.Ranking.RecencyWeight < 0 {
		c.Ranking = Default().Ranking
	}
}
