package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Ranking.FrequencyWeight != 0.6 || cfg.Ranking.RecencyWeight != 0.4 {
		t.Errorf("default weights = %+v, want 0.6/0.4", cfg.Ranking)
	}
	if cfg.History.MaxPerUser != 50 {
		t.Errorf("default max_per_user = %d, want 50", cfg.History.MaxPerUser)
	}
	if cfg.Suggest.DefaultLimit != 4 {
		t.Errorf("default limit = %d, want 4", cfg.Suggest.DefaultLimit)
	}
	if cfg.Suggest.MinQueryLength != 3 {
		t.Errorf("default min_query_length = %d, want 3", cfg.Suggest.MinQueryLength)
	}
	if cfg.Suggest.FrequentThreshold != 2 {
		t.Errorf("default frequent_threshold = %d, want 2", cfg.Suggest.FrequentThreshold)
	}
	if cfg.Suggest.RecentWindowDays != 7 {
		t.Errorf("default recent_window_days = %d, want 7", cfg.Suggest.RecentWindowDays)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[ranking]
frequency_weight = 0.7
recency_weight = 0.3

[history]
max_per_user = 100

[suggest]
default_limit = 8
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := Load(path)
	if cfg.Ranking.FrequencyWeight != 0.7 || cfg.Ranking.RecencyWeight != 0.3 {
		t.Errorf("weights = %+v, want 0.7/0.3", cfg.Ranking)
	}
	if cfg.History.MaxPerUser != 100 {
		t.Errorf("max_per_user = %d, want 100", cfg.History.MaxPerUser)
	}
	if cfg.Suggest.DefaultLimit != 8 {
		t.Errorf("default_limit = %d, want 8", cfg.Suggest.DefaultLimit)
	}
	// Untouched sections keep their defaults.
	if cfg.Suggest.MinQueryLength != 3 {
		t.Errorf("min_query_length = %d, want default 3", cfg.Suggest.MinQueryLength)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if cfg.History.MaxPerUser != 50 {
		t.Errorf("missing file should yield defaults, got %+v", cfg.History)
	}
}

func TestLoadBadFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[[[[not toml"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := Load(path)
	if cfg.Suggest.DefaultLimit != 4 {
		t.Errorf("unparseable file should yield defaults, got %+v", cfg.Suggest)
	}
}

func TestClampRejectsUnusableValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[history]
max_per_user = 0

[suggest]
default_limit = -2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := Load(path)
	if cfg.History.MaxPerUser != 50 {
		t.Errorf("max_per_user = %d, want clamped default 50", cfg.History.MaxPerUser)
	}
	if cfg.Suggest.DefaultLimit != 4 {
		t.Errorf("default_limit = %d, want clamped default 4", cfg.Suggest.DefaultLimit)
	}
}
