package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Pools    PoolDefaults   `yaml:"pools"`
}

// DatabaseConfig configures SQLite storage.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// PoolDefaults seeds the create-pool form when a value is not given.
type PoolDefaults struct {
	TotalCapacityDays int `yaml:"total_capacity_days"`
	BugReserve        int `yaml:"bug_reserve"`
	RefactorReserve   int `yaml:"refactor_reserve"`
	OtherReserve      int `yaml:"other_reserve"`
}

// Default returns a Config with sensible defaults. The database lives
// under ~/.sprintwise, matching where the CLI keeps its state.
func Default() *Config {
	dbPath := "sprintwise.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".sprintwise", "sprintwise.db")
	}
	return &Config{
		Database: DatabaseConfig{Path: dbPath},
		Pools: PoolDefaults{
			TotalCapacityDays: 200,
			BugReserve:        10,
			RefactorReserve:   15,
			OtherReserve:      5,
		},
	}
}

// Load reads configuration from a YAML file and applies env var
// overrides. An empty path skips the file and returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SPRINTWISE_DB"); v != "" {
		cfg.Database.Path = v
	}
}

func (c *Config) validate() error {
	p := c.Pools
	for _, rv := range []struct {
		name string
		val  int
	}{
		{"bug_reserve", p.BugReserve},
		{"refactor_reserve", p.RefactorReserve},
		{"other_reserve", p.OtherReserve},
	} {
		if rv.val < 0 || rv.val > 100 {
			return fmt.Errorf("pools.%s must be between 0 and 100, got %d", rv.name, rv.val)
		}
	}
	if sum := p.BugReserve + p.RefactorReserve + p.OtherReserve; sum > 100 {
		return fmt.Errorf("pool reserves sum to %d%%, exceeding 100%%", sum)
	}
	if p.TotalCapacityDays < 0 {
		return fmt.Errorf("pools.total_capacity_days must not be negative, got %d", p.TotalCapacityDays)
	}
	return nil
}
