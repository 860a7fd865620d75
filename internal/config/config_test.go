package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.NotEmpty(t, cfg.Database.Path)
		assert.Equal(t, 200, cfg.Pools.TotalCapacityDays)
		assert.Equal(t, 10, cfg.Pools.BugReserve)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
database:
  path: /tmp/plans.db
pools:
  total_capacity_days: 80
  bug_reserve: 20
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/plans.db", cfg.Database.Path)
		assert.Equal(t, 80, cfg.Pools.TotalCapacityDays)
		assert.Equal(t, 20, cfg.Pools.BugReserve)
		// Values absent from the file keep their defaults.
		assert.Equal(t, 15, cfg.Pools.RefactorReserve)
	})

	t.Run("env var overrides db path", func(t *testing.T) {
		t.Setenv("SPRINTWISE_DB", "/tmp/env.db")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env.db", cfg.Database.Path)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("rejects reserve out of range", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pools:\n  bug_reserve: 120\n"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "bug_reserve")
	})

	t.Run("rejects reserves summing over 100", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "pools:\n  bug_reserve: 50\n  refactor_reserve: 40\n  other_reserve: 20\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "exceeding 100%")
	})
}
