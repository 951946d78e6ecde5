package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "phase1", cfg.Account.Phase)
	assert.Len(t, cfg.PropFirm.Phases, 3)
}

func TestValidateRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mutate func(*Config)
	}{
		{"noAccountID", func(c *Config) { c.Account.ID = "" }},
		{"noCurrency", func(c *Config) { c.Account.Currency = "" }},
		{"noDBPath", func(c *Config) { c.Journal.DBPath = "" }},
		{"unknownPhase", func(c *Config) { c.Account.Phase = "phase9" }},
		{"badProgram", func(c *Config) { c.PropFirm.Phases[0].DailyDrawdownPct = 2 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveAndLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Account.ID = "MY-ACC"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "MY-ACC", loaded.Account.ID)
	assert.Equal(t, cfg.PropFirm.Name, loaded.PropFirm.Name)
	assert.InDelta(t, 0.04, loaded.PropFirm.Phases[0].DailyDrawdownPct, 1e-9)
}

func TestSaveAndLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, Default().SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two-step-5k", loaded.PropFirm.Name)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account: {id: X}\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
