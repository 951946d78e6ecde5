package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tradelytix/tradelytix/propfirm"
)

// Config is the complete application configuration.
type Config struct {
	Account  AccountConfig    `json:"account" yaml:"account"`
	Journal  JournalConfig    `json:"journal" yaml:"journal"`
	PropFirm propfirm.Program `json:"propfirm" yaml:"propfirm"`
	Watch    WatchConfig      `json:"watch" yaml:"watch"`
}

// AccountConfig identifies the tracked account.
type AccountConfig struct {
	ID       string `json:"id" yaml:"id"`
	Currency string `json:"currency" yaml:"currency"`

	// Phase names the propfirm program phase the account is currently in.
	Phase string `json:"phase" yaml:"phase"`
}

// JournalConfig locates the trade store.
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// WatchConfig drives monitor mode.
type WatchConfig struct {
	// Cron is a robfig/cron spec, e.g. "*/30 * * * * *" with seconds.
	Cron string `json:"cron" yaml:"cron"`
}

// LoadFromFile loads configuration from a YAML or JSON file, decided by
// extension, and validates it.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if strings.HasSuffix(path, ".json") {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration, YAML unless the path ends in .json.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error
	if strings.HasSuffix(path, ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.Account.ID == "" {
		return fmt.Errorf("account.id is required")
	}
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if err := c.PropFirm.Validate(); err != nil {
		return err
	}
	if c.Account.Phase != "" {
		if _, err := c.PropFirm.Phase(c.Account.Phase); err != nil {
			return fmt.Errorf("account.phase: %w", err)
		}
	}
	return nil
}

// Default returns a configuration with sensible defaults: the two-step
// $5,000 program, starting in phase 1.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:       "ACC-001",
			Currency: "USD",
			Phase:    "phase1",
		},
		Journal: JournalConfig{
			DBPath: "./tradelytix.sqlite",
		},
		PropFirm: propfirm.DefaultProgram(),
		Watch: WatchConfig{
			Cron: "0 */5 * * * *", // every five minutes
		},
	}
}
