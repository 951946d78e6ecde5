package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tradelytix/tradelytix/config"
	"github.com/tradelytix/tradelytix/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradelytix",
	Short: "Trading journal statistics and prop-firm account tracker",
	Long: `Tradelytix imports broker trade exports into a local journal and
computes performance statistics over them.

It provides tools for:
  - Importing broker CSV account statements
  - Win/loss, streak, drawdown and consistency statistics
  - The composite Zella performance score
  - Prop-firm evaluation: drawdown breaches, phase progression, payouts
  - Monitor mode that re-runs the evaluation on a schedule`,
}

var (
	cfgFile     string
	dbPath      string
	accountFlag string
)

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// .env may carry TRADELYTIX_DB for local setups.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to SQLite journal DB")
	rootCmd.PersistentFlags().StringVarP(&accountFlag, "account", "a", "", "account ID")
}

// loadConfig resolves the effective configuration: the config file when
// given, built-in defaults otherwise, with flag and env overrides applied
// on top.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if env := os.Getenv("TRADELYTIX_DB"); env != "" && dbPath == "" {
		dbPath = env
	}
	if dbPath != "" {
		cfg.Journal.DBPath = dbPath
	}
	if accountFlag != "" {
		cfg.Account.ID = accountFlag
	}
	return cfg, nil
}

func openJournal(cfg *config.Config) (*journal.SQLite, error) {
	return journal.NewSQLite(cfg.Journal.DBPath)
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("LOG_LEVEL") == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
