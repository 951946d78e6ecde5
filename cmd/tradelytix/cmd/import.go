package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradelytix/tradelytix/service"
)

var importCmd = &cobra.Command{
	Use:   "import <export.csv>",
	Short: "Import a broker CSV account statement into the journal",
	Long: `Import parses a broker CSV export and records every closed trade
under the configured account. Open positions and the trailing Total row
are skipped; broker-signed commission and swap are normalized to
non-negative costs.

Example:
  tradelytix import --account ACC-1 statement.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	jrnl, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer jrnl.Close()

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	im := service.NewImporter(jrnl, nil, log)
	n, err := im.ImportFile(args[0], cfg.Account.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d trades into account %s\n", n, cfg.Account.ID)
	return nil
}
