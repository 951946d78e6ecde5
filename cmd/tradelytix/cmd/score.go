package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tradelytix/tradelytix/report"
	"github.com/tradelytix/tradelytix/service"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the account's Zella score breakdown",
	Long: `Score maps the account's statistics through the Zella scoring
curves and prints the composite 0-100 score with its six sub-scores.`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&fromFlag, "from", "", "start date, inclusive (YYYY-MM-DD)")
	scoreCmd.Flags().StringVar(&toFlag, "to", "", "end date, exclusive (YYYY-MM-DD)")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	jrnl, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer jrnl.Close()

	from, to, err := dateRange()
	if err != nil {
		return err
	}

	svc := service.New(jrnl)
	z, err := svc.Zella(cfg.Account.ID, from, to)
	if err != nil {
		return fmt.Errorf("compute score: %w", err)
	}

	report.PrintZella(os.Stdout, cfg.Account.ID, z)
	return nil
}
