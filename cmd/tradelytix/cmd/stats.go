package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tradelytix/tradelytix/report"
	"github.com/tradelytix/tradelytix/service"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute and print the account's performance statistics",
	Long: `Stats runs the statistics engine over the account's trades and
prints the full report: win/loss aggregates, profit factor, streaks,
drawdown, recovery factor and consistency.

Examples:
  tradelytix stats --account ACC-1
  tradelytix stats --from 2024-01-01 --to 2024-07-01`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var fromFlag, toFlag string

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&fromFlag, "from", "", "start date, inclusive (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&toFlag, "to", "", "end date, exclusive (YYYY-MM-DD)")
}

func runStats(cmd *cobra.Command, args []string) error {
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
	r, err := svc.Result(cfg.Account.ID, from, to)
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}

	report.PrintStats(os.Stdout, cfg.Account.ID, r)
	return nil
}

// dateRange parses the --from/--to flags as UTC day bounds. Zero values
// mean unbounded.
func dateRange() (from, to time.Time, err error) {
	if fromFlag != "" {
		from, err = time.ParseInLocation("2006-01-02", fromFlag, time.UTC)
		if err != nil {
			return from, to, fmt.Errorf("--from: %w", err)
		}
	}
	if toFlag != "" {
		to, err = time.ParseInLocation("2006-01-02", toFlag, time.UTC)
		if err != nil {
			return from, to, fmt.Errorf("--to: %w", err)
		}
	}
	return from, to, nil
}
