package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tradelytix/tradelytix/report"
	"github.com/tradelytix/tradelytix/service"
)

var propfirmCmd = &cobra.Command{
	Use:   "propfirm",
	Short: "Evaluate the account against its prop-firm phase rules",
	Long: `Propfirm replays the account's trade history against the rules of
its current evaluation phase: the day-by-day daily drawdown check, the
max-drawdown check, profit target progress, and (for funded phases)
payout eligibility. It prints the analysis and a verdict.

Example:
  tradelytix propfirm --account ACC-1 --phase phase2`,
	Args: cobra.NoArgs,
	RunE: runPropfirm,
}

var phaseFlag string

func init() {
	rootCmd.AddCommand(propfirmCmd)
	propfirmCmd.Flags().StringVar(&phaseFlag, "phase", "", "program phase to evaluate (default: account's configured phase)")
}

func runPropfirm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	jrnl, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer jrnl.Close()

	phase := cfg.Account.Phase
	if phaseFlag != "" {
		phase = phaseFlag
	}
	rules, err := cfg.PropFirm.Phase(phase)
	if err != nil {
		return err
	}

	svc := service.New(jrnl)
	e, err := svc.Evaluate(cfg.Account.ID, rules)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	report.PrintEvaluation(os.Stdout, rules, e)

	if e.EligibleToAdvance {
		if next, ok := cfg.PropFirm.NextPhase(rules.Name); ok {
			fmt.Printf("\nNext phase: %s\n", next.Name)
		}
	}
	return nil
}
