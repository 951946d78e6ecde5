package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tradelytix/tradelytix/service"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the prop-firm evaluation on a schedule",
	Long: `Watch runs the prop-firm evaluation on the cron schedule from the
config (watch.cron, six-field spec with seconds) and logs the outcome,
warning on breaches. It runs until interrupted.

Example:
  tradelytix watch --config tradelytix.yaml`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	jrnl, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer jrnl.Close()

	rules, err := cfg.PropFirm.Phase(cfg.Account.Phase)
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	svc := service.New(jrnl, service.WithLogger(log))

	check := func() {
		e, err := svc.Evaluate(cfg.Account.ID, rules)
		if err != nil {
			log.Error("evaluation failed", zap.Error(err))
			return
		}
		log.Info("evaluation run",
			zap.String("account", cfg.Account.ID),
			zap.String("phase", e.Phase),
			zap.Bool("passed", e.Passed),
			zap.Float64("netProfit", e.NetProfit),
			zap.Float64("drawdownUsed", e.MaxDrawdownUsed))
	}

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(cfg.Watch.Cron, check); err != nil {
		return fmt.Errorf("cron spec %q: %w", cfg.Watch.Cron, err)
	}

	check() // run once immediately
	c.Start()
	defer c.Stop()

	log.Info("watching", zap.String("cron", cfg.Watch.Cron))
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
