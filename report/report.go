// Package report renders engine results as plain text for the CLI.
package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/tradelytix/tradelytix/propfirm"
	"github.com/tradelytix/tradelytix/stats"
)

const rule = "--------------------------------------------------"

// PrintStats writes the full statistics report.
func PrintStats(w io.Writer, account string, r stats.Result) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " Statistics: %s\n", account)
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trades")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total:          %d\n", r.TotalTrades)
	fmt.Fprintf(w, "Wins:           %d\n", r.WinningTrades)
	fmt.Fprintf(w, "Losses:         %d\n", r.LosingTrades)
	fmt.Fprintf(w, "Breakeven:      %d\n", r.BreakEvenTrades)
	fmt.Fprintf(w, "Win Rate:       %.1f%%\n", r.WinRate)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "P&L")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Net Profit:     %.2f\n", r.Drawdown.NetProfit)
	fmt.Fprintf(w, "Gross Profits:  %.2f\n", r.GrossProfits)
	fmt.Fprintf(w, "Gross Losses:   %.2f\n", r.GrossLosses)
	fmt.Fprintf(w, "Profit Factor:  %s\n", factor(r.ProfitFactor))
	fmt.Fprintf(w, "Avg Win:        %.2f\n", r.AvgWin)
	fmt.Fprintf(w, "Avg Loss:       %.2f\n", r.AvgLoss)
	fmt.Fprintf(w, "Risk/Reward:    %.2f\n", r.RiskRewardRatio)
	fmt.Fprintf(w, "Biggest Win:    %.2f\n", r.BiggestWin)
	fmt.Fprintf(w, "Biggest Loss:   %.2f\n", r.BiggestLoss)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Risk")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Peak Equity:    %.2f\n", r.Drawdown.PeakEquity)
	fmt.Fprintf(w, "Max Drawdown:   %.2f (%.2f%%)\n", r.Drawdown.MaxDrawdown, r.Drawdown.MaxDrawdownPercent)
	fmt.Fprintf(w, "Recovery:       %.2f\n", r.Drawdown.RecoveryFactor)
	fmt.Fprintf(w, "Consistency:    %.1f\n", r.ConsistencyScore)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Streaks")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Trades:         current %+d, best %d, worst %d\n",
		r.TradeStreaks.Current, r.TradeStreaks.BestWin, r.TradeStreaks.WorstLose)
	fmt.Fprintf(w, "Days:           current %+d, best %d, worst %d\n",
		r.DayStreaks.Current, r.DayStreaks.BestWin, r.DayStreaks.WorstLose)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Updated:        %s\n", r.LastUpdated.Format(time.RFC3339))
}

// PrintZella writes the composite score with its sub-score breakdown.
func PrintZella(w io.Writer, account string, z stats.ZellaScore) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " Zella Score: %s\n", account)
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Overall:        %d / 100\n", z.Overall)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sub-scores")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Avg Win/Loss:   %5.1f  (ratio %s)\n", z.SubScores.AvgWinLoss, factor(z.Inputs.AvgWinLossRatio))
	fmt.Fprintf(w, "Win Rate:       %5.1f  (%.1f%%)\n", z.SubScores.WinRate, z.Inputs.TradeWinPercentage)
	fmt.Fprintf(w, "Profit Factor:  %5.1f  (%s)\n", z.SubScores.ProfitFactor, factor(z.Inputs.ProfitFactor))
	fmt.Fprintf(w, "Max Drawdown:   %5.1f  (%.2f%%)\n", z.SubScores.MaxDrawdown, z.Inputs.MaxDrawdownPercent)
	fmt.Fprintf(w, "Recovery:       %5.1f  (%s)\n", z.SubScores.Recovery, factor(z.Inputs.RecoveryFactor))
	fmt.Fprintf(w, "Consistency:    %5.1f\n", z.SubScores.Consistency)
}

// PrintEvaluation writes the prop-firm day-by-day analysis and verdict.
func PrintEvaluation(w io.Writer, rules propfirm.PhaseRules, e propfirm.Evaluation) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " Prop-Firm Evaluation: %s\n", e.Phase)
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Account Size:   %.2f\n", rules.AccountSize)
	fmt.Fprintf(w, "Daily Limit:    %.2f (%.0f%%)\n", rules.DailyLimit(), rules.DailyDrawdownPct*100)
	fmt.Fprintf(w, "Max DD Limit:   %.2f (%.0f%%, %s)\n", rules.MaxLimit(), rules.MaxDrawdownPct*100, rules.MaxDrawdownType)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Daily Analysis")
	fmt.Fprintln(w, rule)
	for _, d := range e.Days {
		fmt.Fprintf(w, "%s  start %9.2f  pnl %9.2f  (%d trades)", d.Date, d.StartBalance, d.NetPnL, d.Trades)
		if d.Breached {
			fmt.Fprint(w, "  !!! DAILY LIMIT EXCEEDED !!!")
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Max Drawdown")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Lowest Balance: %.2f\n", e.LowestBalance)
	fmt.Fprintf(w, "Peak Balance:   %.2f\n", e.PeakBalance)
	fmt.Fprintf(w, "Drawdown Used:  %.2f of %.2f\n", e.MaxDrawdownUsed, rules.MaxLimit())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Progress")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Trading Days:   %d (min %d)\n", e.TradingDays, rules.MinTradingDays)
	fmt.Fprintf(w, "Net Profit:     %.2f", e.NetProfit)
	if target := rules.ProfitTarget(); target > 0 {
		fmt.Fprintf(w, " (target %.2f)", target)
	}
	fmt.Fprintln(w)
	if e.EligibleToAdvance {
		fmt.Fprintln(w, "Status:         ELIGIBLE TO ADVANCE")
	}
	if e.Payout != nil {
		if e.Payout.Eligible {
			fmt.Fprintf(w, "Payout:         ELIGIBLE, %.2f\n", e.Payout.Amount)
		} else {
			fmt.Fprintln(w, "Payout:         NOT ELIGIBLE")
			for _, reason := range e.Payout.Reasons {
				fmt.Fprintf(w, "  - %s\n", reason)
			}
		}
	}

	fmt.Fprintln(w)
	if e.Passed {
		fmt.Fprintln(w, "VERDICT: NO VIOLATIONS FOUND")
	} else {
		fmt.Fprintln(w, "VERDICT: VIOLATION DETECTED")
		for _, v := range e.Violations {
			fmt.Fprintf(w, "  [%s] %s\n", v.Code, v.Msg)
		}
	}
}

// factor renders ratios that may be infinite.
func factor(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", v)
}
