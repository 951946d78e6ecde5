package propfirm

import (
	"fmt"
	"math"

	"github.com/tradelytix/tradelytix/stats"
)

// Violation is one broken phase rule.
type Violation struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// DayReport is the per-day breakdown of the daily drawdown check. Balances
// are anchored at the day's opening balance, replayed day over day from
// the account size.
type DayReport struct {
	Date         string  `json:"date"`
	Trades       int     `json:"trades"`
	StartBalance float64 `json:"startBalance"`
	NetPnL       float64 `json:"netPnL"`
	Loss         float64 `json:"loss"`
	EndBalance   float64 `json:"endBalance"`
	Breached     bool    `json:"breached"`
}

// Payout reports funded-phase payout eligibility.
type Payout struct {
	Eligible bool     `json:"eligible"`
	Amount   float64  `json:"amount"`
	Reasons  []string `json:"reasons,omitempty"`
}

// Evaluation is the outcome of replaying a trade history against one
// phase's rules.
type Evaluation struct {
	Phase  string `json:"phase"`
	Passed bool   `json:"passed"`

	Violations []Violation `json:"violations,omitempty"`
	Days       []DayReport `json:"days"`

	TradingDays     int     `json:"tradingDays"`
	NetProfit       float64 `json:"netProfit"`
	EndBalance      float64 `json:"endBalance"`
	LowestBalance   float64 `json:"lowestBalance"`
	PeakBalance     float64 `json:"peakBalance"`
	MaxDrawdownUsed float64 `json:"maxDrawdownUsed"`

	TargetReached     bool `json:"targetReached"`
	EligibleToAdvance bool `json:"eligibleToAdvance"`

	// Set only for funded phases.
	Payout *Payout `json:"payout,omitempty"`
}

func (e *Evaluation) add(code, msg string) {
	e.Violations = append(e.Violations, Violation{Code: code, Msg: msg})
	e.Passed = false
}

// Evaluate replays the trade history against the phase rules. The daily
// check measures each UTC day's net loss against the daily limit from the
// day's opening balance anchor; the max-drawdown check replays the
// trade-level balance curve from the account size, statically or trailing
// per the rules. The first breach of each kind is recorded, the replay
// continues so the full day-by-day report stays complete.
func Evaluate(rules PhaseRules, trades []stats.Trade) Evaluation {
	e := Evaluation{Phase: rules.Name, Passed: true}

	// Trade-level balance curve for the max-drawdown check.
	lowest := rules.AccountSize
	maxDD := 0.0
	last := stats.WalkEquity(rules.AccountSize, stats.NetSeries(trades), func(pt stats.EquityPoint) {
		if pt.Value < lowest {
			lowest = pt.Value
		}
		if pt.Drawdown > maxDD {
			maxDD = pt.Drawdown
		}
	})
	e.EndBalance = last.Value
	e.LowestBalance = lowest
	e.PeakBalance = last.Peak
	e.NetProfit = last.Value - rules.AccountSize

	if rules.MaxDrawdownType == Trailing {
		// Trailing measures from the highest balance reached; static from
		// the starting balance.
		e.MaxDrawdownUsed = maxDD
	} else {
		e.MaxDrawdownUsed = rules.AccountSize - lowest
	}
	if e.MaxDrawdownUsed < 0 {
		e.MaxDrawdownUsed = 0
	}
	if limit := rules.MaxLimit(); e.MaxDrawdownUsed > limit {
		e.add("MAX_DRAWDOWN", fmt.Sprintf(
			"max drawdown %.2f exceeds limit %.2f by %.2f",
			e.MaxDrawdownUsed, limit, e.MaxDrawdownUsed-limit))
	}

	// Day-by-day daily drawdown check.
	days, totals := stats.DailyPnL(trades)
	counts := make(map[string]int, len(days))
	for _, t := range trades {
		counts[t.DayKey()]++
	}

	dailyLimit := rules.DailyLimit()
	balance := rules.AccountSize
	for _, day := range days {
		pnl := totals[day]
		loss := 0.0
		if pnl < 0 {
			loss = -pnl
		}
		rep := DayReport{
			Date:         day,
			Trades:       counts[day],
			StartBalance: balance,
			NetPnL:       pnl,
			Loss:         loss,
			EndBalance:   balance + pnl,
			Breached:     loss > dailyLimit,
		}
		if rep.Breached {
			e.add("DAILY_DRAWDOWN", fmt.Sprintf(
				"%s: day loss %.2f exceeds daily limit %.2f by %.2f",
				day, loss, dailyLimit, loss-dailyLimit))
		}
		e.Days = append(e.Days, rep)
		balance = rep.EndBalance
	}
	e.TradingDays = len(days)

	if target := rules.ProfitTarget(); target > 0 {
		e.TargetReached = e.NetProfit >= target
	}
	e.EligibleToAdvance = !rules.Funded && e.Passed &&
		e.TargetReached && e.TradingDays >= rules.MinTradingDays

	if rules.Funded {
		e.Payout = payout(rules, e)
	}
	return e
}

// payout decides funded-phase payout eligibility and the trader's share.
func payout(rules PhaseRules, e Evaluation) *Payout {
	p := &Payout{Eligible: true}
	if !e.Passed {
		p.fail("drawdown rules were breached")
	}
	if e.NetProfit <= 0 {
		p.fail("no profit to pay out")
	}
	if e.TradingDays < rules.MinTradingDays {
		p.fail(fmt.Sprintf("only %d trading days, %d required", e.TradingDays, rules.MinTradingDays))
	}
	if p.Eligible {
		p.Amount = math.Round(e.NetProfit*rules.PayoutSplitPct*100) / 100
	}
	return p
}

func (p *Payout) fail(reason string) {
	p.Eligible = false
	p.Reasons = append(p.Reasons, reason)
}
