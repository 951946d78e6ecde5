// Package stats computes trading performance statistics over a set of
// closed trades: win/loss aggregates, streaks, drawdown, a consistency
// measure, and the composite Zella score.
//
// Every function in this package is pure. The engine does no I/O and keeps
// no state between calls, so concurrent use needs no coordination.
package stats

import (
	"math"
	"sort"
	"time"
)

// Trade is the minimal input record the engine needs. Commission and Swap
// are stored as non-negative costs; broker exports that report costs as
// negative amounts must be normalized before they reach this package
// (journal.ImportCSV does that).
type Trade struct {
	ID         string
	Instrument string
	Side       string
	Quantity   float64

	PnL        float64
	Commission float64
	Swap       float64

	EntryTime time.Time
}

// NetPnL is the trade's profit after costs.
func (t Trade) NetPnL() float64 {
	return t.PnL - t.Commission - t.Swap
}

// DayKey is the UTC calendar day the trade belongs to. Day grouping always
// uses UTC boundaries, regardless of where the trade was executed.
func (t Trade) DayKey() string {
	return t.EntryTime.UTC().Format("2006-01-02")
}

// sortChrono returns a copy of trades ordered by entry time. The input is
// never mutated.
func sortChrono(trades []Trade) []Trade {
	out := make([]Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EntryTime.Before(out[j].EntryTime)
	})
	return out
}

// DailyPnL partitions trades into UTC calendar days and sums net P&L per
// day. Days come back sorted ascending alongside the totals.
func DailyPnL(trades []Trade) (days []string, totals map[string]float64) {
	totals = make(map[string]float64, len(trades))
	for _, t := range trades {
		key := t.DayKey()
		if _, ok := totals[key]; !ok {
			days = append(days, key)
		}
		totals[key] += t.NetPnL()
	}
	sort.Strings(days)
	return days, totals
}

// NetSeries extracts net P&L per trade in chronological order. Package
// propfirm replays this series over an account balance base.
func NetSeries(trades []Trade) []float64 {
	ordered := sortChrono(trades)
	out := make([]float64, len(ordered))
	for i, t := range ordered {
		out[i] = t.NetPnL()
	}
	return out
}

// round2 rounds monetary outputs to cents. Internal math stays at full
// precision; rounding happens only at the result boundary.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// round1 rounds percentages to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
