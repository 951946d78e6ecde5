package stats

// Streaks reports consecutive win/loss runs. Current carries the sign of
// the run in progress: positive for a winning run, negative for a losing
// one. BestWin is always >= 0 and WorstLose always <= 0.
type Streaks struct {
	Current   int `json:"current"`
	BestWin   int `json:"bestWin"`
	WorstLose int `json:"worstLose"`
}

// scanStreaks runs the signed streak counter over a P&L series. A positive
// value extends a winning run or starts one after a loss; negative is
// symmetric. Breakeven entries are skipped: they neither extend nor break
// the run.
func scanStreaks(pnls []float64) Streaks {
	var s Streaks
	for _, pnl := range pnls {
		switch {
		case pnl > 0:
			if s.Current >= 0 {
				s.Current++
			} else {
				s.Current = 1
			}
		case pnl < 0:
			if s.Current <= 0 {
				s.Current--
			} else {
				s.Current = -1
			}
		default:
			continue
		}
		if s.Current > s.BestWin {
			s.BestWin = s.Current
		}
		if s.Current < s.WorstLose {
			s.WorstLose = s.Current
		}
	}
	return s
}

// TradeStreaks computes streaks at trade granularity, in chronological
// order. An empty input yields the zero value.
func TradeStreaks(trades []Trade) Streaks {
	return scanStreaks(NetSeries(trades))
}

// DayStreaks computes streaks at day granularity: trades are grouped into
// UTC calendar days, each day's net P&L summed, and the scan applied over
// the days in ascending date order.
func DayStreaks(trades []Trade) Streaks {
	days, totals := DailyPnL(trades)
	pnls := make([]float64, len(days))
	for i, d := range days {
		pnls[i] = totals[d]
	}
	return scanStreaks(pnls)
}
