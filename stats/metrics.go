package stats

import "math"

// Metrics holds the aggregate trade statistics. ProfitFactor is +Inf when
// there are gross profits but no gross losses; see Result.MarshalJSON for
// how that survives JSON encoding.
type Metrics struct {
	TotalTrades     int `json:"totalTrades"`
	WinningTrades   int `json:"winningTrades"`
	LosingTrades    int `json:"losingTrades"`
	BreakEvenTrades int `json:"breakEvenTrades"`

	// WinRate excludes breakeven trades from the denominator. Distribution
	// charts that want breakeven in the denominator must compute their own
	// ratio; that is a presentation choice, not this engine's.
	WinRate float64 `json:"winRate"`

	GrossProfits float64 `json:"grossProfits"`
	GrossLosses  float64 `json:"grossLosses"`
	ProfitFactor float64 `json:"profitFactor"`

	AvgWin          float64 `json:"avgWin"`
	AvgLoss         float64 `json:"avgLoss"`
	RiskRewardRatio float64 `json:"riskRewardRatio"`

	BiggestWin  float64 `json:"biggestWin"`
	BiggestLoss float64 `json:"biggestLoss"`
}

// ComputeMetrics aggregates the trade collection. Order does not matter.
// Degenerate inputs produce zero values, never errors.
func ComputeMetrics(trades []Trade) Metrics {
	var m Metrics
	m.TotalTrades = len(trades)

	var grossProfits, grossLosses float64
	var biggestWin, biggestLoss float64
	for _, t := range trades {
		pnl := t.NetPnL()
		switch {
		case pnl > 0:
			m.WinningTrades++
			grossProfits += pnl
			if pnl > biggestWin {
				biggestWin = pnl
			}
		case pnl < 0:
			m.LosingTrades++
			grossLosses += -pnl
			if pnl < biggestLoss {
				biggestLoss = pnl
			}
		default:
			m.BreakEvenTrades++
		}
	}

	if decided := m.WinningTrades + m.LosingTrades; decided > 0 {
		m.WinRate = round1(float64(m.WinningTrades) / float64(decided) * 100)
	}

	switch {
	case grossLosses > 0:
		m.ProfitFactor = grossProfits / grossLosses
	case grossProfits > 0:
		m.ProfitFactor = math.Inf(1)
	}

	var avgWin, avgLoss float64
	if m.WinningTrades > 0 {
		avgWin = grossProfits / float64(m.WinningTrades)
	}
	if m.LosingTrades > 0 {
		avgLoss = grossLosses / float64(m.LosingTrades)
	}
	if avgLoss > 0 {
		m.RiskRewardRatio = avgWin / avgLoss
	}

	m.GrossProfits = round2(grossProfits)
	m.GrossLosses = round2(grossLosses)
	m.AvgWin = round2(avgWin)
	m.AvgLoss = round2(avgLoss)
	m.BiggestWin = round2(biggestWin)
	m.BiggestLoss = round2(-biggestLoss)
	return m
}
