package stats

// EquityPoint is one step of a replayed equity curve.
type EquityPoint struct {
	Index    int
	Value    float64 // base plus cumulative net P&L after this step
	Peak     float64 // highest Value seen so far, never below base
	Drawdown float64 // Peak - Value
}

// WalkEquity replays a net P&L series on top of a starting base and calls
// fn after every step. The final point is returned so callers that only
// need the end state can pass a nil fn.
//
// With base 0 the curve is cumulative P&L; with base set to an account's
// starting balance it is the absolute balance curve the prop-firm breach
// checks run against. This is the single equity walker shared by the
// drawdown tracker and package propfirm.
func WalkEquity(base float64, pnls []float64, fn func(EquityPoint)) EquityPoint {
	pt := EquityPoint{Index: -1, Value: base, Peak: base}
	for i, pnl := range pnls {
		pt.Index = i
		pt.Value += pnl
		if pt.Value > pt.Peak {
			pt.Peak = pt.Value
		}
		pt.Drawdown = pt.Peak - pt.Value
		if fn != nil {
			fn(pt)
		}
	}
	return pt
}

// Drawdown summarizes the equity curve of a trade sequence. All values are
// in account currency except MaxDrawdownPercent.
type Drawdown struct {
	PeakEquity         float64 `json:"peakEquity"`
	MaxDrawdown        float64 `json:"maxDrawdown"`
	MaxDrawdownPercent float64 `json:"maxDrawdownPercent"`
	NetProfit          float64 `json:"netProfit"`
	RecoveryFactor     float64 `json:"recoveryFactor"`
}

// recoveryFactorCap stands in for an infinite recovery factor when the
// curve never drew down but still made money.
const recoveryFactorCap = 5

// ComputeDrawdown walks the cumulative P&L curve (base 0) in chronological
// order and reports peak equity, maximum drawdown, and the recovery
// factor. An empty input yields the zero value.
func ComputeDrawdown(trades []Trade) Drawdown {
	var d Drawdown
	last := WalkEquity(0, NetSeries(trades), func(pt EquityPoint) {
		if pt.Drawdown > d.MaxDrawdown {
			d.MaxDrawdown = pt.Drawdown
		}
	})
	d.PeakEquity = last.Peak
	d.NetProfit = last.Value

	if d.PeakEquity > 0 {
		d.MaxDrawdownPercent = d.MaxDrawdown / d.PeakEquity * 100
	}
	switch {
	case d.MaxDrawdown > 0:
		d.RecoveryFactor = d.NetProfit / d.MaxDrawdown
	case d.NetProfit > 0:
		d.RecoveryFactor = recoveryFactorCap
	}

	d.PeakEquity = round2(d.PeakEquity)
	d.MaxDrawdown = round2(d.MaxDrawdown)
	d.NetProfit = round2(d.NetProfit)
	return d
}
