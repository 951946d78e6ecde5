package stats

import (
	"encoding/json"
	"math"
	"time"
)

// Result is the full statistics output for one trade collection. It is a
// pure function of the input trades: recomputing over the same snapshot
// yields the same values (LastUpdated aside, which is stamped per call).
type Result struct {
	Metrics

	Drawdown Drawdown `json:"drawdown"`

	TradeStreaks Streaks `json:"tradeStreaks"`
	DayStreaks   Streaks `json:"dayStreaks"`

	ConsistencyScore float64 `json:"consistencyScore"`

	LastUpdated time.Time `json:"lastUpdated"`
}

// Compute runs the whole engine over the trade collection. Input order
// does not matter; the engine sorts chronologically where order does.
func Compute(trades []Trade) Result {
	r := Result{
		Metrics:      ComputeMetrics(trades),
		Drawdown:     ComputeDrawdown(trades),
		TradeStreaks: TradeStreaks(trades),
		DayStreaks:   DayStreaks(trades),
		LastUpdated:  time.Now().UTC(),
	}

	days, totals := DailyPnL(trades)
	daily := make([]float64, len(days))
	for i, d := range days {
		daily[i] = totals[d]
	}
	r.ConsistencyScore = ConsistencyScore(daily, r.Drawdown.NetProfit)
	return r
}

// Zella derives the composite score from an already-computed Result.
func (r Result) Zella() ZellaScore {
	return ComputeZella(ZellaInputs{
		AvgWinLossRatio:    r.RiskRewardRatio,
		TradeWinPercentage: r.WinRate,
		MaxDrawdownPercent: r.Drawdown.MaxDrawdownPercent,
		ProfitFactor:       r.ProfitFactor,
		RecoveryFactor:     r.Drawdown.RecoveryFactor,
		ConsistencyScore:   r.ConsistencyScore,
	})
}

// infToNull maps +Inf to null so results stay JSON-encodable. Profit
// factor is the only field that can legitimately be infinite.
func infToNull(f float64) *float64 {
	if math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// MarshalJSON encodes the result with an infinite profit factor as null,
// since JSON has no representation for +Inf.
func (r Result) MarshalJSON() ([]byte, error) {
	type alias Result
	return json.Marshal(struct {
		alias
		ProfitFactor *float64 `json:"profitFactor"`
	}{alias(r), infToNull(r.ProfitFactor)})
}

// MarshalJSON handles an infinite profit factor input the same way Result
// does.
func (in ZellaInputs) MarshalJSON() ([]byte, error) {
	type alias ZellaInputs
	return json.Marshal(struct {
		alias
		ProfitFactor *float64 `json:"profitFactor"`
	}{alias(in), infToNull(in.ProfitFactor)})
}
