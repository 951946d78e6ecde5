package stats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_EndToEnd(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{PnL: 120, Commission: 10, Swap: 10, EntryTime: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{PnL: 55, Commission: 5, EntryTime: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{PnL: -25, Commission: 5, EntryTime: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)},
		{PnL: 25, Commission: 5, EntryTime: time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)},
		{PnL: -5, Commission: 5, EntryTime: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)},
		{PnL: -5, Commission: 5, EntryTime: time.Date(2024, 3, 4, 11, 0, 0, 0, time.UTC)},
	}

	// Net P&L series: +100, +50, -30, +20, -10, -10 (Scenario A).
	r := Compute(trades)

	assert.Equal(t, 6, r.TotalTrades)
	assert.InDelta(t, 50.0, r.WinRate, 1e-9)
	assert.InDelta(t, 3.4, r.ProfitFactor, 1e-9)
	assert.InDelta(t, 120.0, r.Drawdown.NetProfit, 1e-9)
	assert.Equal(t, Streaks{Current: -2, BestWin: 2, WorstLose: -2}, r.TradeStreaks)
	// Days net +150, -30, +20, -20: win then loss then win then loss.
	assert.Equal(t, Streaks{Current: -1, BestWin: 1, WorstLose: -1}, r.DayStreaks)
	assert.False(t, r.LastUpdated.IsZero())
}

func TestCompute_Idempotent(t *testing.T) {
	t.Parallel()

	trades := mkTrades(100, -40, 0, 60, -20)

	a := Compute(trades)
	b := Compute(trades)

	a.LastUpdated, b.LastUpdated = time.Time{}, time.Time{}
	assert.Equal(t, a, b)
}

func TestCompute_EmptyInput(t *testing.T) {
	t.Parallel()

	r := Compute(nil)

	assert.Equal(t, Metrics{}, r.Metrics)
	assert.Equal(t, Drawdown{}, r.Drawdown)
	assert.Zero(t, r.ConsistencyScore)

	z := r.Zella()
	assert.Equal(t, 29, z.Overall)
}

func TestResult_JSONWithInfiniteProfitFactor(t *testing.T) {
	t.Parallel()

	r := Compute(mkTrades(10, 10))

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"profitFactor":null`)

	z := r.Zella()
	data, err = json.Marshal(z)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"profitFactor":null`)
}

func TestResult_JSONFiniteProfitFactor(t *testing.T) {
	t.Parallel()

	r := Compute(mkTrades(100, -50))

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.InDelta(t, 2.0, decoded["profitFactor"].(float64), 1e-9)
}

func TestZella_WiredFromResult(t *testing.T) {
	t.Parallel()

	r := Compute(mkTrades(100, 50, -30, 20, -10, -10))
	z := r.Zella()

	assert.InDelta(t, r.RiskRewardRatio, z.Inputs.AvgWinLossRatio, 1e-9)
	assert.InDelta(t, r.WinRate, z.Inputs.TradeWinPercentage, 1e-9)
	assert.InDelta(t, r.Drawdown.MaxDrawdownPercent, z.Inputs.MaxDrawdownPercent, 1e-9)
	assert.InDelta(t, r.ConsistencyScore, z.Inputs.ConsistencyScore, 1e-9)
	assert.GreaterOrEqual(t, z.Overall, 0)
	assert.LessOrEqual(t, z.Overall, 100)
}
