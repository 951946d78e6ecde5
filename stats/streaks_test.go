package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScanStreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pnls []float64
		want Streaks
	}{
		{"empty", nil, Streaks{}},
		{"allWins", []float64{1, 2, 3}, Streaks{Current: 3, BestWin: 3}},
		{"allLosses", []float64{-1, -2}, Streaks{Current: -2, WorstLose: -2}},
		{"signFlip", []float64{5, 5, -1, -1, -1, 2}, Streaks{Current: 1, BestWin: 2, WorstLose: -3}},
		{"breakevenSkipped", []float64{5, 0, 5, 0, -1}, Streaks{Current: -1, BestWin: 2, WorstLose: -1}},
		{"breakevenOnly", []float64{0, 0}, Streaks{}},
		{"endOnLoss", []float64{1, -1, 1, 1, 1, -1}, Streaks{Current: -1, BestWin: 3, WorstLose: -1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := scanStreaks(tt.pnls)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.BestWin, 0)
			assert.LessOrEqual(t, got.WorstLose, 0)
		})
	}
}

func TestTradeStreaks_SortsChronologically(t *testing.T) {
	t.Parallel()

	// Deliberately out of order: sorted by entry time the sequence is
	// +10, -5, -5 so the scan must end on a two-loss run.
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	trades := []Trade{
		{PnL: -5, EntryTime: base.Add(2 * time.Hour)},
		{PnL: 10, EntryTime: base},
		{PnL: -5, EntryTime: base.Add(time.Hour)},
	}

	got := TradeStreaks(trades)
	assert.Equal(t, Streaks{Current: -2, BestWin: 1, WorstLose: -2}, got)
}

func TestDayStreaks_GroupsByUTCDay(t *testing.T) {
	t.Parallel()

	// Day 1 nets +5, day 2 nets -3, day 3 nets +1: win, loss, win.
	trades := []Trade{
		{PnL: 20, EntryTime: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{PnL: -15, EntryTime: time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)},
		{PnL: -3, EntryTime: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)},
		{PnL: 1, EntryTime: time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)},
	}

	got := DayStreaks(trades)
	assert.Equal(t, Streaks{Current: 1, BestWin: 1, WorstLose: -1}, got)
}

func TestDayStreaks_BreakevenDayIsNoOp(t *testing.T) {
	t.Parallel()

	// Day 2 nets exactly zero and must neither break nor extend the run.
	trades := []Trade{
		{PnL: 10, EntryTime: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{PnL: 7, EntryTime: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)},
		{PnL: -7, EntryTime: time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC)},
		{PnL: 10, EntryTime: time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)},
	}

	got := DayStreaks(trades)
	assert.Equal(t, Streaks{Current: 2, BestWin: 2}, got)
}

func TestDayKey_UTCBoundary(t *testing.T) {
	t.Parallel()

	// 23:30 in UTC-5 is 04:30 the next day in UTC.
	loc := time.FixedZone("EST", -5*3600)
	tr := Trade{EntryTime: time.Date(2024, 3, 1, 23, 30, 0, 0, loc)}
	assert.Equal(t, "2024-03-02", tr.DayKey())
}
