package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *SQLite {
	t.Helper()
	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func rec(id, account string, pnl float64, closeTime time.Time) TradeRecord {
	return TradeRecord{
		TradeID:    id,
		Account:    account,
		Instrument: "EURUSD",
		Side:       "buy",
		Quantity:   1,
		PnL:        pnl,
		Commission: 1.5,
		OpenTime:   closeTime.Add(-time.Hour),
		CloseTime:  closeTime,
	}
}

func TestSQLite_RecordAndGet(t *testing.T) {
	t.Parallel()

	j := testDB(t)
	closeTime := time.Date(2024, 6, 3, 15, 30, 0, 0, time.UTC)
	require.NoError(t, j.RecordTrade(rec("T1", "ACC-1", 42.5, closeTime)))

	got, err := j.GetTrade("T1")
	require.NoError(t, err)
	assert.Equal(t, "ACC-1", got.Account)
	assert.InDelta(t, 42.5, got.PnL, 1e-9)
	assert.InDelta(t, 1.5, got.Commission, 1e-9)
	assert.True(t, got.CloseTime.Equal(closeTime))

	_, err = j.GetTrade("missing")
	assert.Error(t, err)
}

func TestSQLite_ListTradesByAccountAndRange(t *testing.T) {
	t.Parallel()

	j := testDB(t)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordTrades([]TradeRecord{
		rec("T1", "ACC-1", 10, base),
		rec("T2", "ACC-1", -5, base.AddDate(0, 0, 1)),
		rec("T3", "ACC-1", 20, base.AddDate(0, 0, 5)),
		rec("T4", "ACC-2", 99, base),
	}))

	// Account filter plus half-open range: T3 falls on the upper bound.
	got, err := j.ListTrades("ACC-1", base, base.AddDate(0, 0, 5))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "T1", got[0].TradeID)
	assert.Equal(t, "T2", got[1].TradeID)

	// Zero bounds list everything for the account, in close-time order.
	got, err = j.ListTrades("ACC-1", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = j.ListTrades("ACC-2", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLite_RecordTradesRollsBackOnDuplicate(t *testing.T) {
	t.Parallel()

	j := testDB(t)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordTrade(rec("T1", "ACC-1", 10, base)))

	err := j.RecordTrades([]TradeRecord{
		rec("T2", "ACC-1", 5, base),
		rec("T1", "ACC-1", 7, base), // duplicate primary key
	})
	require.Error(t, err)

	// The batch must not have been partially applied.
	got, err := j.ListTrades("ACC-1", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLite_Accounts(t *testing.T) {
	t.Parallel()

	j := testDB(t)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordTrades([]TradeRecord{
		rec("T1", "beta", 1, base),
		rec("T2", "alpha", 1, base),
		rec("T3", "alpha", 1, base.Add(time.Hour)),
	}))

	got, err := j.Accounts()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, got)
}
