// Package journal persists imported trade records and hands them to the
// statistics engine. SQLite is the storage backend; broker CSV exports are
// the ingestion route.
package journal

import (
	"time"

	"github.com/tradelytix/tradelytix/stats"
)

// TradeRecord is one closed trade as persisted. Commission and Swap are
// stored as non-negative costs (see stats.Trade); ImportCSV normalizes
// broker-signed values on the way in.
type TradeRecord struct {
	TradeID    string
	Account    string
	Instrument string
	Side       string
	Quantity   float64

	PnL        float64
	Commission float64
	Swap       float64

	OpenTime  time.Time
	CloseTime time.Time
}

// Trade converts a persisted record into the engine's input type. The
// engine orders and groups by close time, when the P&L was realized.
func (r TradeRecord) Trade() stats.Trade {
	return stats.Trade{
		ID:         r.TradeID,
		Instrument: r.Instrument,
		Side:       r.Side,
		Quantity:   r.Quantity,
		PnL:        r.PnL,
		Commission: r.Commission,
		Swap:       r.Swap,
		EntryTime:  r.CloseTime,
	}
}

// Trades converts a record slice for the engine.
func Trades(recs []TradeRecord) []stats.Trade {
	out := make([]stats.Trade, len(recs))
	for i, r := range recs {
		out[i] = r.Trade()
	}
	return out
}

// Journal stores and retrieves trade records.
type Journal interface {
	RecordTrade(TradeRecord) error
	ListTrades(account string, from, to time.Time) ([]TradeRecord, error)
	Close() error
}
