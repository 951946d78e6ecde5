package journal

import (
	"database/sql"
	"fmt"
	"time"
)

const tradeColumns = `trade_id, account, instrument, side, quantity, pnl, commission, swap, open_time, close_time`

// GetTrade returns a single trade record by ID.
func (j *SQLite) GetTrade(tradeID string) (TradeRecord, error) {
	row := j.db.QueryRow(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE trade_id = ?`, tradeID)

	rec, err := scanTrade(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return TradeRecord{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTrades returns the account's trades with close_time in [from, to),
// ordered ascending. Zero bounds mean unbounded on that side.
func (j *SQLite) ListTrades(account string, from, to time.Time) ([]TradeRecord, error) {
	if to.IsZero() {
		to = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	rows, err := j.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE account = ? AND close_time >= ? AND close_time < ?
		ORDER BY close_time ASC`, account, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Accounts returns the distinct account IDs present in the journal.
func (j *SQLite) Accounts() ([]string, error) {
	rows, err := j.db.Query(`SELECT DISTINCT account FROM trades ORDER BY account`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanTrade(scan func(...any) error) (TradeRecord, error) {
	var rec TradeRecord
	err := scan(
		&rec.TradeID,
		&rec.Account,
		&rec.Instrument,
		&rec.Side,
		&rec.Quantity,
		&rec.PnL,
		&rec.Commission,
		&rec.Swap,
		&rec.OpenTime,
		&rec.CloseTime,
	)
	return rec, err
}
