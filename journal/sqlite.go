package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, account, instrument, side, quantity, pnl, commission, swap, open_time, close_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.Account, t.Instrument, t.Side, t.Quantity,
		t.PnL, t.Commission, t.Swap, t.OpenTime, t.CloseTime,
	)
	return err
}

// RecordTrades inserts a batch inside one transaction. Used by the CSV
// importer so a malformed file does not leave a half-imported journal.
func (j *SQLite) RecordTrades(recs []TradeRecord) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO trades
		(trade_id, account, instrument, side, quantity, pnl, commission, swap, open_time, close_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, t := range recs {
		if _, err := stmt.Exec(
			t.TradeID, t.Account, t.Instrument, t.Side, t.Quantity,
			t.PnL, t.Commission, t.Swap, t.OpenTime, t.CloseTime,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert trade %s: %w", t.TradeID, err)
		}
	}
	return tx.Commit()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
