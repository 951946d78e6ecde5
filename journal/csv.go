package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/tradelytix/tradelytix/pkg/id"
)

// Broker exports timestamp trades as "24/12/2025 13:21:00".
const brokerTimeLayout = "02/01/2006 15:04:05"

// ImportCSV reads a broker account-statement export and returns trade
// records tagged with the account ID.
//
// The format is header-addressed: ID, Profit and Close Time are required,
// Commission, Swap, Symbol, Type, Volume and Open Time are optional. The
// trailing "Total" summary row and rows with no close time (open
// positions) are skipped. Broker exports report commission and swap as
// negative amounts; they are negated here so records carry non-negative
// costs. Rows without an ID get a generated ULID.
func ImportCSV(r io.Reader, account string) ([]TradeRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"ID", "Profit", "Close Time"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []TradeRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		tradeID := field(row, "ID")
		if tradeID == "Total" {
			continue
		}
		closeStr := field(row, "Close Time")
		if closeStr == "" {
			continue
		}
		closeTime, err := time.Parse(brokerTimeLayout, closeStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: close time %q: %w", line, closeStr, err)
		}

		profit, err := parseFloat(field(row, "Profit"))
		if err != nil {
			return nil, fmt.Errorf("line %d: profit: %w", line, err)
		}
		commission, err := parseFloat(field(row, "Commission"))
		if err != nil {
			return nil, fmt.Errorf("line %d: commission: %w", line, err)
		}
		swap, err := parseFloat(field(row, "Swap"))
		if err != nil {
			return nil, fmt.Errorf("line %d: swap: %w", line, err)
		}
		quantity, err := parseFloat(field(row, "Volume"))
		if err != nil {
			return nil, fmt.Errorf("line %d: volume: %w", line, err)
		}

		openTime := closeTime
		if openStr := field(row, "Open Time"); openStr != "" {
			openTime, err = time.Parse(brokerTimeLayout, openStr)
			if err != nil {
				return nil, fmt.Errorf("line %d: open time %q: %w", line, openStr, err)
			}
		}

		if tradeID == "" {
			tradeID = id.New()
		}

		out = append(out, TradeRecord{
			TradeID:    tradeID,
			Account:    account,
			Instrument: field(row, "Symbol"),
			Side:       field(row, "Type"),
			Quantity:   quantity,
			PnL:        profit,
			Commission: -commission,
			Swap:       -swap,
			OpenTime:   openTime,
			CloseTime:  closeTime,
		})
	}
	return out, nil
}

// parseFloat treats an empty field as zero, matching broker exports that
// leave swap/commission blank on cost-free trades.
func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

var exportHeader = []string{
	"trade_id", "account", "instrument", "side", "quantity",
	"pnl", "commission", "swap", "open_time", "close_time",
}

// ExportCSV writes records in the journal's own canonical format, RFC 3339
// timestamps and costs kept non-negative.
func ExportCSV(w io.Writer, recs []TradeRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, t := range recs {
		if err := cw.Write([]string{
			t.TradeID,
			t.Account,
			t.Instrument,
			t.Side,
			f(t.Quantity),
			f(t.PnL),
			f(t.Commission),
			f(t.Swap),
			t.OpenTime.Format(time.RFC3339),
			t.CloseTime.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
