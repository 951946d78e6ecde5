package service

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tradelytix/tradelytix/journal"
)

// Importer loads broker CSV exports into the journal.
type Importer struct {
	jrnl  *journal.SQLite
	stats *Stats
	log   *zap.Logger
}

// NewImporter wires an importer. stats may be nil when no cache needs
// invalidating.
func NewImporter(jrnl *journal.SQLite, stats *Stats, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{jrnl: jrnl, stats: stats, log: log}
}

// ImportFile parses the broker CSV at path and records every closed trade
// under the account. It returns the number of imported trades.
func (im *Importer) ImportFile(path, account string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	recs, err := journal.ImportCSV(f, account)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := im.jrnl.RecordTrades(recs); err != nil {
		return 0, fmt.Errorf("record trades: %w", err)
	}

	if im.stats != nil {
		im.stats.Invalidate()
	}
	im.log.Info("csv imported",
		zap.String("file", path),
		zap.String("account", account),
		zap.Int("trades", len(recs)))
	return len(recs), nil
}
