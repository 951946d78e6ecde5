package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tradelytix/tradelytix/propfirm"
	"github.com/tradelytix/tradelytix/stats"
)

func sampleTrades(pnls ...float64) []stats.Trade {
	start := time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC)
	out := make([]stats.Trade, len(pnls))
	for i, p := range pnls {
		out[i] = stats.Trade{PnL: p, EntryTime: start.AddDate(0, 0, i)}
	}
	return out
}

func TestPrintStats(t *testing.T) {
	t.Parallel()

	r := stats.Compute(sampleTrades(100, -50, 75))

	var buf bytes.Buffer
	PrintStats(&buf, "ACC-1", r)

	out := buf.String()
	assert.Contains(t, out, "Statistics: ACC-1")
	assert.Contains(t, out, "Total:          3")
	assert.Contains(t, out, "Net Profit:     125.00")
	assert.Contains(t, out, "Profit Factor:  3.50")
}

func TestPrintStats_InfiniteProfitFactor(t *testing.T) {
	t.Parallel()

	r := stats.Compute(sampleTrades(10, 10))

	var buf bytes.Buffer
	PrintStats(&buf, "ACC-1", r)

	assert.Contains(t, buf.String(), "Profit Factor:  inf")
}

func TestPrintZella(t *testing.T) {
	t.Parallel()

	z := stats.Compute(sampleTrades(100, -50, 75)).Zella()

	var buf bytes.Buffer
	PrintZella(&buf, "ACC-1", z)

	out := buf.String()
	assert.Contains(t, out, "Zella Score: ACC-1")
	assert.Contains(t, out, "/ 100")
	assert.Contains(t, out, "Consistency:")
}

func TestPrintEvaluation_Verdicts(t *testing.T) {
	t.Parallel()

	rules := propfirm.DefaultProgram().Phases[0]

	var clean bytes.Buffer
	PrintEvaluation(&clean, rules, propfirm.Evaluate(rules, sampleTrades(150, 120)))
	assert.Contains(t, clean.String(), "VERDICT: NO VIOLATIONS FOUND")

	var breached bytes.Buffer
	PrintEvaluation(&breached, rules, propfirm.Evaluate(rules, sampleTrades(-300)))
	out := breached.String()
	assert.Contains(t, out, "VERDICT: VIOLATION DETECTED")
	assert.Contains(t, out, "DAILY LIMIT EXCEEDED")
	assert.True(t, strings.Contains(out, "DAILY_DRAWDOWN"))
}
