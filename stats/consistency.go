package stats

import "math"

// ConsistencyScore measures how evenly daily profits are distributed,
// in [0, 100]. High day-to-day variance relative to total profit pulls
// the score toward 0.
//
// An unprofitable trader cannot be consistent: a negative average daily
// P&L scores 0 outright. A zero total profit also scores 0, which doubles
// as the division guard.
func ConsistencyScore(dailyPnL []float64, totalNetProfit float64) float64 {
	if len(dailyPnL) == 0 || totalNetProfit == 0 {
		return 0
	}

	var sum float64
	for _, v := range dailyPnL {
		sum += v
	}
	mean := sum / float64(len(dailyPnL))
	if mean < 0 {
		return 0
	}

	// Population standard deviation over the per-day values.
	var sq float64
	for _, v := range dailyPnL {
		d := v - mean
		sq += d * d
	}
	stdDev := math.Sqrt(sq / float64(len(dailyPnL)))

	return clamp(100-(stdDev/totalNetProfit)*100, 0, 100)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
