package stats

import "math"

// ZellaScore is the composite 0-100 performance score plus the raw inputs
// and per-metric sub-scores it was built from, so a UI can explain the
// number instead of just showing it.
type ZellaScore struct {
	Overall int `json:"overall"`

	Inputs    ZellaInputs    `json:"inputs"`
	SubScores ZellaSubScores `json:"subScores"`
}

// ZellaInputs are the six raw metrics feeding the composite score.
type ZellaInputs struct {
	AvgWinLossRatio    float64 `json:"avgWinLossRatio"`
	TradeWinPercentage float64 `json:"tradeWinPercentage"`
	MaxDrawdownPercent float64 `json:"maxDrawdownPercent"`
	ProfitFactor       float64 `json:"profitFactor"`
	RecoveryFactor     float64 `json:"recoveryFactor"`
	ConsistencyScore   float64 `json:"consistencyScore"`
}

// ZellaSubScores are the individually scored (0-100) components.
type ZellaSubScores struct {
	AvgWinLoss   float64 `json:"avgWinLoss"`
	WinRate      float64 `json:"winRate"`
	MaxDrawdown  float64 `json:"maxDrawdown"`
	ProfitFactor float64 `json:"profitFactor"`
	Recovery     float64 `json:"recovery"`
	Consistency  float64 `json:"consistency"`
}

// Composite weights, fixed product constants. They sum to 1.
const (
	weightRecovery    = 0.10
	weightWinRate     = 0.15
	weightAvgWinLoss  = 0.20
	weightProfitFac   = 0.25
	weightMaxDrawdown = 0.20
	weightConsistency = 0.10
)

// breakpoint maps a raw metric value to its sub-score.
type breakpoint struct {
	at    float64
	score float64
}

// Avg win/loss and profit factor share one curve: 2.6 and above is a
// perfect 100, then 10-point bands down to 1.8, and everything below 1.8
// flattens to 20.
var ratioCurve = []breakpoint{
	{2.6, 100},
	{2.4, 90},
	{2.2, 80},
	{2.0, 70},
	{1.9, 60},
	{1.8, 50},
}

// Recovery factor: 3.5 and above is 100, 20-point bands down to 1.0, below
// 1.0 is 0.
var recoveryCurve = []breakpoint{
	{3.5, 100},
	{3.0, 80},
	{2.5, 60},
	{2.0, 40},
	{1.5, 20},
	{1.0, 0},
}

// interpolate maps value onto a descending breakpoint curve, linearly
// between adjacent breakpoints. Values above the first breakpoint take its
// score; values below the last take floor.
func interpolate(value float64, curve []breakpoint, floor float64) float64 {
	if value >= curve[0].at {
		return curve[0].score
	}
	for i := 1; i < len(curve); i++ {
		hi, lo := curve[i-1], curve[i]
		if value >= lo.at {
			frac := (value - lo.at) / (hi.at - lo.at)
			return lo.score + frac*(hi.score-lo.score)
		}
	}
	return floor
}

func scoreRatio(v float64) float64 {
	if math.IsInf(v, 1) {
		return 100
	}
	return interpolate(v, ratioCurve, 20)
}

// scoreWinRate treats a 60% win rate as perfect.
func scoreWinRate(winPct float64) float64 {
	return math.Min(100, winPct/60*100)
}

// scoreMaxDrawdown is linear: zero drawdown is 100, a 100% drawdown (or
// worse) is 0.
func scoreMaxDrawdown(ddPct float64) float64 {
	return math.Max(0, 100-ddPct)
}

func scoreRecovery(v float64) float64 {
	if math.IsInf(v, 1) {
		return 100
	}
	return interpolate(v, recoveryCurve, 0)
}

// ComputeZella maps the six raw metrics through their curves and combines
// the sub-scores with the fixed weights. It never fails: a degenerate
// input (all zeros, no trades) simply scores the zero vector.
func ComputeZella(in ZellaInputs) ZellaScore {
	sub := ZellaSubScores{
		AvgWinLoss:   scoreRatio(in.AvgWinLossRatio),
		WinRate:      scoreWinRate(in.TradeWinPercentage),
		MaxDrawdown:  scoreMaxDrawdown(in.MaxDrawdownPercent),
		ProfitFactor: scoreRatio(in.ProfitFactor),
		Recovery:     scoreRecovery(in.RecoveryFactor),
		Consistency:  clamp(in.ConsistencyScore, 0, 100),
	}

	overall := weightRecovery*sub.Recovery +
		weightWinRate*sub.WinRate +
		weightAvgWinLoss*sub.AvgWinLoss +
		weightProfitFac*sub.ProfitFactor +
		weightMaxDrawdown*sub.MaxDrawdown +
		weightConsistency*sub.Consistency

	return ZellaScore{
		Overall:   int(math.Round(overall)),
		Inputs:    in,
		SubScores: sub,
	}
}
